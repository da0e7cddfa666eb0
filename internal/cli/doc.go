// Package cli renders capsel reports and hosts CLI-only helpers shared by
// the cobra commands.
//
// A [Reporter] writes any report in one of four formats. Text output is
// colourised when stdout is a terminal; JSON, YAML and TOML are stable and
// meant for scripts.
package cli
