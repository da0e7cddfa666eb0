package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/capsel/internal/errors"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "documentation format (markdown, man)")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(cmd *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir <path>")
	}

	if err := os.MkdirAll(genDocDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	root := cmd.Root()
	var err error
	switch genDocFormat {
	case "markdown":
		err = doc.GenMarkdownTreeCustom(root, genDocDir, filePrepender, linkHandler)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{Title: "CAPSEL", Section: "1"}, genDocDir)
	default:
		return errors.NewUserError(errors.Newf("unknown doc format %q", genDocFormat),
			"Valid formats: markdown, man")
	}
	if err != nil {
		return errors.Wrapf(err, "generating %s", genDocFormat)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
	return err
}

// filePrepender adds front matter so the pages drop into a static site.
func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	// capsel_config_init.md -> capsel config init
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
