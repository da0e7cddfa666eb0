package platform

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/capsel/internal/errors"
)

// Tier is a named host API-level threshold. Tiers are ordered; a higher
// tier always has a higher threshold.
type Tier int

const (
	// TierLegacy is every host, including ones whose level is unknown.
	TierLegacy Tier = iota
	// TierEclair is API level 5.
	TierEclair
	// TierFroyo is API level 8.
	TierFroyo
	// TierGingerbread is API level 9.
	TierGingerbread
	// TierHoneycomb is API level 11.
	TierHoneycomb
)

var tierThresholds = [...]int{
	TierLegacy:      0,
	TierEclair:      5,
	TierFroyo:       8,
	TierGingerbread: 9,
	TierHoneycomb:   11,
}

var tierNames = [...]string{
	TierLegacy:      "legacy",
	TierEclair:      "eclair",
	TierFroyo:       "froyo",
	TierGingerbread: "gingerbread",
	TierHoneycomb:   "honeycomb",
}

// Tiers returns every tier in ascending order.
func Tiers() []Tier {
	return []Tier{TierLegacy, TierEclair, TierFroyo, TierGingerbread, TierHoneycomb}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t >= TierLegacy && t <= TierHoneycomb
}

// Threshold returns the minimum API level of t.
func (t Tier) Threshold() int {
	if !t.Valid() {
		return 0
	}
	return tierThresholds[t]
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier returns the tier with the given name, case-insensitively.
func ParseTier(name string) (Tier, error) {
	for _, t := range Tiers() {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return TierLegacy, errors.Newf("unknown tier %q", name)
}

// MarshalText encodes t by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.Newf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Flags records which tiers a host satisfies. A Flags value is immutable
// and every flag comes from one comparison against the same level, so a
// true flag implies all lower flags are true.
//
// The zero value is an undetected host: only TierLegacy is supported.
type Flags struct {
	level    int
	detected bool
	supports [len(tierThresholds)]bool
}

// FlagsFor returns the flags for a host reporting the given API level.
// Negative levels are treated as undetected.
func FlagsFor(level int) Flags {
	if level < 0 {
		return Flags{}
	}
	f := Flags{level: level, detected: true}
	for _, t := range Tiers() {
		f.supports[t] = level >= t.Threshold()
	}
	return f
}

// Level returns the observed API level, or 0 when undetected.
func (f Flags) Level() int {
	return f.level
}

// Detected reports whether the probe observed a usable level.
func (f Flags) Detected() bool {
	return f.detected
}

// Supports reports whether the host is at or above t. TierLegacy is
// always supported.
func (f Flags) Supports(t Tier) bool {
	if t == TierLegacy {
		return true
	}
	if !t.Valid() {
		return false
	}
	return f.supports[t]
}

// Tier returns the highest tier the host satisfies.
func (f Flags) Tier() Tier {
	tiers := Tiers()
	for i := len(tiers) - 1; i > 0; i-- {
		if f.supports[tiers[i]] {
			return tiers[i]
		}
	}
	return TierLegacy
}

func (f Flags) String() string {
	if !f.detected {
		return "undetected (legacy)"
	}
	return fmt.Sprintf("api %d (%s)", f.level, f.Tier())
}
