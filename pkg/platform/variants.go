package platform

import (
	"github.com/thoreinstein/capsel/pkg/location"
	"github.com/thoreinstein/capsel/pkg/preference"
	"github.com/thoreinstein/capsel/pkg/strictmode"
)

// variant is one row of a decision table: the oldest tier the variant runs
// on and how to build it from the capability's handle H.
type variant[H, T any] struct {
	min   Tier
	name  string
	build func(H) T
}

// Each table is ordered from the highest minimum tier to the lowest.
var (
	locationFinderVariants = []variant[location.Context, location.LastLocationFinder]{
		{TierGingerbread, "gingerbread", func(c location.Context) location.LastLocationFinder {
			return location.NewGingerbreadLastLocationFinder(c)
		}},
		{TierLegacy, "legacy", func(c location.Context) location.LastLocationFinder {
			return location.NewLegacyLastLocationFinder(c)
		}},
	}

	strictModeVariants = []variant[struct{}, strictmode.StrictMode]{
		{TierHoneycomb, "honeycomb", func(struct{}) strictmode.StrictMode {
			return strictmode.NewHoneycomb()
		}},
		{TierGingerbread, "gingerbread", func(struct{}) strictmode.StrictMode {
			return strictmode.NewGingerbread()
		}},
	}

	updateRequesterVariants = []variant[location.Manager, location.UpdateRequester]{
		{TierGingerbread, "gingerbread", func(m location.Manager) location.UpdateRequester {
			return location.NewGingerbreadUpdateRequester(m)
		}},
		// Froyo's requester is the floor for every older host too.
		{TierLegacy, "froyo", func(m location.Manager) location.UpdateRequester {
			return location.NewFroyoUpdateRequester(m)
		}},
	}

	preferenceSaverVariants = []variant[preference.Context, preference.Saver]{
		{TierGingerbread, "gingerbread", func(c preference.Context) preference.Saver {
			return preference.NewGingerbreadSaver(c)
		}},
		{TierFroyo, "froyo", func(c preference.Context) preference.Saver {
			return preference.NewFroyoSaver(c)
		}},
		{TierLegacy, "legacy", func(c preference.Context) preference.Saver {
			return preference.NewLegacySaver(c)
		}},
	}
)

// VariantInfo describes one row of a decision table.
type VariantInfo struct {
	Kind    Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Name    string `json:"name" yaml:"name" toml:"name"`
	MinTier Tier   `json:"min_tier" yaml:"min_tier" toml:"min_tier"`
}

func (v variant[H, T]) info(kind Kind) VariantInfo {
	return VariantInfo{Kind: kind, Name: v.name, MinTier: v.min}
}

func describe[H, T any](kind Kind, table []variant[H, T]) []VariantInfo {
	infos := make([]VariantInfo, len(table))
	for i, v := range table {
		infos[i] = v.info(kind)
	}
	return infos
}

// Variants returns the decision table for kind, highest tier first, or nil
// for an unknown kind.
func Variants(kind Kind) []VariantInfo {
	switch kind {
	case KindLocationFinder:
		return describe(kind, locationFinderVariants)
	case KindStrictMode:
		return describe(kind, strictModeVariants)
	case KindLocationUpdateRequester:
		return describe(kind, updateRequesterVariants)
	case KindPreferenceSaver:
		return describe(kind, preferenceSaverVariants)
	default:
		return nil
	}
}

// pick returns the index of the first row whose minimum tier flags
// satisfies, or -1.
func pick[H, T any](flags Flags, table []variant[H, T]) int {
	for i, v := range table {
		if flags.Supports(v.min) {
			return i
		}
	}
	return -1
}
