package platform

import (
	"github.com/Masterminds/semver/v3"
)

// releaseLevels maps each platform release range to the API level it
// introduced. Ordered newest first; the first matching constraint wins.
var releaseLevels = []struct {
	constraint *semver.Constraints
	level      int
}{
	{mustConstraint(">= 4.0.3"), 15},
	{mustConstraint(">= 4.0.0"), 14},
	{mustConstraint(">= 3.2.0"), 13},
	{mustConstraint(">= 3.1.0"), 12},
	{mustConstraint(">= 3.0.0"), 11},
	{mustConstraint(">= 2.3.3"), 10},
	{mustConstraint(">= 2.3.0"), 9},
	{mustConstraint(">= 2.2.0"), 8},
	{mustConstraint(">= 2.1.0"), 7},
	{mustConstraint(">= 2.0.1"), 6},
	{mustConstraint(">= 2.0.0"), 5},
	{mustConstraint(">= 1.6.0"), 4},
	{mustConstraint(">= 1.5.0"), 3},
	{mustConstraint(">= 1.1.0"), 2},
	{mustConstraint(">= 1.0.0"), 1},
}

func mustConstraint(c string) *semver.Constraints {
	parsed, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return parsed
}

// ReleaseLevel returns the API level for a dotted release string such as
// "2.3.3". Releases newer than the table map to its newest level, which
// already satisfies every tier.
func ReleaseLevel(release string) (int, bool) {
	v, err := semver.NewVersion(release)
	if err != nil {
		return 0, false
	}
	for _, r := range releaseLevels {
		if r.constraint.Check(v) {
			return r.level, true
		}
	}
	return 0, false
}
