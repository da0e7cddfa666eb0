package platform

import (
	"strings"

	"github.com/thoreinstein/capsel/internal/errors"
)

// Kind names a capability the selector can build.
type Kind string

// The closed set of capability kinds.
const (
	KindLocationFinder          Kind = "location-finder"
	KindStrictMode              Kind = "strict-mode"
	KindLocationUpdateRequester Kind = "location-update-requester"
	KindPreferenceSaver         Kind = "preference-saver"
)

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindLocationFinder,
		KindStrictMode,
		KindLocationUpdateRequester,
		KindPreferenceSaver,
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindLocationFinder, KindStrictMode, KindLocationUpdateRequester, KindPreferenceSaver:
		return true
	default:
		return false
	}
}

// ParseKind returns the kind with the given name. Underscores are accepted
// in place of dashes.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if !k.Valid() {
		return "", errors.Wrapf(errors.ErrUnknownKind, "%q", name)
	}
	return k, nil
}
