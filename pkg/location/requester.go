package location

import (
	"time"

	"github.com/thoreinstein/capsel/internal/errors"
)

// FroyoUpdateRequester resolves a concrete provider for each request. It is
// the fallback for every host below Gingerbread.
type FroyoUpdateRequester struct {
	m Manager
}

// NewFroyoUpdateRequester returns a requester bound to m.
func NewFroyoUpdateRequester(m Manager) *FroyoUpdateRequester {
	return &FroyoUpdateRequester{m: m}
}

// RequestLocationUpdates registers l on the best enabled provider for c.
func (r *FroyoUpdateRequester) RequestLocationUpdates(minTime time.Duration, minDistance float64, c Criteria, l Listener) error {
	provider, ok := r.m.BestProvider(c, true)
	if !ok {
		return ErrNoProvider
	}
	return errors.Wrapf(r.m.RequestUpdates(provider, minTime, minDistance, l), "requesting updates from %s", provider)
}

// RequestPassiveLocationUpdates registers l on the passive provider.
func (r *FroyoUpdateRequester) RequestPassiveLocationUpdates(minTime time.Duration, minDistance float64, l Listener) error {
	return errors.Wrap(r.m.RequestUpdates(PassiveProvider, minTime, minDistance, l), "requesting passive updates")
}

// RemoveLocationUpdates unregisters l.
func (r *FroyoUpdateRequester) RemoveLocationUpdates(l Listener) error {
	return errors.Wrap(r.m.RemoveUpdates(l), "removing updates")
}

// GingerbreadUpdateRequester lets the host pick the provider from the
// criteria on every fix.
type GingerbreadUpdateRequester struct {
	FroyoUpdateRequester
}

// NewGingerbreadUpdateRequester returns a requester bound to m.
func NewGingerbreadUpdateRequester(m Manager) *GingerbreadUpdateRequester {
	return &GingerbreadUpdateRequester{FroyoUpdateRequester{m: m}}
}

// RequestLocationUpdates registers l for fixes meeting c.
func (r *GingerbreadUpdateRequester) RequestLocationUpdates(minTime time.Duration, minDistance float64, c Criteria, l Listener) error {
	return errors.Wrap(r.m.RequestCriteriaUpdates(minTime, minDistance, c, l), "requesting criteria updates")
}
