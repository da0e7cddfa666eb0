package location

import (
	"time"

	"github.com/thoreinstein/capsel/internal/errors"
)

// PassiveProvider receives fixes that other requests on the host produce,
// without powering a provider itself.
const PassiveProvider = "passive"

// ErrNoProvider is returned when no enabled provider satisfies a request.
var ErrNoProvider = errors.New("no location provider available")

// Location is a single position fix.
type Location struct {
	Provider  string
	Latitude  float64
	Longitude float64
	// Accuracy is the radius of 68% confidence, in meters.
	Accuracy float64
	Time     time.Time
}

// Accuracy is a coarse accuracy requirement for choosing a provider.
type Accuracy int

const (
	// AccuracyCoarse accepts network-level positions.
	AccuracyCoarse Accuracy = iota
	// AccuracyFine requires satellite-level positions.
	AccuracyFine
)

// Criteria describes the provider a request needs.
type Criteria struct {
	Accuracy Accuracy
}

// Listener receives location fixes. Implementations are compared by
// identity when updates are removed, so pass pointers.
type Listener interface {
	LocationChanged(Location)
}

// Manager is the host's location service handle. Methods marked
// Gingerbread+ are only called by variants selected for those hosts.
type Manager interface {
	// Providers lists provider names, optionally only enabled ones.
	Providers(enabledOnly bool) []string
	// LastKnownLocation returns the provider's most recent fix.
	LastKnownLocation(provider string) (Location, bool)
	// BestProvider returns the provider that best meets c.
	BestProvider(c Criteria, enabledOnly bool) (string, bool)
	// RequestUpdates registers l for periodic fixes from provider.
	RequestUpdates(provider string, minTime time.Duration, minDistance float64, l Listener) error
	// RequestCriteriaUpdates registers l for fixes from whichever provider
	// meets c. Gingerbread+.
	RequestCriteriaUpdates(minTime time.Duration, minDistance float64, c Criteria, l Listener) error
	// RequestSingleUpdate delivers one fix meeting c to l. Gingerbread+.
	RequestSingleUpdate(c Criteria, l Listener) error
	// RemoveUpdates unregisters l from every request.
	RemoveUpdates(l Listener) error
}

// Context is the execution context a LastLocationFinder is built from.
type Context interface {
	LocationManager() Manager
}

// LastLocationFinder finds the best recent fix the host already has.
type LastLocationFinder interface {
	// LastBestLocation returns the most accurate fix newer than since, or
	// the newest fix if none is that recent. When a changed-location
	// listener is set and the result is older than since or less accurate
	// than minDistance meters, one fresh fix is requested for the listener.
	LastBestLocation(minDistance float64, since time.Time) (Location, bool)
	// SetChangedLocationListener sets the listener for fresh fixes.
	SetChangedLocationListener(l Listener)
	// Cancel abandons an outstanding fresh-fix request.
	Cancel()
}

// UpdateRequester registers listeners for periodic location updates.
type UpdateRequester interface {
	RequestLocationUpdates(minTime time.Duration, minDistance float64, c Criteria, l Listener) error
	RequestPassiveLocationUpdates(minTime time.Duration, minDistance float64, l Listener) error
	RemoveLocationUpdates(l Listener) error
}
