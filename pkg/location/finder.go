package location

import (
	"math"
	"sync"
	"time"
)

// bestLastKnown scans every provider's last fix. It prefers the most
// accurate fix newer than since; if none is newer it keeps the newest.
func bestLastKnown(m Manager, since time.Time) (best Location, bestAccuracy float64, found bool) {
	bestAccuracy = math.MaxFloat64
	var bestTime time.Time

	for _, provider := range m.Providers(false) {
		loc, ok := m.LastKnownLocation(provider)
		if !ok {
			continue
		}
		switch {
		case loc.Time.After(since) && loc.Accuracy < bestAccuracy:
			best, bestAccuracy, bestTime, found = loc, loc.Accuracy, loc.Time, true
		case !loc.Time.After(since) && bestAccuracy == math.MaxFloat64 && (!found || loc.Time.After(bestTime)):
			best, bestTime, found = loc, loc.Time, true
		}
	}
	return best, bestAccuracy, found
}

// needsFreshFix reports whether the best fix is too old or too coarse.
func needsFreshFix(best Location, bestAccuracy float64, found bool, minDistance float64, since time.Time) bool {
	return !found || best.Time.Before(since) || bestAccuracy > minDistance
}

// oneShot forwards the first fix it receives to the finder's listener.
// With unregister set it also removes itself from the manager, for hosts
// that can only deliver periodic updates. A spent shot ignores later fixes,
// so a cancelled request never reaches the listener even if the host
// delivers one in flight.
type oneShot struct {
	m          Manager
	fwd        func() Listener
	done       func(*oneShot)
	unregister bool

	mu    sync.Mutex
	spent bool
}

// spend marks the shot used and reports whether it was still live.
func (o *oneShot) spend() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.spent {
		return false
	}
	o.spent = true
	return true
}

func (o *oneShot) LocationChanged(loc Location) {
	if !o.spend() {
		return
	}
	if l := o.fwd(); l != nil {
		l.LocationChanged(loc)
	}
	if o.unregister {
		_ = o.m.RemoveUpdates(o)
	}
	o.done(o)
}

// withdraw spends a live shot and removes it from the manager.
func (o *oneShot) withdraw() {
	if o.spend() {
		_ = o.m.RemoveUpdates(o)
	}
}

type finderBase struct {
	ctx Context

	mu       sync.Mutex
	listener Listener
	pending  *oneShot
}

func (f *finderBase) SetChangedLocationListener(l Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = l
}

func (f *finderBase) Cancel() {
	f.mu.Lock()
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()

	if pending != nil {
		pending.withdraw()
	}
}

func (f *finderBase) currentListener() Listener {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listener
}

// settle forgets o once it has fired.
func (f *finderBase) settle(o *oneShot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending == o {
		f.pending = nil
	}
}

// requestFresh replaces any outstanding request with a new one-shot
// listener handed to send. Nothing is requested without a changed-location
// listener. A request the host rejects is dropped, so Cancel never removes
// a listener the host does not hold.
func (f *finderBase) requestFresh(unregister bool, send func(Manager, Listener) error) {
	m := f.ctx.LocationManager()
	shot := &oneShot{m: m, fwd: f.currentListener, done: f.settle, unregister: unregister}

	f.mu.Lock()
	if f.listener == nil {
		f.mu.Unlock()
		return
	}
	prev := f.pending
	// tracked before send so a concurrent Cancel withdraws it
	f.pending = shot
	f.mu.Unlock()

	if prev != nil {
		prev.withdraw()
	}

	if err := send(m, shot); err != nil {
		shot.spend()
		f.settle(shot)
	}
}

// LegacyLastLocationFinder works on every host. It asks for a fresh fix by
// registering for updates on the best enabled provider and unregistering
// after the first callback.
type LegacyLastLocationFinder struct {
	finderBase
	criteria Criteria
}

// NewLegacyLastLocationFinder returns a finder for hosts below Gingerbread.
func NewLegacyLastLocationFinder(ctx Context) *LegacyLastLocationFinder {
	return &LegacyLastLocationFinder{
		finderBase: finderBase{ctx: ctx},
		criteria:   Criteria{Accuracy: AccuracyCoarse},
	}
}

// LastBestLocation implements LastLocationFinder.
func (f *LegacyLastLocationFinder) LastBestLocation(minDistance float64, since time.Time) (Location, bool) {
	m := f.ctx.LocationManager()
	best, accuracy, found := bestLastKnown(m, since)

	if needsFreshFix(best, accuracy, found, minDistance, since) {
		f.requestFresh(true, func(mgr Manager, shot Listener) error {
			provider, ok := mgr.BestProvider(f.criteria, true)
			if !ok {
				return ErrNoProvider
			}
			return mgr.RequestUpdates(provider, 0, 0, shot)
		})
	}
	return best, found
}

// GingerbreadLastLocationFinder asks the host for a single fresh fix.
type GingerbreadLastLocationFinder struct {
	finderBase
	criteria Criteria
}

// NewGingerbreadLastLocationFinder returns a finder for Gingerbread and
// newer hosts.
func NewGingerbreadLastLocationFinder(ctx Context) *GingerbreadLastLocationFinder {
	return &GingerbreadLastLocationFinder{
		finderBase: finderBase{ctx: ctx},
		criteria:   Criteria{Accuracy: AccuracyCoarse},
	}
}

// LastBestLocation implements LastLocationFinder.
func (f *GingerbreadLastLocationFinder) LastBestLocation(minDistance float64, since time.Time) (Location, bool) {
	m := f.ctx.LocationManager()
	best, accuracy, found := bestLastKnown(m, since)

	if needsFreshFix(best, accuracy, found, minDistance, since) {
		f.requestFresh(false, func(mgr Manager, shot Listener) error {
			return mgr.RequestSingleUpdate(f.criteria, shot)
		})
	}
	return best, found
}
