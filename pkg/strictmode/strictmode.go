// Package strictmode defines the diagnostic strict-mode capability.
//
// A StrictMode variant decides which thread and VM policies to install; the
// host's [Enforcer] installs them. No variant exists below Gingerbread.
package strictmode

import (
	"strings"

	"github.com/thoreinstein/capsel/internal/errors"
)

// Detect is a set of conditions a policy watches for.
type Detect uint

// Detections.
const (
	DetectDiskReads Detect = 1 << iota
	DetectDiskWrites
	DetectNetwork
	DetectLeakedSQLiteObjects
	DetectLeakedClosableObjects

	DetectAll = DetectDiskReads | DetectDiskWrites | DetectNetwork |
		DetectLeakedSQLiteObjects | DetectLeakedClosableObjects
)

// Penalty is a set of reactions to a detected violation.
type Penalty uint

// Penalties.
const (
	PenaltyLog Penalty = 1 << iota
	PenaltyFlashScreen
	PenaltyDeath
)

var penaltyNames = []struct {
	p    Penalty
	name string
}{
	{PenaltyLog, "log"},
	{PenaltyFlashScreen, "flash-screen"},
	{PenaltyDeath, "death"},
}

func (p Penalty) String() string {
	var names []string
	for _, n := range penaltyNames {
		if p&n.p != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Policy is one thread or VM policy.
type Policy struct {
	Detect  Detect
	Penalty Penalty
}

// Enforcer is the host's diagnostics handle.
type Enforcer interface {
	SetThreadPolicy(Policy) error
	SetVMPolicy(Policy) error
}

// StrictMode enables diagnostics on a host.
type StrictMode interface {
	Enable(e Enforcer) error
}

func enable(e Enforcer, thread, vm Policy) error {
	if err := e.SetThreadPolicy(thread); err != nil {
		return errors.Wrap(err, "setting thread policy")
	}
	return errors.Wrap(e.SetVMPolicy(vm), "setting vm policy")
}

// Gingerbread logs every violation. It is the oldest strict-mode variant.
type Gingerbread struct {
	thread, vm Policy
}

// NewGingerbread returns the Gingerbread variant.
func NewGingerbread() *Gingerbread {
	p := Policy{Detect: DetectAll, Penalty: PenaltyLog}
	return &Gingerbread{thread: p, vm: p}
}

// Enable implements StrictMode.
func (g *Gingerbread) Enable(e Enforcer) error {
	return enable(e, g.thread, g.vm)
}

// Honeycomb also flashes the screen on thread-policy violations.
type Honeycomb struct {
	thread, vm Policy
}

// NewHoneycomb returns the Honeycomb variant.
func NewHoneycomb() *Honeycomb {
	return &Honeycomb{
		thread: Policy{Detect: DetectAll, Penalty: PenaltyLog | PenaltyFlashScreen},
		vm:     Policy{Detect: DetectAll, Penalty: PenaltyLog},
	}
}

// Enable implements StrictMode.
func (h *Honeycomb) Enable(e Enforcer) error {
	return enable(e, h.thread, h.vm)
}
