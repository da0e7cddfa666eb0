// Package preference defines the preference-saving capability and its
// variants.
package preference

import (
	"github.com/thoreinstein/capsel/internal/errors"
)

// Editor is the host's pending preference edit.
type Editor interface {
	// Commit writes the edit synchronously.
	Commit() error
	// Apply writes the edit asynchronously. Gingerbread+.
	Apply()
}

// BackupManager is notified when backed-up data changes. Froyo+.
type BackupManager interface {
	DataChanged()
}

// Context is the execution context a Saver is built from.
type Context interface {
	BackupManager() BackupManager
}

// Saver persists a preference edit.
type Saver interface {
	// Save writes e. When backup is true and the variant supports it, the
	// host's backup service is told the data changed.
	Save(e Editor, backup bool) error
}

// LegacySaver commits synchronously and has no backup service.
type LegacySaver struct {
	ctx Context
}

// NewLegacySaver returns the variant for hosts below Froyo.
func NewLegacySaver(ctx Context) *LegacySaver {
	return &LegacySaver{ctx: ctx}
}

// Save implements Saver. backup is ignored.
func (s *LegacySaver) Save(e Editor, _ bool) error {
	return errors.Wrap(e.Commit(), "committing preferences")
}

// FroyoSaver commits synchronously and requests a backup.
type FroyoSaver struct {
	ctx Context
}

// NewFroyoSaver returns the variant for Froyo hosts.
func NewFroyoSaver(ctx Context) *FroyoSaver {
	return &FroyoSaver{ctx: ctx}
}

// Save implements Saver.
func (s *FroyoSaver) Save(e Editor, backup bool) error {
	if err := e.Commit(); err != nil {
		return errors.Wrap(err, "committing preferences")
	}
	notifyBackup(s.ctx, backup)
	return nil
}

// GingerbreadSaver applies asynchronously and requests a backup.
type GingerbreadSaver struct {
	ctx Context
}

// NewGingerbreadSaver returns the variant for Gingerbread and newer hosts.
func NewGingerbreadSaver(ctx Context) *GingerbreadSaver {
	return &GingerbreadSaver{ctx: ctx}
}

// Save implements Saver. It never fails; write errors surface on the host.
func (s *GingerbreadSaver) Save(e Editor, backup bool) error {
	e.Apply()
	notifyBackup(s.ctx, backup)
	return nil
}

func notifyBackup(ctx Context, backup bool) {
	if !backup || ctx == nil {
		return
	}
	if bm := ctx.BackupManager(); bm != nil {
		bm.DataChanged()
	}
}
