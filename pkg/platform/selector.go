package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/internal/logging"
	"github.com/thoreinstein/capsel/pkg/location"
	"github.com/thoreinstein/capsel/pkg/preference"
	"github.com/thoreinstein/capsel/pkg/strictmode"
)

// Selector builds the highest-tier variant of each capability that the
// host supports. It holds only the immutable flags it was given, so one
// Selector may be shared by any number of goroutines. Every call returns a
// new instance that belongs to the caller.
type Selector struct {
	flags  Flags
	logger *slog.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithLogger logs each decision to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSelector returns a Selector for hosts described by flags.
func NewSelector(flags Flags, opts ...Option) *Selector {
	s := &Selector{
		flags:  flags,
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Flags returns the flags the selector decides with.
func (s *Selector) Flags() Flags {
	return s.flags
}

// LocationFinder returns a last-known-location finder built from ctx.
func (s *Selector) LocationFinder(ctx location.Context) location.LastLocationFinder {
	v := choose(s, KindLocationFinder, locationFinderVariants)
	return v.build(ctx)
}

// StrictMode returns a strict-mode variant, or false when the host is
// older than every variant.
func (s *Selector) StrictMode() (strictmode.StrictMode, bool) {
	v, ok := chooseOptional(s, KindStrictMode, strictModeVariants)
	if !ok {
		return nil, false
	}
	return v.build(struct{}{}), true
}

// RequireStrictMode is StrictMode for callers that treat absence as an
// error. The error wraps errors.ErrUnsupported.
func (s *Selector) RequireStrictMode() (strictmode.StrictMode, error) {
	sm, ok := s.StrictMode()
	if !ok {
		oldest := strictModeVariants[len(strictModeVariants)-1].min
		err := errors.Wrapf(errors.ErrUnsupported, "%s on %s", KindStrictMode, s.flags)
		return nil, errors.WithHint(err, fmt.Sprintf("strict mode requires API level %d (%s) or newer",
			oldest.Threshold(), oldest))
	}
	return sm, nil
}

// LocationUpdateRequester returns an update requester bound to m.
func (s *Selector) LocationUpdateRequester(m location.Manager) location.UpdateRequester {
	v := choose(s, KindLocationUpdateRequester, updateRequesterVariants)
	return v.build(m)
}

// PreferenceSaver returns a preference saver built from ctx.
func (s *Selector) PreferenceSaver(ctx preference.Context) preference.Saver {
	v := choose(s, KindPreferenceSaver, preferenceSaverVariants)
	return v.build(ctx)
}

// Resolve reports which variant of kind the selector would build, without
// building it. It returns false for an unsupported or unknown kind.
func (s *Selector) Resolve(kind Kind) (VariantInfo, bool) {
	switch kind {
	case KindLocationFinder:
		return resolve(s, kind, locationFinderVariants)
	case KindStrictMode:
		return resolve(s, kind, strictModeVariants)
	case KindLocationUpdateRequester:
		return resolve(s, kind, updateRequesterVariants)
	case KindPreferenceSaver:
		return resolve(s, kind, preferenceSaverVariants)
	default:
		return VariantInfo{}, false
	}
}

func resolve[H, T any](s *Selector, kind Kind, table []variant[H, T]) (VariantInfo, bool) {
	v, ok := chooseOptional(s, kind, table)
	if !ok {
		return VariantInfo{}, false
	}
	return v.info(kind), true
}

// choose is chooseOptional for tables whose last row is TierLegacy, which
// every host satisfies.
func choose[H, T any](s *Selector, kind Kind, table []variant[H, T]) variant[H, T] {
	v, ok := chooseOptional(s, kind, table)
	if !ok {
		return table[len(table)-1]
	}
	return v
}

func chooseOptional[H, T any](s *Selector, kind Kind, table []variant[H, T]) (variant[H, T], bool) {
	ctx := context.Background()
	i := pick(s.flags, table)

	skipped := table
	if i >= 0 {
		skipped = table[:i]
	}
	for _, v := range skipped {
		s.logger.Log(ctx, logging.LevelTrace, "skipping variant",
			"kind", kind, "variant", v.name, "requires", v.min)
	}

	if i < 0 {
		s.logger.DebugContext(ctx, "no compatible variant",
			"kind", kind, "tier", s.flags.Tier(), "level", s.flags.Level())
		return variant[H, T]{}, false
	}
	v := table[i]
	s.logger.DebugContext(ctx, "selected variant",
		"kind", kind, "variant", v.name, "tier", s.flags.Tier(), "level", s.flags.Level())
	return v, true
}
