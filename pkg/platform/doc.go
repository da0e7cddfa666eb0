// Package platform selects host-dependent capability variants by API tier.
//
// Selection happens in two steps. [Probe] reads the host's version
// identifier once and returns immutable [Flags]. A [Selector] built from
// those flags then constructs the newest variant of each capability the
// host supports:
//
//	flags := platform.Probe(platform.FirstOf(
//	    platform.EnvSource("CAPSEL_SDK_INT"),
//	    platform.BuildPropSource("/system/build.prop"),
//	))
//	sel := platform.NewSelector(flags)
//
//	finder := sel.LocationFinder(appContext)
//	if sm, ok := sel.StrictMode(); ok {
//	    _ = sm.Enable(enforcer)
//	}
//
// # Tiers
//
// Thresholds are inclusive: a host at exactly API level 9 is Gingerbread.
// An identifier that is missing or cannot be parsed selects the Legacy
// tier, so every capability except strict mode still gets a variant.
//
// # Decision Tables
//
//	location-finder            gingerbread(9)  legacy(0)
//	strict-mode                honeycomb(11)   gingerbread(9)
//	location-update-requester  gingerbread(9)  froyo(0)
//	preference-saver           gingerbread(9)  froyo(8)  legacy(0)
//
// Strict mode has no Legacy row; below Gingerbread [Selector.StrictMode]
// reports false.
//
// # Thread Safety
//
// Flags and Selector are read-only after construction and safe for
// concurrent use. Each selection returns a fresh instance owned by the
// caller.
package platform
