// Package location defines the location capabilities a host can provide and
// the variants of each.
//
// Hosts implement [Manager] (and [Context] for finders). Variants only call
// the Manager methods that exist at their tier, so a Froyo host never sees
// RequestCriteriaUpdates or RequestSingleUpdate.
//
// # Last known location
//
//   - [LegacyLastLocationFinder]: every host. Requests a fresh fix through
//     periodic updates and unregisters after the first one.
//   - [GingerbreadLastLocationFinder]: Gingerbread and newer. Requests a
//     single update.
//
// # Update requests
//
//   - [FroyoUpdateRequester]: resolves the best provider itself.
//   - [GingerbreadUpdateRequester]: passes the criteria to the host.
//
// Choose between variants with platform.Selector rather than constructing
// them directly.
package location
