// Package normalize maps loosely-typed candidate fixtures into
// canonical schedule records: resolving a concrete instant out of
// whichever time field the source provided, deciding the tracked
// team's venue role, and mapping free-text status vocabulary to
// canonical tags.
//
// Candidates without a resolvable time or venue role are rejected
// rather than defaulted.
package normalize
