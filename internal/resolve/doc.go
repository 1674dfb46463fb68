// Package resolve implements the resolution cascade: the ordered
// fallback sequence of extraction sources tried until one yields
// usable records.
//
// The cascade is an explicit state machine (Idle, TryingSource,
// Resolved, Exhausted). Exhausted is a normal, recordable outcome,
// not an error.
package resolve
