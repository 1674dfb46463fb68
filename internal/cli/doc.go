// Package cli implements the command-line interface for fixtures.
//
// The cli package provides the Cobra-based CLI and the run orchestration:
// resolving each configured team through the cascade, committing the
// canonical CSV store behind the persistence guard, regenerating the
// per-team and merged iCalendar files, and reporting per-team,
// per-source results so operators can tell clean runs from degraded
// ones.
package cli
