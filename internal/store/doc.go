// Package store persists the canonical schedule between pipeline runs
// as one UTF-8 CSV file per team, with a fixed header and stable
// column order. Replacement is atomic (temp file + rename), and the
// persistence guard keeps an upstream outage from erasing known-good
// records with an empty result.
package store
