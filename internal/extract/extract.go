package extract

import "github.com/louiszeng0623/Yzeng17/internal/team"

// Func is the shared extractor contract: raw upstream content in,
// candidate fixtures out. Extractors are pure and restartable; total
// failure yields an empty slice, never an error.
type Func func(raw string) []Candidate

// ForKind returns the extractor strategy for a source kind, or nil for
// an unknown kind.
func ForKind(kind team.SourceKind) Func {
	switch kind {
	case team.KindAPI:
		return API
	case team.KindEmbeddedJSON:
		return Embedded
	case team.KindHTMLTable:
		return Table
	default:
		return nil
	}
}
