package extract

import "strings"

// Candidate is the loosely-typed output of an extractor: a bag of
// fields that may or may not be present. Candidates have no
// evidentiary value until the normalizer accepts them.
type Candidate struct {
	// TimeValue holds whatever the source provided for kickoff time:
	// epoch seconds, epoch milliseconds (as float64 after JSON
	// decoding) or a date/time string.
	TimeValue   any
	Home        string
	Away        string
	Competition string
	Stadium     string
	Status      string
	Score       string
	// Venue is an explicit home/away statement from the source, when
	// it makes one ("Home", "Away", "主", "客"). Empty otherwise.
	Venue string
}

// key vocabularies for duck-typed fixture objects, in lookup order
var (
	timeKeys  = []string{"matchTime", "startTimestamp", "time", "matchDate"}
	homeKeys  = []string{"homeTeam", "home"}
	awayKeys  = []string{"awayTeam", "away"}
	compKeys  = []string{"competitionName", "leagueName"}
	venueKeys = []string{"stadium", "venue"}
)

// shape is one recognized key-set signature for "looks like a fixture".
// Keeping the signatures enumerable makes each one testable on its own.
type shape struct {
	name    string
	matches func(map[string]any) bool
}

var fixtureShapes = []shape{
	{"time+teams", func(m map[string]any) bool {
		return hasAny(m, timeKeys) && hasAny(m, homeKeys) && hasAny(m, awayKeys)
	}},
	{"time+competition", func(m map[string]any) bool {
		return hasAny(m, timeKeys) && hasAny(m, compKeys)
	}},
	{"teams+competition", func(m map[string]any) bool {
		return hasAny(m, homeKeys) && hasAny(m, awayKeys) && hasAny(m, compKeys)
	}},
}

// classify returns the name of the first shape signature the object
// matches, or false if it does not look like a fixture.
func classify(m map[string]any) (string, bool) {
	for _, s := range fixtureShapes {
		if s.matches(m) {
			return s.name, true
		}
	}
	return "", false
}

func hasAny(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// fromObject builds a Candidate from a fixture-shaped object. It must
// survive any subset of fields being absent or oddly typed.
func fromObject(m map[string]any) Candidate {
	c := Candidate{
		Home:        teamName(firstValue(m, homeKeys)),
		Away:        teamName(firstValue(m, awayKeys)),
		Competition: competitionName(m),
		Stadium:     stringValue(firstValue(m, venueKeys)),
		Status:      stringValue(m["status"]),
		Score:       scoreValue(m),
	}
	if v := firstValue(m, timeKeys); v != nil {
		c.TimeValue = v
	}
	return c
}

func firstValue(m map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// teamName digs a display name out of a team field, which sources
// encode either as a plain string or as an object with one of several
// name keys.
func teamName(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		for _, k := range []string{"name", "teamName", "shortName"} {
			if s := stringValue(t[k]); s != "" {
				return s
			}
		}
	}
	return ""
}

func competitionName(m map[string]any) string {
	if s := stringValue(firstValue(m, compKeys)); s != "" {
		return s
	}
	// nested variant: {"competition": {"name": ...}} or {"tournament": {"name": ...}}
	for _, k := range []string{"competition", "tournament"} {
		if nested, ok := m[k].(map[string]any); ok {
			if s := stringValue(nested["name"]); s != "" {
				return s
			}
		}
	}
	return ""
}

func scoreValue(m map[string]any) string {
	for _, k := range []string{"fullScore", "score"} {
		if s := stringValue(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
