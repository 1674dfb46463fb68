package team

import "strings"

// SourceKind identifies the extraction strategy a source requires.
type SourceKind string

const (
	KindAPI          SourceKind = "api"
	KindEmbeddedJSON SourceKind = "embedded-json"
	KindHTMLTable    SourceKind = "html-table"
)

// Source is one upstream location for a team's schedule.
// Sources are tried in list order; earlier entries have priority.
type Source struct {
	Kind SourceKind `json:"kind"`
	URL  string     `json:"url"`
}

// Team is the tracked team's identity and its ordered upstream sources.
// Loaded once at startup and read-only thereafter.
type Team struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	HomeStadium string   `json:"home_stadium"`
	Sources     []Source `json:"sources"`
}

// Matches reports whether free-text candidateName refers to the team
// identified by aliases. Both sides are normalized by stripping all
// whitespace; an alias matching as a substring counts. Case is
// preserved, since the alias vocabulary is largely CJK.
func Matches(candidateName string, aliases []string) bool {
	candidate := stripSpace(candidateName)
	if candidate == "" {
		return false
	}
	for _, alias := range aliases {
		a := stripSpace(alias)
		if a == "" {
			continue
		}
		if strings.Contains(candidate, a) {
			return true
		}
	}
	return false
}

// Identifies reports whether name refers to this team.
func (t Team) Identifies(name string) bool {
	return Matches(name, t.Aliases)
}

// stripSpace removes all whitespace, including full-width spaces that
// show up in scraped CJK text.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "　", " ")), "")
}
