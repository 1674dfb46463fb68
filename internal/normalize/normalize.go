package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/louiszeng0623/Yzeng17/internal/extract"
	"github.com/louiszeng0623/Yzeng17/internal/fixture"
	"github.com/louiszeng0623/Yzeng17/internal/team"
)

// epochMillisThreshold separates epoch seconds from epoch
// milliseconds: values above it are milliseconds.
const epochMillisThreshold = 1e12

// DefaultKickoff is the local time assumed when a source gives a date
// but no time of day.
const DefaultKickoff = "20:00"

var (
	finishedScorePattern = regexp.MustCompile(`^\d+\s*-\s*\d+$`)

	// "3月2日 19:35" style dates; the year is the current one in the
	// team-local zone.
	cjkDatePattern = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日(?:\s*(\d{1,2}):(\d{2}))?$`)
)

// statusVocabulary maps free-text status substrings to canonical tags.
// Lookup is in declaration order against the lowercased status text.
var statusVocabulary = []struct {
	needle string
	tag    fixture.StatusTag
}{
	{"推迟", fixture.Postponed},
	{"延期", fixture.Postponed},
	{"postpone", fixture.Postponed},
	{"取消", fixture.Cancelled},
	{"cancel", fixture.Cancelled},
	{"待定", fixture.TimeTBD},
	{"tbd", fixture.TimeTBD},
	{"完场", fixture.Finished},
	{"已结束", fixture.Finished},
	{"finish", fixture.Finished},
	{"full time", fixture.Finished},
	{"ended", fixture.Finished},
}

// Normalize maps one candidate into a canonical record for the given
// team. The second return value is false when the candidate carries
// too little evidence: no resolvable time, or a venue role that can
// neither be read from the source nor derived from alias matching.
func Normalize(c extract.Candidate, t team.Team) (fixture.ScheduleRecord, bool) {
	instant, hasClock, ok := resolveInstant(c.TimeValue)
	if !ok {
		return fixture.ScheduleRecord{}, false
	}

	local := instant.In(fixture.Location())
	record := fixture.ScheduleRecord{
		Date:        local.Format(fixture.DateLayout),
		TimeLocal:   local.Format(fixture.TimeLayout),
		Competition: c.Competition,
		Stadium:     c.Stadium,
		Status:      mapStatus(c.Status, c.Score),
	}
	if !hasClock {
		record.TimeLocal = DefaultKickoff
	}

	venue, opponent, ok := resolveVenue(c, t)
	if !ok {
		return fixture.ScheduleRecord{}, false
	}
	record.Venue = venue
	record.Opponent = opponent

	if record.Venue == fixture.Home && record.Stadium == "" {
		record.Stadium = t.HomeStadium
	}

	return record, true
}

// All returns the records surviving normalization of a candidate
// batch. A malformed candidate is dropped alone; its siblings are
// unaffected.
func All(candidates []extract.Candidate, t team.Team) []fixture.ScheduleRecord {
	records := make([]fixture.ScheduleRecord, 0, len(candidates))
	for _, c := range candidates {
		if r, ok := Normalize(c, t); ok {
			records = append(records, r)
		}
	}
	return records
}

// resolveInstant turns whatever time field the source provided into a
// concrete instant. hasClock reports whether the source stated a time
// of day, as opposed to a bare date.
func resolveInstant(v any) (instant time.Time, hasClock, ok bool) {
	switch t := v.(type) {
	case float64:
		return fromEpoch(t), true, true
	case int:
		return fromEpoch(float64(t)), true, true
	case int64:
		return fromEpoch(float64(t)), true, true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, false, false
		}
		return fromEpoch(f), true, true
	case string:
		return fromString(t)
	}
	return time.Time{}, false, false
}

func fromEpoch(v float64) time.Time {
	if v > epochMillisThreshold {
		return time.UnixMilli(int64(v))
	}
	return time.Unix(int64(v), 0)
}

func fromString(s string) (time.Time, bool, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}

	hasClock := strings.Contains(s, ":")
	loc := fixture.Location()

	if m := cjkDatePattern.FindStringSubmatch(s); m != nil {
		month, day := atoi(m[1]), atoi(m[2])
		hour, minute := 0, 0
		if m[3] != "" {
			hour, minute = atoi(m[3]), atoi(m[4])
		}
		year := time.Now().In(loc).Year()
		t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
		return t, m[3] != "", true
	}

	layouts := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04:05Z07:00",
		"2006/01/02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, hasClock, true
		}
	}

	// Last resort for the long tail of upstream formats.
	if t, err := dateparse.ParseIn(s, loc); err == nil {
		return t, hasClock, true
	}

	return time.Time{}, false, false
}

// resolveVenue decides the tracked team's venue role and the opponent
// name. An explicit statement from the source is trusted; otherwise
// alias matching against both sides decides. If neither side is the
// tracked team, or both are, the candidate is rejected rather than
// guessed at.
func resolveVenue(c extract.Candidate, t team.Team) (fixture.VenueRole, string, bool) {
	homeIsUs := t.Identifies(c.Home)
	awayIsUs := t.Identifies(c.Away)

	if explicit, ok := explicitVenue(c.Venue); ok {
		opponent := c.Away
		if awayIsUs || (explicit == fixture.Away && !homeIsUs) {
			opponent = c.Home
		}
		if opponent == "" || t.Identifies(opponent) {
			return fixture.Unknown, "", false
		}
		return explicit, opponent, true
	}

	switch {
	case homeIsUs && !awayIsUs && c.Away != "":
		return fixture.Home, c.Away, true
	case awayIsUs && !homeIsUs && c.Home != "":
		return fixture.Away, c.Home, true
	}
	return fixture.Unknown, "", false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func explicitVenue(v string) (fixture.VenueRole, bool) {
	switch strings.TrimSpace(v) {
	case "Home", "home", "主", "主场":
		return fixture.Home, true
	case "Away", "away", "客", "客场":
		return fixture.Away, true
	}
	return fixture.Unknown, false
}

// mapStatus maps free-text status to a canonical tag. A bare score
// with no status text means the match has been played.
func mapStatus(status, score string) fixture.StatusTag {
	text := strings.ToLower(strings.TrimSpace(status))
	if text == "ft" {
		return fixture.Finished
	}
	for _, entry := range statusVocabulary {
		if text != "" && strings.Contains(text, entry.needle) {
			return entry.tag
		}
	}
	if text == "" && finishedScorePattern.MatchString(strings.TrimSpace(score)) {
		return fixture.Finished
	}
	return fixture.Normal
}
