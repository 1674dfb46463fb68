package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louiszeng0623/Yzeng17/internal/fixture"
)

const (
	// ProdID identifies this generator in the calendar header.
	ProdID = "-//football-fixtures-2025//EN"

	// uidDomain suffixes event UIDs.
	uidDomain = "football-fixtures"

	// EventDuration is the fixed length of every fixture event. No
	// attempt is made to model extra time.
	EventDuration = 2 * time.Hour
)

// Entry pairs a record with the tracked team it belongs to, so one
// calendar can merge fixtures of several teams.
type Entry struct {
	TeamName string
	Record   fixture.ScheduleRecord
}

// Entries wraps one team's records for serialization.
func Entries(teamName string, records []fixture.ScheduleRecord) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{TeamName: teamName, Record: r})
	}
	return entries
}

// Generate serializes entries into an iCalendar document. All event
// times are wall-clock values under the system's one named timezone
// (TZID properties), never reinterpreted into UTC, so subscribers in
// any zone see the team-local kickoff time. Returns "" for an empty
// entry set.
func Generate(calName string, entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ProdID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-TIMEZONE:%s\r\n", fixture.TimeZoneName))
	if calName != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(calName)))
	}

	for _, entry := range entries {
		writeEvent(&ics, entry)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, entry Entry) {
	r := entry.Record

	start, err := r.StartsAt()
	if err != nil {
		// A committed record always parses; a hand-edited store row
		// that does not is skipped rather than serialized wrong.
		return
	}
	end := start.Add(EventDuration)

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@%s\r\n", uuid.NewString(), uidDomain))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", time.Now().UTC().Format("20060102T150405Z")))
	ics.WriteString(fmt.Sprintf("DTSTART;TZID=%s:%s\r\n", fixture.TimeZoneName, formatLocal(start)))
	ics.WriteString(fmt.Sprintf("DTEND;TZID=%s:%s\r\n", fixture.TimeZoneName, formatLocal(end)))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary(entry.TeamName, r))))
	if desc := description(r); desc != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(desc)))
	}
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(r.Stadium)))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// summary renders the match title with the home side first. An
// unknown venue role gets a neutral separator instead of a guess.
func summary(teamName string, r fixture.ScheduleRecord) string {
	switch r.Venue {
	case fixture.Home:
		return fmt.Sprintf("%s vs %s", teamName, r.Opponent)
	case fixture.Away:
		return fmt.Sprintf("%s vs %s", r.Opponent, teamName)
	default:
		return fmt.Sprintf("%s - %s", teamName, r.Opponent)
	}
}

// description joins the non-empty parts: competition, venue-role
// label, status tag (when not Normal).
func description(r fixture.ScheduleRecord) string {
	var parts []string
	if r.Competition != "" {
		parts = append(parts, r.Competition)
	}
	switch r.Venue {
	case fixture.Home:
		parts = append(parts, "Home")
	case fixture.Away:
		parts = append(parts, "Away")
	}
	if r.Status != fixture.Normal && r.Status != "" {
		parts = append(parts, string(r.Status))
	}
	return strings.Join(parts, " | ")
}

// formatLocal formats a wall-clock instant for a TZID property. No
// trailing Z: the value is local to the declared zone.
func formatLocal(t time.Time) string {
	return t.Format("20060102T150405")
}

// escapeICS escapes text per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
