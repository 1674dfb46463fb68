package fixture

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// TimeZoneName is the single named timezone for the whole system.
// Dates and local times in ScheduleRecord are wall-clock values in
// this zone, never reinterpreted into the viewer's zone.
const TimeZoneName = "Asia/Shanghai"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns the team-local timezone. Falls back to a fixed
// UTC+8 zone if the tzdata lookup fails.
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(TimeZoneName)
		if err != nil {
			l = time.FixedZone("CST", 8*60*60)
		}
		loc = l
	})
	return loc
}

// VenueRole says whether the tracked team plays at home or away.
type VenueRole string

const (
	Home    VenueRole = "Home"
	Away    VenueRole = "Away"
	Unknown VenueRole = "Unknown"
)

// StatusTag is the canonical match status mapped from free-text
// source vocabulary.
type StatusTag string

const (
	Normal    StatusTag = "Normal"
	Postponed StatusTag = "Postponed"
	Cancelled StatusTag = "Cancelled"
	TimeTBD   StatusTag = "TimeTBD"
	Finished  StatusTag = "Finished"
)

// ScheduleRecord is one canonical fixture. Records are immutable once
// produced; corrections happen by re-running the pipeline.
type ScheduleRecord struct {
	Date        string    `json:"date"`       // DateLayout, team-local
	TimeLocal   string    `json:"time_local"` // TimeLayout, team-local
	Opponent    string    `json:"opponent"`
	Venue       VenueRole `json:"venue_role"`
	Competition string    `json:"competition,omitempty"`
	Stadium     string    `json:"stadium,omitempty"`
	Status      StatusTag `json:"status"`
}

// Key is the identity tuple for deduplication. Two records with equal
// keys are the same fixture regardless of other field differences.
func (r ScheduleRecord) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s", r.Date, r.TimeLocal, r.Opponent, r.Competition)
}

// StartsAt resolves the record's kickoff instant in the team-local zone.
func (r ScheduleRecord) StartsAt() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.TimeLocal, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing record time: %w", err)
	}
	return t, nil
}

// DedupSort deduplicates records by identity key and returns them in
// ascending (date, time, opponent, competition) order. On a key
// collision the first occurrence in input order wins; later duplicates
// are discarded, not merged. The input slice is not modified.
func DedupSort(records []ScheduleRecord) []ScheduleRecord {
	seen := make(map[string]bool, len(records))
	out := make([]ScheduleRecord, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	return out
}

// less orders records ascending by (date, time, opponent, competition).
func less(a, b ScheduleRecord) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.TimeLocal != b.TimeLocal {
		return a.TimeLocal < b.TimeLocal
	}
	if a.Opponent != b.Opponent {
		return a.Opponent < b.Opponent
	}
	return a.Competition < b.Competition
}
