package resolve

import (
	"context"
	"fmt"
	"time"

	"github.com/louiszeng0623/Yzeng17/internal/extract"
	"github.com/louiszeng0623/Yzeng17/internal/fetch"
	"github.com/louiszeng0623/Yzeng17/internal/fixture"
	"github.com/louiszeng0623/Yzeng17/internal/logger"
	"github.com/louiszeng0623/Yzeng17/internal/normalize"
	"github.com/louiszeng0623/Yzeng17/internal/team"
)

// State is the cascade's position in its life cycle.
type State string

const (
	Idle         State = "Idle"
	TryingSource State = "TryingSource"
	Resolved     State = "Resolved"
	Exhausted    State = "Exhausted"
)

// Fetcher is the external collaborator that retrieves raw content.
// It owns its own timeout and retry policy.
type Fetcher interface {
	Fetch(ctx context.Context, url string, hint fetch.ContentHint) (string, error)
}

// Window bounds which normalized records count as current: a fixed
// look-back and look-forward horizon in days around "now", evaluated
// in the team-local timezone. Both boundaries are inclusive.
type Window struct {
	BackDays    int
	ForwardDays int
}

// Contains reports whether t falls inside the window around now.
func (w Window) Contains(t, now time.Time) bool {
	lo := now.AddDate(0, 0, -w.BackDays)
	hi := now.AddDate(0, 0, w.ForwardDays)
	return !t.Before(lo) && !t.After(hi)
}

// Attempt records what one source contributed, for operator reporting.
type Attempt struct {
	Kind       team.SourceKind `json:"kind"`
	URL        string          `json:"url"`
	Err        string          `json:"error,omitempty"`
	Candidates int             `json:"candidates"`
	Kept       int             `json:"kept"`
}

// Outcome is the cascade's terminal result for one team.
type Outcome struct {
	State    State                    `json:"state"`
	Source   int                      `json:"source"` // index of the resolved source, -1 when exhausted
	Records  []fixture.ScheduleRecord `json:"records"`
	Attempts []Attempt                `json:"attempts"`
}

// Degraded reports whether the run fell back past the first source or
// produced nothing at all. Operators use this to detect upstream drift.
func (o *Outcome) Degraded() bool {
	return o.State == Exhausted || o.Source > 0
}

// Cascade tries a team's sources strictly in priority order and
// short-circuits on the first one yielding usable records.
type Cascade struct {
	fetcher Fetcher
	window  Window

	// Now is the clock used for window filtering; overridable in tests.
	Now func() time.Time
}

// New creates a cascade over the given fetch collaborator and window.
func New(fetcher Fetcher, window Window) *Cascade {
	return &Cascade{
		fetcher: fetcher,
		window:  window,
		Now:     time.Now,
	}
}

// Resolve runs the cascade for one team. Lower-priority sources are
// never consulted once a higher-priority one yields a non-empty
// filtered set, even a partial one. A team with no sources is the one
// fatal configuration error; it aborts this team only.
func (c *Cascade) Resolve(ctx context.Context, t team.Team) (*Outcome, error) {
	if len(t.Sources) == 0 {
		return nil, fmt.Errorf("team %s: no sources configured", t.Key)
	}

	now := c.Now().In(fixture.Location())
	outcome := &Outcome{State: Idle, Source: -1}

	for i, src := range t.Sources {
		outcome.State = TryingSource
		attempt := Attempt{Kind: src.Kind, URL: src.URL}

		records, err := c.trySource(ctx, src, t, now, &attempt)
		if err != nil {
			attempt.Err = err.Error()
		}
		outcome.Attempts = append(outcome.Attempts, attempt)

		if len(records) > 0 {
			outcome.State = Resolved
			outcome.Source = i
			outcome.Records = fixture.DedupSort(records)
			return outcome, nil
		}

		logger.Debug("source produced nothing, advancing cascade", logger.Fields{
			"team":   t.Key,
			"source": i,
			"kind":   string(src.Kind),
		})
	}

	outcome.State = Exhausted
	return outcome, nil
}

func (c *Cascade) trySource(ctx context.Context, src team.Source, t team.Team, now time.Time, attempt *Attempt) ([]fixture.ScheduleRecord, error) {
	extractor := extract.ForKind(src.Kind)
	if extractor == nil {
		return nil, fmt.Errorf("unknown source kind %q", src.Kind)
	}

	hint := fetch.HintRendered
	if src.Kind == team.KindAPI {
		hint = fetch.HintStructured
	}

	raw, err := c.fetcher.Fetch(ctx, src.URL, hint)
	if err != nil {
		return nil, err
	}

	candidates := extractor(raw)
	attempt.Candidates = len(candidates)

	var kept []fixture.ScheduleRecord
	for _, record := range normalize.All(candidates, t) {
		start, err := record.StartsAt()
		if err != nil {
			continue
		}
		if c.window.Contains(start, now) {
			kept = append(kept, record)
		}
	}
	attempt.Kept = len(kept)

	return kept, nil
}
