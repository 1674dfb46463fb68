package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/louiszeng0623/Yzeng17/internal/calendar"
	"github.com/louiszeng0623/Yzeng17/internal/config"
	"github.com/louiszeng0623/Yzeng17/internal/fixture"
	"github.com/louiszeng0623/Yzeng17/internal/logger"
	"github.com/louiszeng0623/Yzeng17/internal/resolve"
	"github.com/louiszeng0623/Yzeng17/internal/store"
)

// Runner wires the cascade, store, and calendar output for a run over
// a set of teams.
type Runner struct {
	Store   *store.Store
	Cascade *resolve.Cascade
	Output  config.OutputConfig
}

// TeamResult reports what happened for one team.
type TeamResult struct {
	Key       string            `json:"key"`
	Name      string            `json:"name"`
	State     resolve.State     `json:"state"`
	Attempts  []resolve.Attempt `json:"attempts,omitempty"`
	Records   int               `json:"records"`
	Preserved bool              `json:"preserved"` // guard kept the previous store
	Degraded  bool              `json:"degraded"`
	Err       string            `json:"error,omitempty"`
}

// RunResult is the whole run's report.
type RunResult struct {
	CheckedAt time.Time    `json:"checked_at"`
	Teams     []TeamResult `json:"teams"`
	Calendars []string     `json:"calendars,omitempty"`
}

// ExitCode maps the run outcome onto the process exit convention:
// any team error wins over degradation, degradation over success.
func (r *RunResult) ExitCode() int {
	code := ExitSuccess
	for _, tr := range r.Teams {
		if tr.Err != "" {
			return ExitError
		}
		if tr.Degraded || tr.Preserved {
			code = ExitDegraded
		}
	}
	return code
}

// Run resolves every team, commits stores, and regenerates calendars.
// A fatal error for one team never stops the others or corrupts their
// stores.
func (r *Runner) Run(ctx context.Context, teams []config.TeamConfig) *RunResult {
	result := &RunResult{CheckedAt: time.Now().UTC()}

	if r.Output.CalendarDir != "" {
		if err := os.MkdirAll(r.Output.CalendarDir, 0755); err != nil {
			logger.Error("creating calendar directory", logger.Fields{"dir": r.Output.CalendarDir}, err)
		}
	}

	var merged []calendar.Entry
	for _, tc := range teams {
		tr, committed := r.runTeam(ctx, tc)
		result.Teams = append(result.Teams, tr)
		merged = append(merged, calendar.Entries(tc.Name, committed)...)

		if tr.Err == "" {
			if path, err := r.writeTeamCalendar(tc, committed); err != nil {
				logger.Error("writing team calendar", logger.Fields{"team": tc.Key}, err)
			} else if path != "" {
				result.Calendars = append(result.Calendars, path)
			}
		}
	}

	if path, err := r.writeMergedCalendar(merged); err != nil {
		logger.Error("writing merged calendar", logger.Fields{}, err)
	} else if path != "" {
		result.Calendars = append(result.Calendars, path)
	}

	return result
}

func (r *Runner) runTeam(ctx context.Context, tc config.TeamConfig) (TeamResult, []fixture.ScheduleRecord) {
	tr := TeamResult{Key: tc.Key, Name: tc.Name}

	outcome, err := r.Cascade.Resolve(ctx, tc.Team())
	if err != nil {
		tr.Err = err.Error()
		logger.Error("resolution aborted", logger.Fields{"team": tc.Key}, err)
		logger.IncrCounter("teams.failed")
		return tr, nil
	}

	tr.State = outcome.State
	tr.Attempts = outcome.Attempts
	tr.Degraded = outcome.Degraded()

	committed, replaced, err := r.Store.CommitAndSave(tc.Key, outcome.Records)
	if err != nil {
		tr.Err = err.Error()
		logger.Error("committing store", logger.Fields{"team": tc.Key}, err)
		logger.IncrCounter("teams.failed")
		return tr, nil
	}
	tr.Records = len(committed)
	tr.Preserved = !replaced && len(committed) > 0

	logger.Info("team resolved", logger.Fields{
		"team":      tc.Key,
		"state":     string(outcome.State),
		"records":   tr.Records,
		"attempts":  len(outcome.Attempts),
		"preserved": tr.Preserved,
		"degraded":  tr.Degraded,
	})
	if tr.Degraded {
		logger.IncrCounter("teams.degraded")
	} else {
		logger.IncrCounter("teams.clean")
	}

	return tr, committed
}

func (r *Runner) writeTeamCalendar(tc config.TeamConfig, records []fixture.ScheduleRecord) (string, error) {
	ics := calendar.Generate(tc.Name, calendar.Entries(tc.Name, records))
	if ics == "" {
		return "", nil
	}
	path := filepath.Join(r.Output.CalendarDir, "calendar_"+tc.Key+".ics")
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *Runner) writeMergedCalendar(entries []calendar.Entry) (string, error) {
	if r.Output.MergedCalendar == "" {
		return "", nil
	}
	ics := calendar.Generate("Football Fixtures", entries)
	if ics == "" {
		return "", nil
	}
	path := filepath.Join(r.Output.CalendarDir, r.Output.MergedCalendar)
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return "", err
	}
	return path, nil
}
