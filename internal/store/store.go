package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louiszeng0623/Yzeng17/internal/fixture"
)

// header is the fixed column set of the canonical store, one row per
// record. Column order is stable across runs.
var header = []string{"date", "time_local", "opponent", "venue_role", "competition", "stadium", "status"}

// Store persists canonical schedule records as one CSV file per team.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir, creating it if needed.
func New(dataDir string) (*Store, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path(teamKey string) string {
	return filepath.Join(s.dataDir, teamKey+".csv")
}

// Load reads a team's canonical records. A missing file is an empty
// store, not an error.
func (s *Store) Load(teamKey string) ([]fixture.ScheduleRecord, error) {
	f, err := os.Open(s.path(teamKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]fixture.ScheduleRecord, 0, len(rows)-1)
	for _, row := range rows[1:] { // skip header
		if len(row) != len(header) {
			return nil, fmt.Errorf("malformed store row: %v", row)
		}
		records = append(records, fixture.ScheduleRecord{
			Date:        row[0],
			TimeLocal:   row[1],
			Opponent:    row[2],
			Venue:       fixture.VenueRole(row[3]),
			Competition: row[4],
			Stadium:     row[5],
			Status:      fixture.StatusTag(row[6]),
		})
	}
	return records, nil
}

// Save writes a team's canonical records, replacing the previous file
// atomically via a temp file and rename. The store is single-writer
// per team; rename is all the locking discipline required.
func (s *Store) Save(teamKey string, records []fixture.ScheduleRecord) error {
	tmp, err := os.CreateTemp(s.dataDir, teamKey+"-*.csv.tmp")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Date, r.TimeLocal, r.Opponent, string(r.Venue), r.Competition, r.Stadium, string(r.Status)}
		if err := writer.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp store: %w", err)
	}

	if err := os.Rename(tmpName, s.path(teamKey)); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

// Commit applies the persistence guard: an empty resolution result
// never erases previously known-good records. A stale calendar beats
// an empty one caused by a transient upstream outage.
//
// It returns the record set the store should hold and whether that
// means replacing the existing contents.
func Commit(existing, fresh []fixture.ScheduleRecord) ([]fixture.ScheduleRecord, bool) {
	if len(fresh) == 0 && len(existing) > 0 {
		return existing, false
	}
	return fresh, true
}

// CommitAndSave loads the team's existing records, applies the guard,
// and writes the chosen set back. It returns the committed records and
// whether the store was replaced.
func (s *Store) CommitAndSave(teamKey string, fresh []fixture.ScheduleRecord) ([]fixture.ScheduleRecord, bool, error) {
	existing, err := s.Load(teamKey)
	if err != nil {
		return nil, false, err
	}

	committed, replaced := Commit(existing, fresh)
	if !replaced {
		return committed, false, nil
	}

	if err := s.Save(teamKey, committed); err != nil {
		return nil, false, err
	}
	return committed, true, nil
}
