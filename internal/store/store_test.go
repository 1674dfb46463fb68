package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/louiszeng0623/Yzeng17/internal/fixture"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return s
}

func sampleRecords() []fixture.ScheduleRecord {
	return []fixture.ScheduleRecord{
		{
			Date:        "2025-03-02",
			TimeLocal:   "20:00",
			Opponent:    "北京国安",
			Venue:       fixture.Home,
			Competition: "中超联赛",
			Stadium:     "凤凰山体育公园专业足球场",
			Status:      fixture.Normal,
		},
		{
			Date:        "2025-03-09",
			TimeLocal:   "19:35",
			Opponent:    "上海申花",
			Venue:       fixture.Away,
			Competition: "中超联赛",
			Status:      fixture.Postponed,
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := sampleRecords()

	if err := s.Save("chengdu", records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load("chengdu")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, records) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, records)
	}
}

func TestSave_FileFormat(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("chengdu", sampleRecords()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "chengdu.csv"))
	if err != nil {
		t.Fatalf("reading store file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "date,time_local,opponent,venue_role,competition,stadium,status" {
		t.Errorf("wrong header row: %q", lines[0])
	}
	if len(lines) != 3 {
		t.Errorf("expected header + 2 rows, got %d lines", len(lines))
	}
}

func TestSave_Idempotent(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	records := fixture.DedupSort(sampleRecords())

	if err := s.Save("chengdu", records); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "chengdu.csv"))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("chengdu", records); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "chengdu.csv"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("identical input must produce byte-identical store contents")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Load("nonexistent")
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if records != nil {
		t.Errorf("expected nil records, got %+v", records)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("chengdu", sampleRecords()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestCommit_EmptyResultPreservesStore(t *testing.T) {
	existing := sampleRecords()

	committed, replaced := Commit(existing, nil)
	if replaced {
		t.Error("empty result must not replace a non-empty store")
	}
	if !reflect.DeepEqual(committed, existing) {
		t.Errorf("expected existing records kept, got %+v", committed)
	}
}

func TestCommit_Replace(t *testing.T) {
	existing := sampleRecords()
	fresh := sampleRecords()[:1]

	committed, replaced := Commit(existing, fresh)
	if !replaced {
		t.Error("non-empty result must replace the store")
	}
	if !reflect.DeepEqual(committed, fresh) {
		t.Errorf("expected fresh records, got %+v", committed)
	}
}

func TestCommit_EmptyOverEmpty(t *testing.T) {
	// Writing an initially empty store is allowed.
	committed, replaced := Commit(nil, nil)
	if !replaced {
		t.Error("empty over empty must still commit")
	}
	if len(committed) != 0 {
		t.Errorf("expected empty set, got %+v", committed)
	}
}

func TestCommitAndSave_PreservesOnEmpty(t *testing.T) {
	s := newTestStore(t)
	existing := sampleRecords()
	if err := s.Save("chengdu", existing); err != nil {
		t.Fatal(err)
	}

	committed, replaced, err := s.CommitAndSave("chengdu", nil)
	if err != nil {
		t.Fatalf("CommitAndSave failed: %v", err)
	}
	if replaced {
		t.Error("store must be preserved on empty result")
	}
	if !reflect.DeepEqual(committed, existing) {
		t.Errorf("expected existing records, got %+v", committed)
	}

	after, err := s.Load("chengdu")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(after, existing) {
		t.Error("store contents changed despite the guard")
	}
}

func TestCommitAndSave_Replaces(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("chengdu", sampleRecords()); err != nil {
		t.Fatal(err)
	}

	fresh := []fixture.ScheduleRecord{{
		Date:      "2025-06-01",
		TimeLocal: "19:35",
		Opponent:  "山东泰山",
		Venue:     fixture.Away,
		Status:    fixture.Normal,
	}}

	committed, replaced, err := s.CommitAndSave("chengdu", fresh)
	if err != nil {
		t.Fatalf("CommitAndSave failed: %v", err)
	}
	if !replaced || len(committed) != 1 {
		t.Errorf("expected replacement with 1 record, got replaced=%v n=%d", replaced, len(committed))
	}

	after, err := s.Load("chengdu")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(after, fresh) {
		t.Errorf("store not replaced: %+v", after)
	}
}
