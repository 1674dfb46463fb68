package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/louiszeng0623/Yzeng17/internal/team"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const validConfig = `
teams:
  - key: chengdu
    name: 成都蓉城
    aliases: [成都蓉城, 蓉城]
    home_stadium: 凤凰山体育公园专业足球场
    sources:
      - kind: api
        url: https://api.example.com/team/29335/events
      - kind: html-table
        url: https://example.com/team/50076899.html
window:
  back_days: 3
  forward_days: 90
output:
  data_dir: /tmp/fixtures-data
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(cfg.Teams))
	}
	tc := cfg.Teams[0]
	if tc.Key != "chengdu" || tc.Name != "成都蓉城" {
		t.Errorf("wrong team: %+v", tc)
	}
	if cfg.Window.BackDays != 3 || cfg.Window.ForwardDays != 90 {
		t.Errorf("wrong window: %+v", cfg.Window)
	}
	if cfg.Output.DataDir != "/tmp/fixtures-data" {
		t.Errorf("wrong data dir: %q", cfg.Output.DataDir)
	}
	// unset output fields keep their defaults
	if cfg.Output.MergedCalendar != "calendar.ics" {
		t.Errorf("default merged calendar missing: %q", cfg.Output.MergedCalendar)
	}
}

func TestLoad_TeamConversion(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatal(err)
	}

	tm := cfg.Teams[0].Team()
	if len(tm.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(tm.Sources))
	}
	if tm.Sources[0].Kind != team.KindAPI {
		t.Errorf("source priority order lost: %+v", tm.Sources)
	}
	if tm.Sources[1].Kind != team.KindHTMLTable {
		t.Errorf("wrong second source: %+v", tm.Sources[1])
	}
}

func TestLoad_EmptyPathGivesDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(cfg.Teams) != 2 {
		t.Errorf("default config should track 2 teams, got %d", len(cfg.Teams))
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no teams", `window: {back_days: 1, forward_days: 1}`},
		{"missing key", "teams:\n  - name: x\n"},
		{"missing name", "teams:\n  - key: x\n"},
		{"duplicate key", "teams:\n  - {key: a, name: x}\n  - {key: a, name: y}\n"},
		{"unknown source kind", "teams:\n  - key: a\n    name: x\n    sources:\n      - {kind: rss, url: http://x}\n"},
		{"source missing url", "teams:\n  - key: a\n    name: x\n    sources:\n      - {kind: api}\n"},
		{"negative window", "teams:\n  - {key: a, name: x}\nwindow: {back_days: -1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}
