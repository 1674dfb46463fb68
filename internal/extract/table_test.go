package extract

import (
	"os"
	"testing"
)

func TestTable_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/schedule_table.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	candidates := Table(string(data))
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}

	// "vs" marker row
	if candidates[0].Home != "成都蓉城" || candidates[0].Away != "北京国安" {
		t.Errorf("vs row wrong teams: %+v", candidates[0])
	}
	if candidates[0].Score != "" {
		t.Errorf("vs row should have no score, got %q", candidates[0].Score)
	}
	if candidates[0].Competition != "中超联赛" {
		t.Errorf("wrong competition: %q", candidates[0].Competition)
	}

	// score row
	if candidates[1].Home != "上海申花" || candidates[1].Away != "成都蓉城" {
		t.Errorf("score row wrong teams: %+v", candidates[1])
	}
	if candidates[1].Score != "2-1" {
		t.Errorf("score row missing score, got %q", candidates[1].Score)
	}

	// no-anchor row falls back to left-to-right team-like cells
	if candidates[2].Home != "成都蓉城" || candidates[2].Away != "山东泰山" {
		t.Errorf("fallback row wrong teams: %+v", candidates[2])
	}
	if candidates[2].Competition != "足协杯" {
		t.Errorf("fallback row wrong competition: %q", candidates[2].Competition)
	}
	if s, ok := candidates[2].TimeValue.(string); !ok || s != "2025-04-01" {
		t.Errorf("fallback row wrong time value: %v", candidates[2].TimeValue)
	}
}

func TestTable_DropsRowsWithoutTwoTeams(t *testing.T) {
	raw := `<table>
		<tr><td>2025-03-02</td><td>中超联赛</td><td>成都蓉城</td></tr>
		<tr><td>1</td><td>2</td><td>3</td></tr>
	</table>`

	if candidates := Table(raw); len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestTable_ColonScore(t *testing.T) {
	raw := `<table>
		<tr><td>2025-03-02 20:00</td><td>中超联赛</td><td>成都蓉城</td><td>0:0</td><td>北京国安</td></tr>
	</table>`

	candidates := Table(raw)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Home != "成都蓉城" || candidates[0].Away != "北京国安" {
		t.Errorf("wrong teams: %+v", candidates[0])
	}
}

func TestTable_NoTables(t *testing.T) {
	if candidates := Table(`<html><body><p>no schedule here</p></body></html>`); len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestTable_NotHTML(t *testing.T) {
	// goquery tolerates arbitrary text; result must simply be empty.
	if candidates := Table("{}"); len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestTeamLike(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"成都蓉城", true},
		{"Inter Milan", true},
		{"北京国安", true},
		{"2-1", false},
		{"19:35", false},
		{"x", false},
		{"", false},
		{"一个非常非常非常非常非常非常非常非常非常非常非常非常非常非常非常非常长的名字", false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			if got := teamLike(tt.cell); got != tt.want {
				t.Errorf("teamLike(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}
