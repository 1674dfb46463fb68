package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	scorePattern = regexp.MustCompile(`^\d+\s*[-:]\s*\d+$`)
	datePattern  = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}月\d{1,2}日`)

	// substrings that mark a cell as a competition name
	competitionKeywords = []string{
		"联赛", "杯", "超", "冠", "锦标赛",
		"League", "Cup", "Serie", "Champions", "Liga",
	}

	// whole-cell venue statements some schedule tables carry
	venueHints = []string{"主", "主场", "客", "客场", "Home", "Away"}
)

// Table extracts candidate fixtures from rendered HTML tables. Rows
// that cannot place two team names are dropped, not defaulted.
func Table(raw string) []Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	var candidates []Candidate
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := rowCells(row)
		if len(cells) < 3 {
			return
		}
		if c, ok := rowCandidate(cells); ok {
			candidates = append(candidates, c)
		}
	})

	return candidates
}

func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.Find("td").Each(func(i int, cell *goquery.Selection) {
		if text := strings.TrimSpace(cell.Text()); text != "" {
			cells = append(cells, text)
		}
	})
	return cells
}

// rowCandidate turns one table row into a candidate. A score cell or a
// "vs" marker anchors home/away as its neighbors; failing that, the
// first two cells that look like team names are taken left to right.
func rowCandidate(cells []string) (Candidate, bool) {
	c := Candidate{}

	for _, cell := range cells {
		if c.TimeValue == nil && datePattern.MatchString(cell) {
			c.TimeValue = cell
			continue
		}
		if c.Competition == "" && isCompetition(cell) {
			c.Competition = cell
			continue
		}
		if c.Venue == "" && isVenueHint(cell) {
			c.Venue = cell
		}
	}

	anchor := -1
	for i, cell := range cells {
		if scorePattern.MatchString(cell) || strings.EqualFold(cell, "vs") {
			anchor = i
			break
		}
	}

	if anchor > 0 && anchor < len(cells)-1 {
		c.Home = cells[anchor-1]
		c.Away = cells[anchor+1]
		if scorePattern.MatchString(cells[anchor]) {
			c.Score = cells[anchor]
		}
	} else {
		var names []string
		for _, cell := range cells {
			if len(names) == 2 {
				break
			}
			if cell == c.Competition || datePattern.MatchString(cell) || isVenueHint(cell) {
				continue
			}
			if teamLike(cell) {
				names = append(names, cell)
			}
		}
		if len(names) == 2 {
			c.Home, c.Away = names[0], names[1]
		}
	}

	if c.Home == "" || c.Away == "" {
		return Candidate{}, false
	}
	return c, true
}

func isVenueHint(cell string) bool {
	for _, h := range venueHints {
		if cell == h {
			return true
		}
	}
	return false
}

func isCompetition(cell string) bool {
	for _, kw := range competitionKeywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	return false
}

// teamLike reports whether a cell plausibly holds a team name: it
// contains letters (Latin or CJK), is of bounded length, and is not a
// score.
func teamLike(cell string) bool {
	n := utf8.RuneCountInString(cell)
	if n < 2 || n > 30 {
		return false
	}
	if scorePattern.MatchString(cell) {
		return false
	}
	for _, r := range cell {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
