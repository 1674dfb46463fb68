package extract

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Known embedding conventions for serialized page state, in priority
// order. Nuxt-style assignment first, then the generic initial-state
// assignment, then JSON script blocks.
var (
	nuxtStatePattern    = regexp.MustCompile(`(?s)window\.__NUXT__\s*=\s*(\{.*?\});`)
	initialStatePattern = regexp.MustCompile(`(?s)__INITIAL_STATE__\s*=\s*(\{.*?\});`)
)

// Embedded extracts candidate fixtures from markup carrying serialized
// state in script blocks. The first block that parses as JSON is
// walked recursively; every nested object whose key set matches a
// fixture shape becomes a candidate.
func Embedded(raw string) []Candidate {
	for _, block := range stateBlocks(raw) {
		doc, ok := parseState(block)
		if !ok {
			continue
		}
		var candidates []Candidate
		walk(doc, func(obj map[string]any) {
			candidates = append(candidates, fromObject(obj))
		})
		return candidates
	}
	return nil
}

// stateBlocks collects raw candidate JSON blobs from the markup in
// convention priority order.
func stateBlocks(raw string) []string {
	var blocks []string

	if m := nuxtStatePattern.FindStringSubmatch(raw); m != nil {
		blocks = append(blocks, m[1])
	}
	if m := initialStatePattern.FindStringSubmatch(raw); m != nil {
		blocks = append(blocks, m[1])
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return blocks
	}
	doc.Find(`script[type="application/json"]`).Each(func(i int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	return blocks
}

// parseState parses a scraped JSON blob, tolerating a trailing
// semicolon and line comments some pages leave in.
func parseState(raw string) (any, bool) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ";")

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err == nil {
		return doc, true
	}

	stripped := regexp.MustCompile(`(?m)//.*$`).ReplaceAllString(raw, "")
	stripped = strings.TrimSuffix(strings.TrimSpace(stripped), ";")
	if err := json.Unmarshal([]byte(stripped), &doc); err == nil {
		return doc, true
	}

	return nil, false
}

// walk visits every container in the document, at any depth, and
// calls visit for each object that classifies as a fixture. Matched
// objects are still descended into, since some sources nest fixture
// lists inside fixture-shaped wrappers.
func walk(node any, visit func(map[string]any)) {
	switch n := node.(type) {
	case map[string]any:
		if _, ok := classify(n); ok {
			visit(n)
		}
		// Sorted keys keep candidate order deterministic across runs.
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(n[k], visit)
		}
	case []any:
		for _, v := range n {
			walk(v, visit)
		}
	}
}
