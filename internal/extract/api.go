package extract

import "encoding/json"

// apiListPaths are the known result-shape variants of the structured
// API, in priority order. Each path is a chain of object keys leading
// to the fixture list; an empty chain means the document root is the
// list itself. The first variant yielding a non-empty list wins;
// partial hits from different variants are never merged.
var apiListPaths = [][]string{
	{"events"},
	{"data", "events"},
	{"data", "matches"},
	{},
}

// API extracts candidate fixtures from a structured JSON document.
// Malformed documents and unknown shapes yield an empty result, never
// an error; the cascade treats both the same way.
func API(raw string) []Candidate {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}

	for _, path := range apiListPaths {
		items, ok := listAt(doc, path)
		if !ok {
			continue
		}
		candidates := make([]Candidate, 0, len(items))
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if _, ok := classify(obj); !ok {
				continue
			}
			candidates = append(candidates, fromObject(obj))
		}
		if len(candidates) > 0 {
			return candidates
		}
	}

	return nil
}

// listAt walks a key path into doc and returns the list found there.
func listAt(doc any, path []string) ([]any, bool) {
	current := doc
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	list, ok := current.([]any)
	return list, ok
}
