package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the run report in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeText(w io.Writer, result *RunResult, verbose bool) error {
	for _, tr := range result.Teams {
		if tr.Err != "" {
			fmt.Fprintf(w, "%s: FAILED: %s\n", tr.Name, tr.Err)
			continue
		}

		label := "ok"
		switch {
		case tr.Preserved:
			label = "preserved previous store"
		case tr.Degraded:
			label = "degraded (fallback source)"
		}
		fmt.Fprintf(w, "%s: %d records (%s)\n", tr.Name, tr.Records, label)

		if verbose {
			for i, a := range tr.Attempts {
				status := fmt.Sprintf("%d candidates, %d kept", a.Candidates, a.Kept)
				if a.Err != "" {
					status = "error: " + a.Err
				}
				fmt.Fprintf(w, "  source %d [%s]: %s\n", i, a.Kind, status)
			}
		}
	}

	for _, path := range result.Calendars {
		fmt.Fprintf(w, "wrote %s\n", path)
	}

	return nil
}
