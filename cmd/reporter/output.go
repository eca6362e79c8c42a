package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/amritr10/Reporter-app/engine"
	"github.com/amritr10/Reporter-app/helpers"
)

// ============================================================================
// OUTPUT — one result, five renderings
// ============================================================================
//   json    compact JSON of the payload
//   pretty  indented JSON of the payload
//   table   terminal tables followed by notes
//   text    human-readable summary lines
//   csv     the primary table, ready for Sheets
// ============================================================================

type output struct {
	payload any
	text    []string
	tables  []*engine.TableData
	notes   []string
}

func writeOutput(out output) error {
	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		w = f
	}

	if err := render(w, format, out); err != nil {
		return err
	}
	if outFile != "" {
		logger.WithField("path", outFile).Info("Output written")
	}
	return nil
}

func render(w io.Writer, format string, out output) error {
	switch format {
	case "json", "pretty":
		enc := json.NewEncoder(w)
		if format == "pretty" {
			enc.SetIndent("", "  ")
		}
		return errors.Wrap(enc.Encode(out.payload), "failed to marshal output")
	case "text":
		for _, line := range out.text {
			fmt.Fprintln(w, line)
		}
		return nil
	case "csv":
		var primary *engine.TableData
		if len(out.tables) > 0 {
			primary = out.tables[0]
		}
		return helpers.WriteTableCSV(w, primary)
	default:
		return renderTables(w, out)
	}
}

func renderTables(w io.Writer, out output) error {
	for _, t := range out.tables {
		fmt.Fprintln(w, pterm.Bold.Sprint(t.Title))
		if len(t.Rows) == 0 {
			fmt.Fprintln(w, "  (none)")
			fmt.Fprintln(w)
			continue
		}
		rendered, err := pterm.DefaultTable.WithHasHeader().WithData(t.Grid()).Srender()
		if err != nil {
			return errors.Wrapf(err, "failed to render table %q", t.Title)
		}
		fmt.Fprintln(w, rendered)
		fmt.Fprintln(w)
	}
	for _, note := range out.notes {
		fmt.Fprintln(w, note)
	}
	return nil
}

func warningNotes(warnings []engine.Warning) []string {
	notes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		notes = append(notes, pterm.Yellow("Warning: ")+engine.FormatWarning(w))
	}
	return notes
}

// loadGuestList reads and parses the guest list CSV at path.
func loadGuestList(path string) (*helpers.Parsed, error) {
	if path == "" {
		return nil, errors.New("--file is required")
	}
	f, err := os.Open(path) //nolint:gosec // User-provided guest list path
	if err != nil {
		return nil, errors.Wrap(err, "failed to read guest list")
	}
	defer f.Close()

	parsed, err := helpers.ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "guest list %s", path)
	}

	log := logger.WithField("path", path)
	for _, s := range parsed.Binding.Skipped {
		log.WithField("column", s.Column).Debug("Ignoring column: " + s.Reason)
	}
	log.WithField("records", parsed.Snapshot.Len()).Info("Guest list loaded")
	return parsed, nil
}
