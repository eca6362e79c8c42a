// Package reporter analyzes wedding guest lists exported from an RSVP site.
// Guest list reporting for the wedding planner.
//
// Usage:
//
//	import (
//	    "github.com/amritr10/Reporter-app/engine"
//	    "github.com/amritr10/Reporter-app/helpers"
//	)
//
//	parsed, err := helpers.ParseCSV(data)
//	report := engine.Analyze(parsed.Snapshot,
//	    engine.WithVocabulary(engine.DefaultVocabulary()),
//	)
//
// The engine takes a snapshot of guest records and returns the data checks
// (duplicates, guests with no RSVP) and summaries (per-event attendance,
// shuttle bus demand). Filters select ordered subsets of the same snapshot.
//
// Loading CSV is handled by the helpers package. The engine performs no I/O.
package reporter
