package engine

import (
	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// EXECUTOR — Runs every check over one snapshot
// ============================================================================
// Entry point: Analyze(view, opts...)
//
// Pipeline:
//   1. Resolve column presence (already structural on the view)
//   2. Duplicate check
//   3. Missing RSVP check
//   4. Per-event metrics
//   5. Shuttle summary
//   6. Collect warnings in check order
//
// Checks are independent: a missing column degrades only the checks that need
// it. This function performs no I/O and keeps no state between calls.
// ============================================================================

// Analyze runs all checks and returns a render-ready Report.
func Analyze(view RecordView, opts ...Option) *Report {
	cfg := applyOptions(opts)
	// Reuse the resolved config for every check.
	opts = []Option{
		WithVocabulary(cfg.Vocabulary),
		WithOutreach(cfg.Outreach),
		WithLogger(cfg.Log),
	}
	if cfg.AmbiguousAsUnanswered {
		opts = append(opts, WithAmbiguousAsUnanswered())
	}

	cols := view.Columns()
	cfg.Log.WithField("records", view.Len()).
		WithField("columns", len(cols.Columns())).
		Info("Analyzing guest list")

	report := &Report{
		Records:        view.Len(),
		Columns:        schema.Strings(cols.Columns()),
		MissingColumns: schema.Strings(cols.Missing(schema.Expected...)),
		Preview:        Head(view, cfg.PreviewRows),
		Warnings:       []Warning{},
	}

	var warnings []Warning

	report.Duplicates, warnings = FindDuplicates(view, opts...)
	report.Warnings = append(report.Warnings, warnings...)

	report.MissingRSVPs, warnings = FindMissingRSVPs(view, opts...)
	report.Warnings = append(report.Warnings, warnings...)

	report.Events, warnings = AggregateEvents(view, opts...)
	report.Warnings = append(report.Warnings, warnings...)

	report.Shuttle, warnings = ResolveShuttle(view, opts...)
	report.Warnings = append(report.Warnings, warnings...)

	cfg.Log.WithField("duplicates", len(report.Duplicates.Records)).
		WithField("missing_rsvps", len(report.MissingRSVPs.Guests)).
		WithField("warnings", len(report.Warnings)).
		Info("Analysis complete")

	return report
}
