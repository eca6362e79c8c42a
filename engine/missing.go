package engine

import (
	"strings"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// MISSING RSVP DETECTOR — guests silent on every tracked event
// ============================================================================
// Only emptiness matters here. Ambiguous, accepted and declined text all count
// as "responded".
// ============================================================================

// FindMissingRSVPs returns guests whose four event responses are all blank,
// each with display tags and a follow-up message.
// All four response columns must be present; otherwise no results are
// produced and a warning is attached.
func FindMissingRSVPs(view RecordView, opts ...Option) (MissingReport, []Warning) {
	cfg := applyOptions(opts)
	log := cfg.Log.WithField("check", CheckMissingRSVPs)

	if missing := view.Columns().Missing(schema.ResponseColumns...); len(missing) > 0 {
		log.WithField("columns", schema.Strings(missing)).Warn("Missing RSVP check skipped")
		return MissingReport{Skipped: true}, []Warning{
			missingColumnsWarning(CheckMissingRSVPs, "", missing, "insufficient columns"),
		}
	}

	report := MissingReport{Guests: []MissingRSVP{}}
	for i := 0; i < view.Len(); i++ {
		r := view.Record(i)
		if !unresponsive(r) {
			continue
		}
		report.Guests = append(report.Guests, MissingRSVP{
			Record:      r,
			DisplayTags: ClassifyTags(r.Tags, cfg.Vocabulary.DisplayKeywords).Labels(),
			Message:     RenderOutreach(r, cfg.Outreach),
		})
	}

	log.WithField("guests", len(report.Guests)).Debug("Missing RSVP check complete")
	return report, nil
}

// unresponsive reports whether every tracked response is blank.
func unresponsive(r GuestRecord) bool {
	for _, col := range schema.ResponseColumns {
		if strings.TrimSpace(r.Value(col)) != "" {
			return false
		}
	}
	return true
}
