package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Human-readable summary lines for a Report
// ============================================================================

// BuildSummaryText renders the report as plain lines, check by check.
func BuildSummaryText(r *Report) []string {
	lines := []string{fmt.Sprintf("Guest list: %d records", r.Records)}

	switch {
	case r.Duplicates.Skipped:
		lines = append(lines, "Duplicates: check skipped (missing name columns)")
	case len(r.Duplicates.Records) == 0:
		lines = append(lines, "Duplicates: none found based on First and Last Name")
	default:
		lines = append(lines, fmt.Sprintf("Duplicates: %d entries in %d groups (same First and Last Name)",
			len(r.Duplicates.Records), len(r.Duplicates.Groups)))
	}

	switch {
	case r.MissingRSVPs.Skipped:
		lines = append(lines, "Missing RSVPs: insufficient columns")
	case len(r.MissingRSVPs.Guests) == 0:
		lines = append(lines, "Missing RSVPs: everyone has responded to at least one event")
	default:
		lines = append(lines, fmt.Sprintf("Missing RSVPs: %d guests yet to RSVP to any event",
			len(r.MissingRSVPs.Guests)))
	}

	for _, m := range r.Events {
		lines = append(lines, fmt.Sprintf("%s: invited %d, expected %d, accepted %d, declined %d, unanswered %d",
			m.Event, m.Invited, m.Expected, m.Accepted, m.Declined, m.Unanswered))
	}

	shuttle := fmt.Sprintf("Shuttle: %d tagged", r.Shuttle.Tagged)
	if r.Shuttle.Skipped {
		shuttle += ", potential individuals unavailable"
	} else {
		shuttle += fmt.Sprintf(", %d potential individuals, %d eligible", r.Shuttle.Requested, r.Shuttle.Eligible)
	}
	lines = append(lines, shuttle)

	for _, w := range r.Warnings {
		lines = append(lines, "Warning: "+FormatWarning(w))
	}
	return lines
}

// FormatWarning renders a warning as one line.
func FormatWarning(w Warning) string {
	var b strings.Builder
	b.WriteString(string(w.Check))
	if w.Event != "" {
		b.WriteString("/" + w.Event)
	}
	b.WriteString(": " + w.Message)
	if len(w.Columns) > 0 {
		fmt.Fprintf(&b, " %v", w.Columns)
	}
	return b.String()
}
