package engine

import (
	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// ENGINE TYPES — Guest List Analytics
// ============================================================================
// Records arrive already parsed and column-normalized. The engine reads them
// through a RecordView, never mutates them, and returns new derived values.
// ============================================================================

// ============================================================================
// GUEST RECORD
// ============================================================================

// GuestRecord is one row of the guest list.
// Absent cells are empty strings; column presence lives on the view.
type GuestRecord struct {
	// ID is assigned once when the snapshot is created (the row's position in
	// the uploaded set) and survives filtering.
	ID int `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Tags      string `json:"tags"`

	Wedding   string `json:"wedding"`
	Reception string `json:"reception"`
	Haldi     string `json:"haldi"`
	Mehndi    string `json:"mehndi"`

	Party     string `json:"party,omitempty"`
	Transport string `json:"transport,omitempty"`
}

// Value returns the cell for an expected column.
func (r GuestRecord) Value(col schema.Column) string {
	switch col {
	case schema.FirstName:
		return r.FirstName
	case schema.LastName:
		return r.LastName
	case schema.Phone:
		return r.Phone
	case schema.Email:
		return r.Email
	case schema.Tags:
		return r.Tags
	case schema.WeddingRSVP:
		return r.Wedding
	case schema.ReceptionRSVP:
		return r.Reception
	case schema.HaldiRSVP:
		return r.Haldi
	case schema.MehndiRSVP:
		return r.Mehndi
	case schema.Party:
		return r.Party
	case schema.TransportReply:
		return r.Transport
	}
	return ""
}

// ============================================================================
// WARNINGS — non-fatal, per check
// ============================================================================

// Check names one analysis step.
type Check string

const (
	CheckDuplicates   Check = "duplicates"
	CheckMissingRSVPs Check = "missing_rsvps"
	CheckEventMetrics Check = "event_metrics"
	CheckShuttle      Check = "shuttle"
	CheckFilter       Check = "filter"
)

// Warning reports that a check degraded because required columns are absent.
// Sibling checks are unaffected.
type Warning struct {
	Check   Check    `json:"check"`
	Event   string   `json:"event,omitempty"`
	Columns []string `json:"columns"`
	Message string   `json:"message"`
}

func missingColumnsWarning(check Check, event string, cols []schema.Column, message string) Warning {
	return Warning{
		Check:   check,
		Event:   event,
		Columns: schema.Strings(cols),
		Message: message,
	}
}

// ============================================================================
// CHECK RESULTS
// ============================================================================

// DuplicateGroup is a set of records sharing one exact (first, last) name pair.
type DuplicateGroup struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Records   []GuestRecord `json:"records"`
}

// DuplicateReport lists every record belonging to a name group of size > 1.
type DuplicateReport struct {
	Skipped bool             `json:"skipped"`
	Records []GuestRecord    `json:"records"`
	Groups  []DuplicateGroup `json:"groups"`
}

// MissingRSVP is a guest who left all four event responses blank.
type MissingRSVP struct {
	Record      GuestRecord `json:"record"`
	DisplayTags []string    `json:"displayTags"`
	Message     string      `json:"message"`
}

// MissingReport is the result of the missing-RSVP check.
type MissingReport struct {
	Skipped bool          `json:"skipped"`
	Guests  []MissingRSVP `json:"guests"`
}

// EventMetrics are the response counts for one configured event.
// Ambiguous responses are reported separately and never counted in
// Accepted, Declined or Unanswered.
type EventMetrics struct {
	Event          string `json:"event"`
	ResponseColumn string `json:"responseColumn"`
	Invited        int    `json:"invited"`
	Expected       int    `json:"expected"`
	Accepted       int    `json:"accepted"`
	Declined       int    `json:"declined"`
	Unanswered     int    `json:"unanswered"`
	Ambiguous      int    `json:"ambiguous"`
	ColumnMissing  bool   `json:"columnMissing,omitempty"`
}

// ShuttleSummary holds both shuttle outputs.
type ShuttleSummary struct {
	// Tagged counts records carrying the shuttle keyword in their tags.
	Tagged int `json:"tagged"`
	// Requested counts records whose party asked for transportation.
	Requested int `json:"requested"`
	// Eligible is Requested minus individuals who declined the wedding.
	Eligible int `json:"eligible"`
	// Skipped is set when the party or transport column is absent.
	Skipped bool `json:"skipped"`
}

// ============================================================================
// REPORT — output of Analyze
// ============================================================================

// Report is the full data-check and summary output for one snapshot.
type Report struct {
	Records        int             `json:"records"`
	Columns        []string        `json:"columns"`
	MissingColumns []string        `json:"missingColumns,omitempty"`
	Preview        []GuestRecord   `json:"preview"`
	Duplicates     DuplicateReport `json:"duplicates"`
	MissingRSVPs   MissingReport   `json:"missingRsvps"`
	Events         []EventMetrics  `json:"events"`
	Shuttle        ShuttleSummary  `json:"shuttle"`
	Warnings       []Warning       `json:"warnings"`
}

// ============================================================================
// FILTER TYPES
// ============================================================================

// FilterParams selects a subset of the guest list.
// Empty Events and Statuses and a false ShuttleOnly select everything.
type FilterParams struct {
	Events      []string     `json:"events"`
	Statuses    []RSVPStatus `json:"statuses"`
	ShuttleOnly bool         `json:"shuttleOnly"`
}

// IsEmpty reports whether no dimension is constrained.
func (p FilterParams) IsEmpty() bool {
	return len(p.Events) == 0 && len(p.Statuses) == 0 && !p.ShuttleOnly
}

// FilterResult is the ordered subset of records matching FilterParams.
type FilterResult struct {
	Total    int           `json:"total"`
	Matched  int           `json:"matched"`
	Records  []GuestRecord `json:"records"`
	Warnings []Warning     `json:"warnings"`
	View     RecordView    `json:"-"`
}
