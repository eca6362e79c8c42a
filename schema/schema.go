package schema

import (
	"strings"
)

// ============================================================================
// SCHEMA — The fixed column set of a guest list export
// ============================================================================
// Column names are matched after normalization (trim + lowercase).
// Presence is resolved once at load time into a ColumnSet; the engine checks
// presence structurally instead of probing header strings.
// ============================================================================

// Column is a normalized header name of the guest list.
type Column string

// Expected columns.
const (
	FirstName      Column = "first name"
	LastName       Column = "last name"
	Phone          Column = "phone number"
	Email          Column = "email"
	Tags           Column = "tags"
	WeddingRSVP    Column = "wedding rsvp"
	ReceptionRSVP  Column = "reception rsvp"
	HaldiRSVP      Column = "haldi rsvp"
	MehndiRSVP     Column = "mehndi rsvp"
	Party          Column = "party"
	TransportReply Column = "would you like transportation to our wedding? " +
		"(please note this event will be alcohol-free)"
)

// Expected lists every column the engine knows about, in display order.
var Expected = []Column{
	FirstName, LastName, Phone, Email, Tags,
	WeddingRSVP, ReceptionRSVP, HaldiRSVP, MehndiRSVP,
	Party, TransportReply,
}

// ResponseColumns are the four tracked event-response columns.
var ResponseColumns = []Column{WeddingRSVP, ReceptionRSVP, HaldiRSVP, MehndiRSVP}

// NormalizeHeader trims and lowercases a raw header.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// IsExpected reports whether c is part of the fixed column set.
func IsExpected(c Column) bool {
	for _, e := range Expected {
		if e == c {
			return true
		}
	}
	return false
}

// ColumnSet records which expected columns are present in a dataset.
// The zero value has no columns.
type ColumnSet struct {
	present map[Column]bool
}

// NewColumnSet builds a set from the given columns.
func NewColumnSet(cols ...Column) ColumnSet {
	s := ColumnSet{present: make(map[Column]bool, len(cols))}
	for _, c := range cols {
		s.present[c] = true
	}
	return s
}

// AllColumns returns a set containing every expected column.
func AllColumns() ColumnSet {
	return NewColumnSet(Expected...)
}

// Has reports whether c is present.
func (s ColumnSet) Has(c Column) bool {
	return s.present[c]
}

// HasAll reports whether every column in cols is present.
func (s ColumnSet) HasAll(cols ...Column) bool {
	return len(s.Missing(cols...)) == 0
}

// Missing returns the columns of cols that are absent, in argument order.
func (s ColumnSet) Missing(cols ...Column) []Column {
	var missing []Column
	for _, c := range cols {
		if !s.present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Without returns a copy of the set with cols removed.
func (s ColumnSet) Without(cols ...Column) ColumnSet {
	out := ColumnSet{present: make(map[Column]bool, len(s.present))}
	for c := range s.present {
		out.present[c] = true
	}
	for _, c := range cols {
		delete(out.present, c)
	}
	return out
}

// Columns returns the present columns in Expected order.
func (s ColumnSet) Columns() []Column {
	cols := make([]Column, 0, len(s.present))
	for _, c := range Expected {
		if s.present[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Strings converts columns to plain strings.
func Strings(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}
