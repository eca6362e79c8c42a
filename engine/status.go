package engine

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ============================================================================
// RSVP STATUS RESOLVER
// ============================================================================

// RSVPStatus is the normalized response to one event.
type RSVPStatus string

const (
	Accepted   RSVPStatus = "Accepted"
	Declined   RSVPStatus = "Declined"
	Unanswered RSVPStatus = "Unanswered"
	// Ambiguous is non-empty text matching neither keyword. It is excluded
	// from every standard tally.
	Ambiguous RSVPStatus = "Ambiguous"
)

// FilterableStatuses are the statuses a filter may select.
var FilterableStatuses = []RSVPStatus{Accepted, Declined, Unanswered}

// NormalizeResponse trims and lowercases response text.
func NormalizeResponse(response string) string {
	return strings.ToLower(strings.TrimSpace(response))
}

// ResolveStatus classifies response text. It is total over all strings.
// The accept keyword is checked before the decline keyword.
func ResolveStatus(response string, v Vocabulary) RSVPStatus {
	norm := NormalizeResponse(response)
	if norm == "" {
		return Unanswered
	}
	if kw := strings.ToLower(v.AcceptKeyword); kw != "" && strings.Contains(norm, kw) {
		return Accepted
	}
	if kw := strings.ToLower(v.DeclineKeyword); kw != "" && strings.Contains(norm, kw) {
		return Declined
	}
	return Ambiguous
}

// ParseStatus parses a filterable status name, ignoring case.
func ParseStatus(s string) (RSVPStatus, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, st := range FilterableStatuses {
		if strings.ToLower(string(st)) == want {
			return st, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidStatus, "%q", s)
}
