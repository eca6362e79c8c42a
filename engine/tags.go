package engine

import (
	"strings"
)

// ============================================================================
// TAG CLASSIFIER — Free-text tags → membership labels
// ============================================================================
// Two independent outputs over the same raw text:
//   ClassifyTags — ordered, deduplicated display labels
//   KeywordSet   — OR-of-keywords membership test (event invitation, shuttle)
// Matching is a case-insensitive substring test. Empty input matches nothing.
// ============================================================================

// TagSet is the ordered, deduplicated set of display labels for one record.
// Order is first-seen keyword order and matters for display only.
type TagSet struct {
	labels []string
}

// ClassifyTags matches raw tag text against display keywords.
// Keywords sharing a label ("Mehndi"/"Mehendi") collapse into one tag.
func ClassifyTags(raw string, keywords []DisplayKeyword) TagSet {
	var set TagSet
	lower := strings.ToLower(raw)
	if strings.TrimSpace(lower) == "" {
		return set
	}

	for _, k := range keywords {
		kw := strings.ToLower(k.Keyword)
		if kw == "" || !strings.Contains(lower, kw) {
			continue
		}
		label := k.Label
		if label == "" {
			label = k.Keyword
		}
		if !set.Has(label) {
			set.labels = append(set.labels, label)
		}
	}
	return set
}

// Labels returns a copy of the labels in display order.
func (t TagSet) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Has reports membership; order-independent.
func (t TagSet) Has(label string) bool {
	for _, l := range t.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Len returns the number of distinct labels.
func (t TagSet) Len() int { return len(t.labels) }

// String joins labels for display.
func (t TagSet) String() string {
	return strings.Join(t.labels, " | ")
}

// ============================================================================
// KEYWORD SET — OR-of-keywords membership
// ============================================================================

// KeywordSet is a pre-lowered keyword list used for membership tests.
type KeywordSet struct {
	lowered []string
}

// NewKeywordSet builds a KeywordSet, dropping blank keywords.
func NewKeywordSet(keywords ...string) KeywordSet {
	ks := KeywordSet{lowered: make([]string, 0, len(keywords))}
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			ks.lowered = append(ks.lowered, k)
		}
	}
	return ks
}

// Match reports whether raw contains any keyword, ignoring case.
func (k KeywordSet) Match(raw string) bool {
	if raw == "" {
		return false
	}
	lower := strings.ToLower(raw)
	for _, kw := range k.lowered {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Len returns the number of usable keywords.
func (k KeywordSet) Len() int { return len(k.lowered) }

// MatchesAny is a one-shot KeywordSet match.
func MatchesAny(raw string, keywords []string) bool {
	return NewKeywordSet(keywords...).Match(raw)
}

// invitedMask evaluates event invitation for every record of a view.
func invitedMask(view RecordView, ev EventConfig) Mask {
	ks := NewKeywordSet(ev.Keywords...)
	mask := make(Mask, view.Len())
	for i := range mask {
		mask[i] = ks.Match(view.Record(i).Tags)
	}
	return mask
}
