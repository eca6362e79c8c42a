package engine

import (
	"github.com/cockroachdb/errors"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// FILTERS — Event × Status × Shuttle composition via RecordView
// ============================================================================
// final = eventMask AND statusMask AND shuttleMask
//
//   eventMask   OR over selected events of "invited"; all-true when none selected
//   statusMask  OR over selected statuses × events to check; all-true when none
//               selected. Events to check are the selected events, or every
//               configured event when none are selected.
//   shuttleMask eligibility predicate; all-true when the flag is off
//
// Returns a SubView (index list into parent) with no data copy.
// ============================================================================

// Mask is a per-record boolean predicate aligned with a view.
type Mask []bool

// fullMask returns a mask of length n set to v.
func fullMask(n int, v bool) Mask {
	m := make(Mask, n)
	if v {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// And combines two masks element-wise in place and returns m.
func (m Mask) And(o Mask) Mask {
	for i := range m {
		m[i] = m[i] && i < len(o) && o[i]
	}
	return m
}

// Or combines two masks element-wise in place and returns m.
func (m Mask) Or(o Mask) Mask {
	for i := range m {
		m[i] = m[i] || (i < len(o) && o[i])
	}
	return m
}

// Count returns the number of true entries.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Indices returns the positions of true entries in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// ApplyFilters returns the records of view matching params, in input order.
// Selecting nothing in every dimension returns the whole view unchanged.
func ApplyFilters(view RecordView, params FilterParams, opts ...Option) (*FilterResult, error) {
	cfg := applyOptions(opts)
	log := cfg.Log.WithField("check", CheckFilter)

	predicate, warnings, err := buildPredicate(view, params, cfg)
	if err != nil {
		return nil, err
	}

	filtered := view
	if !params.IsEmpty() {
		filtered = newSubView(view, predicate.Indices())
	}

	log.WithField("events", params.Events).
		WithField("statuses", params.Statuses).
		WithField("shuttle_only", params.ShuttleOnly).
		WithField("matched", filtered.Len()).
		WithField("total", view.Len()).
		Debug("Applied guest list filter")

	if warnings == nil {
		warnings = []Warning{}
	}
	return &FilterResult{
		Total:    view.Len(),
		Matched:  filtered.Len(),
		Records:  Collect(filtered),
		Warnings: warnings,
		View:     filtered,
	}, nil
}

// BuildPredicate returns the combined filter predicate without materializing
// records.
func BuildPredicate(view RecordView, params FilterParams, opts ...Option) (Mask, []Warning, error) {
	return buildPredicate(view, params, applyOptions(opts))
}

func buildPredicate(view RecordView, params FilterParams, cfg *config) (Mask, []Warning, error) {
	events, err := resolveEvents(cfg.Vocabulary, params.Events)
	if err != nil {
		return nil, nil, err
	}
	for _, st := range params.Statuses {
		if _, err := ParseStatus(string(st)); err != nil {
			return nil, nil, err
		}
	}

	n := view.Len()
	var warnings []Warning

	// 1. Event invitation
	eventMask := fullMask(n, true)
	if len(events) > 0 {
		eventMask = fullMask(n, false)
		for _, ev := range events {
			eventMask.Or(invitedMask(view, ev))
		}
	}

	// 2. Response status
	statusMask := fullMask(n, true)
	if len(params.Statuses) > 0 {
		toCheck := events
		if len(toCheck) == 0 {
			toCheck = cfg.Vocabulary.Events
		}
		statusMask = fullMask(n, false)
		for _, ev := range toCheck {
			if !view.Columns().Has(ev.ResponseColumn) {
				warnings = append(warnings, missingColumnsWarning(CheckFilter, ev.Name,
					[]schema.Column{ev.ResponseColumn}, "response column missing; event ignored by status filter"))
				continue
			}
			statusMask.Or(statusMatch(view, ev, params.Statuses, cfg))
		}
	}

	// 3. Shuttle eligibility
	shuttleMask := fullMask(n, true)
	if params.ShuttleOnly {
		var w *Warning
		_, shuttleMask, w = partyTransport(view, cfg)
		if w != nil {
			w.Check = CheckFilter
			warnings = append(warnings, *w)
		}
	}

	return eventMask.And(statusMask).And(shuttleMask), warnings, nil
}

// statusMatch marks records whose status for ev is any of statuses.
func statusMatch(view RecordView, ev EventConfig, statuses []RSVPStatus, cfg *config) Mask {
	want := make(map[RSVPStatus]bool, len(statuses))
	for _, st := range statuses {
		parsed, _ := ParseStatus(string(st))
		want[parsed] = true
	}

	mask := make(Mask, view.Len())
	for i := range mask {
		mask[i] = want[cfg.status(view.Record(i).Value(ev.ResponseColumn))]
	}
	return mask
}

// resolveEvents maps selected names to configs, de-duplicated, in selection order.
func resolveEvents(v Vocabulary, names []string) ([]EventConfig, error) {
	seen := make(map[string]bool, len(names))
	events := make([]EventConfig, 0, len(names))
	for _, name := range names {
		ev, ok := v.Event(name)
		if !ok {
			return nil, errors.WithHintf(errors.Wrapf(ErrUnknownEvent, "%q", name),
				"configured events: %v", v.EventNames())
		}
		if seen[ev.Name] {
			continue
		}
		seen[ev.Name] = true
		events = append(events, ev)
	}
	return events, nil
}
