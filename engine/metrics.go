package engine

import (
	"fmt"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// EVENT METRICS AGGREGATOR
// ============================================================================
// Per event:
//   invited    = records whose tags match any of the event's keywords
//   accepted / declined / unanswered = statuses within the invited subset
//   expected   = invited − declined
//
// A missing response column zeroes the response counts for that event only.
// ============================================================================

// AggregateEvents computes metrics for every configured event, in order.
func AggregateEvents(view RecordView, opts ...Option) ([]EventMetrics, []Warning) {
	cfg := applyOptions(opts)
	log := cfg.Log.WithField("check", CheckEventMetrics)

	var warnings []Warning
	if !view.Columns().Has(schema.Tags) {
		log.Warn("Tags column missing, every record treated as untagged")
		warnings = append(warnings, missingColumnsWarning(CheckEventMetrics, "",
			[]schema.Column{schema.Tags}, "tags column missing; nobody counts as invited"))
	}

	metrics := make([]EventMetrics, 0, len(cfg.Vocabulary.Events))
	for _, ev := range cfg.Vocabulary.Events {
		m, w := aggregateEvent(view, ev, cfg)
		if w != nil {
			log.WithField("event", ev.Name).WithField("column", ev.ResponseColumn).
				Warn("Response column missing")
			warnings = append(warnings, *w)
		}
		log.WithField("event", m.Event).
			WithField("invited", m.Invited).
			WithField("expected", m.Expected).
			Debug("Event metrics computed")
		metrics = append(metrics, m)
	}

	return metrics, warnings
}

func aggregateEvent(view RecordView, ev EventConfig, cfg *config) (EventMetrics, *Warning) {
	m := EventMetrics{
		Event:          ev.Name,
		ResponseColumn: string(ev.ResponseColumn),
	}

	invited := invitedMask(view, ev)
	m.Invited = invited.Count()

	var warning *Warning
	if view.Columns().Has(ev.ResponseColumn) {
		for i, ok := range invited {
			if !ok {
				continue
			}
			switch cfg.status(view.Record(i).Value(ev.ResponseColumn)) {
			case Accepted:
				m.Accepted++
			case Declined:
				m.Declined++
			case Unanswered:
				m.Unanswered++
			case Ambiguous:
				m.Ambiguous++
			}
		}
	} else {
		m.ColumnMissing = true
		w := missingColumnsWarning(CheckEventMetrics, ev.Name,
			[]schema.Column{ev.ResponseColumn},
			fmt.Sprintf("column %q missing; %s response counts are zero", ev.ResponseColumn, ev.Name))
		warning = &w
	}

	m.Expected = m.Invited - m.Declined
	return m, warning
}
