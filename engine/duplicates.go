package engine

import (
	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// DUPLICATE DETECTOR — exact (first name, last name) grouping
// ============================================================================

type nameKey struct {
	first, last string
}

// FindDuplicates returns every record whose exact (first, last) name pair
// occurs more than once, in input order, together with the groups.
// Names are compared as loaded: no further case folding.
func FindDuplicates(view RecordView, opts ...Option) (DuplicateReport, []Warning) {
	cfg := applyOptions(opts)
	log := cfg.Log.WithField("check", CheckDuplicates)

	required := []schema.Column{schema.FirstName, schema.LastName}
	if missing := view.Columns().Missing(required...); len(missing) > 0 {
		log.WithField("columns", schema.Strings(missing)).Warn("Duplicate check skipped")
		return DuplicateReport{Skipped: true}, []Warning{
			missingColumnsWarning(CheckDuplicates, "", missing, "check skipped, missing columns"),
		}
	}

	grouped := make(map[nameKey][]int)
	order := make([]nameKey, 0)
	for i := 0; i < view.Len(); i++ {
		r := view.Record(i)
		key := nameKey{first: r.FirstName, last: r.LastName}
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	report := DuplicateReport{
		Records: []GuestRecord{},
		Groups:  []DuplicateGroup{},
	}
	member := make([]bool, view.Len())
	for _, key := range order {
		indices := grouped[key]
		if len(indices) < 2 {
			continue
		}
		group := DuplicateGroup{FirstName: key.first, LastName: key.last}
		for _, i := range indices {
			member[i] = true
			group.Records = append(group.Records, view.Record(i))
		}
		report.Groups = append(report.Groups, group)
	}

	for i, dup := range member {
		if dup {
			report.Records = append(report.Records, view.Record(i))
		}
	}

	log.WithField("groups", len(report.Groups)).
		WithField("records", len(report.Records)).
		Debug("Duplicate check complete")

	return report, nil
}
