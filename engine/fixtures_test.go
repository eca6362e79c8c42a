package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// TEST FIXTURES
// ============================================================================

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// quiet is the option every test passes so check diagnostics stay off stdout.
var quiet = WithLogger(quietLogger())

func snapshot(cols schema.ColumnSet, records ...GuestRecord) *Snapshot {
	return NewSnapshot(records, cols)
}

// johnJohnJane is the three-record guest list: two John Does and one Jane Smith.
func johnJohnJane() *Snapshot {
	return snapshot(schema.AllColumns(),
		GuestRecord{FirstName: "John", LastName: "Doe", Tags: "Wedding Party, Haldi", Haldi: "Accept with pleasure"},
		GuestRecord{FirstName: "John", LastName: "Doe", Tags: "Reception", Wedding: "Regretfully decline"},
		GuestRecord{FirstName: "Jane", LastName: "Smith"},
	)
}

func firstNames(records []GuestRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.FirstName
	}
	return out
}

func ids(records []GuestRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
