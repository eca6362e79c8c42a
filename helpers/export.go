package helpers

import (
	"encoding/csv"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/amritr10/Reporter-app/engine"
)

// WriteTableCSV writes a table as CSV (header row first), ready for Sheets.
func WriteTableCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)
	if table == nil {
		if err := cw.Write([]string{"Result", "No data"}); err != nil {
			return errors.Wrap(err, "failed to write CSV")
		}
	} else if err := cw.WriteAll(table.Grid()); err != nil {
		return errors.Wrap(err, "failed to write CSV")
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}
