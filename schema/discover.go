package schema

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ============================================================================
// BINDING — Header → expected column resolution
// ============================================================================
// Runs once per uploaded dataset:
//   1. Normalize every header (trim + lowercase)
//   2. Map normalized headers onto the fixed expected column set
//   3. Record unknown and repeated headers as skipped (never fatal)
//
// The resulting Binding is what the loader uses to fill GuestRecords and what
// the engine sees as the dataset's ColumnSet.
// ============================================================================

// ErrNoHeader is returned when a CSV has no header row.
var ErrNoHeader = errors.New("CSV has no header row")

// SkippedColumn records why a header was not bound to an expected column.
type SkippedColumn struct {
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// Binding maps expected columns to their index in the source header row.
type Binding struct {
	Headers []string        `json:"headers"`
	Index   map[Column]int  `json:"index"`
	Skipped []SkippedColumn `json:"skippedColumns,omitempty"`
}

// Bind resolves raw headers against the expected column set.
// The first occurrence of a repeated header wins.
func Bind(headers []string) Binding {
	b := Binding{
		Headers: make([]string, len(headers)),
		Index:   make(map[Column]int, len(Expected)),
	}

	for i, h := range headers {
		norm := NormalizeHeader(strings.TrimPrefix(h, "\ufeff"))
		b.Headers[i] = norm
		col := Column(norm)

		switch {
		case norm == "":
			b.Skipped = append(b.Skipped, SkippedColumn{Column: h, Reason: "empty header"})
		case !IsExpected(col):
			b.Skipped = append(b.Skipped, SkippedColumn{Column: norm, Reason: "not an expected column"})
		default:
			if _, seen := b.Index[col]; seen {
				b.Skipped = append(b.Skipped, SkippedColumn{Column: norm, Reason: "repeated header"})
				continue
			}
			b.Index[col] = i
		}
	}

	return b
}

// Columns returns the set of bound columns.
func (b Binding) Columns() ColumnSet {
	cols := make([]Column, 0, len(b.Index))
	for c := range b.Index {
		cols = append(cols, c)
	}
	return NewColumnSet(cols...)
}

// Missing returns expected columns absent from the header row.
func (b Binding) Missing() []Column {
	return b.Columns().Missing(Expected...)
}

// Value returns the trimmed cell for col in row, or "" when the column is
// unbound or the row is short.
func (b Binding) Value(row []string, col Column) string {
	i, ok := b.Index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Raw returns the untrimmed cell for col in row, with the same fallbacks as
// Value.
func (b Binding) Raw(row []string, col Column) string {
	i, ok := b.Index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// DiscoverFromCSV reads only the header row of a CSV and binds it.
func DiscoverFromCSV(data []byte) (*Binding, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV headers")
	}

	b := Bind(headers)
	return &b, nil
}
