package helpers

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/amritr10/Reporter-app/engine"
	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// CSV HELPER — Parses a guest list CSV into an engine.Snapshot
// ============================================================================
// Consumer reads the CSV from wherever it lives (upload, file, Sheets).
// This helper binds the header row once, then fills typed GuestRecords.
// Any parse failure is MalformedInput: the engine is never invoked.
// ============================================================================

// ErrMalformedInput marks every failure to produce a valid record set.
var ErrMalformedInput = errors.New("malformed guest list")

// Parsed is the result of loading a guest list.
type Parsed struct {
	Snapshot *engine.Snapshot
	Binding  schema.Binding
}

// ParseCSV parses CSV bytes into a Snapshot.
func ParseCSV(data []byte) (*Parsed, error) {
	return ReadCSV(bytes.NewReader(data))
}

// ReadCSV parses a CSV stream into a Snapshot.
// Rows may be shorter or longer than the header; missing cells are empty.
// Name cells keep their raw text so duplicate matching stays exact. A row of
// empty cells is still a guest; only empty lines are dropped by the reader.
func ReadCSV(r io.Reader) (*Parsed, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Mark(schema.ErrNoHeader, ErrMalformedInput)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to read CSV headers"), ErrMalformedInput)
	}

	binding := schema.Bind(headers)

	var records []engine.GuestRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Mark(
				errors.WithHint(errors.Wrapf(err, "failed to read CSV row %d", line),
					"check for unbalanced quotes in the export"),
				ErrMalformedInput)
		}
		records = append(records, recordFromRow(binding, row))
	}

	return &Parsed{
		Snapshot: engine.NewSnapshot(records, binding.Columns()),
		Binding:  binding,
	}, nil
}

func recordFromRow(b schema.Binding, row []string) engine.GuestRecord {
	return engine.GuestRecord{
		FirstName: b.Raw(row, schema.FirstName),
		LastName:  b.Raw(row, schema.LastName),
		Phone:     b.Value(row, schema.Phone),
		Email:     b.Value(row, schema.Email),
		Tags:      b.Value(row, schema.Tags),
		Wedding:   b.Value(row, schema.WeddingRSVP),
		Reception: b.Value(row, schema.ReceptionRSVP),
		Haldi:     b.Value(row, schema.HaldiRSVP),
		Mehndi:    b.Value(row, schema.MehndiRSVP),
		Party:     b.Value(row, schema.Party),
		Transport: b.Value(row, schema.TransportReply),
	}
}
