package engine

import (
	"strconv"
	"strings"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// TABLE BUILDER — Produces TableData for the rendering collaborator
// ============================================================================
// Columns follow the dataset's present columns in schema order, so a missing
// optional column simply disappears from the table.
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Headers returns the column labels.
func (t *TableData) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	return headers
}

// Grid returns the header row followed by data rows.
func (t *TableData) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, t.Headers())
	return append(grid, t.Rows...)
}

// BuildRecordTable lists records with every present column.
func BuildRecordTable(title string, records []GuestRecord, cols schema.ColumnSet) *TableData {
	present := cols.Columns()
	table := &TableData{
		Title:   title,
		Columns: make([]Column, 0, len(present)),
		Rows:    make([][]string, 0, len(records)),
	}
	for _, c := range present {
		table.Columns = append(table.Columns, textColumn(string(c), LabelForColumn(c)))
	}

	for _, r := range records {
		row := make([]string, 0, len(present))
		for _, c := range present {
			row = append(row, r.Value(c))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// BuildMissingTable lists guests to follow up with:
// names, phone, email, message, cleaned tags.
func BuildMissingTable(guests []MissingRSVP, cols schema.ColumnSet) *TableData {
	table := &TableData{
		Title: "Guests to follow up with",
		Rows:  make([][]string, 0, len(guests)),
	}

	display := []schema.Column{schema.FirstName, schema.LastName, schema.Phone, schema.Email}
	var shown []schema.Column
	for _, c := range display {
		if cols.Has(c) {
			shown = append(shown, c)
			table.Columns = append(table.Columns, textColumn(string(c), LabelForColumn(c)))
		}
	}
	table.Columns = append(table.Columns,
		textColumn("message", "Message"),
		textColumn("cleaned_tags", "Cleaned Tags"),
	)

	for _, g := range guests {
		row := make([]string, 0, len(table.Columns))
		for _, c := range shown {
			row = append(row, g.Record.Value(c))
		}
		row = append(row, g.Message, strings.Join(g.DisplayTags, " | "))
		table.Rows = append(table.Rows, row)
	}
	return table
}

// BuildMetricsTable renders one row per event.
func BuildMetricsTable(events []EventMetrics) *TableData {
	table := &TableData{
		Title: "RSVP Summary",
		Columns: []Column{
			textColumn("event", "Event"),
			numberColumn("invited", "Total Invited"),
			numberColumn("expected", "Expected"),
			numberColumn("accepted", "Accepted"),
			numberColumn("declined", "Declined"),
			numberColumn("unanswered", "Unanswered"),
		},
		Rows: make([][]string, 0, len(events)),
	}
	for _, m := range events {
		table.Rows = append(table.Rows, []string{
			m.Event,
			strconv.Itoa(m.Invited),
			strconv.Itoa(m.Expected),
			strconv.Itoa(m.Accepted),
			strconv.Itoa(m.Declined),
			strconv.Itoa(m.Unanswered),
		})
	}
	return table
}

// LabelForColumn title-cases a column name for display:
// "first name" → "First Name". Long question headers are shortened.
func LabelForColumn(c schema.Column) string {
	if c == schema.TransportReply {
		return "Transportation"
	}
	words := strings.Fields(string(c))
	for i, w := range words {
		switch w {
		case "rsvp":
			words[i] = "RSVP"
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func textColumn(key, label string) Column {
	return Column{Key: key, Label: label, Type: "text", Align: "left"}
}

func numberColumn(key, label string) Column {
	return Column{Key: key, Label: label, Type: "number", Align: "right"}
}
