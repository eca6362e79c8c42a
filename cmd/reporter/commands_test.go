package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amritr10/Reporter-app/engine"
)

const guestCSV = `First Name,Last Name,Tags,Wedding RSVP,Reception RSVP,Haldi RSVP,Mehndi RSVP,Party,"Would you like transportation to our wedding? (Please note this event will be alcohol-free)"
John,Doe,"Wedding Party, Haldi",,,Accept with pleasure,,Doe Family,Yes please
John,Doe,Reception,Regretfully decline,,,,Doe Family,
Jane,Smith,,,,,,,
`

// runCLI executes the root command against a fixture guest list and returns
// what the command wrote to --out.
func runCLI(t *testing.T, outFormat string, args ...string) []byte {
	t.Helper()

	checkFile, summaryFile, filterFile = "", "", ""
	filterEvents, filterStatuses, filterShuttle = nil, nil, false

	dir := t.TempDir()
	guests := filepath.Join(dir, "guests.csv")
	require.NoError(t, os.WriteFile(guests, []byte(guestCSV), 0o600))
	out := filepath.Join(dir, "out")

	rootCmd.SetArgs(append(args,
		"--file", guests,
		"--config", filepath.Join(dir, "absent.yaml"),
		"--log-level", "error",
		"--format", outFormat,
		"--out", out,
	))
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return data
}

func TestCheckCommand(t *testing.T) {
	var got checkOutput
	require.NoError(t, json.Unmarshal(runCLI(t, "json", "check"), &got))

	assert.Equal(t, 3, got.Records)
	assert.Len(t, got.Duplicates.Records, 2, "both John Does")
	require.Len(t, got.MissingRSVPs.Guests, 1)
	assert.Equal(t, "Jane", got.MissingRSVPs.Guests[0].Record.FirstName)
	assert.Contains(t, got.MissingRSVPs.Guests[0].Message, "Jane")
}

func TestSummaryCommand(t *testing.T) {
	var got engine.Report
	require.NoError(t, json.Unmarshal(runCLI(t, "json", "summary"), &got))

	assert.Equal(t, 3, got.Records)
	byEvent := map[string]engine.EventMetrics{}
	for _, m := range got.Events {
		byEvent[m.Event] = m
	}
	require.Contains(t, byEvent, "Haldi")
	assert.Equal(t, 1, byEvent["Haldi"].Invited)
	assert.Equal(t, 1, byEvent["Haldi"].Accepted)

	assert.Equal(t, 2, got.Shuttle.Requested, "the Doe Family asked for transportation")
	assert.Equal(t, 1, got.Shuttle.Eligible, "one Doe declined the wedding")
}

func TestFilterCommand(t *testing.T) {
	var got engine.FilterResult
	raw := runCLI(t, "json", "filter", "--event", "Haldi", "--status", "Accepted")
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Matched)
	require.Len(t, got.Records, 1)
	assert.Equal(t, 0, got.Records[0].ID)
}

func TestFilterCommandShuttleCSV(t *testing.T) {
	rows, err := csv.NewReader(bytes.NewReader(runCLI(t, "csv", "filter", "--shuttle"))).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2, "header plus the one eligible Doe")
	assert.Contains(t, rows[1], "John")
}

func TestFilterCommandRejectsStatus(t *testing.T) {
	checkFile, summaryFile, filterFile = "", "", ""
	filterEvents, filterStatuses, filterShuttle = nil, nil, false
	outFile = ""

	rootCmd.SetArgs([]string{"filter", "--file", "unused.csv", "--status", "maybe",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"), "--format", "json"})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, engine.ErrInvalidStatus)
}
