package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amritr10/Reporter-app/schema"
)

func TestFindMissingRSVPs(t *testing.T) {
	snap := snapshot(schema.AllColumns(),
		GuestRecord{FirstName: "Asha", Tags: "Ceremony, Mehendi"},
		GuestRecord{FirstName: "Ben", Wedding: "Joyfully Accept"},
		GuestRecord{FirstName: "Cara", Mehndi: "maybe"},
		GuestRecord{FirstName: "Dev", Reception: "   ", Haldi: "\t"},
		GuestRecord{FirstName: "Esha", Haldi: "Regretfully Decline"},
	)

	report, warnings := FindMissingRSVPs(snap, quiet)
	assert.Empty(t, warnings)
	assert.False(t, report.Skipped)

	require.Len(t, report.Guests, 2)
	assert.Equal(t, "Asha", report.Guests[0].Record.FirstName)
	assert.Equal(t, "Dev", report.Guests[1].Record.FirstName, "whitespace-only responses count as blank")

	assert.Equal(t, []string{"Ceremony", "Mehndi"}, report.Guests[0].DisplayTags)
	assert.Empty(t, report.Guests[1].DisplayTags)
	assert.Contains(t, report.Guests[0].Message, "Hello Asha,")
}

func TestFindMissingRSVPsMembership(t *testing.T) {
	snap := johnJohnJane()

	report, _ := FindMissingRSVPs(snap, quiet)
	missing := map[int]bool{}
	for _, g := range report.Guests {
		missing[g.Record.ID] = true
	}

	for i := 0; i < snap.Len(); i++ {
		assert.Equal(t, unresponsive(snap.Record(i)), missing[i], "record %d", i)
	}
	assert.Equal(t, map[int]bool{2: true}, missing)
}

func TestFindMissingRSVPsInsufficientColumns(t *testing.T) {
	cols := schema.AllColumns().Without(schema.HaldiRSVP)
	snap := snapshot(cols, GuestRecord{FirstName: "Asha"})

	report, warnings := FindMissingRSVPs(snap, quiet)
	assert.True(t, report.Skipped)
	assert.Empty(t, report.Guests, "no partial answer")

	require.Len(t, warnings, 1)
	assert.Equal(t, CheckMissingRSVPs, warnings[0].Check)
	assert.Equal(t, []string{"haldi rsvp"}, warnings[0].Columns)
	assert.Equal(t, "insufficient columns", warnings[0].Message)
}
