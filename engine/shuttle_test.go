package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amritr10/Reporter-app/schema"
)

func shuttleGuests(cols schema.ColumnSet) *Snapshot {
	return snapshot(cols,
		GuestRecord{FirstName: "Asha", Party: "P1", Transport: "Yes please", Wedding: "Accept"},
		GuestRecord{FirstName: "Ben", Party: "P1", Wedding: "Regretfully Decline"},
		GuestRecord{FirstName: "Cara", Party: " P1 ", Transport: "No", Wedding: "accept"},
		GuestRecord{FirstName: "Dev", Transport: "yes"},
		GuestRecord{FirstName: "Esha"},
		GuestRecord{FirstName: "Farid", Party: "P2", Transport: "  YES "},
		GuestRecord{FirstName: "Gita", Party: "P2", Tags: "Ceremony, Shuttle Bus", Transport: "no thanks"},
		GuestRecord{FirstName: "Hari", Tags: "shuttle bus", Transport: "Not required"},
	)
}

func TestResolveShuttle(t *testing.T) {
	summary, warnings := ResolveShuttle(shuttleGuests(schema.AllColumns()), quiet)
	assert.Empty(t, warnings)
	assert.False(t, summary.Skipped)

	assert.Equal(t, 2, summary.Tagged, "Gita and Hari")
	assert.Equal(t, 6, summary.Requested, "P1, Dev alone, and P2")
	assert.Equal(t, 5, summary.Eligible, "Ben declined the wedding")
}

func TestEligibilityMask(t *testing.T) {
	snap := shuttleGuests(schema.AllColumns())
	mask, warnings := EligibilityMask(snap, quiet)
	assert.Empty(t, warnings)

	assert.Equal(t, Mask{true, false, true, true, false, true, true, false}, mask)
}

func TestEligibilityPartyPropagation(t *testing.T) {
	snap := shuttleGuests(schema.AllColumns())
	mask, _ := EligibilityMask(snap, quiet)

	// Any "yes" in a party makes every member eligible unless they declined.
	partyYes := map[PartyID]bool{}
	for i := 0; i < snap.Len(); i++ {
		r := snap.Record(i)
		if strings.HasPrefix(NormalizeResponse(r.Transport), "yes") {
			partyYes[PartyKey(r)] = true
		}
	}
	for i := 0; i < snap.Len(); i++ {
		r := snap.Record(i)
		want := partyYes[PartyKey(r)] && !MatchesAny(r.Wedding, []string{"regretfully decline"})
		assert.Equal(t, want, mask[i], r.FirstName)
	}
}

func TestEligibilityWithoutWeddingColumn(t *testing.T) {
	cols := schema.AllColumns().Without(schema.WeddingRSVP)
	summary, warnings := ResolveShuttle(shuttleGuests(cols), quiet)

	assert.Empty(t, warnings)
	assert.Equal(t, summary.Requested, summary.Eligible, "no decline can override without the wedding column")
}

func TestResolveShuttleMissingColumns(t *testing.T) {
	cols := schema.AllColumns().Without(schema.Party)
	snap := shuttleGuests(cols)

	summary, warnings := ResolveShuttle(snap, quiet)
	assert.True(t, summary.Skipped)
	assert.Equal(t, 2, summary.Tagged, "tagged count needs only tags")
	assert.Zero(t, summary.Requested)
	assert.Zero(t, summary.Eligible)

	require.Len(t, warnings, 1)
	assert.Equal(t, CheckShuttle, warnings[0].Check)
	assert.Equal(t, []string{"party"}, warnings[0].Columns)

	mask, warnings := EligibilityMask(snap, quiet)
	assert.Zero(t, mask.Count(), "eligibility is false everywhere")
	assert.Len(t, mask, snap.Len())
	assert.Len(t, warnings, 1)
}

func TestPartyKey(t *testing.T) {
	assert.Equal(t, PartyID{Name: "P1"}, PartyKey(GuestRecord{ID: 3, Party: "  P1 "}))
	assert.Equal(t, PartyID{Row: 3, Synthetic: true}, PartyKey(GuestRecord{ID: 3, Party: "   "}))
	assert.Equal(t, "#row-3", PartyKey(GuestRecord{ID: 3}).String())
	assert.NotEqual(t, PartyKey(GuestRecord{ID: 1}), PartyKey(GuestRecord{ID: 2}))
}

func TestPartyNamedLikeRowKey(t *testing.T) {
	snap := snapshot(schema.AllColumns(),
		GuestRecord{FirstName: "Asha", Party: "#row-1", Transport: "yes"},
		GuestRecord{FirstName: "Ben"},
	)

	summary, warnings := ResolveShuttle(snap, quiet)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, summary.Requested, "a guest without a party never joins a named party")
	assert.Equal(t, 1, summary.Eligible)
}

func TestPartyKeyStableAcrossFilters(t *testing.T) {
	snap := shuttleGuests(schema.AllColumns())

	result, err := ApplyFilters(snap, FilterParams{ShuttleOnly: true}, quiet)
	require.NoError(t, err)

	for _, r := range result.Records {
		assert.Equal(t, PartyKey(snap.Record(r.ID)), PartyKey(r), r.FirstName)
	}
}
