package engine

import (
	"fmt"
	"strings"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// SHUTTLE ELIGIBILITY RESOLVER
// ============================================================================
// Tagged:    records whose tags carry the shuttle keyword.
// Requested: records whose party has at least one member answering "yes…"
//            to the transport question.
// Eligible:  Requested, minus individuals whose own wedding response
//            contains the regret keyword.
// ============================================================================

// PartyID identifies a group of co-travelling guests. A synthetic key can
// never equal a named party, whatever the party text.
type PartyID struct {
	Name      string
	Row       int
	Synthetic bool
}

// String renders the key for logs and tables.
func (p PartyID) String() string {
	if p.Synthetic {
		return fmt.Sprintf("#row-%d", p.Row)
	}
	return p.Name
}

// PartyKey groups co-travelling guests. A guest without a party is a party
// of one, keyed by the record's stable ID.
func PartyKey(r GuestRecord) PartyID {
	if p := strings.TrimSpace(r.Party); p != "" {
		return PartyID{Name: p}
	}
	return PartyID{Row: r.ID, Synthetic: true}
}

// shuttleRequirements are the columns the party propagation needs.
var shuttleRequirements = []schema.Column{schema.TransportReply, schema.Party}

// ResolveShuttle computes both shuttle outputs for a view.
func ResolveShuttle(view RecordView, opts ...Option) (ShuttleSummary, []Warning) {
	cfg := applyOptions(opts)
	log := cfg.Log.WithField("check", CheckShuttle)

	var summary ShuttleSummary
	shuttle := NewKeywordSet(cfg.Vocabulary.ShuttleKeyword)
	for i := 0; i < view.Len(); i++ {
		if shuttle.Match(view.Record(i).Tags) {
			summary.Tagged++
		}
	}

	requested, eligible, warning := partyTransport(view, cfg)
	if warning != nil {
		log.WithField("columns", warning.Columns).Warn("Shuttle potential count skipped")
		summary.Skipped = true
		return summary, []Warning{*warning}
	}
	summary.Requested = requested.Count()
	summary.Eligible = eligible.Count()

	log.WithField("tagged", summary.Tagged).
		WithField("requested", summary.Requested).
		WithField("eligible", summary.Eligible).
		Debug("Shuttle check complete")

	return summary, nil
}

// EligibilityMask returns the per-record shuttle eligibility predicate.
// Without the transport and party columns it is false everywhere and a
// warning explains why.
func EligibilityMask(view RecordView, opts ...Option) (Mask, []Warning) {
	cfg := applyOptions(opts)
	_, eligible, warning := partyTransport(view, cfg)
	if warning != nil {
		return eligible, []Warning{*warning}
	}
	return eligible, nil
}

// partyTransport groups by PartyKey, propagates the transport request across
// each party and applies the per-record decline override.
func partyTransport(view RecordView, cfg *config) (requested, eligible Mask, warning *Warning) {
	n := view.Len()
	requested = make(Mask, n)
	eligible = make(Mask, n)

	if missing := view.Columns().Missing(shuttleRequirements...); len(missing) > 0 {
		w := missingColumnsWarning(CheckShuttle, "", missing,
			"shuttle eligibility unavailable; no record counts as eligible")
		return requested, eligible, &w
	}

	yes := strings.ToLower(strings.TrimSpace(cfg.Vocabulary.TransportYesPrefix))
	keys := make([]PartyID, n)
	partyYes := make(map[PartyID]bool)
	for i := 0; i < n; i++ {
		r := view.Record(i)
		keys[i] = PartyKey(r)
		if yes != "" && strings.HasPrefix(NormalizeResponse(r.Transport), yes) {
			partyYes[keys[i]] = true
		}
	}

	// Without a wedding column nobody can have individually declined.
	regret := NewKeywordSet(cfg.Vocabulary.RegretKeyword)
	checkRegret := view.Columns().Has(schema.WeddingRSVP)

	for i := 0; i < n; i++ {
		requested[i] = partyYes[keys[i]]
		declined := checkRegret && regret.Match(view.Record(i).Wedding)
		eligible[i] = requested[i] && !declined
	}
	return requested, eligible, nil
}
