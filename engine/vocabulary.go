package engine

import (
	"strings"

	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// VOCABULARY — Keyword data driving classification
// ============================================================================
// Classification logic never embeds keywords. Defaults match the RSVP site's
// wedding export; consumers override them through config.
// ============================================================================

// DisplayKeyword maps a tag keyword to the label shown for it.
type DisplayKeyword struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	Label   string `yaml:"label" json:"label"`
}

// EventConfig describes one tracked event.
// Keywords are OR-combined; lists may overlap across events.
type EventConfig struct {
	Name           string        `yaml:"name" json:"name"`
	ResponseColumn schema.Column `yaml:"responseColumn" json:"responseColumn"`
	Keywords       []string      `yaml:"keywords" json:"keywords"`
}

// Vocabulary holds every keyword the engine matches against.
type Vocabulary struct {
	DisplayKeywords []DisplayKeyword `yaml:"displayKeywords" json:"displayKeywords"`
	Events          []EventConfig    `yaml:"events" json:"events"`

	ShuttleKeyword     string `yaml:"shuttleKeyword" json:"shuttleKeyword"`
	AcceptKeyword      string `yaml:"acceptKeyword" json:"acceptKeyword"`
	DeclineKeyword     string `yaml:"declineKeyword" json:"declineKeyword"`
	TransportYesPrefix string `yaml:"transportYesPrefix" json:"transportYesPrefix"`
	RegretKeyword      string `yaml:"regretKeyword" json:"regretKeyword"`
}

// DefaultVocabulary returns the wedding vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		DisplayKeywords: []DisplayKeyword{
			{Keyword: "Ceremony", Label: "Ceremony"},
			{Keyword: "Reception", Label: "Reception"},
			{Keyword: "Mehndi", Label: "Mehndi"},
			{Keyword: "Mehendi", Label: "Mehndi"},
			{Keyword: "Haldi", Label: "Haldi"},
			{Keyword: "Shuttle Bus", Label: "Shuttle Bus"},
		},
		Events: []EventConfig{
			{Name: "Wedding", ResponseColumn: schema.WeddingRSVP, Keywords: []string{"Wedding Party", "Ceremony"}},
			{Name: "Reception", ResponseColumn: schema.ReceptionRSVP, Keywords: []string{"Wedding Party", "Reception"}},
			{Name: "Haldi", ResponseColumn: schema.HaldiRSVP, Keywords: []string{"Wedding Party", "Haldi"}},
			{Name: "Mehndi", ResponseColumn: schema.MehndiRSVP, Keywords: []string{"Wedding Party", "Mehendi", "Mehndi"}},
		},
		ShuttleKeyword:     "Shuttle Bus",
		AcceptKeyword:      "accept",
		DeclineKeyword:     "decline",
		TransportYesPrefix: "yes",
		RegretKeyword:      "regretfully decline",
	}
}

// Event looks up an event by name, ignoring case and surrounding space.
func (v Vocabulary) Event(name string) (EventConfig, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, ev := range v.Events {
		if strings.ToLower(ev.Name) == want {
			return ev, true
		}
	}
	return EventConfig{}, false
}

// EventNames returns configured event names in order.
func (v Vocabulary) EventNames() []string {
	names := make([]string, len(v.Events))
	for i, ev := range v.Events {
		names[i] = ev.Name
	}
	return names
}
