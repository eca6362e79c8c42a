package engine

import (
	"regexp"
	"strings"
)

// ============================================================================
// OUTREACH MESSAGES — follow-up text for unresponsive guests
// ============================================================================
// Placeholders:
//   {first_name}     trimmed first name, or FallbackName when blank
//   {last_name}      trimmed last name
//   {rsvp_url}       RSVPURL
//   {rsvp_password}  RSVPPassword
// Unknown placeholders are stripped. Rendering is pure string construction.
// ============================================================================

// DefaultOutreachMessage is the stock follow-up text.
const DefaultOutreachMessage = "Hello {first_name}, how are you? " +
	"Could you please click the RSVP link {rsvp_url} " +
	"and enter the password '{rsvp_password}'? " +
	"Please enter your First and Last Name to unlock the RSVP form for you and/or your family. " +
	"This will help us finalise numbers with our vendors. Thank you!"

// OutreachTemplate configures RenderOutreach.
type OutreachTemplate struct {
	Template     string `yaml:"template" json:"template"`
	FallbackName string `yaml:"fallbackName" json:"fallbackName"`
	RSVPURL      string `yaml:"rsvpURL" json:"rsvpURL"`
	RSVPPassword string `yaml:"rsvpPassword" json:"rsvpPassword"`
}

// DefaultOutreachTemplate returns the stock template with a "Guest" fallback.
func DefaultOutreachTemplate() OutreachTemplate {
	return OutreachTemplate{
		Template:     DefaultOutreachMessage,
		FallbackName: "Guest",
	}
}

// RenderOutreach renders the follow-up message for one record.
func RenderOutreach(r GuestRecord, t OutreachTemplate) string {
	tmpl := t.Template
	if tmpl == "" {
		tmpl = DefaultOutreachMessage
	}

	first := strings.TrimSpace(r.FirstName)
	if first == "" {
		first = t.FallbackName
	}

	// Single pass, so substituted values are never re-scanned.
	replacer := strings.NewReplacer(
		"{first_name}", first,
		"{last_name}", strings.TrimSpace(r.LastName),
		"{rsvp_url}", t.RSVPURL,
		"{rsvp_password}", t.RSVPPassword,
	)
	return stripUnresolvedPlaceholders(replacer.Replace(tmpl), tmpl)
}

var placeholderRegex = regexp.MustCompile(`\{[a-z_]+\}`)

var knownPlaceholders = map[string]bool{
	"{first_name}":    true,
	"{last_name}":     true,
	"{rsvp_url}":      true,
	"{rsvp_password}": true,
}

// stripUnresolvedPlaceholders removes unknown placeholders found in the
// template and collapses the whitespace left behind.
func stripUnresolvedPlaceholders(text, tmpl string) string {
	for _, p := range placeholderRegex.FindAllString(tmpl, -1) {
		if !knownPlaceholders[p] {
			text = strings.ReplaceAll(text, p, "")
		}
	}
	return strings.Join(strings.Fields(text), " ")
}
