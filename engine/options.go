package engine

import (
	"github.com/sirupsen/logrus"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for every entry point
// ============================================================================

// DefaultPreviewRows is the number of rows copied into Report.Preview.
const DefaultPreviewRows = 5

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Vocabulary            Vocabulary
	Outreach              OutreachTemplate
	AmbiguousAsUnanswered bool // counts non-matching text as Unanswered (opt-in)
	PreviewRows           int
	Log                   logrus.FieldLogger
}

// WithVocabulary replaces the keyword vocabulary.
func WithVocabulary(v Vocabulary) Option {
	return func(c *config) {
		c.Vocabulary = v
	}
}

// WithOutreach sets the follow-up message template.
func WithOutreach(t OutreachTemplate) Option {
	return func(c *config) {
		c.Outreach = t
	}
}

// WithAmbiguousAsUnanswered treats non-empty text that matches neither the
// accept nor the decline keyword as Unanswered in metrics and filters.
func WithAmbiguousAsUnanswered() Option {
	return func(c *config) {
		c.AmbiguousAsUnanswered = true
	}
}

// WithPreviewRows sets how many leading rows Analyze copies into the report.
func WithPreviewRows(n int) Option {
	return func(c *config) {
		c.PreviewRows = n
	}
}

// WithLogger sets the logger used for check diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		if log != nil {
			c.Log = log
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Vocabulary:  DefaultVocabulary(),
		Outreach:    DefaultOutreachTemplate(),
		PreviewRows: DefaultPreviewRows,
		Log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Log = cfg.Log.WithField("component", "engine")
	return cfg
}

// status resolves a response honoring the ambiguous-text policy.
func (c *config) status(response string) RSVPStatus {
	s := ResolveStatus(response, c.Vocabulary)
	if s == Ambiguous && c.AmbiguousAsUnanswered {
		return Unanswered
	}
	return s
}
