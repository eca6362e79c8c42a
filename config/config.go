// Package config loads the reporter's YAML configuration.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/amritr10/Reporter-app/engine"
	"github.com/amritr10/Reporter-app/schema"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "./reporter.yaml"

var (
	// ErrInvalidConfig marks every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNoEvents is returned when the vocabulary defines no events.
	ErrNoEvents = errors.New("vocabulary defines no events")
)

// Config is the complete reporter configuration.
type Config struct {
	// Logging level
	Logging string `yaml:"logging" default:"info"`
	// Output format for CLI commands: json, pretty, table, text or csv
	Format string `yaml:"format" default:"table"`

	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`

	Vocabulary engine.Vocabulary       `yaml:"vocabulary"`
	Outreach   engine.OutreachTemplate `yaml:"outreach"`
}

// ServerConfig configures the HTTP upload surface.
type ServerConfig struct {
	Addr           string `yaml:"addr" default:":8080"`
	MaxUploadBytes int    `yaml:"maxUploadBytes" default:"10485760"`
	MetricsEnabled bool   `yaml:"metricsEnabled" default:"true"`
}

// AnalysisConfig tunes engine behavior.
type AnalysisConfig struct {
	PreviewRows int `yaml:"previewRows" default:"5"`
	// AmbiguousAsUnanswered counts responses like "maybe" as Unanswered.
	// Off unless explicitly enabled.
	AmbiguousAsUnanswered bool `yaml:"ambiguousAsUnanswered" default:"false"`
}

var validFormats = map[string]bool{"json": true, "pretty": true, "table": true, "text": true, "csv": true}

// ValidFormat reports whether f is a known output format.
func ValidFormat(f string) bool { return validFormats[f] }

// Default returns a Config with every default applied.
func Default() (*Config, error) {
	cfg := &Config{
		Vocabulary: engine.DefaultVocabulary(),
		Outreach:   engine.DefaultOutreachTemplate(),
	}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to apply config defaults")
	}
	return cfg, nil
}

// Load reads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided config file path
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over cfg and validates the result.
// Lists in the YAML replace the defaults rather than extending them.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to parse YAML"), ErrInvalidConfig)
	}
	return cfg.Validate()
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Logging); err != nil {
		return errors.Mark(errors.Wrap(err, "logging"), ErrInvalidConfig)
	}
	if !ValidFormat(c.Format) {
		return errors.Mark(errors.Newf("unknown format %q", c.Format), ErrInvalidConfig)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return errors.Mark(errors.Newf("server.maxUploadBytes must be positive, got %d", c.Server.MaxUploadBytes),
			ErrInvalidConfig)
	}
	if c.Analysis.PreviewRows < 0 {
		return errors.Mark(errors.New("analysis.previewRows must not be negative"), ErrInvalidConfig)
	}
	return c.validateVocabulary()
}

func (c *Config) validateVocabulary() error {
	v := c.Vocabulary
	if len(v.Events) == 0 {
		return errors.Mark(ErrNoEvents, ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(v.Events))
	for i, ev := range v.Events {
		name := strings.ToLower(strings.TrimSpace(ev.Name))
		if name == "" {
			return errors.Mark(errors.Newf("vocabulary.events[%d]: name is required", i), ErrInvalidConfig)
		}
		if seen[name] {
			return errors.Mark(errors.Newf("vocabulary.events[%d]: duplicate event %q", i, ev.Name), ErrInvalidConfig)
		}
		seen[name] = true
		if !schema.IsExpected(ev.ResponseColumn) {
			return errors.Mark(
				errors.WithHint(errors.Newf("vocabulary.events[%d]: unknown response column %q", i, ev.ResponseColumn),
					"response columns are lowercase header names such as \"wedding rsvp\""),
				ErrInvalidConfig)
		}
		if engine.NewKeywordSet(ev.Keywords...).Len() == 0 {
			return errors.Mark(errors.Newf("vocabulary.events[%d]: at least one keyword is required", i), ErrInvalidConfig)
		}
	}

	required := []struct{ field, value string }{
		{"acceptKeyword", v.AcceptKeyword},
		{"declineKeyword", v.DeclineKeyword},
		{"shuttleKeyword", v.ShuttleKeyword},
		{"transportYesPrefix", v.TransportYesPrefix},
		{"regretKeyword", v.RegretKeyword},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Mark(errors.Newf("vocabulary.%s must not be empty", r.field), ErrInvalidConfig)
		}
	}
	return nil
}

// EngineOptions converts the configuration into engine options.
func (c *Config) EngineOptions(log logrus.FieldLogger) []engine.Option {
	opts := []engine.Option{
		engine.WithVocabulary(c.Vocabulary),
		engine.WithOutreach(c.Outreach),
		engine.WithPreviewRows(c.Analysis.PreviewRows),
		engine.WithLogger(log),
	}
	if c.Analysis.AmbiguousAsUnanswered {
		opts = append(opts, engine.WithAmbiguousAsUnanswered())
	}
	return opts
}
