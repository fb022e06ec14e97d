// Package config holds the configuration of the benford command.
//
// Values come from, highest priority first:
//
//  1. command-line flags
//  2. BENFORD_* environment variables (log.level becomes BENFORD_LOG_LEVEL)
//  3. the config file (--config, or $XDG_CONFIG_HOME/benford/config.yaml)
//  4. the defaults returned by Default
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"

	benford "github.com/maxgfr/benford-law"
)

// Output formats accepted by Config.Format.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

const appName = "benford"

var validate = validator.New()

// Config is the effective configuration of one command invocation.
type Config struct {
	// Threshold is the per-digit deviation a dataset must stay below.
	Threshold float64 `mapstructure:"threshold" yaml:"threshold" validate:"gt=0,lt=1"`

	// Exact compares against log10(1+1/d) instead of the rounded table.
	Exact bool `mapstructure:"exact" yaml:"exact"`

	// Reference replaces the expected distribution. Takes precedence over
	// Exact when set.
	Reference map[string]float64 `mapstructure:"reference" yaml:"reference,omitempty" validate:"omitempty,dive,keys,oneof=1 2 3 4 5 6 7 8 9,endkeys,gte=0,lte=1"`

	Format  string        `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml markdown"`
	Workers int           `mapstructure:"workers" yaml:"workers" validate:"gte=1,lte=256"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	History HistoryConfig `mapstructure:"history" yaml:"history"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	NoColor bool   `mapstructure:"noColor" yaml:"noColor"`
}

// HistoryConfig configures the SQLite analysis history.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path" validate:"required_if=Enabled true"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threshold: benford.DefaultThreshold,
		Format:    FormatText,
		Workers:   4,
		Log: LogConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    DefaultHistoryPath(),
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/benford/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultHistoryPath returns $XDG_DATA_HOME/benford/history.db.
func DefaultHistoryPath() string {
	return filepath.Join(xdg.DataHome, appName, "history.db")
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// AnalysisConfig converts c to the analyzer's configuration.
func (c Config) AnalysisConfig() benford.AnalysisConfig {
	cfg := benford.DefaultAnalysisConfig()
	cfg.Threshold = c.Threshold

	switch {
	case len(c.Reference) > 0:
		cfg.Reference = benford.Distribution(c.Reference).Clone()
	case c.Exact:
		cfg.Reference = benford.ExactBenford()
	}
	return cfg
}
