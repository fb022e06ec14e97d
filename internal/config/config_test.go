package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	benford "github.com/maxgfr/benford-law"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.01, cfg.Threshold)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "history.db", filepath.Base(cfg.History.Path))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.Threshold = 0 }},
		{"threshold of one", func(c *Config) { c.Threshold = 1 }},
		{"negative threshold", func(c *Config) { c.Threshold = -0.5 }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"reference digit zero", func(c *Config) { c.Reference = map[string]float64{"0": 0.5} }},
		{"reference above one", func(c *Config) { c.Reference = map[string]float64{"1": 1.5} }},
		{"history without path", func(c *Config) {
			c.History.Enabled = true
			c.History.Path = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestValidate_AcceptsReference(t *testing.T) {
	cfg := Default()
	cfg.Reference = map[string]float64{"1": 0.5, "9": 0}
	assert.NoError(t, cfg.Validate())
}

func TestAnalysisConfig(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 0.02

	ac := cfg.AnalysisConfig()
	assert.Equal(t, 0.02, ac.Threshold)
	assert.Equal(t, benford.StandardBenford(), ac.Reference)

	cfg.Exact = true
	assert.Equal(t, benford.ExactBenford(), cfg.AnalysisConfig().Reference)

	// An explicit reference wins over Exact.
	cfg.Reference = map[string]float64{"1": 0.3}
	ac = cfg.AnalysisConfig()
	assert.Equal(t, benford.Distribution{"1": 0.3}, ac.Reference)

	ac.Reference["1"] = 0.9
	assert.Equal(t, 0.3, cfg.Reference["1"], "reference is copied")
}

func TestLoad_Defaults(t *testing.T) {
	// A missing default file is not an error.
	cfg, used, err := load(New(), "", filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultFile(t *testing.T) {
	fallback := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fallback, []byte("format: json\n"), 0o600))

	cfg, used, err := load(New(), "", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, used)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `threshold: 0.05
format: markdown
workers: 2
reference:
  "1": 0.3
  "2": 0.2
log:
  level: debug
  noColor: true
history:
  enabled: true
  path: /tmp/benford-test.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, used, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 0.05, cfg.Threshold)
	assert.Equal(t, FormatMarkdown, cfg.Format)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, map[string]float64{"1": 0.3, "2": 0.2}, cfg.Reference)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.NoColor)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/benford-test.db", cfg.History.Path)

	t.Logf("✓ Loaded %s", used)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0.05\n"), 0o600))

	t.Setenv("BENFORD_THRESHOLD", "0.2")
	t.Setenv("BENFORD_LOG_LEVEL", "warn")

	cfg, _, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Threshold)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 3\n"), 0o600))

	_, _, err := Load(New(), path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteFile(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# benford configuration")
	assert.Contains(t, string(data), "threshold: 0.01")

	// Round trip through the loader.
	cfg, _, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, Default().Threshold, cfg.Threshold)
	assert.Equal(t, Default().Format, cfg.Format)

	// Never overwrites.
	err = WriteFile(path, Default())
	assert.ErrorIs(t, err, ErrConfigExists)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: text")
	assert.NotContains(t, string(data), "reference", "empty reference is omitted")
}
