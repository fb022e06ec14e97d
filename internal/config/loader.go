package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by New.
const EnvPrefix = "BENFORD"

// New returns a viper instance with defaults and environment binding in
// place. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("exact", d.Exact)
	v.SetDefault("format", d.Format)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.noColor", d.Log.NoColor)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.path", d.History.Path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file into v and decodes the result.
//
// An explicit path must exist. Without one, the default path is read when
// present and silently skipped otherwise. The returned path is the file
// actually used, or empty.
func Load(v *viper.Viper, path string) (Config, string, error) {
	return load(v, path, DefaultConfigPath())
}

func load(v *viper.Viper, path, fallback string) (Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = fallback
	}

	used := ""
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("read config %s: %w", path, err)
		}
		used = path
	} else if explicit {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, "", fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, used, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

const fileHeader = `# benford configuration
#
# Priority, highest first:
#   1. command-line flags
#   2. environment variables (BENFORD_THRESHOLD, BENFORD_LOG_LEVEL, ...)
#   3. this file
#   4. built-in defaults
#
# A custom reference distribution can be given per digit:
#
#   reference:
#     "1": 0.301
#     "2": 0.176

`

// WriteFile creates path with cfg and a short header. It fails with
// ErrConfigExists rather than overwrite an existing file.
func WriteFile(path string, cfg Config) (err error) {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	if _, err := f.WriteString(fileHeader); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
