// Package config loads the Tally configuration file. Configuration is
// read-only: the counter itself is never persisted, only preferences
// about how the CLI presents it.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/dannynguyen3011/tally/internal/errors"
)

// AppName is used for the XDG config directory.
const AppName = "tally"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TALLY_CONFIG"

// Duration wraps time.Duration so YAML accepts the usual "500ms" or
// "1s" forms.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid, "bad duration '%s'", raw)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// MarshalJSON renders the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds user preferences for the CLI and dashboard.
type Config struct {
	// InitialStep is applied to a fresh counter before the first
	// dispatch. Default 1.
	InitialStep int `yaml:"initial_step" json:"initial_step"`

	// RefreshInterval is the dashboard redraw tick.
	RefreshInterval Duration `yaml:"refresh_interval" json:"refresh_interval"`

	// HistoryRows caps how many recent history entries the dashboard
	// and apply output show.
	HistoryRows int `yaml:"history_rows" json:"history_rows"`

	// Format is the default output format: cli, json or plain.
	Format string `yaml:"format" json:"format"`

	// Color is the default color mode: auto, always or never.
	Color string `yaml:"color" json:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InitialStep:     1,
		RefreshInterval: Duration(time.Second),
		HistoryRows:     10,
		Format:          "cli",
		Color:           "auto",
	}
}

// Path returns the config file location: the TALLY_CONFIG environment
// variable when set, otherwise $XDG_CONFIG_HOME/tally/config.yml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, AppName, "config.yml")
}

// Load reads the config file at Path. A missing file yields the
// defaults; a malformed or invalid file is a UserError so the CLI can
// point at the offending field.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads and validates the given config file.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.NewSystemErrorWithOp("config load", "cannot read config file", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.NewUserErrorWithField("config", path,
			"config file is not valid YAML", "fix or delete the file")
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks field ranges. The counter accepts any integer step,
// so InitialStep is unconstrained; only presentation fields are checked.
func (c Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return errors.NewUserErrorWithField("refresh_interval", c.RefreshInterval.Std().String(),
			"refresh interval must be positive", "use a duration like '500ms' or '1s'")
	}
	if c.HistoryRows < 1 {
		return errors.NewUserErrorWithField("history_rows", "",
			"history_rows must be at least 1", "use a positive number")
	}
	switch c.Format {
	case "cli", "json", "plain":
	default:
		return errors.NewUserErrorWithField("format", c.Format,
			"unknown output format", "use cli, json or plain")
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return errors.NewUserErrorWithField("color", c.Color,
			"unknown color mode", "use auto, always or never")
	}
	return nil
}
