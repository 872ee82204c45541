package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "dompet.yaml"

// Config represents the top-level dompet.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Display DisplayConfig `yaml:"display"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// ProfileConfig is what the profile screen shows.
type ProfileConfig struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Membership   string `yaml:"membership"`
	MonthsActive int    `yaml:"months_active"`
}

// DisplayConfig controls screen rendering.
type DisplayConfig struct {
	RecentCount int    `yaml:"recent_count"`
	Timezone    string `yaml:"timezone"` // IANA name, or "Local"
}

// SessionConfig controls how a session starts and what it leaves behind.
type SessionConfig struct {
	SeedFile    string `yaml:"seed_file,omitempty"`    // empty = built-in sample ledger
	ActivityLog string `yaml:"activity_log,omitempty"` // empty = keep in memory only
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Environment variables that override file settings.
const (
	EnvLogLevel    = "DOMPET_LOG_LEVEL"
	EnvSeedFile    = "DOMPET_SEED_FILE"
	EnvActivityLog = "DOMPET_ACTIVITY_LOG"
	EnvTimezone    = "DOMPET_TIMEZONE"
)

// Load reads a dompet.yaml file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new session.
func Default() *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:         "Pengguna Dompet",
			Email:        "pengguna@example.com",
			Membership:   "Premium Member",
			MonthsActive: 6,
		},
		Display: DisplayConfig{
			RecentCount: 5,
			Timezone:    "Local",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ApplyEnv overrides settings from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvSeedFile); v != "" {
		c.Session.SeedFile = v
	}
	if v := getenv(EnvActivityLog); v != "" {
		c.Session.ActivityLog = v
	}
	if v := getenv(EnvTimezone); v != "" {
		c.Display.Timezone = v
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string
	if c.Display.RecentCount < 0 {
		problems = append(problems, fmt.Sprintf("display.recent_count must not be negative, got %d", c.Display.RecentCount))
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of trace, debug, info, warn, error, disabled", c.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Location resolves Display.Timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Display.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("display.timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}
