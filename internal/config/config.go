// ABOUTME: Configuration management for the date range picker
// ABOUTME: Loads and saves predefined ranges, date layout, and log level as JSON

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalidRanges is returned when predefined ranges are malformed.
var ErrInvalidRanges = errors.New("invalid predefined ranges")

// Config stores daterange configuration.
type Config struct {
	// PredefinedRanges holds the four shortcut offsets in days relative to
	// today. Defaults to DefaultPredefinedRanges.
	PredefinedRanges []int `json:"predefined_ranges,omitempty"`

	// DateFormat is the Go time layout used in the display field.
	DateFormat string `json:"date_format,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// GetPredefinedRanges returns the configured shortcuts or the defaults.
func (c *Config) GetPredefinedRanges() []int {
	if len(c.PredefinedRanges) == 0 {
		return append([]int(nil), DefaultPredefinedRanges...)
	}
	return c.PredefinedRanges
}

// GetDateFormat returns the configured layout or DefaultDateFormat.
func (c *Config) GetDateFormat() string {
	if c.DateFormat == "" {
		return DefaultDateFormat
	}
	return c.DateFormat
}

// GetLogLevel returns the configured level or DefaultLogLevel.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// Validate checks the stored values.
func (c *Config) Validate() error {
	if n := len(c.PredefinedRanges); n != 0 && n != PresetCount {
		return fmt.Errorf("%w: expected %d offsets, got %d", ErrInvalidRanges, PresetCount, n)
	}
	return nil
}

// ParseRanges parses a comma separated list of day offsets, e.g.
// "0,-7,-30,30". An empty string yields the defaults.
func ParseRanges(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return append([]int(nil), DefaultPredefinedRanges...), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != PresetCount {
		return nil, fmt.Errorf("%w: expected %d offsets, got %d", ErrInvalidRanges, PresetCount, len(parts))
	}

	ranges := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a whole number of days", ErrInvalidRanges, part)
		}
		ranges = append(ranges, n)
	}
	return ranges, nil
}

// FormatRanges is the inverse of ParseRanges.
func FormatRanges(ranges []int) string {
	parts := make([]string, len(ranges))
	for i, n := range ranges {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "daterange", "config.json")
}

// Load reads config from disk. A missing file yields the defaults.
func Load() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile reads config from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveFile(GetConfigPath())
}

// SaveFile writes config to path, replacing any previous file atomically.
func (c *Config) SaveFile(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
