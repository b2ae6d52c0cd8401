// Package config holds runtime configuration: defaults, YAML loading, CLI
// flag overrides, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/tvruntime/internal/calendar"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Default values used when neither the config file nor a flag sets them.
const (
	DefaultInputPath    = "TV_show_data.csv"
	DefaultOutputPath   = "TV_show_ordered_by_runtime.csv"
	DefaultFallbackDate = "2025-11-24"
	DefaultConfigFile   = "tvruntime.yaml"
)

// fallbackLayout is the accepted form of FallbackDate.
const fallbackLayout = "2006-01-02"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [Load], then by command-line flags.
type Config struct {
	// Paths.
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// FallbackDate (YYYY-MM-DD) stands in for a missing or unparseable end
	// date, meaning "still airing as of this day".
	FallbackDate string `yaml:"fallback_date"`

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"`
	LogFile   string    `yaml:"log_file"` // Optional log file path.
	CheckOnly bool      `yaml:"-"`        // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{
		InputPath:    DefaultInputPath,
		OutputPath:   DefaultOutputPath,
		FallbackDate: DefaultFallbackDate,
		ColorMode:    ColorAuto,
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unless mustExist is set.
func Load(path string, mustExist bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Fallback returns FallbackDate as a calendar date.
func (c *Config) Fallback() (calendar.Date, error) {
	return ParseFallbackDate(c.FallbackDate)
}

// ParseFallbackDate parses an ISO YYYY-MM-DD date. Unlike data rows, the
// configured date must be a real calendar day.
func ParseFallbackDate(s string) (calendar.Date, error) {
	t, err := time.ParseInLocation(fallbackLayout, s, time.UTC)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid fallback date %q (use YYYY-MM-DD)", s)
	}
	return calendar.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Validate checks paths, the fallback date, and the color mode.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if _, err := c.Fallback(); err != nil {
		return err
	}

	if c.InputPath == "" {
		return errors.New("input path must not be empty")
	}
	if c.CheckOnly {
		return nil
	}
	if c.OutputPath == "" {
		return errors.New("output path must not be empty")
	}
	return nil
}

// ValidatePaths ensures the output file is not the input file. Both
// arguments should be absolute paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if filepath.Clean(inputAbs) == filepath.Clean(outputAbs) {
		return errors.New("output file must differ from input file")
	}
	return nil
}
