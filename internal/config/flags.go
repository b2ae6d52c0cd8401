package config

// This file binds command-line flags. Flags are applied on top of the
// loaded config only when the user actually set them, so values from the
// config file survive unless overridden.

import (
	"errors"

	"github.com/spf13/pflag"
)

// Flags holds raw flag values before they are applied to a Config.
type Flags struct {
	ConfigPath   string
	FallbackDate string
	LogFile      string
	Verbose      bool
	Check        bool
	Color        bool
	NoColor      bool
}

// Register defines all flags on fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", DefaultConfigFile, "YAML config file")
	fs.StringVar(&f.FallbackDate, "fallback-date", DefaultFallbackDate, "End date (YYYY-MM-DD) used for shows still airing")
	fs.StringVarP(&f.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output (log skipped rows)")
	fs.BoolVarP(&f.Check, "check", "c", false, "Validate input and report without writing output")
	fs.BoolVar(&f.Color, "color", false, "Force colored logs")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored logs")
}

// Apply copies explicitly set flags and positional args into cfg.
// args are [input [output]].
func (f *Flags) Apply(cfg *Config, fs *pflag.FlagSet, args []string) error {
	if len(args) > 2 {
		return errors.New("expected at most input and output paths")
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}

	if fs.Changed("fallback-date") {
		cfg.FallbackDate = f.FallbackDate
	}
	if fs.Changed("log") {
		cfg.LogFile = f.LogFile
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.Verbose
	}
	cfg.CheckOnly = f.Check

	if f.NoColor {
		cfg.ColorMode = ColorNever
	} else if f.Color {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// ConfigMustExist reports whether the config file was named explicitly,
// in which case a missing file is an error.
func (f *Flags) ConfigMustExist(fs *pflag.FlagSet) bool {
	return fs.Changed("config")
}
