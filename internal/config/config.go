// Package config holds runtime configuration: defaults, the optional TOML
// config file, CLI flag binding, and validation.
//
// Precedence, lowest first: [DefaultConfig], config file, command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [LoadFile] and [Flags.Apply], then passed by pointer to the
// packages that need it. Fields tagged toml:"-" are command-line only.
type Config struct {
	// RootDir is the directory whose immediate subdirectories are merged.
	// Set from the positional argument; defaults to the working directory.
	RootDir string `toml:"-"`

	// Display and logging.
	ColorMode ColorMode `toml:"color"`    // Default: "auto".
	LogFile   string    `toml:"log_file"` // Optional log file path (appended).
	Verbose   bool      `toml:"verbose"`

	// Behavior.
	DryRun    bool `toml:"-"` // Report what would be merged; write nothing.
	CheckOnly bool `toml:"-"` // Run --check diagnostics and exit.

	// ConfigPath is the config file that was loaded, or "" when none was.
	ConfigPath string `toml:"-"`
}

// DefaultConfig returns a Config with every default applied. RootDir is left
// empty; [ParseArgs] fills it in.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
		Verbose:   false,
		DryRun:    false,
		CheckOnly: false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and that a root directory has been set.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if strings.TrimSpace(c.RootDir) == "" {
		return errors.New("root directory must not be empty")
	}
	return nil
}
