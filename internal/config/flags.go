package config

// This file binds command-line flags. Values are captured into Flags and
// copied onto a Config only when the user actually set them, so that the
// config file can supply anything the command line leaves alone.

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds raw flag values between parsing and [Flags.Apply].
type Flags struct {
	ConfigPath string

	color   ColorMode
	noColor bool
	logFile string
	verbose bool
	dryRun  bool
	check   bool
}

// Bind registers all picmrg flags on fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	f.color = ColorAuto
	fs.Var(&colorModeValue{&f.color}, "color", "Color output: auto | always | never")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output (same as --color=never)")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&f.dryRun, "dry-run", "d", false, "Report what would be merged without writing files")
	fs.BoolVarP(&f.check, "check", "c", false, "Run diagnostics against the root directory and exit")
	fs.StringVar(&f.ConfigPath, "config", "", "Configuration file path (default: "+defaultConfigPath+")")
}

// Apply copies every flag the user set onto cfg. --no-color wins over --color.
func (f *Flags) Apply(cfg *Config, fs *pflag.FlagSet) {
	if fs.Changed("color") {
		cfg.ColorMode = f.color
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	}
	if fs.Changed("log") {
		cfg.LogFile = f.logFile
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	cfg.DryRun = f.dryRun
	cfg.CheckOnly = f.check
}

// ParseArgs sets RootDir from the optional positional argument, falling back
// to the current working directory.
func ParseArgs(cfg *Config, args []string) error {
	switch len(args) {
	case 0:
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		cfg.RootDir = wd
	case 1:
		root := NormalizeDirArg(args[0])
		if root == "" {
			return errors.New("root path must not be empty")
		}
		cfg.RootDir = root
	default:
		return fmt.Errorf("expected at most one ROOT_PATH, got %d arguments", len(args))
	}
	return nil
}

// colorModeValue adapts ColorMode to pflag.Value.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
