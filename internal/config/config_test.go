package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/albums", "/photos/albums"},
		{"single trailing slash", "/photos/albums/", "/photos/albums"},
		{"multiple trailing slashes", "/photos/albums///", "/photos/albums"},
		{"root path", "/", "/"},
		{"relative path", "albums", "albums"},
		{"relative with slash", "albums/", "albums"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RootDir = "/photos"
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresRoot(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when RootDir is empty")
	}
	cfg.RootDir = "/photos"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.CheckOnly {
		t.Error("default CheckOnly should be false")
	}
	if cfg.LogFile != "" {
		t.Errorf("default LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestParseArgs(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"no args uses working directory", nil, wd, false},
		{"explicit root", []string{"/photos/"}, "/photos", false},
		{"relative root", []string{"albums"}, "albums", false},
		{"too many args", []string{"a", "b"}, "", true},
		{"slash only stays root", []string{"/"}, "/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ParseArgs(&cfg, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && cfg.RootDir != tt.want {
				t.Errorf("RootDir = %q, want %q", cfg.RootDir, tt.want)
			}
		})
	}
}

func TestFlags_ApplyOnlyChanged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMode = ColorAlways
	cfg.LogFile = "/var/log/picmrg.log"
	cfg.Verbose = true

	var f Flags
	fs := pflag.NewFlagSet("picmrg", pflag.ContinueOnError)
	f.Bind(fs)
	if err := fs.Parse([]string{"--dry-run"}); err != nil {
		t.Fatal(err)
	}
	f.Apply(&cfg, fs)

	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want file value %q kept", cfg.ColorMode, ColorAlways)
	}
	if cfg.LogFile != "/var/log/picmrg.log" {
		t.Errorf("LogFile = %q, want file value kept", cfg.LogFile)
	}
	if !cfg.Verbose {
		t.Error("Verbose should keep file value true")
	}
	if !cfg.DryRun {
		t.Error("DryRun should be set by --dry-run")
	}
}

func TestFlags_Overrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ColorMode
	}{
		{"color never", []string{"--color", "never"}, ColorNever},
		{"color always uppercase", []string{"--color=ALWAYS"}, ColorAlways},
		{"no-color wins", []string{"--color=always", "--no-color"}, ColorNever},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			var f Flags
			fs := pflag.NewFlagSet("picmrg", pflag.ContinueOnError)
			f.Bind(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}
			f.Apply(&cfg, fs)
			if cfg.ColorMode != tt.want {
				t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, tt.want)
			}
		})
	}
}

func TestFlags_InvalidColor(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("picmrg", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.Bind(fs)
	if err := fs.Parse([]string{"--color", "sometimes"}); err == nil {
		t.Error("expected error for invalid --color value")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "color = \"never\"\nlog_file = \"/tmp/picmrg.log\"\nverbose = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorNever)
	}
	if cfg.LogFile != "/tmp/picmrg.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("verbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want default %q", cfg.ColorMode, ColorAuto)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("layout = \"grid\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadFile_ExplicitMissing(t *testing.T) {
	cfg := DefaultConfig()
	err := LoadFile(&cfg, filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadFile_DefaultMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, ""); err != nil {
		t.Errorf("missing default config should be ignored, got %v", err)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want empty", cfg.ConfigPath)
	}
}
