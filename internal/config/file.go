package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "~/.config/picmrg/config.toml"

// LoadFile overlays the TOML file at path onto cfg. An explicit path must
// exist. With an empty path the default location is tried and silently
// skipped when absent. Keys not present in the file keep their current
// values; unknown keys are rejected.
func LoadFile(cfg *Config, path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.ConfigPath = resolved
	return nil
}

// expandPath resolves a leading "~" to the user's home directory.
func expandPath(pathValue string) (string, error) {
	if !strings.HasPrefix(pathValue, "~") {
		return filepath.Clean(pathValue), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if pathValue == "~" {
		return home, nil
	}
	if pathValue[1] == '/' || pathValue[1] == '\\' {
		return filepath.Join(home, pathValue[2:]), nil
	}
	return filepath.Clean(pathValue), nil
}
