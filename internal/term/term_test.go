package term

import (
	"os"
	"testing"

	"github.com/backmassage/picmrg/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if !Enabled() {
		t.Error("ColorAlways should enable colors")
	}
	if Green == "" || NC == "" {
		t.Error("ColorAlways should populate escape sequences")
	}

	Configure(config.ColorNever)
	if Enabled() {
		t.Error("ColorNever should disable colors")
	}
	if Red != "" || Magenta != "" {
		t.Error("ColorNever should clear escape sequences")
	}
}

func TestConfigure_AutoRespectsNoColor(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("NO_COLOR should disable colors in auto mode")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "term")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
	if IsTerminal(nil) {
		t.Error("nil file reported as terminal")
	}
}
