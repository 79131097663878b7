package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/picmrg/internal/config"
	"github.com/backmassage/picmrg/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical composite 7 MiB", 7340032, "7.0 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDimensions(t *testing.T) {
	if got := FormatDimensions(300, 150); got != "300x150" {
		t.Errorf("FormatDimensions = %q, want %q", got, "300x150")
	}
}

func TestRenderResults(t *testing.T) {
	if got := RenderResults(nil); got != "" {
		t.Errorf("RenderResults(nil) = %q, want empty", got)
	}

	out := RenderResults([]ResultRow{
		{Dir: "trip", Images: 3, Layout: "stacked", Output: "merged-24-06-01.png", Size: "1.2 MiB", Status: "merged"},
		{Dir: "solo", Images: 1, Status: "skipped"},
	})
	for _, want := range []string{"Directory", "Status", "trip", "merged-24-06-01.png", "solo", "skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("expected rounded style:\n%s", out)
	}
}

func TestPrintBanner_NoColor(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("banner contains escape codes with colors disabled")
	}
	if buf.Len() == 0 {
		t.Error("banner is empty")
	}
}
