package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/dsviz/internal/config"
)

func TestShowBanner(t *testing.T) {
	var buf bytes.Buffer
	ShowBanner(&buf, "1.0.0-test")
	out := buf.String()

	if !strings.Contains(out, "Data Structure Visualizer") {
		t.Errorf("Expected banner to contain tagline, got: %s", out)
	}
	if !strings.Contains(out, "╔") || !strings.Contains(out, "╝") {
		t.Errorf("Expected banner to contain border characters, got: %s", out)
	}
	if !strings.Contains(out, "v1.0.0-test") {
		t.Errorf("Expected banner to contain version 'v1.0.0-test', got: %s", out)
	}
}

func TestShowBannerDevVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowBanner(&buf, "dev")
	if strings.Contains(buf.String(), "vdev") {
		t.Errorf("dev builds should not print a version tag, got: %s", buf.String())
	}
}

func TestGetCompactBanner(t *testing.T) {
	result := GetCompactBanner("Pick a structure")

	if !strings.Contains(result, "Pick a structure") {
		t.Errorf("Expected compact banner to contain message, got: %s", result)
	}
	if !strings.Contains(result, "▄▄▄▄") {
		t.Errorf("Expected compact banner to contain logo elements, got: %s", result)
	}
}

func TestLogoLinesAligned(t *testing.T) {
	if len(LogoLines) != 4 {
		t.Fatalf("Expected 4 logo lines, got %d", len(LogoLines))
	}
	width := lipgloss.Width(LogoLines[0])
	for i, line := range LogoLines {
		if lipgloss.Width(line) != width {
			t.Errorf("logo line %d has width %d, want %d", i, lipgloss.Width(line), width)
		}
	}
}

func TestApplyColors(t *testing.T) {
	saved := HighlightColor
	savedPrimary := PrimaryColor
	t.Cleanup(func() {
		HighlightColor = saved
		PrimaryColor = savedPrimary
		buildStyles()
	})

	ApplyColors(config.UIColors{Highlight: "#123456"})

	if HighlightColor != lipgloss.Color("#123456") {
		t.Errorf("HighlightColor = %v, want #123456", HighlightColor)
	}
	if PrimaryColor != savedPrimary {
		t.Errorf("empty entry should keep PrimaryColor, got %v", PrimaryColor)
	}
}
