package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/dsviz/internal/config"
)

const AppName = "dsviz"

// LogoLines is the block-letter wordmark.
var LogoLines = []string{
	"▄▄▄▄   ▄▄▄▄ ▄   ▄ ▄ ▄▄▄▄▄",
	"█   █ █     █   █ █    ▄▀",
	"█   █  ▀▀▄  ▀▄ ▄▀ █  ▄▀  ",
	"█▄▄▄▀ ▄▄▄▀    ▀   █ █▄▄▄▄",
}

// Palette. ApplyColors replaces these from configuration.
var (
	PrimaryColor   = lipgloss.Color("#60A5FA")
	SecondaryColor = lipgloss.Color("#C084FC")
	AccentColor    = lipgloss.Color("#95E1D3")
	TextColor      = lipgloss.Color("#EAEAEA")
	MutedColor     = lipgloss.Color("#94A3B8")
	ErrorColor     = lipgloss.Color("#F87171")
	SuccessColor   = lipgloss.Color("#4ADE80")
	HighlightColor = lipgloss.Color("#FDE047")
)

// Styled components
var (
	LogoStyle          lipgloss.Style
	HeaderStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	LabelStyle         lipgloss.Style
	SeparatorStyle     lipgloss.Style
	CellStyle          lipgloss.Style
	HighlightCellStyle lipgloss.Style
	MarkerStyle        lipgloss.Style
	LinkStyle          lipgloss.Style

	StatusInfoStyle    lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusWarnStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	LogoStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	LabelStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Width(8)

	SeparatorStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	CellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Foreground(TextColor).
		Padding(0, 1)

	HighlightCellStyle = CellStyle.
		BorderForeground(HighlightColor).
		Foreground(HighlightColor).
		Bold(true)

	MarkerStyle = lipgloss.NewStyle().
		Foreground(AccentColor).
		Bold(true)

	LinkStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessColor)

	StatusWarnStyle = lipgloss.NewStyle().
		Foreground(HighlightColor)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
}

// ApplyColors installs a configured palette. Empty entries keep the current
// color.
func ApplyColors(c config.UIColors) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&PrimaryColor, c.Primary)
	set(&SecondaryColor, c.Secondary)
	set(&AccentColor, c.Accent)
	set(&TextColor, c.Text)
	set(&MutedColor, c.Muted)
	set(&ErrorColor, c.Error)
	set(&SuccessColor, c.Success)
	set(&HighlightColor, c.Highlight)
	buildStyles()
}

func GetCompactBanner(message string) string {
	lines := make([]string, 0, len(LogoLines))
	for _, line := range LogoLines {
		lines = append(lines, LogoStyle.Render(line))
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
		"",
		HelpStyle.Render(message),
	)
}

// ShowBanner writes the startup banner to w.
func ShowBanner(w io.Writer, version string) {
	tagline := "Data Structure Visualizer"
	if version != "" && version != "dev" {
		if version[0] != 'v' && version[0] != 'V' {
			version = "v" + version
		}
		tagline += " " + version
	}

	gradient := []lipgloss.Color{PrimaryColor, SecondaryColor, AccentColor, SecondaryColor}
	rows := make([]string, 0, len(LogoLines)+2)
	for i, line := range LogoLines {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(gradient[i%len(gradient)]).
			Bold(true).
			Render(line))
	}
	rows = append(rows, "", lipgloss.NewStyle().Foreground(TextColor).Render(tagline))

	frame := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(AccentColor).
		Padding(1, 3).
		MarginTop(1)

	centered := lipgloss.NewStyle().Width(60).Align(lipgloss.Center)
	fmt.Fprintln(w, centered.Render(frame.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))))
	fmt.Fprintln(w, centered.MarginBottom(1).Render(LinkStyle.Render("[1]→[2]→[3]")))
}
