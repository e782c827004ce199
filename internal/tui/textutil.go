package tui

import "github.com/charmbracelet/lipgloss"

// truncateEnd shortens s to at most limit runes, marking the cut with an
// ellipsis.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}

// padCenter centers rendered text in a cell of the given width. Widths are
// measured with lipgloss so styled text lines up.
func padCenter(s string, width int) string {
	if w := lipgloss.Width(s); w >= width {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
