package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/dsviz/internal/structure"
)

// renderHeader returns a consistently styled header with an optional muted subtitle.
func renderHeader(title, subtitle string, width int) string {
	title = truncateEnd(title, width-2)
	subtitle = truncateEnd(subtitle, width-2)
	rows := []string{HeaderStyle.Render(title)}
	if subtitle != "" {
		rows = append(rows, renderMuted(subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}

// renderCollection draws the items of c in the layout of its variant,
// wrapping rows to width. The highlighted item, if any, uses the highlight
// style.
func renderCollection(c *structure.Controller, width int) string {
	v := c.Variant()
	items := c.Items()
	if len(items) == 0 {
		return renderMuted(v.Label() + " is empty")
	}
	hl, hasHL := c.Highlight()
	highlighted := func(i int) bool { return hasHL && i == hl }

	switch v.Layout {
	case structure.LayoutColumn:
		return renderColumn(items, highlighted, v.PeekLabel)
	case structure.LayoutChain:
		return renderChain(items, highlighted, width)
	default:
		return renderRow(items, highlighted, v.PeekFront, width)
	}
}

// unit is one drawable element of a wrapped row: a boxed cell, an optional
// connector drawn after it and a marker centered under the cell.
type unit struct {
	cell   string
	suffix string
	marker string
}

func (u unit) render() string {
	w := lipgloss.Width(u.cell)
	body := u.cell
	if u.suffix != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Center, u.cell, u.suffix)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, MarkerStyle.Render(padCenter(u.marker, w)))
}

func cell(value int, hl bool) string {
	if hl {
		return HighlightCellStyle.Render(strconv.Itoa(value))
	}
	return CellStyle.Render(strconv.Itoa(value))
}

// wrapUnits lays units out left to right, starting a new line whenever the
// next unit would pass width. A non-positive width disables wrapping.
func wrapUnits(units []unit, width int) string {
	var lines []string
	var current []string
	used := 0
	for _, u := range units {
		r := u.render()
		w := lipgloss.Width(r) + 1
		if len(current) > 0 && width > 0 && used+w > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, r, " ")
		used += w
	}
	if len(current) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(items []int, highlighted func(int) bool, ends bool, width int) string {
	last := len(items) - 1
	units := make([]unit, len(items))
	for i, it := range items {
		u := unit{cell: cell(it, highlighted(i))}
		switch {
		case !ends:
			u.marker = strconv.Itoa(i)
		case i == 0 && i == last:
			u.marker = "F/R"
		case i == 0:
			u.marker = "FRONT"
		case i == last:
			u.marker = "REAR"
		}
		units[i] = u
	}
	return wrapUnits(units, width)
}

func renderChain(items []int, highlighted func(int) bool, width int) string {
	last := len(items) - 1
	units := make([]unit, len(items))
	for i, it := range items {
		u := unit{cell: cell(it, highlighted(i)), suffix: LinkStyle.Render(" → ")}
		if i == last {
			u.suffix = LinkStyle.Render(" → NULL")
		}
		if i == 0 {
			u.marker = "HEAD"
		}
		units[i] = u
	}
	return wrapUnits(units, width)
}

// renderColumn draws the collection as one bordered column with the newest
// item on top, one line per item, so tall stacks stay compact.
func renderColumn(items []int, highlighted func(int) bool, topLabel string) string {
	inner := 0
	for _, it := range items {
		inner = max(inner, len(strconv.Itoa(it)))
	}
	inner += 4

	rows := make([]string, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		style := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Foreground(TextColor)
		if highlighted(i) {
			style = style.Foreground(HighlightColor).Bold(true)
		}
		rows = append(rows, style.Render(strconv.Itoa(items[i])))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(PrimaryColor).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if topLabel == "" {
		topLabel = "top"
	}
	markers := make([]string, len(items)+2)
	markers[1] = MarkerStyle.Render(" ← " + strings.ToUpper(topLabel))
	return lipgloss.JoinHorizontal(lipgloss.Top, box, lipgloss.JoinVertical(lipgloss.Left, markers...))
}
