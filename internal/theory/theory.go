// Package theory holds the reading notes shown next to each demonstration
// page and renders them for the terminal.
package theory

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed notes/*.md
var notesFS embed.FS

// Notes returns the markdown notes for a variant name.
func Notes(name string) (string, bool) {
	data, err := notesFS.ReadFile(path.Join("notes", strings.ToLower(name)+".md"))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Renderer turns notes into styled terminal text. The underlying glamour
// renderer is rebuilt only when the wrap width changes noticeably.
type Renderer struct {
	style    string
	term     *glamour.TermRenderer
	wrap     int
	minDelta int
}

// NewRenderer returns a renderer. An empty style picks one from the
// terminal background.
func NewRenderer(style string) *Renderer {
	return &Renderer{style: style, minDelta: 10}
}

// WrapWidth maps a terminal width to a comfortable reading width.
func WrapWidth(termWidth int) int {
	if termWidth < 50 {
		return max(termWidth-4, 20)
	}
	return min(max(termWidth*9/10, 40), 120)
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	wrap := WrapWidth(width)
	if r.term != nil && abs(r.wrap-wrap) <= r.minDelta {
		return r.term, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil, err
	}
	r.term = tr
	r.wrap = wrap
	return tr, nil
}

// Render renders the notes for name at the given terminal width.
func (r *Renderer) Render(name string, width int) (string, error) {
	md, ok := Notes(name)
	if !ok {
		return "", fmt.Errorf("no notes for %q", name)
	}
	tr, err := r.termRenderer(width)
	if err != nil {
		return "", fmt.Errorf("initializing renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering notes for %s: %w", name, err)
	}
	return out, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
