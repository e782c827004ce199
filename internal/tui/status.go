package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Canonical short status messages used across the app.
const (
	MsgEditing = "Editing: tab next field • enter apply • esc done"
)

func MsgNoNotes(title string) string {
	return fmt.Sprintf("No notes for %s", title)
}

func MsgOpened(title string, size, limit int) string {
	return fmt.Sprintf("%s ready • %d of %d", title, size, limit)
}

// status is the message shown under a structure page. gen identifies which
// setStatus call produced it so a late expiry cannot clear a newer message.
type status struct {
	text string
	kind StatusKind
	gen  uint64
}

type statusExpiredMsg struct {
	gen uint64
}

// setStatus replaces the current status and schedules its expiry.
func (a *App) setStatus(text string, kind StatusKind) tea.Cmd {
	a.statusGen++
	gen := a.statusGen
	a.status = status{text: text, kind: kind, gen: gen}

	timeout := a.config.Status.Timeout
	if timeout <= 0 {
		return nil
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg { return statusExpiredMsg{gen: gen} })
}

func (a *App) expireStatus(msg statusExpiredMsg) {
	if msg.gen == a.status.gen {
		a.status = status{}
	}
}

func (a *App) clearStatus() {
	a.statusGen++
	a.status = status{}
}
