package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/dsviz/internal/debuglog"
	"github.com/pders01/dsviz/internal/structure"
)

// openVariant starts a fresh page for v. Every visit begins from the
// variant's seed, the way reopening a page would.
func (a *App) openVariant(v structure.Variant) tea.Cmd {
	a.controller = structure.New(v)
	a.keyHandler.bindVariant(v)
	a.log = a.sessionLog.With(debuglog.Fields{"variant": v.Name})

	a.blurForm()
	for f := fieldValue; f < fieldCount; f++ {
		a.inputs[f].Reset()
	}
	a.inputs[fieldLimit].SetValue(strconv.Itoa(a.controller.Capacity()))

	a.view = ViewStructure
	a.log.Debugf("opened with %d items, limit %d", a.controller.Len(), a.controller.Capacity())
	return a.setStatus(MsgOpened(v.Title, a.controller.Len(), a.controller.Capacity()), StatusInfo)
}

// OpenVariant opens the named page before the program starts.
func (a *App) OpenVariant(name string) error {
	v, ok := a.catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown structure %q (choose from %v)", name, a.catalog.Names())
	}
	a.initCmd = a.openVariant(v)
	return nil
}

func (a *App) closeVariant() {
	a.blurForm()
	a.clearStatus()
	a.controller = nil
	a.log = a.sessionLog
	a.view = ViewMenu
}

// apply runs one request against the open page and reports the outcome in
// the status line.
func (a *App) apply(req structure.Request) tea.Cmd {
	if a.controller == nil {
		return nil
	}
	r := a.controller.Apply(req)

	a.log.With(debuglog.Fields{"op": r.Op.String(), "kind": r.Kind.String()}).Debugf("%s", r.Text)

	if r.OK() {
		switch r.Op {
		case structure.OpAppend:
			a.inputs[fieldValue].Reset()
		case structure.OpInsertAt:
			a.inputs[fieldValue].Reset()
			a.inputs[fieldIndex].Reset()
		case structure.OpDeleteAt:
			a.inputs[fieldIndex].Reset()
		case structure.OpClearSearch:
			a.inputs[fieldSearch].Reset()
		case structure.OpSetCapacity:
			a.inputs[fieldLimit].SetValue(strconv.Itoa(a.controller.Capacity()))
		}
	}
	return a.setStatus(r.Text, statusKindFor(r.Kind))
}

func (a *App) openTheory() tea.Cmd {
	if a.controller == nil {
		return nil
	}
	v := a.controller.Variant()
	content, err := a.theory.Render(v.Name, a.width)
	if err != nil {
		a.log.Warnf("theory: %v", err)
		return a.setStatus(MsgNoNotes(v.Title), StatusWarn)
	}
	a.viewport.SetContent(content)
	a.viewport.GotoTop()
	a.view = ViewTheory
	return nil
}

// fields lists the form inputs the open variant uses, in tab order.
func (a *App) fields() []field {
	fs := []field{fieldValue}
	if a.controller == nil {
		return fs
	}
	v := a.controller.Variant()
	if v.Supports(structure.OpInsertAt) || v.Supports(structure.OpDeleteAt) {
		fs = append(fs, fieldIndex)
	}
	if v.Supports(structure.OpSearch) {
		fs = append(fs, fieldSearch)
	}
	return append(fs, fieldLimit)
}

func (a *App) focusField(f field) tea.Cmd {
	a.blurForm()
	a.focus = f
	return a.inputs[f].Focus()
}

func (a *App) blurForm() {
	for f := fieldValue; f < fieldCount; f++ {
		a.inputs[f].Blur()
	}
	a.focus = fieldNone
}

func (a *App) cycleFocus(delta int) tea.Cmd {
	fs := a.fields()
	pos := 0
	for i, f := range fs {
		if f == a.focus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(fs)) % len(fs)
	return a.focusField(fs[pos])
}

// commitField applies the operation tied to the focused input.
func (a *App) commitField() tea.Cmd {
	switch a.focus {
	case fieldValue:
		return a.apply(structure.Request{Op: structure.OpAppend, Value: a.inputValue(fieldValue)})
	case fieldSearch:
		return a.apply(structure.Request{Op: structure.OpSearch, Value: a.inputValue(fieldSearch)})
	case fieldLimit:
		return a.apply(structure.Request{Op: structure.OpSetCapacity, Value: a.inputValue(fieldLimit)})
	default:
		a.blurForm()
		return nil
	}
}

func (a *App) inputValue(f field) string {
	return a.inputs[f].Value()
}
