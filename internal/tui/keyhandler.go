package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/dsviz/internal/config"
	"github.com/pders01/dsviz/internal/structure"
)

// keyMap holds the command bindings of a structure page. Bindings for
// operations the open variant lacks are disabled, which hides them from help
// and stops them from matching.
type keyMap struct {
	Append      key.Binding
	Remove      key.Binding
	Insert      key.Binding
	Delete      key.Binding
	Peek        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Clear       key.Binding
	Traverse    key.Binding
	Limit       key.Binding
	Edit        key.Binding
	Theory      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func newKeyMap(b config.KeyBindings) keyMap {
	bind := func(k, help string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
	}
	return keyMap{
		Append:      bind(b.Append, "append"),
		Remove:      bind(b.Remove, "remove"),
		Insert:      bind(b.Insert, "insert at"),
		Delete:      bind(b.Delete, "delete at"),
		Peek:        bind(b.Peek, "peek"),
		Search:      bind(b.Search, "search"),
		ClearSearch: bind(b.ClearSearch, "clear search"),
		Clear:       bind(b.Clear, "clear"),
		Traverse:    bind(b.Traverse, "traverse"),
		Limit:       bind(b.Limit, "set limit"),
		Edit:        bind(b.Edit, "edit"),
		Theory:      bind(b.Theory, "theory"),
		Back:        bind(b.Back, "back"),
		Quit:        bind(b.Quit, "quit"),
	}
}

// forVariant returns a copy of k labelled with the variant's verbs and
// restricted to its operations.
func (k keyMap) forVariant(v structure.Variant) keyMap {
	relabel := func(b *key.Binding, help string) {
		b.SetHelp(b.Help().Key, help)
	}
	relabel(&k.Append, v.AppendVerb)
	relabel(&k.Remove, v.RemoveVerb)
	if v.PeekLabel != "" {
		relabel(&k.Peek, "peek "+v.PeekLabel)
	}

	k.Append.SetEnabled(v.Supports(structure.OpAppend))
	k.Remove.SetEnabled(v.Supports(v.RemoveOp()))
	k.Insert.SetEnabled(v.Supports(structure.OpInsertAt))
	k.Delete.SetEnabled(v.Supports(structure.OpDeleteAt))
	k.Peek.SetEnabled(v.Supports(structure.OpPeek))
	k.Search.SetEnabled(v.Supports(structure.OpSearch))
	k.ClearSearch.SetEnabled(v.Supports(structure.OpSearch))
	k.Traverse.SetEnabled(v.Supports(structure.OpTraverse))
	return k
}

// Bindings shown while a form field has focus.
var formBindings = []key.Binding{
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
}

// bindingList adapts a flat binding slice to help.KeyMap.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding  { return b }
func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

type KeyHandler struct {
	app  *App
	base keyMap
	keys keyMap
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	km := newKeyMap(cfg.Keys.Bindings)
	return &KeyHandler{app: app, base: km, keys: km}
}

// bindVariant points the command bindings at a newly opened variant.
func (kh *KeyHandler) bindVariant(v structure.Variant) {
	kh.keys = kh.base.forVariant(v)
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return kh.app, tea.Quit
	}

	switch kh.app.view {
	case ViewMenu:
		return kh.handleMenuKey(msg)
	case ViewStructure:
		if kh.app.focus != fieldNone {
			return kh.handleFormKey(msg)
		}
		return kh.handleCommandKey(msg)
	case ViewTheory:
		return kh.handleTheoryKey(msg)
	default:
		return kh.app, nil
	}
}

func (kh *KeyHandler) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app
	var cmd tea.Cmd

	// While the filter prompt is open every key belongs to the list.
	if a.menu.FilterState() == list.Filtering {
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, kh.keys.Quit):
		return a, tea.Quit
	case msg.Type == tea.KeyEnter:
		if item, ok := a.menu.SelectedItem().(variantItem); ok {
			return a, a.openVariant(item.variant)
		}
		return a, nil
	}

	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

// handleCommandKey runs page commands. It is only reached while no form
// field has focus, so plain letters are free to act as commands.
func (kh *KeyHandler) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app
	k := kh.keys

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit
	case key.Matches(msg, k.Back):
		a.closeVariant()
		return a, nil
	case key.Matches(msg, k.Theory):
		return a, a.openTheory()
	case key.Matches(msg, k.Edit):
		return a, a.focusField(a.fields()[0])

	case key.Matches(msg, k.Append):
		return a, a.apply(structure.Request{Op: structure.OpAppend, Value: a.inputValue(fieldValue)})
	case key.Matches(msg, k.Remove):
		return a, a.apply(structure.Request{Op: a.controller.Variant().RemoveOp()})
	case key.Matches(msg, k.Insert):
		return a, a.apply(structure.Request{
			Op:    structure.OpInsertAt,
			Index: a.inputValue(fieldIndex),
			Value: a.inputValue(fieldValue),
		})
	case key.Matches(msg, k.Delete):
		return a, a.apply(structure.Request{Op: structure.OpDeleteAt, Index: a.inputValue(fieldIndex)})
	case key.Matches(msg, k.Peek):
		return a, a.apply(structure.Request{Op: structure.OpPeek})
	case key.Matches(msg, k.Search):
		return a, a.apply(structure.Request{Op: structure.OpSearch, Value: a.inputValue(fieldSearch)})
	case key.Matches(msg, k.ClearSearch):
		return a, a.apply(structure.Request{Op: structure.OpClearSearch})
	case key.Matches(msg, k.Clear):
		return a, a.apply(structure.Request{Op: structure.OpClear})
	case key.Matches(msg, k.Traverse):
		return a, a.apply(structure.Request{Op: structure.OpTraverse})
	case key.Matches(msg, k.Limit):
		return a, a.apply(structure.Request{Op: structure.OpSetCapacity, Value: a.inputValue(fieldLimit)})
	}
	return a, nil
}

func (kh *KeyHandler) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.Type {
	case tea.KeyEsc:
		a.blurForm()
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		return a, a.cycleFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return a, a.cycleFocus(-1)
	case tea.KeyEnter:
		return a, a.commitField()
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (kh *KeyHandler) handleTheoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch {
	case key.Matches(msg, kh.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, kh.keys.Back), key.Matches(msg, kh.keys.Theory):
		a.view = ViewStructure
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// GetHelpForCurrentView returns the bindings relevant to the current view.
func (kh *KeyHandler) GetHelpForCurrentView() []key.Binding {
	k := kh.keys
	switch kh.app.view {
	case ViewStructure:
		if kh.app.focus != fieldNone {
			return formBindings
		}
		return []key.Binding{
			k.Append, k.Remove, k.Insert, k.Delete, k.Peek, k.Search,
			k.ClearSearch, k.Traverse, k.Clear, k.Limit, k.Edit, k.Theory, k.Back, k.Quit,
		}
	case ViewTheory:
		return []key.Binding{k.Back, k.Quit}
	default:
		return nil
	}
}
