package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/pders01/dsviz/internal/config"
	"github.com/pders01/dsviz/internal/debuglog"
	"github.com/pders01/dsviz/internal/structure"
	"github.com/pders01/dsviz/internal/theory"
)

// App is the bubbletea model. All state lives here and is only touched from
// Update, so the controller needs no locking.
type App struct {
	config     *config.Config
	catalog    *structure.Catalog
	controller *structure.Controller
	keyHandler *KeyHandler
	menu       list.Model
	inputs     [fieldCount]textinput.Model
	viewport   viewport.Model
	help       help.Model
	theory     *theory.Renderer
	view       View
	focus      field
	status     status
	statusGen  uint64
	initCmd    tea.Cmd
	sessionID  string
	sessionLog *debuglog.Entry
	log        *debuglog.Entry
	width      int
	height     int
}

func NewApp(catalog *structure.Catalog, cfg *config.Config) *App {
	ApplyColors(cfg.UI.Colors)

	variants := catalog.Variants()
	items := make([]list.Item, len(variants))
	for i, v := range variants {
		items[i] = variantItem{variant: v}
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "› structures"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)
	menu.DisableQuitKeybindings()

	sessionID := uuid.NewString()
	sessionLog := debuglog.WithFields(debuglog.Fields{"session": sessionID})

	app := &App{
		config:     cfg,
		catalog:    catalog,
		menu:       menu,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		theory:     theory.NewRenderer(""),
		view:       ViewMenu,
		sessionID:  sessionID,
		sessionLog: sessionLog,
		log:        sessionLog,
	}

	placeholders := map[field]string{
		fieldValue:  "auto",
		fieldIndex:  "0",
		fieldSearch: "value",
		fieldLimit:  "limit",
	}
	for f := fieldValue; f < fieldCount; f++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[f]
		ti.CharLimit = 32
		ti.Width = 16
		app.inputs[f] = ti
	}

	app.keyHandler = NewKeyHandler(app, cfg)
	sessionLog.Infof("session started with %d structures", len(variants))
	return app
}

func (a *App) Init() tea.Cmd {
	return a.initCmd
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, max(msg.Height-lipgloss.Height(a.menuBanner())-4, 5))
		a.viewport.Width = msg.Width
		a.viewport.Height = max(msg.Height-6, 3)
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case statusExpiredMsg:
		a.expireStatus(msg)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.view {
	case ViewMenu:
		a.menu, cmd = a.menu.Update(msg)
	case ViewStructure:
		if a.focus != fieldNone {
			a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		}
	case ViewTheory:
		a.viewport, cmd = a.viewport.Update(msg)
	}
	return a, cmd
}

func (a *App) menuBanner() string {
	return GetCompactBanner("Pick a structure to explore")
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewMenu:
		content = lipgloss.JoinVertical(lipgloss.Left, a.menuBanner(), "", a.menu.View())
	case ViewStructure:
		content = a.structureView()
	case ViewTheory:
		title := ""
		if a.controller != nil {
			title = a.controller.Variant().Title
		}
		content = lipgloss.JoinVertical(lipgloss.Left,
			renderHeader("› "+title+" theory", "", a.width),
			a.viewport.View(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.footer())
}

func (a *App) structureView() string {
	if a.controller == nil {
		return ""
	}
	c := a.controller
	v := c.Variant()

	width := a.width
	if width <= 0 {
		width = 80
	}

	stats := fmt.Sprintf("Size: %d   Limit: %d (max %d)", c.Len(), c.Capacity(), v.Ceiling)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader("› "+v.Title, v.Summary, width),
		"",
		renderCollection(c, width-2),
		"",
		renderMuted(stats),
		"",
		a.formView(),
	)
}

func (a *App) formView() string {
	rows := make([]string, 0, fieldCount)
	for _, f := range a.fields() {
		label := LabelStyle.Render(f.label())
		if f == a.focus {
			label = LabelStyle.Foreground(AccentColor).Bold(true).Render(f.label())
		}
		rows = append(rows, label+a.inputs[f].View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) footer() string {
	separatorWidth := max(a.width-1, 10)
	lines := []string{SeparatorStyle.Render(strings.Repeat("─", separatorWidth))}

	if a.status.text != "" {
		lines = append(lines, lipgloss.NewStyle().Padding(0, 1).Render(
			a.status.kind.style().Render(a.status.kind.icon()+a.status.text)))
	} else if a.view == ViewStructure && a.focus != fieldNone {
		lines = append(lines, lipgloss.NewStyle().Padding(0, 1).Render(renderMuted(MsgEditing)))
	}

	if bindings := a.keyHandler.GetHelpForCurrentView(); len(bindings) > 0 {
		lines = append(lines, lipgloss.NewStyle().Padding(0, 1).Render(a.help.View(bindingList(bindings))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type variantItem struct {
	variant structure.Variant
}

func (i variantItem) Title() string       { return i.variant.Title }
func (i variantItem) Description() string { return i.variant.Summary }
func (i variantItem) FilterValue() string { return i.variant.Title + " " + i.variant.Name }
