package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/dimension"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
	"github.com/arkadyvolkov/tui-ascend/internal/storage"
)

// MenuModel is the Bubble Tea model for the dimension picker.
type MenuModel struct {
	items          []dimension.Info
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *dimension.Info // Set when the user picks a starting dimension
	openScoreboard bool            // True if the user pressed Tab for the scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     dimension.List(),
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.openScoreboard = true
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the run
		}
	}

	return m, nil
}

// View renders the dimension picker.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil || m.openScoreboard {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A S C E N D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("pick a starting dimension"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		line := style.Render(fmt.Sprintf("%s%-10s %s", cursor, item.Title, item.ID))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if i := m.cursor; i >= 0 && i < len(m.items) {
		b.WriteString(centerText(dimStyle.Render(m.items[i].Controls), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("enter play · tab scores · q quit"), m.width))

	return b.String()
}

// Selected returns the picked dimension, or nil if none yet.
func (m MenuModel) Selected() *dimension.Info {
	return m.selected
}

// SelectedDimension resolves the picked item to its dimension value.
func (m MenuModel) SelectedDimension() state.Dimension {
	if m.selected == nil {
		return state.Point
	}
	return dimension.Parse(m.selected.ID)
}

// OpenScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) OpenScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting reports whether the user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, possibly updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads a line so its visible content is horizontally centered.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
