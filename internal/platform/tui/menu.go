package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// MenuItem is a selectable level in the menu.
type MenuItem struct {
	Level     wordsearch.Level
	WordCount int
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items           []MenuItem
	cursor          int
	width           int
	height          int
	config          core.RuntimeConfig
	keyMapper       *KeyMapper
	quitting        bool
	selected        *MenuItem
	openLeaderboard bool
}

// NewMenuModel creates a menu listing every level with its word count.
func NewMenuModel(words wordsearch.WordList, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(wordsearch.Levels))
	for _, l := range wordsearch.Levels {
		items = append(items, MenuItem{Level: l, WordCount: len(words.For(l.ID))})
	}

	cursor := 0
	for i, it := range items {
		if it.Level.ID == cfg.Level {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
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
			m.config.Level = selected.Level.ID
			return m, tea.Quit
		}

	case MenuActionLeaderboard:
		m.openLeaderboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("W O R D   S E A R C H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%-8s %2dx%-2d  %2d words",
			item.Level.Name, item.Level.GridSize, item.Level.GridSize, item.WordCount)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Leaderboard  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsLeaderboard returns true if user requested the leaderboard.
func (m MenuModel) WantsLeaderboard() bool {
	return m.openLeaderboard
}

// Config returns the current runtime config, with the chosen level and any
// resize applied.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured in cells,
// so styled and Cyrillic text center correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
