package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenLeaderboard
)

// SessionModel manages the full session flow: menu -> game or
// leaderboard -> menu. It is the top-level model for SSH sessions and for
// local play without a level.
type SessionModel struct {
	gen         *wordsearch.Generator
	store       ResultStore
	config      core.RuntimeConfig
	player      string
	screen      sessionScreen
	menu        MenuModel
	game        *GameModel
	leaderboard *LeaderboardModel
	quitting    bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(gen *wordsearch.Generator, store ResultStore, cfg core.RuntimeConfig, player string) SessionModel {
	return SessionModel{
		gen:    gen,
		store:  store,
		config: cfg,
		player: player,
		menu:   NewMenuModel(gen.Words(), cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLeaderboard:
		return m.updateLeaderboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode. The menu's own tea.Quit is
// dropped when it hands over to another screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsLeaderboard() {
		lb := NewLeaderboardModel(m.store, m.config.Level, m.config.ScreenW, m.config.ScreenH)
		m.leaderboard = &lb
		m.screen = screenLeaderboard
		return m, lb.Init()
	}

	if m.menu.Selected() != nil {
		m.config = m.menu.Config()
		game := NewGameModel(m.gen, m.store, m.config, m.player)
		m.game = &game
		m.screen = screenGame
		return m, game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.config.Level = m.game.Game().Level()
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateLeaderboard handles updates when the leaderboard is shown.
func (m SessionModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.leaderboard.Update(msg)
	if lb, ok := newModel.(LeaderboardModel); ok {
		m.leaderboard = &lb
	}

	if m.leaderboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.leaderboard.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.game = nil
	m.leaderboard = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.gen.Words(), m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenLeaderboard:
		return m.leaderboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(gen *wordsearch.Generator, store ResultStore, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewSessionModel(gen, store, cfg, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RunLeaderboard shows the leaderboard in the local terminal until the
// user leaves it.
func RunLeaderboard(store ResultStore, level, width, height int) error {
	p := tea.NewProgram(
		NewLeaderboardModel(store, level, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
