package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// ResultStore is the leaderboard the terminal UI reads and writes.
// *storage.Store satisfies it; a nil ResultStore disables persistence.
type ResultStore interface {
	SaveResult(player string, level, secs int) (storage.Result, error)
	Results(level, limit int) ([]storage.Result, error)
	Stats(level int) (storage.Stats, error)
}

var _ ResultStore = (*storage.Store)(nil)

// GameModel runs one word-search game: it feeds key presses to the game as
// input frames, ticks the clock and saves the time once all words are found.
type GameModel struct {
	game       *wordsearch.Game
	screen     *core.Screen
	store      ResultStore
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	standalone bool // no menu to return to: back quits
	saved      bool
	saveErr    error
}

// NewGameModel creates a game model for the level in cfg.
func NewGameModel(gen *wordsearch.Generator, store ResultStore, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := wordsearch.New(gen)
	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		m.gameState = m.game.State()
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		// Back leaves the game when it is over or paused; otherwise it
		// drops the current selection.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionCancel)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.saveErr = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.game.Completed() && !m.saved {
		m.saveResult()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the solve time once per puzzle.
func (m *GameModel) saveResult() {
	m.saved = true
	if m.store == nil {
		return
	}
	_, m.saveErr = m.store.SaveResult(m.player, m.game.Level(), m.game.ElapsedSeconds())
}

// saveScreenshot writes the current screen as plain text under
// ~/.wordsearch/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".wordsearch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.saved && m.store != nil {
		y := m.screen.Height() - 1
		if m.saveErr != nil {
			m.screen.DrawTextCentered(y, "could not save result: "+m.saveErr.Error(), core.ColorRed)
		} else {
			m.screen.DrawTextCentered(y, fmt.Sprintf("result saved for %s", m.player), core.ColorGray)
		}
	}
	return RenderScreen(m.screen)
}

// Game returns the running game.
func (m GameModel) Game() *wordsearch.Game {
	return m.game
}

// Saved reports whether the current puzzle's result was recorded.
func (m GameModel) Saved() bool {
	return m.saved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame plays a single level in the terminal.
func RunGame(gen *wordsearch.Generator, store ResultStore, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(gen, store, cfg, player)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
