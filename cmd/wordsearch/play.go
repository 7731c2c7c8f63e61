package main

import (
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Play a word-search puzzle. Without a level a menu lets you pick one and
view the leaderboard. Your time is saved when every word is found.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Enter/Space      - Start or finish a selection
  X/Backspace      - Cancel the selection
  P                - Pause
  R                - New puzzle (after finishing)
  B/Esc            - Back (when paused or finished)
  Q/Ctrl+C         - Quit

Examples:
  wordsearch play
  wordsearch play 2 --name anna
  wordsearch play 3 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard (default: OS user)")
}

func runPlay(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args, 0)
	if err != nil {
		return err
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	// Log lines would draw over the alternate screen.
	if logger.GetLevel() < log.ErrorLevel {
		logger.SetLevel(log.ErrorLevel)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    level,
	}

	store := openStoreOptional()
	var results tui.ResultStore
	if store != nil {
		defer store.Close()
		results = store
	}

	player := playerName()
	if level == 0 {
		cfg.Level = 1
		return tui.RunSession(gen, results, cfg, player)
	}
	return tui.RunGame(gen, results, cfg, player)
}

// playerName returns --name, or the OS user name.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
