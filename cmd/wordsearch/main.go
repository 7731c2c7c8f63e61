// wordsearch is a word-search puzzle game for the terminal, with an HTTP API
// and an SSH server for remote play.
//
// Usage:
//
//	wordsearch generate [level]   - Print a puzzle
//	wordsearch levels             - List levels and their words
//	wordsearch play [level]       - Play in the terminal
//	wordsearch scores [level]     - Show the leaderboard
//	wordsearch serve              - Start the HTTP API
//	wordsearch ssh                - Start the SSH game server
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible puzzles
//	--db <path>         - Set database path (default: ~/.wordsearch/scores.db)
//	--words <path>      - Load word lists from a YAML or JSON file
//	--log-level <lvl>   - debug, info, warn, error (default: $LOG_LEVEL or info)
//	--fps <rate>        - Set tick rate
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/config"
	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagWords    string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "wordsearch",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Word search puzzles in your terminal",
	Long: `wordsearch generates word-search puzzles on square grids of letters
and lets you solve them in the terminal, over SSH, or through an HTTP API.

Available commands:
  generate - Print a puzzle
  levels   - List levels and their words
  play     - Play in the terminal
  scores   - Show the leaderboard
  serve    - Start the HTTP API
  ssh      - Start the SSH game server

Examples:
  wordsearch generate 2
  wordsearch play
  wordsearch serve --addr :3001
  wordsearch ssh --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordsearch/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list YAML/JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
}

// setupLogging applies --log-level, falling back to $LOG_LEVEL.
func setupLogging(_ *cobra.Command, _ []string) error {
	lvl := flagLogLevel
	if lvl == "" {
		lvl = os.Getenv("LOG_LEVEL")
	}
	if lvl == "" {
		lvl = "info"
	}

	level, err := log.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lvl, err)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	return nil
}

// newGenerator loads the word lists and builds a generator. A non-zero
// --seed makes the puzzle sequence reproducible.
func newGenerator() (*wordsearch.Generator, error) {
	words, src, err := config.LoadWords(flagWords)
	if err != nil {
		return nil, err
	}
	logger.Debug("word lists loaded", "source", src, "levels", len(words))

	opts := []wordsearch.Option{wordsearch.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, wordsearch.WithRand(wordsearch.NewSeededRand(flagSeed)))
	}
	return wordsearch.NewGenerator(words, opts...), nil
}

// openStoreOptional opens the results database, or returns nil with a
// warning so games still work without it.
func openStoreOptional() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// parseLevel parses a level argument; an empty args slice yields def.
func parseLevel(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	level, err := strconv.Atoi(args[0])
	if err != nil || !wordsearch.ValidLevel(level) {
		return 0, fmt.Errorf("invalid level %q: must be between 1 and %d", args[0], wordsearch.LevelCount())
	}
	return level, nil
}
