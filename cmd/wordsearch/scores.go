package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsearch/internal/platform/tui"
	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the leaderboard",
	Long: `Display the fastest solves of one level, or of every level when none is
given, with the best and average times.

Examples:
  wordsearch scores
  wordsearch scores 2 --limit 5
  wordsearch scores -i
  wordsearch scores 3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultTopLimit, "Results per level")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a TUI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the results of the level (or all levels)")
}

func runScores(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args, 0)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(level); err != nil {
			return err
		}
		logger.Info("results cleared", "level", levelName(level))
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		start := level
		if start == 0 {
			start = wordsearch.DefaultLevel
		}
		return tui.RunLeaderboard(store, start, width, height)
	}

	levels := wordsearch.Levels
	if level != 0 {
		levels = []wordsearch.Level{*wordsearch.GetLevel(level)}
	}
	for i, l := range levels {
		if i > 0 {
			fmt.Println()
		}
		if err := printLevelScores(store, l); err != nil {
			return err
		}
	}
	return nil
}

func printLevelScores(store *storage.Store, l wordsearch.Level) error {
	results, err := store.Results(l.ID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(l.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Leaderboard - %s (%dx%d)\n", l.Name, l.GridSize, l.GridSize)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("  No results recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "------", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-20s  %-6s  %s\n", i+1, r.PlayerName, tui.FormatDuration(r.Time), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("  Results: %d", stats.TotalResults)
	if stats.BestTime != nil {
		fmt.Printf("  Best: %s", tui.FormatDuration(*stats.BestTime))
	}
	if stats.AverageTime != nil {
		fmt.Printf("  Average: %s", tui.FormatDuration(*stats.AverageTime))
	}
	fmt.Println()
	return nil
}

func levelName(level int) string {
	if l := wordsearch.GetLevel(level); l != nil {
		return l.Name
	}
	return "all"
}
