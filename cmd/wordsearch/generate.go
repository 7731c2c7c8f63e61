package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

var flagJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate [level]",
	Short: "Print a puzzle",
	Long: `Generate a puzzle for the given level (default 1) and print the grid
followed by the placed words with their start and end cells as [row, col].

Examples:
  wordsearch generate
  wordsearch generate 3 --seed 42
  wordsearch generate 2 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the puzzle as JSON")
}

func runGenerate(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args, wordsearch.DefaultLevel)
	if err != nil {
		return err
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}
	p := gen.Generate(level)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	name := ""
	if l := wordsearch.GetLevel(level); l != nil {
		name = l.Name
	}
	fmt.Printf("Level %d (%s), %dx%d\n\n", p.Level, name, p.GridSize, p.GridSize)
	fmt.Print(p.Grid.String())
	fmt.Println()

	for _, w := range p.Words {
		fmt.Printf("  %-20s [%d,%d] -> [%d,%d]\n", w.Word, w.Start.Row, w.Start.Col, w.End.Row, w.End.Col)
	}
	for _, w := range p.Dropped {
		fmt.Printf("  %-20s (not placed)\n", w)
	}
	return nil
}
