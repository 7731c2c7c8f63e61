package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and their words",
	Long:  `Shows every level with its grid size and the words it uses.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	words := gen.Words()

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-2s  %-8s  %-5s  %-5s  %s\n", "ID", "Name", "Grid", "Words", "List")
	fmt.Printf("  %-2s  %-8s  %-5s  %-5s  %s\n", "--", "----", "----", "-----", "----")

	for _, l := range wordsearch.Levels {
		list := words.For(l.ID)
		grid := fmt.Sprintf("%dx%d", l.GridSize, l.GridSize)
		fmt.Printf("  %-2d  %-8s  %-5s  %-5d  %s\n", l.ID, l.Name, grid, len(list), strings.Join(list, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'wordsearch play <level>' to play a level.")
	return nil
}
