package config

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

//go:embed defaults/words.yaml
var defaultWordsYAML []byte

// DefaultWords returns the built-in word lists.
func DefaultWords() (wordsearch.WordList, error) {
	list, err := Parse(defaultWordsYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded words: %w", err)
	}
	return list, nil
}
