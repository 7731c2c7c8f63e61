package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// Source names where a word list came from.
type Source string

// SourceEmbedded is reported when no file was found.
const SourceEmbedded Source = "embedded"

// LoadWords loads the word lists.
// Search order: customPath -> ~/.wordsearch/words.yaml -> ./configs/words.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// implicit locations are skipped when missing or malformed.
func LoadWords(customPath string) (wordsearch.WordList, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read words %s: %w", customPath, err)
		}
		list, err := Parse(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse words %s: %w", customPath, err)
		}
		return list, Source(customPath), nil
	}

	candidates := []string{filepath.Join("configs", WordsFile)}
	if p := userConfigPath(WordsFile); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if list, err := Parse(data); err == nil {
			return list, Source(path), nil
		}
	}

	list, err := DefaultWords()
	if err != nil {
		return nil, "", err
	}
	return list, SourceEmbedded, nil
}

// userConfigPath returns the path to a file in the user's config directory,
// or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsearch", filename)
}
