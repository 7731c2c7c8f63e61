// Package config loads the word lists the generator draws from.
//
// A word list file maps level numbers to sequences of words:
//
//	1:
//	  - КОТ
//	  - ДОМ
//	"2": [КОМПЬЮТЕР, ПРОГРАММА]
//
// Keys may be written as integers or quoted strings, so a JSON object such
// as {"1": ["КОТ"]} parses too.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// WordsFile is the file name looked up in the config directories.
const WordsFile = "words.yaml"

// Parse decodes a word list file and normalizes its entries.
// Words are trimmed and upper-cased; empty entries and entries containing
// anything but letters are skipped.
func Parse(data []byte) (wordsearch.WordList, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	list := make(wordsearch.WordList, len(raw))
	for key, words := range raw {
		level, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("level key %q is not a number", key)
		}
		if level < 1 {
			return nil, fmt.Errorf("level key %d must be positive", level)
		}

		clean := make([]string, 0, len(words))
		for _, w := range words {
			if w = normalize(w); w != "" {
				clean = append(clean, w)
			}
		}
		list[level] = clean
	}
	return list, nil
}

func normalize(word string) string {
	word = strings.ToUpper(strings.TrimSpace(word))
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return ""
		}
	}
	return word
}
