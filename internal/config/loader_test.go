package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    wordsearch.WordList
		wantErr string
	}{
		{
			name:  "integer keys",
			input: "1: [КОТ, ДОМ]\n2: [СЕТЬ]\n",
			want:  wordsearch.WordList{1: {"КОТ", "ДОМ"}, 2: {"СЕТЬ"}},
		},
		{
			name:  "json object",
			input: `{"1": ["кот", "дом"], "3": ["МАССИВ"]}`,
			want:  wordsearch.WordList{1: {"КОТ", "ДОМ"}, 3: {"МАССИВ"}},
		},
		{
			name:  "normalizes entries",
			input: "1:\n  - '  лес '\n  - ''\n  - ЁЛКА\n  - ДВА СЛОВА\n  - Р2Д2\n",
			want:  wordsearch.WordList{1: {"ЛЕС", "ЁЛКА"}},
		},
		{
			name:  "empty level kept",
			input: "1: []\n",
			want:  wordsearch.WordList{1: {}},
		},
		{
			name:    "non-numeric key",
			input:   "easy: [КОТ]\n",
			wantErr: "not a number",
		},
		{
			name:    "zero key",
			input:   "0: [КОТ]\n",
			wantErr: "must be positive",
		},
		{
			name:    "not a mapping",
			input:   "- КОТ\n- ДОМ\n",
			wantErr: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultWords(t *testing.T) {
	list, err := DefaultWords()
	if err != nil {
		t.Fatalf("DefaultWords() error: %v", err)
	}

	for _, lvl := range wordsearch.Levels {
		words := list[lvl.ID]
		if len(words) == 0 {
			t.Errorf("level %d has no default words", lvl.ID)
		}
		for _, w := range words {
			if n := utf8.RuneCountInString(w); n > lvl.GridSize {
				t.Errorf("level %d word %q has %d letters, grid is %d", lvl.ID, w, n, lvl.GridSize)
			}
			if w != strings.ToUpper(w) {
				t.Errorf("word %q is not upper-case", w)
			}
		}
	}
}

func TestLoadWordsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("1: [ТОК]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, src, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords() error: %v", err)
	}
	if src != Source(path) {
		t.Errorf("source = %q, want %q", src, path)
	}
	if !reflect.DeepEqual(list, wordsearch.WordList{1: {"ТОК"}}) {
		t.Errorf("list = %v", list)
	}
}

func TestLoadWordsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadWords(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("easy: [КОТ]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadWords(bad); err == nil {
		t.Error("expected error for an explicit file with bad keys")
	}
}

func TestLoadWordsUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".wordsearch")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, WordsFile)
	if err := os.WriteFile(path, []byte("2: [СЕТЬ]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, src, err := LoadWords("")
	if err != nil {
		t.Fatalf("LoadWords() error: %v", err)
	}
	if src != Source(path) {
		t.Errorf("source = %q, want %q", src, path)
	}
	if !reflect.DeepEqual(list, wordsearch.WordList{2: {"СЕТЬ"}}) {
		t.Errorf("list = %v", list)
	}
}

func TestLoadWordsFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// A malformed user file is skipped.
	cfgDir := filepath.Join(home, ".wordsearch")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, WordsFile), []byte("easy: [КОТ]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, src, err := LoadWords("")
	if err != nil {
		t.Fatalf("LoadWords() error: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, want %q", src, SourceEmbedded)
	}
	want, _ := DefaultWords()
	if !reflect.DeepEqual(list, want) {
		t.Errorf("list = %v, want embedded defaults", list)
	}
}
