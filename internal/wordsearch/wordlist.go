package wordsearch

// DefaultLevel is used whenever a requested level has no word list.
const DefaultLevel = 1

// WordList maps a level to its ordered, upper-case words.
// It is loaded once and only read afterwards.
type WordList map[int][]string

// For returns the words for level, falling back to DefaultLevel's list
// when the level has no entry.
func (w WordList) For(level int) []string {
	if words, ok := w[level]; ok {
		return words
	}
	return w[DefaultLevel]
}

// Count returns the number of words for level, with the same fallback as For.
func (w WordList) Count(level int) int {
	return len(w.For(level))
}
