// Package wordsearch generates word-search puzzles and runs the interactive game on top of them.
package wordsearch

// Level describes a difficulty tier.
type Level struct {
	ID       int
	Name     string
	GridSize int
}

// Levels lists the playable difficulty tiers.
var Levels = []Level{
	{ID: 1, Name: "Легкий", GridSize: 10},
	{ID: 2, Name: "Средний", GridSize: 15},
	{ID: 3, Name: "Сложный", GridSize: 20},
}

// LevelCount returns the number of levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level with the given ID, or nil if there is none.
func GetLevel(id int) *Level {
	for i := range Levels {
		if Levels[i].ID == id {
			return &Levels[i]
		}
	}
	return nil
}

// ValidLevel reports whether id names one of Levels.
func ValidLevel(id int) bool {
	return GetLevel(id) != nil
}

// GridSize returns the side length of the grid for a level.
// Unknown levels get the level 1 size.
func GridSize(level int) int {
	if l := GetLevel(level); l != nil {
		return l.GridSize
	}
	return Levels[0].GridSize
}
