package wordsearch

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsearch/internal/core"
)

const (
	// MaxAttempts is the number of random placements tried per word
	// before the word is dropped.
	MaxAttempts = 50

	// Alphabet supplies the fill letters for cells no word uses.
	Alphabet = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"
)

var alphabet = []rune(Alphabet)

// Direction is a unit step along one grid axis.
type Direction struct {
	DRow, DCol int
}

// The four reading directions. There are no diagonals.
var (
	East  = Direction{DRow: 0, DCol: 1}
	South = Direction{DRow: 1, DCol: 0}
	West  = Direction{DRow: 0, DCol: -1}
	North = Direction{DRow: -1, DCol: 0}
)

// Directions is the set a placement direction is drawn from.
var Directions = []Direction{East, South, West, North}

// Rand is the random source used for placement and fill.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// globalRand draws from the package-level math/rand source, which is safe
// for concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// lockedRand serializes access to a seeded source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NewSeededRand returns a reproducible source that is safe for concurrent use.
func NewSeededRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Generator builds puzzles from an immutable word list.
type Generator struct {
	words  WordList
	rng    Rand
	logger *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand makes Generate draw from r. A *rand.Rand is not safe for
// concurrent use; give each goroutine its own or use GenerateWith.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithLogger sets the logger that reports dropped words.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a Generator over words.
func NewGenerator(words WordList, opts ...Option) *Generator {
	g := &Generator{
		words:  words,
		rng:    globalRand{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Words returns the word list the generator draws from.
func (g *Generator) Words() WordList {
	return g.words
}

// Generate builds a puzzle for level using the generator's random source.
func (g *Generator) Generate(level int) Puzzle {
	return g.GenerateWith(level, g.rng)
}

// GenerateWith builds a puzzle for level drawing randomness from rng.
//
// Unknown levels use level 1's grid size and words. Words that cannot be
// placed within MaxAttempts are left out of Puzzle.Words and listed in
// Puzzle.Dropped; that is never an error.
func (g *Generator) GenerateWith(level int, rng Rand) Puzzle {
	size := GridSize(level)
	list := g.words.For(level)

	grid := NewGrid(size)
	placed := make([]Placement, 0, len(list))
	var dropped []string

	for _, word := range list {
		p, ok := placeWord(grid, word, rng)
		if !ok {
			g.logger.Warn("could not place word", "word", word, "level", level, "size", size)
			dropped = append(dropped, word)
			continue
		}
		placed = append(placed, p)
	}

	fillBlanks(grid, rng)

	return Puzzle{
		Level:    level,
		GridSize: size,
		Grid:     grid,
		Words:    placed,
		Dropped:  dropped,
	}
}

// placeWord tries up to MaxAttempts random positions for word and writes
// it into grid on the first one that fits.
func placeWord(grid Grid, word string, rng Rand) (Placement, bool) {
	letters := []rune(word)
	n := len(letters)
	size := grid.Size()
	if n == 0 {
		return Placement{}, false
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		dir := Directions[rng.Intn(len(Directions))]

		colLo, colHi := startRange(dir.DCol, n, size)
		rowLo, rowHi := startRange(dir.DRow, n, size)
		if colHi < colLo || rowHi < rowLo {
			// Too long for the grid in this direction.
			continue
		}

		col := colLo + rng.Intn(colHi-colLo+1)
		row := rowLo + rng.Intn(rowHi-rowLo+1)
		start := core.Point{Row: row, Col: col}

		if !canPlace(grid, letters, start, dir) {
			continue
		}
		putWord(grid, letters, start, dir)

		return Placement{
			Word:  word,
			Start: start,
			End:   start.Add(dir.DRow, dir.DCol, n-1),
		}, true
	}
	return Placement{}, false
}

// startRange returns the inclusive range of start coordinates on one axis
// that keeps a word of length n inside the grid when stepping by d.
func startRange(d, n, size int) (lo, hi int) {
	switch {
	case d > 0:
		return 0, size - n
	case d < 0:
		return n - 1, size - 1
	default:
		return 0, size - 1
	}
}

// canPlace reports whether every target cell is blank or already holds
// the letter the word needs there.
func canPlace(grid Grid, letters []rune, start core.Point, dir Direction) bool {
	size := grid.Size()
	for i, r := range letters {
		p := start.Add(dir.DRow, dir.DCol, i)
		if !p.In(size) {
			return false
		}
		if cur := grid[p.Row][p.Col]; cur != Blank && cur != r {
			return false
		}
	}
	return true
}

func putWord(grid Grid, letters []rune, start core.Point, dir Direction) {
	for i, r := range letters {
		p := start.Add(dir.DRow, dir.DCol, i)
		grid[p.Row][p.Col] = r
	}
}

// fillBlanks replaces every Blank cell with a random Alphabet letter.
func fillBlanks(grid Grid, rng Rand) {
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] == Blank {
				grid[row][col] = alphabet[rng.Intn(len(alphabet))]
			}
		}
	}
}
