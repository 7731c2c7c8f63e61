package wordsearch

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/wordsearch/internal/core"
)

// Blank marks a cell that no word has written yet.
// It never appears in a finished grid.
const Blank = ' '

// Grid is a square, row-major matrix of letters: grid[row][col].
type Grid [][]rune

// NewGrid returns a size×size grid of Blank cells.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for row := range g {
		g[row] = make([]rune, size)
		for col := range g[row] {
			g[row][col] = Blank
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// At returns the letter at p, or Blank when p is outside the grid.
func (g Grid) At(p core.Point) rune {
	if !p.In(len(g)) {
		return Blank
	}
	return g[p.Row][p.Col]
}

// String renders the grid as space-separated rows.
func (g Grid) String() string {
	buf := make([]rune, 0, len(g)*len(g)*2)
	for row := range g {
		for col, r := range g[row] {
			if col > 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, r)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// MarshalJSON encodes the grid as rows of one-letter strings.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = make([]string, len(row))
		for j, r := range row {
			rows[i][j] = string(r)
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes rows of one-letter strings.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	out := make(Grid, len(rows))
	for i, row := range rows {
		out[i] = make([]rune, len(row))
		for j, s := range row {
			r, n := utf8.DecodeRuneInString(s)
			if n == 0 || n != len(s) {
				return fmt.Errorf("wordsearch: cell [%d][%d] is not a single letter: %q", i, j, s)
			}
			out[i][j] = r
		}
	}
	*g = out
	return nil
}

// Placement is a word embedded in the grid. Start and End are inclusive.
type Placement struct {
	Word  string     `json:"word"`
	Start core.Point `json:"start"`
	End   core.Point `json:"end"`
	Found bool       `json:"found"`
}

// Len returns the word length in letters.
func (p Placement) Len() int {
	return utf8.RuneCountInString(p.Word)
}

// Direction infers the reading direction from Start to End.
func (p Placement) Direction() Direction {
	return Direction{
		DRow: core.Sign(p.End.Row - p.Start.Row),
		DCol: core.Sign(p.End.Col - p.Start.Col),
	}
}

// Cells returns the coordinates of every letter, from Start to End.
func (p Placement) Cells() []core.Point {
	d := p.Direction()
	n := p.Len()
	cells := make([]core.Point, n)
	for i := 0; i < n; i++ {
		cells[i] = p.Start.Add(d.DRow, d.DCol, i)
	}
	return cells
}

// Contains reports whether the placement covers cell.
func (p Placement) Contains(cell core.Point) bool {
	for _, c := range p.Cells() {
		if c == cell {
			return true
		}
	}
	return false
}

// Puzzle is a finished grid together with the words placed in it.
type Puzzle struct {
	Level    int         `json:"level"`
	GridSize int         `json:"gridSize"`
	Grid     Grid        `json:"grid"`
	Words    []Placement `json:"words"`

	// Dropped lists the words that could not be placed.
	Dropped []string `json:"-"`
}

// Find returns the index of the placement spanning a and b, or -1.
// Unfound placements read from a to b win over unfound ones read from b to
// a, which win over found ones, so a word and its reverse sharing a span
// can both be found.
func (p Puzzle) Find(a, b core.Point) int {
	found := -1
	reversed := -1
	for i, w := range p.Words {
		forward := w.Start == a && w.End == b
		backward := w.Start == b && w.End == a
		switch {
		case !forward && !backward:
			continue
		case w.Found:
			if found < 0 {
				found = i
			}
		case forward:
			return i
		case reversed < 0:
			reversed = i
		}
	}
	if reversed >= 0 {
		return reversed
	}
	return found
}
