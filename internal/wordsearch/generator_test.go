package wordsearch

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsearch/internal/core"
)

// scriptedRand returns queued values in order, then zeros.
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) Intn(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testWords() WordList {
	return WordList{
		1: {"КОТ", "ДОМ", "ЛЕС", "РЕКА", "СОЛНЦЕ", "МОРЕ"},
		2: {"КОМПЬЮТЕР", "ПРОГРАММА", "АЛГОРИТМ", "ДАННЫЕ", "СЕТЬ", "ФАЙЛ", "КОД"},
		3: {"ПРОГРАММИРОВАНИЕ", "БИБЛИОТЕКА", "ИНТЕРФЕЙС", "КОМПИЛЯТОР", "ПЕРЕМЕННАЯ", "ФУНКЦИЯ", "МАССИВ", "ОБЪЕКТ"},
	}
}

// readPlacement walks the grid from Start to End.
func readPlacement(t *testing.T, grid Grid, p Placement) string {
	t.Helper()
	dr := core.Sign(p.End.Row - p.Start.Row)
	dc := core.Sign(p.End.Col - p.Start.Col)
	if dr != 0 && dc != 0 {
		t.Fatalf("placement %q is diagonal: %v -> %v", p.Word, p.Start, p.End)
	}

	var out []rune
	cur := p.Start
	for {
		if !cur.In(grid.Size()) {
			t.Fatalf("placement %q leaves the grid at %v", p.Word, cur)
		}
		out = append(out, grid[cur.Row][cur.Col])
		if cur == p.End {
			break
		}
		cur = cur.Add(dr, dc, 1)
	}
	return string(out)
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 10},
		{2, 15},
		{3, 20},
		{0, 10},
		{4, 10},
		{99, 10},
		{-1, 10},
	}

	for _, tt := range tests {
		if got := GridSize(tt.level); got != tt.expected {
			t.Errorf("GridSize(%d) = %d, want %d", tt.level, got, tt.expected)
		}
	}
}

func TestWordListFallback(t *testing.T) {
	words := testWords()

	if got := words.For(2); len(got) != len(words[2]) || got[0] != words[2][0] {
		t.Errorf("For(2) = %v, want level 2 list", got)
	}
	if got := words.For(99); len(got) != len(words[1]) || got[0] != words[1][0] {
		t.Errorf("For(99) = %v, want level 1 list", got)
	}

	// An explicitly empty list is not replaced by the fallback.
	words[2] = []string{}
	if got := words.For(2); len(got) != 0 {
		t.Errorf("For(2) with empty entry = %v, want empty", got)
	}
}

func TestGenerateProperties(t *testing.T) {
	words := testWords()

	for _, level := range []int{1, 2, 3, 99, 0} {
		for seed := int64(1); seed <= 25; seed++ {
			gen := NewGenerator(words, WithLogger(quietLogger()))
			p := gen.GenerateWith(level, rand.New(rand.NewSource(seed)))

			wantSize := GridSize(level)
			if p.GridSize != wantSize {
				t.Fatalf("level %d: GridSize = %d, want %d", level, p.GridSize, wantSize)
			}
			if p.Level != level {
				t.Errorf("level %d: Level = %d", level, p.Level)
			}
			if len(p.Grid) != wantSize {
				t.Fatalf("level %d: %d rows, want %d", level, len(p.Grid), wantSize)
			}
			for r, row := range p.Grid {
				if len(row) != wantSize {
					t.Fatalf("level %d: row %d has %d cells", level, r, len(row))
				}
				for c, cell := range row {
					if cell == Blank {
						t.Fatalf("level %d seed %d: blank cell at [%d][%d]", level, seed, r, c)
					}
				}
			}

			source := words.For(level)
			if len(p.Words)+len(p.Dropped) != len(source) {
				t.Errorf("level %d: placed %d + dropped %d != %d words",
					level, len(p.Words), len(p.Dropped), len(source))
			}

			allowed := make(map[string]int)
			for _, w := range source {
				allowed[w]++
			}
			for _, pl := range p.Words {
				if allowed[pl.Word] == 0 {
					t.Errorf("level %d: placed word %q is not in the source list (or duplicated)", level, pl.Word)
				}
				allowed[pl.Word]--
				if pl.Found {
					t.Errorf("placement %q starts as found", pl.Word)
				}
				if got := readPlacement(t, p.Grid, pl); got != pl.Word {
					t.Errorf("level %d seed %d: grid reads %q along %v->%v, want %q",
						level, seed, got, pl.Start, pl.End, pl.Word)
				}
			}
		}
	}
}

func TestGenerateKeepsListOrder(t *testing.T) {
	words := testWords()
	gen := NewGenerator(words, WithLogger(quietLogger()))
	p := gen.GenerateWith(1, rand.New(rand.NewSource(7)))

	idx := make(map[string]int)
	for i, w := range words[1] {
		idx[w] = i
	}
	for i := 1; i < len(p.Words); i++ {
		if idx[p.Words[i-1].Word] > idx[p.Words[i].Word] {
			t.Errorf("placements out of list order: %q before %q", p.Words[i-1].Word, p.Words[i].Word)
		}
	}
}

func TestGenerateUnknownLevelFallsBack(t *testing.T) {
	words := testWords()
	gen := NewGenerator(words, WithLogger(quietLogger()), WithRand(rand.New(rand.NewSource(3))))
	p := gen.Generate(99)

	if p.GridSize != 10 {
		t.Errorf("GridSize = %d, want 10", p.GridSize)
	}
	level1 := make(map[string]bool)
	for _, w := range words[1] {
		level1[w] = true
	}
	for _, pl := range p.Words {
		if !level1[pl.Word] {
			t.Errorf("word %q is not from the level 1 list", pl.Word)
		}
	}
}

func TestGenerateDropsWordTooLong(t *testing.T) {
	words := WordList{1: {"КОТ", "ЭЛЕКТРОСТАНЦИЯ", "ДОМ"}}
	gen := NewGenerator(words, WithLogger(quietLogger()))
	p := gen.GenerateWith(1, rand.New(rand.NewSource(11)))

	if len(p.Dropped) != 1 || p.Dropped[0] != "ЭЛЕКТРОСТАНЦИЯ" {
		t.Fatalf("Dropped = %v, want [ЭЛЕКТРОСТАНЦИЯ]", p.Dropped)
	}
	if len(p.Words) != 2 {
		t.Fatalf("placed %d words, want 2", len(p.Words))
	}
	if p.Words[0].Word != "КОТ" || p.Words[1].Word != "ДОМ" {
		t.Errorf("placed %q and %q, want КОТ and ДОМ", p.Words[0].Word, p.Words[1].Word)
	}
}

func TestGenerateCrossingWords(t *testing.T) {
	// КОТ east from (0,0); ТОН south from (0,2), sharing Т.
	rng := &scriptedRand{values: []int{
		0, 0, 0, // East, col 0, row 0
		1, 2, 0, // South, col 2, row 0
	}}
	gen := NewGenerator(WordList{1: {"КОТ", "ТОН"}}, WithLogger(quietLogger()))
	p := gen.GenerateWith(1, rng)

	if len(p.Words) != 2 {
		t.Fatalf("placed %d words, want 2 (dropped %v)", len(p.Words), p.Dropped)
	}

	kot, ton := p.Words[0], p.Words[1]
	if kot.Start != (core.Point{Row: 0, Col: 0}) || kot.End != (core.Point{Row: 0, Col: 2}) {
		t.Errorf("КОТ at %v->%v", kot.Start, kot.End)
	}
	if ton.Start != (core.Point{Row: 0, Col: 2}) || ton.End != (core.Point{Row: 2, Col: 2}) {
		t.Errorf("ТОН at %v->%v", ton.Start, ton.End)
	}

	shared := core.Point{Row: 0, Col: 2}
	if !kot.Contains(shared) || !ton.Contains(shared) {
		t.Fatal("words should share cell (0,2)")
	}
	if p.Grid.At(shared) != 'Т' {
		t.Errorf("shared cell = %q, want Т", p.Grid.At(shared))
	}
	if readPlacement(t, p.Grid, kot) != "КОТ" || readPlacement(t, p.Grid, ton) != "ТОН" {
		t.Error("crossing words do not read back correctly")
	}
}

func TestGenerateWestward(t *testing.T) {
	// West: start column range is [2, 9]; Intn returns 0 -> column 2.
	rng := &scriptedRand{values: []int{2, 0, 0}}
	gen := NewGenerator(WordList{1: {"КОТ"}}, WithLogger(quietLogger()))
	p := gen.GenerateWith(1, rng)

	if len(p.Words) != 1 {
		t.Fatalf("placed %d words, want 1", len(p.Words))
	}
	pl := p.Words[0]
	if pl.Start != (core.Point{Row: 0, Col: 2}) || pl.End != (core.Point{Row: 0, Col: 0}) {
		t.Errorf("КОТ at %v->%v, want [0,2]->[0,0]", pl.Start, pl.End)
	}
	if pl.Direction() != West {
		t.Errorf("Direction() = %v, want West", pl.Direction())
	}
	if got := string([]rune{p.Grid[0][0], p.Grid[0][1], p.Grid[0][2]}); got != "ТОК" {
		t.Errorf("row 0 reads %q, want ТОК", got)
	}
}

func TestGenerateRetryBudget(t *testing.T) {
	// Every draw is 0: both words always land East at (0,0). ДОМ conflicts
	// with КОТ on every attempt and must be dropped after MaxAttempts.
	rng := &scriptedRand{}
	gen := NewGenerator(WordList{1: {"КОТ", "ДОМ"}}, WithLogger(quietLogger()))
	p := gen.GenerateWith(1, rng)

	if len(p.Words) != 1 || p.Words[0].Word != "КОТ" {
		t.Fatalf("Words = %+v, want only КОТ", p.Words)
	}
	if len(p.Dropped) != 1 || p.Dropped[0] != "ДОМ" {
		t.Fatalf("Dropped = %v, want [ДОМ]", p.Dropped)
	}

	// 3 draws for КОТ, 3 per attempt for ДОМ, one per filled cell.
	want := 3 + 3*MaxAttempts + (100 - 3)
	if rng.calls != want {
		t.Errorf("random draws = %d, want %d", rng.calls, want)
	}
}

func TestGenerateEmptyList(t *testing.T) {
	gen := NewGenerator(WordList{1: {}}, WithLogger(quietLogger()))
	p := gen.GenerateWith(2, rand.New(rand.NewSource(1)))

	if p.GridSize != 15 {
		t.Errorf("GridSize = %d, want 15", p.GridSize)
	}
	if p.Words == nil || len(p.Words) != 0 {
		t.Errorf("Words = %v, want empty non-nil slice", p.Words)
	}
}

func TestFillUsesAlphabet(t *testing.T) {
	gen := NewGenerator(WordList{}, WithLogger(quietLogger()))
	p := gen.GenerateWith(3, rand.New(rand.NewSource(5)))

	letters := make(map[rune]bool)
	for _, r := range Alphabet {
		letters[r] = true
	}
	for _, row := range p.Grid {
		for _, cell := range row {
			if !letters[cell] {
				t.Fatalf("fill letter %q is not in the alphabet", cell)
			}
		}
	}
}

func TestGenerateStructureIsStable(t *testing.T) {
	words := testWords()
	gen := NewGenerator(words, WithLogger(quietLogger()))

	for i := 0; i < 10; i++ {
		p := gen.Generate(2)
		if p.GridSize != 15 || len(p.Grid) != 15 {
			t.Fatalf("call %d: size %d", i, p.GridSize)
		}
		if len(p.Words) > len(words[2]) {
			t.Fatalf("call %d: %d words placed from a list of %d", i, len(p.Words), len(words[2]))
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	gen := NewGenerator(testWords(), WithLogger(quietLogger()))

	done := make(chan Puzzle)
	for i := 0; i < 8; i++ {
		go func(level int) {
			done <- gen.Generate(level)
		}(i%3 + 1)
	}
	for i := 0; i < 8; i++ {
		p := <-done
		if p.GridSize != GridSize(p.Level) {
			t.Errorf("level %d: GridSize = %d", p.Level, p.GridSize)
		}
	}
}

func TestSeededRandReproducible(t *testing.T) {
	a := NewGenerator(testWords(), WithRand(NewSeededRand(99)), WithLogger(quietLogger()))
	b := NewGenerator(testWords(), WithRand(NewSeededRand(99)), WithLogger(quietLogger()))

	for level := 1; level <= 3; level++ {
		pa, pb := a.Generate(level), b.Generate(level)
		if pa.Grid.String() != pb.Grid.String() {
			t.Errorf("level %d: same seed produced different grids", level)
		}
	}

	// Shared across goroutines without racing.
	shared := NewGenerator(testWords(), WithRand(NewSeededRand(1)), WithLogger(quietLogger()))
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			shared.Generate(3)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
