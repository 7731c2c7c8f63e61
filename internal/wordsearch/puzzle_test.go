package wordsearch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/wordsearch/internal/core"
)

func TestPuzzleJSON(t *testing.T) {
	p := Puzzle{
		Level:    1,
		GridSize: 2,
		Grid:     Grid{{'К', 'О'}, {'Т', 'Ы'}},
		Words: []Placement{
			{Word: "КО", Start: core.Point{Row: 0, Col: 0}, End: core.Point{Row: 0, Col: 1}},
		},
		Dropped: []string{"ДОМ"},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	want := `{"level":1,"gridSize":2,"grid":[["К","О"],["Т","Ы"]],"words":[{"word":"КО","start":[0,0],"end":[0,1],"found":false}]}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}

	var back Puzzle
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back.Grid[1][0] != 'Т' || back.Words[0].End != (core.Point{Row: 0, Col: 1}) {
		t.Errorf("Unmarshal() = %+v", back)
	}
}

func TestGridUnmarshalRejectsMultiLetterCells(t *testing.T) {
	var g Grid
	if err := json.Unmarshal([]byte(`[["АБ"]]`), &g); err == nil {
		t.Error("expected error for a two-letter cell")
	}
	if err := json.Unmarshal([]byte(`[[""]]`), &g); err == nil {
		t.Error("expected error for an empty cell")
	}
}

func TestPuzzleFind(t *testing.T) {
	p := Puzzle{Words: []Placement{
		{Word: "КОТ", Start: core.Point{Row: 0, Col: 0}, End: core.Point{Row: 0, Col: 2}},
		{Word: "ТОН", Start: core.Point{Row: 0, Col: 2}, End: core.Point{Row: 2, Col: 2}},
	}}

	tests := []struct {
		name string
		a, b core.Point
		want int
	}{
		{"forward", core.Point{Row: 0, Col: 0}, core.Point{Row: 0, Col: 2}, 0},
		{"reversed", core.Point{Row: 2, Col: 2}, core.Point{Row: 0, Col: 2}, 1},
		{"partial", core.Point{Row: 0, Col: 0}, core.Point{Row: 0, Col: 1}, -1},
		{"unrelated", core.Point{Row: 5, Col: 5}, core.Point{Row: 5, Col: 7}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Find(tt.a, tt.b); got != tt.want {
				t.Errorf("Find(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPuzzleFindPrefersUnfound(t *testing.T) {
	a := core.Point{Row: 5, Col: 7}
	b := core.Point{Row: 7, Col: 7}

	tests := []struct {
		name  string
		found []bool
		from  core.Point
		to    core.Point
		want  int
	}{
		{"exact direction first", []bool{false, false}, a, b, 1},
		{"other exact direction", []bool{false, false}, b, a, 0},
		{"reverse when exact is found", []bool{false, true}, a, b, 0},
		{"found one when all found", []bool{true, true}, a, b, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Puzzle{Words: []Placement{
				{Word: "КОТ", Start: b, End: a, Found: tt.found[0]},
				{Word: "ТОК", Start: a, End: b, Found: tt.found[1]},
			}}
			if got := p.Find(tt.from, tt.to); got != tt.want {
				t.Errorf("Find(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPlacementCells(t *testing.T) {
	pl := Placement{Word: "ТОН", Start: core.Point{Row: 4, Col: 1}, End: core.Point{Row: 2, Col: 1}}

	if pl.Direction() != North {
		t.Errorf("Direction() = %v, want North", pl.Direction())
	}
	cells := pl.Cells()
	want := []core.Point{{Row: 4, Col: 1}, {Row: 3, Col: 1}, {Row: 2, Col: 1}}
	if len(cells) != len(want) {
		t.Fatalf("Cells() = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
	if pl.Contains(core.Point{Row: 1, Col: 1}) {
		t.Error("Contains() should be false past the end")
	}
}

func TestGridString(t *testing.T) {
	g := Grid{{'А', 'Б'}, {'В', 'Г'}}
	if got := g.String(); got != "А Б\nВ Г\n" {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(NewGrid(3).String(), "     ") {
		t.Error("NewGrid should be blank")
	}
}
