package wordsearch

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/wordsearch/internal/core"
)

const (
	gridX = 1 // left edge of the grid box
	gridY = 1 // top edge of the grid box
)

// boxSize returns the grid box dimensions: two columns per letter.
func (g *Game) boxSize() (w, h int) {
	n := g.puzzle.GridSize
	return n*2 + 3, n + 2
}

// wordColumn returns the width of one column of the word list.
func (g *Game) wordColumn() int {
	longest := 0
	for _, w := range g.puzzle.Words {
		longest = core.Max(longest, w.Len())
	}
	return longest + 4
}

// layoutSize returns the minimum screen size the current puzzle needs.
func (g *Game) layoutSize() (w, h int) {
	boxW, boxH := g.boxSize()
	cols := 1
	if n := len(g.puzzle.Words); n > boxH {
		cols = (n + boxH - 1) / boxH
	}
	return gridX + boxW + 2 + cols*g.wordColumn(), gridY + boxH + 1
}

// Render draws the puzzle, the word list and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.layoutSize()
		y := dst.Height() / 2
		dst.DrawTextCentered(y-1, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()), core.ColorGray)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderWords(dst)
	g.renderFooter(dst)

	if g.done {
		g.renderOverlay(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	name := "?"
	if l := GetLevel(g.level); l != nil {
		name = l.Name
	}
	secs := g.ElapsedSeconds()
	hud := fmt.Sprintf("WORD SEARCH  %s  %02d:%02d  %d/%d",
		name, secs/60, secs%60, g.nFound, len(g.puzzle.Words))
	dst.DrawTextColor(gridX, 0, hud, core.ColorBrightCyan)
	if g.paused {
		dst.DrawTextColor(gridX+utf8.RuneCountInString(hud)+2, 0, "PAUSED", core.ColorYellow)
	}
}

func (g *Game) renderGrid(dst *core.Screen) {
	boxW, boxH := g.boxSize()
	dst.DrawBox(core.NewRect(gridX, gridY, boxW, boxH), core.ColorGray)

	colors := make(map[core.Point]core.Color)
	for i, w := range g.puzzle.Words {
		if !g.found[i] {
			continue
		}
		for _, c := range w.Cells() {
			colors[c] = core.ColorGreen
		}
	}
	for _, c := range g.selection() {
		colors[c] = core.ColorCyan
	}
	colors[g.cursor] = core.ColorBrightYellow

	for row, letters := range g.puzzle.Grid {
		for col, r := range letters {
			p := core.Point{Row: row, Col: col}
			dst.SetColor(gridX+2+col*2, gridY+1+row, r, colors[p])
		}
	}
}

func (g *Game) renderWords(dst *core.Screen) {
	boxW, boxH := g.boxSize()
	x0 := gridX + boxW + 2
	colW := g.wordColumn()

	for i, w := range g.puzzle.Words {
		x := x0 + (i/boxH)*colW
		y := gridY + i%boxH
		if g.found[i] {
			dst.DrawTextColor(x, y, "✓ "+w.Word, core.ColorGreen)
		} else {
			dst.DrawTextColor(x, y, "  "+w.Word, core.ColorWhite)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	_, boxH := g.boxSize()
	y := gridY + boxH
	if g.message != "" {
		dst.DrawTextColor(gridX, y, g.message, core.ColorYellow)
		return
	}
	dst.DrawTextColor(gridX, y, "arrows move  enter select  x cancel  p pause  b menu  q quit", core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	_, boxH := g.boxSize()
	y := gridY + boxH/2
	if len(g.puzzle.Words) == 0 {
		dst.DrawTextCentered(y, " No words could be placed ", core.ColorRed)
	} else {
		secs := g.ElapsedSeconds()
		dst.DrawTextCentered(y, fmt.Sprintf(" All words found in %02d:%02d! ", secs/60, secs%60), core.ColorBrightGreen)
	}
	dst.DrawTextCentered(y+1, " r: new puzzle   b: menu   q: quit ", core.ColorWhite)
}
