package wordsearch

import (
	"math/rand"

	"github.com/vovakirdan/wordsearch/internal/core"
)

// GameID identifies the game in score storage and logs.
const GameID = "wordsearch"

// Game is the interactive word-search session: a puzzle, a cursor and the
// words found so far. It holds no terminal state; the platform feeds it
// input frames and draws it into a core.Screen.
type Game struct {
	gen   *Generator
	rng   *rand.Rand
	level int

	puzzle Puzzle
	found  []bool
	nFound int

	cursor    core.Point
	anchor    core.Point
	selecting bool

	tick     uint64
	tickRate int

	screenW int
	screenH int

	paused   bool
	done     bool
	tooSmall bool
	message  string
}

// New creates a game that draws puzzles from gen.
func New(gen *Generator) *Game {
	return &Game{gen: gen, level: DefaultLevel}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Search"
}

// Reset generates a fresh puzzle for cfg.Level and clears all progress.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.level = cfg.Level
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.load(g.gen.GenerateWith(g.level, g.rng))
}

// load starts play on p with no progress.
func (g *Game) load(p Puzzle) {
	g.puzzle = p
	g.found = make([]bool, len(p.Words))
	g.nFound = 0

	g.cursor = core.Point{}
	g.selecting = false
	g.tick = 0
	g.paused = false
	g.done = len(p.Words) == 0
	g.message = ""

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.done {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	switch {
	case in.Has(core.ActionUp):
		g.move(-1, 0)
	case in.Has(core.ActionDown):
		g.move(1, 0)
	case in.Has(core.ActionLeft):
		g.move(0, -1)
	case in.Has(core.ActionRight):
		g.move(0, 1)
	}

	if in.Has(core.ActionCancel) {
		g.selecting = false
		g.message = ""
	}
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) move(dRow, dCol int) {
	last := g.puzzle.GridSize - 1
	g.cursor.Row = core.Clamp(g.cursor.Row+dRow, 0, last)
	g.cursor.Col = core.Clamp(g.cursor.Col+dCol, 0, last)
}

// confirm anchors a selection at the cursor, or closes the open one and
// checks it against the placed words.
func (g *Game) confirm() {
	if !g.selecting {
		g.anchor = g.cursor
		g.selecting = true
		g.message = ""
		return
	}

	g.selecting = false
	i := g.puzzle.Find(g.anchor, g.cursor)
	if i < 0 && g.anchor == g.cursor {
		// Confirming the anchor cell again drops the selection.
		return
	}

	switch {
	case i < 0:
		g.message = "Нет такого слова"
	case g.found[i]:
		g.message = "Уже найдено: " + g.puzzle.Words[i].Word
	default:
		g.found[i] = true
		g.puzzle.Words[i].Found = true
		g.nFound++
		g.message = "Найдено: " + g.puzzle.Words[i].Word
		if g.nFound == len(g.puzzle.Words) {
			g.done = true
		}
	}
}

// selection returns the cells between anchor and cursor when they share a
// row or column.
func (g *Game) selection() []core.Point {
	if !g.selecting {
		return nil
	}
	dr := g.cursor.Row - g.anchor.Row
	dc := g.cursor.Col - g.anchor.Col
	if dr != 0 && dc != 0 {
		return []core.Point{g.anchor}
	}
	n := core.Max(core.Abs(dr), core.Abs(dc))
	cells := make([]core.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		cells = append(cells, g.anchor.Add(core.Sign(dr), core.Sign(dc), i))
	}
	return cells
}

// State returns the current game state. Score is elapsed whole seconds.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ElapsedSeconds(),
		GameOver: g.done,
		Paused:   g.paused || g.tooSmall,
	}
}

// ElapsedSeconds returns the unpaused play time.
func (g *Game) ElapsedSeconds() int {
	if g.tickRate <= 0 {
		return 0
	}
	return int(g.tick / uint64(g.tickRate))
}

// Completed reports whether the player found every placed word.
func (g *Game) Completed() bool {
	return g.done && len(g.puzzle.Words) > 0
}

// Level returns the level being played.
func (g *Game) Level() int {
	return g.level
}

// Puzzle returns the current puzzle, with Found flags reflecting progress.
func (g *Game) Puzzle() Puzzle {
	return g.puzzle
}

// FoundCount returns how many words have been found.
func (g *Game) FoundCount() int {
	return g.nFound
}

// Cursor returns the cursor position.
func (g *Game) Cursor() core.Point {
	return g.cursor
}
