package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

type savedResult struct {
	player string
	level  int
	secs   int
}

type fakeStore struct {
	saved   []savedResult
	saveErr error
}

func (f *fakeStore) SaveResult(player string, level, secs int) (storage.Result, error) {
	if f.saveErr != nil {
		return storage.Result{}, f.saveErr
	}
	f.saved = append(f.saved, savedResult{player, level, secs})
	return storage.Result{ID: int64(len(f.saved)), PlayerName: player, Level: level, Time: secs}, nil
}

func (f *fakeStore) Results(level, limit int) ([]storage.Result, error) {
	var out []storage.Result
	for i, s := range f.saved {
		if s.level == level {
			out = append(out, storage.Result{ID: int64(i + 1), PlayerName: s.player, Level: s.level, Time: s.secs})
		}
	}
	return out, nil
}

func (f *fakeStore) Stats(level int) (storage.Stats, error) {
	rs, _ := f.Results(level, 0)
	return storage.Stats{TotalResults: len(rs)}, nil
}

func testGenerator() *wordsearch.Generator {
	return wordsearch.NewGenerator(
		wordsearch.WordList{1: {"КОТ", "ДОМ"}, 2: {"СЕТЬ"}, 3: {"МАССИВ"}},
		wordsearch.WithLogger(log.New(io.Discard)),
	)
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return cfg
}

func send(m GameModel, msgs ...tea.Msg) GameModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GameModel)
	}
	return m
}

// pressAndTick delivers a key and then one tick so the game sees it.
func pressAndTick(m GameModel, key string) GameModel {
	return send(m, keyMsg(key), TickMsg{})
}

// walkTo moves the game cursor to p.
func walkTo(m GameModel, p core.Point) GameModel {
	for m.Game().Cursor().Row < p.Row {
		m = pressAndTick(m, "down")
	}
	for m.Game().Cursor().Row > p.Row {
		m = pressAndTick(m, "up")
	}
	for m.Game().Cursor().Col < p.Col {
		m = pressAndTick(m, "right")
	}
	for m.Game().Cursor().Col > p.Col {
		m = pressAndTick(m, "left")
	}
	return m
}

func solve(m GameModel) GameModel {
	for _, w := range m.Game().Puzzle().Words {
		m = walkTo(m, w.Start)
		m = pressAndTick(m, "enter")
		m = walkTo(m, w.End)
		m = pressAndTick(m, "enter")
	}
	return m
}

func TestGameModelSavesOnceOnCompletion(t *testing.T) {
	store := &fakeStore{}
	m := NewGameModel(testGenerator(), store, testConfig(), "анна")

	m = solve(m)
	if !m.Game().Completed() {
		t.Fatal("puzzle should be completed")
	}
	if !m.Saved() {
		t.Fatal("result should be saved")
	}

	// More ticks after completion do not save again.
	m = send(m, TickMsg{}, TickMsg{})
	if len(store.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(store.saved))
	}
	got := store.saved[0]
	if got.player != "анна" || got.level != 1 {
		t.Errorf("saved %+v", got)
	}
	if !strings.Contains(m.View(), "result saved") {
		t.Error("view should confirm the save")
	}
}

func TestGameModelSaveError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	m := solve(NewGameModel(testGenerator(), store, testConfig(), "p"))

	if !strings.Contains(m.View(), "disk full") {
		t.Error("view should report the save error")
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	m := solve(NewGameModel(testGenerator(), nil, testConfig(), "p"))
	if !m.Game().Completed() {
		t.Error("game should complete without a store")
	}
}

func TestGameModelRestart(t *testing.T) {
	store := &fakeStore{}
	m := solve(NewGameModel(testGenerator(), store, testConfig(), "p"))

	m = pressAndTick(m, "r")
	if m.Game().FoundCount() != 0 || m.Saved() {
		t.Error("restart should start a fresh puzzle")
	}
}

func TestGameModelBack(t *testing.T) {
	m := NewGameModel(testGenerator(), nil, testConfig(), "p")

	// While playing, back only cancels the selection.
	m = pressAndTick(m, "enter")
	m = pressAndTick(m, "esc")
	if m.BackToMenu() {
		t.Fatal("back during play should not leave the game")
	}

	m = pressAndTick(m, "p")
	m = send(m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("back while paused should leave the game")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(testGenerator(), nil, testConfig(), "p")
	next, cmd := m.Update(keyMsg("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	store := &fakeStore{}
	var model tea.Model = NewSessionModel(testGenerator(), store, testConfig(), "p")

	update := func(msg tea.Msg) {
		model, _ = model.Update(msg)
	}

	// Open the leaderboard and come back.
	update(keyMsg("tab"))
	if s := model.(SessionModel); s.screen != screenLeaderboard {
		t.Fatalf("screen = %v, want leaderboard", s.screen)
	}
	update(keyMsg("esc"))
	if s := model.(SessionModel); s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", s.screen)
	}

	// Pick the second level.
	update(keyMsg("down"))
	update(keyMsg("enter"))
	s := model.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if s.game.Game().Level() != 2 {
		t.Errorf("level = %d, want 2", s.game.Game().Level())
	}

	// Pause, then back to the menu with the level remembered.
	update(keyMsg("p"))
	update(TickMsg{})
	update(keyMsg("esc"))
	s = model.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", s.screen)
	}
	if s.menu.cursor != 1 {
		t.Errorf("menu cursor = %d, want 1", s.menu.cursor)
	}

	update(keyMsg("q"))
	if !model.(SessionModel).quitting {
		t.Error("q should quit the session")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "КОТ", core.ColorGreen)
	s.DrawText(0, 1, "дом")

	out := RenderScreen(s)
	if !strings.Contains(out, "КОТ") || !strings.Contains(out, "дом") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should emit 2 lines, got %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{0: "00:00", 59: "00:59", 61: "01:01", 3600: "60:00"}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}
