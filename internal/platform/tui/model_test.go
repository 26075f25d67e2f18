package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestModel(t *testing.T, name string, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(Options{
		Name:   name,
		Runner: config.DefaultRunnerConfig(),
		Store:  store,
	}, cfg)
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

// tickUntilOver feeds ticks until the run ends. A grounded square always
// hits the first obstacle.
func tickUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(time.Time{}))
		if m.gameState.GameOver {
			if cmd != nil {
				t.Error("no tick should be scheduled once the run is over")
			}
			return m
		}
		if cmd == nil {
			t.Fatal("tick loop stopped while playing")
		}
	}
	t.Fatal("run did not end within 1000 ticks")
	return m
}

func TestModelNameEntry(t *testing.T) {
	m := newTestModel(t, "   ", nil)
	if m.phase != phaseNameEntry {
		t.Fatal("blank name should open the name form")
	}
	if v := m.entry.input.Value(); v != "" {
		t.Errorf("form should open empty for a blank name, got %q", v)
	}

	// Empty submission keeps the form and shows the prompt
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseNameEntry {
		t.Error("empty name should not start the run")
	}
	if !errors.Is(m.entry.Err(), game.ErrEmptyName) {
		t.Errorf("entry error = %v, expected ErrEmptyName", m.entry.Err())
	}
	if !strings.Contains(m.View(), "Please enter your name") {
		t.Error("view should show the name prompt")
	}

	// Ticks are ignored before the run starts
	if _, cmd := update(t, m, TickMsg(time.Time{})); cmd != nil {
		t.Error("tick before the run should not reschedule")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	for _, r := range "Bo" {
		m, _ = update(t, m, runeKey(r))
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseRun {
		t.Fatal("valid name should start the run")
	}
	if m.Name() != "Bo" {
		t.Errorf("Name() = %q, expected Bo", m.Name())
	}
	if cmd == nil {
		t.Error("starting a run should schedule a tick")
	}
}

func TestModelSkipsFormWithValidName(t *testing.T) {
	m := newTestModel(t, "  Ann ", nil)
	if m.phase != phaseRun {
		t.Fatal("valid name should skip the form")
	}
	if m.Name() != "Ann" {
		t.Errorf("Name() = %q, expected Ann", m.Name())
	}
	if m.Init() == nil {
		t.Error("Init() should start ticking")
	}
}

func TestModelGameOverSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, "Ann", store)

	m = tickUntilOver(t, m)

	board, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(board) != 1 || board[0].Name != "Ann" {
		t.Fatalf("board = %v, expected one entry for Ann", board)
	}
	if board[0].Score != m.gameState.Score {
		t.Errorf("saved score = %d, expected %d", board[0].Score, m.gameState.Score)
	}

	// Further ticks neither simulate nor save again
	ticks := m.session.Ticks()
	m, cmd := update(t, m, TickMsg(time.Time{}))
	if cmd != nil || m.session.Ticks() != ticks {
		t.Error("ticks after game over should be ignored")
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("recorded %d runs, expected 1", len(runs))
	}

	if !strings.Contains(m.View(), "Game Over") {
		t.Error("view should show the game over box")
	}
}

func TestModelReplay(t *testing.T) {
	m := newTestModel(t, "Ann", nil)

	// Replay is ignored while playing
	m, _ = update(t, m, TickMsg(time.Time{}))
	ticks := m.session.Ticks()
	if _, cmd := update(t, m, runeKey('r')); cmd != nil {
		t.Error("replay should be ignored while playing")
	}
	if m.session.Ticks() != ticks {
		t.Error("replay while playing should not reset the run")
	}

	m = tickUntilOver(t, m)
	if len(m.Board()) != 1 {
		t.Errorf("board without a store should still hold the run, got %v", m.Board())
	}

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("replay should restart the tick loop")
	}
	if m.gameState.GameOver || m.gameState.Score != 0 {
		t.Errorf("state after replay = %+v", m.gameState)
	}
	if m.session.Ticks() != 0 || len(m.session.Obstacles()) != 0 {
		t.Error("replay should clear ticks and obstacles")
	}
	if m.session.RunState() != game.Playing {
		t.Errorf("RunState() = %v, expected Playing", m.session.RunState())
	}
	if m.session.Seed() != 42 {
		t.Errorf("Seed() = %d, replay should keep the fixed seed", m.session.Seed())
	}
	if m.keys.Replay.Enabled() {
		t.Error("replay binding should be disabled while playing")
	}
}

func TestModelJumpInput(t *testing.T) {
	m := newTestModel(t, "Ann", nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Time{}))

	p := m.session.Player()
	if !p.Airborne {
		t.Error("space should make the square jump on the next tick")
	}
	if m.inputFrame.Has(core.ActionJump) {
		t.Error("input should be cleared after the tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, "Ann", nil)

	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, "Ann", nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, expected 100", m.screen.Width())
	}
	if m.screen.Height() != fieldHeight(40) {
		t.Errorf("screen height = %d, expected %d", m.screen.Height(), fieldHeight(40))
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 5})
	if m.screen.Height() != minFieldH {
		t.Errorf("screen height = %d, expected minimum %d", m.screen.Height(), minFieldH)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, "Ann", nil)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg(time.Time{}))
	if !m.gameState.Paused {
		t.Fatal("p should pause the run on the next tick")
	}
	if cmd == nil {
		t.Error("ticks should keep arriving while paused")
	}
	if m.session.Ticks() != 0 {
		t.Errorf("Ticks() = %d, no physics should run while paused", m.session.Ticks())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("HUD should show the pause marker")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Time{}))
	if m.gameState.Paused {
		t.Error("second p should resume the run")
	}
	if strings.Contains(m.View(), "PAUSED") {
		t.Error("pause marker should be gone after resuming")
	}
}

func TestModelLogsRunLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m := NewModel(Options{
		Name:   "Ann",
		Runner: config.DefaultRunnerConfig(),
		Logger: logger,
	}, cfg)

	tickUntilOver(t, m)

	out := buf.String()
	if !strings.Contains(out, "game over") {
		t.Errorf("log should record the collision, got:\n%s", out)
	}
	if strings.Count(out, "game over") != 1 {
		t.Errorf("game over should be logged once, got:\n%s", out)
	}
}

func TestModelScreenshotWithoutHomeLogs(t *testing.T) {
	t.Setenv("HOME", "")

	var buf bytes.Buffer
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m := NewModel(Options{
		Name:   "Ann",
		Runner: config.DefaultRunnerConfig(),
		Logger: log.New(&buf),
	}, cfg)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.Contains(buf.String(), "could not find home directory") {
		t.Errorf("missing home directory should be logged, got %q", buf.String())
	}
}
