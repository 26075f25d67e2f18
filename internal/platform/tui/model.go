package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Layout rows reserved around the playfield.
const (
	hudHeight   = 1
	panelHeight = storage.MaxHighScores + 6 // Board title, table header, borders
	minFieldH   = 6
)

type phase int

const (
	phaseNameEntry phase = iota
	phaseRun
)

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	hudPausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 2)
)

// Options configures a Model.
type Options struct {
	Name   string         // Player name; the form is skipped when valid
	Runner config.RunnerConfig
	Store  *storage.Store // May be nil to play without persistence
	Logger *log.Logger    // May be nil
}

// Model is the Bubble Tea model for the runner.
// It drives the session one tick at a time while a run is in progress and
// stops ticking once the run is over.
type Model struct {
	phase      phase
	entry      NameEntry
	name       string
	session    *game.Session
	screen     *core.Screen
	canvas     *Canvas
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	board      []storage.Entry
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	fixedSeed  bool // Replays reuse the --seed value
	scoreSaved bool // Whether the score was persisted for the current game over
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	fixedSeed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH))
	m := Model{
		phase:      phaseNameEntry,
		entry:      NewNameEntry(opts.Name),
		session:    game.NewSession(opts.Runner, cfg.Seed),
		screen:     screen,
		canvas:     NewCanvas(screen, opts.Runner.Surface.Width, opts.Runner.Surface.Height),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		fixedSeed:  fixedSeed,
	}
	m.loadBoard()

	if name, err := game.ValidateName(opts.Name); err == nil {
		m.name = name
		m.phase = phaseRun
	}
	return m
}

// fieldHeight is the number of terminal rows left for the playfield.
func fieldHeight(screenH int) int {
	return core.Max(screenH-hudHeight-panelHeight, minFieldH)
}

// Init starts the first run or the name form.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseRun {
		m.logger.Info("run started", "name", m.name, "seed", m.session.Seed())
		return tickCmd(m.config.TickRate)
	}
	return m.entry.Init()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.phase == phaseNameEntry {
			return m.handleEntryKey(msg)
		}
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEntryKey feeds the name form until a valid name is submitted.
func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)

	name, ok := m.entry.Submitted()
	if !ok {
		return m, cmd
	}

	m.name = name
	m.phase = phaseRun
	return m, m.startRun(m.session.Seed())
}

// handleKey processes keyboard input during a run.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			seed := m.config.Seed
			if !m.fixedSeed {
				seed = time.Now().UnixNano()
			}
			return m, m.startRun(seed)
		}
	}

	return m, nil
}

// handleResize processes window resize events. World coordinates are
// independent of the terminal, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by one tick and schedules the next one
// unless the run just ended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseRun || m.gameState.GameOver {
		return m, nil
	}

	result := m.session.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Cleared > 0 {
		m.logger.Debug("obstacle cleared", "cleared", result.Cleared, "score", result.State.Score)
	}
	if result.Collided {
		m.finishRun()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// startRun resets the session and starts the tick loop.
func (m *Model) startRun(seed int64) tea.Cmd {
	m.config.Seed = seed
	m.session.Reset(seed)
	m.gameState = m.session.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.keys.Replay.SetEnabled(false)

	m.logger.Info("run started", "name", m.name, "seed", seed)
	return tickCmd(m.config.TickRate)
}

// finishRun persists the score once per game over.
func (m *Model) finishRun() {
	m.keys.Replay.SetEnabled(true)
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.gameState.Score
	m.logger.Info("game over", "name", m.name, "score", score, "ticks", m.session.Ticks())

	if m.store == nil {
		m.board = storage.Insert(m.board, storage.Entry{Name: m.name, Score: score}, storage.MaxHighScores)
		return
	}

	board, err := m.store.SubmitScore(m.name, score)
	if err != nil {
		m.logger.Error("could not save high score", "error", err)
	} else {
		m.board = board
	}

	_, err = m.store.RecordRun(storage.Run{
		Name:  m.name,
		Score: score,
		Ticks: m.session.Ticks(),
		Seed:  m.session.Seed(),
	})
	if err != nil {
		m.logger.Error("could not record run", "error", err)
	}
}

// loadBoard reads the persisted high scores.
func (m *Model) loadBoard() {
	if m.store == nil {
		return
	}
	board, err := m.store.HighScores()
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		return
	}
	m.board = board
}

// best returns the score to beat.
func (m Model) best() int {
	if len(m.board) == 0 {
		return 0
	}
	return m.board[0].Score
}

// saveScreenshot saves the current playfield to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not find home directory for screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phaseNameEntry {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.entry.View(),
			"",
			renderBoard(m.board),
		)
	}

	m.session.Render(m.canvas)

	hud := hudStyle.Render(fmt.Sprintf(" %s  Score: %d  Best: %d", m.name, m.gameState.Score, core.Max(m.best(), m.gameState.Score)))
	if m.gameState.Paused {
		hud = lipgloss.JoinHorizontal(lipgloss.Top, hud, hudPausedStyle.Render("  PAUSED"))
	}
	panel := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBoard(m.board),
		helpStyle.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		hud,
		RenderScreen(m.screen),
		panel,
	)
}

// Name returns the player name once it was entered.
func (m Model) Name() string {
	return m.name
}

// Board returns the high-score board as last loaded or saved.
func (m Model) Board() []storage.Entry {
	return m.board
}

// Run starts the Bubble Tea program and returns the final model.
func Run(opts Options, cfg core.RuntimeConfig) (Model, error) {
	p := tea.NewProgram(
		NewModel(opts, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Model{}, nil
	}
	return m, nil
}
