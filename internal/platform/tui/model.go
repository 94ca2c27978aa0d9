package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neurolink/internal/core"
	"github.com/vovakirdan/neurolink/internal/registry"
	"github.com/vovakirdan/neurolink/internal/storage"
)

// CuePlayer plays named audio cues.
type CuePlayer interface {
	Play(cue string)
	Toggle() bool
	Enabled() bool
	Available() bool
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(r storage.Run) (int64, error)
	Best(gameID string) (int, error)
}

// Options are the platform collaborators. Nil fields are skipped.
type Options struct {
	Audio  CuePlayer
	Scores RunRecorder
	Logger *log.Logger
}

// noticeSeconds is how long the sound status notice stays on screen.
const noticeSeconds = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	audio      CuePlayer
	scores     RunRecorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	holdLeft  int // Ticks the left key stays held
	holdRight int // Ticks the right key stays held
	holdFor   int

	lastLevel   int
	runRecorded bool // Whether the current game over was recorded
	notice      string
	noticeTicks int
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		audio:      opts.Audio,
		scores:     opts.Scores,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holdFor:    holdTicks(cfg.TickRate),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the help line taken off the height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); {
	case action == core.ActionNone:
	case action == core.ActionQuit:
		// q only leaves a finished game; ctrl+c always does.
		if msg.String() == "ctrl+c" || m.gameState.Finished() {
			m.quitting = true
			m.logger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
			return m, tea.Quit
		}
	case action == core.ActionMute:
		m.toggleSound()
	case action.Held():
		m.hold(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// hold starts the hold window for a direction and drops the opposite one.
func (m *Model) hold(action core.Action) {
	if action == core.ActionLeft {
		m.holdLeft, m.holdRight = m.holdFor, 0
	} else {
		m.holdRight, m.holdLeft = m.holdFor, 0
	}
}

func (m *Model) toggleSound() {
	if m.audio == nil || !m.audio.Available() {
		m.setNotice("NO AUDIO")
		return
	}
	if m.audio.Toggle() {
		m.setNotice("SOUND ON")
	} else {
		m.setNotice("SOUND OFF")
	}
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeTicks = noticeSeconds * m.config.TickRate
}

// handleResize follows the terminal size, keeping the run when the game
// supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holdLeft > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.holdRight--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.audio != nil {
		for _, cue := range result.Cues {
			m.audio.Play(cue)
		}
	}

	if m.gameState.Level != m.lastLevel {
		if m.lastLevel != 0 {
			m.logger.Info("level reached", "level", m.gameState.Level, "score", m.gameState.Score)
		}
		m.lastLevel = m.gameState.Level
	}

	m.recordRun()

	if m.noticeTicks > 0 {
		m.noticeTicks--
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the run once per game over.
func (m *Model) recordRun() {
	if !m.gameState.GameOver {
		m.runRecorded = false
		return
	}
	if m.runRecorded {
		return
	}
	m.runRecorded = true
	m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level, "high", m.gameState.HighScore)

	if m.scores == nil {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	}
	if _, err := m.scores.RecordRun(run); err != nil {
		m.logger.Warn("cannot record run", "err", err)
		return
	}
	if best, err := m.scores.Best(m.game.ID()); err == nil {
		m.logger.Debug("session best", "score", best)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	if m.noticeTicks > 0 {
		m.screen.DrawTextCentered(m.screen.Height()-2, " "+m.notice+" ", core.ColorNeonCyan)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
