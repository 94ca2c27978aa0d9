// Package neurolink implements the NeuroLink shooter: a vessel defending
// against a descending formation of data fragments and periodic firewall bosses.
package neurolink

import (
	"github.com/vovakirdan/neurolink/internal/config"
	"github.com/vovakirdan/neurolink/internal/core"
	"github.com/vovakirdan/neurolink/internal/registry"
)

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Resizer = (*Game)(nil)
)

// ID names the game in logs and the session scoreboard.
const ID = "neurolink"

// Game adapts the simulation to the platform's Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     *config.NeurolinkConfig
	state   *State

	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	welcome bool // Title screen up; the first key press dismisses it
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.NeurolinkConfig) *Game {
	return &Game{cfg: &cfg, minScreenW: 40, minScreenH: 16}
}

// ShowWelcome puts the title screen up. The simulation holds still until the
// next key press, which only dismisses the screen.
func (g *Game) ShowWelcome() {
	g.welcome = true
}

// Welcome reports whether the title screen is showing.
func (g *Game) Welcome() bool {
	return g.welcome
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "NeuroLink"
}

// Reset starts a new session. The high score of a previous session on this
// instance is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	highScore := 0
	if g.state != nil {
		highScore = g.state.highScore
	}
	g.state = NewState(g.cfg, NewRNG(runtime.Seed))
	g.state.highScore = highScore

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the terminal size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Step applies this tick's key presses, then advances the simulation one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.state

	// Too small to see anything: hold the game still.
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.welcome {
		if !in.Empty() {
			g.welcome = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	if !s.paused {
		if in.Has(core.ActionShoot) {
			s.Shoot()
		}
		if in.Has(core.ActionRestart) && s.gameOver {
			s.Reset()
		}
		if in.Has(core.ActionNextLevel) && s.gameWon {
			s.AdvanceLevel()
		}
		if in.Has(core.ActionSpawnPowerUp) {
			s.SpawnPowerUp()
		}
	}

	s.Update(Held{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	})

	return core.StepResult{
		State: g.State(),
		Cues:  s.DrainCues(),
	}
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	s := g.state
	if s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		Lives:     s.player.Lives,
		GameOver:  s.gameOver,
		Won:       s.gameWon,
		Paused:    s.paused,
	}
}

// Sim exposes the simulation state for read-only use by tools and tests.
func (g *Game) Sim() *State {
	return g.state
}

// Config returns the tuning in use.
func (g *Game) Config() *config.NeurolinkConfig {
	return g.cfg
}
