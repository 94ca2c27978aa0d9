// Package registry defines the contract between a game and the platform
// that drives it. Games hold pure logic; the platform owns input mapping,
// timing, rendering to the terminal and audio playback.
package registry

import "github.com/vovakirdan/neurolink/internal/core"

// Game is the interface the platform drives.
type Game interface {
	// ID names the game in logs and the session scoreboard.
	ID() string

	// Title returns a human-readable name for display (e.g., "NeuroLink").
	Title() string

	// Reset starts a new session.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Returns the state after the tick and the audio cues it emitted.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can follow terminal resizes without
// restarting.
type Resizer interface {
	Resize(w, h int)
}
