package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score     int
	HighScore int
	Level     int
	Lives     int
	GameOver  bool // Lives exhausted
	Won       bool // Current level cleared, waiting for next-level input
	Paused    bool
}

// Finished reports whether the game is waiting on a post-game decision.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Cues are the named audio triggers emitted during this tick, in order.
	Cues []string
}
