package neurolink

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/neurolink/internal/config"
	"github.com/vovakirdan/neurolink/internal/core"
)

func TestRNGBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		lo := rapid.IntRange(-1000, 1000).Draw(t, "lo")
		hi := lo + rapid.IntRange(0, 1000).Draw(t, "span")
		n := rapid.IntRange(1, 1<<20).Draw(t, "n")

		r := NewRNG(seed)
		for range 50 {
			if v := r.Range(lo, hi); v < lo || v > hi {
				t.Fatalf("Range(%d, %d) = %d", lo, hi, v)
			}
			if v := r.Intn(n); v < 0 || v >= n {
				t.Fatalf("Intn(%d) = %d", n, v)
			}
			if f := r.Float64(); f < 0 || f >= 1 {
				t.Fatalf("Float64() = %v", f)
			}
		}
	})
}

func TestPlayerStaysInPlayAreaProperty(t *testing.T) {
	cfg := config.DefaultNeurolinkConfig()
	rapid.Check(t, func(t *rapid.T) {
		p := NewPlayer(&cfg)
		moves := rapid.SliceOfN(rapid.Bool(), 1, 300).Draw(t, "moves")
		for _, left := range moves {
			if left {
				p.MoveLeft()
			} else {
				p.MoveRight()
			}
			if p.X < 0 || p.X+float64(p.W) > float64(cfg.PlayArea.Width) {
				t.Fatalf("player left the play area at x=%v", p.X)
			}
		}
	})
}

var propertyActions = []core.Action{
	core.ActionNone,
	core.ActionLeft,
	core.ActionRight,
	core.ActionShoot,
	core.ActionPause,
	core.ActionRestart,
	core.ActionNextLevel,
	core.ActionSpawnPowerUp,
}

// TestStepInvariantsProperty drives the game with arbitrary input and checks
// the invariants that must hold after every step.
func TestStepInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultNeurolinkConfig()
		cfg.Enemy.ShootChance = rapid.Float64Range(0, 0.2).Draw(t, "shootChance")
		cfg.Enemy.Rows = rapid.IntRange(1, 5).Draw(t, "rows")

		g := NewWithConfig(cfg)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: rapid.Int64().Draw(t, "seed")})

		steps := rapid.SliceOfN(rapid.SampledFrom(propertyActions), 1, 400).Draw(t, "steps")
		prev := g.State()
		for i, a := range steps {
			in := core.NewInputFrame()
			if a != core.ActionNone {
				in.Set(a)
			}
			res := g.Step(in)
			st := res.State
			s := g.Sim()

			if st.Lives < 0 || st.Lives > cfg.Player.MaxLives {
				t.Fatalf("step %d: lives = %d", i, st.Lives)
			}
			if m := s.ComboMultiplier(); m < 1 || m > cfg.Combo.MaxMultiplier {
				t.Fatalf("step %d: combo multiplier = %d", i, m)
			}
			if st.HighScore < prev.HighScore {
				t.Fatalf("step %d: high score fell from %d to %d", i, prev.HighScore, st.HighScore)
			}
			if st.GameOver && st.Won {
				t.Fatalf("step %d: game over and won at once", i)
			}
			if st.GameOver && (st.Lives != 0 || st.HighScore < st.Score) {
				t.Fatalf("step %d: game over with lives=%d high=%d score=%d", i, st.Lives, st.HighScore, st.Score)
			}

			restarted := a == core.ActionRestart && prev.GameOver && !prev.Paused
			if !restarted && st.Score < prev.Score {
				t.Fatalf("step %d: score fell from %d to %d", i, prev.Score, st.Score)
			}

			bosses := 0
			for _, e := range s.Enemies() {
				if e.IsBoss() {
					bosses++
				}
			}
			if bosses > 1 || (bosses == 1) != (s.Boss() != nil) {
				t.Fatalf("step %d: %d bosses, Boss() = %v", i, bosses, s.Boss())
			}

			if n := countCue(res.Cues, CueGameOver); n > 1 || (n == 1 && prev.GameOver) {
				t.Fatalf("step %d: %d game_over cues (was over: %v)", i, n, prev.GameOver)
			}

			prev = st
		}
	})
}
