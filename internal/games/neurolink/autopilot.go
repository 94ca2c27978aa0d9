package neurolink

import (
	"math"

	"github.com/vovakirdan/neurolink/internal/core"
)

// Autopilot plays the game for headless runs. It steers under the lowest
// enemy, sidesteps incoming shots and fires on a fixed cadence.
type Autopilot struct {
	FireEvery int // Frames between shots
	tick      int
}

// NewAutopilot creates an autopilot that fires every fireEvery frames.
func NewAutopilot(fireEvery int) *Autopilot {
	return &Autopilot{FireEvery: max(1, fireEvery)}
}

// Next returns the input for the coming frame.
func (a *Autopilot) Next(s *State) core.InputFrame {
	in := core.NewInputFrame()
	a.tick++

	if s.gameWon {
		in.Set(core.ActionNextLevel)
		return in
	}
	if s.gameOver || s.paused {
		return in
	}

	px := s.player.CenterX()
	target := px
	if threat, ok := a.incoming(s); ok {
		// Step away from the shot, toward the roomier side.
		if threat < px || px < float64(s.player.W) {
			target = px + float64(s.player.W)
		} else {
			target = px - float64(s.player.W)
		}
	} else if e := lowestEnemy(s); e != nil {
		target = e.CenterX()
	}

	step := float64(s.cfg.Player.Speed)
	switch {
	case target < px-step/2:
		in.Set(core.ActionLeft)
	case target > px+step/2:
		in.Set(core.ActionRight)
	}

	if a.tick%a.FireEvery == 0 {
		in.Set(core.ActionShoot)
	}
	return in
}

// incoming returns the x of the nearest enemy shot about to land on the player.
func (a *Autopilot) incoming(s *State) (float64, bool) {
	pr := s.player.Rect()
	best := math.Inf(1)
	x := 0.0
	for _, p := range s.enemyProjectiles {
		r := p.Rect()
		if r.Right() < pr.X-4 || r.X > pr.Right()+4 {
			continue
		}
		dist := float64(pr.Y) - p.Bottom()
		if dist < 0 || dist > 120 || dist >= best {
			continue
		}
		best = dist
		x = p.CenterX()
	}
	return x, !math.IsInf(best, 1)
}

// lowestEnemy returns the enemy furthest down the screen.
func lowestEnemy(s *State) *Enemy {
	var lowest *Enemy
	for _, e := range s.enemies {
		if lowest == nil || e.Bottom() > lowest.Bottom() {
			lowest = e
		}
	}
	return lowest
}
