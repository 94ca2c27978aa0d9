package neurolink

import (
	"maps"
	"slices"
)

// Held is the continuous input sampled for one frame.
type Held struct {
	Left  bool
	Right bool
}

// Update advances the simulation by one frame.
// Nothing moves while paused; once the level is decided only the background moves.
func (s *State) Update(held Held) {
	if s.paused {
		return
	}
	s.tick++

	w, h := s.cfg.PlayArea.Width, s.cfg.PlayArea.Height
	for _, star := range s.stars {
		star.Update(s.rng, w, h)
	}

	if s.gameOver || s.gameWon {
		return
	}

	if held.Left {
		s.player.MoveLeft()
	}
	if held.Right {
		s.player.MoveRight()
	}

	s.updateEntities()
	s.moveFormation()
	s.enemyFire()
	s.resolveCollisions()
	s.UpdateCombo()
}

// updateEntities runs the per-kind rules for everything that moves on its own.
func (s *State) updateEntities() {
	h := s.cfg.PlayArea.Height

	s.player.Update()
	for _, p := range s.playerProjectiles {
		p.Update(h)
	}
	for _, p := range s.enemyProjectiles {
		p.Update(h)
	}
	for _, p := range s.powerUps {
		p.Update(h)
	}
	s.playerProjectiles = compactProjectiles(s.playerProjectiles)
	s.enemyProjectiles = compactProjectiles(s.enemyProjectiles)
	s.powerUps = compactPowerUps(s.powerUps)

	s.particles = slices.DeleteFunc(s.particles, func(p *Particle) bool { return !p.Update() })
}

// moveFormation moves the enemy block once every enemyMoveDelay frames.
func (s *State) moveFormation() {
	s.enemyMoveTimer++
	if s.enemyMoveTimer < s.enemyMoveDelay {
		return
	}
	s.enemyMoveTimer = 0

	if s.boss != nil {
		s.moveBoss(s.boss)
		return
	}

	ec := s.cfg.Enemy
	width := float64(s.cfg.PlayArea.Width)
	dir := float64(s.enemyDirection)

	edge := false
	for _, e := range s.enemies {
		if (dir > 0 && e.X+float64(e.W)+ec.Step > width) || (dir < 0 && e.X-ec.Step < 0) {
			edge = true
			break
		}
	}

	if !edge {
		for _, e := range s.enemies {
			e.X += ec.Step * dir
		}
		return
	}

	// Drop instead of stepping sideways; each enemy may get angrier on the way down.
	s.enemyDirection = -s.enemyDirection
	for _, e := range s.enemies {
		e.Y += float64(ec.MoveDown)
		if e.Evolution < ec.MaxEvolution && s.rng.Float64() < ec.EvolutionChance {
			e.Evolution++
		}
	}
}

// moveBoss sweeps the boss sideways and occasionally drops it by half a step.
func (s *State) moveBoss(boss *Enemy) {
	width := float64(s.cfg.PlayArea.Width)
	boss.X += s.cfg.Enemy.Step * s.cfg.Boss.MoveSpeedMultiplier * float64(s.enemyDirection)

	if (s.enemyDirection > 0 && boss.X+float64(boss.W) > width) || (s.enemyDirection < 0 && boss.X < 0) {
		s.enemyDirection = -s.enemyDirection
	}

	if s.rng.Float64() < s.cfg.Boss.MoveDownChance {
		boss.Y += float64(s.cfg.Enemy.MoveDown / 2)
	}
}

// enemyFire lets the formation or the boss shoot.
func (s *State) enemyFire() {
	if len(s.enemies) == 0 {
		return
	}

	if boss := s.boss; boss != nil {
		if s.rng.Float64() >= s.enemyShootChance*s.cfg.Boss.ShootChanceMultiplier {
			return
		}
		for _, off := range s.cfg.Boss.SpreadOffsets {
			s.enemyProjectiles = append(s.enemyProjectiles,
				newEnemyProjectile(s.cfg, boss.CenterX()+float64(off), boss.Bottom()))
		}
		return
	}

	if s.rng.Float64() >= s.enemyShootChance {
		return
	}

	shooter := s.pickShooter()
	if shooter == nil {
		return
	}
	s.enemyProjectiles = append(s.enemyProjectiles,
		newEnemyProjectile(s.cfg, shooter.CenterX(), shooter.Bottom()))
}

// pickShooter groups enemies into column buckets, keeps the lowest enemy of
// each bucket and picks one bucket uniformly.
func (s *State) pickShooter() *Enemy {
	spacing := float64(s.cfg.Enemy.Spacing)
	columns := make(map[int]*Enemy)
	for _, e := range s.enemies {
		col := int(e.CenterX() / spacing)
		if cur, ok := columns[col]; !ok || e.Bottom() > cur.Bottom() {
			columns[col] = e
		}
	}
	if len(columns) == 0 {
		return nil
	}

	// Map order is random; sort so seeded runs repeat.
	keys := slices.Sorted(maps.Keys(columns))
	return columns[keys[s.rng.Intn(len(keys))]]
}
