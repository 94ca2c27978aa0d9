package neurolink

import "testing"

// shotAt returns a player projectile that overlaps e after one frame of travel.
func shotAt(s *State, e *Enemy) *Projectile {
	p := newPlayerProjectile(s.cfg, e.CenterX(), e.Bottom())
	p.Y += s.cfg.Projectile.Speed
	return p
}

// volleyOnPlayer returns n enemy shots that overlap the player after one frame.
func volleyOnPlayer(s *State, n int) []*Projectile {
	shots := make([]*Projectile, 0, n)
	for i := range n {
		p := newEnemyProjectile(s.cfg, s.player.CenterX()+float64(i*5-5), s.player.Y)
		shots = append(shots, p)
	}
	return shots
}

func TestDestroyEvolvedEnemy(t *testing.T) {
	tests := []struct {
		name       string
		comboCount int
		multiplier int
	}{
		{"no combo", 0, 1},
		{"combo x2", 3, 2},
		{"combo x4", 9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			s.comboCount = tt.comboCount
			s.comboMultiplier = tt.multiplier
			s.comboTimer = 100

			target := s.enemies[0]
			target.Evolution = s.cfg.Enemy.MaxEvolution
			s.playerProjectiles = append(s.playerProjectiles, shotAt(s, target))

			s.Update(Held{})

			want := s.cfg.Scoring.Destroy * tt.multiplier
			if s.Score() != want {
				t.Errorf("score = %d, want %d", s.Score(), want)
			}
			if len(s.Enemies()) != 49 {
				t.Errorf("enemies = %d, want 49", len(s.Enemies()))
			}
			if len(s.playerProjectiles) != 0 {
				t.Error("projectile should be consumed")
			}
			if s.ComboCount() != tt.comboCount+1 {
				t.Errorf("combo count = %d, want %d", s.ComboCount(), tt.comboCount+1)
			}
			if len(s.Particles()) != s.cfg.Particles.CountNormal {
				t.Errorf("particles = %d, want %d", len(s.Particles()), s.cfg.Particles.CountNormal)
			}
			if countCue(s.DrainCues(), CueHit) != 1 {
				t.Error("want exactly one hit cue")
			}
		})
	}
}

func TestHitEvolvesEnemy(t *testing.T) {
	s := newTestState(t)
	target := s.enemies[0]
	s.playerProjectiles = append(s.playerProjectiles, shotAt(s, target))

	s.Update(Held{})

	if target.Evolution != 1 {
		t.Errorf("Evolution = %d, want 1", target.Evolution)
	}
	if len(s.Enemies()) != 50 {
		t.Errorf("enemies = %d, want 50", len(s.Enemies()))
	}
	if s.Score() != s.cfg.Scoring.Hit {
		t.Errorf("score = %d, want %d", s.Score(), s.cfg.Scoring.Hit)
	}
}

func TestOneHitPerProjectile(t *testing.T) {
	s := newTestState(t)
	a, b := s.enemies[0], s.enemies[1]
	// Stack b on a so one shot overlaps both.
	b.X, b.Y = a.X, a.Y
	s.playerProjectiles = append(s.playerProjectiles, shotAt(s, a))

	s.Update(Held{})

	if a.Evolution+b.Evolution != 1 {
		t.Errorf("evolutions = %d+%d, want exactly one hit", a.Evolution, b.Evolution)
	}
}

func TestBossDestroyedOnce(t *testing.T) {
	s := newTestState(t)
	for range 4 {
		s.AdvanceLevel()
	}
	s.DrainCues()

	boss := s.Boss()
	boss.Boss.Health = 20
	bc := s.cfg.Scoring

	for i := range 20 {
		if s.Boss() == nil {
			t.Fatalf("boss gone after %d hits", i)
		}
		s.playerProjectiles = append(s.playerProjectiles, newPlayerProjectile(s.cfg, boss.CenterX(), boss.Bottom()))
		s.resolvePlayerShots()
	}

	if boss.Boss.Health != 0 {
		t.Errorf("health = %d, want 0", boss.Boss.Health)
	}
	if s.Boss() != nil || len(s.Enemies()) != 0 {
		t.Error("boss should be removed")
	}

	want := 20*bc.BossHit + bc.BossDestroyMultiplier*5
	if s.Score() != want {
		t.Errorf("score = %d, want %d", s.Score(), want)
	}

	cues := s.DrainCues()
	if n := countCue(cues, CueExplosion); n != 1 {
		t.Errorf("explosion cues = %d, want 1", n)
	}
	if n := countCue(cues, CueHit); n != 20 {
		t.Errorf("hit cues = %d, want 20", n)
	}

	// A stray shot after destruction scores nothing.
	s.playerProjectiles = append(s.playerProjectiles, newPlayerProjectile(s.cfg, boss.CenterX(), boss.Bottom()))
	s.resolvePlayerShots()
	if s.Score() != want {
		t.Errorf("score changed after boss destroyed: %d", s.Score())
	}
}

func TestVolleyCostsOneLife(t *testing.T) {
	s := newTestState(t)
	s.enemyProjectiles = append(s.enemyProjectiles, volleyOnPlayer(s, 3)...)

	s.Update(Held{})

	if s.Lives() != 2 {
		t.Errorf("Lives = %d, want 2", s.Lives())
	}
	if !s.player.Invincible {
		t.Error("player should be invincible after a hit")
	}
	if len(s.enemyProjectiles) != 0 {
		t.Errorf("overlapping shots should be consumed, %d left", len(s.enemyProjectiles))
	}
	if n := countCue(s.DrainCues(), CueHit); n != 1 {
		t.Errorf("hit cues = %d, want 1", n)
	}

	// Invincible: the next volley passes through.
	s.enemyProjectiles = append(s.enemyProjectiles, volleyOnPlayer(s, 2)...)
	s.Update(Held{})
	if s.Lives() != 2 {
		t.Errorf("Lives = %d while invincible, want 2", s.Lives())
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	s := newTestState(t)
	s.player.ActivateShield()
	s.enemyProjectiles = append(s.enemyProjectiles, volleyOnPlayer(s, 2)...)

	s.Update(Held{})

	if s.Lives() != 3 {
		t.Errorf("Lives = %d, want 3", s.Lives())
	}
	if s.player.Shield {
		t.Error("shield should be consumed")
	}
	if s.player.Invincible {
		t.Error("absorbed hit should not grant invincibility")
	}
	if countCue(s.DrainCues(), CueHit) != 1 {
		t.Error("absorbed hit should still emit a hit cue")
	}
}

func TestGameOverOnce(t *testing.T) {
	s := newTestState(t)
	s.player.Lives = 1
	s.score = 250
	s.enemyProjectiles = append(s.enemyProjectiles, volleyOnPlayer(s, 3)...)

	s.Update(Held{})

	if !s.GameOver() {
		t.Fatal("expected game over")
	}
	if s.Lives() != 0 {
		t.Errorf("Lives = %d, want 0", s.Lives())
	}
	if s.HighScore() != 250 {
		t.Errorf("HighScore = %d, want 250", s.HighScore())
	}

	// Further hits cannot push lives below zero or end the game twice.
	if s.damagePlayer() {
		t.Error("damagePlayer after game over should have no effect")
	}
	s.enemies[0].Y = s.player.Y
	s.resolveEnemyContact()
	if s.Lives() != 0 {
		t.Errorf("Lives = %d, want 0", s.Lives())
	}

	cues := s.DrainCues()
	if n := countCue(cues, CueGameOver); n != 1 {
		t.Errorf("game_over cues = %d, want 1", n)
	}
	if n := countCue(cues, CueHit); n != 0 {
		t.Errorf("hit cues = %d, want 0 on the final life", n)
	}

	// Frozen: nothing but the background moves.
	tick := s.Tick()
	timer := s.enemyMoveTimer
	s.Update(Held{Left: true})
	if s.Tick() != tick+1 || s.enemyMoveTimer != timer {
		t.Error("only the background should update after game over")
	}
}

func TestEnemyContact(t *testing.T) {
	s := newTestState(t)
	first, second := s.enemies[0], s.enemies[1]
	first.X, first.Y = s.player.X, s.player.Y
	second.X, second.Y = s.player.X, s.player.Y

	s.resolveEnemyContact()

	if s.Lives() != 2 {
		t.Errorf("Lives = %d, want 2", s.Lives())
	}
	if len(s.Enemies()) != 49 {
		t.Errorf("enemies = %d, want 49 (first contact only)", len(s.Enemies()))
	}
	if !first.dead || second.dead {
		t.Error("only the first touching enemy should be removed")
	}
}

func TestEnemyReachesPlayerRow(t *testing.T) {
	s := newTestState(t)
	// Far from the player horizontally but level with it.
	e := s.enemies[0]
	e.X = 0
	e.Y = s.player.Y - float64(e.H)

	s.resolveEnemyContact()

	if s.Lives() != 2 {
		t.Errorf("Lives = %d, want 2", s.Lives())
	}
	if len(s.Enemies()) != 49 {
		t.Errorf("enemies = %d, want 49", len(s.Enemies()))
	}
}

func TestLifePowerUpCapped(t *testing.T) {
	s := newTestState(t)
	s.player.Lives = s.cfg.Player.MaxLives
	s.powerUps = append(s.powerUps, newPowerUp(s.cfg, PowerUpLife, s.player.CenterX(), s.player.CenterY()))

	s.Update(Held{})

	if s.Lives() != s.cfg.Player.MaxLives {
		t.Errorf("Lives = %d, want %d", s.Lives(), s.cfg.Player.MaxLives)
	}
	if len(s.PowerUps()) != 0 {
		t.Error("power-up should be consumed")
	}
	if countCue(s.DrainCues(), CuePowerUp) != 1 {
		t.Error("want one powerup cue")
	}
}

func TestTimedPowerUps(t *testing.T) {
	s := newTestState(t)
	s.applyPowerUp(PowerUpShield)
	s.applyPowerUp(PowerUpDoubleShot)

	if !s.player.Shield || s.player.ShieldTimer != s.cfg.Player.ShieldDuration {
		t.Errorf("shield = %v/%d", s.player.Shield, s.player.ShieldTimer)
	}
	if !s.player.DoubleShot || s.player.DoubleShotTimer != s.cfg.Projectile.DoubleShotDuration {
		t.Errorf("double shot = %v/%d", s.player.DoubleShot, s.player.DoubleShotTimer)
	}

	// Picking it up again refills the timer.
	s.player.ShieldTimer = 3
	s.applyPowerUp(PowerUpShield)
	if s.player.ShieldTimer != s.cfg.Player.ShieldDuration {
		t.Errorf("ShieldTimer = %d, want refilled", s.player.ShieldTimer)
	}
}

func TestBombClearsFormation(t *testing.T) {
	s := newTestState(t)
	s.enemies = s.enemies[:3]
	s.powerUps = append(s.powerUps, newPowerUp(s.cfg, PowerUpBomb, s.player.CenterX(), s.player.CenterY()))

	s.Update(Held{})

	if len(s.Enemies()) != 0 {
		t.Errorf("enemies = %d, want 0", len(s.Enemies()))
	}
	if s.Score() != 3*s.cfg.Scoring.BombDestroy {
		t.Errorf("score = %d, want %d", s.Score(), 3*s.cfg.Scoring.BombDestroy)
	}
	if !s.Won() {
		t.Error("clearing the field should win the level")
	}

	wantParticles := s.cfg.Bomb.ScatterBursts * s.cfg.Particles.CountNormal
	if len(s.Particles()) != wantParticles {
		t.Errorf("particles = %d, want %d", len(s.Particles()), wantParticles)
	}

	cues := s.DrainCues()
	want := []string{"explosion", "powerup", "level_up"}
	if len(cues) < len(want) {
		t.Fatalf("cues = %v, want suffix %v", cues, want)
	}
	tail := cues[len(cues)-len(want):]
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("cues = %v, want suffix %v", cues, want)
		}
	}
}

func TestBombDamagesBoss(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		destroyed bool
	}{
		{"survives", 25, false},
		{"destroyed", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			for range 4 {
				s.AdvanceLevel()
			}
			boss := s.Boss()
			boss.Boss.Health = tt.health

			s.detonateBomb()

			if tt.destroyed {
				if s.Boss() != nil {
					t.Fatal("boss should be destroyed")
				}
				if s.Score() != s.cfg.Scoring.BossDestroyMultiplier*5 {
					t.Errorf("score = %d, want %d", s.Score(), s.cfg.Scoring.BossDestroyMultiplier*5)
				}
				return
			}
			if boss.Boss.Health != tt.health-s.cfg.Bomb.BossDamage {
				t.Errorf("health = %d, want %d", boss.Boss.Health, tt.health-s.cfg.Bomb.BossDamage)
			}
			if s.Score() != 0 {
				t.Errorf("score = %d, want 0", s.Score())
			}
		})
	}
}

func TestWinStopsProcessing(t *testing.T) {
	s := newTestState(t)
	last := s.enemies[0]
	last.Evolution = s.cfg.Enemy.MaxEvolution
	s.enemies = s.enemies[:1]
	s.playerProjectiles = append(s.playerProjectiles, shotAt(s, last))

	s.Update(Held{})

	if !s.Won() {
		t.Fatal("destroying the last enemy should win the level")
	}
	if countCue(s.DrainCues(), CueLevelUp) != 1 {
		t.Error("want one level_up cue")
	}

	// Entities other than the background stay frozen.
	s.Shoot() // ignored once won
	playerX := s.player.X
	timer := s.enemyMoveTimer
	s.Update(Held{Right: true})
	if s.player.X != playerX || s.enemyMoveTimer != timer || len(s.playerProjectiles) != 0 {
		t.Error("simulation should be frozen after winning")
	}
	if countCue(s.DrainCues(), CueLevelUp) != 0 {
		t.Error("win should only be signalled once")
	}
}

func TestNoPickupOnFatalFrame(t *testing.T) {
	s := newTestState(t)
	s.enemyShootChance = 0
	s.player.Lives = 1
	s.enemyProjectiles = append(s.enemyProjectiles, volleyOnPlayer(s, 1)...)
	s.powerUps = append(s.powerUps, newPowerUp(s.cfg, PowerUpLife, s.player.CenterX(), s.player.CenterY()))

	s.Update(Held{})

	if !s.GameOver() || s.Lives() != 0 {
		t.Fatalf("GameOver = %v, Lives = %d; want game over with 0 lives", s.GameOver(), s.Lives())
	}
	if countCue(s.DrainCues(), CuePowerUp) != 0 {
		t.Error("power-up collected after the game ended")
	}
}
