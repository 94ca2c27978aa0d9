package neurolink

// resolveCollisions runs every collision category in order.
// Each category sees the state left by the previous one.
func (s *State) resolveCollisions() {
	s.resolvePlayerShots()
	s.resolveEnemyShots()
	s.resolveEnemyContact()
	if !s.gameOver {
		s.resolvePowerUps()
	}

	if !s.gameOver && len(s.enemies) == 0 {
		s.gameWon = true
		s.emit(CueLevelUp)
	}
}

// resolvePlayerShots applies one hit per overlapping projectile.
func (s *State) resolvePlayerShots() {
	for _, p := range s.playerProjectiles {
		pr := p.Rect()
		for _, e := range s.enemies {
			if e.dead || !pr.Intersects(e.Rect()) {
				continue
			}
			p.dead = true
			s.hitEnemy(e, p)
			break
		}
	}
	s.playerProjectiles = compactProjectiles(s.playerProjectiles)
	s.compactEnemies()
}

// hitEnemy scores one player hit on an enemy.
func (s *State) hitEnemy(e *Enemy, shot *Projectile) {
	sc := s.cfg.Scoring
	pc := s.cfg.Particles
	destroyed := e.Hit(s.cfg.Enemy.MaxEvolution)

	switch {
	case e.IsBoss():
		s.score += sc.BossHit
		s.burst(shot.CenterX(), shot.CenterY(), pc.CountBossHit, ParticleDebris)
		s.emit(CueHit)
		if destroyed {
			s.destroyBoss(e)
			s.burst(e.CenterX(), e.CenterY(), pc.CountExplosion, ParticleExplosion)
			s.emit(CueExplosion)
		}
	case destroyed:
		s.score += sc.Destroy * s.comboMultiplier
		s.burst(e.CenterX(), e.CenterY(), pc.CountNormal, ParticleSpark)
		s.emit(CueHit)
		e.dead = true
		s.rollPowerUp(e.CenterX(), e.CenterY())
	default:
		s.score += sc.Hit * s.comboMultiplier
		s.emit(CueHit)
	}

	s.RegisterHit()
}

// destroyBoss removes the boss and awards the level bonus.
func (s *State) destroyBoss(e *Enemy) {
	if e.dead {
		return
	}
	e.dead = true
	s.score += s.cfg.Scoring.BossDestroyMultiplier * s.level
}

// resolveEnemyShots consumes every enemy shot touching the player and
// applies at most one hit for the whole volley.
func (s *State) resolveEnemyShots() {
	if s.player.Invincible {
		return
	}
	pr := s.player.Rect()
	touched := false
	for _, p := range s.enemyProjectiles {
		if pr.Intersects(p.Rect()) {
			p.dead = true
			touched = true
		}
	}
	if !touched {
		return
	}
	s.enemyProjectiles = compactProjectiles(s.enemyProjectiles)
	s.damagePlayer()
}

// resolveEnemyContact treats the first enemy that reached the player's row
// or touches the player as a hit. Later enemies wait for the next frame.
func (s *State) resolveEnemyContact() {
	pr := s.player.Rect()
	for _, e := range s.enemies {
		er := e.Rect()
		if er.Bottom() < pr.Y && !er.Intersects(pr) {
			continue
		}
		if s.damagePlayer() {
			e.dead = true
			s.compactEnemies()
		}
		return
	}
}

// damagePlayer applies one hit to the player with the shared feedback and
// game-over bookkeeping. It reports whether the hit had any effect.
func (s *State) damagePlayer() bool {
	if s.gameOver {
		return false
	}
	if s.player.Hit() == HitNoEffect {
		return false
	}

	s.burst(s.player.CenterX(), s.player.CenterY(), s.cfg.Particles.CountNormal, ParticleSpark)
	if s.player.Lives <= 0 {
		s.endGame()
	} else {
		s.emit(CueHit)
	}
	return true
}

// endGame sets game over and records the high score. Later calls are no-ops.
func (s *State) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.highScore = max(s.highScore, s.score)
	s.emit(CueGameOver)
}

// resolvePowerUps applies every power-up the player touches.
func (s *State) resolvePowerUps() {
	pr := s.player.Rect()
	for _, p := range s.powerUps {
		if !pr.Intersects(p.Rect()) {
			continue
		}
		p.dead = true
		s.applyPowerUp(p.Kind)
		s.emit(CuePowerUp)
	}
	s.powerUps = compactPowerUps(s.powerUps)
}

// applyPowerUp applies a power-up's effect to the player or the field.
func (s *State) applyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		s.player.ActivateShield()
	case PowerUpDoubleShot:
		s.player.ActivateDoubleShot()
	case PowerUpLife:
		s.player.AddLife()
	case PowerUpBomb:
		s.detonateBomb()
	}
}

// detonateBomb clears the formation and damages the boss.
func (s *State) detonateBomb() {
	bc := s.cfg.Bomb
	for _, e := range s.enemies {
		if e.dead {
			continue
		}
		if e.IsBoss() {
			for range bc.BossDamage {
				if e.Hit(s.cfg.Enemy.MaxEvolution) {
					s.destroyBoss(e)
					break
				}
			}
			continue
		}
		e.dead = true
		s.score += s.cfg.Scoring.BombDestroy
	}
	s.compactEnemies()

	w, h := s.cfg.PlayArea.Width, s.cfg.PlayArea.Height
	for range bc.ScatterBursts {
		x := float64(s.rng.Intn(w + 1))
		y := float64(s.rng.Intn(h + 1))
		s.burst(x, y, s.cfg.Particles.CountNormal, ParticleExplosion)
	}
	s.emit(CueExplosion)
}
