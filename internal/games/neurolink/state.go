package neurolink

import (
	"math"
	"slices"

	"github.com/vovakirdan/neurolink/internal/config"
)

// State owns every entity and progression counter of a session.
// It is the sole mutator of its entities; nothing outside holds references into it.
type State struct {
	cfg *config.NeurolinkConfig
	rng *RNG

	score     int
	highScore int // Survives Reset
	level     int
	tick      uint64

	comboCount      int
	comboTimer      int
	comboMultiplier int

	gameOver bool
	gameWon  bool
	paused   bool

	enemyDirection   int // -1 or +1
	enemyMoveTimer   int
	enemyMoveDelay   int
	enemyShootChance float64
	bossMode         bool

	player            *Player
	enemies           []*Enemy
	boss              *Enemy // Also present in enemies; nil when no boss is alive
	playerProjectiles []*Projectile
	enemyProjectiles  []*Projectile
	powerUps          []*PowerUp
	particles         []*Particle
	stars             []*Star

	cues []Cue
}

// NewState creates a state at level 1.
func NewState(cfg *config.NeurolinkConfig, rng *RNG) *State {
	s := &State{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset reinitializes everything except the high score.
func (s *State) Reset() {
	s.score = 0
	s.level = 1
	s.tick = 0

	s.comboCount = 0
	s.comboTimer = 0
	s.comboMultiplier = 1

	s.gameOver = false
	s.gameWon = false
	s.paused = false

	s.enemyDirection = 1
	s.enemyMoveTimer = 0
	s.enemyMoveDelay = s.cfg.MoveDelayForLevel(1)
	s.enemyShootChance = s.cfg.ShootChanceForLevel(1)

	s.player = NewPlayer(s.cfg)
	s.playerProjectiles = s.playerProjectiles[:0]
	s.enemyProjectiles = s.enemyProjectiles[:0]
	s.powerUps = s.powerUps[:0]
	s.particles = s.particles[:0]
	s.cues = s.cues[:0]

	s.createStars()
	s.createFormation()
}

// AdvanceLevel moves to the next level with tighter enemy timing.
func (s *State) AdvanceLevel() {
	s.level++
	s.enemyMoveDelay = s.cfg.MoveDelayForLevel(s.level)
	s.enemyShootChance = s.cfg.ShootChanceForLevel(s.level)
	s.gameWon = false

	s.playerProjectiles = s.playerProjectiles[:0]
	s.enemyProjectiles = s.enemyProjectiles[:0]
	s.powerUps = s.powerUps[:0]

	s.createFormation()
	s.emit(CueLevelUp)
}

// UpdateCombo counts the combo window down and resets the combo when it closes.
func (s *State) UpdateCombo() {
	if s.comboTimer <= 0 {
		return
	}
	s.comboTimer--
	if s.comboTimer == 0 {
		s.comboCount = 0
		s.comboMultiplier = 1
	}
}

// RegisterHit extends the combo by one hit.
func (s *State) RegisterHit() {
	cc := s.cfg.Combo
	s.comboCount++
	s.comboTimer = cc.Duration
	s.comboMultiplier = min(cc.MaxMultiplier, 1+s.comboCount/cc.HitsPerStep)
}

// TogglePause flips the pause flag. It has no effect once the level is decided.
func (s *State) TogglePause() {
	if s.gameOver || s.gameWon {
		return
	}
	s.paused = !s.paused
}

// Shoot fires the player's weapon.
func (s *State) Shoot() {
	if s.gameOver || s.gameWon {
		return
	}
	s.playerProjectiles = append(s.playerProjectiles, s.player.Shoot()...)
	s.emit(CueShoot)
}

// SpawnPowerUp drops a random power-up near the top of the play area.
func (s *State) SpawnPowerUp() {
	w := s.cfg.PlayArea.Width
	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	x := s.rng.Range(50, w-50)
	s.powerUps = append(s.powerUps, newPowerUp(s.cfg, kind, float64(x), float64(s.cfg.PowerUp.DebugY)))
}

// Boss returns the boss, or nil when none is alive.
func (s *State) Boss() *Enemy {
	return s.boss
}

// Player returns the player.
func (s *State) Player() *Player {
	return s.player
}

// Enemies returns the live enemies, boss included.
func (s *State) Enemies() []*Enemy {
	return s.enemies
}

// Read-only accessors used by the renderer, the platform and tests.

func (s *State) Score() int             { return s.score }
func (s *State) HighScore() int         { return s.highScore }
func (s *State) Level() int             { return s.level }
func (s *State) Lives() int             { return s.player.Lives }
func (s *State) ComboCount() int        { return s.comboCount }
func (s *State) ComboTimer() int        { return s.comboTimer }
func (s *State) ComboMultiplier() int   { return s.comboMultiplier }
func (s *State) GameOver() bool         { return s.gameOver }
func (s *State) Won() bool              { return s.gameWon }
func (s *State) Paused() bool           { return s.paused }
func (s *State) BossMode() bool         { return s.bossMode }
func (s *State) MoveDelay() int         { return s.enemyMoveDelay }
func (s *State) ShootChance() float64   { return s.enemyShootChance }
func (s *State) Tick() uint64           { return s.tick }
func (s *State) PowerUps() []*PowerUp   { return s.powerUps }
func (s *State) Particles() []*Particle { return s.particles }

// createStars scatters the background across the whole play area.
func (s *State) createStars() {
	sc := s.cfg.Stars
	s.stars = s.stars[:0]
	for range sc.Count {
		s.stars = append(s.stars, &Star{
			X:     float64(s.rng.Intn(s.cfg.PlayArea.Width + 1)),
			Y:     float64(s.rng.Intn(s.cfg.PlayArea.Height + 1)),
			Size:  s.rng.Range(sc.MinSize, sc.MaxSize),
			Speed: s.rng.Uniform(sc.MinSpeed, sc.MaxSpeed),
		})
	}
}

// createFormation replaces the enemies with the layout for the current level:
// a single boss on boss levels, otherwise the full grid.
func (s *State) createFormation() {
	ec := s.cfg.Enemy
	s.enemies = s.enemies[:0]
	s.boss = nil

	if s.cfg.IsBossLevel(s.level) {
		s.bossMode = true
		health := s.cfg.BossHealthForLevel(s.level)
		w := ec.Width * s.cfg.Boss.Scale
		h := ec.Height * s.cfg.Boss.Scale
		s.boss = &Enemy{
			Body: Body{X: float64(s.cfg.PlayArea.Width/2 - w/2), Y: float64(ec.Top), W: w, H: h},
			Boss: &BossInfo{Health: health, MaxHealth: health},
		}
		s.enemies = append(s.enemies, s.boss)
		return
	}

	s.bossMode = false
	startX := (s.cfg.PlayArea.Width - ec.Cols*ec.Spacing) / 2
	for row := range ec.Rows {
		for col := range ec.Cols {
			s.enemies = append(s.enemies, &Enemy{
				Body: Body{
					X: float64(startX + col*ec.Spacing),
					Y: float64(ec.Top + row*ec.Spacing),
					W: ec.Width,
					H: ec.Height,
				},
			})
		}
	}
}

// burst spawns count particles flying out of (x, y) in random directions.
func (s *State) burst(x, y float64, count int, kind ParticleKind) {
	pc := s.cfg.Particles
	for range count {
		angle := s.rng.Uniform(0, 2*math.Pi)
		speed := s.rng.Uniform(pc.MinSpeed, pc.MaxSpeed)
		s.particles = append(s.particles, &Particle{
			X:        x,
			Y:        y,
			DX:       math.Cos(angle) * speed,
			DY:       math.Sin(angle) * speed,
			Size:     s.rng.Range(pc.MinSize, pc.MaxSize),
			Lifetime: s.rng.Range(pc.MinLifetime, pc.MaxLifetime),
			Kind:     kind,
		})
	}
}

// rollPowerUp drops a random power-up at (x, y) with the configured chance.
func (s *State) rollPowerUp(x, y float64) {
	if s.rng.Float64() >= s.cfg.PowerUp.DropChance {
		return
	}
	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	s.powerUps = append(s.powerUps, newPowerUp(s.cfg, kind, x, y))
}

// compactEnemies drops dead enemies and clears the boss pointer if it died.
func (s *State) compactEnemies() {
	if s.boss != nil && s.boss.dead {
		s.boss = nil
	}
	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return e.dead })
}

func compactProjectiles(ps []*Projectile) []*Projectile {
	return slices.DeleteFunc(ps, func(p *Projectile) bool { return p.dead })
}

func compactPowerUps(ps []*PowerUp) []*PowerUp {
	return slices.DeleteFunc(ps, func(p *PowerUp) bool { return p.dead })
}
