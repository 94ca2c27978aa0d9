package neurolink

import "math"

// EntityKind tags an EntityView so the renderer can pick an appearance.
type EntityKind int

const (
	KindStar EntityKind = iota
	KindPowerUp
	KindEnemy
	KindBoss
	KindPlayerShot
	KindEnemyShot
	KindPlayer
	KindParticle
)

// EntityView is a read-only description of one live entity.
// Positions are the top-left corner in play-area units.
type EntityView struct {
	Kind EntityKind
	X, Y float64
	W, H int

	Evolution  int     // Enemies
	Health     float64 // Boss health fraction in [0, 1]
	Shield     bool    // Player
	DoubleShot bool    // Player
	Invincible bool    // Player
	PowerUp    PowerUpKind
	Particle   ParticleKind
}

// Entities lists every live entity, background first, in drawing order.
func (s *State) Entities() []EntityView {
	n := len(s.stars) + len(s.powerUps) + len(s.enemies) + len(s.playerProjectiles) +
		len(s.enemyProjectiles) + len(s.particles) + 1
	views := make([]EntityView, 0, n)

	for _, st := range s.stars {
		views = append(views, EntityView{Kind: KindStar, X: st.X, Y: st.Y, W: st.Size, H: st.Size})
	}
	for _, p := range s.powerUps {
		views = append(views, EntityView{Kind: KindPowerUp, X: p.X, Y: p.Y, W: p.W, H: p.H, PowerUp: p.Kind})
	}
	for _, e := range s.enemies {
		v := EntityView{Kind: KindEnemy, X: e.X, Y: e.Y, W: e.W, H: e.H, Evolution: e.Evolution, Health: 1}
		if e.IsBoss() {
			v.Kind = KindBoss
			v.Health = e.HealthFraction()
		}
		views = append(views, v)
	}
	for _, p := range s.playerProjectiles {
		views = append(views, EntityView{Kind: KindPlayerShot, X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	for _, p := range s.enemyProjectiles {
		views = append(views, EntityView{Kind: KindEnemyShot, X: p.X, Y: p.Y, W: p.W, H: p.H})
	}

	pl := s.player
	views = append(views, EntityView{
		Kind:       KindPlayer,
		X:          pl.X,
		Y:          pl.Y,
		W:          pl.W,
		H:          pl.H,
		Shield:     pl.Shield,
		DoubleShot: pl.DoubleShot,
		Invincible: pl.Invincible,
	})

	for _, p := range s.particles {
		views = append(views, EntityView{
			Kind:     KindParticle,
			X:        p.X - float64(p.Size)/2,
			Y:        p.Y - float64(p.Size)/2,
			W:        p.Size,
			H:        p.Size,
			Particle: p.Kind,
		})
	}
	return views
}

// Snapshot contains the simulation state as primitives for determinism tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Level     int
	Lives     int
	GameOver  bool
	Won       bool
	Paused    bool

	ComboCount      int
	ComboTimer      int
	ComboMultiplier int

	EnemyDirection   int
	EnemyMoveTimer   int
	EnemyMoveDelay   int
	EnemyShootChance float64
	BossMode         bool
	BossHealth       int // -1 when no boss is alive

	PlayerX int

	// Each enemy is 3 ints: X, Y, Evolution
	EnemyData []int

	// Each projectile is 3 ints: Owner, X, Y
	ProjectileData []int

	// Each power-up is 3 ints: Kind, X, Y
	PowerUpData []int

	ParticleCount int
	RNGState      uint64
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(s.enemies)*3)
	for _, e := range s.enemies {
		enemyData = append(enemyData, int(e.X), int(e.Y), e.Evolution)
	}

	projectileData := make([]int, 0, (len(s.playerProjectiles)+len(s.enemyProjectiles))*3)
	for _, p := range s.playerProjectiles {
		projectileData = append(projectileData, int(p.Owner), int(p.X), int(p.Y))
	}
	for _, p := range s.enemyProjectiles {
		projectileData = append(projectileData, int(p.Owner), int(p.X), int(p.Y))
	}

	powerUpData := make([]int, 0, len(s.powerUps)*3)
	for _, p := range s.powerUps {
		powerUpData = append(powerUpData, int(p.Kind), int(p.X), int(p.Y))
	}

	bossHealth := -1
	if s.boss != nil {
		bossHealth = s.boss.Boss.Health
	}

	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		Lives:     s.player.Lives,
		GameOver:  s.gameOver,
		Won:       s.gameWon,
		Paused:    s.paused,

		ComboCount:      s.comboCount,
		ComboTimer:      s.comboTimer,
		ComboMultiplier: s.comboMultiplier,

		EnemyDirection:   s.enemyDirection,
		EnemyMoveTimer:   s.enemyMoveTimer,
		EnemyMoveDelay:   s.enemyMoveDelay,
		EnemyShootChance: s.enemyShootChance,
		BossMode:         s.bossMode,
		BossHealth:       bossHealth,

		PlayerX: int(s.player.X),

		EnemyData:      enemyData,
		ProjectileData: projectileData,
		PowerUpData:    powerUpData,

		ParticleCount: len(s.particles),
		RNGState:      s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboTimer)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboMultiplier) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyDirection)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyMoveTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyMoveDelay)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)         //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.EnemyShootChance)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Won)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.BossMode)

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
