package neurolink

import (
	"math"

	"github.com/vovakirdan/neurolink/internal/config"
	"github.com/vovakirdan/neurolink/internal/core"
)

// Body is the position and extent shared by every entity.
// Positions are in logical play-area units; collisions use the truncated rectangle.
type Body struct {
	X, Y float64 // Top-left corner
	W, H int
}

// Rect returns the collision rectangle.
func (b Body) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), b.W, b.H)
}

// CenterX returns the horizontal center.
func (b Body) CenterX() float64 {
	return b.X + float64(b.W)/2
}

// CenterY returns the vertical center.
func (b Body) CenterY() float64 {
	return b.Y + float64(b.H)/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + float64(b.H)
}

// HitResult is the outcome of Player.Hit.
type HitResult int

const (
	HitNoEffect   HitResult = iota // Invincible, nothing happened
	HitAbsorbed                    // Shield consumed, no life lost
	HitRegistered                  // A life was lost
)

// String returns a human-readable name for the result.
func (h HitResult) String() string {
	switch h {
	case HitAbsorbed:
		return "absorbed"
	case HitRegistered:
		return "registered"
	default:
		return "no effect"
	}
}

// Player is the vessel at the bottom of the play area.
type Player struct {
	Body
	Lives int

	Shield          bool
	ShieldTimer     int
	DoubleShot      bool
	DoubleShotTimer int
	Invincible      bool
	InvincibleTimer int

	cfg *config.NeurolinkConfig
}

// NewPlayer creates a player centered horizontally above the bottom margin.
func NewPlayer(cfg *config.NeurolinkConfig) *Player {
	pc := cfg.Player
	return &Player{
		Body: Body{
			X: float64(cfg.PlayArea.Width/2 - pc.Width/2),
			Y: float64(cfg.PlayArea.Height - pc.BottomMargin - pc.Height),
			W: pc.Width,
			H: pc.Height,
		},
		Lives: pc.InitialLives,
		cfg:   cfg,
	}
}

// Update counts down active timers and clears expired flags.
func (p *Player) Update() {
	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}
	if p.Shield {
		p.ShieldTimer--
		if p.ShieldTimer <= 0 {
			p.Shield = false
			p.ShieldTimer = 0
		}
	}
	if p.DoubleShot {
		p.DoubleShotTimer--
		if p.DoubleShotTimer <= 0 {
			p.DoubleShot = false
			p.DoubleShotTimer = 0
		}
	}
}

// MoveLeft moves one step left, stopping at the edge.
func (p *Player) MoveLeft() {
	p.X = math.Max(0, p.X-float64(p.cfg.Player.Speed))
}

// MoveRight moves one step right, stopping at the edge.
func (p *Player) MoveRight() {
	p.X = math.Min(float64(p.cfg.PlayArea.Width-p.W), p.X+float64(p.cfg.Player.Speed))
}

// Shoot returns one centered projectile, or two side by side with double shot.
func (p *Player) Shoot() []*Projectile {
	if p.DoubleShot {
		return []*Projectile{
			newPlayerProjectile(p.cfg, p.X+float64(p.W/3), p.Y),
			newPlayerProjectile(p.cfg, p.X+float64(p.W*2/3), p.Y),
		}
	}
	return []*Projectile{newPlayerProjectile(p.cfg, p.CenterX(), p.Y)}
}

// Hit applies one incoming hit.
// A shield absorbs it, invincibility ignores it, otherwise a life is lost and
// a short invincibility window starts if any lives remain.
func (p *Player) Hit() HitResult {
	if p.Shield {
		p.Shield = false
		p.ShieldTimer = 0
		return HitAbsorbed
	}
	if p.Invincible || p.Lives <= 0 {
		return HitNoEffect
	}
	p.Lives--
	if p.Lives > 0 {
		p.Invincible = true
		p.InvincibleTimer = p.cfg.Player.InvincibleDuration
	}
	return HitRegistered
}

// ActivateShield turns the shield on for its full duration.
func (p *Player) ActivateShield() {
	p.Shield = true
	p.ShieldTimer = p.cfg.Player.ShieldDuration
}

// ActivateDoubleShot turns double shot on for its full duration.
func (p *Player) ActivateDoubleShot() {
	p.DoubleShot = true
	p.DoubleShotTimer = p.cfg.Projectile.DoubleShotDuration
}

// AddLife grants a life, capped at the configured maximum.
func (p *Player) AddLife() {
	p.Lives = min(p.cfg.Player.MaxLives, p.Lives+1)
}

// BossInfo is the payload carried only by the boss.
type BossInfo struct {
	Health    int
	MaxHealth int
}

// Enemy is a data fragment in the formation, or the boss when Boss is set.
type Enemy struct {
	Body
	Evolution int       // 0..max, only ever increases
	Boss      *BossInfo // nil for regular enemies

	dead bool
}

// IsBoss reports whether the enemy is the boss.
func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

// Hit applies one hit and reports whether the enemy is destroyed.
// Regular enemies evolve until they are at maxEvolution; the next hit destroys them.
func (e *Enemy) Hit(maxEvolution int) bool {
	if e.Boss != nil {
		if e.Boss.Health > 0 {
			e.Boss.Health--
		}
		return e.Boss.Health <= 0
	}
	if e.Evolution < maxEvolution {
		e.Evolution++
		return false
	}
	return true
}

// HealthFraction returns remaining boss health in [0, 1]; regular enemies report 1.
func (e *Enemy) HealthFraction() float64 {
	if e.Boss == nil || e.Boss.MaxHealth <= 0 {
		return 1
	}
	return float64(e.Boss.Health) / float64(e.Boss.MaxHealth)
}

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a shot moving vertically.
type Projectile struct {
	Body
	VY    float64
	Owner Owner

	dead bool
}

// newPlayerProjectile creates an upward shot with its bottom-center at (x, y).
func newPlayerProjectile(cfg *config.NeurolinkConfig, x, y float64) *Projectile {
	pc := cfg.Projectile
	return &Projectile{
		Body:  Body{X: x - float64(pc.Width)/2, Y: y - float64(pc.Height), W: pc.Width, H: pc.Height},
		VY:    -pc.Speed,
		Owner: OwnerPlayer,
	}
}

// newEnemyProjectile creates a downward shot with its top-center at (x, y).
func newEnemyProjectile(cfg *config.NeurolinkConfig, x, y float64) *Projectile {
	pc := cfg.Projectile
	return &Projectile{
		Body:  Body{X: x - float64(pc.Width)/2, Y: y, W: pc.Width, H: pc.Height},
		VY:    pc.Speed * pc.EnemySpeedFactor,
		Owner: OwnerEnemy,
	}
}

// Update moves the projectile and marks it dead once fully off-screen.
func (p *Projectile) Update(height int) {
	p.Y += p.VY
	if p.Bottom() < 0 || p.Y > float64(height) {
		p.dead = true
	}
}

// PowerUpKind is the effect a power-up applies on pickup.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpDoubleShot
	PowerUpLife
	PowerUpBomb

	powerUpKindCount
)

// String returns the power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpDoubleShot:
		return "double_shot"
	case PowerUpLife:
		return "life"
	case PowerUpBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Body
	Kind  PowerUpKind
	Speed float64

	dead bool
}

// newPowerUp creates a power-up centered on (x, y).
func newPowerUp(cfg *config.NeurolinkConfig, kind PowerUpKind, x, y float64) *PowerUp {
	size := cfg.PowerUp.Size
	return &PowerUp{
		Body:  Body{X: x - float64(size)/2, Y: y - float64(size)/2, W: size, H: size},
		Kind:  kind,
		Speed: cfg.PowerUp.Speed,
	}
}

// Update moves the power-up down and marks it dead below the play area.
func (p *PowerUp) Update(height int) {
	p.Y += p.Speed
	if p.Y > float64(height) {
		p.dead = true
	}
}

// ParticleKind selects a particle's look.
type ParticleKind int

const (
	ParticleSpark     ParticleKind = iota // Regular enemy destroyed, player hit
	ParticleDebris                        // Boss hit
	ParticleExplosion                     // Boss destroyed, bomb
)

// Particle is a short-lived burst fragment.
type Particle struct {
	X, Y     float64 // Center
	DX, DY   float64
	Size     int
	Lifetime int // Frames left
	Kind     ParticleKind
}

// Update moves the particle and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.X += p.DX
	p.Y += p.DY
	p.Lifetime--
	return p.Lifetime > 0
}

// Star is a background decoration drifting slowly downward.
type Star struct {
	X, Y  float64
	Size  int
	Speed float64
}

// Update moves the star and wraps it to a random column at the top.
func (s *Star) Update(rng *RNG, width, height int) {
	s.Y += s.Speed
	if s.Y > float64(height) {
		s.Y = 0
		s.X = float64(rng.Intn(width + 1))
	}
}
