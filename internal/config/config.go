// Package config provides YAML-based tuning for NeuroLink and the
// closed-form level scaling derived from it.
package config

// NeurolinkConfig contains all tuning for the game. It is loaded once at
// startup and shared by pointer; nothing mutates it afterwards.
type NeurolinkConfig struct {
	PlayArea   PlayAreaConfig   `yaml:"play_area"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Boss       BossConfig       `yaml:"boss"`
	PowerUp    PowerUpConfig    `yaml:"powerup"`
	Combo      ComboConfig      `yaml:"combo"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Bomb       BombConfig       `yaml:"bomb"`
	Particles  ParticleConfig   `yaml:"particles"`
	Stars      StarConfig       `yaml:"stars"`
	Levels     LevelConfig      `yaml:"levels"`
	Audio      AudioConfig      `yaml:"audio"`
}

// PlayAreaConfig is the logical size of the battlefield.
type PlayAreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the vessel.
type PlayerConfig struct {
	Width              int `yaml:"width"`
	Height             int `yaml:"height"`
	Speed              int `yaml:"speed"`
	BottomMargin       int `yaml:"bottom_margin"`
	InitialLives       int `yaml:"initial_lives"`
	MaxLives           int `yaml:"max_lives"`
	InvincibleDuration int `yaml:"invincible_duration"` // frames
	ShieldDuration     int `yaml:"shield_duration"`     // frames
}

// ProjectileConfig defines player and enemy shots.
type ProjectileConfig struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	Speed              float64 `yaml:"speed"`
	EnemySpeedFactor   float64 `yaml:"enemy_speed_factor"`
	DoubleShotDuration int     `yaml:"double_shot_duration"` // frames
}

// EnemyConfig defines the regular formation.
type EnemyConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Step             float64 `yaml:"step"` // horizontal distance per formation move
	Rows             int     `yaml:"rows"`
	Cols             int     `yaml:"cols"`
	Spacing          int     `yaml:"spacing"`
	Top              int     `yaml:"top"`
	MoveDown         int     `yaml:"move_down"`
	InitialMoveDelay int     `yaml:"initial_move_delay"` // frames between formation moves
	ShootChance      float64 `yaml:"shoot_chance"`
	EvolutionChance  float64 `yaml:"evolution_chance"` // per-enemy chance to evolve on a drop
	MaxEvolution     int     `yaml:"max_evolution"`
}

// BossConfig defines the firewall node that replaces the formation on boss levels.
type BossConfig struct {
	Scale                 int     `yaml:"scale"`
	LevelInterval         int     `yaml:"level_interval"`
	InitialHealth         int     `yaml:"initial_health"`
	HealthIncrease        int     `yaml:"health_increase"` // per boss encounter
	ShootChanceMultiplier float64 `yaml:"shoot_chance_multiplier"`
	MoveSpeedMultiplier   float64 `yaml:"move_speed_multiplier"`
	MoveDownChance        float64 `yaml:"move_down_chance"`
	SpreadOffsets         []int   `yaml:"spread_offsets"`
}

// PowerUpConfig defines dropped upgrades.
type PowerUpConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	Speed      float64 `yaml:"speed"`
	Size       int     `yaml:"size"`
	DebugY     int     `yaml:"debug_y"` // spawn height for the debug spawn action
}

// ComboConfig defines the combo window.
type ComboConfig struct {
	Duration      int `yaml:"duration"` // frames
	MaxMultiplier int `yaml:"max_multiplier"`
	HitsPerStep   int `yaml:"hits_per_step"`
}

// ScoringConfig defines point rewards.
type ScoringConfig struct {
	Hit                   int `yaml:"hit"`
	Destroy               int `yaml:"destroy"`
	BossHit               int `yaml:"boss_hit"`
	BossDestroyMultiplier int `yaml:"boss_destroy_multiplier"` // times the level
	BombDestroy           int `yaml:"bomb_destroy"`
}

// BombConfig defines the bomb power-up.
type BombConfig struct {
	BossDamage    int `yaml:"boss_damage"`
	ScatterBursts int `yaml:"scatter_bursts"`
}

// ParticleConfig defines burst sizes and particle motion.
type ParticleConfig struct {
	CountNormal    int     `yaml:"count_normal"`
	CountBossHit   int     `yaml:"count_boss_hit"`
	CountExplosion int     `yaml:"count_explosion"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	MinSize        int     `yaml:"min_size"`
	MaxSize        int     `yaml:"max_size"`
	MinLifetime    int     `yaml:"min_lifetime"`
	MaxLifetime    int     `yaml:"max_lifetime"`
}

// StarConfig defines the scrolling background.
type StarConfig struct {
	Count    int     `yaml:"count"`
	MinSize  int     `yaml:"min_size"`
	MaxSize  int     `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// LevelConfig defines per-level difficulty steps.
type LevelConfig struct {
	MoveDelayDecrease   int     `yaml:"move_delay_decrease"`
	MoveDelayMin        int     `yaml:"move_delay_min"`
	ShootChanceIncrease float64 `yaml:"shoot_chance_increase"`
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	SampleRate   int                `yaml:"sample_rate"`
	MasterVolume float64            `yaml:"master_volume"`
	CueVolumes   map[string]float64 `yaml:"cue_volumes"`
}

// DifficultyPreset is a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI string to a preset.
// Unknown values return an empty preset, meaning the config is used as loaded.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
