package config

import (
	_ "embed"
)

//go:embed defaults/neurolink.yaml
var defaultNeurolinkYAML []byte

// DefaultNeurolinkConfig returns the built-in tuning.
// It mirrors defaults/neurolink.yaml and is used when the embedded file cannot be parsed.
func DefaultNeurolinkConfig() NeurolinkConfig {
	return NeurolinkConfig{
		PlayArea: PlayAreaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:              50,
			Height:             40,
			Speed:              8,
			BottomMargin:       20,
			InitialLives:       3,
			MaxLives:           5,
			InvincibleDuration: 120, // 2 seconds
			ShieldDuration:     600, // 10 seconds
		},
		Projectile: ProjectileConfig{
			Width:              5,
			Height:             15,
			Speed:              10,
			EnemySpeedFactor:   0.7,
			DoubleShotDuration: 600,
		},
		Enemy: EnemyConfig{
			Width:            40,
			Height:           40,
			Step:             1,
			Rows:             5,
			Cols:             10,
			Spacing:          60,
			Top:              50,
			MoveDown:         20,
			InitialMoveDelay: 30,
			ShootChance:      0.005,
			EvolutionChance:  0.3,
			MaxEvolution:     3,
		},
		Boss: BossConfig{
			Scale:                 4,
			LevelInterval:         5,
			InitialHealth:         20,
			HealthIncrease:        10,
			ShootChanceMultiplier: 5,
			MoveSpeedMultiplier:   2,
			MoveDownChance:        0.05,
			SpreadOffsets:         []int{-20, 0, 20},
		},
		PowerUp: PowerUpConfig{
			DropChance: 0.01,
			Speed:      2,
			Size:       20,
			DebugY:     50,
		},
		Combo: ComboConfig{
			Duration:      120,
			MaxMultiplier: 8,
			HitsPerStep:   3,
		},
		Scoring: ScoringConfig{
			Hit:                   10,
			Destroy:               50,
			BossHit:               20,
			BossDestroyMultiplier: 1000,
			BombDestroy:           30,
		},
		Bomb: BombConfig{
			BossDamage:    10,
			ScatterBursts: 20,
		},
		Particles: ParticleConfig{
			CountNormal:    20,
			CountBossHit:   5,
			CountExplosion: 50,
			MinSpeed:       1,
			MaxSpeed:       5,
			MinSize:        2,
			MaxSize:        5,
			MinLifetime:    30,
			MaxLifetime:    60,
		},
		Stars: StarConfig{
			Count:    100,
			MinSize:  1,
			MaxSize:  3,
			MinSpeed: 0.1,
			MaxSpeed: 0.5,
		},
		Levels: LevelConfig{
			MoveDelayDecrease:   5,
			MoveDelayMin:        5,
			ShootChanceIncrease: 0.002,
		},
		Audio: AudioConfig{
			SampleRate:   44100,
			MasterVolume: 1.0,
			CueVolumes: map[string]float64{
				"shoot":     0.3,
				"hit":       0.4,
				"game_over": 0.7,
				"powerup":   0.5,
				"explosion": 0.6,
				"level_up":  0.7,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNeurolinkYAML
}
