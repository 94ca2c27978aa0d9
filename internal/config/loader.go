package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "neurolink.yaml"

// LoadNeurolink loads the game configuration.
// Search order: customPath -> ~/.neurolink/configs/neurolink.yaml -> ./configs/neurolink.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadNeurolink(customPath string) (NeurolinkConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NeurolinkConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return NeurolinkConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Search paths are best-effort: unreadable or invalid files fall through.
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultNeurolinkYAML)
	if err != nil {
		return DefaultNeurolinkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (NeurolinkConfig, error) {
	cfg := DefaultNeurolinkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NeurolinkConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return NeurolinkConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg NeurolinkConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports tuning values the simulation cannot run with.
func (c *NeurolinkConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.PlayArea.Width > 0 && c.PlayArea.Height > 0, "play_area must be positive, got %dx%d", c.PlayArea.Width, c.PlayArea.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Width <= c.PlayArea.Width, "player wider than play area")
	check(c.Player.InitialLives >= 1, "player.initial_lives must be at least 1, got %d", c.Player.InitialLives)
	check(c.Player.MaxLives >= c.Player.InitialLives, "player.max_lives (%d) below initial_lives (%d)", c.Player.MaxLives, c.Player.InitialLives)
	check(c.Projectile.Speed > 0, "projectile.speed must be positive")
	check(c.Projectile.EnemySpeedFactor > 0, "projectile.enemy_speed_factor must be positive")
	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive")
	check(c.Enemy.Rows > 0 && c.Enemy.Cols > 0, "enemy grid must be at least 1x1")
	check(c.Enemy.Spacing > 0, "enemy.spacing must be positive")
	check(c.Enemy.Cols*c.Enemy.Spacing <= c.PlayArea.Width, "enemy grid (%d cols x %d spacing) wider than play area", c.Enemy.Cols, c.Enemy.Spacing)
	check(gridRightEdge(c) <= c.PlayArea.Width, "enemy grid overflows play area on the right")
	check(c.Enemy.MaxEvolution >= 0, "enemy.max_evolution must not be negative")
	check(c.Enemy.InitialMoveDelay >= 1, "enemy.initial_move_delay must be at least 1")
	check(isProbability(c.Enemy.ShootChance), "enemy.shoot_chance must be in [0,1], got %v", c.Enemy.ShootChance)
	check(isProbability(c.Enemy.EvolutionChance), "enemy.evolution_chance must be in [0,1], got %v", c.Enemy.EvolutionChance)
	check(c.Boss.Scale >= 1, "boss.scale must be at least 1")
	check(c.Boss.LevelInterval >= 1, "boss.level_interval must be at least 1")
	check(c.Boss.InitialHealth >= 1, "boss.initial_health must be at least 1")
	check(c.Boss.HealthIncrease >= 0, "boss.health_increase must not be negative, got %d", c.Boss.HealthIncrease)
	check(c.Enemy.Width*c.Boss.Scale <= c.PlayArea.Width, "boss (%d x scale %d) wider than play area", c.Enemy.Width, c.Boss.Scale)
	check(isProbability(c.Boss.MoveDownChance), "boss.move_down_chance must be in [0,1]")
	check(isProbability(c.PowerUp.DropChance), "powerup.drop_chance must be in [0,1]")
	check(c.Combo.MaxMultiplier >= 1, "combo.max_multiplier must be at least 1")
	check(c.Combo.HitsPerStep >= 1, "combo.hits_per_step must be at least 1")
	check(c.Combo.Duration >= 1, "combo.duration must be at least 1")
	check(c.Particles.MinLifetime >= 1 && c.Particles.MaxLifetime >= c.Particles.MinLifetime, "particle lifetimes must satisfy 1 <= min <= max")
	check(c.Particles.MaxSpeed >= c.Particles.MinSpeed, "particles.max_speed below min_speed")
	check(c.Stars.MaxSpeed >= c.Stars.MinSpeed, "stars.max_speed below min_speed")
	check(c.Levels.MoveDelayMin >= 1, "levels.move_delay_min must be at least 1")
	check(c.Levels.MoveDelayMin <= c.Enemy.InitialMoveDelay, "levels.move_delay_min (%d) above enemy.initial_move_delay (%d)", c.Levels.MoveDelayMin, c.Enemy.InitialMoveDelay)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// gridRightEdge is the right edge of the last formation column, laid out the
// way the formation is centred at spawn.
func gridRightEdge(c *NeurolinkConfig) int {
	startX := (c.PlayArea.Width - c.Enemy.Cols*c.Enemy.Spacing) / 2
	return startX + (c.Enemy.Cols-1)*c.Enemy.Spacing + c.Enemy.Width
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".neurolink", "configs", configFileName))
	}
	return append(paths, filepath.Join("configs", configFileName))
}
