package config

// MoveDelayForLevel returns the formation move delay at the given level:
// the initial delay shortened by a fixed step per level, floored at the minimum.
func (c *NeurolinkConfig) MoveDelayForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	delay := c.Enemy.InitialMoveDelay - (level-1)*c.Levels.MoveDelayDecrease
	return max(c.Levels.MoveDelayMin, delay)
}

// ShootChanceForLevel returns the per-frame enemy fire probability at the given level.
func (c *NeurolinkConfig) ShootChanceForLevel(level int) float64 {
	if level < 1 {
		level = 1
	}
	chance := c.Enemy.ShootChance + float64(level-1)*c.Levels.ShootChanceIncrease
	return clampF(chance, 0, 1)
}

// IsBossLevel reports whether the level spawns a boss instead of a formation.
func (c *NeurolinkConfig) IsBossLevel(level int) bool {
	return c.Boss.LevelInterval > 0 && level%c.Boss.LevelInterval == 0
}

// BossHealthForLevel returns the starting health of a boss spawned at the given level.
func (c *NeurolinkConfig) BossHealthForLevel(level int) int {
	if c.Boss.LevelInterval <= 0 {
		return c.Boss.InitialHealth
	}
	return c.Boss.InitialHealth + (level/c.Boss.LevelInterval)*c.Boss.HealthIncrease
}

// ApplyPreset adjusts starting difficulty for a preset. Normal leaves the config untouched.
func ApplyPreset(cfg *NeurolinkConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.InitialLives = min(cfg.Player.MaxLives, cfg.Player.InitialLives+2)
		cfg.Enemy.ShootChance /= 2
		cfg.Enemy.InitialMoveDelay += 10
	case DifficultyHard:
		cfg.Player.InitialLives = max(1, cfg.Player.InitialLives-1)
		cfg.Enemy.ShootChance *= 2
		cfg.Enemy.InitialMoveDelay = max(cfg.Levels.MoveDelayMin, cfg.Enemy.InitialMoveDelay-10)
	}
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
