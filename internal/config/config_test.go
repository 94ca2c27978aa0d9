package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNeurolinkConfig()) {
		t.Errorf("embedded YAML and DefaultNeurolinkConfig() differ:\n%+v\n%+v", cfg, DefaultNeurolinkConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	cfg := DefaultNeurolinkConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  initial_lives: 4\nenemy:\n  rows: 2\naudio:\n  cue_volumes:\n    shoot: 0.1\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.InitialLives != 4 {
		t.Errorf("InitialLives = %d, want 4", cfg.Player.InitialLives)
	}
	if cfg.Enemy.Rows != 2 {
		t.Errorf("Rows = %d, want 2", cfg.Enemy.Rows)
	}
	// Untouched keys keep their defaults.
	if cfg.Enemy.Cols != 10 || cfg.Player.MaxLives != 5 {
		t.Errorf("defaults lost: cols=%d maxLives=%d", cfg.Enemy.Cols, cfg.Player.MaxLives)
	}
	if cfg.Audio.CueVolumes["shoot"] != 0.1 || cfg.Audio.CueVolumes["hit"] != 0.4 {
		t.Errorf("cue volumes = %v", cfg.Audio.CueVolumes)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *NeurolinkConfig)
		want   string
	}{
		{"zero width", func(c *NeurolinkConfig) { c.PlayArea.Width = 0 }, "play_area"},
		{"no lives", func(c *NeurolinkConfig) { c.Player.InitialLives = 0 }, "initial_lives"},
		{"max below initial", func(c *NeurolinkConfig) { c.Player.MaxLives = 2 }, "max_lives"},
		{"shoot chance", func(c *NeurolinkConfig) { c.Enemy.ShootChance = 1.5 }, "shoot_chance"},
		{"evolution chance", func(c *NeurolinkConfig) { c.Enemy.EvolutionChance = -0.1 }, "evolution_chance"},
		{"empty grid", func(c *NeurolinkConfig) { c.Enemy.Cols = 0 }, "grid"},
		{"boss interval", func(c *NeurolinkConfig) { c.Boss.LevelInterval = 0 }, "level_interval"},
		{"min above initial delay", func(c *NeurolinkConfig) { c.Levels.MoveDelayMin = 40 }, "move_delay_min"},
		{"particle lifetimes", func(c *NeurolinkConfig) { c.Particles.MaxLifetime = 10 }, "lifetimes"},
		{"combo step", func(c *NeurolinkConfig) { c.Combo.HitsPerStep = 0 }, "hits_per_step"},
		{"negative boss health step", func(c *NeurolinkConfig) { c.Boss.HealthIncrease = -100 }, "health_increase"},
		{"grid wider than play area", func(c *NeurolinkConfig) { c.Enemy.Cols = 20 }, "wider than play area"},
		{"grid overflows right edge", func(c *NeurolinkConfig) { c.Enemy.Width = 200 }, "overflows"},
		{"boss wider than play area", func(c *NeurolinkConfig) { c.Boss.Scale = 25 }, "boss ("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNeurolinkConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseRejectsBrokenLayouts(t *testing.T) {
	for _, doc := range []string{
		"boss:\n  health_increase: -100\n",
		"enemy:\n  cols: 20\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) accepted a config the simulation cannot run", doc)
		}
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultNeurolinkConfig()
	cfg.Projectile.Speed = 0
	cfg.PowerUp.DropChance = 2
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "projectile.speed") || !strings.Contains(msg, "drop_chance") {
		t.Errorf("error should list both problems: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("combo:\n  max_multiplier: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNeurolink(path)
	if err != nil {
		t.Fatalf("LoadNeurolink() failed: %v", err)
	}
	if cfg.Combo.MaxMultiplier != 4 {
		t.Errorf("MaxMultiplier = %d, want 4", cfg.Combo.MaxMultiplier)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadNeurolink(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enemy:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadNeurolink(bad)
	if err == nil {
		t.Fatal("expected error for invalid custom config")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error not wrapped: %v", err)
	}
}

func TestLoadSearchPathFallsBack(t *testing.T) {
	// Isolate from the developer's home and working directory.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadNeurolink("")
	if err != nil {
		t.Fatalf("LoadNeurolink() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNeurolinkConfig()) {
		t.Error("expected embedded defaults")
	}

	// A local configs/ file wins over the embedded default.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", configFileName), []byte("enemy:\n  cols: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadNeurolink("")
	if err != nil {
		t.Fatalf("LoadNeurolink() failed: %v", err)
	}
	if cfg.Enemy.Cols != 6 {
		t.Errorf("Cols = %d, want 6 from ./configs", cfg.Enemy.Cols)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultNeurolinkConfig()
	cfg.Enemy.Rows = 3
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("config changed across Marshal/Parse")
	}
}

func TestLevelScaling(t *testing.T) {
	cfg := DefaultNeurolinkConfig()

	delays := []struct{ level, want int }{
		{0, 30}, {1, 30}, {2, 25}, {5, 10}, {6, 5}, {7, 5}, {50, 5},
	}
	for _, tt := range delays {
		if got := cfg.MoveDelayForLevel(tt.level); got != tt.want {
			t.Errorf("MoveDelayForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	if got := cfg.ShootChanceForLevel(1); got != 0.005 {
		t.Errorf("ShootChanceForLevel(1) = %v", got)
	}
	if got, want := cfg.ShootChanceForLevel(3), 0.009; math.Abs(got-want) > 1e-12 {
		t.Errorf("ShootChanceForLevel(3) = %v, want %v", got, want)
	}
	if got := cfg.ShootChanceForLevel(10000); got != 1 {
		t.Errorf("ShootChanceForLevel clamps to 1, got %v", got)
	}

	for _, l := range []int{5, 10, 15} {
		if !cfg.IsBossLevel(l) {
			t.Errorf("level %d should be a boss level", l)
		}
	}
	if cfg.IsBossLevel(4) || cfg.IsBossLevel(6) {
		t.Error("non-multiple of 5 is not a boss level")
	}
	if got := cfg.BossHealthForLevel(5); got != 30 {
		t.Errorf("BossHealthForLevel(5) = %d, want 30", got)
	}
	if got := cfg.BossHealthForLevel(10); got != 40 {
		t.Errorf("BossHealthForLevel(10) = %d, want 40", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		chance float64
		delay  int
	}{
		{DifficultyEasy, 5, 0.0025, 40},
		{DifficultyNormal, 3, 0.005, 30},
		{DifficultyHard, 2, 0.01, 20},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultNeurolinkConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Player.InitialLives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Player.InitialLives, tt.lives)
			}
			if cfg.Enemy.ShootChance != tt.chance {
				t.Errorf("shoot chance = %v, want %v", cfg.Enemy.ShootChance, tt.chance)
			}
			if cfg.Enemy.InitialMoveDelay != tt.delay {
				t.Errorf("delay = %d, want %d", cfg.Enemy.InitialMoveDelay, tt.delay)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  "",
		"":       "",
	}
	for in, want := range tests {
		if got := ParseDifficultyPreset(in); got != want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, want %q", in, got, want)
		}
	}
}
