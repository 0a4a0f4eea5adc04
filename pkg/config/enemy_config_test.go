package config

import (
	"path/filepath"
	"testing"
)

func TestLoadEnemyConfig(t *testing.T) {
	t.Run("加载有效配置文件", func(t *testing.T) {
		configContent := `
enemies:
  jellyfish:
    health: 5
    damage: 10
    moveSpeed: 1.5
    oscillationSpeed: 2.0
    oscillationAmplitude: 30
    spriteSize: 32
spawns:
  - type: jellyfish
    x: 200
    y: 200
  - type: jellyfish
    x: 600
    y: 400
`
		path := writeConfigFile(t, "enemies.yaml", configContent)

		cfg, err := LoadEnemyConfig(path)
		if err != nil {
			t.Fatalf("LoadEnemyConfig failed: %v", err)
		}

		jelly, ok := cfg.Enemies["jellyfish"]
		if !ok {
			t.Fatal("jellyfish enemy type not found")
		}
		if jelly.Health != 5 {
			t.Errorf("health: expected 5, got %d", jelly.Health)
		}
		if jelly.OscillationAmplitude != 30 {
			t.Errorf("oscillationAmplitude: expected 30, got %v", jelly.OscillationAmplitude)
		}
		if len(cfg.Spawns) != 2 {
			t.Fatalf("expected 2 spawns, got %d", len(cfg.Spawns))
		}
		if cfg.Spawns[1].X != 600 || cfg.Spawns[1].Y != 400 {
			t.Errorf("spawn 1: expected (600, 400), got (%v, %v)", cfg.Spawns[1].X, cfg.Spawns[1].Y)
		}
	})

	t.Run("空敌人表被拒绝", func(t *testing.T) {
		path := writeConfigFile(t, "empty.yaml", "enemies: {}")
		if _, err := LoadEnemyConfig(path); err == nil {
			t.Error("expected validation error for empty enemy table")
		}
	})

	t.Run("布点引用未知类型", func(t *testing.T) {
		configContent := `
enemies:
  jellyfish:
    health: 5
    spriteSize: 32
spawns:
  - type: shark
    x: 100
    y: 100
`
		path := writeConfigFile(t, "bad_spawn.yaml", configContent)
		if _, err := LoadEnemyConfig(path); err == nil {
			t.Error("expected validation error for unknown spawn type")
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := LoadEnemyConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestDefaultEnemyConfig(t *testing.T) {
	cfg := DefaultEnemyConfig()

	if err := validateEnemyConfig(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
	if len(cfg.Spawns) != 2 {
		t.Errorf("default config should spawn 2 enemies, got %d", len(cfg.Spawns))
	}
}
