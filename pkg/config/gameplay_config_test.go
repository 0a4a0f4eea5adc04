package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadGameplayConfig(t *testing.T) {
	t.Run("加载有效配置文件", func(t *testing.T) {
		configContent := `
player:
  maxHealth: 100
  maxStamina: 100
  maxOxygen: 100
  power: 10
  moveSpeed: 5.0
  dashMultiplier: 8.0
  dashCost: 20
  waterDrag: 0.9
  staminaRegen: 0.5
  oxygenDrain: 0.1
  invincibleTicks: 60
  spriteSize: 48
bubble:
  speed: 8.0
  lifetime: 60
  cooldown: 20
  spawnOffset: 20
  size: 16
`
		path := writeConfigFile(t, "gameplay.yaml", configContent)

		cfg, err := LoadGameplayConfig(path)
		if err != nil {
			t.Fatalf("LoadGameplayConfig failed: %v", err)
		}

		if cfg.Player.MaxHealth != 100 {
			t.Errorf("maxHealth: expected 100, got %d", cfg.Player.MaxHealth)
		}
		if cfg.Player.WaterDrag != 0.9 {
			t.Errorf("waterDrag: expected 0.9, got %v", cfg.Player.WaterDrag)
		}
		if cfg.Player.DashMultiplier != 8.0 {
			t.Errorf("dashMultiplier: expected 8.0, got %v", cfg.Player.DashMultiplier)
		}
		if cfg.Bubble.Lifetime != 60 {
			t.Errorf("bubble lifetime: expected 60, got %d", cfg.Bubble.Lifetime)
		}
		if cfg.Bubble.Cooldown != 20 {
			t.Errorf("bubble cooldown: expected 20, got %d", cfg.Bubble.Cooldown)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadGameplayConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("非法YAML", func(t *testing.T) {
		path := writeConfigFile(t, "broken.yaml", "player: [not a map")
		_, err := LoadGameplayConfig(path)
		if err == nil {
			t.Error("expected error for malformed YAML")
		}
	})

	t.Run("阻力系数越界", func(t *testing.T) {
		configContent := `
player:
  maxHealth: 100
  maxStamina: 100
  maxOxygen: 100
  waterDrag: 1.5
  spriteSize: 48
bubble:
  lifetime: 60
  size: 16
`
		path := writeConfigFile(t, "bad_drag.yaml", configContent)
		_, err := LoadGameplayConfig(path)
		if err == nil {
			t.Error("expected validation error for waterDrag > 1")
		}
	})

	t.Run("泡泡寿命必须为正", func(t *testing.T) {
		configContent := `
player:
  maxHealth: 100
  maxStamina: 100
  maxOxygen: 100
  waterDrag: 0.9
  spriteSize: 48
bubble:
  lifetime: 0
  size: 16
`
		path := writeConfigFile(t, "bad_lifetime.yaml", configContent)
		_, err := LoadGameplayConfig(path)
		if err == nil {
			t.Error("expected validation error for non-positive bubble lifetime")
		}
	})
}

func TestDefaultGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()

	// 默认配置必须通过自身的校验
	if err := validateGameplayConfig(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
	if cfg.Player.DashCost != 20 {
		t.Errorf("default dashCost: expected 20, got %v", cfg.Player.DashCost)
	}
	if cfg.Bubble.Lifetime != 60 {
		t.Errorf("default bubble lifetime: expected 60, got %d", cfg.Bubble.Lifetime)
	}
}
