package config

import (
	"fmt"

	"github.com/gonewx/aqua/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人类型的数值配置
type EnemyStats struct {
	Health               int     `yaml:"health"`               // 初始生命值
	Damage               int     `yaml:"damage"`               // 接触伤害
	MoveSpeed            float64 `yaml:"moveSpeed"`            // 追踪速度（像素/tick）
	OscillationSpeed     float64 `yaml:"oscillationSpeed"`     // 浮动相位推进速度（弧度/秒，仅水母）
	OscillationAmplitude float64 `yaml:"oscillationAmplitude"` // 浮动振幅（像素，仅水母）
	SpriteSize           float64 `yaml:"spriteSize"`           // 贴图与碰撞盒边长（像素）
}

// EnemySpawn 敌人的初始布点
type EnemySpawn struct {
	Type string  `yaml:"type"` // 敌人类型名，对应 Enemies 的键
	X    float64 `yaml:"x"`    // 初始X坐标
	Y    float64 `yaml:"y"`    // 初始Y坐标
}

// EnemyConfig 敌人配置文件结构
type EnemyConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"` // 敌人类型到数值的映射
	Spawns  []EnemySpawn          `yaml:"spawns"`  // 开局布点列表
}

// DefaultEnemyConfig 返回默认敌人配置：两只水母
func DefaultEnemyConfig() *EnemyConfig {
	return &EnemyConfig{
		Enemies: map[string]EnemyStats{
			"jellyfish": {
				Health:               5,
				Damage:               10,
				MoveSpeed:            1.5,
				OscillationSpeed:     2.0,
				OscillationAmplitude: 30,
				SpriteSize:           32,
			},
		},
		Spawns: []EnemySpawn{
			{Type: "jellyfish", X: 200, Y: 200},
			{Type: "jellyfish", X: 600, Y: 400},
		},
	}
}

// LoadEnemyConfig 从 YAML 文件加载敌人配置
func LoadEnemyConfig(filepath string) (*EnemyConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy config %s: %w", filepath, err)
	}

	var cfg EnemyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse enemy config YAML from %s: %w", filepath, err)
	}

	if err := validateEnemyConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid enemy config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// validateEnemyConfig 校验敌人配置的完整性和合法性
func validateEnemyConfig(cfg *EnemyConfig) error {
	if len(cfg.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	for enemyType, stats := range cfg.Enemies {
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
		}
		if stats.Damage < 0 {
			return fmt.Errorf("enemy %s: damage cannot be negative, got %d", enemyType, stats.Damage)
		}
		if stats.MoveSpeed < 0 {
			return fmt.Errorf("enemy %s: moveSpeed cannot be negative, got %v", enemyType, stats.MoveSpeed)
		}
		if stats.SpriteSize <= 0 {
			return fmt.Errorf("enemy %s: spriteSize must be positive, got %v", enemyType, stats.SpriteSize)
		}
	}

	// 布点引用的类型必须存在
	for i, spawn := range cfg.Spawns {
		if _, ok := cfg.Enemies[spawn.Type]; !ok {
			return fmt.Errorf("spawn %d references unknown enemy type %q", i, spawn.Type)
		}
	}

	return nil
}
