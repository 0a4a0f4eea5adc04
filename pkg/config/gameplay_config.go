package config

import (
	"fmt"

	"github.com/gonewx/aqua/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PlayerStats 玩家的数值配置
type PlayerStats struct {
	MaxHealth       int     `yaml:"maxHealth"`       // 生命值上限
	MaxStamina      float64 `yaml:"maxStamina"`      // 体力上限
	MaxOxygen       float64 `yaml:"maxOxygen"`       // 氧气上限
	Power           int     `yaml:"power"`           // 泡泡攻击力
	MoveSpeed       float64 `yaml:"moveSpeed"`       // 输入映射到加速度的基础值
	DashMultiplier  float64 `yaml:"dashMultiplier"`  // 冲刺时的加速度倍率
	DashCost        float64 `yaml:"dashCost"`        // 冲刺体力门槛（按 tick 折算消耗）
	WaterDrag       float64 `yaml:"waterDrag"`       // 水体阻力系数，(0,1]
	StaminaRegen    float64 `yaml:"staminaRegen"`    // 非冲刺时每 tick 恢复的体力
	OxygenDrain     float64 `yaml:"oxygenDrain"`     // 每 tick 消耗的氧气
	InvincibleTicks int     `yaml:"invincibleTicks"` // 受击后的无敌时间（tick）
	SpriteSize      float64 `yaml:"spriteSize"`      // 贴图与碰撞盒边长（像素）
}

// BubbleStats 泡泡弹体的数值配置
type BubbleStats struct {
	Speed       float64 `yaml:"speed"`       // 飞行速度（像素/tick）
	Lifetime    int     `yaml:"lifetime"`    // 寿命（tick）
	Cooldown    int     `yaml:"cooldown"`    // 发射冷却（tick）
	SpawnOffset float64 `yaml:"spawnOffset"` // 出生点相对玩家中心的水平偏移（像素）
	Size        float64 `yaml:"size"`        // 贴图与碰撞盒边长（像素）
}

// GameplayConfig 核心玩法数值配置
type GameplayConfig struct {
	Player PlayerStats `yaml:"player"`
	Bubble BubbleStats `yaml:"bubble"`
}

// DefaultGameplayConfig 返回默认玩法配置
// 配置文件缺失或非法时游戏以这些数值运行
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerStats{
			MaxHealth:       100,
			MaxStamina:      100,
			MaxOxygen:       100,
			Power:           10,
			MoveSpeed:       5.0,
			DashMultiplier:  8.0,
			DashCost:        20,
			WaterDrag:       0.9,
			StaminaRegen:    0.5,
			OxygenDrain:     0.1,
			InvincibleTicks: 60,
			SpriteSize:      48,
		},
		Bubble: BubbleStats{
			Speed:       8.0,
			Lifetime:    60,
			Cooldown:    20,
			SpawnOffset: 20,
			Size:        16,
		},
	}
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
// 参数:
//
//	filepath - 配置文件路径（嵌入资源或普通文件路径）
//
// 返回:
//
//	*GameplayConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameplayConfig(filepath string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", filepath, err)
	}

	var cfg GameplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML from %s: %w", filepath, err)
	}

	if err := validateGameplayConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid gameplay config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// validateGameplayConfig 校验玩法配置的合法性
func validateGameplayConfig(cfg *GameplayConfig) error {
	p := cfg.Player
	if p.MaxHealth <= 0 {
		return fmt.Errorf("player maxHealth must be positive, got %d", p.MaxHealth)
	}
	if p.MaxStamina <= 0 {
		return fmt.Errorf("player maxStamina must be positive, got %v", p.MaxStamina)
	}
	if p.MaxOxygen <= 0 {
		return fmt.Errorf("player maxOxygen must be positive, got %v", p.MaxOxygen)
	}
	if p.WaterDrag <= 0 || p.WaterDrag > 1 {
		return fmt.Errorf("player waterDrag must be in (0, 1], got %v", p.WaterDrag)
	}
	if p.DashCost < 0 {
		return fmt.Errorf("player dashCost cannot be negative, got %v", p.DashCost)
	}
	if p.InvincibleTicks < 0 {
		return fmt.Errorf("player invincibleTicks cannot be negative, got %d", p.InvincibleTicks)
	}
	if p.SpriteSize <= 0 {
		return fmt.Errorf("player spriteSize must be positive, got %v", p.SpriteSize)
	}

	b := cfg.Bubble
	if b.Lifetime <= 0 {
		return fmt.Errorf("bubble lifetime must be positive, got %d", b.Lifetime)
	}
	if b.Cooldown < 0 {
		return fmt.Errorf("bubble cooldown cannot be negative, got %d", b.Cooldown)
	}
	if b.Size <= 0 {
		return fmt.Errorf("bubble size must be positive, got %v", b.Size)
	}

	return nil
}
