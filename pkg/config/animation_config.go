package config

import (
	"fmt"

	"github.com/gonewx/aqua/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ClipConfig 单个动画片段的配置
type ClipConfig struct {
	File          string `yaml:"file"`          // 精灵表文件名（相对于单元目录）
	FrameCount    int    `yaml:"frameCount"`    // 帧数
	FrameDuration int    `yaml:"frameDuration"` // 每帧停留的 tick 数
}

// UnitAnimationConfig 一个角色单元的动画配置
// 精灵表按水平方向等宽切分为 FrameCount 帧
type UnitAnimationConfig struct {
	FrameWidth  int                   `yaml:"frameWidth"`  // 单帧宽度（像素）
	FrameHeight int                   `yaml:"frameHeight"` // 单帧高度（像素）
	Clips       map[string]ClipConfig `yaml:"clips"`       // 状态名到片段配置的映射
}

// AnimationConfig 动画配置文件结构
type AnimationConfig struct {
	Units map[string]UnitAnimationConfig `yaml:"units"` // 单元名（player/jellyfish）到配置的映射
}

// DefaultAnimationConfig 返回默认动画配置
// 水母没有攻击和冲刺片段，对应的状态切换请求会被忽略
func DefaultAnimationConfig() *AnimationConfig {
	return &AnimationConfig{
		Units: map[string]UnitAnimationConfig{
			"player": {
				FrameWidth:  48,
				FrameHeight: 48,
				Clips: map[string]ClipConfig{
					"idle":   {File: "idle.png", FrameCount: 4, FrameDuration: 10},
					"swim":   {File: "swim.png", FrameCount: 6, FrameDuration: 6},
					"attack": {File: "attack.png", FrameCount: 4, FrameDuration: 5},
					"hurt":   {File: "hurt.png", FrameCount: 2, FrameDuration: 5},
					"dash":   {File: "dash.png", FrameCount: 3, FrameDuration: 4},
				},
			},
			"jellyfish": {
				FrameWidth:  32,
				FrameHeight: 32,
				Clips: map[string]ClipConfig{
					"idle": {File: "idle.png", FrameCount: 4, FrameDuration: 10},
					"swim": {File: "swim.png", FrameCount: 6, FrameDuration: 6},
					"hurt": {File: "hurt.png", FrameCount: 2, FrameDuration: 5},
				},
			},
		},
	}
}

// LoadAnimationConfig 从 YAML 文件加载动画配置
func LoadAnimationConfig(filepath string) (*AnimationConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation config %s: %w", filepath, err)
	}

	var cfg AnimationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse animation config YAML from %s: %w", filepath, err)
	}

	if err := validateAnimationConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid animation config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// validateAnimationConfig 校验动画配置的合法性
func validateAnimationConfig(cfg *AnimationConfig) error {
	if len(cfg.Units) == 0 {
		return fmt.Errorf("at least one animation unit is required")
	}

	for unitName, unit := range cfg.Units {
		if unit.FrameWidth <= 0 || unit.FrameHeight <= 0 {
			return fmt.Errorf("unit %s: frame size must be positive, got %dx%d",
				unitName, unit.FrameWidth, unit.FrameHeight)
		}
		for clipName, clip := range unit.Clips {
			if clip.FrameCount <= 0 {
				return fmt.Errorf("unit %s clip %s: frameCount must be positive, got %d",
					unitName, clipName, clip.FrameCount)
			}
			if clip.FrameDuration <= 0 {
				return fmt.Errorf("unit %s clip %s: frameDuration must be positive, got %d",
					unitName, clipName, clip.FrameDuration)
			}
		}
	}

	return nil
}
