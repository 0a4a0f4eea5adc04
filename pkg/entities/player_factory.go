package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
)

// CreatePlayer 创建玩家实体
// 玩家在场景中心附近出生，初始朝右，数值全部来自玩法配置
//
// 参数:
//   - em: 实体管理器
//   - clips: 加载好的角色动画片段
//   - gameplay: 玩法数值配置
//   - startX: 出生点世界坐标X
//   - startY: 出生点世界坐标Y
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func CreatePlayer(em *ecs.EntityManager, clips map[components.AnimState]*components.AnimationComponent,
	gameplay *config.GameplayConfig, startX, startY float64) (ecs.EntityID, error) {

	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if gameplay == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	stats := gameplay.Player
	bubble := gameplay.Bubble

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: startX,
		Y: startY,
	})

	em.AddComponent(id, &components.MovementComponent{
		Drag:          stats.WaterDrag,
		FacingRight:   true,
		ClampToBounds: true,
		StopOnClamp:   true,
	})

	em.AddComponent(id, &components.CollisionComponent{
		Width:  stats.SpriteSize,
		Height: stats.SpriteSize,
	})

	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.MaxHealth,
		MaxHealth:     stats.MaxHealth,
	})

	em.AddComponent(id, &components.PlayerComponent{
		Stamina:           stats.MaxStamina,
		MaxStamina:        stats.MaxStamina,
		Oxygen:            stats.MaxOxygen,
		MaxOxygen:         stats.MaxOxygen,
		Power:             stats.Power,
		BubbleCooldownMax: bubble.Cooldown,
		BubbleSpeed:       bubble.Speed,
		BubbleLifetime:    bubble.Lifetime,
		MoveSpeed:         stats.MoveSpeed,
		DashMultiplier:    stats.DashMultiplier,
		DashCost:          stats.DashCost,
		StaminaRegen:      stats.StaminaRegen,
		OxygenDrain:       stats.OxygenDrain,
		InvincibleMax:     stats.InvincibleTicks,
	})

	em.AddComponent(id, components.NewCharacterAnimationComponent(clips))

	log.Printf("[PlayerFactory] Player %d created at (%.0f, %.0f)", id, startX, startY)
	return id, nil
}
