package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
)

// enemyTypeFromName 把配置中的类型名映射为敌人类型
func enemyTypeFromName(name string) (components.EnemyType, bool) {
	switch name {
	case "basic":
		return components.EnemyBasic, true
	case "jellyfish":
		return components.EnemyJellyfish, true
	}
	return components.EnemyBasic, false
}

// CreateEnemy 创建敌人实体
// 出生点的Y坐标同时作为水母浮动的基准线
//
// 参数:
//   - em: 实体管理器
//   - clips: 加载好的角色动画片段
//   - typeName: 敌人类型名（配置中的键）
//   - stats: 该类型的数值配置
//   - startX: 出生点世界坐标X
//   - startY: 出生点世界坐标Y
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func CreateEnemy(em *ecs.EntityManager, clips map[components.AnimState]*components.AnimationComponent,
	typeName string, stats config.EnemyStats, startX, startY float64) (ecs.EntityID, error) {

	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	enemyType, ok := enemyTypeFromName(typeName)
	if !ok {
		return 0, fmt.Errorf("unknown enemy type %q", typeName)
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: startX,
		Y: startY,
	})

	// 敌人的速度每 tick 由行为系统直接重写，阻力设为 1 保持标称速度
	em.AddComponent(id, &components.MovementComponent{
		Drag:          1.0,
		FacingRight:   false,
		ClampToBounds: true,
		StopOnClamp:   false,
	})

	em.AddComponent(id, &components.CollisionComponent{
		Width:  stats.SpriteSize,
		Height: stats.SpriteSize,
	})

	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})

	em.AddComponent(id, &components.EnemyComponent{
		Type:                 enemyType,
		Damage:               stats.Damage,
		MoveSpeed:            stats.MoveSpeed,
		IsAlive:              true,
		BaselineY:            startY,
		OscillationSpeed:     stats.OscillationSpeed,
		OscillationAmplitude: stats.OscillationAmplitude,
	})

	em.AddComponent(id, components.NewCharacterAnimationComponent(clips))

	log.Printf("[EnemyFactory] Enemy %d (%s) created at (%.0f, %.0f)", id, typeName, startX, startY)
	return id, nil
}
