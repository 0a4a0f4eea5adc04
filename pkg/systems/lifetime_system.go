package systems

import (
	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
)

// LifetimeSystem 管理限时实体（泡泡）的生命周期
//
// 每个 tick 把剩余寿命减一，寿命耗尽或碰撞盒完全离开场景的实体
// 被标记删除。寿命为 N 的实体恰好经历 N 次更新
type LifetimeSystem struct {
	em     *ecs.EntityManager
	bounds config.Bounds
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, bounds config.Bounds) *LifetimeSystem {
	return &LifetimeSystem{
		em:     em,
		bounds: bounds,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update() {
	ids := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em)

	for _, id := range ids {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		if !ok {
			continue
		}

		lifetime.RemainingTicks--
		if lifetime.RemainingTicks <= 0 {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired || s.isOutOfBounds(id) {
			s.em.DestroyEntity(id)
		}
	}
}

// isOutOfBounds 判断实体的碰撞盒是否已经完全离开场景
// 没有位置或碰撞组件的实体不做边界判定
func (s *LifetimeSystem) isOutOfBounds(id ecs.EntityID) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return false
	}

	cx := pos.X + col.OffsetX
	cy := pos.Y + col.OffsetY

	return cx+col.Width/2 < s.bounds.X ||
		cx-col.Width/2 > s.bounds.X+s.bounds.Width ||
		cy+col.Height/2 < s.bounds.Y ||
		cy-col.Height/2 > s.bounds.Y+s.bounds.Height
}
