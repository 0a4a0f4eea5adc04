package systems

import (
	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
)

// MovementSystem 负责所有实体的运动积分和场景边界约束
//
// 每个 tick 的积分顺序固定：先叠加加速度，再无条件乘以阻力，
// 最后用新速度更新位置。阻力每 tick 都作用，静止时输入为零的
// 实体速度按几何级数衰减到零
type MovementSystem struct {
	em     *ecs.EntityManager
	bounds config.Bounds
}

// NewMovementSystem 创建运动系统
//
// 参数:
//   - em: 实体管理器
//   - bounds: 场景矩形，实体的碰撞盒被约束在其内部
func NewMovementSystem(em *ecs.EntityManager, bounds config.Bounds) *MovementSystem {
	return &MovementSystem{
		em:     em,
		bounds: bounds,
	}
}

// Update 对所有拥有位置和运动组件的实体做一次积分
func (s *MovementSystem) Update() {
	ids := ecs.GetEntitiesWith2[
		*components.MovementComponent,
		*components.PositionComponent,
	](s.em)

	for _, id := range ids {
		movement, ok := ecs.GetComponent[*components.MovementComponent](s.em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}

		// 冲刺只放大加速度，不直接改写速度，阻力因此仍然封顶末速度
		accel := movement.Acceleration
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id); ok && player.IsDashing {
			accel = accel.Scale(player.DashMultiplier)
		}

		movement.Velocity = movement.Velocity.Add(accel).Scale(movement.Drag)
		pos.X += movement.Velocity.X
		pos.Y += movement.Velocity.Y

		s.clampToBounds(id, pos, movement)
	}
}

// clampToBounds 把实体的碰撞盒约束在场景矩形内
//
// 被约束的轴按 StopOnClamp 决定是否清零速度：玩家贴边即停，
// 敌人保留速度以免追踪在边界上失去指向
func (s *MovementSystem) clampToBounds(id ecs.EntityID, pos *components.PositionComponent, movement *components.MovementComponent) {
	if !movement.ClampToBounds {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return
	}

	halfW := col.Width / 2
	halfH := col.Height / 2
	minX := s.bounds.X + halfW - col.OffsetX
	maxX := s.bounds.X + s.bounds.Width - halfW - col.OffsetX
	minY := s.bounds.Y + halfH - col.OffsetY
	maxY := s.bounds.Y + s.bounds.Height - halfH - col.OffsetY

	if pos.X < minX {
		pos.X = minX
		if movement.StopOnClamp {
			movement.Velocity.X = 0
		}
	} else if pos.X > maxX {
		pos.X = maxX
		if movement.StopOnClamp {
			movement.Velocity.X = 0
		}
	}

	if pos.Y < minY {
		pos.Y = minY
		if movement.StopOnClamp {
			movement.Velocity.Y = 0
		}
	} else if pos.Y > maxY {
		pos.Y = maxY
		if movement.StopOnClamp {
			movement.Velocity.Y = 0
		}
	}
}
