package systems

import (
	"math"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/gonewx/aqua/pkg/utils"
)

// BehaviorSystem 驱动敌人的每 tick 行为
//
// 所有敌人共享追踪转向逻辑，类型差异在同一套更新里按
// EnemyComponent.Type 分支处理，而不是为每种敌人定义独立的系统
type BehaviorSystem struct {
	em *ecs.EntityManager
}

// NewBehaviorSystem 创建敌人行为系统
func NewBehaviorSystem(em *ecs.EntityManager) *BehaviorSystem {
	return &BehaviorSystem{em: em}
}

// Update 更新所有存活敌人的转向、类型分支运动和动画状态
func (s *BehaviorSystem) Update() {
	playerPos, hasPlayer := s.findPlayerPosition()
	if !hasPlayer {
		return
	}

	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.MovementComponent,
	](s.em)

	for _, id := range enemies {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if !ok || !enemy.IsAlive {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		movement, ok := ecs.GetComponent[*components.MovementComponent](s.em, id)
		if !ok {
			continue
		}

		s.steer(enemy, pos, movement, playerPos)

		if enemy.Type == components.EnemyJellyfish {
			s.oscillate(enemy, pos, movement)
		}

		s.updateAnimation(id, movement)
	}
}

// steer 把敌人的速度指向玩家
// 与玩家重合时方向归零，速度也归零，朝向保持不变
func (s *BehaviorSystem) steer(enemy *components.EnemyComponent,
	pos *components.PositionComponent, movement *components.MovementComponent,
	playerPos components.PositionComponent) {

	// 敌人不使用加速度积分，速度每 tick 直接重写
	dir := utils.Vec2{X: playerPos.X - pos.X, Y: playerPos.Y - pos.Y}.Normalize()
	movement.Velocity = dir.Scale(enemy.MoveSpeed)

	if dir.X != 0 {
		movement.FacingRight = dir.X > 0
	}
}

// oscillate 水母分支：垂直方向不追踪，按正弦波围绕基准线浮动
// 相位按固定 tick 时长推进，水平追踪速度保留
func (s *BehaviorSystem) oscillate(enemy *components.EnemyComponent,
	pos *components.PositionComponent, movement *components.MovementComponent) {

	enemy.Phase += enemy.OscillationSpeed * config.TickDuration
	pos.Y = enemy.BaselineY + math.Sin(enemy.Phase)*enemy.OscillationAmplitude
	movement.Velocity.Y = 0
}

// updateAnimation 按速度推导敌人的动画状态
// 受击时物理系统会强制切到受伤状态，下一个 tick 在这里被覆盖回来
func (s *BehaviorSystem) updateAnimation(id ecs.EntityID, movement *components.MovementComponent) {
	anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.em, id)
	if !ok {
		return
	}

	if math.Abs(movement.Velocity.X) > 0.1 || math.Abs(movement.Velocity.Y) > 0.1 {
		anim.ChangeState(components.AnimSwim)
	} else {
		anim.ChangeState(components.AnimIdle)
	}
}

// findPlayerPosition 返回玩家的当前位置
// 没有玩家时敌人保持上一 tick 的速度继续运动
func (s *BehaviorSystem) findPlayerPosition() (components.PositionComponent, bool) {
	players := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.PositionComponent,
	](s.em)

	for _, id := range players {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id); ok {
			return *pos, true
		}
	}
	return components.PositionComponent{}, false
}
