package systems

import (
	"math"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/ecs"
)

// AnimationSystem 推导玩家的动画状态并推进所有角色动画
//
// 敌人的常规状态推导在 BehaviorSystem，受伤状态由 PhysicsSystem 强制写入，
// 本系统只负责玩家的状态推导、朝向同步和统一的帧推进
type AnimationSystem struct {
	em *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{em: em}
}

// Update 推进一个 tick 的动画
// 必须在物理系统之后执行，本 tick 的受击和发射标志才会反映到动画上
func (s *AnimationSystem) Update() {
	ids := ecs.GetEntitiesWith1[*components.CharacterAnimationComponent](s.em)

	for _, id := range ids {
		anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.em, id)
		if !ok {
			continue
		}

		if movement, ok := ecs.GetComponent[*components.MovementComponent](s.em, id); ok {
			anim.SetFacing(movement.FacingRight)

			if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id); ok {
				anim.ChangeState(derivePlayerState(player, movement))
			}
		}

		anim.Advance()
	}
}

// derivePlayerState 按优先级推导玩家的动画状态
// 受伤 > 攻击 > 冲刺 > 游动 > 待机，瞬时标志只在当前 tick 生效
func derivePlayerState(player *components.PlayerComponent, movement *components.MovementComponent) components.AnimState {
	switch {
	case player.DamagedThisTick:
		return components.AnimHurt
	case player.FiredThisTick:
		return components.AnimAttack
	case player.IsDashing:
		return components.AnimDash
	case math.Abs(movement.Velocity.X) > 0.1 || math.Abs(movement.Velocity.Y) > 0.1:
		return components.AnimSwim
	default:
		return components.AnimIdle
	}
}
