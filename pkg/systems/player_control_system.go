package systems

import (
	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/gonewx/aqua/pkg/entities"
	"github.com/gonewx/aqua/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// BubbleImageProvider 提供泡泡弹体的图像
// 生产环境由资源管理器实现，测试中可以用返回 nil 的桩替代
type BubbleImageProvider interface {
	BubbleImage(size float64) *ebiten.Image
}

// PlayerControlSystem 把输入快照转换为玩家的加速度、冲刺与发射行为，
// 并推进玩家每个 tick 的资源结算（冷却、无敌、体力、氧气）
type PlayerControlSystem struct {
	em     *ecs.EntityManager
	rm     BubbleImageProvider
	bubble config.BubbleStats
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - em: 实体管理器
//   - rm: 泡泡图像提供方，发射时取得弹体贴图
//   - bubble: 泡泡弹体的数值配置
func NewPlayerControlSystem(em *ecs.EntityManager, rm BubbleImageProvider, bubble config.BubbleStats) *PlayerControlSystem {
	return &PlayerControlSystem{
		em:     em,
		rm:     rm,
		bubble: bubble,
	}
}

// Update 处理一个 tick 的玩家输入和资源结算
//
// 每个 tick 的处理顺序固定：
// 输入映射 → 冷却递减 → 发射 → 无敌倒计时 → 体力恢复 → 氧气消耗
// 加速度写入 MovementComponent，实际积分由 MovementSystem 完成
func (s *PlayerControlSystem) Update(keys utils.KeyState) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.MovementComponent,
	](s.em)

	for _, id := range players {
		player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		if !ok {
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

		// 上一个 tick 的瞬时标志到这里已经被动画系统消费过
		player.FiredThisTick = false
		player.DamagedThisTick = false

		s.applyInput(keys, player, movement)
		s.updateDash(keys, player)
		s.updateFire(keys, player, pos, movement)
		s.updateInvincibility(player)
		s.updateGauges(player)
	}
}

// applyInput 按固定顺序 左、右、上、下 把按键映射为加速度
// 同轴两键同时按下时后写入者生效；朝向只由水平键改写
func (s *PlayerControlSystem) applyInput(keys utils.KeyState, player *components.PlayerComponent, movement *components.MovementComponent) {
	accel := utils.Vec2{}

	if keys.Left {
		accel.X = -player.MoveSpeed
		movement.FacingRight = false
	}
	if keys.Right {
		accel.X = player.MoveSpeed
		movement.FacingRight = true
	}
	if keys.Up {
		accel.Y = -player.MoveSpeed
	}
	if keys.Down {
		accel.Y = player.MoveSpeed
	}

	movement.Acceleration = accel
}

// updateDash 处理冲刺状态和体力消耗
// 冲刺要求当前体力不低于门槛；冲刺期间按 tick 时长折算消耗体力
func (s *PlayerControlSystem) updateDash(keys utils.KeyState, player *components.PlayerComponent) {
	player.IsDashing = keys.Dash && player.Stamina >= player.DashCost

	if player.IsDashing {
		player.Stamina -= player.DashCost * config.TickDuration
		if player.Stamina < 0 {
			player.Stamina = 0
		}
	}
}

// updateFire 处理发射冷却和泡泡生成
// 泡泡从玩家中心沿朝向偏移出生，水平直线飞行
func (s *PlayerControlSystem) updateFire(keys utils.KeyState, player *components.PlayerComponent,
	pos *components.PositionComponent, movement *components.MovementComponent) {

	if player.BubbleCooldown > 0 {
		player.BubbleCooldown--
	}

	if !keys.Fire || player.BubbleCooldown > 0 {
		return
	}

	direction := 1.0
	if !movement.FacingRight {
		direction = -1.0
	}

	entities.CreateBubble(s.em, entities.BubbleParams{
		Image:     s.rm.BubbleImage(s.bubble.Size),
		X:         pos.X + direction*s.bubble.SpawnOffset,
		Y:         pos.Y,
		VelocityX: direction * player.BubbleSpeed,
		Power:     player.Power,
		Lifetime:  player.BubbleLifetime,
		Size:      s.bubble.Size,
	})

	player.BubbleCooldown = player.BubbleCooldownMax
	player.FiredThisTick = true
}

// updateInvincibility 推进受击无敌的倒计时
// 倒计时结束后无敌状态清除，玩家重新可以受击
func (s *PlayerControlSystem) updateInvincibility(player *components.PlayerComponent) {
	if !player.IsInvincible {
		return
	}

	player.InvincibleTicks--
	if player.InvincibleTicks <= 0 {
		player.IsInvincible = false
		player.InvincibleTicks = 0
	}
}

// updateGauges 结算体力恢复和氧气消耗
// 体力只在非冲刺时恢复；氧气持续消耗且没有恢复途径
func (s *PlayerControlSystem) updateGauges(player *components.PlayerComponent) {
	if !player.IsDashing {
		player.Stamina += player.StaminaRegen
		if player.Stamina > player.MaxStamina {
			player.Stamina = player.MaxStamina
		}
	}

	player.Oxygen -= player.OxygenDrain
	if player.Oxygen < 0 {
		player.Oxygen = 0
	}
}
