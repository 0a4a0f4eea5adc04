package systems

import (
	"log"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/ecs"
)

// PhysicsSystem 处理每 tick 的碰撞检测
//
// 同一趟遍历里独立执行两类成对 AABB 检测：泡泡对敌人、玩家对敌人。
// 两类检测共享同一份 tick 开始时的实体集合：敌人在本趟里被打死后
// 依然参与后续检测，实体的真正移除推迟到 tick 末尾统一进行
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// collider 一个参与碰撞检测的实体快照
type collider struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	col *components.CollisionComponent
}

// Update 执行一个 tick 的碰撞检测
func (s *PhysicsSystem) Update() {
	bubbles := s.collectColliders(ecs.GetEntitiesWith3[
		*components.BubbleComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em))

	enemies := s.collectColliders(ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em))

	players := s.collectColliders(ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em))

	s.resolveBubbleHits(bubbles, enemies)
	s.resolveEnemyContacts(players, enemies)
}

// resolveBubbleHits 检测泡泡与敌人的碰撞
// 一个泡泡最多命中一个敌人，命中即标记销毁，重复命中是安全的空操作
func (s *PhysicsSystem) resolveBubbleHits(bubbles, enemies []collider) {
	for _, b := range bubbles {
		bubble, ok := ecs.GetComponent[*components.BubbleComponent](s.em, b.id)
		if !ok || bubble.IsHit {
			continue
		}

		for _, e := range enemies {
			if !checkAABBCollision(b.pos, b.col, e.pos, e.col) {
				continue
			}

			bubble.IsHit = true
			s.em.DestroyEntity(b.id)
			s.damageEnemy(e.id, bubble.Power)
			break
		}
	}
}

// resolveEnemyContacts 检测玩家与敌人的接触伤害
// 无敌判定在 damagePlayer 内部完成，这里不提前过滤
func (s *PhysicsSystem) resolveEnemyContacts(players, enemies []collider) {
	for _, p := range players {
		for _, e := range enemies {
			if !checkAABBCollision(p.pos, p.col, e.pos, e.col) {
				continue
			}

			enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, e.id)
			if !ok {
				continue
			}
			s.damagePlayer(p.id, enemy.Damage)
		}
	}
}

// damageEnemy 对敌人结算一次泡泡伤害
// 受击强制切换到受伤动画；生命值归零时标记死亡并延迟移除实体
func (s *PhysicsSystem) damageEnemy(id ecs.EntityID, amount int) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return
	}

	health.Damage(amount)

	if anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.em, id); ok {
		anim.ChangeState(components.AnimHurt)
	}

	if !health.IsDead() {
		return
	}

	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id); ok {
		enemy.IsAlive = false
	}
	s.em.DestroyEntity(id)
	log.Printf("[PhysicsSystem] Enemy %d defeated", id)
}

// damagePlayer 对玩家结算一次接触伤害
// 无敌期间完全忽略；受击后进入限时无敌，倒计时由控制系统推进
func (s *PhysicsSystem) damagePlayer(id ecs.EntityID, amount int) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !ok || player.IsInvincible {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return
	}

	health.Damage(amount)
	player.IsInvincible = true
	player.InvincibleTicks = player.InvincibleMax
	player.DamagedThisTick = true
	log.Printf("[PhysicsSystem] Player took %d damage, health now %d", amount, health.CurrentHealth)
}

// collectColliders 把实体列表展开为碰撞检测用的快照
func (s *PhysicsSystem) collectColliders(ids []ecs.EntityID) []collider {
	result := make([]collider, 0, len(ids))
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok {
			continue
		}
		result = append(result, collider{id: id, pos: pos, col: col})
	}
	return result
}

// checkAABBCollision 检查两个中心对齐碰撞盒是否重叠
// 碰撞盒中心为实体位置加偏移量
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	cx1 := pos1.X + col1.OffsetX
	cy1 := pos1.Y + col1.OffsetY
	cx2 := pos2.X + col2.OffsetX
	cy2 := pos2.Y + col2.OffsetY

	left1 := cx1 - col1.Width/2
	right1 := cx1 + col1.Width/2
	top1 := cy1 - col1.Height/2
	bottom1 := cy1 + col1.Height/2

	left2 := cx2 - col2.Width/2
	right2 := cx2 + col2.Width/2
	top2 := cy2 - col2.Height/2
	bottom2 := cy2 + col2.Height/2

	// 任一轴没有重叠则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}
