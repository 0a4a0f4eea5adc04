package components

// BubbleComponent 标识玩家发射的泡泡弹体
// 泡泡的寿命由 LifetimeComponent 管理，位置由 MovementComponent 推进
type BubbleComponent struct {
	Power int  // 命中敌人时造成的伤害
	IsHit bool // 是否已经命中过目标（命中即失效，重复标记安全）
}
