package components

// LifetimeComponent 管理实体的生命周期
// 计时以逻辑 tick 为单位，每个 tick 减一，到 0 时实体被标记删除
type LifetimeComponent struct {
	RemainingTicks int  // 剩余存活 tick 数
	IsExpired      bool // 是否已过期
}
