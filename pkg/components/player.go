package components

// PlayerComponent 存储玩家特有的状态和数值
// 数值来源于 gameplay 配置，运行时只在边界内变化（饱和，不报错）
type PlayerComponent struct {
	// 资源槽
	Stamina    float64 // 当前体力，[0, MaxStamina]
	MaxStamina float64 // 体力上限
	Oxygen     float64 // 当前氧气，[0, MaxOxygen]
	MaxOxygen  float64 // 氧气上限

	// 攻击
	Power             int     // 泡泡的攻击力
	BubbleCooldown    int     // 距下次可发射的剩余 tick 数
	BubbleCooldownMax int     // 发射冷却（tick）
	BubbleSpeed       float64 // 泡泡飞行速度（像素/tick）
	BubbleLifetime    int     // 泡泡寿命（tick）

	// 移动
	MoveSpeed      float64 // 输入映射到加速度的基础值
	DashMultiplier float64 // 冲刺时的加速度倍率
	DashCost       float64 // 冲刺的体力门槛，同时按 tick 时长折算为每 tick 消耗
	StaminaRegen   float64 // 非冲刺时每 tick 恢复的体力
	OxygenDrain    float64 // 每 tick 消耗的氧气

	// 状态标志
	IsDashing       bool // 当前是否在冲刺
	IsInvincible    bool // 受击后的无敌状态
	InvincibleTicks int  // 无敌状态剩余 tick 数
	InvincibleMax   int  // 无敌状态持续时间（tick）
	FiredThisTick   bool // 本 tick 是否发射了泡泡（驱动攻击动画）
	DamagedThisTick bool // 本 tick 是否受到伤害（驱动受伤动画）
}
