package components

// EnemyType 定义敌人的类型
// 同一套更新逻辑内按类型分支，而不是为每种敌人建立独立的类型层次
type EnemyType int

const (
	// EnemyBasic 基础敌人：直接追踪玩家
	EnemyBasic EnemyType = iota
	// EnemyJellyfish 水母：水平追踪玩家，垂直方向按正弦波上下浮动
	EnemyJellyfish
)

// EnemyComponent 存储敌人特有的状态和数值
type EnemyComponent struct {
	Type      EnemyType // 敌人类型，决定 BehaviorSystem 中的运动分支
	Damage    int       // 接触玩家时造成的伤害
	MoveSpeed float64   // 追踪速度（像素/tick）
	IsAlive   bool      // 存活标志，false 后实体在本 tick 末尾被移除

	// 水母浮动参数（仅 EnemyJellyfish 使用）
	BaselineY            float64 // 浮动的基准Y坐标
	Phase                float64 // 当前相位（弧度）
	OscillationSpeed     float64 // 相位推进速度（弧度/秒）
	OscillationAmplitude float64 // 浮动振幅（像素）
}
