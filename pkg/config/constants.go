// Package config 提供游戏配置的加载、校验和默认值
package config

// 窗口与逻辑屏幕尺寸
// 所有需要边界约束的组件都通过 ArenaBounds 取得场景矩形，
// 不在各处重复书写字面量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600
)

// 逻辑时钟
const (
	// GameTPS 每秒逻辑 tick 数
	GameTPS = 60
	// TickDuration 单个逻辑 tick 的时长（秒）
	// 资源消耗、水母相位推进等按固定 tick 折算，保证确定性
	TickDuration = 1.0 / float64(GameTPS)
)

// Bounds 表示一个轴对齐矩形区域
type Bounds struct {
	X      float64 // 左上角X
	Y      float64 // 左上角Y
	Width  float64 // 宽度
	Height float64 // 高度
}

// ArenaBounds 返回可活动场景的矩形
// 玩家、敌人和泡泡的边界约束都以此为准
func ArenaBounds() Bounds {
	return Bounds{X: 0, Y: 0, Width: GameWindowWidth, Height: GameWindowHeight}
}
