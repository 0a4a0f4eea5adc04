// Package game 提供游戏的高层状态管理和共享管理器
package game

// GameState 表示游戏的高层状态
type GameState int

const (
	// StateTitle 标题画面
	StateTitle GameState = iota
	// StatePlaying 游戏进行中
	StatePlaying
	// StatePaused 暂停（画面冻结，逻辑停止）
	StatePaused
	// StateGameOver 游戏结束画面
	StateGameOver
)

// String 返回状态名，用于日志输出
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}
