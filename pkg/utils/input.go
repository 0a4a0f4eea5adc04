package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyState 存储当前 tick 的键盘输入快照
// 游戏逻辑只消费快照，不直接访问键盘，便于在测试中注入输入序列
type KeyState struct {
	Left  bool // 向左移动
	Right bool // 向右移动
	Up    bool // 向上移动
	Down  bool // 向下移动
	Dash  bool // 冲刺（Shift）
	Fire  bool // 发射泡泡（Space）
}

// ReadKeyState 读取当前帧的键盘状态快照
// 每个 tick 调用一次，之后各系统共享同一份快照
func ReadKeyState() KeyState {
	return KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Dash:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
