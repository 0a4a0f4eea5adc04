package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 模拟逻辑只写入图像句柄，从不读取像素数据
type SpriteComponent struct {
	Image *ebiten.Image
}
