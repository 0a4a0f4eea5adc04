package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 管理基于spritesheet的帧动画片段
// 计时以逻辑 tick 为单位，每个 tick 由 AnimationSystem 调用一次 Advance
type AnimationComponent struct {
	Frames        []*ebiten.Image // 动画的所有帧图片
	FrameDuration int             // 每帧停留的 tick 数（>=1）
	CurrentFrame  int             // 当前显示的帧索引(0-based)
	FrameCounter  int             // 当前帧已停留的 tick 数
	IsPlaying     bool            // 是否正在播放
	IsLooping     bool            // 是否循环播放
	FacingRight   bool            // 朝向，渲染时决定是否水平镜像
}

// NewAnimationComponent 创建一个动画片段
// frameDuration 小于 1 时按 1 处理
func NewAnimationComponent(frames []*ebiten.Image, frameDuration int) *AnimationComponent {
	if frameDuration < 1 {
		frameDuration = 1
	}
	return &AnimationComponent{
		Frames:        frames,
		FrameDuration: frameDuration,
		IsPlaying:     true,
		IsLooping:     true,
		FacingRight:   true,
	}
}

// Play 从第 0 帧开始播放动画
func (a *AnimationComponent) Play(loop bool) {
	a.CurrentFrame = 0
	a.FrameCounter = 0
	a.IsPlaying = true
	a.IsLooping = loop
}

// Stop 停止播放
func (a *AnimationComponent) Stop() {
	a.IsPlaying = false
}

// Advance 将动画推进一个 tick
// 非循环动画播放到最后一帧后停在末帧并停止
func (a *AnimationComponent) Advance() {
	if !a.IsPlaying || len(a.Frames) == 0 {
		return
	}

	a.FrameCounter++
	if a.FrameCounter < a.FrameDuration {
		return
	}
	a.FrameCounter = 0
	a.CurrentFrame++

	if a.CurrentFrame >= len(a.Frames) {
		if a.IsLooping {
			a.CurrentFrame = 0
		} else {
			a.CurrentFrame = len(a.Frames) - 1
			a.IsPlaying = false
		}
	}
}

// SetFacing 设置朝向
// 镜像本身在渲染时按朝向一次性施加，重复设置同一朝向没有副作用
func (a *AnimationComponent) SetFacing(facingRight bool) {
	a.FacingRight = facingRight
}

// CurrentImage 返回当前帧的图像句柄
// 没有帧时返回 nil，由渲染方回退到占位图像
func (a *AnimationComponent) CurrentImage() *ebiten.Image {
	if len(a.Frames) == 0 {
		return nil
	}
	if a.CurrentFrame >= len(a.Frames) {
		return a.Frames[len(a.Frames)-1]
	}
	return a.Frames[a.CurrentFrame]
}
