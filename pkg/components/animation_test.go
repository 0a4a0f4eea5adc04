package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// makeFrames 构造指定数量的帧占位
// 测试只验证帧索引推进逻辑，不需要真实的图像内容
func makeFrames(count int) []*ebiten.Image {
	return make([]*ebiten.Image, count)
}

func TestAnimationAdvanceLooping(t *testing.T) {
	anim := NewAnimationComponent(makeFrames(3), 2)

	// 每帧停留 2 个 tick：第 2 个 tick 结束时切到下一帧
	anim.Advance()
	if anim.CurrentFrame != 0 {
		t.Errorf("after 1 tick: expected frame 0, got %d", anim.CurrentFrame)
	}
	anim.Advance()
	if anim.CurrentFrame != 1 {
		t.Errorf("after 2 ticks: expected frame 1, got %d", anim.CurrentFrame)
	}

	// 推进到最后一帧之后应回绕到第 0 帧
	for i := 0; i < 4; i++ {
		anim.Advance()
	}
	if anim.CurrentFrame != 0 {
		t.Errorf("looping animation should wrap to frame 0, got %d", anim.CurrentFrame)
	}
	if !anim.IsPlaying {
		t.Error("looping animation should keep playing")
	}
}

func TestAnimationAdvanceNonLooping(t *testing.T) {
	anim := NewAnimationComponent(makeFrames(2), 1)
	anim.Play(false)

	anim.Advance() // 0 -> 1
	anim.Advance() // 1 -> 停在末帧
	if anim.CurrentFrame != 1 {
		t.Errorf("non-looping animation should clamp at last frame, got %d", anim.CurrentFrame)
	}
	if anim.IsPlaying {
		t.Error("non-looping animation should stop after the last frame")
	}

	// 停止后继续推进不应有任何变化
	anim.Advance()
	if anim.CurrentFrame != 1 {
		t.Error("stopped animation must not advance")
	}
}

func TestAnimationPlayRestarts(t *testing.T) {
	anim := NewAnimationComponent(makeFrames(4), 1)
	anim.Advance()
	anim.Advance()
	if anim.CurrentFrame != 2 {
		t.Fatalf("setup: expected frame 2, got %d", anim.CurrentFrame)
	}

	anim.Play(true)

	if anim.CurrentFrame != 0 || anim.FrameCounter != 0 {
		t.Error("Play should restart from frame 0")
	}
	if !anim.IsPlaying || !anim.IsLooping {
		t.Error("Play(true) should set playing and looping")
	}
}

func TestAnimationStoppedIsNoop(t *testing.T) {
	anim := NewAnimationComponent(makeFrames(3), 1)
	anim.Stop()

	anim.Advance()

	if anim.CurrentFrame != 0 || anim.FrameCounter != 0 {
		t.Error("Advance on a stopped animation must be a no-op")
	}
}

func TestAnimationFrameDurationFloor(t *testing.T) {
	anim := NewAnimationComponent(makeFrames(2), 0)

	if anim.FrameDuration != 1 {
		t.Errorf("frame duration below 1 should be clamped to 1, got %d", anim.FrameDuration)
	}
}

func TestAnimationEmptyFrames(t *testing.T) {
	anim := NewAnimationComponent(nil, 5)

	// 空片段推进和取帧都不应崩溃
	anim.Advance()
	if img := anim.CurrentImage(); img != nil {
		t.Error("CurrentImage of empty animation should be nil")
	}
}
