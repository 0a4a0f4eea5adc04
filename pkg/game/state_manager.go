package game

import (
	"image/color"
	"log"

	"github.com/gonewx/aqua/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionStep 每个 tick 过渡遮罩透明度的变化量
// 255 必须能被该值整除，保证淡出和淡入都能精确到达端点
const TransitionStep = 5

// UpdateHandler 某个状态的每 tick 更新回调
type UpdateHandler func()

// RenderHandler 某个状态的绘制回调
type RenderHandler func(screen *ebiten.Image)

// StateManager manages the game's high-level state machine.
// It dispatches per-state update and render handlers and animates a
// fade-to-black crossfade whenever the active state changes.
//
// 状态迁移规则：
//   - 同一时刻最多一个待切换状态；过渡期间的新请求被静默丢弃，不排队
//   - 过渡期间运行过渡动画本身，不运行当前状态的更新回调
//   - 绘制永远先画当前状态，再叠加过渡遮罩
type StateManager struct {
	current         GameState
	pending         GameState
	hasPending      bool
	isTransitioning bool
	transitionAlpha int // 过渡遮罩透明度 [0, 255]

	updateHandlers map[GameState]UpdateHandler
	renderHandlers map[GameState]RenderHandler

	overlay *ebiten.Image // 过渡遮罩，首次绘制时延迟创建
}

// NewStateManager 创建状态管理器，初始状态为标题画面
func NewStateManager() *StateManager {
	return &StateManager{
		current:        StateTitle,
		updateHandlers: make(map[GameState]UpdateHandler),
		renderHandlers: make(map[GameState]RenderHandler),
	}
}

// RegisterHandlers 注册某个状态的更新与绘制回调
func (sm *StateManager) RegisterHandlers(state GameState, update UpdateHandler, render RenderHandler) {
	sm.updateHandlers[state] = update
	sm.renderHandlers[state] = render
}

// ChangeState 请求切换到目标状态
// 已有过渡在进行时请求被静默丢弃
func (sm *StateManager) ChangeState(target GameState) {
	if sm.isTransitioning {
		log.Printf("[StateManager] Transition in progress, dropping request: %s", target)
		return
	}
	log.Printf("[StateManager] %s -> %s", sm.current, target)
	sm.pending = target
	sm.hasPending = true
	sm.isTransitioning = true
}

// CurrentState 返回当前激活的状态
func (sm *StateManager) CurrentState() GameState {
	return sm.current
}

// IsTransitioning 返回是否有过渡动画在进行
func (sm *StateManager) IsTransitioning() bool {
	return sm.isTransitioning
}

// TransitionAlpha 返回当前过渡遮罩的透明度 [0, 255]
func (sm *StateManager) TransitionAlpha() int {
	return sm.transitionAlpha
}

// Update 执行一个 tick 的状态更新
// 过渡期间推进过渡动画；否则调用当前状态的更新回调
func (sm *StateManager) Update() {
	if sm.isTransitioning {
		sm.updateTransition()
		return
	}
	if handler, ok := sm.updateHandlers[sm.current]; ok {
		handler()
	}
}

// updateTransition 推进过渡动画一个 tick
// 淡出到全黑时瞬间切换状态，然后按同样的步长淡入
func (sm *StateManager) updateTransition() {
	if sm.hasPending {
		if sm.transitionAlpha < 255 {
			// 淡出
			sm.transitionAlpha += TransitionStep
			if sm.transitionAlpha > 255 {
				sm.transitionAlpha = 255
			}
			return
		}

		// 全黑：切换状态并开始淡入
		sm.current = sm.pending
		sm.hasPending = false
	}

	sm.transitionAlpha -= TransitionStep
	if sm.transitionAlpha <= 0 {
		sm.transitionAlpha = 0
		sm.isTransitioning = false
	}
}

// Render 绘制当前状态，过渡期间叠加遮罩
func (sm *StateManager) Render(screen *ebiten.Image) {
	if handler, ok := sm.renderHandlers[sm.current]; ok {
		handler(screen)
	}

	if sm.isTransitioning && sm.transitionAlpha > 0 {
		sm.renderTransition(screen)
	}
}

// renderTransition 按当前透明度叠加全屏黑色遮罩
func (sm *StateManager) renderTransition(screen *ebiten.Image) {
	if sm.overlay == nil {
		sm.overlay = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
		sm.overlay.Fill(color.Black)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(sm.transitionAlpha) / 255)
	screen.DrawImage(sm.overlay, op)
}
