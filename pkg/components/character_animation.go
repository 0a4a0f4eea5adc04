package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimState 定义角色的动画状态
type AnimState int

const (
	// AnimIdle 待机状态
	AnimIdle AnimState = iota
	// AnimSwim 游动状态
	AnimSwim
	// AnimAttack 攻击状态
	AnimAttack
	// AnimHurt 受伤状态
	AnimHurt
	// AnimDash 冲刺状态
	AnimDash
)

// String 返回动画状态对应的资源名
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimSwim:
		return "swim"
	case AnimAttack:
		return "attack"
	case AnimHurt:
		return "hurt"
	case AnimDash:
		return "dash"
	}
	return "unknown"
}

// CharacterAnimationComponent 管理角色在各个状态下的动画片段
// 每个状态绑定一个 AnimationComponent，同一时刻只有当前状态的片段在推进
type CharacterAnimationComponent struct {
	Clips   map[AnimState]*AnimationComponent // 状态到动画片段的映射
	Current AnimState                         // 当前动画状态
}

// NewCharacterAnimationComponent 创建角色动画组件，初始状态为待机
func NewCharacterAnimationComponent(clips map[AnimState]*AnimationComponent) *CharacterAnimationComponent {
	if clips == nil {
		clips = make(map[AnimState]*AnimationComponent)
	}
	return &CharacterAnimationComponent{
		Clips:   clips,
		Current: AnimIdle,
	}
}

// ChangeState 切换动画状态
// 目标状态与当前状态相同、或目标状态没有绑定片段时不做任何事；
// 切换总是从第 0 帧重新播放，不保留上次的播放进度
func (c *CharacterAnimationComponent) ChangeState(newState AnimState) {
	if newState == c.Current {
		return
	}
	clip, ok := c.Clips[newState]
	if !ok {
		return
	}
	c.Current = newState
	clip.Play(true)
}

// Advance 将当前状态的动画片段推进一个 tick
func (c *CharacterAnimationComponent) Advance() {
	if clip, ok := c.Clips[c.Current]; ok {
		clip.Advance()
	}
}

// SetFacing 设置所有片段的朝向
// 对全部片段生效，之后切换状态时朝向立即正确，无需额外同步
func (c *CharacterAnimationComponent) SetFacing(facingRight bool) {
	for _, clip := range c.Clips {
		clip.SetFacing(facingRight)
	}
}

// CurrentImage 返回当前状态动画的当前帧
// 当前状态没有绑定片段时返回 nil，由渲染方用占位图像兜底
func (c *CharacterAnimationComponent) CurrentImage() *ebiten.Image {
	if clip, ok := c.Clips[c.Current]; ok {
		return clip.CurrentImage()
	}
	return nil
}
