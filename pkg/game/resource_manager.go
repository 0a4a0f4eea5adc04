package game

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"path"

	// PNG 解码注册
	_ "image/png"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceManager 负责加载角色动画帧和其他图像资源
//
// 资源缺失永远不是致命错误：精灵表读取或解码失败时，
// 对应片段回退为纯色占位帧，游戏照常运行。
type ResourceManager struct {
	animations  *config.AnimationConfig
	bubbleImage *ebiten.Image
	bubbleSize  float64
}

// NewResourceManager 创建资源管理器
func NewResourceManager(animations *config.AnimationConfig) *ResourceManager {
	if animations == nil {
		animations = config.DefaultAnimationConfig()
	}
	return &ResourceManager{animations: animations}
}

// LoadCharacterClips 加载指定单元的全部动画片段
//
// 配置中出现的状态都会得到一个片段；精灵表缺失时绑定占位帧。
// 配置中没有的状态保持未绑定，之后对这些状态的切换请求会被忽略。
func (rm *ResourceManager) LoadCharacterClips(unit string) map[components.AnimState]*components.AnimationComponent {
	clips := make(map[components.AnimState]*components.AnimationComponent)

	unitCfg, ok := rm.animations.Units[unit]
	if !ok {
		log.Printf("[ResourceManager] No animation config for unit %q, using single placeholder clip", unit)
		frames := placeholderFrames(1, 32, 32, unitColor(unit))
		clips[components.AnimIdle] = components.NewAnimationComponent(frames, 1)
		return clips
	}

	for clipName, clipCfg := range unitCfg.Clips {
		state, ok := animStateFromName(clipName)
		if !ok {
			log.Printf("[ResourceManager] Unknown animation state %q for unit %q, skipping", clipName, unit)
			continue
		}

		frames := rm.loadClipFrames(unit, unitCfg, clipCfg)
		clips[state] = components.NewAnimationComponent(frames, clipCfg.FrameDuration)
	}

	return clips
}

// loadClipFrames 从精灵表切出动画帧，失败时回退占位帧
func (rm *ResourceManager) loadClipFrames(unit string, unitCfg config.UnitAnimationConfig, clipCfg config.ClipConfig) []*ebiten.Image {
	sheetPath := unitImagePath(unit, clipCfg.File)

	data, err := embedded.ReadFile(sheetPath)
	if err != nil {
		log.Printf("[ResourceManager] Sprite sheet %s missing, using placeholder frames", sheetPath)
		return placeholderFrames(clipCfg.FrameCount, unitCfg.FrameWidth, unitCfg.FrameHeight, unitColor(unit))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[ResourceManager] Failed to decode sprite sheet %s: %v, using placeholder frames", sheetPath, err)
		return placeholderFrames(clipCfg.FrameCount, unitCfg.FrameWidth, unitCfg.FrameHeight, unitColor(unit))
	}

	sheet := ebiten.NewImageFromImage(img)
	frames := make([]*ebiten.Image, 0, clipCfg.FrameCount)
	for i := 0; i < clipCfg.FrameCount; i++ {
		rect := image.Rect(i*unitCfg.FrameWidth, 0, (i+1)*unitCfg.FrameWidth, unitCfg.FrameHeight)
		frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
	}
	return frames
}

// BubbleImage 返回泡泡弹体的图像（半透明圆），按需创建并缓存
func (rm *ResourceManager) BubbleImage(size float64) *ebiten.Image {
	if rm.bubbleImage != nil && rm.bubbleSize == size {
		return rm.bubbleImage
	}

	img := ebiten.NewImage(int(size), int(size))
	radius := float32(size / 2)
	vector.DrawFilledCircle(img, radius, radius, radius,
		color.RGBA{R: 200, G: 200, B: 255, A: 128}, true)

	rm.bubbleImage = img
	rm.bubbleSize = size
	return img
}

// unitImagePath 返回单元精灵表的资源路径
// 玩家贴图在 assets/images/player 下，敌人按类型分目录
func unitImagePath(unit, file string) string {
	if unit == "player" {
		return path.Join("assets/images/player", file)
	}
	return path.Join("assets/images/enemies", unit, file)
}

// unitColor 返回单元占位帧的颜色
func unitColor(unit string) color.RGBA {
	if unit == "player" {
		// 粉色占位
		return color.RGBA{R: 255, G: 192, B: 203, A: 255}
	}
	// 敌人统一红色占位
	return color.RGBA{R: 255, G: 0, B: 0, A: 255}
}

// placeholderFrames 生成指定数量的纯色占位帧
func placeholderFrames(count, width, height int, clr color.RGBA) []*ebiten.Image {
	if count < 1 {
		count = 1
	}
	frames := make([]*ebiten.Image, 0, count)
	for i := 0; i < count; i++ {
		img := ebiten.NewImage(width, height)
		img.Fill(clr)
		frames = append(frames, img)
	}
	return frames
}

// animStateFromName 将配置中的状态名映射为动画状态
func animStateFromName(name string) (components.AnimState, bool) {
	switch name {
	case "idle":
		return components.AnimIdle, true
	case "swim":
		return components.AnimSwim, true
	case "attack":
		return components.AnimAttack, true
	case "hurt":
		return components.AnimHurt, true
	case "dash":
		return components.AnimDash, true
	}
	return components.AnimIdle, false
}
