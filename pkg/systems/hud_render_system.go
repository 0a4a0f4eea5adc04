package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 状态条布局
const (
	hudBarX      = 10
	hudBarWidth  = 200
	hudBarHeight = 20
	hudBarGap    = 30
)

// HUDRenderSystem 绘制玩家的三条状态条
// 从上到下依次是生命（红）、体力（绿）、氧气（蓝）
type HUDRenderSystem struct {
	em   *ecs.EntityManager
	face text.Face
}

// NewHUDRenderSystem 创建 HUD 渲染系统
//
// 参数:
//   - em: 实体管理器
//   - face: 状态条标签的字体，可为 nil（不绘制标签）
func NewHUDRenderSystem(em *ecs.EntityManager, face text.Face) *HUDRenderSystem {
	return &HUDRenderSystem{
		em:   em,
		face: face,
	}
}

// Draw 绘制玩家的状态条
// 没有玩家实体时不绘制任何内容
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	players := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.HealthComponent,
	](s.em)

	for _, id := range players {
		player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		if !ok {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
		if !ok {
			continue
		}

		s.drawBar(screen, 10, "HP",
			float64(health.CurrentHealth), float64(health.MaxHealth),
			color.RGBA{R: 220, G: 40, B: 40, A: 255})
		s.drawBar(screen, 10+hudBarGap, "STA",
			player.Stamina, player.MaxStamina,
			color.RGBA{R: 40, G: 200, B: 60, A: 255})
		s.drawBar(screen, 10+2*hudBarGap, "O2",
			player.Oxygen, player.MaxOxygen,
			color.RGBA{R: 50, G: 120, B: 230, A: 255})
		return
	}
}

// drawBar 绘制一条带标签的状态条
// 暗灰背景、按 current/max 比例的彩色填充、白色描边和数值标签
func (s *HUDRenderSystem) drawBar(screen *ebiten.Image, y float64, label string, current, max float64, clr color.RGBA) {
	vector.DrawFilledRect(screen, hudBarX, float32(y), hudBarWidth, hudBarHeight,
		color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)

	ratio := 0.0
	if max > 0 {
		ratio = current / max
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio > 0 {
		vector.DrawFilledRect(screen, hudBarX, float32(y), float32(hudBarWidth*ratio), hudBarHeight, clr, false)
	}

	vector.StrokeRect(screen, hudBarX, float32(y), hudBarWidth, hudBarHeight, 1, color.White, false)

	if s.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudBarX+hudBarWidth+8, y+2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("%s %.0f/%.0f", label, current, max), s.face, op)
}
