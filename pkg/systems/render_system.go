package systems

import (
	"sort"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 负责把所有可见实体绘制到屏幕上
//
// 实体位置是贴图中心，绘制时换算到左上角；朝左的角色在绘制时
// 水平镜像，镜像只作用于绘制矩阵，不改动任何组件状态
type RenderSystem struct {
	em *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{em: em}
}

// Draw 绘制所有拥有位置和图像的实体
// 角色（动画实体）先画，弹体（静态贴图实体）后画，同类内按实体ID排序保证稳定
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawAnimated(screen)
	s.drawSprites(screen)
}

// drawAnimated 绘制拥有角色动画组件的实体的当前帧
func (s *RenderSystem) drawAnimated(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[
		*components.CharacterAnimationComponent,
		*components.PositionComponent,
	](s.em)
	sortEntityIDs(ids)

	for _, id := range ids {
		anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}

		img := anim.CurrentImage()
		if img == nil {
			continue
		}

		clip := anim.Clips[anim.Current]
		drawCentered(screen, img, pos.X, pos.Y, clip != nil && !clip.FacingRight)
	}
}

// drawSprites 绘制拥有静态贴图组件的实体
func (s *RenderSystem) drawSprites(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[
		*components.SpriteComponent,
		*components.PositionComponent,
	](s.em)
	sortEntityIDs(ids)

	for _, id := range ids {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
		if !ok || sprite.Image == nil {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}

		drawCentered(screen, sprite.Image, pos.X, pos.Y, false)
	}
}

// drawCentered 以 (x, y) 为中心绘制图像，可选水平镜像
func drawCentered(screen, img *ebiten.Image, x, y float64, mirror bool) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(x-w/2, y-h/2)
	screen.DrawImage(img, op)
}

// sortEntityIDs 按实体ID升序排序，保证绘制顺序稳定
func sortEntityIDs(ids []ecs.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
