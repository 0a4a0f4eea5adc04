package entities

import (
	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/gonewx/aqua/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// BubbleParams 创建泡泡弹体所需的参数
type BubbleParams struct {
	Image     *ebiten.Image // 弹体贴图
	X         float64       // 出生点世界坐标X
	Y         float64       // 出生点世界坐标Y
	VelocityX float64       // 水平速度（像素/tick），符号决定飞行方向
	Power     int           // 命中伤害
	Lifetime  int           // 寿命（tick）
	Size      float64       // 碰撞盒边长（像素）
}

// CreateBubble 创建泡泡弹体实体
// 泡泡水平直线飞行，不受阻力衰减，寿命耗尽或离场后被移除
func CreateBubble(em *ecs.EntityManager, params BubbleParams) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: params.X,
		Y: params.Y,
	})

	em.AddComponent(id, &components.MovementComponent{
		Velocity:    utils.Vec2{X: params.VelocityX},
		Drag:        1.0,
		FacingRight: params.VelocityX >= 0,
		StopOnClamp: false,
	})

	em.AddComponent(id, &components.CollisionComponent{
		Width:  params.Size,
		Height: params.Size,
	})

	em.AddComponent(id, &components.BubbleComponent{
		Power: params.Power,
	})

	em.AddComponent(id, &components.LifetimeComponent{
		RemainingTicks: params.Lifetime,
	})

	em.AddComponent(id, &components.SpriteComponent{
		Image: params.Image,
	})

	return id
}
