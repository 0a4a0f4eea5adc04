package systems

import (
	"testing"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/gonewx/aqua/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// nilBubbleImage 测试用的泡泡图像桩，不触碰图形上下文
type nilBubbleImage struct{}

func (nilBubbleImage) BubbleImage(size float64) *ebiten.Image { return nil }

// newTestPlayer 用默认玩法配置创建玩家实体
func newTestPlayer(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.CreatePlayer(em, nil, config.DefaultGameplayConfig(), x, y)
	if err != nil {
		t.Fatalf("CreatePlayer() error: %v", err)
	}
	return id
}

// newTestJellyfish 用默认敌人配置创建一只水母
func newTestJellyfish(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()
	stats := config.DefaultEnemyConfig().Enemies["jellyfish"]
	id, err := entities.CreateEnemy(em, nil, "jellyfish", stats, x, y)
	if err != nil {
		t.Fatalf("CreateEnemy() error: %v", err)
	}
	return id
}

// newTestBasicEnemy 创建一只直接追踪的基础敌人
func newTestBasicEnemy(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()
	stats := config.EnemyStats{
		Health:     5,
		Damage:     10,
		MoveSpeed:  2.0,
		SpriteSize: 32,
	}
	id, err := entities.CreateEnemy(em, nil, "basic", stats, x, y)
	if err != nil {
		t.Fatalf("CreateEnemy() error: %v", err)
	}
	return id
}

// newTestClips 创建一套不含真实图像的动画片段
func newTestClips(states ...components.AnimState) map[components.AnimState]*components.AnimationComponent {
	clips := make(map[components.AnimState]*components.AnimationComponent)
	for _, s := range states {
		clips[s] = components.NewAnimationComponent(nil, 1)
	}
	return clips
}

// playerOf 读取玩家组件，缺失时直接失败
func playerOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PlayerComponent {
	t.Helper()
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PlayerComponent", id)
	}
	return player
}

// movementOf 读取运动组件，缺失时直接失败
func movementOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.MovementComponent {
	t.Helper()
	movement, ok := ecs.GetComponent[*components.MovementComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no MovementComponent", id)
	}
	return movement
}

// positionOf 读取位置组件，缺失时直接失败
func positionOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

// healthOf 读取生命组件，缺失时直接失败
func healthOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no HealthComponent", id)
	}
	return health
}
