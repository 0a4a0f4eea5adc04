package scenes

import (
	"testing"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/gonewx/aqua/pkg/game"
	"github.com/gonewx/aqua/pkg/utils"
)

func newTestScene(t *testing.T) *GameScene {
	t.Helper()

	rm := game.NewResourceManager(config.DefaultAnimationConfig())
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	scene, err := NewGameScene(rm, sm, config.DefaultGameplayConfig(), config.DefaultEnemyConfig())
	if err != nil {
		t.Fatalf("NewGameScene() error: %v", err)
	}
	return scene
}

// TestNewGameSceneInitialState 测试场景初始状态和开局实体
func TestNewGameSceneInitialState(t *testing.T) {
	scene := newTestScene(t)

	if got := scene.StateManager().CurrentState(); got != game.StateTitle {
		t.Errorf("initial state: got %v, want %v", got, game.StateTitle)
	}

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](scene.entityManager)
	if len(players) != 1 {
		t.Errorf("player count: got %d, want 1", len(players))
	}

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](scene.entityManager)
	if len(enemies) != len(config.DefaultEnemyConfig().Spawns) {
		t.Errorf("enemy count: got %d, want %d", len(enemies), len(config.DefaultEnemyConfig().Spawns))
	}
}

// TestPlayingTickFiresBubble 测试游玩 tick 中发射键产出泡泡
func TestPlayingTickFiresBubble(t *testing.T) {
	scene := newTestScene(t)

	scene.keys = utils.KeyState{Fire: true}
	scene.updatePlaying()

	bubbles := ecs.GetEntitiesWith1[*components.BubbleComponent](scene.entityManager)
	if len(bubbles) != 1 {
		t.Fatalf("bubble count: got %d, want 1", len(bubbles))
	}

	// 寿命耗尽后泡泡在 tick 末尾被移除
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](scene.entityManager, bubbles[0])
	lifetime.RemainingTicks = 1

	scene.keys = utils.KeyState{}
	scene.updatePlaying()

	if scene.entityManager.Exists(bubbles[0]) {
		t.Error("expired bubble still exists after a full tick")
	}
}

// TestPlayerDeathRequestsGameOver 测试玩家生命归零时请求切换到结算状态
func TestPlayerDeathRequestsGameOver(t *testing.T) {
	scene := newTestScene(t)

	health, ok := ecs.GetComponent[*components.HealthComponent](scene.entityManager, scene.playerID)
	if !ok {
		t.Fatal("player has no HealthComponent")
	}
	health.CurrentHealth = 0

	scene.keys = utils.KeyState{}
	scene.updatePlaying()

	if !scene.StateManager().IsTransitioning() {
		t.Error("expected a state transition after player death")
	}
}

// TestResetWorldRestoresFullState 测试重开一局后世界回到满状态
func TestResetWorldRestoresFullState(t *testing.T) {
	scene := newTestScene(t)

	health, _ := ecs.GetComponent[*components.HealthComponent](scene.entityManager, scene.playerID)
	health.CurrentHealth = 1
	player, _ := ecs.GetComponent[*components.PlayerComponent](scene.entityManager, scene.playerID)
	player.Oxygen = 0

	scene.resetWorld()

	newHealth, ok := ecs.GetComponent[*components.HealthComponent](scene.entityManager, scene.playerID)
	if !ok {
		t.Fatal("player missing after resetWorld")
	}
	if newHealth.CurrentHealth != newHealth.MaxHealth {
		t.Errorf("health after reset: got %d, want %d", newHealth.CurrentHealth, newHealth.MaxHealth)
	}

	newPlayer, _ := ecs.GetComponent[*components.PlayerComponent](scene.entityManager, scene.playerID)
	if newPlayer.Oxygen != newPlayer.MaxOxygen {
		t.Errorf("oxygen after reset: got %v, want %v", newPlayer.Oxygen, newPlayer.MaxOxygen)
	}

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](scene.entityManager)
	if len(enemies) != len(config.DefaultEnemyConfig().Spawns) {
		t.Errorf("enemy count after reset: got %d, want %d",
			len(enemies), len(config.DefaultEnemyConfig().Spawns))
	}
}

// TestPlayingTickOrderRemovesDeadEnemyAtEnd 测试整个 tick 内敌人死亡的延迟移除
func TestPlayingTickOrderRemovesDeadEnemyAtEnd(t *testing.T) {
	scene := newTestScene(t)

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](scene.entityManager)
	if len(enemies) == 0 {
		t.Fatal("no enemies in fresh world")
	}
	target := enemies[0]

	// 把敌人的血量压到一击必杀，再把玩家移到它旁边朝右开火
	health, _ := ecs.GetComponent[*components.HealthComponent](scene.entityManager, target)
	health.CurrentHealth = 1
	enemyPos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, target)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.playerID)
	playerPos.X, playerPos.Y = enemyPos.X-10, enemyPos.Y

	// 玩家暂时无敌，隔离接触伤害对本测试的干扰
	player, _ := ecs.GetComponent[*components.PlayerComponent](scene.entityManager, scene.playerID)
	player.IsInvincible = true
	player.InvincibleTicks = 10

	scene.keys = utils.KeyState{Fire: true}
	scene.updatePlaying()

	if scene.entityManager.Exists(target) {
		t.Error("defeated enemy still exists after the tick completed")
	}
}
