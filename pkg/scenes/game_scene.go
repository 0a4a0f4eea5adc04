package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/aqua/pkg/components"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/ecs"
	"github.com/gonewx/aqua/pkg/entities"
	"github.com/gonewx/aqua/pkg/game"
	"github.com/gonewx/aqua/pkg/systems"
	"github.com/gonewx/aqua/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// 字号
const (
	titleFontSize  = 48.0
	promptFontSize = 20.0
	labelFontSize  = 14.0
)

// 玩家出生点：场景中心
const (
	playerSpawnX = config.GameWindowWidth / 2
	playerSpawnY = config.GameWindowHeight / 2
)

// GameScene 管理整个游戏的场景状态和每 tick 的系统调度
//
// 四个状态（标题、游玩、暂停、结算）的更新和渲染处理器都注册到
// 状态管理器上，状态切换经过淡入淡出过渡。暂停状态复用游玩状态的
// 渲染处理器作为背景，其更新处理器不运行，画面因此停在暂停那一帧
type GameScene struct {
	stateManager    *game.StateManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	gameplay        *config.GameplayConfig
	enemyConfig     *config.EnemyConfig

	// ECS 框架与系统
	entityManager  *ecs.EntityManager
	controlSystem  *systems.PlayerControlSystem
	behaviorSystem *systems.BehaviorSystem
	movementSystem *systems.MovementSystem
	lifetimeSystem *systems.LifetimeSystem
	physicsSystem  *systems.PhysicsSystem
	animSystem     *systems.AnimationSystem
	renderSystem   *systems.RenderSystem
	hudSystem      *systems.HUDRenderSystem

	playerID ecs.EntityID

	// 本 tick 的输入快照
	keys utils.KeyState

	// 字体资源
	titleFace  *text.GoTextFace
	promptFace *text.GoTextFace
	labelFace  *text.GoTextFace
}

// NewGameScene 创建游戏场景并注册全部状态处理器
//
// 参数:
//   - rm: 资源管理器
//   - sm: 设置管理器
//   - gameplay: 玩法数值配置
//   - enemyConfig: 敌人配置
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 字体加载失败时返回错误
func NewGameScene(rm *game.ResourceManager, sm *game.SettingsManager,
	gameplay *config.GameplayConfig, enemyConfig *config.EnemyConfig) (*GameScene, error) {

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	s := &GameScene{
		stateManager:    game.NewStateManager(),
		resourceManager: rm,
		settingsManager: sm,
		gameplay:        gameplay,
		enemyConfig:     enemyConfig,
		titleFace:       &text.GoTextFace{Source: source, Size: titleFontSize},
		promptFace:      &text.GoTextFace{Source: source, Size: promptFontSize},
		labelFace:       &text.GoTextFace{Source: source, Size: labelFontSize},
	}

	s.stateManager.RegisterHandlers(game.StateTitle, s.updateTitle, s.renderTitle)
	s.stateManager.RegisterHandlers(game.StatePlaying, s.updatePlaying, s.renderPlaying)
	s.stateManager.RegisterHandlers(game.StatePaused, s.updatePaused, s.renderPaused)
	s.stateManager.RegisterHandlers(game.StateGameOver, s.updateGameOver, s.renderGameOver)

	s.resetWorld()
	return s, nil
}

// StateManager 返回场景使用的状态管理器
func (s *GameScene) StateManager() *game.StateManager {
	return s.stateManager
}

// Update 推进场景一个 tick：读输入、路由按键、驱动状态机
func (s *GameScene) Update() {
	s.keys = utils.ReadKeyState()
	s.routeKeys()
	s.stateManager.Update()
}

// Render 绘制当前状态的画面
func (s *GameScene) Render(screen *ebiten.Image) {
	s.stateManager.Render(screen)
}

// routeKeys 处理各状态下的切换按键
// 过渡期间所有切换请求都被忽略
func (s *GameScene) routeKeys() {
	if s.stateManager.IsTransitioning() {
		return
	}

	switch s.stateManager.CurrentState() {
	case game.StateTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.resetWorld()
			s.stateManager.ChangeState(game.StatePlaying)
		}
	case game.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.stateManager.ChangeState(game.StatePaused)
		}
	case game.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.stateManager.ChangeState(game.StatePlaying)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			s.stateManager.ChangeState(game.StateTitle)
		}
	case game.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.stateManager.ChangeState(game.StateTitle)
		}
	}
}

// resetWorld 重建游戏世界：新的实体管理器、玩家和开局敌人
// 从标题进入游玩时调用，保证每局从满状态开始
func (s *GameScene) resetWorld() {
	s.entityManager = ecs.NewEntityManager()
	em := s.entityManager

	s.controlSystem = systems.NewPlayerControlSystem(em, s.resourceManager, s.gameplay.Bubble)
	s.behaviorSystem = systems.NewBehaviorSystem(em)
	s.movementSystem = systems.NewMovementSystem(em, config.ArenaBounds())
	s.lifetimeSystem = systems.NewLifetimeSystem(em, config.ArenaBounds())
	s.physicsSystem = systems.NewPhysicsSystem(em)
	s.animSystem = systems.NewAnimationSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)
	s.hudSystem = systems.NewHUDRenderSystem(em, s.labelFace)

	playerClips := s.resourceManager.LoadCharacterClips("player")
	playerID, err := entities.CreatePlayer(em, playerClips, s.gameplay, playerSpawnX, playerSpawnY)
	if err != nil {
		log.Printf("[GameScene] Failed to create player: %v", err)
	}
	s.playerID = playerID

	for _, spawn := range s.enemyConfig.Spawns {
		stats, ok := s.enemyConfig.Enemies[spawn.Type]
		if !ok {
			log.Printf("[GameScene] Unknown enemy type %q in spawn list, skipping", spawn.Type)
			continue
		}
		clips := s.resourceManager.LoadCharacterClips(spawn.Type)
		if _, err := entities.CreateEnemy(em, clips, spawn.Type, stats, spawn.X, spawn.Y); err != nil {
			log.Printf("[GameScene] Failed to create enemy %q: %v", spawn.Type, err)
		}
	}
}

// updateTitle 标题画面没有每 tick 的逻辑
func (s *GameScene) updateTitle() {}

// updatePlaying 推进游玩状态的一个逻辑 tick
//
// 系统的执行顺序固定：玩家控制 → 敌人行为 → 运动积分与边界约束 →
// 弹体寿命与离场 → 碰撞结算 → 动画推进 → 实体统一移除。
// 实体移除永远在 tick 末尾，保证本 tick 内所有系统看到同一份实体集合
func (s *GameScene) updatePlaying() {
	s.controlSystem.Update(s.keys)
	s.behaviorSystem.Update()
	s.movementSystem.Update()
	s.lifetimeSystem.Update()
	s.physicsSystem.Update()
	s.animSystem.Update()
	s.entityManager.RemoveMarkedEntities()

	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID); ok {
		if health.IsDead() {
			log.Printf("[GameScene] Player defeated, game over")
			s.stateManager.ChangeState(game.StateGameOver)
		}
	}
}

// updatePaused 暂停状态不推进任何游戏逻辑
func (s *GameScene) updatePaused() {}

// updateGameOver 结算画面没有每 tick 的逻辑
func (s *GameScene) updateGameOver() {}

// renderTitle 绘制标题画面
func (s *GameScene) renderTitle(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 40, B: 72, A: 255})
	s.drawCenteredText(screen, "AQUA ADVENTURE", s.titleFace, config.GameWindowHeight/2-60)
	s.drawCenteredText(screen, "Press SPACE to start", s.promptFace, config.GameWindowHeight/2+20)
}

// renderPlaying 绘制游玩画面：水体背景、实体和 HUD
func (s *GameScene) renderPlaying(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 64, B: 112, A: 255})
	s.renderSystem.Draw(screen)

	if s.settingsManager == nil || s.settingsManager.GetSettings().ShowHUD {
		s.hudSystem.Draw(screen)
	}
}

// renderPaused 在游玩画面之上叠加半透明遮罩和提示
// 底层画面是暂停瞬间的世界，逻辑不推进画面就不会变
func (s *GameScene) renderPaused(screen *ebiten.Image) {
	s.renderPlaying(screen)

	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight,
		color.RGBA{A: 140}, false)
	s.drawCenteredText(screen, "PAUSED", s.titleFace, config.GameWindowHeight/2-60)
	s.drawCenteredText(screen, "ESC resume / Q quit to title", s.promptFace, config.GameWindowHeight/2+20)
}

// renderGameOver 绘制结算画面
func (s *GameScene) renderGameOver(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 16, B: 32, A: 255})
	s.drawCenteredText(screen, "GAME OVER", s.titleFace, config.GameWindowHeight/2-60)
	s.drawCenteredText(screen, "Press SPACE to return to title", s.promptFace, config.GameWindowHeight/2+20)
}

// drawCenteredText 在指定高度水平居中绘制一行文字
func (s *GameScene) drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.GameWindowWidth/2, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, str, face, op)
}
