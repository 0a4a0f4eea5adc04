// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/game"
	"github.com/gonewx/aqua/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 启动时直接进入全屏（覆盖已保存的设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene           *scenes.GameScene
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置文件缺失或非法时回退到默认值，不阻止游戏启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 跨平台设置存储，打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "aqua_adventure"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}

	gameplay := loadGameplayOrDefault("assets/config/gameplay.yaml")
	enemyConfig := loadEnemiesOrDefault("assets/config/enemies.yaml")
	animations := loadAnimationsOrDefault("assets/config/animations.yaml")

	resourceManager := game.NewResourceManager(animations)

	scene, err := scenes.NewGameScene(resourceManager, settingsManager, gameplay, enemyConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Initialized")
	return &App{
		scene:           scene,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏，结果写回设置并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// H 切换状态条显示
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.settingsManager.SetShowHUD(!a.settingsManager.GetSettings().ShowHUD)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Failed to save settings: %v", err)
		}
	}

	a.scene.Update()
	return nil
}

// toggleFullscreen 切换全屏状态
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Render(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// loadGameplayOrDefault 加载玩法配置，失败时回退默认值
func loadGameplayOrDefault(path string) *config.GameplayConfig {
	cfg, err := config.LoadGameplayConfig(path)
	if err != nil {
		log.Printf("[App] Warning: %v (using default gameplay config)", err)
		return config.DefaultGameplayConfig()
	}
	return cfg
}

// loadEnemiesOrDefault 加载敌人配置，失败时回退默认值
func loadEnemiesOrDefault(path string) *config.EnemyConfig {
	cfg, err := config.LoadEnemyConfig(path)
	if err != nil {
		log.Printf("[App] Warning: %v (using default enemy config)", err)
		return config.DefaultEnemyConfig()
	}
	return cfg
}

// loadAnimationsOrDefault 加载动画配置，失败时回退默认值
func loadAnimationsOrDefault(path string) *config.AnimationConfig {
	cfg, err := config.LoadAnimationConfig(path)
	if err != nil {
		log.Printf("[App] Warning: %v (using default animation config)", err)
		return config.DefaultAnimationConfig()
	}
	return cfg
}
