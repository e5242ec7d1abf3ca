// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/embedded"
	"github.com/decker502/pagerdots/pkg/game"
	"github.com/decker502/pagerdots/pkg/render"
	"github.com/decker502/pagerdots/pkg/scenes"
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 嵌入的默认配置路径
const indicatorConfigPath = "data/indicator.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指示器配置文件路径，为空则使用嵌入的 data/indicator.yaml
	ConfigPath string
	// Variant 只显示某种指示器变体（"dots" / "worm"），为空则使用存档中的偏好
	Variant string
	// AppName gdata 存储使用的应用名，为空则为 "pagerdots"
	AppName string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	indicatorConfig, err := loadIndicatorConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("指示器配置加载失败: %w", err)
	}

	if cfg.Variant != "" {
		if _, err := render.ParseVariant(cfg.Variant); err != nil {
			return nil, err
		}
	}

	settings := game.NewSettingsManager(openStorage(cfg.AppName))
	variant := settings.GetSettings().Variant
	if cfg.Variant != "" {
		variant = cfg.Variant
		settings.SetVariant(variant)
	}
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != scenes.SceneGallery {
			return nil
		}
		scene, err := scenes.NewGalleryScene(indicatorConfig, settings, variant)
		if err != nil {
			log.Printf("[App] Failed to create gallery scene: %v", err)
			return nil
		}
		return scene
	})

	if !sceneManager.Load(scenes.SceneGallery) {
		return nil, fmt.Errorf("failed to create scene %q", scenes.SceneGallery)
	}

	log.Printf("[App] Started with %d pages, variant filter %q", indicatorConfig.PageCount, variant)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// loadIndicatorConfig 优先读取文件，否则读取嵌入配置，嵌入资源不可用时使用默认值
func loadIndicatorConfig(path string) (*config.IndicatorConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载指示器配置: %s", path)
		return config.LoadIndicatorConfig(path)
	}

	data, err := embedded.ReadFile(indicatorConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return config.DefaultIndicatorConfig(), nil
	}
	return config.ParseIndicatorConfig(data)
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage(appName string) *gdata.Manager {
	if appName == "" {
		appName = "pagerdots"
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		}
		a.settings.SetFullscreen(fullscreen)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存当前场景状态（窗口关闭后调用）
func (a *App) Shutdown() {
	if !a.sceneManager.SaveCurrent() {
		log.Printf("[App] Warning: failed to save state on exit")
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
