// Package app 提供作品集应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/embedded"
	"github.com/decker502/moonbloom/pkg/game"
	"github.com/decker502/moonbloom/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Portfolio 已验证的作品集配置，nil 时使用内嵌默认配置
	Portfolio *config.PortfolioConfig
	// StartSection 加载完成后请求的分区，<0 表示停在首屏
	StartSection int
}

// App 是作品集应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	portfolio                *config.PortfolioConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 非详细模式下丢弃所有日志
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// LoadConfig 加载作品集配置
//
// path 非空时从磁盘读取（覆盖内嵌配置），否则读取内嵌的 data/portfolio.yaml。
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func LoadConfig(path string) (*config.PortfolioConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载配置文件: %s", path)
		return config.LoadPortfolioConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded portfolio config: %w", err)
	}
	log.Printf("[Config] 使用内嵌配置: %s", config.DefaultConfigPath)
	return config.ParsePortfolioConfig(data)
}

// NewApp 创建并初始化作品集应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	portfolio := cfg.Portfolio
	if portfolio == nil {
		var err error
		if portfolio, err = LoadConfig(""); err != nil {
			return nil, err
		}
	}

	log.Printf("[App] %q: %d sections, start section %d",
		portfolio.Window.Title, len(portfolio.Sections), cfg.StartSection)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewLoadingScene(portfolio, sceneManager, scenes.LoadingOptions{
		AssetFS:      embedded.FS(),
		StartSection: cfg.StartSection,
	}))

	return &App{
		sceneManager: sceneManager,
		portfolio:    portfolio,
		verbose:      cfg.Verbose,
	}, nil
}

// WindowConfig 返回窗口配置（供 main 设置窗口标题和初始尺寸）
func (a *App) WindowConfig() config.WindowConfig {
	return a.portfolio.Window
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w := a.portfolio.Window
			ebiten.SetWindowSize(w.Width, w.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w.Width, w.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
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

// Layout 逻辑尺寸跟随窗口尺寸，场景据此更新镜头宽高比和 HUD 布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.portfolio.Window.Width, a.portfolio.Window.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
