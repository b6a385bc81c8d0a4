package scenes

import (
	"io/fs"
	"log"
	"time"

	"github.com/decker502/moonbloom/pkg/character"
	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/game"
	"github.com/decker502/moonbloom/pkg/hud"
	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/decker502/moonbloom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingOptions 加载场景选项
type LoadingOptions struct {
	// AssetFS 角色贴图所在的文件系统
	AssetFS fs.FS
	// StartSection 见 PortfolioOptions.StartSection
	StartSection int
	// Texture 花田纹理参数，零值使用 procgen.DefaultFlowerTexture
	Texture procgen.FlowerTextureOptions
}

// LoadingScene 启动时显示，后台生成程序化纹理并开始加载角色
//
// 纹理就绪后切换到 PortfolioScene；角色可能仍在加载，由 PortfolioScene 的加载遮罩继续等待。
// 第一次拿到窗口尺寸时判断是否为小屏或移动设备，是则切换到 NoticeScene。
type LoadingScene struct {
	cfg          *config.PortfolioConfig
	sceneManager *game.SceneManager
	opts         LoadingOptions

	hud    *hud.HUD
	assets chan *Assets
	loader *character.Loader

	started   time.Time
	sized     bool
	width     int
	done      bool
	spinPhase float64
}

// NewLoadingScene 创建加载场景并立即开始后台生成
func NewLoadingScene(cfg *config.PortfolioConfig, sm *game.SceneManager, opts LoadingOptions) *LoadingScene {
	if opts.Texture.Size == 0 {
		opts.Texture = procgen.DefaultFlowerTexture
	}

	s := &LoadingScene{
		cfg:          cfg,
		sceneManager: sm,
		opts:         opts,
		hud:          hud.New(nil, hud.Options{}),
		assets:       make(chan *Assets, 1),
		started:      time.Now(),
	}

	go func(seed uint64, texOpts procgen.FlowerTextureOptions) {
		s.assets <- GenerateAssets(procgen.NewRand(seed), texOpts)
	}(cfg.Scene.Seed, opts.Texture)

	// 角色与纹理并行加载
	if cfg.Scene.Character != "" && opts.AssetFS != nil {
		s.loader = character.NewLoader(opts.AssetFS)
		s.loader.Load(cfg.Scene.Character)
	}
	return s
}

// Resize 实现 game.Resizable
func (s *LoadingScene) Resize(width, _ int) {
	s.width = width
	s.sized = true
}

// Update 等待纹理生成完毕
func (s *LoadingScene) Update(deltaTime float64) {
	if s.done {
		return
	}
	s.spinPhase += deltaTime

	if s.sized && utils.ShouldShowNotice(s.width, s.cfg.Window.MinDesktopWidth) {
		log.Printf("[LoadingScene] width %d below %d or mobile, showing notice", s.width, s.cfg.Window.MinDesktopWidth)
		s.done = true
		s.sceneManager.SwitchTo(NewNoticeScene(s.hud))
		return
	}

	select {
	case assets := <-s.assets:
		log.Printf("[LoadingScene] textures ready in %v", time.Since(s.started).Round(time.Millisecond))
		s.done = true

		scene, err := NewPortfolioScene(s.cfg, assets.Upload(), PortfolioOptions{
			StartSection: s.opts.StartSection,
			Character:    s.loader,
		})
		if err != nil {
			// 日志默认关闭，错误直接显示在提示页上
			log.Printf("[LoadingScene] 创建作品集场景失败: %v", err)
			s.sceneManager.SwitchTo(NewErrorScene(s.hud, err))
			return
		}
		s.sceneManager.SwitchTo(scene)
	default:
	}
}

// Draw 显示加载遮罩
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	dots := int(s.spinPhase*3) % 4
	label := "Loading" + "..."[:dots]
	progress := -1.0
	if s.loader != nil {
		progress = s.loader.Progress()
	}
	s.hud.DrawLoading(screen, label, progress)
}
