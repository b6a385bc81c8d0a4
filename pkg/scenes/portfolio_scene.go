package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/moonbloom/pkg/camera"
	"github.com/decker502/moonbloom/pkg/character"
	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/ecs"
	"github.com/decker502/moonbloom/pkg/hud"
	"github.com/decker502/moonbloom/pkg/navigation"
	"github.com/decker502/moonbloom/pkg/systems"
	"github.com/decker502/moonbloom/pkg/tween"
	"github.com/hajimehoshi/ebiten/v2"
)

// PortfolioOptions 作品集场景选项
type PortfolioOptions struct {
	// StartSection 加载完成后跳转到的分区，<0 表示停在首屏
	StartSection int
	// Character 正在加载角色的加载器，nil 表示没有角色
	Character *character.Loader
	// Input 输入源，nil 时使用 EbitenInput
	Input InputSource
}

// PortfolioScene 3D 作品集主场景
//
// 每个逻辑帧的顺序：
//  1. 轮询角色加载结果
//  2. 读取输入并交给滚轮/按键适配器、链接点击（加载遮罩显示时忽略点击）
//  3. 推进镜头补间（可能触发导航完成回调）
//  4. 推进环境动画和花瓣
//  5. 推进 HUD 进度条
type PortfolioScene struct {
	cfg *config.PortfolioConfig

	camera    *camera.Camera
	driver    *tween.Driver
	navigator *navigation.Navigator
	wheel     *navigation.WheelAdapter
	keys      *navigation.KeyAdapter
	hud       *hud.HUD
	input     InputSource
	clock     *sceneClock

	entityManager *ecs.EntityManager
	world         *World
	ambient       *systems.AmbientSystem
	petals        *systems.PetalDriftSystem
	render        *systems.RenderSystem

	loader       *character.Loader
	startSection int
}

// NewPortfolioScene 按配置创建场景
func NewPortfolioScene(cfg *config.PortfolioConfig, tex Textures, opts PortfolioOptions) (*PortfolioScene, error) {
	ic := cfg.Scene.InitialCamera
	cam := camera.New(ic.Position.Mgl(), ic.LookAt.Mgl(), float32(cfg.Window.Width)/float32(cfg.Window.Height))
	driver := tween.NewDriver(cam)

	sections := make([]hud.Section, len(cfg.Sections))
	titles := cfg.SectionTitles()
	for i, s := range cfg.Sections {
		sections[i] = hud.Section{ID: s.ID, Title: titles[i], Subtitle: s.Subtitle, Body: s.Body}
	}
	h := hud.New(sections, hud.Options{ShowFPS: cfg.HUD.ShowFPS})

	nav, err := navigation.NewNavigator(cfg.CameraPoses(), navigation.Options{
		Duration: cfg.Transition.Duration(),
		Easing:   cfg.Transition.Easing,
		OnLookAt: cam.LookAt,
	}, driver, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create navigator: %w", err)
	}

	input := opts.Input
	if input == nil {
		input = EbitenInput{}
	}
	clock := &sceneClock{start: time.Now()}

	em := ecs.NewEntityManager()
	s := &PortfolioScene{
		cfg:           cfg,
		camera:        cam,
		driver:        driver,
		navigator:     nav,
		wheel:         navigation.NewWheelAdapter(nav, clock, cfg.Input.WheelDebounce()),
		keys:          navigation.NewKeyAdapter(nav, cfg.Input.NextKeys, cfg.Input.PreviousKeys),
		hud:           h,
		input:         input,
		clock:         clock,
		entityManager: em,
		world:         BuildWorld(em, cfg.Scene, tex),
		ambient:       systems.NewAmbientSystem(em),
		petals:        systems.NewPetalDriftSystem(em),
		render:        systems.NewRenderSystem(em, cam, systems.DefaultLighting(float32(cfg.Scene.FogDensity))),
		loader:        opts.Character,
		startSection:  opts.StartSection,
	}

	if s.loader != nil {
		h.SetLoading(true)
	} else {
		s.onLoaded()
	}

	log.Printf("[PortfolioScene] %d sections, %d entities", nav.SectionCount(), em.Count())
	return s, nil
}

// Navigator 场景使用的导航器
func (s *PortfolioScene) Navigator() *navigation.Navigator {
	return s.navigator
}

// HUD 场景使用的 HUD
func (s *PortfolioScene) HUD() *hud.HUD {
	return s.hud
}

// Camera 场景镜头
func (s *PortfolioScene) Camera() *camera.Camera {
	return s.camera
}

// World 场景实体
func (s *PortfolioScene) World() *World {
	return s.world
}

// Resize 实现 game.Resizable
func (s *PortfolioScene) Resize(width, height int) {
	if height > 0 {
		s.camera.SetAspect(float32(width) / float32(height))
	}
	s.hud.Layout(width, height)
}

// Update 推进一帧
func (s *PortfolioScene) Update(deltaTime float64) {
	s.clock.advance(deltaTime)

	loading := s.hud.Loading()
	if loading {
		s.pollCharacter()
	}
	// 加载遮罩下滚轮和按键照常生效，点击落在遮罩上
	s.handleInput(!loading)
	s.wheel.Update()

	s.driver.Update(deltaTime)

	now := s.clock.Millis()
	s.ambient.Update(now)
	s.petals.Update(now)

	s.hud.Update()
}

func (s *PortfolioScene) pollCharacter() {
	s.hud.SetLoadingProgress(s.loader.Progress())
	res, ok := s.loader.Poll()
	if !ok {
		return
	}
	if res.Image != nil {
		s.world.AddCharacter(s.entityManager, ebiten.NewImageFromImage(res.Image))
	}
	// 加载失败也隐藏遮罩，场景照常显示
	s.onLoaded()
}

func (s *PortfolioScene) onLoaded() {
	s.hud.SetLoading(false)
	if s.startSection >= 0 {
		log.Printf("[PortfolioScene] start section %d", s.startSection)
		s.navigator.RequestSection(s.startSection)
		s.startSection = -1
	}
}

func (s *PortfolioScene) handleInput(clicks bool) {
	if dy := s.input.WheelDeltaY(); dy != 0 {
		s.wheel.OnWheel(dy)
	}
	for _, key := range s.input.JustPressedKeys() {
		s.keys.OnKey(key)
	}
	if clicked, x, y := s.input.JustClicked(); clicked && clicks {
		if target, ok := s.hud.HitTest(float64(x), float64(y)); ok {
			navigation.Activate(s.navigator, target)
		}
	}
}

// Draw 绘制场景和 HUD
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)
	s.hud.Draw(screen, time.Now())
}
