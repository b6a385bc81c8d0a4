package config

import (
	"fmt"
	"os"
	"time"

	"github.com/decker502/moonbloom/pkg/navigation"
	"github.com/decker502/moonbloom/pkg/tween"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌的默认作品集配置
const DefaultConfigPath = "data/portfolio.yaml"

// PortfolioConfig 作品集页面配置
//
// 配置文件位置: data/portfolio.yaml
type PortfolioConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Sections   []SectionConfig  `yaml:"sections"`
	Transition TransitionConfig `yaml:"transition"`
	Input      InputConfig      `yaml:"input"`
	Scene      SceneConfig      `yaml:"scene"`
	HUD        HUDConfig        `yaml:"hud"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// MinDesktopWidth 低于此宽度视为移动端，只显示提示页（默认 1024）
	MinDesktopWidth int `yaml:"minDesktopWidth"`
}

// Vec3 YAML 中的三维向量 {x, y, z}
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Mgl 转换为 mgl32.Vec3
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// SectionConfig 单个内容分区
type SectionConfig struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Body     []string   `yaml:"body"`
	Camera   CameraPose `yaml:"camera"`
}

// CameraPose 分区镜头姿态
type CameraPose struct {
	Position Vec3 `yaml:"position"`
	LookAt   Vec3 `yaml:"lookAt"`
}

// TransitionConfig 分区切换动画
type TransitionConfig struct {
	DurationSeconds float64 `yaml:"durationSeconds"`
	Easing          string  `yaml:"easing"`
}

// Duration 过渡时长
func (t TransitionConfig) Duration() time.Duration {
	return time.Duration(t.DurationSeconds * float64(time.Second))
}

// InputConfig 输入适配器配置
type InputConfig struct {
	WheelDebounceMs int      `yaml:"wheelDebounceMs"`
	NextKeys        []string `yaml:"nextKeys"`
	PreviousKeys    []string `yaml:"previousKeys"`
}

// WheelDebounce 滚轮静止窗口
func (i InputConfig) WheelDebounce() time.Duration {
	return time.Duration(i.WheelDebounceMs) * time.Millisecond
}

// SceneConfig 装饰场景参数
type SceneConfig struct {
	Seed uint64 `yaml:"seed"`

	StarCount  int `yaml:"starCount"`
	PetalCount int `yaml:"petalCount"`

	TerrainSize     float64 `yaml:"terrainSize"`
	TerrainSegments int     `yaml:"terrainSegments"`

	FogDensity float64 `yaml:"fogDensity"`

	// InitialCamera 加载完成前的镜头位置（默认 (0, 2, 18) 看向原点）
	InitialCamera CameraPose `yaml:"initialCamera"`

	// Character 可选角色贴图路径，为空表示不显示角色
	Character string `yaml:"character"`
}

// HUDConfig 叠加界面配置
type HUDConfig struct {
	ShowFPS bool `yaml:"showFPS"`
}

// LoadPortfolioConfig 从磁盘加载作品集配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *PortfolioConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败
func LoadPortfolioConfig(path string) (*PortfolioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio config: %w", err)
	}
	return ParsePortfolioConfig(data)
}

// ParsePortfolioConfig 解析 YAML 数据，缺省字段使用默认值
func ParsePortfolioConfig(data []byte) (*PortfolioConfig, error) {
	cfg := DefaultPortfolioConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio config: %w", err)
	}
	return cfg, nil
}

// DefaultPortfolioConfig 返回不含分区的默认配置
func DefaultPortfolioConfig() *PortfolioConfig {
	return &PortfolioConfig{
		Window: WindowConfig{
			Title:           "Moonbloom",
			Width:           1280,
			Height:          720,
			MinDesktopWidth: 1024,
		},
		Transition: TransitionConfig{
			DurationSeconds: navigation.DefaultTransitionDuration.Seconds(),
			Easing:          navigation.DefaultEasing,
		},
		Input: InputConfig{
			WheelDebounceMs: int(navigation.DefaultWheelDebounce / time.Millisecond),
			NextKeys:        []string{navigation.KeyArrowDown},
			PreviousKeys:    []string{navigation.KeyArrowUp},
		},
		Scene: SceneConfig{
			Seed:            1,
			StarCount:       6000,
			PetalCount:      150,
			TerrainSize:     200,
			TerrainSegments: 150,
			FogDensity:      0.01,
			InitialCamera: CameraPose{
				Position: Vec3{0, 2, 18},
				LookAt:   Vec3{0, 0, 0},
			},
		},
		HUD: HUDConfig{ShowFPS: true},
	}
}

// Validate 验证配置有效性
func (c *PortfolioConfig) Validate() error {
	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}

	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: id is empty", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("section %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}

	if c.Transition.DurationSeconds <= 0 {
		return fmt.Errorf("transition duration must be positive, got %.2f", c.Transition.DurationSeconds)
	}
	if _, ok := tween.Lookup(c.Transition.Easing); !ok {
		return fmt.Errorf("unknown transition easing %q", c.Transition.Easing)
	}
	if c.Input.WheelDebounceMs < 0 {
		return fmt.Errorf("wheel debounce must not be negative, got %d", c.Input.WheelDebounceMs)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size invalid: %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Scene.StarCount < 0 || c.Scene.PetalCount < 0 {
		return fmt.Errorf("particle counts must not be negative (stars=%d, petals=%d)",
			c.Scene.StarCount, c.Scene.PetalCount)
	}
	if c.Scene.TerrainSegments < 1 || c.Scene.TerrainSize <= 0 {
		return fmt.Errorf("terrain invalid: size=%.1f segments=%d", c.Scene.TerrainSize, c.Scene.TerrainSegments)
	}
	if c.Scene.FogDensity < 0 {
		return fmt.Errorf("fog density must not be negative, got %f", c.Scene.FogDensity)
	}

	return nil
}

// CameraPoses 按分区顺序返回镜头姿态表
func (c *PortfolioConfig) CameraPoses() []navigation.CameraPose {
	poses := make([]navigation.CameraPose, len(c.Sections))
	for i, s := range c.Sections {
		poses[i] = navigation.CameraPose{
			Position: s.Camera.Position.Mgl(),
			LookAt:   s.Camera.LookAt.Mgl(),
		}
	}
	return poses
}

// SectionTitles 分区标题列表（用于导航链接）
func (c *PortfolioConfig) SectionTitles() []string {
	titles := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		titles[i] = s.Title
		if titles[i] == "" {
			titles[i] = s.ID
		}
	}
	return titles
}
