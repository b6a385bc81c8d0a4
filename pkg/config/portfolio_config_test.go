package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const minimalYAML = `
sections:
  - id: home
    camera:
      position: { x: 0, y: 2, z: 0 }
      lookAt: { x: 0, y: 0, z: 0 }
  - id: about
    title: About
    camera:
      position: { x: -3, y: 1, z: 4 }
      lookAt: { x: 0, y: 1, z: 0 }
`

// TestLoadBundledConfig 仓库自带的配置必须能通过验证
func TestLoadBundledConfig(t *testing.T) {
	cfg, err := LoadPortfolioConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("failed to load bundled config: %v", err)
	}

	if len(cfg.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(cfg.Sections))
	}

	wantPoses := [][2]mgl32.Vec3{
		{{0, 2, 0}, {0, 0, 0}},
		{{-3, 1, 4}, {0, 1, 0}},
		{{0, 8, 22}, {0, 0, 0}},
		{{2, 0, 10}, {0, 1, 0}},
	}
	poses := cfg.CameraPoses()
	for i, want := range wantPoses {
		if poses[i].Position != want[0] || poses[i].LookAt != want[1] {
			t.Errorf("section %d pose = %v -> %v, want %v -> %v",
				i, poses[i].Position, poses[i].LookAt, want[0], want[1])
		}
	}

	if cfg.Transition.Duration() != 2*time.Second {
		t.Errorf("transition duration = %v, want 2s", cfg.Transition.Duration())
	}
	if cfg.Transition.Easing != "power3.inOut" {
		t.Errorf("easing = %q, want power3.inOut", cfg.Transition.Easing)
	}
	if cfg.Input.WheelDebounce() != 50*time.Millisecond {
		t.Errorf("wheel debounce = %v, want 50ms", cfg.Input.WheelDebounce())
	}
}

// TestParseAppliesDefaults 未写出的字段保持默认值
func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := ParsePortfolioConfig([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := DefaultPortfolioConfig()
	if cfg.Transition != def.Transition {
		t.Errorf("transition = %+v, want defaults %+v", cfg.Transition, def.Transition)
	}
	if cfg.Scene.StarCount != 6000 || cfg.Scene.PetalCount != 150 {
		t.Errorf("scene counts = %d/%d, want 6000/150", cfg.Scene.StarCount, cfg.Scene.PetalCount)
	}
	if cfg.Scene.InitialCamera.Position != (Vec3{0, 2, 18}) {
		t.Errorf("initial camera = %+v, want (0, 2, 18)", cfg.Scene.InitialCamera.Position)
	}
	if cfg.Window.MinDesktopWidth != 1024 {
		t.Errorf("min desktop width = %d, want 1024", cfg.Window.MinDesktopWidth)
	}

	titles := cfg.SectionTitles()
	if titles[0] != "home" || titles[1] != "About" {
		t.Errorf("titles = %v, want [home About]", titles)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PortfolioConfig)
		wantErr string
	}{
		{"有效配置", func(c *PortfolioConfig) {}, ""},
		{"没有分区", func(c *PortfolioConfig) { c.Sections = nil }, "at least one section"},
		{"空 id", func(c *PortfolioConfig) { c.Sections[1].ID = "" }, "id is empty"},
		{"重复 id", func(c *PortfolioConfig) { c.Sections[1].ID = "home" }, "duplicate id"},
		{"时长为 0", func(c *PortfolioConfig) { c.Transition.DurationSeconds = 0 }, "duration must be positive"},
		{"未知缓动", func(c *PortfolioConfig) { c.Transition.Easing = "bounce.wobble" }, "unknown transition easing"},
		{"负的防抖", func(c *PortfolioConfig) { c.Input.WheelDebounceMs = -1 }, "wheel debounce"},
		{"窗口尺寸", func(c *PortfolioConfig) { c.Window.Width = 0 }, "window size"},
		{"负的数量", func(c *PortfolioConfig) { c.Scene.StarCount = -1 }, "particle counts"},
		{"地形分段", func(c *PortfolioConfig) { c.Scene.TerrainSegments = 0 }, "terrain invalid"},
		{"雾密度", func(c *PortfolioConfig) { c.Scene.FogDensity = -0.1 }, "fog density"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParsePortfolioConfig([]byte(minimalYAML))
			if err != nil {
				t.Fatalf("base config invalid: %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := ParsePortfolioConfig([]byte("sections: [")); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed yaml: got %v", err)
	}
	if _, err := ParsePortfolioConfig([]byte("window: {}")); err == nil || !strings.Contains(err.Error(), "invalid portfolio config") {
		t.Errorf("config without sections: got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadPortfolioConfig(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
