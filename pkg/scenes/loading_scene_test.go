package scenes

import (
	"strings"
	"testing"
	"time"

	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/game"
	"github.com/decker502/moonbloom/pkg/procgen"
)

var tinyTexture = procgen.FlowerTextureOptions{Size: 16, Strokes: 4, Flowers: 2}

// waitSwitch 驱动加载场景直到场景管理器切换到下一个场景
func waitSwitch(t *testing.T, sm *game.SceneManager, loading *LoadingScene) game.Scene {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for sm.GetCurrentScene() == loading {
		if time.Now().After(deadline) {
			t.Fatal("loading scene never switched")
		}
		sm.Update(frame)
		time.Sleep(time.Millisecond)
	}
	return sm.GetCurrentScene()
}

func TestLoadingSceneTransitions(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		sections  bool
		wantTitle string // 空表示期望 PortfolioScene
	}{
		{"桌面宽度进入主场景", 1280, true, ""},
		{"小屏显示提示", 800, true, noticeTitle},
		{"场景创建失败显示错误", 1280, false, errorTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			if !tt.sections {
				// 绕过配置验证，构造无法创建导航的配置
				cfg.Sections = []config.SectionConfig{}
			}

			sm := game.NewSceneManager()
			loading := NewLoadingScene(cfg, sm, LoadingOptions{StartSection: -1, Texture: tinyTexture})
			sm.SwitchTo(loading)
			sm.Resize(tt.width, 720)

			next := waitSwitch(t, sm, loading)

			if tt.wantTitle == "" {
				if _, ok := next.(*PortfolioScene); !ok {
					t.Fatalf("switched to %T, want *PortfolioScene", next)
				}
				return
			}
			notice, ok := next.(*NoticeScene)
			if !ok {
				t.Fatalf("switched to %T, want *NoticeScene", next)
			}
			if notice.Title() != tt.wantTitle || len(notice.Lines()) == 0 {
				t.Errorf("notice = %q %q", notice.Title(), notice.Lines())
			}
		})
	}
}

func TestErrorSceneShowsCause(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sections = []config.SectionConfig{}

	sm := game.NewSceneManager()
	loading := NewLoadingScene(cfg, sm, LoadingOptions{StartSection: -1, Texture: tinyTexture})
	sm.SwitchTo(loading)

	notice, ok := waitSwitch(t, sm, loading).(*NoticeScene)
	if !ok {
		t.Fatalf("switched to %T, want *NoticeScene", sm.GetCurrentScene())
	}
	if !strings.Contains(notice.Lines()[0], "navigator") {
		t.Errorf("error line %q does not name the failure", notice.Lines()[0])
	}

	// 切换后加载场景不再工作
	loading.Update(frame)
	if sm.GetCurrentScene() != notice {
		t.Error("loading scene switched twice")
	}
}
