package scenes

import (
	"github.com/decker502/moonbloom/pkg/hud"
	"github.com/hajimehoshi/ebiten/v2"
)

// 小屏提示文案
const noticeTitle = "Best viewed on desktop"

var noticeLines = []string{
	"This portfolio renders a 3D night garden that needs a wider screen.",
	"Open it on a desktop or enlarge the window to at least 1024 pixels.",
}

const errorTitle = "The garden failed to bloom"

// NoticeScene 代替 3D 场景显示的静态提示页（小屏/移动设备，或启动失败）
type NoticeScene struct {
	hud   *hud.HUD
	title string
	lines []string
}

// NewNoticeScene 创建小屏提示页
func NewNoticeScene(h *hud.HUD) *NoticeScene {
	return &NoticeScene{hud: h, title: noticeTitle, lines: noticeLines}
}

// NewErrorScene 创建显示启动错误的提示页
func NewErrorScene(h *hud.HUD, err error) *NoticeScene {
	return &NoticeScene{hud: h, title: errorTitle, lines: []string{err.Error()}}
}

// Title 提示标题
func (s *NoticeScene) Title() string {
	return s.title
}

// Lines 提示正文
func (s *NoticeScene) Lines() []string {
	return s.lines
}

// Update 提示页没有状态
func (s *NoticeScene) Update(deltaTime float64) {}

// Draw 绘制提示文字
func (s *NoticeScene) Draw(screen *ebiten.Image) {
	s.hud.DrawMessage(screen, s.title, s.lines)
}
