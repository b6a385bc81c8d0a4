// Package hud 绘制叠加在 3D 场景上的界面：导航链接、当前内容面板、进度条、FPS 和加载提示
package hud

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 布局常量（像素）
const (
	marginX      = 32.0
	navY         = 24.0
	navGap       = 20.0
	linkPadding  = 6.0
	panelWidth   = 420.0
	progressH    = 3.0
	titleScale   = 2.5
	subtitleGap  = 10.0
	bodyLineGap  = 6.0
	panelPadding = 20.0
)

// 界面配色
var (
	ColorText     = color.RGBA{R: 0xf0, G: 0xf4, B: 0xff, A: 0xff}
	ColorMuted    = color.RGBA{R: 0x9f, G: 0xb3, B: 0xd1, A: 0xff}
	ColorAccent   = color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}
	ColorPanel    = color.RGBA{R: 0x0a, G: 0x14, B: 0x28, A: 0xb0}
	ColorTrack    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x22}
	ColorBackdrop = color.RGBA{R: 0x0a, G: 0x14, B: 0x28, A: 0xff}
)

// Section 一个内容区块的文字
type Section struct {
	ID       string
	Title    string
	Subtitle string
	Body     []string
}

// Rect 屏幕矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 点是否在矩形内（含左上边，不含右下边）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Link 导航链接，Target 为点击后跳转的区块下标
type Link struct {
	Label  string
	Target int
	Bounds Rect
}

// Options HUD 选项
type Options struct {
	ShowFPS bool
	// SpringFrequency/SpringDamping 进度条弹簧参数，零值使用默认
	SpringFrequency float64
	SpringDamping   float64
}

// HUD 实现 navigation.PresentationSink
//
// SetActiveSection/SetProgress 只记录目标状态；进度条的显示宽度在 Update 中
// 由弹簧逐帧逼近目标。
type HUD struct {
	sections []Section
	links    []Link
	active   int

	progressTarget float64
	progressShown  float64
	progressVel    float64
	spring         harmonica.Spring

	showFPS bool
	fps     FPSCounter

	loading         bool
	loadingProgress float64

	face   *text.GoXFace
	width  int
	height int
}

// New 创建 HUD
func New(sections []Section, opts Options) *HUD {
	freq, damping := opts.SpringFrequency, opts.SpringDamping
	if freq <= 0 {
		freq = 6.0
	}
	if damping <= 0 {
		damping = 1.0
	}

	h := &HUD{
		sections: sections,
		spring:   harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), freq, damping),
		showFPS:  opts.ShowFPS,
		face:     text.NewGoXFace(basicfont.Face7x13),
		active:   -1,
	}
	h.links = make([]Link, len(sections))
	for i, s := range sections {
		h.links[i] = Link{Label: s.Title, Target: i}
	}
	return h
}

// SetActiveSection 实现 navigation.PresentationSink
func (h *HUD) SetActiveSection(index int) {
	if index < 0 || index >= len(h.sections) {
		return
	}
	h.active = index
}

// SetProgress 实现 navigation.PresentationSink
func (h *HUD) SetProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	h.progressTarget = fraction
}

// ActiveSection 当前显示的区块，尚未设置时为 -1
func (h *HUD) ActiveSection() int {
	return h.active
}

// Progress 进度条目标值
func (h *HUD) Progress() float64 {
	return h.progressTarget
}

// DisplayedProgress 进度条当前显示值
func (h *HUD) DisplayedProgress() float64 {
	return h.progressShown
}

// SetLoading 显示或隐藏加载遮罩
func (h *HUD) SetLoading(loading bool) {
	h.loading = loading
}

// SetLoadingProgress 加载遮罩上的进度 [0, 1]
func (h *HUD) SetLoadingProgress(p float64) {
	h.loadingProgress = p
}

// Loading 加载遮罩是否可见
func (h *HUD) Loading() bool {
	return h.loading
}

// Links 当前布局下的导航链接
func (h *HUD) Links() []Link {
	return h.links
}

// Layout 按屏幕尺寸排布导航链接，从右向左靠右对齐
func (h *HUD) Layout(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height

	x := float64(width) - marginX
	for i := len(h.links) - 1; i >= 0; i-- {
		w, lh := text.Measure(h.links[i].Label, h.face, 0)
		w += 2 * linkPadding
		lh += 2 * linkPadding
		x -= w
		h.links[i].Bounds = Rect{X: x, Y: navY, W: w, H: lh}
		x -= navGap
	}
}

// HitTest 返回点击位置对应链接的目标区块
func (h *HUD) HitTest(x, y float64) (int, bool) {
	for _, l := range h.links {
		if l.Bounds.Contains(x, y) {
			return l.Target, true
		}
	}
	return 0, false
}

// Update 每个逻辑帧推进一次进度条弹簧
func (h *HUD) Update() {
	h.progressShown, h.progressVel = h.spring.Update(h.progressShown, h.progressVel, h.progressTarget)
}

// Draw 绘制 HUD，now 用于统计 FPS
func (h *HUD) Draw(screen *ebiten.Image, now time.Time) {
	b := screen.Bounds()
	h.Layout(b.Dx(), b.Dy())

	h.fps.Frame(now)

	h.drawProgress(screen)
	h.drawLinks(screen)
	h.drawPanel(screen)

	if h.showFPS {
		label := fmt.Sprintf("%d FPS", h.fps.FPS())
		h.drawText(screen, label, marginX, navY+linkPadding, 1, FPSColor(h.fps.FPS()))
	}
	if h.loading {
		h.DrawLoading(screen, "Loading...", h.loadingProgress)
	}
}

func (h *HUD) drawProgress(screen *ebiten.Image) {
	w := float32(h.width)
	vector.DrawFilledRect(screen, 0, 0, w, progressH, ColorTrack, false)
	shown := h.progressShown
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}
	vector.DrawFilledRect(screen, 0, 0, w*float32(shown), progressH, ColorAccent, false)
}

func (h *HUD) drawLinks(screen *ebiten.Image) {
	for _, l := range h.links {
		c := ColorMuted
		if l.Target == h.active {
			c = ColorText
			vector.StrokeLine(screen,
				float32(l.Bounds.X+linkPadding), float32(l.Bounds.Y+l.Bounds.H),
				float32(l.Bounds.X+l.Bounds.W-linkPadding), float32(l.Bounds.Y+l.Bounds.H),
				2, ColorAccent, true)
		}
		h.drawText(screen, l.Label, l.Bounds.X+linkPadding, l.Bounds.Y+linkPadding, 1, c)
	}
}

// drawPanel 只绘制当前区块的面板
func (h *HUD) drawPanel(screen *ebiten.Image) {
	if h.active < 0 || h.active >= len(h.sections) {
		return
	}
	s := h.sections[h.active]

	_, lineH := text.Measure("M", h.face, 0)
	height := panelPadding*2 + lineH*titleScale + subtitleGap + lineH
	height += float64(len(s.Body)) * (lineH + bodyLineGap)

	x := marginX
	y := (float64(h.height) - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), panelWidth, float32(height), ColorPanel, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), 3, float32(height), ColorAccent, false)

	cy := y + panelPadding
	h.drawText(screen, s.Title, x+panelPadding, cy, titleScale, ColorText)
	cy += lineH*titleScale + subtitleGap
	h.drawText(screen, s.Subtitle, x+panelPadding, cy, 1, ColorAccent)
	cy += lineH + bodyLineGap
	for _, line := range s.Body {
		h.drawText(screen, line, x+panelPadding, cy, 1, ColorMuted)
		cy += lineH + bodyLineGap
	}
}

// DrawLoading 全屏加载遮罩，progress < 0 时不画进度条
func (h *HUD) DrawLoading(screen *ebiten.Image, label string, progress float64) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), ColorBackdrop, false)
	w, lh := text.Measure(label, h.face, 0)
	cy := (float64(b.Dy()) - lh*2) / 2
	h.drawText(screen, label, (float64(b.Dx())-w*2)/2, cy, 2, ColorText)

	if progress < 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	const barW, barH = 240.0, 4.0
	x := (float64(b.Dx()) - barW) / 2
	y := cy + lh*2 + 16
	vector.DrawFilledRect(screen, float32(x), float32(y), barW, barH, ColorTrack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW*progress), barH, ColorAccent, false)
}

// DrawMessage 居中显示一段多行文字（小屏提示页）
func (h *HUD) DrawMessage(screen *ebiten.Image, title string, lines []string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), ColorBackdrop, false)

	_, lineH := text.Measure("M", h.face, 0)
	total := lineH*2 + subtitleGap + float64(len(lines))*(lineH+bodyLineGap)
	y := (float64(b.Dy()) - total) / 2

	tw, _ := text.Measure(title, h.face, 0)
	h.drawText(screen, title, (float64(b.Dx())-tw*2)/2, y, 2, ColorAccent)
	y += lineH*2 + subtitleGap
	for _, line := range lines {
		lw, _ := text.Measure(line, h.face, 0)
		h.drawText(screen, line, (float64(b.Dx())-lw)/2, y, 1, ColorText)
		y += lineH + bodyLineGap
	}
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, h.face, op)
}
