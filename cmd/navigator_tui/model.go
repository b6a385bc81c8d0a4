package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/navigation"
	"github.com/decker502/moonbloom/pkg/tween"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	tickRate    = time.Second / 60
	barWidth    = 32
	wheelStep   = 100 // 一格滚轮对应的 deltaY
	maxTickStep = 0.1 // 秒，终端卡顿时限制单帧推进量
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6b9d"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a94b8"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b3d9ff"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#44ddff")).Padding(0, 1)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// virtualCamera 只记录位置和注视点的镜头
type virtualCamera struct {
	position mgl32.Vec3
	lookAt   mgl32.Vec3
}

func (c *virtualCamera) Position() mgl32.Vec3     { return c.position }
func (c *virtualCamera) SetPosition(p mgl32.Vec3) { c.position = p }
func (c *virtualCamera) LookAt(p mgl32.Vec3)      { c.lookAt = p }

// presentation 终端里的呈现层，进度条用弹簧平滑
type presentation struct {
	active int
	target float64
	shown  float64
	vel    float64
	spring harmonica.Spring
}

func newPresentation() *presentation {
	return &presentation{
		active: -1,
		spring: harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
	}
}

func (p *presentation) SetActiveSection(index int)   { p.active = index }
func (p *presentation) SetProgress(fraction float64) { p.target = fraction }

func (p *presentation) step() {
	p.shown, p.vel = p.spring.Update(p.shown, p.vel, p.target)
}

type model struct {
	titles []string

	nav    *navigation.Navigator
	driver *tween.Driver
	keys   *navigation.KeyAdapter
	wheel  *navigation.WheelAdapter
	cam    *virtualCamera
	pres   *presentation

	last time.Time
}

func newModel(cfg *config.PortfolioConfig, clock navigation.Clock) (*model, error) {
	ic := cfg.Scene.InitialCamera
	cam := &virtualCamera{position: ic.Position.Mgl(), lookAt: ic.LookAt.Mgl()}
	driver := tween.NewDriver(cam)
	pres := newPresentation()

	nav, err := navigation.NewNavigator(cfg.CameraPoses(), navigation.Options{
		Duration: cfg.Transition.Duration(),
		Easing:   cfg.Transition.Easing,
		OnLookAt: cam.LookAt,
	}, driver, pres)
	if err != nil {
		return nil, fmt.Errorf("failed to create navigator: %w", err)
	}

	return &model{
		titles: cfg.SectionTitles(),
		nav:    nav,
		driver: driver,
		keys:   navigation.NewKeyAdapter(nav, []string{"down", "j"}, []string{"up", "k"}),
		wheel:  navigation.NewWheelAdapter(nav, clock, cfg.Input.WheelDebounce()),
		cam:    cam,
		pres:   pres,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch {
		case key == "q" || key == "ctrl+c":
			return m, tea.Quit
		case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
			navigation.Activate(m.nav, int(key[0]-'1'))
		default:
			m.keys.OnKey(key)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.wheel.OnWheel(wheelStep)
		case tea.MouseButtonWheelUp:
			m.wheel.OnWheel(-wheelStep)
		}

	case tickMsg:
		now := time.Time(msg)
		dt := tickRate.Seconds()
		if !m.last.IsZero() {
			dt = min(max(now.Sub(m.last).Seconds(), 0), maxTickStep)
		}
		m.last = now

		m.wheel.Update()
		m.driver.Update(dt)
		m.pres.step()
		return m, tick()
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Moonbloom navigator"))
	b.WriteString("\n\n")

	for i, title := range m.titles {
		line := fmt.Sprintf("%d  %s", i+1, title)
		if i == m.pres.active {
			b.WriteString(activeStyle.Render("▸ " + line))
		} else {
			b.WriteString(mutedStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	filled := min(max(int(m.pres.shown*barWidth+0.5), 0), barWidth)
	b.WriteString(barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)))
	fmt.Fprintf(&b, " %3.0f%%\n", m.pres.target*100)

	status := "idle"
	if m.nav.IsTransitioning() {
		status = fmt.Sprintf("moving %3.0f%%", m.driver.Progress()*100)
	}
	p, l := m.cam.position, m.cam.lookAt
	fmt.Fprintf(&b, "camera (%6.2f, %6.2f, %6.2f) looking at (%.1f, %.1f, %.1f)  %s\n",
		p.X(), p.Y(), p.Z(), l.X(), l.Y(), l.Z(), status)

	b.WriteString(mutedStyle.Render("\n↓/j next  ↑/k previous  1-9 jump  wheel scroll  q quit"))

	return boxStyle.Render(b.String()) + "\n"
}
