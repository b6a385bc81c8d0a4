// Package navigation 实现分区导航状态机
//
// Navigator 持有"当前分区"和"过渡中"两个状态，把滚轮、键盘、链接点击三路输入
// 串行化为一个请求流，并保证同一时刻最多只有一个镜头过渡在进行（single-flight）。
// 镜头动画和界面呈现分别委托给注入的 TweenDriver 与 PresentationSink。
package navigation

import (
	"errors"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// 默认过渡参数：2 秒，power3.inOut
const (
	DefaultTransitionDuration = 2 * time.Second
	DefaultEasing             = "power3.inOut"
)

// CameraPose 分区对应的镜头姿态：位置 + 注视点
// 启动时注入，之后不再修改
type CameraPose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// State 导航状态
type State struct {
	CurrentIndex    int
	IsTransitioning bool
}

// TweenDriver 镜头补间驱动
//
// Tween 从目标的当前位置（隐式起点）开始插值到 to。
// onUpdate 每帧调用一次，onComplete 在补间结束时调用一次。
type TweenDriver interface {
	Tween(to CameraPose, duration time.Duration, easing string, onUpdate func(CameraPose), onComplete func())
}

// PresentationSink 呈现层（当前激活分区 + 进度条）
type PresentationSink interface {
	SetActiveSection(index int)
	SetProgress(fraction float64)
}

// Options Navigator 的可选参数
type Options struct {
	// Duration 过渡时长，<=0 时使用 DefaultTransitionDuration
	Duration time.Duration
	// Easing 缓动标识，为空时使用 DefaultEasing
	Easing string
	// OnLookAt 每帧重新对准注视点，可为 nil
	OnLookAt func(lookAt mgl32.Vec3)
}

// Navigator 分区导航器
//
// 所有方法都必须在同一个逻辑线程（ebiten Update 或 bubbletea Update）中调用。
type Navigator struct {
	poses  []CameraPose
	opts   Options
	driver TweenDriver
	sink   PresentationSink

	state State

	// generation 区分补间回调属于哪一次过渡，防止过期的完成回调清除状态
	generation uint64
}

// NewNavigator 创建导航器，初始状态为 {0, false}
//
// 创建时会把第 0 个分区标记为激活并发布初始进度 1/N（页面初始状态）。
func NewNavigator(poses []CameraPose, opts Options, driver TweenDriver, sink PresentationSink) (*Navigator, error) {
	if len(poses) == 0 {
		return nil, errors.New("navigator requires at least one section")
	}
	if driver == nil {
		return nil, errors.New("navigator requires a tween driver")
	}
	if sink == nil {
		return nil, errors.New("navigator requires a presentation sink")
	}

	if opts.Duration <= 0 {
		opts.Duration = DefaultTransitionDuration
	}
	if opts.Easing == "" {
		opts.Easing = DefaultEasing
	}

	n := &Navigator{
		poses:  append([]CameraPose(nil), poses...),
		opts:   opts,
		driver: driver,
		sink:   sink,
	}

	sink.SetActiveSection(0)
	sink.SetProgress(1 / float64(len(poses)))

	return n, nil
}

// RequestSection 请求切换到 target 分区
//
// 以下情况静默忽略：target 越界、正在过渡中。
// 接受时：先更新状态和呈现层，再发出唯一一次补间请求。
func (n *Navigator) RequestSection(target int) {
	if target < 0 || target >= len(n.poses) || n.state.IsTransitioning {
		return
	}

	n.state.IsTransitioning = true
	n.state.CurrentIndex = target
	n.generation++
	gen := n.generation

	n.sink.SetActiveSection(target)
	n.sink.SetProgress(float64(target+1) / float64(len(n.poses)))

	pose := n.poses[target]
	log.Printf("[Navigator] 切换到分区 %d/%d，目标位置 %v", target+1, len(n.poses), pose.Position)

	onUpdate := func(CameraPose) {
		if n.opts.OnLookAt != nil {
			n.opts.OnLookAt(pose.LookAt)
		}
	}
	onComplete := func() {
		if gen != n.generation {
			return
		}
		n.state.IsTransitioning = false
		log.Printf("[Navigator] 分区 %d 过渡完成", target+1)
	}

	n.driver.Tween(pose, n.opts.Duration, n.opts.Easing, onUpdate, onComplete)
}

// RequestNext 请求下一个分区
func (n *Navigator) RequestNext() {
	n.RequestSection(n.state.CurrentIndex + 1)
}

// RequestPrevious 请求上一个分区
func (n *Navigator) RequestPrevious() {
	n.RequestSection(n.state.CurrentIndex - 1)
}

// State 返回当前状态的副本
func (n *Navigator) State() State {
	return n.state
}

// CurrentIndex 当前分区索引
func (n *Navigator) CurrentIndex() int {
	return n.state.CurrentIndex
}

// IsTransitioning 是否有过渡正在进行
func (n *Navigator) IsTransitioning() bool {
	return n.state.IsTransitioning
}

// SectionCount 分区数量 N
func (n *Navigator) SectionCount() int {
	return len(n.poses)
}

// Pose 返回第 i 个分区的镜头姿态
func (n *Navigator) Pose(i int) (CameraPose, bool) {
	if i < 0 || i >= len(n.poses) {
		return CameraPose{}, false
	}
	return n.poses[i], true
}
