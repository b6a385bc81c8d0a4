// Package tween 提供按帧推进的镜头补间驱动
//
// Driver 实现 navigation.TweenDriver：Tween 记录目标和回调，
// 由场景每帧调用 Update(dt) 推进，所有回调都在 Update 中同步触发。
package tween

import (
	"log"
	"time"

	"github.com/decker502/moonbloom/pkg/navigation"
	"github.com/go-gl/mathgl/mgl32"
)

// Target 被补间的对象（通常是镜头）
type Target interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
}

// Driver 单目标补间驱动
//
// 同一时刻只有一个活动补间；新的 Tween 会替换旧的，被替换的补间不再回调。
type Driver struct {
	target Target

	active     bool
	from       navigation.CameraPose
	to         navigation.CameraPose
	duration   float64 // 秒
	elapsed    float64 // 秒
	ease       Func
	onUpdate   func(navigation.CameraPose)
	onComplete func()
}

// NewDriver 创建补间驱动
func NewDriver(target Target) *Driver {
	return &Driver{target: target}
}

// Tween 从目标当前位置补间到 to.Position
func (d *Driver) Tween(to navigation.CameraPose, duration time.Duration, easing string, onUpdate func(navigation.CameraPose), onComplete func()) {
	ease, ok := Lookup(easing)
	if !ok {
		log.Printf("[Tween] 未知缓动 %q，使用 linear", easing)
		ease = EaseLinear
	}

	d.active = true
	d.from = navigation.CameraPose{Position: d.target.Position(), LookAt: to.LookAt}
	d.to = to
	d.duration = duration.Seconds()
	d.elapsed = 0
	d.ease = ease
	d.onUpdate = onUpdate
	d.onComplete = onComplete
}

// Update 推进补间 dt 秒
func (d *Driver) Update(dt float64) {
	if !d.active {
		return
	}

	d.elapsed += dt
	t := 1.0
	if d.duration > 0 && d.elapsed < d.duration {
		t = d.elapsed / d.duration
	}

	k := float32(d.ease(t))
	pos := d.from.Position.Add(d.to.Position.Sub(d.from.Position).Mul(k))
	if t >= 1 {
		pos = d.to.Position
	}
	d.target.SetPosition(pos)

	if d.onUpdate != nil {
		d.onUpdate(navigation.CameraPose{Position: pos, LookAt: d.to.LookAt})
	}

	if t >= 1 {
		// 先清理再回调：onComplete 里可能立即发起下一次 Tween
		done := d.onComplete
		d.active = false
		d.onUpdate = nil
		d.onComplete = nil
		if done != nil {
			done()
		}
	}
}

// Active 是否有补间在进行
func (d *Driver) Active() bool {
	return d.active
}

// Progress 当前补间的线性进度 [0, 1]，没有补间时为 0
func (d *Driver) Progress() float64 {
	if !d.active {
		return 0
	}
	if d.duration <= 0 {
		return 1
	}
	p := d.elapsed / d.duration
	if p > 1 {
		p = 1
	}
	return p
}
