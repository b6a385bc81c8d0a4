package tween

import (
	"testing"
	"time"

	"github.com/decker502/moonbloom/pkg/navigation"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pointTarget struct {
	pos mgl32.Vec3
}

func (p *pointTarget) Position() mgl32.Vec3     { return p.pos }
func (p *pointTarget) SetPosition(v mgl32.Vec3) { p.pos = v }

func pose(x, y, z float32) navigation.CameraPose {
	return navigation.CameraPose{Position: mgl32.Vec3{x, y, z}, LookAt: mgl32.Vec3{0, 1, 0}}
}

func TestDriver_InterpolatesFromCurrentPosition(t *testing.T) {
	target := &pointTarget{pos: mgl32.Vec3{0, 0, 0}}
	d := NewDriver(target)

	completed := 0
	updates := 0
	d.Tween(pose(10, 0, 0), time.Second, "linear", func(navigation.CameraPose) { updates++ }, func() { completed++ })
	require.True(t, d.Active())

	d.Update(0.25)
	assert.InDelta(t, 2.5, target.pos.X(), 1e-4)
	assert.InDelta(t, 0.25, d.Progress(), 1e-9)

	d.Update(0.5)
	assert.InDelta(t, 7.5, target.pos.X(), 1e-4)
	assert.Equal(t, 0, completed)

	d.Update(0.5)
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, target.pos)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, updates)
	assert.False(t, d.Active())

	// 结束后不再回调
	d.Update(1)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, updates)
}

func TestDriver_EasedMidpoint(t *testing.T) {
	target := &pointTarget{}
	d := NewDriver(target)
	d.Tween(pose(0, 16, 0), 2*time.Second, "power3.inOut", nil, nil)

	d.Update(0.5) // t = 0.25
	assert.InDelta(t, 16*EaseInOutQuart(0.25), target.pos.Y(), 1e-4)
}

func TestDriver_UnknownEasingFallsBackToLinear(t *testing.T) {
	target := &pointTarget{}
	d := NewDriver(target)
	d.Tween(pose(4, 0, 0), time.Second, "wobble", nil, nil)

	d.Update(0.5)
	assert.InDelta(t, 2, target.pos.X(), 1e-4)
}

func TestDriver_ZeroDurationCompletesOnNextUpdate(t *testing.T) {
	target := &pointTarget{}
	d := NewDriver(target)
	done := false
	d.Tween(pose(1, 2, 3), 0, "linear", nil, func() { done = true })

	assert.False(t, done, "completion must not run inside Tween")
	d.Update(0)
	assert.True(t, done)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, target.pos)
}

func TestDriver_ReplacedTweenNeverCompletes(t *testing.T) {
	target := &pointTarget{}
	d := NewDriver(target)
	firstDone := false
	secondDone := false

	d.Tween(pose(10, 0, 0), time.Second, "linear", nil, func() { firstDone = true })
	d.Update(0.5)
	d.Tween(pose(0, 0, 10), time.Second, "linear", nil, func() { secondDone = true })
	d.Update(1)

	assert.False(t, firstDone)
	assert.True(t, secondDone)
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, target.pos)
}

func TestDriver_OnUpdateCarriesLookAt(t *testing.T) {
	target := &pointTarget{}
	d := NewDriver(target)
	var seen []navigation.CameraPose
	d.Tween(pose(2, 0, 0), time.Second, "linear", func(p navigation.CameraPose) { seen = append(seen, p) }, nil)

	d.Update(0.5)
	require.Len(t, seen, 1)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, seen[0].LookAt)
	assert.InDelta(t, 1, seen[0].Position.X(), 1e-4)
}

// TestDriver_WithNavigator 导航器 + 补间驱动的端到端过渡
func TestDriver_WithNavigator(t *testing.T) {
	target := &pointTarget{pos: mgl32.Vec3{0, 2, 18}}
	d := NewDriver(target)
	sink := &nopSink{}
	poses := []navigation.CameraPose{pose(0, 2, 0), pose(-3, 1, 4)}

	var lookAts []mgl32.Vec3
	nav, err := navigation.NewNavigator(poses, navigation.Options{
		OnLookAt: func(v mgl32.Vec3) { lookAts = append(lookAts, v) },
	}, d, sink)
	require.NoError(t, err)

	nav.RequestNext()
	for i := 0; i < 119; i++ {
		d.Update(1.0 / 60.0)
		assert.True(t, nav.IsTransitioning(), "frame %d", i)
	}
	d.Update(1.0 / 60.0)
	d.Update(1.0 / 60.0)

	assert.False(t, nav.IsTransitioning())
	assert.Equal(t, 1, nav.CurrentIndex())
	assert.Equal(t, mgl32.Vec3{-3, 1, 4}, target.pos)
	assert.NotEmpty(t, lookAts)
}

type nopSink struct{}

func (nopSink) SetActiveSection(int) {}
func (nopSink) SetProgress(float64)  {}
