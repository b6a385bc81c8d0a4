package systems

import (
	"math"
	"testing"

	"github.com/decker502/moonbloom/pkg/components"
	"github.com/decker502/moonbloom/pkg/ecs"
	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestAmbientSwayAndPulse(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAmbientSystem(em)

	moon := em.CreateEntity()
	ecs.AddComponent(em, moon, &components.TransformComponent{})
	ecs.AddComponent(em, moon, &components.SwayComponent{Amplitude: 0.05, Frequency: 0.0001})
	ecs.AddComponent(em, moon, &components.GlowPulseComponent{Base: 0.3, Amplitude: 0.1, Frequency: 0.002})

	nowMs := 5000.0
	system.Update(nowMs)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, moon)
	glow, _ := ecs.GetComponent[*components.GlowPulseComponent](em, moon)

	if want := math.Sin(nowMs*0.0001) * 0.05; !approx(float64(tr.RotationZ), want, 1e-6) {
		t.Errorf("RotationZ = %v, want %v", tr.RotationZ, want)
	}
	if want := 0.3 + math.Sin(nowMs*0.002)*0.1; !approx(glow.Opacity, want, 1e-9) {
		t.Errorf("glow opacity = %v, want %v", glow.Opacity, want)
	}
	if glow.Opacity < 0.2 || glow.Opacity > 0.4 {
		t.Errorf("glow opacity %v outside [0.2, 0.4]", glow.Opacity)
	}
}

// TestAmbientSpinAccumulates 星空按帧累加旋转，与时间戳无关
func TestAmbientSpinAccumulates(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAmbientSystem(em)

	stars := em.CreateEntity()
	ecs.AddComponent(em, stars, &components.TransformComponent{})
	ecs.AddComponent(em, stars, &components.SpinComponent{RatePerTick: 0.00005})

	for i := 0; i < 100; i++ {
		system.Update(0)
	}

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, stars)
	if !approx(float64(tr.RotationY), 0.005, 1e-5) {
		t.Errorf("RotationY after 100 ticks = %v, want 0.005", tr.RotationY)
	}
}

func TestAmbientBob(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAmbientSystem(em)

	avatar := em.CreateEntity()
	ecs.AddComponent(em, avatar, &components.TransformComponent{Position: mgl32.Vec3{0, -5, 0}, Scale: 2})
	ecs.AddComponent(em, avatar, &components.BobComponent{BaseY: -5, Amplitude: 0.02, Frequency: 0.0003})

	tests := []float64{0, 1000, 2500, 10000}
	for _, nowMs := range tests {
		system.Update(nowMs)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, avatar)
		want := -5 + math.Sin(nowMs*0.0003)*0.02
		if !approx(float64(tr.Position.Y()), want, 1e-5) {
			t.Errorf("t=%v: y = %v, want %v", nowMs, tr.Position.Y(), want)
		}
		if tr.Position.X() != 0 || tr.Position.Z() != 0 || tr.Scale != 2 {
			t.Errorf("t=%v: bob must only touch y, got %v scale %v", nowMs, tr.Position, tr.Scale)
		}
	}
}

// TestAmbientIgnoresUnrelatedEntities 没有 Transform 的实体不会被写入
func TestAmbientIgnoresUnrelatedEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAmbientSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SwayComponent{Amplitude: 1, Frequency: 1})
	ecs.AddComponent(em, id, &components.PointCloudComponent{Points: &procgen.Points{}})

	system.Update(100)

	if ecs.HasComponent[*components.TransformComponent](em, id) {
		t.Error("system should not add components")
	}
}
