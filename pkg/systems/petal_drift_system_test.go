package systems

import (
	"math"
	"testing"

	"github.com/decker502/moonbloom/pkg/components"
	"github.com/decker502/moonbloom/pkg/ecs"
	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/go-gl/mathgl/mgl32"
)

func newPetals(em *ecs.EntityManager, positions ...mgl32.Vec3) *procgen.Points {
	pts := &procgen.Points{Positions: positions, Sizes: make([]float32, len(positions))}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PointCloudComponent{Points: pts})
	ecs.AddComponent(em, id, &components.PetalDriftComponent{
		FallPerTick: 0.008,
		Drift:       0.005,
		Frequency:   0.001,
		Floor:       -15,
		Ceiling:     30,
	})
	return pts
}

func TestPetalDriftFalls(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPetalDriftSystem(em)
	pts := newPetals(em, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{5, 0, -5})

	nowMs := 1234.0
	system.Update(nowMs)

	for i, p := range pts.Positions {
		phase := nowMs*0.001 + float64(i*3)
		wantX := []float32{0, 5}[i] + float32(math.Sin(phase)*0.005)
		wantY := []float32{10, 0}[i] - 0.008
		wantZ := []float32{0, -5}[i] + float32(math.Cos(phase)*0.005)
		if !approx(float64(p.X()), float64(wantX), 1e-5) ||
			!approx(float64(p.Y()), float64(wantY), 1e-5) ||
			!approx(float64(p.Z()), float64(wantZ), 1e-5) {
			t.Errorf("petal %d = %v, want (%v, %v, %v)", i, p, wantX, wantY, wantZ)
		}
	}
}

// TestPetalDriftRecycles 落到 -15 以下的花瓣回到 30
func TestPetalDriftRecycles(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPetalDriftSystem(em)
	pts := newPetals(em, mgl32.Vec3{1, -14.995, 1}, mgl32.Vec3{0, -14, 0})

	system.Update(0)

	if got := pts.Positions[0].Y(); got != 30 {
		t.Errorf("petal below floor should reset to 30, got %v", got)
	}
	if got := pts.Positions[1].Y(); got >= -14 || got < -15 {
		t.Errorf("petal above floor should just fall, got %v", got)
	}
}

func TestPetalDriftStaysInBand(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPetalDriftSystem(em)
	pts := procgen.PetalField(procgen.NewRand(9), 150)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PointCloudComponent{Points: pts})
	ecs.AddComponent(em, id, &components.PetalDriftComponent{FallPerTick: 0.008, Drift: 0.005, Frequency: 0.001, Floor: -15, Ceiling: 30})

	// 约 100 秒
	for tick := 0; tick < 6000; tick++ {
		system.Update(float64(tick) * 1000 / 60)
	}

	for i, p := range pts.Positions {
		if p.Y() < -15 || p.Y() > 30 {
			t.Fatalf("petal %d left the vertical band: %v", i, p)
		}
	}
}

func TestPetalDriftSkipsEmptyCloud(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPetalDriftSystem(em)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PointCloudComponent{})
	ecs.AddComponent(em, id, &components.PetalDriftComponent{FallPerTick: 1})

	// 不应 panic
	system.Update(0)
}
