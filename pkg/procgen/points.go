package procgen

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Points 点云：位置 + 每点尺寸
type Points struct {
	Positions []mgl32.Vec3
	Sizes     []float32
}

// Len 点数
func (p *Points) Len() int {
	return len(p.Positions)
}

// Bounds 点云生成范围
type Bounds struct {
	Min, Max mgl32.Vec3
}

// Contains 判断点是否在范围内（含边界）
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// 星空与花瓣的生成范围
var (
	StarBounds  = Bounds{Min: mgl32.Vec3{-450, 50, -450}, Max: mgl32.Vec3{450, 500, 450}}
	PetalBounds = Bounds{Min: mgl32.Vec3{-30, -10, -30}, Max: mgl32.Vec3{30, 30, 30}}
)

// StarField 星点：尺寸 0.5 ~ 3.0
func StarField(rng *rand.Rand, n int) *Points {
	return scatter(rng, n, StarBounds, 0.5, 2.5)
}

// PetalField 漂浮花瓣：尺寸 0.3 ~ 1.1
func PetalField(rng *rand.Rand, n int) *Points {
	return scatter(rng, n, PetalBounds, 0.3, 0.8)
}

func scatter(rng *rand.Rand, n int, b Bounds, minSize, sizeRange float32) *Points {
	pts := &Points{
		Positions: make([]mgl32.Vec3, n),
		Sizes:     make([]float32, n),
	}
	span := b.Max.Sub(b.Min)
	for i := 0; i < n; i++ {
		pts.Positions[i] = mgl32.Vec3{
			b.Min[0] + rng.Float32()*span[0],
			b.Min[1] + rng.Float32()*span[1],
			b.Min[2] + rng.Float32()*span[2],
		}
		pts.Sizes[i] = rng.Float32()*sizeRange + minSize
	}
	return pts
}
