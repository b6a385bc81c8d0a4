package procgen

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// TerrainBaseY 地形整体下沉的高度
const TerrainBaseY = -5

// Heightfield 规则网格地形（XZ 平面），行优先存储
// 第 0 行位于 z = -Size/2（远端），最后一行位于 z = +Size/2
type Heightfield struct {
	Size     float32
	Segments int
	Heights  []float32 // (Segments+1)² 个高度，已包含 TerrainBaseY
}

// Terrain 生成起伏的丘陵
//
//	h = sin(x*0.03)*cos(y*0.04)*4 + sin(x*0.07)*sin(y*0.06)*2 + (r-0.5)*0.8
//
// x, y 为平面局部坐标（y 轴翻转后对应世界 -Z）
func Terrain(rng *rand.Rand, size float32, segments int) *Heightfield {
	n := segments + 1
	hf := &Heightfield{
		Size:     size,
		Segments: segments,
		Heights:  make([]float32, n*n),
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			p := hf.local(row, col)
			x, y := float64(p[0]), float64(p[1])
			wave1 := math.Sin(x*0.03) * math.Cos(y*0.04) * 4
			wave2 := math.Sin(x*0.07) * math.Sin(y*0.06) * 2
			noise := (rng.Float64() - 0.5) * 0.8
			hf.Heights[row*n+col] = float32(wave1+wave2+noise) + TerrainBaseY
		}
	}
	return hf
}

// local 返回平面局部坐标 (x, y)；平面绕 X 轴旋转 -90°，局部 y = -世界 z
func (hf *Heightfield) local(row, col int) mgl32.Vec2 {
	step := hf.Size / float32(hf.Segments)
	half := hf.Size / 2
	x := -half + float32(col)*step
	z := -half + float32(row)*step
	return mgl32.Vec2{x, -z}
}

// Vertex 第 (row, col) 个顶点的世界坐标
func (hf *Heightfield) Vertex(row, col int) mgl32.Vec3 {
	p := hf.local(row, col)
	return mgl32.Vec3{p[0], hf.Heights[row*(hf.Segments+1)+col], -p[1]}
}

// Normal 用中心差分估算法线
func (hf *Heightfield) Normal(row, col int) mgl32.Vec3 {
	n := hf.Segments + 1
	at := func(r, c int) float32 {
		r = clampInt(r, 0, n-1)
		c = clampInt(c, 0, n-1)
		return hf.Heights[r*n+c]
	}
	step := hf.Size / float32(hf.Segments)
	dx := (at(row, col+1) - at(row, col-1)) / (2 * step)
	dz := (at(row+1, col) - at(row-1, col)) / (2 * step)
	return mgl32.Vec3{-dx, 1, -dz}.Normalize()
}

// HeightRange 返回最低和最高高度
func (hf *Heightfield) HeightRange() (lo, hi float32) {
	if len(hf.Heights) == 0 {
		return 0, 0
	}
	lo, hi = hf.Heights[0], hf.Heights[0]
	for _, h := range hf.Heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
