// Package procgen 生成装饰场景用的确定性数据：天空渐变、花田纹理、地形高度场、
// 星空与花瓣点云
//
// 所有带随机性的函数都接收调用方的 *rand.Rand，相同种子得到相同结果。
package procgen

import (
	"image/color"
	"math/rand/v2"
)

// 夜空配色
var (
	SkyTop    = color.RGBA{R: 0x0a, G: 0x14, B: 0x28, A: 0xff} // 深海军蓝
	SkyMiddle = color.RGBA{R: 0x1a, G: 0x2a, B: 0x3f, A: 0xff} // 太空蓝
	SkyBottom = color.RGBA{R: 0x0f, G: 0x1f, B: 0x35, A: 0xff} // 暗蓝
	FogColor  = color.RGBA{R: 0x0a, G: 0x14, B: 0x28, A: 0xff}
)

// NewRand 用种子创建随机数生成器
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SkyColor 返回方向高度 vY ∈ [-1, 1] 处的天空颜色
//
//	vY > 0.2: mix(middle, top, (vY-0.2)/0.8)
//	否则:     mix(bottom, middle, (vY+1)/1.2)
func SkyColor(vY float64) color.RGBA {
	if vY > 1 {
		vY = 1
	}
	if vY < -1 {
		vY = -1
	}
	if vY > 0.2 {
		return MixRGBA(SkyMiddle, SkyTop, (vY-0.2)/0.8)
	}
	return MixRGBA(SkyBottom, SkyMiddle, (vY+1)/1.2)
}

// SkyGradient 生成 height 行的竖直渐变，第 0 行为天顶，中间行为地平线
func SkyGradient(height int) []color.RGBA {
	if height <= 0 {
		return nil
	}
	rows := make([]color.RGBA, height)
	for r := range rows {
		vY := 1.0
		if height > 1 {
			vY = 1 - 2*float64(r)/float64(height-1)
		}
		rows[r] = SkyColor(vY)
	}
	return rows
}

// MixRGBA 线性混合两个颜色，t=0 返回 a，t=1 返回 b
func MixRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
