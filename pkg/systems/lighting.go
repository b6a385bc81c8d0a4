package systems

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DirectionalLight 平行光，Direction 指向光源
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float32
	Direction mgl32.Vec3
}

// PointLight 点光源，Range 之外无贡献
type PointLight struct {
	Color     color.RGBA
	Intensity float32
	Position  mgl32.Vec3
	Range     float32
}

// Lighting 场景光照和雾
type Lighting struct {
	AmbientColor     color.RGBA
	AmbientIntensity float32

	Directional []DirectionalLight
	Points      []PointLight

	FogColor   color.RGBA
	FogDensity float32
}

// DefaultLighting 月夜光照：环境光、月光、补光、轮廓光
func DefaultLighting(fogDensity float32) Lighting {
	return Lighting{
		AmbientColor:     color.RGBA{R: 0x2a, G: 0x3a, B: 0x5a, A: 0xff},
		AmbientIntensity: 0.4,
		Directional: []DirectionalLight{
			{Color: color.RGBA{R: 0xb3, G: 0xd9, B: 0xff, A: 0xff}, Intensity: 1.8, Direction: mgl32.Vec3{40, 50, -30}.Normalize()},
			{Color: color.RGBA{R: 0x44, G: 0xdd, B: 0xff, A: 0xff}, Intensity: 0.5, Direction: mgl32.Vec3{-30, 30, 20}.Normalize()},
		},
		Points: []PointLight{
			{Color: color.RGBA{R: 0xff, G: 0x88, B: 0xdd, A: 0xff}, Intensity: 0.6, Position: mgl32.Vec3{0, 5, 10}, Range: 50},
		},
		FogColor:   color.RGBA{R: 0x0a, G: 0x14, B: 0x28, A: 0xff},
		FogDensity: fogDensity,
	}
}

// Shade 计算表面点受到的光照（线性 RGB，未截断）
func (l Lighting) Shade(pos, normal mgl32.Vec3) mgl32.Vec3 {
	out := rgbVec(l.AmbientColor).Mul(l.AmbientIntensity)

	for _, d := range l.Directional {
		if ndl := normal.Dot(d.Direction); ndl > 0 {
			out = out.Add(rgbVec(d.Color).Mul(d.Intensity * ndl))
		}
	}

	for _, p := range l.Points {
		toLight := p.Position.Sub(pos)
		dist := toLight.Len()
		if dist == 0 || (p.Range > 0 && dist >= p.Range) {
			continue
		}
		ndl := normal.Dot(toLight.Mul(1 / dist))
		if ndl <= 0 {
			continue
		}
		falloff := float32(1)
		if p.Range > 0 {
			falloff = 1 - dist/p.Range
		}
		out = out.Add(rgbVec(p.Color).Mul(p.Intensity * ndl * falloff))
	}
	return out
}

// Fog 指数平方雾：1 表示完全清晰，0 表示完全被雾遮挡
func (l Lighting) Fog(dist float32) float32 {
	if l.FogDensity <= 0 {
		return 1
	}
	d := float64(l.FogDensity * dist)
	return float32(math.Exp(-d * d))
}

func rgbVec(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
