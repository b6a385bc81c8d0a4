package components

import "image/color"

// MoonLayer 月亮的一层圆盘（本体、光晕、外光晕）
type MoonLayer struct {
	Radius   float32 // 世界单位
	Color    color.RGBA
	Opacity  float64
	Additive bool
	// Pulse 为 true 时透明度取自同实体的 GlowPulseComponent
	Pulse bool
}

// MoonComponent 月亮：由外到内绘制的若干同心圆盘
type MoonComponent struct {
	Layers []MoonLayer
}

// DefaultMoonLayers 本体 r=3 不透明度 0.95；光晕 r=3.5 0.3（呼吸）；外光晕 r=5 0.15
func DefaultMoonLayers() []MoonLayer {
	return []MoonLayer{
		{Radius: 5, Color: color.RGBA{R: 0xff, G: 0xe9, B: 0xb3, A: 0xff}, Opacity: 0.15, Additive: true},
		{Radius: 3.5, Color: color.RGBA{R: 0xff, G: 0xf4, B: 0xd6, A: 0xff}, Opacity: 0.3, Additive: true, Pulse: true},
		{Radius: 3, Color: color.RGBA{R: 0xff, G: 0xf9, B: 0xe6, A: 0xff}, Opacity: 0.95},
	}
}
