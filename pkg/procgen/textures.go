package procgen

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"

	"golang.org/x/image/vector"
)

// FlowerPalette 花朵颜色：橙、艳粉、粉、紫、浅紫、橙黄、白、柔黄
var FlowerPalette = []color.RGBA{
	{R: 255, G: 136, B: 68, A: 255},
	{R: 255, G: 51, B: 136, A: 255},
	{R: 255, G: 102, B: 204, A: 255},
	{R: 170, G: 68, B: 255, A: 255},
	{R: 204, G: 68, B: 255, A: 255},
	{R: 255, G: 204, B: 102, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 238, B: 136, A: 255},
}

// GrassBase 夜间草地底色 #1a2d1f
var GrassBase = color.RGBA{R: 0x1a, G: 0x2d, B: 0x1f, A: 0xff}

// FlowerTextureOptions 花田纹理参数
type FlowerTextureOptions struct {
	Size    int // 边长（像素）
	Strokes int // 草叶笔画数
	Flowers int // 花朵数
}

// 半透明层的不透明度：0.9 和 0.3（四舍五入到 8 位）
const (
	flowerAlpha uint8 = 230
	haloAlpha   uint8 = 77
)

// DefaultFlowerTexture 默认花田纹理：1024², 8000 笔草, 4500 朵花
var DefaultFlowerTexture = FlowerTextureOptions{Size: 1024, Strokes: 8000, Flowers: 4500}

// FlowerTexture 绘制花田纹理（草叶笔画 + 彩色花朵）
func FlowerTexture(rng *rand.Rand, opts FlowerTextureOptions) *image.RGBA {
	size := opts.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(GrassBase), image.Point{}, draw.Src)

	p := newPainter(img)

	for i := 0; i < opts.Strokes; i++ {
		x := rng.Float64() * float64(size)
		y := rng.Float64() * float64(size)
		length := rng.Float64()*3 + 1
		green := 25 + rng.Float64()*20
		alpha := 0.3 + rng.Float64()*0.3
		c := color.NRGBA{
			R: uint8(green * 0.6),
			G: uint8(green),
			B: uint8(green * 0.7),
			A: uint8(alpha * 255),
		}
		x1 := x + (rng.Float64()-0.5)*length
		y1 := y - length*2
		p.line(x, y, x1, y1, 1.5, c)
	}

	for i := 0; i < opts.Flowers; i++ {
		x := rng.Float64() * float64(size)
		y := rng.Float64() * float64(size)
		radius := rng.Float64()*5 + 2
		base := FlowerPalette[rng.IntN(len(FlowerPalette))]
		brightness := 0.7 + rng.Float64()*0.3

		p.ellipse(x, y, radius, radius, 0, color.NRGBA{
			R: uint8(float64(base.R) * brightness),
			G: uint8(float64(base.G) * brightness),
			B: uint8(float64(base.B) * brightness),
			A: flowerAlpha,
		})

		// 约 30% 的花带光晕
		if rng.Float64() > 0.7 {
			p.ellipse(x, y, radius*1.5, radius*1.5, 0, color.NRGBA{R: base.R, G: base.G, B: base.B, A: haloAlpha})
		}
	}

	return img
}

// StarSprite 径向渐变星点：中心白色，0.2 处淡蓝，边缘透明
func StarSprite(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	stops := []struct {
		at float64
		c  color.NRGBA
	}{
		{0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{0.2, color.NRGBA{R: 230, G: 240, B: 255, A: flowerAlpha}},
		{1, color.NRGBA{R: 200, G: 220, B: 255, A: 0}},
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			if d >= 1 {
				continue
			}
			for i := 1; i < len(stops); i++ {
				if d <= stops[i].at {
					t := (d - stops[i-1].at) / (stops[i].at - stops[i-1].at)
					img.SetNRGBA(x, y, mixNRGBA(stops[i-1].c, stops[i].c, t))
					break
				}
			}
		}
	}
	return img
}

// PetalColor 花瓣颜色 #ffb3d9
var PetalColor = color.NRGBA{R: 0xff, G: 0xb3, B: 0xd9, A: 0xff}

// PetalSprite 旋转 45° 的椭圆花瓣
func PetalSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size) / 32
	newPainter(img).ellipse(16*s, 16*s, 12*s, 8*s, math.Pi/4, PetalColor)
	return img
}

func mixNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// painter 用 x/image/vector 光栅化小多边形
// 每个形状只在自身包围盒内光栅化，避免整幅图像的开销
type painter struct {
	dst *image.RGBA
	r   *vector.Rasterizer
}

func newPainter(dst *image.RGBA) *painter {
	return &painter{dst: dst, r: vector.NewRasterizer(1, 1)}
}

// fill 填充多边形 pts（x0, y0, x1, y1, ...）
func (p *painter) fill(pts []float64, c color.Color) {
	if len(pts) < 6 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(pts); i += 2 {
		minX = math.Min(minX, pts[i])
		maxX = math.Max(maxX, pts[i])
		minY = math.Min(minY, pts[i+1])
		maxY = math.Max(maxY, pts[i+1])
	}

	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(p.dst.Bounds())
	if box.Empty() {
		return
	}

	// 光栅化器覆盖 box，坐标相对于 box 原点；超出部分由光栅化器裁剪
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	p.r.Reset(box.Dx(), box.Dy())
	p.r.DrawOp = draw.Over
	p.r.MoveTo(float32(pts[0]-ox), float32(pts[1]-oy))
	for i := 2; i < len(pts); i += 2 {
		p.r.LineTo(float32(pts[i]-ox), float32(pts[i+1]-oy))
	}
	p.r.ClosePath()
	p.r.Draw(p.dst, box, image.NewUniform(c), image.Point{})
}

// line 以宽度 w 的细四边形绘制线段
func (p *painter) line(x0, y0, x1, y1, w float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	p.fill([]float64{
		x0 + nx, y0 + ny,
		x1 + nx, y1 + ny,
		x1 - nx, y1 - ny,
		x0 - nx, y0 - ny,
	}, c)
}

// ellipse 以多边形近似椭圆，rot 为旋转角（弧度）
func (p *painter) ellipse(cx, cy, rx, ry, rot float64, c color.Color) {
	segments := 12 + int(math.Max(rx, ry))*2
	if segments > 64 {
		segments = 64
	}
	sin, cos := math.Sincos(rot)
	pts := make([]float64, 0, segments*2)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		pts = append(pts, cx+ex*cos-ey*sin, cy+ex*sin+ey*cos)
	}
	p.fill(pts, c)
}

// DiscSprite 抗锯齿白色圆盘，渲染时用 ColorScale 着色
func DiscSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	newPainter(img).ellipse(r, r, r, r, 0, color.White)
	return img
}
