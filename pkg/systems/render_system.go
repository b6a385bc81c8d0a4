package systems

import (
	"image/color"
	"log"
	"math"
	"sort"

	"github.com/decker502/moonbloom/pkg/camera"
	"github.com/decker502/moonbloom/pkg/components"
	"github.com/decker502/moonbloom/pkg/ecs"
	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// 单批次最多顶点数（索引为 uint16）
const maxBatchVertices = 65532

// MaxTerrainQuads 地形每边最多绘制的格子数，超出时按步长抽样
const MaxTerrainQuads = 75

// RenderSystem 把 3D 场景投影到屏幕
//
// 渲染顺序（从底到顶）：
//   - 天空渐变（随镜头俯仰变化）
//   - 背景点云（星空，加法混合）
//   - 月亮（同心圆盘，光晕加法混合）
//   - 地形（按视距从远到近排序的带纹理四边形，逐顶点光照和雾）
//   - 角色贴图
//   - 前景点云（花瓣，受雾影响）
//
// 没有深度缓冲，层与层之间的遮挡完全由上述顺序决定。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *camera.Camera
	lighting      Lighting

	sky       *ebiten.Image
	skyPixels []byte
	disc      *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
	quads    []terrainQuad
	sprites  []spriteQuad
	grid     []terrainSample

	loggedOnce bool
}

type terrainSample struct {
	x, y, w float32
	ok      bool
	r, g, b float32
	alpha   float32
	u, v    float32
}

type terrainQuad struct {
	corners [4]int // 左上、右上、左下、右下在 grid 中的下标
	depth   float32
}

type spriteQuad struct {
	x, y, half float32
	alpha      float32
	depth      float32
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cam *camera.Camera, lighting Lighting) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        cam,
		lighting:      lighting,
		vertices:      make([]ebiten.Vertex, 0, 4096),
		indices:       make([]uint16, 0, 6144),
	}
}

// Lighting 当前光照参数
func (s *RenderSystem) Lighting() Lighting {
	return s.lighting
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return
	}
	s.camera.SetAspect(float32(width) / float32(height))

	if !s.loggedOnce {
		log.Printf("[RenderSystem] first frame %dx%d, camera at %v", width, height, s.camera.Position())
		s.loggedOnce = true
	}

	s.drawSky(screen, width, height)
	s.drawPointClouds(screen, width, height, true)
	s.drawMoons(screen, width, height)
	s.drawTerrain(screen, width, height)
	s.drawSprites(screen, width, height)
	s.drawPointClouds(screen, width, height, false)
}

// drawSky 以 1 像素宽的竖条绘制天空，按行计算视线方向的 y 分量
func (s *RenderSystem) drawSky(screen *ebiten.Image, width, height int) {
	if s.sky == nil || s.sky.Bounds().Dy() != height {
		if s.sky != nil {
			s.sky.Deallocate()
		}
		s.sky = ebiten.NewImage(1, height)
		s.skyPixels = make([]byte, 4*height)
	}

	forward := s.camera.Target().Sub(s.camera.Position())
	pitch := 0.0
	if l := forward.Len(); l > 0 {
		pitch = math.Asin(clamp64(float64(forward.Y()/l), -1, 1))
	}
	tanHalf := math.Tan(float64(mgl32.DegToRad(s.camera.FOV)) / 2)

	for row := 0; row < height; row++ {
		ndcY := 1 - 2*(float64(row)+0.5)/float64(height)
		vY := math.Sin(pitch + math.Atan(ndcY*tanHalf))
		c := procgen.SkyColor(vY)
		i := row * 4
		s.skyPixels[i], s.skyPixels[i+1], s.skyPixels[i+2], s.skyPixels[i+3] = c.R, c.G, c.B, 0xff
	}
	s.sky.WritePixels(s.skyPixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), 1)
	screen.DrawImage(s.sky, op)
}

func (s *RenderSystem) drawPointClouds(screen *ebiten.Image, width, height int, background bool) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.PointCloudComponent](em) {
		cloud, _ := ecs.GetComponent[*components.PointCloudComponent](em, id)
		if cloud.Background != background || cloud.Points == nil || cloud.Sprite == nil {
			continue
		}

		model := mgl32.Ident4()
		if tr, ok := ecs.GetComponent[*components.TransformComponent](em, id); ok {
			model = tr.Matrix()
		}

		s.sprites = s.sprites[:0]
		for i, local := range cloud.Points.Positions {
			world := model.Mul4x1(local.Vec4(1)).Vec3()
			x, y, _, w, ok := s.camera.Project(world, width, height)
			if !ok {
				continue
			}
			size := s.camera.ScaleAt(cloud.BaseSize*cloud.Points.Sizes[i], w, height)
			if size < 1 {
				size = 1
			}
			half := size / 2
			if x+half < 0 || y+half < 0 || x-half > float32(width) || y-half > float32(height) {
				continue
			}
			alpha := cloud.Opacity
			if cloud.Fogged {
				alpha *= s.lighting.Fog(w)
			}
			s.sprites = append(s.sprites, spriteQuad{x: x, y: y, half: half, alpha: alpha, depth: w})
		}

		// 普通混合需要从远到近绘制
		if !cloud.Additive {
			sort.Slice(s.sprites, func(i, j int) bool { return s.sprites[i].depth > s.sprites[j].depth })
		}

		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		if cloud.Additive {
			op.Blend = ebiten.BlendLighter
		}
		sw, sh := spriteSize(cloud.Sprite)

		s.reset()
		for _, q := range s.sprites {
			if len(s.vertices)+4 > maxBatchVertices {
				s.flush(screen, cloud.Sprite, op)
			}
			s.appendQuad(
				[4][2]float32{{q.x - q.half, q.y - q.half}, {q.x + q.half, q.y - q.half}, {q.x - q.half, q.y + q.half}, {q.x + q.half, q.y + q.half}},
				[4][2]float32{{0, 0}, {sw, 0}, {0, sh}, {sw, sh}},
				[4][4]float32{{1, 1, 1, q.alpha}, {1, 1, 1, q.alpha}, {1, 1, 1, q.alpha}, {1, 1, 1, q.alpha}},
			)
		}
		s.flush(screen, cloud.Sprite, op)
	}
}

func (s *RenderSystem) drawMoons(screen *ebiten.Image, width, height int) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.MoonComponent, *components.TransformComponent](em) {
		moon, _ := ecs.GetComponent[*components.MoonComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		x, y, _, w, ok := s.camera.Project(tr.Position, width, height)
		if !ok {
			continue
		}

		if s.disc == nil {
			s.disc = ebiten.NewImageFromImage(procgen.DiscSprite(128))
		}
		pulse, hasPulse := ecs.GetComponent[*components.GlowPulseComponent](em, id)
		scale := tr.Scale
		if scale == 0 {
			scale = 1
		}

		for _, layer := range moon.Layers {
			r := s.camera.ScaleAt(layer.Radius*scale, w, height)
			opacity := layer.Opacity
			if layer.Pulse && hasPulse {
				opacity = pulse.Opacity
			}
			s.drawDisc(screen, x, y, r, layer.Color, float32(opacity), layer.Additive)
		}
	}
}

func (s *RenderSystem) drawDisc(screen *ebiten.Image, x, y, radius float32, c color.RGBA, opacity float32, additive bool) {
	if radius <= 0 || opacity <= 0 {
		return
	}
	size := float64(s.disc.Bounds().Dx())
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(float64(2*radius)/size, float64(2*radius)/size)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(opacity)
	if additive {
		op.Blend = ebiten.BlendLighter
	}
	screen.DrawImage(s.disc, op)
}

// TerrainStride 地形抽样步长，保证每边不超过 maxQuads 个格子
func TerrainStride(segments, maxQuads int) int {
	if segments <= 0 || maxQuads <= 0 {
		return 1
	}
	stride := (segments + maxQuads - 1) / maxQuads
	if stride < 1 {
		stride = 1
	}
	return stride
}

func (s *RenderSystem) drawTerrain(screen *ebiten.Image, width, height int) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.TerrainComponent](em) {
		terrain, _ := ecs.GetComponent[*components.TerrainComponent](em, id)
		hf := terrain.Field
		if hf == nil || terrain.Texture == nil || hf.Segments <= 0 {
			continue
		}

		stride := TerrainStride(hf.Segments, MaxTerrainQuads)
		steps := terrainSteps(hf.Segments, stride)
		n := len(steps)

		tw, th := spriteSize(terrain.Texture)
		tint := rgbVec(terrain.Tint)

		s.grid = s.grid[:0]
		for _, row := range steps {
			for _, col := range steps {
				world := hf.Vertex(row, col)
				x, y, _, w, ok := s.camera.Project(world, width, height)
				light := s.lighting.Shade(world, hf.Normal(row, col))
				s.grid = append(s.grid, terrainSample{
					x: x, y: y, w: w, ok: ok,
					r:     clamp32(light.X() * tint.X() * 2.2),
					g:     clamp32(light.Y() * tint.Y() * 2.2),
					b:     clamp32(light.Z() * tint.Z() * 2.2),
					alpha: s.lighting.Fog(w),
					u:     float32(col) / float32(hf.Segments) * terrain.Repeat * tw,
					v:     float32(row) / float32(hf.Segments) * terrain.Repeat * th,
				})
			}
		}

		s.quads = s.quads[:0]
		for r := 0; r+1 < n; r++ {
			for c := 0; c+1 < n; c++ {
				q := terrainQuad{corners: [4]int{r*n + c, r*n + c + 1, (r+1)*n + c, (r+1)*n + c + 1}}
				visible := true
				for _, k := range q.corners {
					if !s.grid[k].ok {
						visible = false
						break
					}
					q.depth += s.grid[k].w
				}
				if visible {
					q.depth /= 4
					s.quads = append(s.quads, q)
				}
			}
		}
		sort.Slice(s.quads, func(i, j int) bool { return s.quads[i].depth > s.quads[j].depth })

		op := &ebiten.DrawTrianglesOptions{Address: ebiten.AddressRepeat, AntiAlias: true}
		s.reset()
		for _, q := range s.quads {
			if len(s.vertices)+4 > maxBatchVertices {
				s.flush(screen, terrain.Texture, op)
			}
			var dst, src [4][2]float32
			var col [4][4]float32
			for i, k := range q.corners {
				g := s.grid[k]
				dst[i] = [2]float32{g.x, g.y}
				src[i] = [2]float32{g.u, g.v}
				col[i] = [4]float32{g.r, g.g, g.b, g.alpha}
			}
			s.appendQuad(dst, src, col)
		}
		s.flush(screen, terrain.Texture, op)
	}
}

// terrainSteps 0, stride, 2*stride, ... 且总是包含最后一行
func terrainSteps(segments, stride int) []int {
	steps := make([]int, 0, segments/stride+2)
	for i := 0; i < segments; i += stride {
		steps = append(steps, i)
	}
	return append(steps, segments)
}

func (s *RenderSystem) drawSprites(screen *ebiten.Image, width, height int) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if sprite.Image == nil {
			continue
		}
		x, y, _, w, ok := s.camera.Project(tr.Position, width, height)
		if !ok {
			continue
		}

		scale := tr.Scale
		if scale == 0 {
			scale = 1
		}
		iw, ih := spriteSize(sprite.Image)
		px := s.camera.ScaleAt(sprite.Height*scale, w, height)
		if px <= 0 || ih == 0 {
			continue
		}
		k := float64(px / ih)

		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(-float64(iw)/2, -float64(ih))
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleAlpha(s.lighting.Fog(w))
		screen.DrawImage(sprite.Image, op)
	}
}

func (s *RenderSystem) reset() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

func (s *RenderSystem) flush(screen, img *ebiten.Image, op *ebiten.DrawTrianglesOptions) {
	if len(s.vertices) > 0 {
		screen.DrawTriangles(s.vertices, s.indices, img, op)
	}
	s.reset()
}

// appendQuad 角点顺序：左上、右上、左下、右下
func (s *RenderSystem) appendQuad(dst, src [4][2]float32, col [4][4]float32) {
	base := uint16(len(s.vertices))
	for i := 0; i < 4; i++ {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: dst[i][0], DstY: dst[i][1],
			SrcX: src[i][0], SrcY: src[i][1],
			ColorR: col[i][0], ColorG: col[i][1], ColorB: col[i][2], ColorA: col[i][3],
		})
	}
	s.indices = append(s.indices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func spriteSize(img *ebiten.Image) (float32, float32) {
	b := img.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

func clamp32(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp64(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
