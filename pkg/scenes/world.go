package scenes

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/decker502/moonbloom/pkg/components"
	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/ecs"
	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// 场景布置参数
var (
	MoonPosition      = mgl32.Vec3{45, 55, -80}
	CharacterPosition = mgl32.Vec3{0, procgen.TerrainBaseY, 0}
	GroundTint        = color.RGBA{R: 0x2a, G: 0x3d, B: 0x2a, A: 0xff}
)

const (
	starBaseSize   = 3
	starOpacity    = 0.9
	petalBaseSize  = 1.5
	petalOpacity   = 0.7
	terrainRepeat  = 15
	characterScale = 2
	// 角色贴图的世界高度（缩放前）
	characterHeight = 1.8
)

// Assets 程序化生成的 CPU 侧图像，在后台生成后交给逻辑线程上传
type Assets struct {
	Flower *image.RGBA
	Star   *image.NRGBA
	Petal  *image.RGBA
}

// GenerateAssets 生成花田纹理和粒子贴图（耗时操作，可在 goroutine 中调用）
func GenerateAssets(rng *rand.Rand, opts procgen.FlowerTextureOptions) *Assets {
	return &Assets{
		Flower: procgen.FlowerTexture(rng, opts),
		Star:   procgen.StarSprite(32),
		Petal:  procgen.PetalSprite(32),
	}
}

// Textures GPU 侧贴图；测试中可以全部为 nil
type Textures struct {
	Flower *ebiten.Image
	Star   *ebiten.Image
	Petal  *ebiten.Image
}

// Upload 把 CPU 图像转换为 ebiten 贴图
func (a *Assets) Upload() Textures {
	return Textures{
		Flower: ebiten.NewImageFromImage(a.Flower),
		Star:   ebiten.NewImageFromImage(a.Star),
		Petal:  ebiten.NewImageFromImage(a.Petal),
	}
}

// World 场景中各实体的 ID
type World struct {
	Stars   ecs.EntityID
	Moon    ecs.EntityID
	Terrain ecs.EntityID
	Petals  ecs.EntityID

	Character    ecs.EntityID
	HasCharacter bool
}

// BuildWorld 按配置创建星空、月亮、地形和花瓣实体
//
// 各实体使用由 seed 派生的独立随机流，数量变化不会影响其它实体的布局。
func BuildWorld(em *ecs.EntityManager, sc config.SceneConfig, tex Textures) *World {
	w := &World{}

	w.Stars = em.CreateEntity()
	ecs.AddComponent(em, w.Stars, &components.TransformComponent{})
	ecs.AddComponent(em, w.Stars, &components.SpinComponent{RatePerTick: 0.00005})
	ecs.AddComponent(em, w.Stars, &components.PointCloudComponent{
		Points:     procgen.StarField(procgen.NewRand(sc.Seed+1), sc.StarCount),
		Sprite:     tex.Star,
		BaseSize:   starBaseSize,
		Opacity:    starOpacity,
		Additive:   true,
		Background: true,
	})

	w.Moon = em.CreateEntity()
	ecs.AddComponent(em, w.Moon, &components.TransformComponent{Position: MoonPosition})
	ecs.AddComponent(em, w.Moon, &components.MoonComponent{Layers: components.DefaultMoonLayers()})
	ecs.AddComponent(em, w.Moon, &components.SwayComponent{Amplitude: 0.05, Frequency: 0.0001})
	ecs.AddComponent(em, w.Moon, &components.GlowPulseComponent{Base: 0.3, Amplitude: 0.1, Frequency: 0.002, Opacity: 0.3})

	w.Terrain = em.CreateEntity()
	ecs.AddComponent(em, w.Terrain, &components.TerrainComponent{
		Field:   procgen.Terrain(procgen.NewRand(sc.Seed+2), float32(sc.TerrainSize), sc.TerrainSegments),
		Texture: tex.Flower,
		Repeat:  terrainRepeat,
		Tint:    GroundTint,
	})

	w.Petals = em.CreateEntity()
	ecs.AddComponent(em, w.Petals, &components.PointCloudComponent{
		Points:   procgen.PetalField(procgen.NewRand(sc.Seed+3), sc.PetalCount),
		Sprite:   tex.Petal,
		BaseSize: petalBaseSize,
		Opacity:  petalOpacity,
		Fogged:   true,
	})
	ecs.AddComponent(em, w.Petals, &components.PetalDriftComponent{
		FallPerTick: 0.008,
		Drift:       0.005,
		Frequency:   0.001,
		Floor:       -15,
		Ceiling:     30,
	})

	return w
}

// AddCharacter 把加载好的角色贴图放到场景中央，只添加一次
func (w *World) AddCharacter(em *ecs.EntityManager, img *ebiten.Image) {
	if w.HasCharacter || img == nil {
		return
	}
	w.Character = em.CreateEntity()
	w.HasCharacter = true

	ecs.AddComponent(em, w.Character, &components.TransformComponent{Position: CharacterPosition, Scale: characterScale})
	ecs.AddComponent(em, w.Character, &components.SpriteComponent{Image: img, Height: characterHeight})
	ecs.AddComponent(em, w.Character, &components.BobComponent{
		BaseY:     procgen.TerrainBaseY,
		Amplitude: 0.02,
		Frequency: 0.0003,
	})
}
