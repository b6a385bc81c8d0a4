package components

import (
	"image/color"

	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/hajimehoshi/ebiten/v2"
)

// TerrainComponent 带纹理的高度场地形
type TerrainComponent struct {
	Field   *procgen.Heightfield
	Texture *ebiten.Image
	Repeat  float32    // 纹理在整块地形上的重复次数
	Tint    color.RGBA // 材质颜色，与纹理相乘
}
