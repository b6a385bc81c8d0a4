package components

import (
	"github.com/decker502/moonbloom/pkg/procgen"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointCloudComponent 以贴图精灵绘制的点云（星空、花瓣）
//
// 每个点的屏幕尺寸 = BaseSize * Sizes[i]，随距离衰减。
type PointCloudComponent struct {
	Points *procgen.Points

	Sprite   *ebiten.Image
	BaseSize float32 // 世界单位
	Opacity  float32
	Additive bool

	// Fogged 为 true 时受场景雾影响
	Fogged bool
	// Background 为 true 时在地形之前绘制（星空）
	Background bool
}
