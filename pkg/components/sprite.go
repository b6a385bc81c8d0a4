package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 面向镜头的贴图（角色）
// 贴图底边中点对齐实体位置，Height 为世界单位高度
type SpriteComponent struct {
	Image  *ebiten.Image
	Height float32
}
