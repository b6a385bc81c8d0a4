package systems

import (
	"math"

	"github.com/decker502/moonbloom/pkg/components"
	"github.com/decker502/moonbloom/pkg/ecs"
)

// AmbientSystem 推进与导航无关的环境动画：月亮摆动、光晕呼吸、星空旋转、角色浮动
//
// nowMs 为场景启动以来的毫秒数，所有公式都只依赖它（星空旋转除外，按帧累加）。
type AmbientSystem struct {
	entityManager *ecs.EntityManager
}

// NewAmbientSystem 创建环境动画系统
func NewAmbientSystem(em *ecs.EntityManager) *AmbientSystem {
	return &AmbientSystem{entityManager: em}
}

// Update 每帧调用一次
func (s *AmbientSystem) Update(nowMs float64) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.SwayComponent, *components.TransformComponent](em) {
		sway, _ := ecs.GetComponent[*components.SwayComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		tr.RotationZ = float32(math.Sin(nowMs*sway.Frequency) * sway.Amplitude)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.GlowPulseComponent](em) {
		glow, _ := ecs.GetComponent[*components.GlowPulseComponent](em, id)
		glow.Opacity = glow.Base + math.Sin(nowMs*glow.Frequency)*glow.Amplitude
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SpinComponent, *components.TransformComponent](em) {
		spin, _ := ecs.GetComponent[*components.SpinComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		tr.RotationY = float32(math.Mod(float64(tr.RotationY)+spin.RatePerTick, 2*math.Pi))
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BobComponent, *components.TransformComponent](em) {
		bob, _ := ecs.GetComponent[*components.BobComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		tr.Position[1] = float32(bob.BaseY + math.Sin(nowMs*bob.Frequency)*bob.Amplitude)
	}
}
