package systems

import (
	"math"

	"github.com/decker502/moonbloom/pkg/components"
	"github.com/decker502/moonbloom/pkg/ecs"
)

// PetalDriftSystem 花瓣飘落：每帧下落并左右摆动，落到底部后回到顶部
type PetalDriftSystem struct {
	entityManager *ecs.EntityManager
}

// NewPetalDriftSystem 创建花瓣系统
func NewPetalDriftSystem(em *ecs.EntityManager) *PetalDriftSystem {
	return &PetalDriftSystem{entityManager: em}
}

// Update 每帧调用一次
//
//	y -= FallPerTick
//	x += sin(t*Frequency + i) * Drift
//	z += cos(t*Frequency + i) * Drift
//
// 其中 i 为点在扁平顶点数组中的偏移（3 的倍数）。
func (s *PetalDriftSystem) Update(nowMs float64) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.PetalDriftComponent, *components.PointCloudComponent](em) {
		drift, _ := ecs.GetComponent[*components.PetalDriftComponent](em, id)
		cloud, _ := ecs.GetComponent[*components.PointCloudComponent](em, id)
		if cloud.Points == nil {
			continue
		}

		for i := range cloud.Points.Positions {
			p := &cloud.Points.Positions[i]
			phase := nowMs*drift.Frequency + float64(i*3)

			p[1] -= float32(drift.FallPerTick)
			p[0] += float32(math.Sin(phase) * drift.Drift)
			p[2] += float32(math.Cos(phase) * drift.Drift)

			if p[1] < drift.Floor {
				p[1] = drift.Ceiling
			}
		}
	}
}
