package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTerrainStride(t *testing.T) {
	tests := []struct {
		segments, max, want int
	}{
		{150, 75, 2},
		{75, 75, 1},
		{76, 75, 2},
		{20, 75, 1},
		{0, 75, 1},
		{300, 0, 1},
	}
	for _, tt := range tests {
		if got := TerrainStride(tt.segments, tt.max); got != tt.want {
			t.Errorf("TerrainStride(%d, %d) = %d, want %d", tt.segments, tt.max, got, tt.want)
		}
	}
}

func TestTerrainStepsIncludesLastRow(t *testing.T) {
	steps := terrainSteps(151, 2)
	if steps[0] != 0 || steps[len(steps)-1] != 151 {
		t.Errorf("steps should span [0, 151], got first=%d last=%d", steps[0], steps[len(steps)-1])
	}
	if quads := len(steps) - 1; quads > MaxTerrainQuads+1 {
		t.Errorf("too many quads per side: %d", quads)
	}

	exact := terrainSteps(150, 2)
	if len(exact) != 76 || exact[75] != 150 {
		t.Errorf("terrainSteps(150, 2) = %d entries ending at %d", len(exact), exact[len(exact)-1])
	}
}

func TestLightingFog(t *testing.T) {
	l := DefaultLighting(0.01)
	if l.Fog(0) != 1 {
		t.Errorf("Fog(0) = %v, want 1", l.Fog(0))
	}
	near, far := l.Fog(10), l.Fog(200)
	if !(near > far) || far < 0 || near > 1 {
		t.Errorf("fog should decrease with distance: near=%v far=%v", near, far)
	}

	if off := DefaultLighting(0); off.Fog(1000) != 1 {
		t.Error("zero density should disable fog")
	}
}

// TestLightingShade 朝上的表面比朝下的更亮，且至少有环境光
func TestLightingShade(t *testing.T) {
	l := DefaultLighting(0.01)
	pos := mgl32.Vec3{0, -5, 0}

	up := l.Shade(pos, mgl32.Vec3{0, 1, 0})
	down := l.Shade(pos, mgl32.Vec3{0, -1, 0})

	if up.X() <= down.X() || up.Z() <= down.Z() {
		t.Errorf("upward normal %v should be brighter than downward %v", up, down)
	}

	ambient := rgbVec(l.AmbientColor).Mul(l.AmbientIntensity)
	if down.Sub(ambient).Len() > 1e-5 {
		t.Errorf("downward normal should only receive ambient light, got %v want %v", down, ambient)
	}
}
