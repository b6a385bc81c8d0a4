package components

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent 实体在世界中的位置、旋转和缩放
// 旋转以弧度表示，按 Y 再 Z 的顺序应用（场景中只用到这两个轴）
type TransformComponent struct {
	Position  mgl32.Vec3
	RotationY float32
	RotationZ float32
	Scale     float32
}

// Matrix 返回模型矩阵
func (t *TransformComponent) Matrix() mgl32.Mat4 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(t.RotationY)).
		Mul4(mgl32.HomogRotate3DZ(t.RotationZ)).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}

// Apply 把局部坐标变换到世界坐标
func (t *TransformComponent) Apply(local mgl32.Vec3) mgl32.Vec3 {
	return t.Matrix().Mul4x1(local.Vec4(1)).Vec3()
}
