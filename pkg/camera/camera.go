// Package camera 提供透视镜头和世界坐标到屏幕坐标的投影
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// 默认镜头参数
const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Camera 透视镜头，视图/投影矩阵按需重新计算
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	FOV    float32 // 垂直视角（度）
	Aspect float32
	Near   float32
	Far    float32

	viewProj mgl32.Mat4
	dirty    bool
}

// New 创建镜头
func New(position, target mgl32.Vec3, aspect float32) *Camera {
	return &Camera{
		position: position,
		target:   target,
		up:       mgl32.Vec3{0, 1, 0},
		FOV:      DefaultFOV,
		Aspect:   aspect,
		Near:     DefaultNear,
		Far:      DefaultFar,
		dirty:    true,
	}
}

// Position 实现 tween.Target
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition 实现 tween.Target
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.dirty = true
}

// Target 当前注视点
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// LookAt 改变注视点
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.target = target
	c.dirty = true
}

// SetAspect 窗口尺寸变化时更新宽高比
func (c *Camera) SetAspect(aspect float32) {
	if aspect <= 0 || aspect == c.Aspect {
		return
	}
	c.Aspect = aspect
	c.dirty = true
}

// ViewProjection 返回 projection * view
func (c *Camera) ViewProjection() mgl32.Mat4 {
	if c.dirty {
		c.update()
	}
	return c.viewProj
}

func (c *Camera) update() {
	eye := c.position
	// 位置和注视点重合时 LookAtV 会得到 NaN，稍微后移
	if eye.Sub(c.target).Len() < 1e-5 {
		eye = eye.Add(mgl32.Vec3{0, 0, 1e-3})
	}
	up := c.up
	// 垂直俯视或仰视时视线与 up 平行，改用 -Z 作为屏幕上方
	if dir := c.target.Sub(eye).Normalize(); dir.Cross(up).Len() < 1e-6 {
		up = mgl32.Vec3{0, 0, -1}
	}
	view := mgl32.LookAtV(eye, c.target, up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
	c.dirty = false
}

// Project 把世界坐标投影到 width x height 的屏幕
//
// 返回屏幕坐标、线性化前的深度（NDC z，[-1, 1]）和 w（到镜头的视空间距离）。
// 点在镜头后方或超出远/近平面时 ok 为 false。
func (c *Camera) Project(world mgl32.Vec3, width, height int) (x, y, depth, w float32, ok bool) {
	clip := c.ViewProjection().Mul4x1(world.Vec4(1))
	w = clip.W()
	if w <= c.Near {
		return 0, 0, 0, w, false
	}

	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, w, false
	}

	x = (ndc.X() + 1) * 0.5 * float32(width)
	y = (1 - ndc.Y()) * 0.5 * float32(height)
	return x, y, ndc.Z(), w, true
}

// ScaleAt 返回世界尺寸 size 在视距 w 处对应的屏幕像素大小
func (c *Camera) ScaleAt(size, w float32, height int) float32 {
	if w <= 0 {
		return 0
	}
	f := 1 / tan32(mgl32.DegToRad(c.FOV)/2)
	return size * f / w * float32(height) * 0.5
}

func tan32(r float32) float32 {
	return float32(math.Tan(float64(r)))
}
