package hud

import (
	"image/color"
	"math"
	"time"
)

// FPS 计数器颜色
var (
	ColorFPSGood = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorFPSFair = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	ColorFPSPoor = color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}
)

// FPSCounter 统计每秒帧数，每满一秒刷新一次
type FPSCounter struct {
	frames int
	since  time.Time
	fps    int
}

// Frame 每绘制一帧调用一次，返回 true 表示数值刚刚刷新
func (c *FPSCounter) Frame(now time.Time) bool {
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++

	elapsed := now.Sub(c.since)
	if elapsed < time.Second {
		return false
	}
	c.fps = int(math.Round(float64(c.frames) * float64(time.Second) / float64(elapsed)))
	c.frames = 0
	c.since = now
	return true
}

// FPS 最近一次统计结果
func (c *FPSCounter) FPS() int {
	return c.fps
}

// FPSColor >=55 白色，>=30 金色，其余粉色
func FPSColor(fps int) color.RGBA {
	switch {
	case fps >= 55:
		return ColorFPSGood
	case fps >= 30:
		return ColorFPSFair
	default:
		return ColorFPSPoor
	}
}
