package scenes

import (
	"time"

	"github.com/decker502/moonbloom/pkg/utils"
)

// InputSource 每帧的原始输入，场景通过它轮询而不直接依赖 ebiten 全局状态
type InputSource interface {
	// WheelDeltaY 浏览器符号约定：正值表示向下滚动
	WheelDeltaY() float64
	// JustPressedKeys 本帧刚按下的按键名
	JustPressedKeys() []string
	// JustClicked 本帧是否有点击/触摸，以及位置
	JustClicked() (bool, int, int)
}

// EbitenInput 从 ebiten 读取输入
type EbitenInput struct{}

// WheelDeltaY 实现 InputSource
func (EbitenInput) WheelDeltaY() float64 {
	return utils.WheelDeltaY()
}

// JustPressedKeys 实现 InputSource
func (EbitenInput) JustPressedKeys() []string {
	return utils.JustPressedKeyNames()
}

// JustClicked 实现 InputSource
func (EbitenInput) JustClicked() (bool, int, int) {
	return utils.IsJustTouchedOrClicked()
}

// sceneClock 随逻辑帧推进的时钟，供滚轮防抖使用
type sceneClock struct {
	start   time.Time
	elapsed time.Duration
}

func (c *sceneClock) Now() time.Time {
	return c.start.Add(c.elapsed)
}

func (c *sceneClock) advance(dt float64) {
	c.elapsed += time.Duration(dt * float64(time.Second))
}

// Millis 场景启动以来的毫秒数，环境动画的时间基准
func (c *sceneClock) Millis() float64 {
	return float64(c.elapsed) / float64(time.Millisecond)
}
