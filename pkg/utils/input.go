// Package utils 提供平台检测和输入轮询工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyNames 把 ebiten 按键映射为浏览器 KeyboardEvent.key 风格的名字
// 配置文件中的 nextKeys/previousKeys 使用这些名字
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyPageDown:   "PageDown",
	ebiten.KeyPageUp:     "PageUp",
	ebiten.KeyHome:       "Home",
	ebiten.KeyEnd:        "End",
	ebiten.KeySpace:      " ",
	ebiten.KeyEnter:      "Enter",
	ebiten.KeyEscape:     "Escape",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
}

// KeyName 返回按键名，未映射的按键返回空字符串
func KeyName(k ebiten.Key) string {
	return keyNames[k]
}

// JustPressedKeyNames 本帧刚按下的按键名（只包含已映射的按键）
func JustPressedKeyNames() []string {
	var names []string
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if name := KeyName(k); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// WheelDeltaY 本帧的滚轮纵向增量，符号与浏览器 WheelEvent.deltaY 一致
//
// ebiten 向上滚动为正，浏览器向下滚动（内容前进）为正，这里取反。
func WheelDeltaY() float64 {
	_, dy := ebiten.Wheel()
	return -dy
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
