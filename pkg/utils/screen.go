package utils

// IsSmallScreen 窗口宽度小于 minWidth 时认为是小屏
// minWidth <= 0 表示不限制
func IsSmallScreen(width, minWidth int) bool {
	return minWidth > 0 && width < minWidth
}

// ShouldShowNotice 移动设备或小屏时显示提示页而不是 3D 场景
func ShouldShowNotice(width, minWidth int) bool {
	return IsMobile() || IsSmallScreen(width, minWidth)
}
