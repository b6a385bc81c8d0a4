//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端也按移动设备处理（用于本地调试小屏提示页）
const MobileEmulateEnv = "MOONBLOOM_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 MOONBLOOM_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
