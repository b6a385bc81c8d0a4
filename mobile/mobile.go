//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 移动端总是显示小屏提示页（见 utils.IsMobile）。
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.moonbloom -o build/android/moonbloom.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Moonbloom.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/moonbloom/pkg/app"
	"github.com/decker502/moonbloom/pkg/embedded"
)

func init() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      true,
		StartSection: -1,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
