// Package scenes 作品集的各个场景：加载页、3D 主场景、小屏提示页
package scenes

import (
	"github.com/decker502/moonbloom/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene          = (*LoadingScene)(nil)
	_ Scene          = (*PortfolioScene)(nil)
	_ Scene          = (*NoticeScene)(nil)
	_ game.Resizable = (*LoadingScene)(nil)
	_ game.Resizable = (*PortfolioScene)(nil)
)
