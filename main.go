package main

import (
	"flag"
	"log"

	"github.com/decker502/moonbloom/pkg/app"
	"github.com/decker502/moonbloom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "作品集配置文件路径（覆盖内嵌的 data/portfolio.yaml）")
	section := flag.Int("section", -1, "加载完成后跳转到的分区（从 0 开始）")
	flag.Parse()

	app.ConfigureLogging(*verbose)

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	portfolio, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *section >= len(portfolio.Sections) {
		log.Printf("[Main] --section %d out of range (%d sections), ignored", *section, len(portfolio.Sections))
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Portfolio:    portfolio,
		StartSection: *section,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	w := gameApp.WindowConfig()
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
