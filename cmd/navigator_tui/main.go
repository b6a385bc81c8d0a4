// navigator_tui 在终端里演示分区导航
//
// 使用与图形版相同的 Navigator 和 tween.Driver，镜头替换为只记录坐标的虚拟镜头。
//
// 用法:
//
//	go run ./cmd/navigator_tui [--config data/portfolio.yaml] [--verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/decker502/moonbloom/pkg/config"
	"github.com/decker502/moonbloom/pkg/navigation"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "作品集配置文件路径")
	verbose := flag.Bool("verbose", false, "把日志写入 navigator_tui.log")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	// 日志会破坏终端画面，详细模式下写入文件
	if verbose {
		f, err := tea.LogToFile("navigator_tui.log", "")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadPortfolioConfig(configPath)
	if err != nil {
		return err
	}

	m, err := newModel(cfg, navigation.SystemClock{})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
