// validate_config 检查贪吃蛇 YAML 配置文件
//
// 用法：
//
//	go run ./cmd/validate_config data/snake.yaml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/snake/pkg/config"
)

func main() {
	path := "data/snake.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfigFile(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确: %s\n", path)
	fmt.Printf("✅ 网格 %dx%d, 格子 %dpx, 窗口 %dx%d\n",
		cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize, cfg.Window.Width, cfg.Window.Height)
	fmt.Printf("✅ 移动间隔 %.2fs\n", cfg.MoveInterval)
}
