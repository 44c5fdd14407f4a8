package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/decker502/snake/pkg/app"
	"github.com/decker502/snake/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: os.Getenv("SNAKE_VERBOSE") == "1",
		Seed:    startupSeed(),
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)

	// Start the game loop
	// Escape 使 App.Update 返回 ebiten.Termination，RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// startupSeed 返回食物随机数种子
// 可以通过环境变量 SNAKE_SEED 固定种子（用于复现）
func startupSeed() int64 {
	if v := os.Getenv("SNAKE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}
