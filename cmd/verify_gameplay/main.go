// verify_gameplay 无窗口运行一局贪吃蛇并打印每次移动后的状态
//
// 用法：
//
//	go run ./cmd/verify_gameplay --seed 42 --frames 600 --turns "30:D,60:L"
//
// --turns 格式为 "帧号:方向"，方向取 U/D/L/R，在对应帧注入一次转向。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/systems"
	"github.com/decker502/snake/pkg/types"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 1, "食物随机数种子")
	frames     = flag.Int("frames", 600, "模拟的帧数（60 帧/秒）")
	turns      = flag.String("turns", "", "转向脚本，如 \"30:D,60:L\"")
	configPath = flag.String("config", "", "YAML 配置文件路径（为空使用默认配置）")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	script, err := parseTurns(*turns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 转向脚本解析失败: %v\n", err)
		os.Exit(1)
	}

	g := game.NewSnakeGame(cfg, systems.NewSeededFoodSpawnSystem(*seed))
	deltaTime := 1.0 / 60.0
	lastHead := g.Snake().Head()

	fmt.Printf("开始: head=%v food=%v dir=%v\n", lastHead, g.Food(), g.Direction())
	for frame := 0; frame < *frames; frame++ {
		var intents []types.Intent
		if kind, ok := script[frame]; ok {
			intents = append(intents, types.Intent{Kind: kind})
		}

		g.Update(deltaTime, intents)

		if head := g.Snake().Head(); head != lastHead {
			fmt.Printf("帧 %4d: head=%v len=%d food=%v dir=%v\n",
				frame, head, g.Snake().Len(), g.Food(), g.Direction())
			lastHead = head
		}

		if g.State() == types.GameStateGameOver {
			fmt.Printf("帧 %4d: GameOver, len=%d score=%d\n", frame, g.Snake().Len(), g.Score())
			return
		}
	}
	fmt.Printf("结束: 仍在进行中, len=%d score=%d\n", g.Snake().Len(), g.Score())
}

// parseTurns 解析 "帧号:方向" 列表
func parseTurns(s string) (map[int]types.IntentKind, error) {
	script := make(map[int]types.IntentKind)
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for _, entry := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid entry %q (want frame:dir)", entry)
		}

		frame, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid frame in %q: %w", entry, err)
		}

		var kind types.IntentKind
		switch strings.ToUpper(parts[1]) {
		case "U":
			kind = types.IntentTurnUp
		case "D":
			kind = types.IntentTurnDown
		case "L":
			kind = types.IntentTurnLeft
		case "R":
			kind = types.IntentTurnRight
		default:
			return nil, fmt.Errorf("invalid direction in %q (want U/D/L/R)", entry)
		}
		script[frame] = kind
	}
	return script, nil
}
