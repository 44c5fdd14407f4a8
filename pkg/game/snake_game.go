package game

import (
	"log"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/types"
)

// FoodSpawner 为下一份食物选择格子
// 实现见 systems.FoodSpawnSystem，测试中可以替换为固定序列
type FoodSpawner interface {
	Spawn(grid components.GridComponent) types.Cell
}

// UpdateResult 单帧更新的结果
type UpdateResult struct {
	// Exit 为 true 表示收到退出意图，调用者应结束进程
	Exit bool
}

// SnakeGame 游戏状态机
//
// 状态只有 Playing 和 GameOver 两种：
//   - Playing: 每个移动间隔执行一次 Tick，撞墙或撞到自己进入 GameOver
//   - GameOver: 只接受重新开始（确认键或点击重新开始按钮）
//
// 所有状态都由 SnakeGame 独占，渲染系统通过只读访问器读取。
type SnakeGame struct {
	grid          components.GridComponent
	snake         *components.SnakeComponent
	food          types.Cell
	direction     types.Direction
	timer         components.TimerComponent
	state         types.GameState
	score         int
	cellSize      int
	restartButton components.ButtonComponent
	spawner       FoodSpawner
}

// NewSnakeGame 根据启动配置创建游戏并执行首次 Reset
func NewSnakeGame(cfg *config.GameConfig, spawner FoodSpawner) *SnakeGame {
	btn := cfg.GameOver.RestartButton
	g := &SnakeGame{
		grid:     components.NewGridComponent(cfg.Grid.Width, cfg.Grid.Height),
		cellSize: cfg.Grid.CellSize,
		timer:    components.NewTimerComponent("snake_move", cfg.MoveInterval),
		restartButton: components.ButtonComponent{
			X:           btn.X,
			Y:           btn.Y,
			Width:       btn.Width,
			Height:      btn.Height,
			Text:        cfg.GameOver.RestartLabel,
			TextOffsetY: cfg.GameOver.RestartLabelOffsetY,
			Color:       cfg.Colors.RestartButton,
			TextColor:   cfg.Colors.RestartText,
		},
		spawner: spawner,
	}
	g.Reset()

	log.Printf("[SnakeGame] Initialized: grid=%dx%d, cellSize=%d, moveInterval=%.2fs",
		g.grid.Width, g.grid.Height, g.cellSize, g.timer.TargetTime)
	return g
}

// Reset 重新开始一局
// 蛇回到网格中心（单节），方向向右，重新生成食物，计时器清零
func (g *SnakeGame) Reset() {
	start := g.grid.Center()
	if g.snake == nil {
		g.snake = components.NewSnakeComponent(start)
	} else {
		g.snake.Reset(start)
	}
	g.direction = types.DirRight
	g.food = g.spawner.Spawn(g.grid)
	g.state = types.GameStatePlaying
	g.score = 0
	g.timer.Reset()

	log.Printf("[SnakeGame] Reset: head=%v, food=%v", start, g.food)
}

// Update 处理一帧
//
// 处理顺序：
//  1. 退出意图优先，直接返回
//  2. GameOver 时只检查重新开始，本帧不移动
//  3. Playing 时先处理转向（每帧最多接受一次），再推进计时器
func (g *SnakeGame) Update(deltaTime float64, intents []types.Intent) UpdateResult {
	for _, intent := range intents {
		if intent.Kind == types.IntentExit {
			log.Printf("[SnakeGame] Exit requested")
			return UpdateResult{Exit: true}
		}
	}

	if g.state == types.GameStateGameOver {
		if g.restartRequested(intents) {
			g.Reset()
		}
		return UpdateResult{}
	}

	for _, intent := range intents {
		d, ok := intent.TurnDirection()
		if !ok {
			continue
		}
		if g.ChangeDirection(d) {
			break
		}
	}

	if g.timer.Tick(deltaTime) {
		g.Tick()
	}

	return UpdateResult{}
}

// restartRequested 检查本帧是否有重新开始意图
func (g *SnakeGame) restartRequested(intents []types.Intent) bool {
	for _, intent := range intents {
		switch intent.Kind {
		case types.IntentConfirm:
			return true
		case types.IntentPointerClick:
			if g.restartButton.Contains(intent.X, intent.Y) {
				return true
			}
		}
	}
	return false
}

// ChangeDirection 尝试转向
// 只在 Playing 状态且不是直接掉头时接受，返回是否接受
func (g *SnakeGame) ChangeDirection(d types.Direction) bool {
	if g.state != types.GameStatePlaying {
		return false
	}
	if !g.direction.CanTurnTo(d) {
		return false
	}
	g.direction = d
	return true
}

// Tick 执行一次离散移动
// 先检查撞墙，再检查撞到自己，都没有则前进并检查是否吃到食物
func (g *SnakeGame) Tick() {
	if g.state != types.GameStatePlaying {
		return
	}

	newHead := g.snake.PeekNextHead(g.direction)

	if !g.grid.InBounds(newHead) {
		g.gameOver("wall", newHead)
		return
	}

	if g.snake.ContainsCell(newHead) {
		g.gameOver("self", newHead)
		return
	}

	ateFood := newHead == g.food
	g.snake.Advance(newHead, ateFood)

	if ateFood {
		g.score++
		g.food = g.spawner.Spawn(g.grid)
		log.Printf("[SnakeGame] Food eaten at %v, length=%d, next food=%v", newHead, g.snake.Len(), g.food)
	}
}

// gameOver 切换到 GameOver 状态
func (g *SnakeGame) gameOver(reason string, at types.Cell) {
	g.state = types.GameStateGameOver
	log.Printf("[SnakeGame] Game over (%s collision at %v), length=%d, score=%d",
		reason, at, g.snake.Len(), g.score)
}

// State 返回当前游戏状态
func (g *SnakeGame) State() types.GameState {
	return g.state
}

// Snake 返回蛇身组件（只读使用）
func (g *SnakeGame) Snake() *components.SnakeComponent {
	return g.snake
}

// Food 返回食物位置
func (g *SnakeGame) Food() types.Cell {
	return g.food
}

// Direction 返回当前移动方向
func (g *SnakeGame) Direction() types.Direction {
	return g.direction
}

// Timer 返回移动计时器
func (g *SnakeGame) Timer() components.TimerComponent {
	return g.timer
}

// Score 返回本局吃到的食物数量
func (g *SnakeGame) Score() int {
	return g.score
}

// Grid 返回网格
func (g *SnakeGame) Grid() components.GridComponent {
	return g.grid
}

// CellSize 返回格子边长（像素）
func (g *SnakeGame) CellSize() int {
	return g.cellSize
}

// RestartButton 返回重新开始按钮
func (g *SnakeGame) RestartButton() components.ButtonComponent {
	return g.restartButton
}
