package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ Scene = (*SnakeScene)(nil)

// SnakeScene 贪吃蛇主场景
//
// 每帧流程：InputSystem -> SnakeGame.Update；
// 绘制时 RenderSystem 生成请求，CommandDrawSystem 输出到屏幕。
type SnakeScene struct {
	snakeGame    *game.SnakeGame
	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem
	drawSystem   *systems.CommandDrawSystem

	exitRequested bool

	// 窗口标题显示分数
	baseTitle  string
	shownScore int
	setTitle   func(string)
}

// NewSnakeScene 创建贪吃蛇场景
func NewSnakeScene(g *game.SnakeGame, input *systems.InputSystem, render *systems.RenderSystem, baseTitle string) *SnakeScene {
	scene := &SnakeScene{
		snakeGame:    g,
		inputSystem:  input,
		renderSystem: render,
		drawSystem:   systems.NewCommandDrawSystem(),
		baseTitle:    baseTitle,
		shownScore:   -1,
		setTitle:     ebiten.SetWindowTitle,
	}
	log.Printf("[SnakeScene] Created")
	return scene
}

// Update 处理输入并推进游戏状态
func (s *SnakeScene) Update(deltaTime float64) {
	if s.exitRequested {
		return
	}

	intents := s.inputSystem.Poll()
	result := s.snakeGame.Update(deltaTime, intents)
	if result.Exit {
		s.exitRequested = true
		return
	}

	s.updateTitle()
}

// updateTitle 分数变化时更新窗口标题
func (s *SnakeScene) updateTitle() {
	score := s.snakeGame.Score()
	if score == s.shownScore {
		return
	}
	s.shownScore = score
	s.setTitle(fmt.Sprintf("%s - Score: %d", s.baseTitle, score))
}

// Draw 绘制当前帧
func (s *SnakeScene) Draw(screen *ebiten.Image) {
	s.drawSystem.Draw(screen, s.renderSystem.BuildCommands(s.snakeGame))
}

// ExitRequested 实现 game.ExitRequester
func (s *SnakeScene) ExitRequested() bool {
	return s.exitRequested
}

// Game 返回场景持有的游戏状态机
func (s *SnakeScene) Game() *game.SnakeGame {
	return s.snakeGame
}
