package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/types"
)

// 结束提示横幅尺寸
// 宽度按每个字符 8 像素估算，外加左右留白
const (
	bannerCharWidth = 8
	bannerPaddingX  = 8
	bannerHeight    = 24
)

// RenderSystem 渲染适配器
//
// 把游戏状态翻译成绘制请求：
//   - 背景清屏
//   - 食物（红色）
//   - 蛇的每一节（蛇头在前）
//   - GameOver 时的提示横幅、重新开始按钮和按钮文字
//
// BuildCommands 是纯函数，状态不变时多次调用得到相同的请求序列。
type RenderSystem struct {
	colors   config.ColorConfig
	gameOver config.GameOverConfig
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(cfg *config.GameConfig) *RenderSystem {
	return &RenderSystem{
		colors:   cfg.Colors,
		gameOver: cfg.GameOver,
	}
}

// BuildCommands 生成当前帧的绘制请求
func (s *RenderSystem) BuildCommands(g *game.SnakeGame) []components.DrawCommand {
	cellSize := g.CellSize()
	segments := g.Snake().Segments()
	cmds := make([]components.DrawCommand, 0, len(segments)+6)

	cmds = append(cmds, components.DrawCommand{
		Type:  components.DrawClear,
		Color: components.RGBA(s.colors.Background),
	})

	cmds = append(cmds, cellRect(g.Food(), cellSize, s.colors.Food))

	for _, part := range segments {
		cmds = append(cmds, cellRect(part, cellSize, s.colors.Snake))
	}

	if g.State() == types.GameStateGameOver {
		cmds = append(cmds, s.gameOverCommands(g.RestartButton())...)
	}

	return cmds
}

// gameOverCommands 生成结束界面的绘制请求
func (s *RenderSystem) gameOverCommands(btn components.ButtonComponent) []components.DrawCommand {
	msg := s.gameOver.Message
	bannerWidth := len(msg)*bannerCharWidth + 2*bannerPaddingX
	labelX, labelY := btn.LabelPosition()

	return []components.DrawCommand{
		{
			Type:   components.DrawRect,
			X:      s.gameOver.MessageX - bannerWidth/2,
			Y:      s.gameOver.MessageY - bannerHeight/2,
			Width:  bannerWidth,
			Height: bannerHeight,
			Color:  components.RGBA(s.colors.Banner),
		},
		{
			Type:  components.DrawText,
			X:     s.gameOver.MessageX,
			Y:     s.gameOver.MessageY,
			Color: components.RGBA(s.colors.MessageText),
			Text:  msg,
		},
		{
			Type:   components.DrawRect,
			X:      btn.X,
			Y:      btn.Y,
			Width:  btn.Width,
			Height: btn.Height,
			Color:  components.RGBA(btn.Color),
		},
		{
			Type:  components.DrawText,
			X:     labelX,
			Y:     labelY,
			Color: components.RGBA(btn.TextColor),
			Text:  btn.Text,
		},
	}
}

// cellRect 格子 (x, y) 对应屏幕矩形 (x*cell, y*cell, cell, cell)
func cellRect(c types.Cell, cellSize int, clr [4]uint8) components.DrawCommand {
	return components.DrawCommand{
		Type:   components.DrawRect,
		X:      c.X * cellSize,
		Y:      c.Y * cellSize,
		Width:  cellSize,
		Height: cellSize,
		Color:  components.RGBA(clr),
	}
}
