package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// CommandDrawSystem 绘制后端
// 把 RenderSystem 生成的绘制请求输出到 ebiten 屏幕
type CommandDrawSystem struct {
	face text.Face
}

// NewCommandDrawSystem 创建绘制后端
// 文字使用内置的 7x13 位图字体，不依赖外部字体文件
func NewCommandDrawSystem() *CommandDrawSystem {
	return &CommandDrawSystem{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 按顺序执行绘制请求
func (s *CommandDrawSystem) Draw(screen *ebiten.Image, cmds []components.DrawCommand) {
	for _, cmd := range cmds {
		switch cmd.Type {
		case components.DrawClear:
			screen.Fill(cmd.Color)

		case components.DrawRect:
			vector.DrawFilledRect(
				screen,
				float32(cmd.X),
				float32(cmd.Y),
				float32(cmd.Width),
				float32(cmd.Height),
				cmd.Color,
				false,
			)

		case components.DrawText:
			s.drawCenteredText(screen, cmd)
		}
	}
}

// drawCenteredText 以 (X, Y) 为中心绘制文字
func (s *CommandDrawSystem) drawCenteredText(screen *ebiten.Image, cmd components.DrawCommand) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(cmd.Color)
	text.Draw(screen, cmd.Text, s.face, op)
}
