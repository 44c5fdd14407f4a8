package components

import "image/color"

// DrawCommandType 绘制请求类型
type DrawCommandType int

const (
	// DrawClear 用 Color 填充整个屏幕
	DrawClear DrawCommandType = iota
	// DrawRect 填充矩形 (X, Y, Width, Height)
	DrawRect
	// DrawText 以 (X, Y) 为中心绘制 Text
	DrawText
)

// DrawCommand 一条绘制请求
// 渲染系统只计算几何和颜色，实际像素输出由绘制后端负责
type DrawCommand struct {
	Type   DrawCommandType
	X, Y   int
	Width  int
	Height int
	Color  color.RGBA
	Text   string
}

// RGBA 把 [R, G, B, A] 转换为 color.RGBA
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
