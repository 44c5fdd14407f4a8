package components

import "github.com/decker502/snake/pkg/types"

// GridComponent 网格模型
// 定义离散坐标空间（Width x Height 个格子）及墙壁边界
type GridComponent struct {
	Width  int // 列数
	Height int // 行数
}

// NewGridComponent 创建网格
func NewGridComponent(width, height int) GridComponent {
	return GridComponent{Width: width, Height: height}
}

// InBounds 检查格子是否在网格内
func (g GridComponent) InBounds(c types.Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center 返回网格中心格子（整数除法）
func (g GridComponent) Center() types.Cell {
	return types.Cell{X: g.Width / 2, Y: g.Height / 2}
}
