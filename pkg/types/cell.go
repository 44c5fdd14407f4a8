// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Cell 网格坐标（从 0 开始）
// 值类型，可直接用 == 比较
type Cell struct {
	X int
	Y int
}

// Add 返回沿方向移动一格后的坐标
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}
