package components

import "github.com/decker502/snake/pkg/types"

// SnakeComponent 蛇身状态
//
// Body 按顺序存储占用的格子，Body[0] 为蛇头，最后一个为蛇尾。
// 存活期间所有格子互不重叠，长度至少为 1。
// 碰撞检测由调用者（SnakeGame）在 Advance 之前完成。
type SnakeComponent struct {
	Body []types.Cell
}

// NewSnakeComponent 创建只有一节的蛇
func NewSnakeComponent(start types.Cell) *SnakeComponent {
	s := &SnakeComponent{}
	s.Reset(start)
	return s
}

// Reset 把蛇重置为位于 start 的单节蛇
func (s *SnakeComponent) Reset(start types.Cell) {
	s.Body = []types.Cell{start}
}

// Head 返回蛇头
func (s *SnakeComponent) Head() types.Cell {
	return s.Body[0]
}

// Len 返回蛇的长度
func (s *SnakeComponent) Len() int {
	return len(s.Body)
}

// Segments 返回蛇身的副本
func (s *SnakeComponent) Segments() []types.Cell {
	out := make([]types.Cell, len(s.Body))
	copy(out, s.Body)
	return out
}

// PeekNextHead 返回沿 d 移动一格后的蛇头位置，不修改蛇身
func (s *SnakeComponent) PeekNextHead(d types.Direction) types.Cell {
	return s.Head().Add(d)
}

// Advance 在头部插入 newHead
// ateFood 为 false 时移除蛇尾，长度不变；为 true 时保留蛇尾，长度加 1
func (s *SnakeComponent) Advance(newHead types.Cell, ateFood bool) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	if !ateFood {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// ContainsCell 线性扫描所有节（包括蛇头）
func (s *SnakeComponent) ContainsCell(c types.Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}
