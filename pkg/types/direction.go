package types

// Direction 移动方向，以单位向量表示
type Direction struct {
	DX int
	DY int
}

var (
	// DirUp 向上 (0,-1)
	DirUp = Direction{DX: 0, DY: -1}
	// DirDown 向下 (0,1)
	DirDown = Direction{DX: 0, DY: 1}
	// DirLeft 向左 (-1,0)
	DirLeft = Direction{DX: -1, DY: 0}
	// DirRight 向右 (1,0)
	DirRight = Direction{DX: 1, DY: 0}
)

// CanTurnTo 检查能否从当前方向转向 next
//
// 只允许换轴：水平转向要求当前 DX 为 0，竖直转向要求当前 DY 为 0。
// 蛇头后面紧跟的第一节身体总在当前方向的反方向上，因此不能直接掉头。
func (d Direction) CanTurnTo(next Direction) bool {
	switch {
	case next.DX != 0 && next.DY == 0:
		return d.DX == 0
	case next.DY != 0 && next.DX == 0:
		return d.DY == 0
	default:
		return false
	}
}

// String 返回方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}
