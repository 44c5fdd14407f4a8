package types

// IntentKind 输入意图类型
type IntentKind int

const (
	// IntentTurnUp 向上转
	IntentTurnUp IntentKind = iota
	// IntentTurnDown 向下转
	IntentTurnDown
	// IntentTurnLeft 向左转
	IntentTurnLeft
	// IntentTurnRight 向右转
	IntentTurnRight
	// IntentConfirm 确认（重新开始）
	IntentConfirm
	// IntentPointerClick 指针点击，坐标见 Intent.X / Intent.Y
	IntentPointerClick
	// IntentExit 退出程序
	IntentExit
)

// Intent 一帧内的离散输入意图
type Intent struct {
	Kind IntentKind
	// X, Y 仅对 IntentPointerClick 有效（屏幕坐标）
	X, Y int
}

// TurnDirection 返回转向意图对应的方向
// 非转向意图返回 false
func (i Intent) TurnDirection() (Direction, bool) {
	switch i.Kind {
	case IntentTurnUp:
		return DirUp, true
	case IntentTurnDown:
		return DirDown, true
	case IntentTurnLeft:
		return DirLeft, true
	case IntentTurnRight:
		return DirRight, true
	default:
		return Direction{}, false
	}
}

// String 返回意图类型的字符串表示
func (k IntentKind) String() string {
	switch k {
	case IntentTurnUp:
		return "TurnUp"
	case IntentTurnDown:
		return "TurnDown"
	case IntentTurnLeft:
		return "TurnLeft"
	case IntentTurnRight:
		return "TurnRight"
	case IntentConfirm:
		return "Confirm"
	case IntentPointerClick:
		return "PointerClick"
	case IntentExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
