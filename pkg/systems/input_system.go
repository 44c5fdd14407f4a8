package systems

import (
	"github.com/decker502/snake/pkg/types"
	"github.com/decker502/snake/pkg/utils"
)

// SwipeThreshold 滑动转向的最小距离（像素）
const SwipeThreshold = 30

// InputSystem 输入适配器
// 把原始输入快照翻译成离散意图，除映射外不保存任何状态
type InputSystem struct {
	poll func() utils.RawInput
}

// NewInputSystem 创建读取 ebiten 输入的输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{poll: utils.PollRawInput}
}

// NewInputSystemWithSource 使用自定义输入源创建输入系统（用于测试和无窗口验证）
func NewInputSystemWithSource(poll func() utils.RawInput) *InputSystem {
	return &InputSystem{poll: poll}
}

// Poll 读取本帧输入并返回意图列表
func (s *InputSystem) Poll() []types.Intent {
	return s.MapIntents(s.poll())
}

// MapIntents 把原始输入映射为意图
//
// 顺序固定：Exit、Confirm、PointerClick、转向（W, S, A, D）、滑动转向。
// 状态机按顺序消费，同一帧只接受第一个有效转向。
func (s *InputSystem) MapIntents(raw utils.RawInput) []types.Intent {
	var intents []types.Intent

	if raw.Escape {
		intents = append(intents, types.Intent{Kind: types.IntentExit})
	}
	if raw.Confirm {
		intents = append(intents, types.Intent{Kind: types.IntentConfirm})
	}
	if raw.PointerPressed {
		intents = append(intents, types.Intent{Kind: types.IntentPointerClick, X: raw.PointerX, Y: raw.PointerY})
	}

	if raw.Up {
		intents = append(intents, types.Intent{Kind: types.IntentTurnUp})
	}
	if raw.Down {
		intents = append(intents, types.Intent{Kind: types.IntentTurnDown})
	}
	if raw.Left {
		intents = append(intents, types.Intent{Kind: types.IntentTurnLeft})
	}
	if raw.Right {
		intents = append(intents, types.Intent{Kind: types.IntentTurnRight})
	}

	if raw.Swiped {
		if kind, ok := swipeIntent(raw.SwipeDX, raw.SwipeDY); ok {
			intents = append(intents, types.Intent{Kind: kind})
		}
	}

	return intents
}

// swipeIntent 取主轴方向，距离不足 SwipeThreshold 时忽略
func swipeIntent(dx, dy int) (types.IntentKind, bool) {
	adx, ady := abs(dx), abs(dy)
	if adx < SwipeThreshold && ady < SwipeThreshold {
		return 0, false
	}

	if adx >= ady {
		if dx > 0 {
			return types.IntentTurnRight, true
		}
		return types.IntentTurnLeft, true
	}

	if dy > 0 {
		return types.IntentTurnDown, true
	}
	return types.IntentTurnUp, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
