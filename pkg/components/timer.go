package components

// TimerComponent 通用计时器组件
// 用于按固定间隔触发离散行为（如蛇的移动）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "snake_move"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
}

// NewTimerComponent 创建计时器
func NewTimerComponent(name string, targetTime float64) TimerComponent {
	return TimerComponent{Name: name, TargetTime: targetTime}
}

// Tick 累加经过的时间
// 达到或超过目标时间时返回 true 并清零。
// 一次最多触发一次，多出来的时间直接丢弃。
func (t *TimerComponent) Tick(deltaTime float64) bool {
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.CurrentTime = 0
		return true
	}
	return false
}

// Reset 清零计时器
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
}
