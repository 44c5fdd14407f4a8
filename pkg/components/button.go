package components

// ButtonComponent 按钮组件
// 包含按钮的区域、文字和颜色，不包含交互状态
type ButtonComponent struct {
	// X, Y 左上角（屏幕坐标）
	X, Y int
	// Width, Height 按钮尺寸（像素）
	Width, Height int

	// Text 按钮上显示的文字
	Text string
	// TextOffsetY 文字中心相对按钮顶边的偏移
	TextOffsetY int

	// Color 按钮背景颜色（RGBA）
	Color [4]uint8 // R, G, B, A
	// TextColor 文字颜色（RGBA）
	TextColor [4]uint8 // R, G, B, A
}

// Contains 检测点是否在按钮范围内
// 左、上边界包含在内，右、下边界不包含
func (b ButtonComponent) Contains(x, y int) bool {
	return x >= b.X &&
		x < b.X+b.Width &&
		y >= b.Y &&
		y < b.Y+b.Height
}

// LabelPosition 返回文字中心点
func (b ButtonComponent) LabelPosition() (int, int) {
	return b.X + b.Width/2, b.Y + b.TextOffsetY
}
