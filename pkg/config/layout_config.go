package config

// 布局配置常量
// 本文件定义了默认的窗口、网格和 UI 元素位置参数
// data/snake.yaml 缺失时 DefaultGameConfig() 使用这些值

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 是游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 是游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Snake"
)

// Grid Configuration (网格配置)
const (
	// GridColumns 是网格的列数（横向格子数）
	GridColumns = 40

	// GridRows 是网格的行数（纵向格子数）
	GridRows = 30

	// CellSize 是每个格子的边长（像素）
	// GridColumns * CellSize = 800 正好铺满窗口宽度
	CellSize = 20

	// MoveInterval 两次移动之间的间隔（秒）
	MoveInterval = 0.15
)

// Game Over UI Configuration (结束界面配置)
const (
	// GameOverMessage 游戏结束提示文字
	GameOverMessage = "Game Over! Press Enter to restart"

	// GameOverMessageX, GameOverMessageY 提示文字中心点（屏幕坐标）
	GameOverMessageX = 400
	GameOverMessageY = 250

	// RestartButtonX, RestartButtonY 重新开始按钮左上角（屏幕坐标）
	RestartButtonX = 300
	RestartButtonY = 350

	// RestartButtonWidth, RestartButtonHeight 重新开始按钮尺寸
	RestartButtonWidth  = 200
	RestartButtonHeight = 50

	// RestartButtonLabel 按钮文字
	RestartButtonLabel = "RESTART"

	// RestartLabelOffsetY 按钮文字中心相对按钮顶边的偏移
	RestartLabelOffsetY = 20
)
