package config

import (
	"fmt"
	"os"

	"github.com/decker502/snake/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入的默认配置文件路径
const DefaultGameConfigPath = "data/snake.yaml"

// GameConfig 游戏启动配置
//
// 配置在启动时加载一次，运行期间不可修改。
//
// 配置文件位置: data/snake.yaml
type GameConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`

	// Grid 网格配置
	Grid GridConfig `yaml:"grid"`

	// MoveInterval 两次移动之间的间隔（秒）
	MoveInterval float64 `yaml:"moveInterval"`

	// GameOver 游戏结束界面配置
	GameOver GameOverConfig `yaml:"gameOver"`

	// Colors 颜色配置（RGBA）
	Colors ColorConfig `yaml:"colors"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// GridConfig 网格配置
type GridConfig struct {
	Width    int `yaml:"width"`    // 列数
	Height   int `yaml:"height"`   // 行数
	CellSize int `yaml:"cellSize"` // 格子边长（像素）
}

// GameOverConfig 游戏结束界面配置
type GameOverConfig struct {
	// Message 提示文字
	Message string `yaml:"message"`
	// MessageX, MessageY 提示文字中心点
	MessageX int `yaml:"messageX"`
	MessageY int `yaml:"messageY"`

	// RestartButton 重新开始按钮区域
	RestartButton RectConfig `yaml:"restartButton"`
	// RestartLabel 按钮文字
	RestartLabel string `yaml:"restartLabel"`
	// RestartLabelOffsetY 按钮文字中心相对按钮顶边的偏移
	RestartLabelOffsetY int `yaml:"restartLabelOffsetY"`
}

// RectConfig 矩形区域
type RectConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorConfig 颜色配置
// 每个颜色为 [R, G, B, A]
type ColorConfig struct {
	Background    [4]uint8 `yaml:"background"`
	Food          [4]uint8 `yaml:"food"`
	Snake         [4]uint8 `yaml:"snake"`
	Banner        [4]uint8 `yaml:"banner"`
	MessageText   [4]uint8 `yaml:"messageText"`
	RestartButton [4]uint8 `yaml:"restartButton"`
	RestartText   [4]uint8 `yaml:"restartText"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  GameWindowTitle,
		},
		Grid: GridConfig{
			Width:    GridColumns,
			Height:   GridRows,
			CellSize: CellSize,
		},
		MoveInterval: MoveInterval,
		GameOver: GameOverConfig{
			Message:  GameOverMessage,
			MessageX: GameOverMessageX,
			MessageY: GameOverMessageY,
			RestartButton: RectConfig{
				X:      RestartButtonX,
				Y:      RestartButtonY,
				Width:  RestartButtonWidth,
				Height: RestartButtonHeight,
			},
			RestartLabel:        RestartButtonLabel,
			RestartLabelOffsetY: RestartLabelOffsetY,
		},
		Colors: ColorConfig{
			Background:    [4]uint8{0, 0, 0, 255},
			Food:          [4]uint8{255, 0, 0, 255},
			Snake:         [4]uint8{50, 205, 50, 255},
			Banner:        [4]uint8{255, 255, 255, 255},
			MessageText:   [4]uint8{0, 0, 0, 255},
			RestartButton: [4]uint8{169, 169, 169, 255},
			RestartText:   [4]uint8{255, 255, 255, 255},
		},
	}
}

// LoadGameConfig 从嵌入资源加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/snake.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// LoadGameConfigFile 从文件系统加载游戏配置（用于命令行工具）
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口、网格、格子尺寸必须为正数
//   - 网格（列数 * 格子边长）不能超出窗口
//   - 移动间隔必须为正数
//   - 重新开始按钮必须有正的尺寸
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}

	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %d", c.Grid.CellSize)
	}

	if c.Grid.Width*c.Grid.CellSize > c.Window.Width || c.Grid.Height*c.Grid.CellSize > c.Window.Height {
		return fmt.Errorf("grid %dx%d with cellSize %d does not fit window %dx%d",
			c.Grid.Width, c.Grid.Height, c.Grid.CellSize, c.Window.Width, c.Window.Height)
	}

	if c.MoveInterval <= 0 {
		return fmt.Errorf("moveInterval must be positive, got %.3f", c.MoveInterval)
	}

	btn := c.GameOver.RestartButton
	if btn.Width <= 0 || btn.Height <= 0 {
		return fmt.Errorf("restartButton size must be positive, got %dx%d", btn.Width, btn.Height)
	}

	return nil
}
