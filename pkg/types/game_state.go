package types

// GameState 游戏状态
type GameState int

const (
	// GameStatePlaying 游戏进行中
	GameStatePlaying GameState = iota
	// GameStateGameOver 游戏结束，等待重新开始
	GameStateGameOver
)

// String 返回游戏状态的字符串表示
func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "Playing"
	case GameStateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
