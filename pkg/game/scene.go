package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// ExitRequester 是一个可选接口，场景通过它请求结束程序
//
// App 在每帧 Update 之后检查当前场景，
// 返回 true 时 App.Update 返回 ebiten.Termination，进程以 0 退出。
type ExitRequester interface {
	ExitRequested() bool
}
