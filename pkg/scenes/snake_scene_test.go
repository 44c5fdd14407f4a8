package scenes

import (
	"testing"

	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/systems"
	"github.com/decker502/snake/pkg/types"
	"github.com/decker502/snake/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestScene 创建使用脚本输入的场景
func newTestScene(t *testing.T, inputs *[]utils.RawInput) (*SnakeScene, *[]string) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	g := game.NewSnakeGame(cfg, systems.NewSeededFoodSpawnSystem(3))

	input := systems.NewInputSystemWithSource(func() utils.RawInput {
		if len(*inputs) == 0 {
			return utils.RawInput{}
		}
		next := (*inputs)[0]
		*inputs = (*inputs)[1:]
		return next
	})

	scene := NewSnakeScene(g, input, systems.NewRenderSystem(cfg), cfg.Window.Title)
	titles := &[]string{}
	scene.setTitle = func(title string) {
		*titles = append(*titles, title)
	}
	return scene, titles
}

// TestSnakeSceneMovesOnInterval 场景按帧推进游戏
func TestSnakeSceneMovesOnInterval(t *testing.T) {
	inputs := []utils.RawInput{{Down: true}}
	scene, _ := newTestScene(t, &inputs)

	scene.Update(0.15)

	g := scene.Game()
	if g.Direction() != types.DirDown {
		t.Errorf("Expected direction Down, got %v", g.Direction())
	}
	if g.Snake().Head() != (types.Cell{X: 20, Y: 16}) {
		t.Errorf("Expected head (20,16), got %v", g.Snake().Head())
	}
}

// TestSnakeSceneExit Escape 使场景请求退出
func TestSnakeSceneExit(t *testing.T) {
	inputs := []utils.RawInput{{}, {Escape: true}}
	scene, _ := newTestScene(t, &inputs)

	scene.Update(1.0 / 60.0)
	if scene.ExitRequested() {
		t.Fatal("Exit requested too early")
	}

	scene.Update(1.0 / 60.0)
	if !scene.ExitRequested() {
		t.Error("Expected exit after Escape")
	}

	sm := game.NewSceneManager()
	sm.SwitchTo(scene)
	if !sm.ExitRequested() {
		t.Error("Expected SceneManager to report exit")
	}
}

// TestSnakeSceneTitle 分数变化时更新窗口标题
func TestSnakeSceneTitle(t *testing.T) {
	inputs := []utils.RawInput{}
	scene, titles := newTestScene(t, &inputs)

	scene.Update(0)
	scene.Update(0)

	if len(*titles) != 1 {
		t.Fatalf("Expected 1 title update, got %d: %v", len(*titles), *titles)
	}
	if (*titles)[0] != "Snake - Score: 0" {
		t.Errorf("Unexpected title %q", (*titles)[0])
	}
}

func TestSnakeSceneDraw(t *testing.T) {
	inputs := []utils.RawInput{}
	scene, _ := newTestScene(t, &inputs)

	screen := ebiten.NewImage(800, 600)
	scene.Draw(screen) // Should not panic
}
