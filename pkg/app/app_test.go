package app

import (
	"testing"
	"testing/fstest"

	"github.com/decker502/snake/pkg/embedded"
)

func TestNewApp(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/snake.yaml": &fstest.MapFile{Data: []byte("window:\n  title: \"Test Snake\"\n")},
	})

	a, err := NewApp(Config{Verbose: true, Seed: 1})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout() = (%d, %d), want (800, 600)", w, h)
	}
	if a.GameConfig().Window.Title != "Test Snake" {
		t.Errorf("Expected title from embedded config, got %q", a.GameConfig().Window.Title)
	}
	if a.GetSceneManager().GetCurrentScene() == nil {
		t.Error("Expected an active scene")
	}
	if a.GetSceneManager().ExitRequested() {
		t.Error("Expected no exit request at startup")
	}
}

// TestNewAppMissingConfig 配置文件缺失时使用默认配置
func TestNewAppMissingConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{})

	a, err := NewApp(Config{Verbose: true, Seed: 1})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if a.GameConfig().Grid.Width != 40 {
		t.Errorf("Expected default grid width 40, got %d", a.GameConfig().Grid.Width)
	}
}

func TestNewAppInvalidConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/snake.yaml": &fstest.MapFile{Data: []byte("moveInterval: -1\n")},
	})

	if _, err := NewApp(Config{Verbose: true}); err == nil {
		t.Error("Expected error for invalid config")
	}
}
