package components

import (
	"testing"

	"github.com/decker502/snake/pkg/types"
)

func newTestSnake(cells ...types.Cell) *SnakeComponent {
	return &SnakeComponent{Body: cells}
}

func TestNewSnakeComponent(t *testing.T) {
	s := NewSnakeComponent(types.Cell{X: 20, Y: 15})

	if s.Len() != 1 {
		t.Fatalf("Expected length 1, got %d", s.Len())
	}
	if s.Head() != (types.Cell{X: 20, Y: 15}) {
		t.Errorf("Expected head (20,15), got %v", s.Head())
	}
}

// TestSnakeComponent_PeekNextHead 验证 PeekNextHead 不修改蛇身
func TestSnakeComponent_PeekNextHead(t *testing.T) {
	dirs := []types.Direction{types.DirUp, types.DirDown, types.DirLeft, types.DirRight}

	for _, d := range dirs {
		t.Run(d.String(), func(t *testing.T) {
			s := newTestSnake(types.Cell{X: 5, Y: 5}, types.Cell{X: 4, Y: 5}, types.Cell{X: 3, Y: 5})
			before := s.Segments()

			next := s.PeekNextHead(d)
			want := types.Cell{X: 5 + d.DX, Y: 5 + d.DY}
			if next != want {
				t.Errorf("PeekNextHead(%v) = %v, want %v", d, next, want)
			}

			// 只有向左时新蛇头与第二节重合
			wantHit := d == types.DirLeft
			if got := s.ContainsCell(next); got != wantHit {
				t.Errorf("ContainsCell(%v) = %v, want %v", next, got, wantHit)
			}

			after := s.Segments()
			if len(after) != len(before) {
				t.Fatalf("length changed: %d -> %d", len(before), len(after))
			}
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("segment %d changed: %v -> %v", i, before[i], after[i])
				}
			}
		})
	}
}

func TestSnakeComponent_Advance(t *testing.T) {
	t.Run("without food keeps length", func(t *testing.T) {
		s := newTestSnake(types.Cell{X: 5, Y: 5}, types.Cell{X: 4, Y: 5}, types.Cell{X: 3, Y: 5})
		s.Advance(types.Cell{X: 6, Y: 5}, false)

		want := []types.Cell{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
		assertBody(t, s, want)
	})

	t.Run("with food grows by one", func(t *testing.T) {
		s := newTestSnake(types.Cell{X: 5, Y: 5}, types.Cell{X: 4, Y: 5})
		s.Advance(types.Cell{X: 6, Y: 5}, true)

		want := []types.Cell{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
		assertBody(t, s, want)
	})

	t.Run("single segment moves", func(t *testing.T) {
		s := NewSnakeComponent(types.Cell{X: 0, Y: 0})
		s.Advance(types.Cell{X: 0, Y: 1}, false)

		assertBody(t, s, []types.Cell{{X: 0, Y: 1}})
	})
}

func TestSnakeComponent_ContainsCell(t *testing.T) {
	s := newTestSnake(types.Cell{X: 5, Y: 5}, types.Cell{X: 4, Y: 5}, types.Cell{X: 3, Y: 5})

	if !s.ContainsCell(types.Cell{X: 5, Y: 5}) {
		t.Error("Expected head to be contained")
	}
	if !s.ContainsCell(types.Cell{X: 3, Y: 5}) {
		t.Error("Expected tail to be contained")
	}
	if s.ContainsCell(types.Cell{X: 6, Y: 5}) {
		t.Error("Expected (6,5) not to be contained")
	}
}

func TestSnakeComponent_Reset(t *testing.T) {
	s := newTestSnake(types.Cell{X: 5, Y: 5}, types.Cell{X: 4, Y: 5})
	s.Reset(types.Cell{X: 20, Y: 15})

	assertBody(t, s, []types.Cell{{X: 20, Y: 15}})
}

// TestSnakeComponent_SegmentsIsCopy 验证 Segments 返回副本
func TestSnakeComponent_SegmentsIsCopy(t *testing.T) {
	s := newTestSnake(types.Cell{X: 1, Y: 1})
	segs := s.Segments()
	segs[0] = types.Cell{X: 9, Y: 9}

	if s.Head() != (types.Cell{X: 1, Y: 1}) {
		t.Errorf("Segments() leaked internal slice, head is now %v", s.Head())
	}
}

func assertBody(t *testing.T, s *SnakeComponent, want []types.Cell) {
	t.Helper()
	if s.Len() != len(want) {
		t.Fatalf("Expected length %d, got %d (%v)", len(want), s.Len(), s.Body)
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("segment %d: got %v, want %v", i, s.Body[i], want[i])
		}
	}
}
