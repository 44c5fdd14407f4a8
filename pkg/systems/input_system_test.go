package systems

import (
	"testing"

	"github.com/decker502/snake/pkg/types"
	"github.com/decker502/snake/pkg/utils"
)

func kinds(intents []types.Intent) []types.IntentKind {
	out := make([]types.IntentKind, len(intents))
	for i, in := range intents {
		out[i] = in.Kind
	}
	return out
}

func TestInputSystem_MapIntents(t *testing.T) {
	s := &InputSystem{}

	tests := []struct {
		name string
		raw  utils.RawInput
		want []types.IntentKind
	}{
		{
			name: "no input",
			raw:  utils.RawInput{},
			want: nil,
		},
		{
			name: "single turn",
			raw:  utils.RawInput{Up: true},
			want: []types.IntentKind{types.IntentTurnUp},
		},
		{
			name: "turns in W S A D order",
			raw:  utils.RawInput{Right: true, Left: true, Down: true, Up: true},
			want: []types.IntentKind{types.IntentTurnUp, types.IntentTurnDown, types.IntentTurnLeft, types.IntentTurnRight},
		},
		{
			name: "exit first",
			raw:  utils.RawInput{Escape: true, Confirm: true, Left: true},
			want: []types.IntentKind{types.IntentExit, types.IntentConfirm, types.IntentTurnLeft},
		},
		{
			name: "pointer click",
			raw:  utils.RawInput{PointerPressed: true, PointerX: 400, PointerY: 375},
			want: []types.IntentKind{types.IntentPointerClick},
		},
		{
			name: "swipe right",
			raw:  utils.RawInput{Swiped: true, SwipeDX: 80, SwipeDY: 10},
			want: []types.IntentKind{types.IntentTurnRight},
		},
		{
			name: "swipe up",
			raw:  utils.RawInput{Swiped: true, SwipeDX: -5, SwipeDY: -60},
			want: []types.IntentKind{types.IntentTurnUp},
		},
		{
			name: "short swipe ignored",
			raw:  utils.RawInput{Swiped: true, SwipeDX: 10, SwipeDY: -12},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(s.MapIntents(tt.raw))
			if len(got) != len(tt.want) {
				t.Fatalf("MapIntents() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("intent %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInputSystem_PointerPosition(t *testing.T) {
	s := &InputSystem{}
	intents := s.MapIntents(utils.RawInput{PointerPressed: true, PointerX: 123, PointerY: 456})

	if len(intents) != 1 {
		t.Fatalf("Expected 1 intent, got %d", len(intents))
	}
	if intents[0].X != 123 || intents[0].Y != 456 {
		t.Errorf("Expected position (123, 456), got (%d, %d)", intents[0].X, intents[0].Y)
	}
}

// TestInputSystem_Poll 验证 Poll 使用注入的输入源
func TestInputSystem_Poll(t *testing.T) {
	s := &InputSystem{poll: func() utils.RawInput {
		return utils.RawInput{Confirm: true}
	}}

	got := kinds(s.Poll())
	if len(got) != 1 || got[0] != types.IntentConfirm {
		t.Errorf("Poll() = %v, want [Confirm]", got)
	}
}
