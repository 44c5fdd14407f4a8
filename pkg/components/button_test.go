package components

import "testing"

func TestButtonComponent_Contains(t *testing.T) {
	btn := ButtonComponent{X: 300, Y: 350, Width: 200, Height: 50}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 300, 350, true},
		{"center", 400, 375, true},
		{"inside bottom-right", 499, 399, true},
		{"right edge excluded", 500, 375, false},
		{"bottom edge excluded", 400, 400, false},
		{"left of button", 299, 375, false},
		{"above button", 400, 349, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := btn.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestButtonComponent_LabelPosition(t *testing.T) {
	btn := ButtonComponent{X: 300, Y: 350, Width: 200, Height: 50, TextOffsetY: 20}
	x, y := btn.LabelPosition()
	if x != 400 || y != 370 {
		t.Errorf("LabelPosition() = (%d, %d), want (400, 370)", x, y)
	}
}
