package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2FloorNegative(t *testing.T) {
	assert.Equal(t, Coord{X: -1, Y: 0}, Vec2{X: -0.2, Y: 0.7}.Floor())
	assert.Equal(t, Coord{X: -3, Y: 2}, Vec2{X: -2.5, Y: 2}.Floor())
}

func TestVec2FractIsPositive(t *testing.T) {
	f := Vec2{X: -0.25, Y: 1.75}.Fract()
	assert.InDelta(t, 0.75, f.X, 1e-9)
	assert.InDelta(t, 0.75, f.Y, 1e-9)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"right edge", 110, 40, false},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestCoordLess(t *testing.T) {
	assert.True(t, Coord{X: 5, Y: 0}.Less(Coord{X: 0, Y: 1}))
	assert.True(t, Coord{X: 0, Y: 1}.Less(Coord{X: 1, Y: 1}))
	assert.False(t, Coord{X: 1, Y: 1}.Less(Coord{X: 1, Y: 1}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3.0, Clamp(1.0, 3, 256))
	assert.Equal(t, 256.0, Clamp(300.0, 3, 256))
	assert.Equal(t, 48.0, Clamp(48.0, 3, 256))
}
