package input

import (
	"testing"

	"initerse/internal/config"
	"initerse/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions map[config.Action]bool
		want    utils.Vec2
	}{
		{"idle", nil, utils.Vec2{}},
		{"forward", map[config.Action]bool{config.ActionForward: true}, utils.Vec2{Y: -1}},
		{"diagonal", map[config.Action]bool{config.ActionBackward: true, config.ActionRight: true}, utils.Vec2{X: 1, Y: 1}},
		{"opposites cancel", map[config.Action]bool{config.ActionLeft: true, config.ActionRight: true}, utils.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Frame{Actions: tt.actions}.Direction())
		})
	}
}

func TestLeftClickIn(t *testing.T) {
	r := utils.Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, Frame{CursorX: 5, CursorY: 5, LeftReleased: true}.LeftClickIn(r))
	assert.False(t, Frame{CursorX: 5, CursorY: 5, LeftDown: true}.LeftClickIn(r))
	assert.False(t, Frame{CursorX: 15, CursorY: 5, LeftReleased: true}.LeftClickIn(r))
}
