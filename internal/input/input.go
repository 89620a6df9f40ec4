// internal/input/input.go
package input

import (
	"initerse/internal/config"
	"initerse/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Frame — снимок ввода за один кадр. Everything downstream reads input from
// a Frame, never from ebiten directly.
type Frame struct {
	CursorX, CursorY float64

	LeftDown, LeftReleased   bool
	RightDown, RightReleased bool

	// WheelY is positive when scrolling up.
	WheelY float64

	EscapeReleased bool
	SaveReleased   bool
	PauseReleased  bool
	StartReleased  bool

	// Pressed lists the keys that went down this tick.
	Pressed []ebiten.Key

	// Actions holds the level state of every bound action.
	Actions map[config.Action]bool
}

// Cursor returns the pointer position in screen pixels.
func (f Frame) Cursor() (float64, float64) {
	return f.CursorX, f.CursorY
}

// LeftClickIn reports a released left click inside r.
func (f Frame) LeftClickIn(r utils.Rect) bool {
	return f.LeftReleased && r.Contains(f.CursorX, f.CursorY)
}

// Direction sums the unit vectors of the held movement actions.
func (f Frame) Direction() utils.Vec2 {
	var d utils.Vec2
	if f.Actions[config.ActionForward] {
		d.Y--
	}
	if f.Actions[config.ActionBackward] {
		d.Y++
	}
	if f.Actions[config.ActionLeft] {
		d.X--
	}
	if f.Actions[config.ActionRight] {
		d.X++
	}
	return d
}

// Poll samples ebiten's input state for the current tick.
func Poll(keys config.Keymap) Frame {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	f := Frame{
		CursorX:        float64(x),
		CursorY:        float64(y),
		LeftDown:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftReleased:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightDown:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		RightReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		WheelY:         wy,
		EscapeReleased: inpututil.IsKeyJustReleased(ebiten.KeyEscape),
		SaveReleased:   inpututil.IsKeyJustReleased(ebiten.KeyF5),
		PauseReleased:  inpututil.IsKeyJustReleased(ebiten.KeyF9),
		StartReleased:  inpututil.IsKeyJustReleased(ebiten.KeySpace) || inpututil.IsKeyJustReleased(ebiten.KeyEnter),
		Pressed:        inpututil.AppendJustPressedKeys(nil),
		Actions:        make(map[config.Action]bool, len(keys)),
	}
	for action, key := range keys {
		f.Actions[action] = ebiten.IsKeyPressed(key)
	}
	return f
}
