// internal/world/interact.go
package world

import (
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/tower"
	"initerse/internal/ui"
	"initerse/internal/utils"
)

// Tool is the active build selection; Empty means no tower is being placed.
type Tool interface {
	Current() tower.Type
}

// Interaction reports what Interact did during one frame.
type Interaction struct {
	// Panel is the area of the drawn inspection panel, zero when hidden.
	Panel utils.Rect

	// FocusChanged is set when focus moved, opened or closed.
	FocusChanged bool
	Focus        utils.Coord
	HasFocus     bool

	Collected float64
	Unit      string
}

// Focus returns the coordinate whose panel is open, if any.
func (w *World) Focus() (utils.Coord, bool) {
	return w.focus, w.hasFocus
}

// RemoveGUI clears focus and returns the coordinate that held it.
func (w *World) RemoveGUI() (utils.Coord, bool) {
	c, had := w.focus, w.hasFocus
	w.focus, w.hasFocus = utils.Coord{}, false
	return c, had
}

func (w *World) setFocus(c utils.Coord) {
	w.focus, w.hasFocus = c, true
	w.panel.Open()
}

// Interact resolves the inspection panel for this frame: it draws the panel
// of the focused machine, handles its controls and moves focus on clicks
// into the world.
func (w *World) Interact(c render.Canvas, f input.Frame, player utils.Vec2, tool Tool) Interaction {
	var res Interaction
	if f.EscapeReleased {
		_, had := w.RemoveGUI()
		res.FocusChanged = had
		return res
	}

	if w.hasFocus {
		m, ok := w.machines[w.focus]
		if !ok {
			// the machine was erased or replaced by a load
			w.RemoveGUI()
			res.FocusChanged = true
		} else {
			rect, action := w.panel.Draw(c, m, f)
			res.Panel = rect
			switch action {
			case ui.PanelClose:
				w.RemoveGUI()
				res.FocusChanged = true
				return res
			case ui.PanelCollect:
				res.Collected, res.Unit = w.Collect(w.focus)
			}
		}
	}

	res.Focus, res.HasFocus = w.focus, w.hasFocus
	if !f.LeftReleased || tool.Current() != tower.Empty {
		return res
	}
	if w.hasFocus && res.Panel.Contains(f.CursorX, f.CursorY) {
		return res
	}

	cell := w.ScreenToWorld(f.CursorX, f.CursorY, player)
	if _, ok := w.machines[cell]; !ok {
		return res
	}
	if w.hasFocus && w.focus == cell {
		w.RemoveGUI()
	} else {
		w.setFocus(cell)
	}
	res.FocusChanged = true
	res.Focus, res.HasFocus = w.focus, w.hasFocus
	return res
}
