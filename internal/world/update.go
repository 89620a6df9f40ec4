// internal/world/update.go
package world

import "initerse/internal/utils"

// window is the square of cells simulated this frame: [Min, Min+Size) on
// both axes.
type window struct {
	Min  utils.Coord
	Size int32
}

func (r window) contains(c utils.Coord) bool {
	return c.X >= r.Min.X && c.X < r.Min.X+r.Size && c.Y >= r.Min.Y && c.Y < r.Min.Y+r.Size
}

// updateWindow centres the window on the player's cell.
func (w *World) updateWindow(player utils.Vec2) window {
	half := int32(w.updateRadius / 2)
	cell := player.Floor()
	return window{
		Min:  utils.Coord{X: cell.X - half, Y: cell.Y - half},
		Size: int32(w.updateRadius),
	}
}

// Update ticks every machine inside the update window around the player.
// Machines outside the window do not advance.
func (w *World) Update(player utils.Vec2, dt float64) {
	w.panel.Update(dt)
	w.stars.Update(player, dt)

	win := w.updateWindow(player)
	// Sparse grids walk the occupied cells, dense ones probe the window.
	// Both visit exactly the occupied cells inside the window.
	if len(w.machines) < w.updateRadius*w.updateRadius {
		for c, m := range w.machines {
			if win.contains(c) {
				m.Update(w, dt)
			}
		}
		return
	}
	for x := int32(0); x < win.Size; x++ {
		for y := int32(0); y < win.Size; y++ {
			if m, ok := w.machines[utils.Coord{X: win.Min.X + x, Y: win.Min.Y + y}]; ok {
				m.Update(w, dt)
			}
		}
	}
}
