// internal/ui/hotbar.go
package ui

import (
	"initerse/internal/assets"
	"initerse/internal/config"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/tower"
	"initerse/internal/utils"
)

// Selector receives the tower type picked on the hotbar.
type Selector interface {
	Select(t tower.Type)
}

// Hotbar is the strip of buildable towers at the bottom of the screen.
type Hotbar struct {
	slots [config.HotbarSlots]tower.Type
}

// NewHotbar fills the slots with every buildable type in enumeration order.
// Unused slots stay Empty.
func NewHotbar() *Hotbar {
	h := &Hotbar{}
	for i, t := range tower.Buildable() {
		if i >= len(h.slots) {
			break
		}
		h.slots[i] = t
	}
	return h
}

// Slots returns the slot contents, Empty for unused slots.
func (h *Hotbar) Slots() []tower.Type {
	return h.slots[:]
}

// HotbarRect returns the strip's area on a screen of the given size.
func HotbarRect(screenW, screenH int) utils.Rect {
	x := config.HotbarMarginX
	return utils.Rect{
		X: x,
		Y: float64(screenH) - config.HotbarHeight,
		W: float64(screenW) - x*2,
		H: config.HotbarHeight,
	}
}

func (h *Hotbar) slotWidth(r utils.Rect) float64 {
	return r.W / float64(len(h.slots))
}

// pointerOver mirrors the strip bounds: left edge exclusive, top inclusive.
func pointerOver(r utils.Rect, mx, my float64) bool {
	return my >= r.Y && my < r.Y+r.H && mx > r.X && mx < r.X+r.W
}

// Update selects the clicked slot and reports whether the pointer is over
// the strip, so world placement can be suppressed.
func (h *Hotbar) Update(f input.Frame, sel Selector, screenW, screenH int) bool {
	r := HotbarRect(screenW, screenH)
	if !pointerOver(r, f.CursorX, f.CursorY) {
		return false
	}
	if f.LeftReleased {
		idx := int((f.CursorX - r.X) / h.slotWidth(r))
		idx = utils.Clamp(idx, 0, len(h.slots)-1)
		sel.Select(h.slots[idx])
	}
	return true
}

// Draw renders the strip, highlighting the slot holding selected.
func (h *Hotbar) Draw(c render.Canvas, textures assets.Textures, selected tower.Type) {
	w, hh := c.Size()
	r := HotbarRect(w, hh)
	sw := h.slotWidth(r)
	c.FillRect(r.X, r.Y, r.W, r.H, config.HotbarColor)
	for i, slot := range h.slots {
		if slot == tower.Empty {
			continue
		}
		x := r.X + sw*float64(i)
		c.DrawQuad(textures.Get(slot), render.Quad{X: x, Y: r.Y, W: sw, H: r.H})
		if slot == selected {
			c.FillRect(x, r.Y, sw, r.H, config.HotbarSelected)
		}
	}
}
