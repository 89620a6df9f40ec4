// internal/app/build_mode.go
package app

import (
	"initerse/internal/assets"
	"initerse/internal/config"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/tower"
	"initerse/internal/utils"
	"initerse/internal/world"
)

// Placer commits build mode decisions to the grid.
type Placer interface {
	PlaceTower(c utils.Coord, t tower.Type) bool
	RemoveTower(c utils.Coord) bool
}

// BuildMode is Inactive while current is Empty and Selecting otherwise.
// With the Empty tool a held right button erases.
type BuildMode struct {
	current tower.Type

	preview    utils.Coord
	hasPreview bool
}

func NewBuildMode() *BuildMode {
	return &BuildMode{current: tower.Empty}
}

// Select switches the tool. Types that are not buildable are ignored;
// Empty returns to Inactive.
func (b *BuildMode) Select(t tower.Type) {
	if t != tower.Empty && !tower.Lookup(t).Buildable {
		return
	}
	b.current = t
}

// Current returns the selected type, Empty when inactive.
func (b *BuildMode) Current() tower.Type {
	return b.current
}

// Active reports whether a tower is selected.
func (b *BuildMode) Active() bool {
	return b.current != tower.Empty
}

// Update runs one frame of the state machine: it cancels on right or
// Escape release, commits on left down (or erases on right down while
// inactive) and remembers the targeted cell for the preview.
func (b *BuildMode) Update(f input.Frame, w *world.World, player utils.Vec2, onHotbar bool, placer Placer) {
	b.hasPreview = false
	if onHotbar {
		return
	}
	if b.current == tower.Empty && !f.RightDown {
		return
	}
	if f.RightReleased || f.EscapeReleased {
		b.current = tower.Empty
		return
	}

	cell := w.ScreenToWorld(f.CursorX, f.CursorY, player)
	switch {
	case f.LeftDown && b.current == tower.Empty:
		placer.RemoveTower(cell)
	case f.LeftDown:
		placer.PlaceTower(cell, b.current)
	case f.RightDown && b.current == tower.Empty:
		placer.RemoveTower(cell)
	}
	b.preview, b.hasPreview = cell, true
}

// Preview returns the cell under the cursor while the tool is in use.
func (b *BuildMode) Preview() (utils.Coord, bool) {
	return b.preview, b.hasPreview
}

// Draw renders a translucent tile of the current tool over the targeted cell.
func (b *BuildMode) Draw(c render.Canvas, textures assets.Textures, w *world.World, player utils.Vec2) {
	if !b.hasPreview {
		return
	}
	x, y := w.WorldToScreen(b.preview, player)
	ts := w.TileSize()
	c.DrawQuad(textures.Get(b.current), render.Quad{X: x, Y: y, W: ts, H: ts, Alpha: config.PreviewAlpha})
}
