// internal/world/draw.go
package world

import (
	"initerse/internal/assets"
	"initerse/internal/config"
	"initerse/internal/render"
	"initerse/internal/utils"
)

type drawStrategy int

const (
	drawWindow drawStrategy = iota
	drawMachines
)

// chooseStrategy picks the smaller of the visible window and the set of
// placed machines.
func (w *World) chooseStrategy(screenW, screenH int) drawStrategy {
	tw, th := w.visibleTiles(screenW, screenH)
	if (tw+2)*(th+2) < len(w.machines) {
		return drawWindow
	}
	return drawMachines
}

// Draw renders the background, every visible machine and the celestials.
func (w *World) Draw(c render.Canvas, textures assets.Textures, player utils.Vec2) {
	sw, sh := c.Size()
	// Звёзды заполняют текущий экран, поэтому область зависит от зума.
	w.stars.SetView(w.TilesInScreen(sw, sh))
	c.FillRect(0, 0, float64(sw), float64(sh), config.BackgroundColor)
	w.stars.Draw(c, textures, player, w.tileSize)

	w.drawTiles(c, textures, player, w.chooseStrategy(sw, sh))

	for _, def := range w.celestials {
		img, ok := textures.Image(def.Path)
		if !ok {
			continue
		}
		x, y := w.WorldToScreen(utils.Coord{X: def.Position[0], Y: def.Position[1]}, player)
		c.DrawQuad(img, render.Quad{X: x, Y: y, W: float64(def.Size[0]) * w.tileSize, H: float64(def.Size[1]) * w.tileSize})
	}
}

// drawTiles draws the placed machines using the given strategy. Both
// strategies draw the same set of tiles.
func (w *World) drawTiles(c render.Canvas, textures assets.Textures, player utils.Vec2, strategy drawStrategy) {
	sw, sh := c.Size()
	switch strategy {
	case drawWindow:
		tw, th := w.visibleTiles(sw, sh)
		origin := player.Floor()
		for tx := int32(-1); tx <= int32(tw); tx++ {
			for ty := int32(-1); ty <= int32(th); ty++ {
				cell := origin.Add(utils.Coord{X: tx, Y: ty})
				if _, ok := w.machines[cell]; ok {
					w.drawTile(c, textures, cell, player, sw, sh)
				}
			}
		}
	case drawMachines:
		for cell := range w.machines {
			w.drawTile(c, textures, cell, player, sw, sh)
		}
	}
}

// drawTile draws the machine at cell unless it lies fully off screen.
func (w *World) drawTile(c render.Canvas, textures assets.Textures, cell utils.Coord, player utils.Vec2, sw, sh int) {
	x, y := w.WorldToScreen(cell, player)
	if x <= -w.tileSize || y <= -w.tileSize || x >= float64(sw) || y >= float64(sh) {
		return
	}
	m := w.machines[cell]
	c.DrawQuad(textures.Get(m.Type()), render.Quad{X: x, Y: y, W: w.tileSize, H: w.tileSize})
}
