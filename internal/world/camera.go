// internal/world/camera.go
package world

import (
	"math"

	"initerse/internal/config"
	"initerse/internal/utils"
)

// TileSize returns the current pixel size of one cell.
func (w *World) TileSize() float64 {
	return w.tileSize
}

// TilesInScreen returns how many cells fit on a screen of the given size.
func (w *World) TilesInScreen(screenW, screenH int) utils.Vec2 {
	return utils.Vec2{X: float64(screenW) / w.tileSize, Y: float64(screenH) / w.tileSize}
}

// ScreenToWorld returns the cell under a screen position. The camera origin
// is the player position, followed with sub-cell precision.
func (w *World) ScreenToWorld(sx, sy float64, player utils.Vec2) utils.Coord {
	return utils.Vec2{X: sx/w.tileSize + player.X, Y: sy/w.tileSize + player.Y}.Floor()
}

// WorldToScreen returns the top-left pixel of cell c.
func (w *World) WorldToScreen(c utils.Coord, player utils.Vec2) (float64, float64) {
	return (float64(c.X) - player.X) * w.tileSize, (float64(c.Y) - player.Y) * w.tileSize
}

// ControlTileSize zooms by one notch per wheel direction and keeps the tile
// size inside [MinTileSize, MaxTileSize].
func (w *World) ControlTileSize(wheelY float64) {
	switch {
	case wheelY > 0:
		w.tileSize *= config.ZoomFactor
	case wheelY < 0:
		w.tileSize /= config.ZoomFactor
	}
	w.tileSize = utils.Clamp(w.tileSize, config.MinTileSize, config.MaxTileSize)
}

// visibleTiles returns the window size in cells, rounded up.
func (w *World) visibleTiles(screenW, screenH int) (int, int) {
	return int(math.Ceil(float64(screenW) / w.tileSize)), int(math.Ceil(float64(screenH) / w.tileSize))
}
