// internal/app/tower_management.go
package app

import (
	"initerse/internal/event"
	"initerse/internal/tower"
	"initerse/internal/utils"

	"go.uber.org/zap"
)

// PlaceTower builds a default machine of type t at c, replacing whatever the
// cell held. Placing Empty erases.
func (g *Game) PlaceTower(c utils.Coord, t tower.Type) bool {
	if t == tower.Empty {
		return g.RemoveTower(c)
	}
	if _, ok := g.World.Place(c, t); !ok {
		g.logger.Debug("factory rejected tower", zap.Stringer("tower", t), zap.Int32("x", c.X), zap.Int32("y", c.Y))
		return false
	}
	g.Events.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{Coord: c, Type: t}})
	return true
}

// RemoveTower erases the machine at c. Returns false for empty cells.
func (g *Game) RemoveTower(c utils.Coord) bool {
	prev, had := g.World.SetTower(c, tower.EmptyMachine())
	if !had {
		return false
	}
	g.Events.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerData{Coord: c, Type: prev.Type()}})
	return true
}
