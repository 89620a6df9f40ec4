// internal/app/player.go
package app

import (
	"math"

	"initerse/internal/config"
	"initerse/internal/utils"
)

// Player is the camera anchor, moved by the bound direction keys.
// Position is in cells.
type Player struct {
	Pos utils.Vec2
	Vel utils.Vec2
}

func NewPlayer() *Player {
	return &Player{Pos: utils.Vec2{X: config.PlayerStart, Y: config.PlayerStart}}
}

// Update accelerates along dir, caps the speed, moves, then damps.
func (p *Player) Update(dir utils.Vec2, dt float64) {
	p.Vel = p.Vel.Add(dir.Scale(config.PlayerAcceleration * dt))
	if p.Vel.Length() > config.PlayerMaxVelocity {
		p.Vel = p.Vel.Normalize().Scale(config.PlayerMaxVelocity)
	}
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel = p.Vel.Scale(config.PlayerDamping)
	// останавливаемся, чтобы не ползти бесконечно
	if math.Abs(p.Vel.X) <= config.PlayerStopVelocity {
		p.Vel.X = 0
	}
	if math.Abs(p.Vel.Y) <= config.PlayerStopVelocity {
		p.Vel.Y = 0
	}
}

// Cell returns the cell the player stands in.
func (p *Player) Cell() utils.Coord {
	return p.Pos.Floor()
}
