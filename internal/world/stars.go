// internal/world/stars.go
package world

import (
	"math"

	"initerse/internal/assets"
	"initerse/internal/config"
	"initerse/internal/render"
	"initerse/internal/utils"
)

// StarParticleAsset is the texture of one background star.
const StarParticleAsset = "star_particle.png"

type star struct {
	pos, vel utils.Vec2
	rot      float64
	rotVel   float64
	lifetime float64
}

// StarField is the decorative background. It never touches the grid.
type StarField struct {
	rng   *utils.PRNGService
	stars []star
	// view is the area in cells the last update covered.
	view utils.Vec2
}

// NewStarField creates an empty field; particles spawn on the first update.
func NewStarField(seed int64) *StarField {
	return &StarField{
		rng:  utils.NewPRNGService(seed),
		view: utils.Vec2{X: config.ScreenWidth / config.BaseTileSize, Y: config.ScreenHeight / config.BaseTileSize},
	}
}

// Len returns the number of live particles.
func (f *StarField) Len() int {
	return len(f.stars)
}

// SetView sets the visible area in cells used for spawning and wrapping.
func (f *StarField) SetView(v utils.Vec2) {
	f.view = v
}

func (f *StarField) spawn(player utils.Vec2) star {
	return star{
		pos: utils.Vec2{
			X: f.rng.Range(player.X-1, player.X+f.view.X+1),
			Y: f.rng.Range(player.Y-1, player.Y+f.view.Y+1),
		},
		vel:    utils.Vec2{X: f.rng.Range(-0.5, 0.5), Y: f.rng.Range(-0.5, 0.5)},
		rot:    f.rng.Range(-360, 360),
		rotVel: f.rng.Range(-1, 1),
	}
}

// wrap moves a particle that drifted out of view back in on the opposite side.
func (f *StarField) wrap(s *star, player utils.Vec2) {
	minX, minY := player.X-1, player.Y-1
	maxX, maxY := minX+f.view.X+2, minY+f.view.Y+2
	if s.pos.X < minX {
		s.pos.X = f.rng.Range(player.X+f.view.X-1, player.X+f.view.X)
	} else if s.pos.X > maxX {
		s.pos.X = f.rng.Range(player.X-1, player.X)
	}
	if s.pos.Y < minY {
		s.pos.Y = f.rng.Range(player.Y+f.view.Y-1, player.Y+f.view.Y)
	} else if s.pos.Y > maxY {
		s.pos.Y = f.rng.Range(player.Y-1, player.Y)
	}
}

// Update ages, moves and respawns particles.
func (f *StarField) Update(player utils.Vec2, dt float64) {
	alive := f.stars[:0]
	for _, s := range f.stars {
		if s.lifetime <= config.StarParticleMaxLifetime {
			alive = append(alive, s)
		}
	}
	f.stars = alive
	for len(f.stars) < config.StarParticleMaxAmount {
		f.stars = append(f.stars, f.spawn(player))
	}
	for i := range f.stars {
		s := &f.stars[i]
		s.pos = s.pos.Add(s.vel.Scale(dt))
		f.wrap(s, player)
		s.lifetime += dt
		s.rot += s.rotVel * dt
	}
}

// starAlpha fades a particle in and out over its lifetime.
func starAlpha(lifetime float64) float32 {
	half := config.StarParticleMaxLifetime / 2
	a := 1 - math.Pow((lifetime-half)/half, 2)
	return float32(utils.Clamp(a, 0, 1))
}

// Draw renders the particles. Without a star texture it falls back to dots.
func (f *StarField) Draw(c render.Canvas, textures assets.Textures, player utils.Vec2, tileSize float64) {
	img, ok := textures.Image(StarParticleAsset)
	size := config.StarParticleScale * tileSize
	for _, s := range f.stars {
		x, y := (s.pos.X-player.X)*tileSize, (s.pos.Y-player.Y)*tileSize
		alpha := starAlpha(s.lifetime)
		if alpha <= 0 {
			continue
		}
		if ok {
			c.DrawQuad(img, render.Quad{X: x, Y: y, W: size, H: size, Rotation: s.rot * math.Pi / 180, Alpha: alpha})
			continue
		}
		clr := config.StarColor
		clr.A = uint8(float32(clr.A) * alpha)
		c.FillRect(x, y, size/4, size/4, clr)
	}
}
