// internal/utils/coords.go
package utils

import "math"

// Coord — целочисленная клетка бесконечной сетки.
type Coord struct {
	X, Y int32
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Less orders coordinates row by row (y first, then x).
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Vec2 is a continuous position measured in cells.
type Vec2 struct {
	X, Y float64
}

// Floor returns the cell containing the position.
func (v Vec2) Floor() Coord {
	return Coord{X: int32(math.Floor(v.X)), Y: int32(math.Floor(v.Y))}
}

// Fract returns the sub-cell part of the position, always in [0, 1).
func (v Vec2) Fract() Vec2 {
	return Vec2{X: v.X - math.Floor(v.X), Y: v.Y - math.Floor(v.Y)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, right and bottom exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
