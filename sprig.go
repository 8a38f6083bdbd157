package sprig

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, velocities, origins and sizes
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Min returns the componentwise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }

// Max returns the componentwise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// MovementDirection selects the axis and sign used by Sprite.Move.
type MovementDirection uint8

const (
	MoveUp    MovementDirection = iota // decreases Y
	MoveDown                           // increases Y
	MoveLeft                           // decreases X
	MoveRight                          // increases X
)

// String returns the direction name.
func (d MovementDirection) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}
