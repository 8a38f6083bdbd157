package sprig

import "math"

// Affine is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Affine{1, 0, 0, 1, 0, 0}

// SpriteTransform builds the world matrix of a sprite. Composition order:
//
//	Translate(-origin) -> Scale(scale) -> Rotate(degrees) -> Translate(pos)
//
// Rotation is given in degrees and is unconstrained; the trig functions wrap it.
func SpriteTransform(origin Vec2, scale, degrees float64, pos Vec2) Affine {
	sin, cos := math.Sincos(degrees * math.Pi / 180)

	// After Translate(-origin) and Scale:
	//   a=s, b=0, c=0, d=s, tx=-ox*s, ty=-oy*s
	preTx := -origin.X * scale
	preTy := -origin.Y * scale

	// After Rotate, then Translate(pos):
	return Affine{
		cos * scale,
		sin * scale,
		-sin * scale,
		cos * scale,
		cos*preTx - sin*preTy + pos.X,
		sin*preTx + cos*preTy + pos.Y,
	}
}

// Multiply returns m * o (o is applied first).
func (m Affine) Multiply(o Affine) Affine {
	return Affine{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Invert computes the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point p by m.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// BoundingRect pushes the four corners of local through m and returns the
// axis-aligned rectangle enclosing them in world space. Rotated sprites get
// a conservative enclosing rectangle, not a rotated box.
func BoundingRect(local Rect, m Affine) Rect {
	leftTop := m.Apply(Vec2{local.X, local.Y})
	rightTop := m.Apply(Vec2{local.X + local.Width, local.Y})
	leftBottom := m.Apply(Vec2{local.X, local.Y + local.Height})
	rightBottom := m.Apply(Vec2{local.X + local.Width, local.Y + local.Height})

	lo := leftTop.Min(rightTop).Min(leftBottom.Min(rightBottom))
	hi := leftTop.Max(rightTop).Max(leftBottom.Max(rightBottom))
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to the sprite's texture space.
func (s *Sprite) WorldToLocal(world Vec2) Vec2 {
	return s.transform.Invert().Apply(world)
}

// LocalToWorld converts a point in the sprite's texture space to world space.
func (s *Sprite) LocalToWorld(local Vec2) Vec2 {
	return s.transform.Apply(local)
}
