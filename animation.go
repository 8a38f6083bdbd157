package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Sprite simultaneously over
// a fixed duration. Create one via the convenience constructors
// (TweenPosition, TweenScale, TweenColor) and call Update each tick. If the
// target sprite is disposed, the group stops immediately.
//
// Unlike Tweener, a TweenGroup is duration-based and always arrives.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Sprite
	Done   bool
}

// Update advances all tweens by the tick's elapsed seconds scaled by its
// speed, and writes values to the target fields.
func (g *TweenGroup) Update(tick Tick) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	dt := float32(tick.Elapsed.Seconds() * tick.Speed)
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves the sprite to (toX, toY)
// over duration seconds using the easing function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &s.Position.X
	g.fields[1] = &s.Position.Y
	return g
}

// TweenScale creates a TweenGroup that animates the sprite's uniform scale.
func TweenScale(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Scale), float32(to), duration, fn)
	g.fields[0] = &s.Scale
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// sprite's tint.
func TweenColor(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: s}
	g.tweens[0] = gween.New(float32(s.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(s.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(s.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(s.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &s.Color.R
	g.fields[1] = &s.Color.G
	g.fields[2] = &s.Color.B
	g.fields[3] = &s.Color.A
	return g
}

// TweenAlpha creates a TweenGroup that animates the sprite's alpha.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Alpha), float32(to), duration, fn)
	g.fields[0] = &s.Alpha
	return g
}

// TweenRotation creates a TweenGroup that animates the sprite's rotation,
// in degrees.
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Rotation), float32(to), duration, fn)
	g.fields[0] = &s.Rotation
	return g
}
