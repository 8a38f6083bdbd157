package sprig

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the world: position, zoom, rotation and
// viewport. Its position is a Tweener, so following a sprite converges with
// recursive smoothing.
type Camera struct {
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in degrees (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	position *Tweener[Vec2]

	followTarget *Sprite
	followOffset Vec2

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		position: NewVec2Tweener(Vec2{}),
	}
}

// Position returns the world point the camera centers on.
func (c *Camera) Position() Vec2 { return c.position.Value() }

// SetPosition moves the camera immediately.
func (c *Camera) SetPosition(p Vec2) { c.position.Snap(p) }

// Follow makes the camera track a sprite with the given offset. Each tick
// the camera closes rate of the remaining distance (recursive linear
// smoothing); a rate of 1 snaps.
func (c *Camera) Follow(s *Sprite, offset Vec2, rate float64) {
	c.followTarget = s
	c.followOffset = offset
	c.position.SmoothingActive = true
	c.position.SmoothingType = SmoothingRecursiveLinear
	c.position.SmoothingRate = rate
}

// Unfollow stops tracking the current target and holds position.
func (c *Camera) Unfollow() {
	c.followTarget = nil
	c.position.SmoothingActive = false
	c.position.Snap(c.position.Value())
}

// ScrollTo animates the camera to the given world position over duration
// seconds. While scrolling, follow is suspended.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	p := c.position.Value()
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(p.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(p.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool { return c.scrollTween != nil }

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances scroll, follow and bounds clamping by one tick.
func (c *Camera) Update(tick Tick) {
	switch {
	case c.scrollTween != nil:
		dt := float32(tick.Elapsed.Seconds() * tick.Speed)
		p := c.position.Value()
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			p.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			p.Y = float64(val)
			c.scrollTween.doneY = done
		}
		c.position.Snap(p)
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	case c.followTarget != nil && !c.followTarget.IsDisposed():
		want := c.followTarget.Position.Add(c.followOffset)
		if want != c.position.Target() {
			c.position.SetTarget(want)
		}
		c.position.Update(tick)
	}

	if c.BoundsEnabled {
		if p := c.clamp(c.position.Value()); p != c.position.Value() {
			c.position.Snap(p)
		}
	}
}

// clamp restricts p so the visible area stays within Bounds.
func (c *Camera) clamp(p Vec2) Vec2 {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		p.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		p.X = math.Max(minX, math.Min(p.X, maxX))
	}
	if minY > maxY {
		p.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		p.Y = math.Max(minY, math.Min(p.Y, maxY))
	}
	return p
}

// ViewMatrix returns the world-to-screen matrix:
//
//	Translate(viewport center) * Scale(zoom) * Rotate(-rotation) * Translate(-position)
func (c *Camera) ViewMatrix() Affine {
	p := c.position.Value()
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation * math.Pi / 180)
	z := c.Zoom

	return Affine{
		z * cos,
		z * sin,
		-z * sin,
		z * cos,
		cx + z*(-cos*p.X+sin*p.Y),
		cy + z*(-sin*p.X-cos*p.Y),
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(world Vec2) Vec2 {
	return c.ViewMatrix().Apply(world)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screen Vec2) Vec2 {
	return c.ViewMatrix().Invert().Apply(screen)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	return BoundingRect(c.Viewport, c.ViewMatrix().Invert())
}

// IsVisible reports whether the sprite's bounding rect overlaps the visible
// area.
func (c *Camera) IsVisible(s *Sprite) bool {
	return s.Bounds().Intersects(c.VisibleBounds())
}
