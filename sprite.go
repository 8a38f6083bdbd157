package sprig

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// spriteIDCounter is a plain counter; sprig is single-threaded.
var spriteIDCounter uint32

func nextSpriteID() uint32 {
	spriteIDCounter++
	return spriteIDCounter
}

// Sprite is a drawable entity with a transform, a pixel snapshot and an
// optional frame-sheet animation. All state is owned by the sprite; Update
// must not run concurrently with any other mutation of the same sprite.
type Sprite struct {
	// Identity
	ID   uint32
	Name string

	// Motion. Position advances by Velocity once per Update.
	Position Vec2
	Velocity Vec2

	// Transform inputs. Rotation is in degrees, Scale is uniform and Origin
	// is the pivot in texture pixels.
	Rotation float64
	Scale    float64
	Origin   Vec2

	// Appearance
	Visible bool
	Color   Color
	Alpha   float64

	// OnUpdate is called at the end of every Update.
	OnUpdate func(tick Tick)

	tex       Texture
	width     int
	height    int
	colorData ColorData
	anim      *Animation

	drawRect  Rect
	transform Affine
	bounds    Rect
	disposed  bool
}

func newSpriteBase(name string) *Sprite {
	return &Sprite{
		ID:        nextSpriteID(),
		Name:      name,
		Visible:   true,
		Color:     ColorWhite,
		Alpha:     1,
		Scale:     1,
		transform: IdentityTransform,
	}
}

// NewSprite creates a static sprite that is ready to draw. The origin is set
// to the texture's center and the pixel snapshot is taken through pixels,
// which may be nil when no snapshot is needed.
func NewSprite(name string, tex Texture, pixels PixelProvider) *Sprite {
	s := newSpriteBase(name)
	s.setTexture(tex)
	if pixels != nil {
		s.colorData = pixels.TexturePixels(tex)
	}
	s.refresh()
	return s
}

// setTexture installs tex and re-centers the origin on it.
func (s *Sprite) setTexture(tex Texture) {
	b := tex.Bounds()
	s.tex = tex
	s.width = b.Dx()
	s.height = b.Dy()
	s.Origin = Vec2{float64(s.width) / 2, float64(s.height) / 2}
}

// Texture returns the texture the sprite draws with.
func (s *Sprite) Texture() Texture { return s.tex }

// Size returns the texture size in pixels.
func (s *Sprite) Size() (w, h int) { return s.width, s.height }

// ColorData returns the pixel snapshot of the frame currently displayed.
func (s *Sprite) ColorData() ColorData { return s.colorData }

// Animation returns the sprite's animation, or nil for static sprites.
func (s *Sprite) Animation() *Animation { return s.anim }

// Animated reports whether the sprite plays a sprite sheet.
func (s *Sprite) Animated() bool { return s.anim != nil }

// Transform returns the world matrix computed by the last Update.
func (s *Sprite) Transform() Affine { return s.transform }

// Bounds returns the world-space axis-aligned bounding rectangle computed by
// the last Update. It is the authority for coarse collision and visibility.
func (s *Sprite) Bounds() Rect { return s.bounds }

// DrawRect returns the destination rectangle used by DrawToRect: the
// integer-truncated position with the texture size.
func (s *Sprite) DrawRect() Rect { return s.drawRect }

// Dispose releases the sprite's texture, snapshot, animation and callback.
// A disposed sprite ignores Update and draws nothing. Tween groups
// targeting it stop on their next Update.
func (s *Sprite) Dispose() {
	s.disposed = true
	s.tex = nil
	s.anim = nil
	s.colorData = ColorData{}
	s.OnUpdate = nil
}

// IsDisposed reports whether Dispose has been called.
func (s *Sprite) IsDisposed() bool { return s.disposed }

// Overlaps reports whether the bounding rectangles of s and other intersect.
func (s *Sprite) Overlaps(other *Sprite) bool {
	return s.bounds.Intersects(other.bounds)
}

// Update advances the sprite by one tick, in this order: animation (with
// pixel resync), position += velocity, draw rect, transform, bounds.
// pixels is only consulted by animated sprites.
func (s *Sprite) Update(tick Tick, pixels PixelProvider) {
	if s.disposed {
		return
	}
	if s.anim != nil {
		s.anim.advance(tick.Elapsed)
		s.resync(pixels)
	}
	s.Position = s.Position.Add(s.Velocity)
	s.refresh()
	if s.OnUpdate != nil {
		s.OnUpdate(tick)
	}
}

// refresh recomputes every derived geometry field from the transform inputs.
func (s *Sprite) refresh() {
	w, h := float64(s.width), float64(s.height)
	s.drawRect = Rect{X: math.Trunc(s.Position.X), Y: math.Trunc(s.Position.Y), Width: w, Height: h}
	s.transform = SpriteTransform(s.Origin, s.Scale, s.Rotation, s.Position)
	s.bounds = BoundingRect(Rect{Width: w, Height: h}, s.transform)
}

// resync copies the current frame out of the active sheet into the sprite's
// texture and snapshot. It runs every tick since the host may swap sheets
// at any time. A sheet with a different frame size reallocates the texture
// and re-centers the origin.
func (s *Sprite) resync(pixels PixelProvider) {
	if pixels == nil {
		return
	}
	sheet := s.anim.sheet
	if s.tex == nil || s.width != sheet.FrameWidth || s.height != sheet.FrameHeight {
		s.setTexture(pixels.NewTexture(sheet.FrameWidth, sheet.FrameHeight))
	}
	data := pixels.FramePixels(sheet, s.anim.sourceRect)
	pixels.ReplacePixels(s.tex, data)
	s.colorData = data
}

// --- Movement ---

// Move shifts Position by speed along dir while key is held. Calls for
// several directions may apply in the same tick; diagonal motion is not
// normalized.
func (s *Sprite) Move(keys KeyState, speed float64, dir MovementDirection, key ebiten.Key) {
	if keys.IsKeyPressed(key) {
		s.step(speed, dir)
	}
}

// MoveWithKeys applies Move for all four directions.
func (s *Sprite) MoveWithKeys(keys KeyState, speed float64, up, down, left, right ebiten.Key) {
	s.Move(keys, speed, MoveUp, up)
	s.Move(keys, speed, MoveDown, down)
	s.Move(keys, speed, MoveLeft, left)
	s.Move(keys, speed, MoveRight, right)
}

// MoveCommands shifts Position for every held movement command, using the
// direction names "up", "down", "left" and "right".
func (s *Sprite) MoveCommands(commands CommandSource, speed float64) {
	for _, dir := range [...]MovementDirection{MoveUp, MoveDown, MoveLeft, MoveRight} {
		if commands.Held(dir.String()) {
			s.step(speed, dir)
		}
	}
}

func (s *Sprite) step(speed float64, dir MovementDirection) {
	switch dir {
	case MoveUp:
		s.Position.Y -= speed
	case MoveDown:
		s.Position.Y += speed
	case MoveLeft:
		s.Position.X -= speed
	case MoveRight:
		s.Position.X += speed
	}
}

// --- Drawing ---

// Draw issues one draw of the whole texture at Position with the sprite's
// rotation, origin, scale and tint. Invisible sprites draw nothing.
func (s *Sprite) Draw(surface RenderSurface) {
	if !s.Visible || s.tex == nil {
		return
	}
	surface.Draw(DrawCommand{
		Texture:  s.tex,
		Position: s.Position,
		Tint:     s.tint(),
		Rotation: s.Rotation * math.Pi / 180,
		Origin:   s.Origin,
		Scale:    s.Scale,
	})
}

// DrawToRect issues one draw stretched into DrawRect. Scale is ignored.
func (s *Sprite) DrawToRect(surface RenderSurface) {
	if !s.Visible || s.tex == nil {
		return
	}
	dest := s.drawRect
	surface.Draw(DrawCommand{
		Texture:  s.tex,
		DestRect: &dest,
		Tint:     s.tint(),
		Rotation: s.Rotation * math.Pi / 180,
		Origin:   s.Origin,
		Scale:    1,
	})
}

func (s *Sprite) tint() Color {
	c := s.Color
	c.A *= s.Alpha
	return c
}

// --- Deferred construction ---

// DraftSprite is an animated sprite under construction. It cannot be
// updated or drawn; add sprite sheets, then call Ready to obtain the usable
// Sprite.
type DraftSprite struct {
	Name     string
	Position Vec2
	Velocity Vec2

	sheets *SheetSet
}

// NewAnimatedSprite starts building an animated sprite with no sheets.
func NewAnimatedSprite(name string) *DraftSprite {
	return &DraftSprite{Name: name, sheets: NewSheetSet()}
}

// NewAnimatedSpriteFromSet starts building an animated sprite over an
// existing sheet set. The set is shared; frame actions are not.
func NewAnimatedSpriteFromSet(name string, set *SheetSet) *DraftSprite {
	return &DraftSprite{Name: name, sheets: set}
}

// AddSheet validates sheet and registers it under name. The first sheet
// added is the one shown after Ready.
func (d *DraftSprite) AddSheet(name string, sheet *SpriteSheet) error {
	return d.sheets.Add(name, sheet)
}

// Sheets returns the draft's sheet set.
func (d *DraftSprite) Sheets() *SheetSet { return d.sheets }

// Ready allocates the frame texture, loads the first frame of the first
// sheet and returns the usable sprite. The sprite starts playing.
func (d *DraftSprite) Ready(pixels PixelProvider) (*Sprite, error) {
	if pixels == nil {
		return nil, fmt.Errorf("sprig: ready %q: nil pixel provider", d.Name)
	}
	anim, err := newAnimation(d.sheets)
	if err != nil {
		return nil, err
	}
	s := newSpriteBase(d.Name)
	s.Position = d.Position
	s.Velocity = d.Velocity
	s.anim = anim
	sheet := anim.sheet
	s.setTexture(pixels.NewTexture(sheet.FrameWidth, sheet.FrameHeight))
	s.resync(pixels)
	s.refresh()
	return s, nil
}
