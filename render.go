package sprig

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawCommand is one fire-and-forget draw request.
type DrawCommand struct {
	Texture Texture
	// Position is the world position the origin lands on. Ignored when
	// DestRect is set.
	Position Vec2
	// DestRect stretches the source into this rectangle instead of using
	// Position and Scale.
	DestRect *Rect
	// Source is the texture region to draw; the zero rectangle means the
	// whole texture.
	Source image.Rectangle
	// Tint is multiplied into the texture colors. Not premultiplied.
	Tint Color
	// Rotation in radians, clockwise around Origin.
	Rotation float64
	// Origin is the pivot in source pixels.
	Origin Vec2
	Scale  float64
}

// RenderSurface accepts draw commands.
type RenderSurface interface {
	Draw(cmd DrawCommand)
}

// EbitenSurface draws onto an *ebiten.Image. Textures must be
// *ebiten.Image; anything else is skipped.
type EbitenSurface struct {
	Target *ebiten.Image
	// View is applied after each command's own transform, e.g. a camera
	// matrix. The zero value is treated as identity.
	View Affine

	op    ebiten.DrawImageOptions
	draws int
}

// NewEbitenSurface wraps target with an identity view.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Target: target, View: IdentityTransform}
}

// Draw submits cmd with DrawImage.
func (s *EbitenSurface) Draw(cmd DrawCommand) {
	img, ok := cmd.Texture.(*ebiten.Image)
	if !ok {
		if globalDebug {
			log.Printf("sprig: surface cannot draw texture %T", cmd.Texture)
		}
		return
	}
	if !cmd.Source.Empty() {
		img = img.SubImage(cmd.Source.Add(img.Bounds().Min)).(*ebiten.Image)
	}

	op := &s.op
	op.GeoM = commandGeoM(cmd, img.Bounds())
	if s.View != (Affine{}) {
		op.GeoM.Concat(affineGeoM(s.View))
	}
	op.ColorScale.Reset()
	a := float32(cmd.Tint.A)
	op.ColorScale.Scale(float32(cmd.Tint.R)*a, float32(cmd.Tint.G)*a, float32(cmd.Tint.B)*a, a)
	s.Target.DrawImage(img, op)
	s.draws++
}

// Draws returns the number of commands submitted since the last ResetStats.
func (s *EbitenSurface) Draws() int { return s.draws }

// ResetStats zeroes the draw counter.
func (s *EbitenSurface) ResetStats() { s.draws = 0 }

// commandGeoM builds Translate(-origin) -> Scale -> Rotate -> Translate.
func commandGeoM(cmd DrawCommand, src image.Rectangle) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-cmd.Origin.X, -cmd.Origin.Y)
	if cmd.DestRect != nil {
		sx, sy := 1.0, 1.0
		if w := src.Dx(); w > 0 {
			sx = cmd.DestRect.Width / float64(w)
		}
		if h := src.Dy(); h > 0 {
			sy = cmd.DestRect.Height / float64(h)
		}
		m.Scale(sx, sy)
		m.Rotate(cmd.Rotation)
		m.Translate(cmd.DestRect.X, cmd.DestRect.Y)
		return m
	}
	m.Scale(cmd.Scale, cmd.Scale)
	m.Rotate(cmd.Rotation)
	m.Translate(cmd.Position.X, cmd.Position.Y)
	return m
}

// affineGeoM converts an Affine into an ebiten.GeoM.
func affineGeoM(t Affine) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// CommandRecorder is a RenderSurface that keeps every command, for replay
// or inspection in tests and tools.
type CommandRecorder struct {
	Commands []DrawCommand
}

// Draw appends cmd.
func (r *CommandRecorder) Draw(cmd DrawCommand) {
	r.Commands = append(r.Commands, cmd)
}

// Reset drops recorded commands, keeping capacity.
func (r *CommandRecorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay submits every recorded command to surface in order.
func (r *CommandRecorder) Replay(surface RenderSurface) {
	for _, cmd := range r.Commands {
		surface.Draw(cmd)
	}
}
