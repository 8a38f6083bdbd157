package sprig

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Texture is a drawable image handle owned by the host rendering layer.
// *ebiten.Image and *image.RGBA both satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// ColorData is a row-major snapshot of premultiplied pixel colors, used for
// pixel-exact collision tests outside this package.
type ColorData struct {
	Width, Height int
	Pixels        []color.RGBA
}

// At returns the color at (x, y). Out-of-range coordinates return the zero
// (transparent) color.
func (c ColorData) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.RGBA{}
	}
	return c.Pixels[y*c.Width+x]
}

// Bytes returns the pixels as a packed RGBA byte slice.
func (c ColorData) Bytes() []byte {
	out := make([]byte, 4*len(c.Pixels))
	for i, p := range c.Pixels {
		out[4*i] = p.R
		out[4*i+1] = p.G
		out[4*i+2] = p.B
		out[4*i+3] = p.A
	}
	return out
}

// Image returns the snapshot as a new *image.RGBA.
func (c ColorData) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	copy(img.Pix, c.Bytes())
	return img
}

// Scaled returns the snapshot resampled to w×h with nearest-neighbor
// filtering, for collision tests against scaled sprites.
func (c ColorData) Scaled(w, h int) ColorData {
	if w == c.Width && h == c.Height {
		return c
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.Image(), image.Rect(0, 0, c.Width, c.Height), draw.Src, nil)
	return colorDataFromBytes(dst.Pix, w, h)
}

func colorDataFromBytes(pix []byte, w, h int) ColorData {
	data := ColorData{Width: w, Height: h, Pixels: make([]color.RGBA, w*h)}
	for i := range data.Pixels {
		data.Pixels[i] = color.RGBA{R: pix[4*i], G: pix[4*i+1], B: pix[4*i+2], A: pix[4*i+3]}
	}
	return data
}

// PixelProvider moves pixel data between sprite sheets, snapshots and
// textures. It is injected into Sprite.Update instead of reaching for a
// global graphics device.
type PixelProvider interface {
	// NewTexture allocates a blank texture of the given size.
	NewTexture(width, height int) Texture
	// TexturePixels snapshots a whole texture.
	TexturePixels(tex Texture) ColorData
	// FramePixels snapshots the src region of sheet.Image. src is in sheet
	// coordinates and is offset by the image's bounds origin.
	FramePixels(sheet *SpriteSheet, src image.Rectangle) ColorData
	// ReplacePixels overwrites the texture's backing data with data.
	ReplacePixels(tex Texture, data ColorData)
}

// --- CPU provider ---

type frameKey struct {
	sheet *SpriteSheet
	rect  image.Rectangle
}

// ImagePixelProvider keeps textures as *image.RGBA in memory and copies
// frames with golang.org/x/image/draw. Useful headless and in tests.
type ImagePixelProvider struct {
	// CacheFrames memoizes FramePixels per (sheet, rect). Only enable it
	// when sheet images are not modified after registration.
	CacheFrames bool

	cache     map[frameKey]ColorData
	extracted int
}

// NewImagePixelProvider returns a provider with frame caching disabled.
func NewImagePixelProvider() *ImagePixelProvider {
	return &ImagePixelProvider{}
}

// NewTexture allocates a transparent *image.RGBA.
func (p *ImagePixelProvider) NewTexture(width, height int) Texture {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// TexturePixels snapshots any image.Image texture.
func (p *ImagePixelProvider) TexturePixels(tex Texture) ColorData {
	img, ok := tex.(image.Image)
	if !ok {
		b := tex.Bounds()
		return ColorData{Width: b.Dx(), Height: b.Dy(), Pixels: make([]color.RGBA, b.Dx()*b.Dy())}
	}
	return copyRegion(img, img.Bounds())
}

// FramePixels copies the frame region out of sheet.Image.
func (p *ImagePixelProvider) FramePixels(sheet *SpriteSheet, src image.Rectangle) ColorData {
	if p.CacheFrames {
		if data, ok := p.cache[frameKey{sheet, src}]; ok {
			return data
		}
	}
	var data ColorData
	if sheet.Image == nil {
		data = ColorData{Width: src.Dx(), Height: src.Dy(), Pixels: make([]color.RGBA, src.Dx()*src.Dy())}
	} else {
		data = copyRegion(sheet.Image, src.Add(sheet.Image.Bounds().Min))
	}
	p.extracted++
	if p.CacheFrames {
		if p.cache == nil {
			p.cache = make(map[frameKey]ColorData)
		}
		p.cache[frameKey{sheet, src}] = data
	}
	return data
}

// ReplacePixels draws data over the texture when it is a draw.Image.
func (p *ImagePixelProvider) ReplacePixels(tex Texture, data ColorData) {
	dst, ok := tex.(draw.Image)
	if !ok {
		if globalDebug {
			log.Printf("sprig: texture %T is not writable, pixels not replaced", tex)
		}
		return
	}
	draw.Copy(dst, dst.Bounds().Min, data.Image(), image.Rect(0, 0, data.Width, data.Height), draw.Src, nil)
}

// Extracted returns how many frames were copied out of sheet images,
// excluding cache hits.
func (p *ImagePixelProvider) Extracted() int {
	return p.extracted
}

func copyRegion(src image.Image, r image.Rectangle) ColorData {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, src, r, draw.Src, nil)
	return colorDataFromBytes(dst.Pix, r.Dx(), r.Dy())
}

// --- Ebitengine provider ---

// EbitenPixelProvider keeps textures on the GPU as *ebiten.Image. Pixel
// reads and writes go through ReadPixels and WritePixels, so it must only
// be used once the game loop is running.
type EbitenPixelProvider struct {
	cpu ImagePixelProvider
}

// NewEbitenPixelProvider returns a GPU-backed provider.
func NewEbitenPixelProvider() *EbitenPixelProvider {
	return &EbitenPixelProvider{}
}

// NewTexture allocates an *ebiten.Image.
func (p *EbitenPixelProvider) NewTexture(width, height int) Texture {
	return ebiten.NewImage(width, height)
}

// TexturePixels reads back an *ebiten.Image; other textures are read on
// the CPU.
func (p *EbitenPixelProvider) TexturePixels(tex Texture) ColorData {
	if img, ok := tex.(*ebiten.Image); ok {
		return readEbitenPixels(img)
	}
	return p.cpu.TexturePixels(tex)
}

// FramePixels reads the frame region of an *ebiten.Image sheet; other sheet
// images are copied on the CPU.
func (p *EbitenPixelProvider) FramePixels(sheet *SpriteSheet, src image.Rectangle) ColorData {
	img, ok := sheet.Image.(*ebiten.Image)
	if !ok {
		return p.cpu.FramePixels(sheet, src)
	}
	sub := img.SubImage(src.Add(img.Bounds().Min)).(*ebiten.Image)
	return readEbitenPixels(sub)
}

// ReplacePixels uploads data into an *ebiten.Image texture. Size mismatches
// are skipped since WritePixels requires an exact fit.
func (p *EbitenPixelProvider) ReplacePixels(tex Texture, data ColorData) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		p.cpu.ReplacePixels(tex, data)
		return
	}
	b := img.Bounds()
	if b.Dx() != data.Width || b.Dy() != data.Height {
		if globalDebug {
			log.Printf("sprig: texture is %dx%d, frame is %dx%d, pixels not replaced",
				b.Dx(), b.Dy(), data.Width, data.Height)
		}
		return
	}
	img.WritePixels(data.Bytes())
}

func readEbitenPixels(img *ebiten.Image) ColorData {
	b := img.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	img.ReadPixels(pix)
	return colorDataFromBytes(pix, b.Dx(), b.Dy())
}
