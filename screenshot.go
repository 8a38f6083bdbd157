package sprig

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ScreenshotFormat selects the encoder used for screenshots.
type ScreenshotFormat uint8

const (
	ScreenshotPNG ScreenshotFormat = iota
	ScreenshotWebP
)

func (f ScreenshotFormat) ext() string {
	if f == ScreenshotWebP {
		return "webp"
	}
	return "png"
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// current tick's Draw call. The file is written to ScreenshotDir with a
// timestamped name. Safe to call from Update or Draw.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
// Called at the end of Stage.Draw.
func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] screenshot: mkdir %s: %v\n", s.ScreenshotDir, err)
		return
	}

	bounds := screen.Bounds()
	pix := make([]byte, 4*bounds.Dx()*bounds.Dy())
	screen.ReadPixels(pix)
	img := straightAlpha(pix, bounds.Dx(), bounds.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshotQueue {
		name := fmt.Sprintf("%s_%s.%s", stamp, sanitizeLabel(label), s.ScreenshotFormat.ext())
		if err := writeScreenshot(filepath.Join(s.ScreenshotDir, name), img, s.ScreenshotFormat); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sprig] screenshot: %v\n", err)
		}
	}
}

// straightAlpha converts premultiplied RGBA bytes to a straight-alpha image.
func straightAlpha(pix []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Copy(dst, image.Point{}, src, src.Rect, draw.Src, nil)
	return dst
}

// writeScreenshot encodes img to path in the given format.
func writeScreenshot(path string, img image.Image, format ScreenshotFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeScreenshot(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func encodeScreenshot(w io.Writer, img image.Image, format ScreenshotFormat) error {
	if format == ScreenshotWebP {
		return nativewebp.Encode(w, img, nil)
	}
	return png.Encode(w, img)
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
