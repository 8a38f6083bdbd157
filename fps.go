package sprig

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a static sprite that displays the current FPS and
// TPS. Its texture is redrawn every ~0.5 seconds from OnUpdate. The origin
// is the top-left corner, so Position is the widget's screen corner when
// drawn without a camera.
func NewFPSWidget() *Sprite {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	s := NewSprite("fps_widget", img, nil)
	s.Origin = Vec2{}

	var sinceRedraw time.Duration

	s.OnUpdate = func(tick Tick) {
		sinceRedraw += tick.Elapsed
		if sinceRedraw < 500*time.Millisecond {
			return
		}
		sinceRedraw = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})

		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps))
	}

	return s
}
