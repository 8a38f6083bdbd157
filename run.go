package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS adds an FPS widget overlay in the top-left corner.
	ShowFPS bool
}

// Run opens a window and runs stage as the ebiten.Game. It blocks until the
// window is closed.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.ShowFPS {
		stage.AddOverlay(NewFPSWidget())
	}
	if err := ebiten.RunGame(stage); err != nil {
		return fmt.Errorf("sprig: run: %w", err)
	}
	return nil
}
