package sprig

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick timing and counts.
// Only populated when Stage.debug is true.
type debugStats struct {
	spriteTime time.Duration
	tweenTime  time.Duration
	sprites    int
	animated   int
	tweens     int
}

// debugLog prints timing stats to stderr.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] sprites: %v | tweens: %v | total: %v\n",
		stats.spriteTime, stats.tweenTime, stats.spriteTime+stats.tweenTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] sprites: %d (animated %d) | tweens: %d\n",
		stats.sprites, stats.animated, stats.tweens)
}
