package sprig

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tick is the per-frame timing handed to every Update call.
type Tick struct {
	// Elapsed is the time since the previous tick.
	Elapsed time.Duration
	// Speed multiplies tween progress. 1 is normal speed, 0 freezes tweens.
	Speed float64
}

// NewTick returns a Tick for the given elapsed time and speed multiplier.
func NewTick(elapsed time.Duration, speed float64) Tick {
	return Tick{Elapsed: elapsed, Speed: speed}
}

// Millis returns Elapsed in whole milliseconds.
func (t Tick) Millis() int64 {
	return t.Elapsed.Milliseconds()
}

// Clock derives ticks from the Ebitengine tick rate. Ebitengine calls
// Update a fixed number of times per second, so every tick has the same
// elapsed time.
type Clock struct {
	// Speed is the multiplier stamped on every tick. Defaults to 1.
	Speed float64
	// Paused makes Next return ticks with zero elapsed time and zero speed.
	Paused bool

	ticks uint64
}

// NewClock returns a running clock at normal speed.
func NewClock() *Clock {
	return &Clock{Speed: 1}
}

// Next returns the timing for the current frame.
func (c *Clock) Next() Tick {
	c.ticks++
	if c.Paused {
		return Tick{}
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return Tick{Elapsed: time.Second / time.Duration(tps), Speed: c.Speed}
}

// Ticks returns the number of times Next has been called.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}
