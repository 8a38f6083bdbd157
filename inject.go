package sprig

import "github.com/hajimehoshi/ebiten/v2"

// KeyInjector is a KeyState that replays queued key holds, one queue entry
// per tick, in place of real input. When the queue is empty it defers to
// Fallback. Stage advances its Input injector at the start of every Step,
// so Sprite.Move sees injected keys exactly like real ones.
type KeyInjector struct {
	// Fallback answers while nothing is injected. Nil means no key is held.
	Fallback KeyState

	queue   [][]ebiten.Key
	current []ebiten.Key
	active  bool
}

// NewKeyInjector creates an injector over fallback.
func NewKeyInjector(fallback KeyState) *KeyInjector {
	return &KeyInjector{Fallback: fallback}
}

// InjectHold queues frames ticks during which exactly keys are held.
// frames below 1 is treated as 1.
func (k *KeyInjector) InjectHold(frames int, keys ...ebiten.Key) {
	if frames < 1 {
		frames = 1
	}
	held := append([]ebiten.Key(nil), keys...)
	for i := 0; i < frames; i++ {
		k.queue = append(k.queue, held)
	}
}

// InjectTap queues one tick with keys held followed by one tick with no key
// held. Consumes two ticks.
func (k *KeyInjector) InjectTap(keys ...ebiten.Key) {
	k.InjectHold(1, keys...)
	k.queue = append(k.queue, nil)
}

// Pending returns the number of queued ticks not yet replayed.
func (k *KeyInjector) Pending() int {
	return len(k.queue)
}

// Advance pops the next queued tick. It reports false, and hands control
// back to Fallback, once the queue is drained.
func (k *KeyInjector) Advance() bool {
	if len(k.queue) == 0 {
		k.current = nil
		k.active = false
		return false
	}
	k.current = k.queue[0]
	copy(k.queue, k.queue[1:])
	k.queue[len(k.queue)-1] = nil
	k.queue = k.queue[:len(k.queue)-1]
	k.active = true
	return true
}

// IsKeyPressed reports whether key is held this tick.
func (k *KeyInjector) IsKeyPressed(key ebiten.Key) bool {
	if k.active {
		for _, held := range k.current {
			if held == key {
				return true
			}
		}
		return false
	}
	if k.Fallback == nil {
		return false
	}
	return k.Fallback.IsKeyPressed(key)
}
