package sprig

import "github.com/tanema/gween/ease"

// progressEpsilon absorbs float accumulation error in the time-stepped
// termination check, so ten steps of 0.1 finish on the tenth tick.
const progressEpsilon = 1e-9

// LerpFunc interpolates between a and b by t, where t = 0 yields a and
// t = 1 yields b.
type LerpFunc[T any] func(a, b T, t float64) T

// Tweener smoothly converges a value toward a target, one step per tick.
//
// While SmoothingActive is false the tweener is inert: SetTarget snaps the
// value and Update does nothing. Deactivating takes effect on the next
// Update. There is no global tween manager; the owner calls Update each tick.
type Tweener[T comparable] struct {
	// SmoothingActive gates all motion.
	SmoothingActive bool
	// SmoothingType selects time-stepped or recursive interpolation.
	SmoothingType SmoothingType
	// SmoothingRate is the per-tick progress increment for time-stepped
	// types, or the fraction of remaining distance for recursive types.
	SmoothingRate float64
	// Ease shapes progress when SmoothingType is SmoothingEased.
	// Nil behaves like ease.Linear.
	Ease ease.TweenFunc

	value    T
	start    T
	target   T
	progress float64
	lerp     LerpFunc[T]
}

// NewTweener creates an inactive tweener holding initial. lerp must be a
// linear interpolation for T; easing curves are applied on top of it.
func NewTweener[T comparable](initial T, lerp LerpFunc[T]) *Tweener[T] {
	return &Tweener[T]{
		value:  initial,
		start:  initial,
		target: initial,
		lerp:   lerp,
	}
}

// NewVec2Tweener creates an inactive tweener for a 2D vector.
func NewVec2Tweener(initial Vec2) *Tweener[Vec2] {
	return NewTweener(initial, LerpVec2)
}

// NewFloatTweener creates an inactive tweener for a scalar.
func NewFloatTweener(initial float64) *Tweener[float64] {
	return NewTweener(initial, Linear)
}

// NewColorTweener creates an inactive tweener for a color.
func NewColorTweener(initial Color) *Tweener[Color] {
	return NewTweener(initial, LerpColor)
}

// Value returns the current value.
func (tw *Tweener[T]) Value() T { return tw.value }

// Target returns the value the tweener is moving toward.
func (tw *Tweener[T]) Target() T { return tw.target }

// Start returns the value the current transition began from.
func (tw *Tweener[T]) Start() T { return tw.start }

// Progress returns the time-stepped progress accumulator. It is always 0 for
// recursive smoothing types.
func (tw *Tweener[T]) Progress() float64 { return tw.progress }

// Moving reports whether the value has not yet reached the target.
func (tw *Tweener[T]) Moving() bool { return tw.value != tw.target }

// SetTarget sets the externally visible value. When smoothing is inactive
// the value, start and target all snap to v. When active, a new transition
// begins from the current value toward v with progress reset to 0.
func (tw *Tweener[T]) SetTarget(v T) {
	tw.progress = 0
	if tw.SmoothingActive {
		tw.start = tw.value
		tw.target = v
		return
	}
	tw.Snap(v)
}

// Snap sets value, start and target to v regardless of SmoothingActive.
func (tw *Tweener[T]) Snap(v T) {
	tw.value = v
	tw.start = v
	tw.target = v
	tw.progress = 0
}

// Update advances the value by one tick, scaled by tick.Speed.
func (tw *Tweener[T]) Update(tick Tick) {
	if !tw.SmoothingActive {
		return
	}
	if tw.value == tw.target {
		tw.progress = 0
		return
	}

	step := tw.SmoothingRate * tick.Speed

	if tw.SmoothingType.Recursive() {
		f := clampProgress(step)
		if tw.SmoothingType == SmoothingRecursiveSmoothStep {
			f = smoothstepCurve(f)
		}
		tw.value = tw.lerp(tw.value, tw.target, f)
		return
	}

	tw.progress += step
	t := clampProgress(tw.progress)
	switch tw.SmoothingType {
	case SmoothingSmoothstep:
		t = smoothstepCurve(t)
	case SmoothingEased:
		t = easeProgress(tw.Ease, t)
	}
	tw.value = tw.lerp(tw.start, tw.target, t)

	if tw.progress >= 1-progressEpsilon {
		tw.value = tw.target
		tw.progress = 0
	}
}
