package sprig

import "github.com/tanema/gween/ease"

// SmoothingType selects how a Tweener moves its value toward the target.
type SmoothingType uint8

const (
	// SmoothingLinear advances a progress accumulator by the rate each tick
	// and interpolates linearly from the starting value.
	SmoothingLinear SmoothingType = iota
	// SmoothingSmoothstep is SmoothingLinear with the cubic smoothstep curve.
	SmoothingSmoothstep
	// SmoothingRecursiveLinear moves the current value a fixed fraction of
	// the remaining distance each tick. It converges but never arrives.
	SmoothingRecursiveLinear
	// SmoothingRecursiveSmoothStep is SmoothingRecursiveLinear with the
	// fraction passed through the smoothstep curve.
	SmoothingRecursiveSmoothStep
	// SmoothingEased is time-stepped like SmoothingLinear, with progress
	// mapped through the tweener's gween ease function.
	SmoothingEased
)

// Recursive reports whether t interpolates from the current value instead of
// tracking progress from a fixed start.
func (t SmoothingType) Recursive() bool {
	return t == SmoothingRecursiveLinear || t == SmoothingRecursiveSmoothStep
}

// String returns the smoothing type name.
func (t SmoothingType) String() string {
	switch t {
	case SmoothingLinear:
		return "linear"
	case SmoothingSmoothstep:
		return "smoothstep"
	case SmoothingRecursiveLinear:
		return "recursive-linear"
	case SmoothingRecursiveSmoothStep:
		return "recursive-smoothstep"
	case SmoothingEased:
		return "eased"
	default:
		return "unknown"
	}
}

// Linear returns a + (b - a) * t.
func Linear(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep returns a + (b - a) * (3t² - 2t³). t must lie in [0, 1].
func Smoothstep(a, b, t float64) float64 {
	return a + (b-a)*smoothstepCurve(t)
}

func smoothstepCurve(t float64) float64 {
	return t * t * (3 - 2*t)
}

// easeProgress maps linear progress in [0, 1] through a gween easing function.
func easeProgress(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// LerpVec2 interpolates each component of a and b with Linear.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{Linear(a.X, b.X, t), Linear(a.Y, b.Y, t)}
}

// LerpColor interpolates each channel of a and b with Linear.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: Linear(a.R, b.R, t),
		G: Linear(a.G, b.G, t),
		B: Linear(a.B, b.B, t),
		A: Linear(a.A, b.A, t),
	}
}

// clampProgress keeps a kernel argument inside [0, 1]. Time-stepped progress
// may overshoot by a fraction of the rate on its final tick.
func clampProgress(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
