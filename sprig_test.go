package sprig

import (
	"image/color"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"bottom edge", 50, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"adjacent top", Rect{10, -50, 50, 60}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint left", Rect{-100, 10, 50, 50}, false},
		{"disjoint below", Rect{10, 111, 50, 50}, false},
		{"negative origin overlap", Rect{-5, -5, 20, 20}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
			if back := tt.other.Intersects(base); back != got {
				t.Errorf("Intersects not symmetric for %v", tt.other)
			}
		})
	}
}

// --- Vec2 ---

func TestVec2Ops(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{-1, 6}
	assertVec(t, "add", a.Add(b), Vec2{2, 10})
	assertVec(t, "sub", a.Sub(b), Vec2{4, -2})
	assertVec(t, "scale", a.Scale(-2), Vec2{-6, -8})
	assertVec(t, "min", a.Min(b), Vec2{-1, 4})
	assertVec(t, "max", a.Max(b), Vec2{3, 6})
	assertNear(t, "len", a.Len(), 5)
}

// --- Color ---

func TestColorWhite(t *testing.T) {
	if ColorWhite.R != 1 || ColorWhite.G != 1 || ColorWhite.B != 1 || ColorWhite.A != 1 {
		t.Errorf("ColorWhite = %v, want {1,1,1,1}", ColorWhite)
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"transparent", Color{1, 1, 1, 0}, color.RGBA{}},
		{"half red", Color{1, 0.5, 0, 0.5}, color.RGBA{127, 63, 0, 127}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBA(); got != tt.want {
				t.Errorf("%v.RGBA() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

// --- MovementDirection ---

func TestMovementDirectionString(t *testing.T) {
	want := map[MovementDirection]string{
		MoveUp:                "up",
		MoveDown:              "down",
		MoveLeft:              "left",
		MoveRight:             "right",
		MovementDirection(99): "unknown",
	}
	for d, name := range want {
		if d.String() != name {
			t.Errorf("%d.String() = %q, want %q", d, d.String(), name)
		}
	}
}

// --- Benchmarks (verify zero allocations) ---

func BenchmarkRectIntersects(b *testing.B) {
	r := Rect{10, 20, 100, 50}
	other := Rect{50, 40, 80, 60}
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Intersects(other)
	}
}
