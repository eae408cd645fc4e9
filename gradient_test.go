package vellum

import "testing"

func TestGradientDefaultHasTwoStops(t *testing.T) {
	g := DefaultGradient()
	if g.Len() != 2 || g.IsEmpty() {
		t.Fatalf("len=%d empty=%v", g.Len(), g.IsEmpty())
	}
}

func TestGradientNewSortsStops(t *testing.T) {
	g := NewGradient([]ColorStop{
		{Position: 1.0, Color: ColorBlack},
		{Position: 0.0, Color: ColorWhite},
		{Position: 0.5, Color: RGB(10, 10, 10)},
	})
	stops := g.Stops()
	if stops[0].Position != 0 || stops[1].Position != 0.5 || stops[2].Position != 1 {
		t.Fatalf("stops not sorted: %+v", stops)
	}
}

func TestGradientFromColorsEvenlySpaced(t *testing.T) {
	g := GradientFromColors([]Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)})
	stops := g.Stops()
	if stops[0].Position != 0 || stops[1].Position != 0.5 || stops[2].Position != 1 {
		t.Fatalf("not evenly spaced: %+v", stops)
	}
}

func TestGradientFromColorsEmptyFallsBackToDefault(t *testing.T) {
	g := GradientFromColors(nil)
	if g.IsEmpty() {
		t.Fatal("expected default gradient, got empty")
	}
}

func TestGradientAtEndpoints(t *testing.T) {
	g := LinearGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	if c := g.At(0); c != RGB(255, 0, 0) {
		t.Fatalf("at(0) = %v", c)
	}
	if c := g.At(1); c != RGB(0, 0, 255) {
		t.Fatalf("at(1) = %v", c)
	}
}

func TestGradientAtEmpty(t *testing.T) {
	g := &Gradient{}
	if c := g.At(0.5); c != ColorBlack {
		t.Fatalf("at(0.5) on empty = %v, want black", c)
	}
}

func TestGradientAtSingleStop(t *testing.T) {
	g := NewGradient([]ColorStop{{Position: 0.5, Color: RGB(9, 9, 9)}})
	if c := g.At(0.1); c != RGB(9, 9, 9) {
		t.Fatalf("at(0.1) = %v", c)
	}
}

func TestGradientClampSpread(t *testing.T) {
	g := LinearGradient(RGB(255, 0, 0), RGB(0, 0, 255)).WithSpread(SpreadClamp)
	if c := g.At(-0.5); c != RGB(255, 0, 0) {
		t.Fatalf("clamp below = %v", c)
	}
	if c := g.At(1.5); c != RGB(0, 0, 255) {
		t.Fatalf("clamp above = %v", c)
	}
}

func TestGradientColorsWidthZero(t *testing.T) {
	g := LinearGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	if colors := g.Colors(0); colors != nil {
		t.Fatalf("colors(0) = %v, want nil", colors)
	}
}

func TestGradientColorsWidthMatches(t *testing.T) {
	g := LinearGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	if colors := g.Colors(10); len(colors) != 10 {
		t.Fatalf("len = %d, want 10", len(colors))
	}
}

func TestGradientReversedSwapsEndpoints(t *testing.T) {
	g := LinearGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	r := g.Reversed()
	if r.At(0) != RGB(0, 0, 255) || r.At(1) != RGB(255, 0, 0) {
		t.Fatalf("reversed endpoints wrong: at(0)=%v at(1)=%v", r.At(0), r.At(1))
	}
}

func TestRadialGradientAtCenter(t *testing.T) {
	r := CircularGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	if c := r.At(5, 5, 11, 11); c != RGB(255, 0, 0) {
		t.Fatalf("center = %v, want red", c)
	}
}

func TestRadialGradientCenterClamps(t *testing.T) {
	r := CircularGradient(RGB(255, 0, 0), RGB(0, 0, 255)).WithCenter(-0.5, 1.5)
	if r.CenterX != 0 || r.CenterY != 1 {
		t.Fatalf("center = (%v,%v)", r.CenterX, r.CenterY)
	}
}

func TestRadialGradientRadiusMinimum(t *testing.T) {
	r := CircularGradient(RGB(255, 0, 0), RGB(0, 0, 255)).WithRadius(0)
	if r.Radius != 0.01 {
		t.Fatalf("radius = %v, want 0.01 floor", r.Radius)
	}
}

func TestRadialGradientSymmetry(t *testing.T) {
	r := CircularGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	if r.At(3, 5, 11, 11) != r.At(7, 5, 11, 11) {
		t.Fatal("expected symmetric colours around center")
	}
}

func TestRadialGradientColors2DShape(t *testing.T) {
	r := CircularGradient(RGB(255, 0, 0), RGB(0, 0, 255))
	grid := r.Colors2D(5, 3)
	if len(grid) != 3 || len(grid[0]) != 5 {
		t.Fatalf("shape = %dx%d, want 3x5", len(grid), len(grid[0]))
	}
}

func TestGradientPresetsAreNonEmpty(t *testing.T) {
	presets := []*Gradient{
		Rainbow(), Sunset(), Ocean(), Forest(), Fire(), Ice(), PurpleHaze(),
		Grayscale(), HeatMap(), Viridis(), Plasma(), Matrix(),
	}
	for i, g := range presets {
		if g.IsEmpty() {
			t.Fatalf("preset %d is empty", i)
		}
	}
}
