package vellum

import "testing"

func TestFillBackgroundPaintsAreaOnly(t *testing.T) {
	buf := NewBuffer(4, 4)
	style := DefaultStyle()
	style.Visual.Background = RGB(10, 20, 30)
	ctx := RenderContext{Buffer: buf, Area: Rect{X: 1, Y: 1, Width: 2, Height: 2}, Style: style}

	FillBackground(ctx)

	if buf.Get(1, 1).Bg != style.Visual.Background || buf.Get(2, 2).Bg != style.Visual.Background {
		t.Fatal("expected background painted inside the area")
	}
	if buf.Get(0, 0).Bg == style.Visual.Background {
		t.Fatal("expected cells outside the area untouched")
	}
}

func TestFillBackgroundNoOpWhenUnset(t *testing.T) {
	buf := NewBuffer(2, 2)
	ctx := RenderContext{Buffer: buf, Area: Rect{X: 0, Y: 0, Width: 2, Height: 2}, Style: DefaultStyle()}
	FillBackground(ctx)
	if !buf.Get(0, 0).Bg.IsZero() {
		t.Fatal("expected no paint when background is unset")
	}
}

func TestDrawTextClipsToAreaWidth(t *testing.T) {
	buf := NewBuffer(5, 1)
	style := DefaultStyle()
	style.Visual.Color = ColorWhite
	ctx := RenderContext{Buffer: buf, Area: Rect{X: 0, Y: 0, Width: 3, Height: 1}, Style: style}

	DrawText(ctx, "hello")

	if buf.Get(3, 0).Symbol != ' ' && buf.Get(3, 0).Symbol != 0 {
		t.Fatalf("expected text clipped at area width, got %q at x=3", buf.Get(3, 0).Symbol)
	}
}

func TestDrawTextSkippedWhenFullyTransparent(t *testing.T) {
	buf := NewBuffer(5, 1)
	style := DefaultStyle()
	style.Visual.Opacity = 0
	ctx := RenderContext{Buffer: buf, Area: Rect{X: 0, Y: 0, Width: 5, Height: 1}, Style: style}

	DrawText(ctx, "hidden")

	if buf.Get(0, 0).Symbol != ' ' {
		t.Fatal("expected no text written at zero opacity")
	}
}
