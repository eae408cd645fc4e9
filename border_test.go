package vellum

import "testing"

func TestDrawBorderPaintsCornersAndReturnsInset(t *testing.T) {
	buf := NewBuffer(5, 4)
	style := DefaultStyle()
	style.Visual.BorderStyle = BorderStyleRounded
	style.Visual.BorderColor = ColorCyan

	inset := DrawBorder(buf, Rect{X: 0, Y: 0, Width: 5, Height: 4}, style)
	if inset != (Rect{X: 1, Y: 1, Width: 3, Height: 2}) {
		t.Fatalf("inset = %+v", inset)
	}
	if buf.Get(0, 0).Symbol != '╭' || buf.Get(4, 0).Symbol != '╮' {
		t.Fatalf("top corners = %q %q", buf.Get(0, 0).Symbol, buf.Get(4, 0).Symbol)
	}
	if buf.Get(0, 3).Symbol != '╰' || buf.Get(4, 3).Symbol != '╯' {
		t.Fatalf("bottom corners = %q %q", buf.Get(0, 3).Symbol, buf.Get(4, 3).Symbol)
	}
}

func TestDrawBorderNoOpWhenUnsetOrTooSmall(t *testing.T) {
	buf := NewBuffer(5, 4)
	style := DefaultStyle()

	area := Rect{X: 0, Y: 0, Width: 5, Height: 4}
	if got := DrawBorder(buf, area, style); got != area {
		t.Fatalf("unset border style changed area: %+v", got)
	}

	style.Visual.BorderStyle = BorderStyleSolid
	tiny := Rect{X: 0, Y: 0, Width: 1, Height: 1}
	if got := DrawBorder(buf, tiny, style); got != tiny {
		t.Fatalf("sub-2x2 area changed: %+v", got)
	}
}

func TestDrawSeparatorOnlyDrawsStrictlyInside(t *testing.T) {
	buf := NewBuffer(5, 3)
	area := Rect{X: 0, Y: 0, Width: 5, Height: 3}

	DrawSeparator(buf, area, 0, ColorWhite) // on the edge: no-op
	if buf.Get(0, 0).Symbol != ' ' {
		t.Fatal("expected no-op when y is on area's top edge")
	}

	DrawSeparator(buf, area, 1, ColorWhite)
	if buf.Get(0, 1).Symbol != '├' || buf.Get(4, 1).Symbol != '┤' {
		t.Fatalf("separator ends = %q %q", buf.Get(0, 1).Symbol, buf.Get(4, 1).Symbol)
	}
}
