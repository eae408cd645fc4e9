package vellum

import "testing"

func TestBrailleGridSetLightsDot(t *testing.T) {
	g := NewBrailleGrid(1, 1)
	g.Set(0, 0, ColorWhite)
	r, color, lit := g.Cell(0, 0)
	if !lit || r == ' ' || color != ColorWhite {
		t.Fatalf("cell = %q %v %v", r, color, lit)
	}
}

func TestBrailleGridSetOutOfRangeIgnored(t *testing.T) {
	g := NewBrailleGrid(1, 1)
	g.Set(-1, -1, ColorWhite)
	g.Set(100, 100, ColorWhite)
	_, _, lit := g.Cell(0, 0)
	if lit {
		t.Fatal("expected no dot lit")
	}
}

func TestBrailleGridDotPacking(t *testing.T) {
	g := NewBrailleGrid(1, 1)
	// Light every dot in the 2x4 subgrid; should equal the full braille block.
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			g.Set(x, y, ColorWhite)
		}
	}
	r, _, _ := g.Cell(0, 0)
	if r != rune(brailleBase+0xFF) {
		t.Fatalf("full cell rune = %U, want %U", r, brailleBase+0xFF)
	}
}

func TestBrailleGridClear(t *testing.T) {
	g := NewBrailleGrid(2, 2)
	g.Set(0, 0, ColorWhite)
	g.Clear()
	_, _, lit := g.Cell(0, 0)
	if lit {
		t.Fatal("expected clear to unlight all dots")
	}
}

func TestBrailleGridDrawLine(t *testing.T) {
	g := NewBrailleGrid(5, 5)
	g.Draw(Line{X0: 0, Y0: 0, X1: 4, Y1: 4, Color: ColorWhite})
	if _, _, lit := g.Cell(0, 0); !lit {
		t.Fatal("expected start of line lit")
	}
}

func TestBrailleGridDrawFilledRectangle(t *testing.T) {
	g := NewBrailleGrid(5, 5)
	g.Draw(FilledRectangle{X: 2, Y: 2, Width: 4, Height: 4, Color: ColorWhite})
	if _, _, lit := g.Cell(1, 1); !lit {
		t.Fatal("expected filled area lit")
	}
}

func TestBrailleGridDrawPolygonNeedsTwoVertices(t *testing.T) {
	g := NewBrailleGrid(5, 5)
	g.Draw(Polygon{Vertices: []Point2D{{X: 1, Y: 1}}, Color: ColorWhite})
	if _, _, lit := g.Cell(0, 0); lit {
		t.Fatal("single-vertex polygon should draw nothing")
	}
}

func TestRegularPolygonHasRequestedSides(t *testing.T) {
	p := RegularPolygon(5, 5, 3, 6, ColorWhite)
	if len(p.Vertices) != 6 {
		t.Fatalf("len(vertices) = %d, want 6", len(p.Vertices))
	}
}

func TestBrailleGridBlitToPaintsBuffer(t *testing.T) {
	g := NewBrailleGrid(2, 2)
	g.Draw(FilledCircle{X: 2, Y: 4, Radius: 2, Color: ColorWhite})
	buf := NewBuffer(2, 2)
	g.BlitTo(buf, 0, 0)
	found := false
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if buf.Get(x, y).Symbol != ' ' {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected at least one cell painted by BlitTo")
	}
}
