package vellum

import "testing"

// S5: an unchanged buffer produces no changes, and only the cells that
// actually differ are reported.
func TestDiffBuffersReportsOnlyChangedCells(t *testing.T) {
	prev := NewBuffer(4, 2)
	curr := NewBuffer(4, 2)

	if changes := DiffBuffers(prev, curr); len(changes) != 0 {
		t.Fatalf("identical buffers produced %d changes, want 0", len(changes))
	}

	curr.Set(2, 1, Cell{Symbol: 'x', Fg: ColorWhite})
	changes := DiffBuffers(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("len(changes) = %d, want 1", len(changes))
	}
	if changes[0].X != 2 || changes[0].Y != 1 {
		t.Fatalf("change at (%d,%d), want (2,1)", changes[0].X, changes[0].Y)
	}
}

func TestDiffBuffersOrdersRowMajor(t *testing.T) {
	prev := NewBuffer(3, 2)
	curr := NewBuffer(3, 2)
	curr.Set(2, 0, Cell{Symbol: 'a'})
	curr.Set(0, 1, Cell{Symbol: 'b'})
	curr.Set(1, 0, Cell{Symbol: 'c'})

	changes := DiffBuffers(prev, curr)
	if len(changes) != 3 {
		t.Fatalf("len(changes) = %d, want 3", len(changes))
	}
	want := [][2]int{{1, 0}, {2, 0}, {0, 1}}
	for i, w := range want {
		if changes[i].X != w[0] || changes[i].Y != w[1] {
			t.Fatalf("changes[%d] = (%d,%d), want (%d,%d)", i, changes[i].X, changes[i].Y, w[0], w[1])
		}
	}
}

func TestDiffBuffersSkipsContinuationCells(t *testing.T) {
	prev := NewBuffer(3, 1)
	curr := NewBuffer(3, 1)
	curr.WriteGrapheme(0, 0, '中', 2, ColorWhite, ColorBlack, 0) // wide glyph spans two cells

	changes := DiffBuffers(prev, curr)
	for _, c := range changes {
		if c.Cell.IsContinuation() {
			t.Fatal("diff reported a continuation cell, which should never be redrawn directly")
		}
	}
}
