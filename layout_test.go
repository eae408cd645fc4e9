package vellum

import "testing"

func flexStyle(grow float32, width, height Size) Style {
	s := DefaultStyle()
	s.Layout.Display = DisplayFlex
	s.Layout.FlexGrow = grow
	s.Sizing.Width = width
	s.Sizing.Height = height
	return s
}

func TestLayoutGridTracksS7(t *testing.T) {
	tree := NewLayoutTree()
	root := DomId(1)
	rootStyle := DefaultStyle()
	rootStyle.Layout.Display = DisplayGrid
	rootStyle.Layout.GridTemplateColumns = []GridTrack{
		{Kind: GridTrackFixed, Fixed: 10},
		{Kind: GridTrackFraction, Frac: 1},
		{Kind: GridTrackFraction, Frac: 2},
	}
	tree.CreateNode(root, rootStyle)

	colSizes, _ := resolveTracks(rootStyle.Layout.GridTemplateColumns, 40, 0)
	want := []int32{10, 10, 20}
	for i, w := range want {
		if colSizes[i] != w {
			t.Fatalf("track %d = %d, want %d (got %v)", i, colSizes[i], w, colSizes)
		}
	}
}

func TestLayoutBlockStacksChildrenVertically(t *testing.T) {
	tree := NewLayoutTree()
	root, a, b := DomId(1), DomId(2), DomId(3)

	rootStyle := DefaultStyle()
	rootStyle.Sizing.Width = Cells(20)
	tree.CreateNode(root, rootStyle)

	childStyle := DefaultStyle()
	childStyle.Sizing.Height = Cells(3)
	tree.CreateNode(a, childStyle)
	tree.CreateNode(b, childStyle)

	if err := tree.AddChild(root, a); err != nil {
		t.Fatal(err)
	}
	if err := tree.AddChild(root, b); err != nil {
		t.Fatal(err)
	}

	if err := tree.Compute(root, 20, 24); err != nil {
		t.Fatal(err)
	}

	ra, _ := tree.Layout(a)
	rb, _ := tree.Layout(b)
	if ra.Y != 0 || ra.Height != 3 {
		t.Fatalf("a = %+v", ra)
	}
	if rb.Y != 3 || rb.Height != 3 {
		t.Fatalf("b = %+v", rb)
	}

	rootRect, _ := tree.Layout(root)
	if rootRect.Height != 6 {
		t.Fatalf("root auto-height = %d, want 6", rootRect.Height)
	}
}

func TestLayoutFlexGrowDistributesRemainingSpace(t *testing.T) {
	tree := NewLayoutTree()
	root, a, b := DomId(1), DomId(2), DomId(3)

	rootStyle := DefaultStyle()
	rootStyle.Layout.Display = DisplayFlex
	rootStyle.Layout.FlexDirection = FlexDirectionRow
	rootStyle.Sizing.Width = Cells(40)
	rootStyle.Sizing.Height = Cells(1)
	tree.CreateNode(root, rootStyle)

	fixed := DefaultStyle()
	fixed.Sizing.Width = Cells(10)
	tree.CreateNode(a, fixed)

	growing := DefaultStyle()
	growing.Layout.FlexGrow = 1
	tree.CreateNode(b, growing)

	tree.AddChild(root, a)
	tree.AddChild(root, b)

	if err := tree.Compute(root, 40, 1); err != nil {
		t.Fatal(err)
	}

	rb, _ := tree.Layout(b)
	if rb.Width != 30 {
		t.Fatalf("growing child width = %d, want 30", rb.Width)
	}
	if rb.X != 10 {
		t.Fatalf("growing child x = %d, want 10", rb.X)
	}
}

func TestLayoutDisplayNoneProducesNoBox(t *testing.T) {
	tree := NewLayoutTree()
	root, hidden := DomId(1), DomId(2)

	rootStyle := DefaultStyle()
	rootStyle.Sizing.Width = Cells(10)
	tree.CreateNode(root, rootStyle)

	hiddenStyle := DefaultStyle()
	hiddenStyle.Layout.Display = DisplayNone
	hiddenStyle.Sizing.Height = Cells(5)
	tree.CreateNode(hidden, hiddenStyle)

	tree.AddChild(root, hidden)
	tree.Compute(root, 10, 24)

	rect, _ := tree.Layout(hidden)
	if rect.Width != 0 || rect.Height != 0 {
		t.Fatalf("hidden node rect = %+v, want zero", rect)
	}
}

func TestLayoutMissingNodeReturnsTypedError(t *testing.T) {
	tree := NewLayoutTree()
	_, err := tree.Layout(DomId(99))
	if err == nil {
		t.Fatal("expected error for unknown node")
	}
	var lerr *LayoutError
	if !asLayoutError(err, &lerr) || lerr.Kind != LayoutErrNodeNotFound {
		t.Fatalf("got %v, want LayoutErrNodeNotFound", err)
	}
}

func asLayoutError(err error, target **LayoutError) bool {
	le, ok := err.(*LayoutError)
	if !ok {
		return false
	}
	*target = le
	return true
}
