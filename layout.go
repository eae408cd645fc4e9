package vellum

import "sort"

// Rect is a computed cell-space box: position plus size, both unsigned
// since a resolved layout never produces negative extents.
type Rect struct {
	X, Y, Width, Height uint16
}

type layoutNode struct {
	id       DomId
	style    Style
	parent   *DomId
	children []DomId
	computed Rect
	dirty    bool
}

// LayoutTree is the retained layout arena: one entry per DomNode that has
// entered the tree, mirroring the layout-relevant subset of its Style.
type LayoutTree struct {
	nodes map[DomId]*layoutNode
}

// NewLayoutTree creates an empty layout arena.
func NewLayoutTree() *LayoutTree {
	return &LayoutTree{nodes: make(map[DomId]*layoutNode)}
}

// CreateNode inserts a leaf node with no children.
func (t *LayoutTree) CreateNode(id DomId, style Style) {
	t.nodes[id] = &layoutNode{id: id, style: style, dirty: true}
}

// CreateNodeWithChildren inserts a node and attaches the given already-
// existing children in order. Referencing a child not yet present is a
// typed error; no nodes are attached if any child is missing.
func (t *LayoutTree) CreateNodeWithChildren(id DomId, style Style, children []DomId) error {
	for _, c := range children {
		if _, ok := t.nodes[c]; !ok {
			return &LayoutError{Op: "create_node_with_children", ID: c, Kind: LayoutErrNodeNotFound}
		}
	}
	n := &layoutNode{id: id, style: style, children: append([]DomId(nil), children...), dirty: true}
	t.nodes[id] = n
	for _, c := range children {
		t.nodes[c].parent = &id
	}
	return nil
}

// UpdateStyle replaces a node's style and marks it (and its ancestors,
// since a child's resize can change a Block ancestor's auto height) dirty.
func (t *LayoutTree) UpdateStyle(id DomId, style Style) error {
	n, ok := t.nodes[id]
	if !ok {
		return &LayoutError{Op: "update_style", ID: id, Kind: LayoutErrNodeNotFound}
	}
	n.style = style
	t.markDirtyUpward(id)
	return nil
}

// AddChild appends child to parent's child list.
func (t *LayoutTree) AddChild(parent, child DomId) error {
	p, ok := t.nodes[parent]
	if !ok {
		return &LayoutError{Op: "add_child", ID: parent, Kind: LayoutErrNodeNotFound}
	}
	c, ok := t.nodes[child]
	if !ok {
		return &LayoutError{Op: "add_child", ID: child, Kind: LayoutErrNodeNotFound}
	}
	p.children = append(p.children, child)
	c.parent = &parent
	t.markDirtyUpward(parent)
	return nil
}

// RemoveNode detaches id from its parent and deletes its entire subtree.
func (t *LayoutTree) RemoveNode(id DomId) error {
	n, ok := t.nodes[id]
	if !ok {
		return &LayoutError{Op: "remove_node", ID: id, Kind: LayoutErrNodeNotFound}
	}
	if n.parent != nil {
		if p, ok := t.nodes[*n.parent]; ok {
			for i, c := range p.children {
				if c == id {
					p.children = append(p.children[:i], p.children[i+1:]...)
					break
				}
			}
			t.markDirtyUpward(*n.parent)
		}
	}
	t.removeSubtree(id)
	return nil
}

func (t *LayoutTree) removeSubtree(id DomId) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	for _, c := range n.children {
		t.removeSubtree(c)
	}
	delete(t.nodes, id)
}

func (t *LayoutTree) markDirtyUpward(id DomId) {
	for {
		n, ok := t.nodes[id]
		if !ok {
			return
		}
		n.dirty = true
		if n.parent == nil {
			return
		}
		id = *n.parent
	}
}

// Clear drops every node in the tree.
func (t *LayoutTree) Clear() {
	t.nodes = make(map[DomId]*layoutNode)
}

// Layout returns the last computed box for id.
func (t *LayoutTree) Layout(id DomId) (Rect, error) {
	n, ok := t.nodes[id]
	if !ok {
		return Rect{}, &LayoutError{Op: "layout", ID: id, Kind: LayoutErrNodeNotFound}
	}
	return n.computed, nil
}

// TryLayout is Layout without the error: ok is false when id is unknown.
func (t *LayoutTree) TryLayout(id DomId) (Rect, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Rect{}, false
	}
	return n.computed, true
}

// Compute runs the layout algorithm from rootID down, given the available
// content size for the root (ordinarily the terminal's own dimensions).
func (t *LayoutTree) Compute(rootID DomId, availW, availH uint16) error {
	if _, ok := t.nodes[rootID]; !ok {
		return &LayoutError{Op: "compute", ID: rootID, Kind: LayoutErrNodeNotFound}
	}
	cb := Rect{X: 0, Y: 0, Width: availW, Height: availH}
	t.computeNode(rootID, 0, 0, int32(availW), int32(availH), cb)
	return nil
}

func clampU16(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

// resolveAxis turns a Size into a concrete extent, honouring min/max with
// min dominating when the two conflict.
func resolveAxis(size, minSize, maxSize Size, avail, fallback int32) int32 {
	v := size.Resolve(avail, fallback)
	if !maxSize.IsAuto() {
		if mx := maxSize.Resolve(avail, v); v > mx {
			v = mx
		}
	}
	if !minSize.IsAuto() {
		if mn := minSize.Resolve(avail, v); v < mn {
			v = mn
		}
	}
	if v < 0 {
		v = 0
	}
	return v
}

func isPositioned(p Position) bool {
	return p == PositionAbsolute || p == PositionFixed
}

// computeNode lays id out at (x,y) given the main available size along
// each axis and the nearest positioned ancestor's padding box (for
// absolute/fixed descendants' offset resolution), writing the result
// into the node's computed field and recursing into its children.
func (t *LayoutTree) computeNode(id DomId, x, y, availW, availH int32, containingBlock Rect) Rect {
	n := t.nodes[id]
	n.dirty = false

	if n.style.Layout.Display == DisplayNone {
		n.computed = Rect{X: clampU16(x), Y: clampU16(y)}
		t.zeroSubtree(id)
		return n.computed
	}

	sizing := n.style.Sizing
	width := resolveAxis(sizing.Width, sizing.MinWidth, sizing.MaxWidth, availW, availW)
	var height int32
	isBlock := n.style.Layout.Display == DisplayBlock || n.style.Layout.Display == DisplayUnset
	autoHeight := isBlock && sizing.Height.IsAuto()
	if !autoHeight {
		height = resolveAxis(sizing.Height, sizing.MinHeight, sizing.MaxHeight, availH, availH)
	}

	pad := n.style.Spacing.Padding
	contentAvailW := width - int32(pad.Left) - int32(pad.Right)
	if contentAvailW < 0 {
		contentAvailW = 0
	}
	contentX := x + int32(pad.Left)
	contentY := y + int32(pad.Top)

	ownBox := Rect{X: clampU16(x), Y: clampU16(y), Width: clampU16(width)}
	selfContainingBlock := containingBlock
	if isPositioned(n.style.Layout.Position) || n.style.Layout.Position == PositionRelative {
		selfContainingBlock = ownBox // refined below once height is known
	}

	inFlow := make([]DomId, 0, len(n.children))
	positioned := make([]DomId, 0)
	for _, c := range n.children {
		if isPositioned(t.nodes[c].style.Layout.Position) {
			positioned = append(positioned, c)
		} else {
			inFlow = append(inFlow, c)
		}
	}

	var contentAvailH int32
	if !autoHeight {
		contentAvailH = height - int32(pad.Top) - int32(pad.Bottom)
		if contentAvailH < 0 {
			contentAvailH = 0
		}
	}

	switch n.style.Layout.Display {
	case DisplayFlex:
		t.layoutFlexChildren(inFlow, contentX, contentY, contentAvailW, contentAvailH, n.style.Layout, selfContainingBlock)
	case DisplayGrid:
		t.layoutGridChildren(inFlow, contentX, contentY, contentAvailW, contentAvailH, n.style.Layout, selfContainingBlock)
	default: // Block
		used := t.layoutBlockChildren(inFlow, contentX, contentY, contentAvailW, selfContainingBlock)
		if autoHeight {
			height = used + int32(pad.Top) + int32(pad.Bottom)
			height = resolveAxis(Cells(int32(height)), sizing.MinHeight, sizing.MaxHeight, availH, height)
		}
	}

	ownBox.Height = clampU16(height)
	if isPositioned(n.style.Layout.Position) || n.style.Layout.Position == PositionRelative {
		selfContainingBlock = ownBox
	}

	for _, c := range positioned {
		t.layoutPositioned(c, selfContainingBlock)
	}

	n.computed = ownBox
	return ownBox
}

func (t *LayoutTree) zeroSubtree(id DomId) {
	n := t.nodes[id]
	for _, c := range n.children {
		cn := t.nodes[c]
		cn.computed = Rect{}
		cn.dirty = false
		t.zeroSubtree(c)
	}
}

// layoutBlockChildren stacks children vertically at full content width,
// each offset by its own margin; returns the outer height consumed.
func (t *LayoutTree) layoutBlockChildren(children []DomId, contentX, contentY, contentAvailW int32, cb Rect) int32 {
	cursorY := contentY
	for _, c := range children {
		cn := t.nodes[c]
		m := cn.style.Spacing.Margin
		childAvailW := contentAvailW - int32(m.Left) - int32(m.Right)
		if childAvailW < 0 {
			childAvailW = 0
		}
		cursorY += int32(m.Top)
		childRect := t.computeNode(c, contentX+int32(m.Left), cursorY, childAvailW, 0, cb)
		cursorY += int32(childRect.Height) + int32(m.Bottom)
	}
	return cursorY - contentY
}

// layoutFlexChildren implements the single-pass main/cross axis
// distribution: fixed-size items are measured first, remaining positive
// space is shared among growing items proportionally to flex-grow.
func (t *LayoutTree) layoutFlexChildren(children []DomId, contentX, contentY, availMain0, availCross0 int32, ls LayoutStyle, cb Rect) {
	if len(children) == 0 {
		return
	}
	isRow := ls.FlexDirection != FlexDirectionColumn

	availMain, availCross := availMain0, availCross0
	if !isRow {
		availMain, availCross = availCross0, availMain0
	}

	gap := int32(ls.Gap)
	rowGap, colGap := gap, gap
	if ls.RowGap != nil {
		rowGap = int32(*ls.RowGap)
	}
	if ls.ColumnGap != nil {
		colGap = int32(*ls.ColumnGap)
	}
	mainGap := colGap
	if !isRow {
		mainGap = rowGap
	}

	mainSizes := make([]int32, len(children))
	crossSizes := make([]int32, len(children))
	grows := make([]float32, len(children))
	totalMain := int32(0)
	totalGrow := float32(0)

	for i, c := range children {
		cn := t.nodes[c]
		sizing := cn.style.Sizing
		m := cn.style.Spacing.Margin
		var mainMargin, crossMargin int32
		var mainSize, crossSize int32
		if isRow {
			mainMargin = int32(m.Left) + int32(m.Right)
			crossMargin = int32(m.Top) + int32(m.Bottom)
			mainSize = resolveAxis(sizing.Width, sizing.MinWidth, sizing.MaxWidth, availMain, 0)
			if ls.AlignItems == AlignStretch || ls.AlignItems == AlignUnset {
				crossSize = resolveAxis(sizing.Height, sizing.MinHeight, sizing.MaxHeight, availCross, availCross-crossMargin)
			} else {
				crossSize = resolveAxis(sizing.Height, sizing.MinHeight, sizing.MaxHeight, availCross, 0)
			}
		} else {
			mainMargin = int32(m.Top) + int32(m.Bottom)
			crossMargin = int32(m.Left) + int32(m.Right)
			mainSize = resolveAxis(sizing.Height, sizing.MinHeight, sizing.MaxHeight, availMain, 0)
			if ls.AlignItems == AlignStretch || ls.AlignItems == AlignUnset {
				crossSize = resolveAxis(sizing.Width, sizing.MinWidth, sizing.MaxWidth, availCross, availCross-crossMargin)
			} else {
				crossSize = resolveAxis(sizing.Width, sizing.MinWidth, sizing.MaxWidth, availCross, 0)
			}
		}
		mainSizes[i] = mainSize
		crossSizes[i] = crossSize
		grows[i] = cn.style.Layout.FlexGrow
		totalGrow += grows[i]
		totalMain += mainMargin + mainSize
		if i > 0 {
			totalMain += mainGap
		}
	}

	growShares := make([]int32, len(children))
	if totalGrow > 0 && availMain > totalMain {
		extra := availMain - totalMain
		var distributed int32
		for i := range children {
			if grows[i] > 0 {
				share := int32(float32(extra) * grows[i] / totalGrow)
				growShares[i] = share
				distributed += share
			}
		}
		leftover := extra - distributed
		for i := 0; leftover > 0 && i < len(children); i++ {
			if grows[i] > 0 {
				growShares[i]++
				leftover--
			}
		}
	}

	mainPos := int32(0)
	extraGap := int32(0)
	switch ls.JustifyContent {
	case JustifyCenter:
		mainPos = max(0, (availMain-totalMain)/2)
	case JustifyEnd:
		mainPos = max(0, availMain-totalMain)
	case JustifySpaceBetween:
		if len(children) > 1 {
			extraGap = max(0, (availMain-totalMain+mainGap*int32(len(children)-1))/int32(len(children)-1))
		}
	case JustifySpaceAround:
		total := availMain - totalMain + mainGap*int32(len(children)-1)
		extraGap = total / int32(len(children))
		mainPos = extraGap / 2
	}

	for i, c := range children {
		cn := t.nodes[c]
		m := cn.style.Spacing.Margin
		mainSize := mainSizes[i] + growShares[i]
		crossSize := crossSizes[i]

		var mainMarginBefore, crossPos int32
		if isRow {
			mainMarginBefore = int32(m.Left)
		} else {
			mainMarginBefore = int32(m.Top)
		}
		switch ls.AlignItems {
		case AlignCenter:
			crossPos = max(0, (availCross-crossSize)/2)
		case AlignEnd:
			crossPos = max(0, availCross-crossSize)
		default:
			crossPos = 0
		}

		var childX, childY, childAvailW, childAvailH int32
		if isRow {
			childX = contentX + mainPos + mainMarginBefore
			childY = contentY + crossPos + int32(m.Top)
			childAvailW = mainSize
			childAvailH = crossSize
		} else {
			childX = contentX + crossPos + int32(m.Left)
			childY = contentY + mainPos + mainMarginBefore
			childAvailW = crossSize
			childAvailH = mainSize
		}

		t.computeNode(c, childX, childY, childAvailW, childAvailH, cb)

		effectiveGap := mainGap
		if ls.JustifyContent == JustifySpaceBetween || ls.JustifyContent == JustifySpaceAround {
			effectiveGap = extraGap
		}
		var marginAfter int32
		if isRow {
			marginAfter = int32(m.Right)
		} else {
			marginAfter = int32(m.Bottom)
		}
		mainPos += mainMarginBefore + mainSize + marginAfter + effectiveGap
	}
}

// layoutGridChildren resolves grid-template tracks to concrete sizes,
// auto-placing items lacking explicit grid-row/grid-column, row-major.
func (t *LayoutTree) layoutGridChildren(children []DomId, contentX, contentY, availW, availH int32, ls LayoutStyle, cb Rect) {
	rowGap, colGap := int32(ls.Gap), int32(ls.Gap)
	if ls.RowGap != nil {
		rowGap = int32(*ls.RowGap)
	}
	if ls.ColumnGap != nil {
		colGap = int32(*ls.ColumnGap)
	}

	cols := ls.GridTemplateColumns
	if len(cols) == 0 {
		cols = []GridTrack{{Kind: GridTrackFraction, Frac: 1}}
	}
	rows := ls.GridTemplateRows
	if len(rows) == 0 {
		rows = []GridTrack{{Kind: GridTrackFraction, Frac: 1}}
	}

	colSizes, colPositions := resolveTracks(cols, availW, colGap)
	rowSizes, rowPositions := resolveTracks(rows, availH, rowGap)

	autoRow, autoCol := 0, 0
	numCols := len(cols)

	for _, c := range children {
		cn := t.nodes[c]
		colStart, colSpan := gridLine(cn.style.Layout.GridColumn)
		rowStart, rowSpan := gridLine(cn.style.Layout.GridRow)

		if colStart == 0 && rowStart == 0 {
			colStart = int32(autoCol + 1)
			rowStart = int32(autoRow + 1)
			autoCol++
			if autoCol >= numCols {
				autoCol = 0
				autoRow++
			}
		} else {
			if colStart == 0 {
				colStart = 1
			}
			if rowStart == 0 {
				rowStart = 1
			}
		}

		x, w := spanRect(colPositions, colSizes, colStart, colSpan, colGap)
		y, h := spanRect(rowPositions, rowSizes, rowStart, rowSpan, rowGap)

		t.computeNode(c, contentX+x, contentY+y, w, h, cb)
	}
}

// gridLine resolves a GridPlacement into a 1-based start line and span.
func gridLine(p GridPlacement) (start, span int32) {
	if p.isZero() {
		return 0, 1
	}
	start = p.Start
	switch {
	case p.End < 0:
		span = -p.End
	case p.End > 0:
		span = p.End - p.Start
	default:
		span = 1
	}
	if span < 1 {
		span = 1
	}
	return start, span
}

// resolveTracks sizes a track list against avail: fixed tracks take their
// concrete size, auto/min-content/max-content tracks take 0 (no intrinsic
// content measurement is performed by the layout engine itself), and `fr`
// tracks share whatever space remains, proportional to their fraction.
func resolveTracks(tracks []GridTrack, avail, gap int32) (sizes, positions []int32) {
	sizes = make([]int32, len(tracks))
	var fixedTotal int32
	var totalFr float32
	for i, tr := range tracks {
		switch tr.Kind {
		case GridTrackFixed:
			sizes[i] = tr.Fixed
			fixedTotal += tr.Fixed
		case GridTrackFraction:
			totalFr += tr.Frac
		default:
			sizes[i] = 0
		}
	}
	var gapsTotal int32
	if len(tracks) > 1 {
		gapsTotal = gap * int32(len(tracks)-1)
	}
	remaining := avail - fixedTotal - gapsTotal
	if remaining < 0 {
		remaining = 0
	}
	if totalFr > 0 {
		var distributed int32
		lastFr := -1
		for i, tr := range tracks {
			if tr.Kind == GridTrackFraction {
				share := int32(float32(remaining) * tr.Frac / totalFr)
				sizes[i] = share
				distributed += share
				lastFr = i
			}
		}
		if lastFr >= 0 {
			sizes[lastFr] += remaining - distributed
		}
	}
	positions = make([]int32, len(tracks))
	pos := int32(0)
	for i := range tracks {
		positions[i] = pos
		pos += sizes[i] + gap
	}
	return sizes, positions
}

// spanRect sums contiguous track extents starting at the 1-based start
// line across span tracks, including the gaps between them.
func spanRect(positions, sizes []int32, start, span int32, gap int32) (pos, size int32) {
	idx := start - 1
	if idx < 0 || int(idx) >= len(positions) {
		return 0, 0
	}
	pos = positions[idx]
	for i := int32(0); i < span && int(idx+i) < len(sizes); i++ {
		size += sizes[idx+i]
	}
	if span > 1 {
		size += gap * (span - 1)
	}
	return pos, size
}

// layoutPositioned resolves an absolute/fixed node's box against the
// nearest non-static ancestor's padding box. Missing offsets on an axis
// default to Auto (0 inset from the box's own natural edge).
func (t *LayoutTree) layoutPositioned(id DomId, cb Rect) {
	n := t.nodes[id]
	sp := n.style.Spacing
	sizing := n.style.Sizing

	width := resolveAxis(sizing.Width, sizing.MinWidth, sizing.MaxWidth, int32(cb.Width), 0)
	height := resolveAxis(sizing.Height, sizing.MinHeight, sizing.MaxHeight, int32(cb.Height), 0)

	var x, y int32
	switch {
	case sp.Left != nil:
		x = int32(cb.X) + int32(*sp.Left)
	case sp.Right != nil:
		x = int32(cb.X) + int32(cb.Width) - width - int32(*sp.Right)
	default:
		x = int32(cb.X)
	}
	switch {
	case sp.Top != nil:
		y = int32(cb.Y) + int32(*sp.Top)
	case sp.Bottom != nil:
		y = int32(cb.Y) + int32(cb.Height) - height - int32(*sp.Bottom)
	default:
		y = int32(cb.Y)
	}

	t.computeNode(id, x, y, width, height, cb)
}

// CollectPositioned returns every Absolute/Fixed descendant of root,
// sorted by z-index ascending (painter's order: later entries draw on
// top), for the render pass to composite after in-flow content.
func (t *LayoutTree) CollectPositioned(root DomId) []DomId {
	var out []DomId
	var walk func(id DomId)
	walk = func(id DomId) {
		n, ok := t.nodes[id]
		if !ok {
			return
		}
		for _, c := range n.children {
			cn := t.nodes[c]
			if isPositioned(cn.style.Layout.Position) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	sort.SliceStable(out, func(i, j int) bool {
		return t.nodes[out[i]].style.Visual.ZIndex < t.nodes[out[j]].style.Visual.ZIndex
	})
	return out
}
