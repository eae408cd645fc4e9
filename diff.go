package vellum

// CellChange is one cell the diff found to differ between two buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// DiffBuffers compares two same-size buffers and returns the ordered list
// of cells where they differ, row-major top-to-bottom then left-to-right.
// Continuation cells are skipped — they are redrawn only via the wide
// cell at their left. prev and curr must share dimensions; a size change
// is the caller's signal to force a full redraw instead of calling this.
func DiffBuffers(prev, curr *Buffer) []CellChange {
	width := min(prev.Width(), curr.Width())
	height := min(prev.Height(), curr.Height())

	estimated := (width * height) / 5
	if estimated < 64 {
		estimated = 64
	}
	changes := make([]CellChange, 0, estimated)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := curr.Get(x, y)
			if c.IsContinuation() {
				continue
			}
			if !prev.Get(x, y).Equal(c) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: c})
			}
		}
	}
	return changes
}
