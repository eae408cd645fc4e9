package vellum

// Modifier is a bitset of text attributes layered onto a cell's colours.
type Modifier uint8

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderline
	ModInverse
	ModStrikethrough
)

// Cell is a single styled terminal position. Symbol carries the glyph
// (for wide glyphs, the leftmost cell of the run; continuation cells carry
// the zero rune). HyperlinkID and SequenceID are side-table handles into
// the owning Buffer — 0 means "none" — compared by id, never by the string
// they intern, since two frames can assign the same URL different ids.
type Cell struct {
	Symbol      rune
	Fg, Bg      Color
	Modifier    Modifier
	HyperlinkID uint16
	SequenceID  uint16
	// continuation marks a cell produced by a wide grapheme written at the
	// cell to its left; the diff and presenter skip it.
	continuation bool
}

// EmptyCell is the default cell: a blank space with no colour or
// attributes.
var EmptyCell = Cell{Symbol: ' '}

// IsContinuation reports whether c is a placeholder cell trailing a wide
// glyph, and so should never be diffed or drawn on its own.
func (c Cell) IsContinuation() bool { return c.continuation }

// Equal reports whether two cells are indistinguishable for diff purposes.
func (a Cell) Equal(b Cell) bool {
	return a.Symbol == b.Symbol && a.Fg == b.Fg && a.Bg == b.Bg &&
		a.Modifier == b.Modifier && a.HyperlinkID == b.HyperlinkID &&
		a.SequenceID == b.SequenceID && a.continuation == b.continuation
}

// Buffer is a fixed-size grid of cells with interned hyperlink and raw
// escape-sequence side-tables.
type Buffer struct {
	width, height int
	cells         []Cell
	hyperlinks    []string
	sequences     []string
	hyperlinkIdx  map[string]uint16
	sequenceIdx   map[string]uint16
}

// NewBuffer allocates a w×h buffer filled with EmptyCell.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{width: w, height: h}
	b.cells = make([]Cell, w*h)
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	return b
}

// Width and Height report the buffer's dimensions.
func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int { return y*b.width + x }

// Get reads the cell at (x,y), or EmptyCell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[b.index(x, y)]
}

// Set writes a cell at (x,y). A no-op when out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// WriteGrapheme writes a single grapheme cluster of the given column width
// at (x,y), followed by width-1 continuation cells, per the wide-glyph
// rule: the presenter and diff engine redraw only the leftmost cell of the
// run. width<=0 is treated as 1 (never write a zero-width placeholder on
// its own).
func (b *Buffer) WriteGrapheme(x, y int, r rune, width int, fg, bg Color, mod Modifier) {
	if width < 1 {
		width = 1
	}
	b.Set(x, y, Cell{Symbol: r, Fg: fg, Bg: bg, Modifier: mod})
	for i := 1; i < width; i++ {
		b.Set(x+i, y, Cell{Symbol: 0, Fg: fg, Bg: bg, Modifier: mod, continuation: true})
	}
}

// WriteString writes text starting at (x,y), advancing by each grapheme
// cluster's column width and emitting continuation cells for wide glyphs.
// Clipped at the buffer's right edge.
func (b *Buffer) WriteString(x, y int, text string, fg, bg Color, mod Modifier) {
	if y < 0 || y >= b.height {
		return
	}
	col := x
	for len(text) > 0 {
		w, size := GraphemeWidth(text)
		if size == 0 {
			break
		}
		r := []rune(text[:size])[0]
		if col >= 0 && col < b.width {
			b.WriteGrapheme(col, y, r, w, fg, bg, mod)
		}
		col += w
		text = text[size:]
		if col >= b.width {
			break
		}
	}
}

// InternHyperlink returns a stable id for url, assigning a new one if this
// url hasn't been seen yet this frame.
func (b *Buffer) InternHyperlink(url string) uint16 {
	if url == "" {
		return 0
	}
	if b.hyperlinkIdx == nil {
		b.hyperlinkIdx = make(map[string]uint16)
	}
	if id, ok := b.hyperlinkIdx[url]; ok {
		return id
	}
	b.hyperlinks = append(b.hyperlinks, url)
	id := uint16(len(b.hyperlinks))
	b.hyperlinkIdx[url] = id
	return id
}

// Hyperlink resolves a hyperlink id back to its URL. id 0 returns "", false.
func (b *Buffer) Hyperlink(id uint16) (string, bool) {
	if id == 0 || int(id) > len(b.hyperlinks) {
		return "", false
	}
	return b.hyperlinks[id-1], true
}

// InternSequence returns a stable id for a raw escape sequence, assigning
// a new one if unseen this frame.
func (b *Buffer) InternSequence(seq string) uint16 {
	if seq == "" {
		return 0
	}
	if b.sequenceIdx == nil {
		b.sequenceIdx = make(map[string]uint16)
	}
	if id, ok := b.sequenceIdx[seq]; ok {
		return id
	}
	b.sequences = append(b.sequences, seq)
	id := uint16(len(b.sequences))
	b.sequenceIdx[seq] = id
	return id
}

// Sequence resolves a raw-sequence id back to its bytes.
func (b *Buffer) Sequence(id uint16) (string, bool) {
	if id == 0 || int(id) > len(b.sequences) {
		return "", false
	}
	return b.sequences[id-1], true
}

// Clear resets every cell to EmptyCell and drops the side-tables. Ids
// handed out before Clear must not be reused against the cleared buffer.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	b.hyperlinks = nil
	b.sequences = nil
	b.hyperlinkIdx = nil
	b.sequenceIdx = nil
}

// Resize reallocates the buffer to w×h, preserving no content, per the
// Cell & Buffer contract (a size change forces a full redraw downstream).
func (b *Buffer) Resize(w, h int) {
	b.width, b.height = w, h
	b.cells = make([]Cell, w*h)
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	b.hyperlinks = nil
	b.sequences = nil
	b.hyperlinkIdx = nil
	b.sequenceIdx = nil
}
