package vellum

// BorderChars is the box-drawing glyph set for one border variant.
type BorderChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var borderCharSets = map[BorderStyle]BorderChars{
	BorderStyleSolid:   {'┌', '┐', '└', '┘', '─', '│'},
	BorderStyleRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderStyleDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
	BorderStyleThick:   {'┏', '┓', '┗', '┛', '━', '┃'},
	BorderStyleDashed:  {'┌', '┐', '└', '┘', '╌', '╎'},
}

// DrawBorder paints a border around area using the style's border_style
// and border_color, returning the content rect inside it. Areas smaller
// than 2x2 cells, or a style with no border, draw nothing and return area
// unchanged.
func DrawBorder(buf *Buffer, area Rect, style Style) Rect {
	bs := style.Visual.BorderStyle
	if bs == BorderStyleUnset || bs == BorderStyleNone || area.Width < 2 || area.Height < 2 {
		return area
	}
	chars, ok := borderCharSets[bs]
	if !ok {
		chars = borderCharSets[BorderStyleSolid]
	}
	fg := style.Visual.BorderColor
	bg := style.Visual.Background

	x0, y0 := int(area.X), int(area.Y)
	x1, y1 := x0+int(area.Width)-1, y0+int(area.Height)-1

	for x := x0; x <= x1; x++ {
		top, bottom := chars.Horizontal, chars.Horizontal
		switch x {
		case x0:
			top, bottom = chars.TopLeft, chars.BottomLeft
		case x1:
			top, bottom = chars.TopRight, chars.BottomRight
		}
		buf.Set(x, y0, Cell{Symbol: top, Fg: fg, Bg: bg})
		buf.Set(x, y1, Cell{Symbol: bottom, Fg: fg, Bg: bg})
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, Cell{Symbol: chars.Vertical, Fg: fg, Bg: bg})
		buf.Set(x1, y, Cell{Symbol: chars.Vertical, Fg: fg, Bg: bg})
	}

	return Rect{X: area.X + 1, Y: area.Y + 1, Width: area.Width - 2, Height: area.Height - 2}
}

// DrawHLine draws a horizontal rule of width cells starting at (x,y).
func DrawHLine(buf *Buffer, x, y, width int, color Color) {
	for dx := 0; dx < width; dx++ {
		buf.Set(x+dx, y, Cell{Symbol: '─', Fg: color})
	}
}

// DrawVLine draws a vertical rule of height cells starting at (x,y).
func DrawVLine(buf *Buffer, x, y, height int, color Color) {
	for dy := 0; dy < height; dy++ {
		buf.Set(x, y+dy, Cell{Symbol: '│', Fg: color})
	}
}

// DrawSeparator draws a horizontal divider with T-junction glyphs at the
// edges of area, at row y. A no-op if y isn't strictly inside area.
func DrawSeparator(buf *Buffer, area Rect, y int, color Color) {
	top, bottom := int(area.Y), int(area.Y)+int(area.Height)-1
	if y <= top || y >= bottom {
		return
	}
	x0, x1 := int(area.X), int(area.X)+int(area.Width)-1
	buf.Set(x0, y, Cell{Symbol: '├', Fg: color})
	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y, Cell{Symbol: '─', Fg: color})
	}
	buf.Set(x1, y, Cell{Symbol: '┤', Fg: color})
}
