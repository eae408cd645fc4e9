package vellum

import "math"

// brailleDotBit maps a (col, row) position within a cell's 2x4 subpixel
// grid to its bit in the Unicode braille pattern block (U+2800 base).
// Dots are numbered top-to-bottom, left-column-first: 1 2 3 7 / 4 5 6 8.
var brailleDotBit = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// BrailleGrid is a sub-cell drawing surface: each terminal cell holds a
// 2x4 grid of settable dots, packed into one Unicode braille glyph.
// Coordinates are in dot space (cellWidth*2 x cellHeight*4).
type BrailleGrid struct {
	cellsW, cellsH int
	dots           []uint8
	colors         []Color
}

// NewBrailleGrid creates a grid of cellsW x cellsH terminal cells, giving
// a dot resolution of (cellsW*2) x (cellsH*4).
func NewBrailleGrid(cellsW, cellsH int) *BrailleGrid {
	return &BrailleGrid{
		cellsW: cellsW,
		cellsH: cellsH,
		dots:   make([]uint8, cellsW*cellsH),
		colors: make([]Color, cellsW*cellsH),
	}
}

// Width reports the dot-space width.
func (g *BrailleGrid) Width() int { return g.cellsW * 2 }

// Height reports the dot-space height.
func (g *BrailleGrid) Height() int { return g.cellsH * 4 }

// Set lights a dot at dot-space (x,y), tinting its cell with color. Out of
// range coordinates are ignored. The cell colour is last-write-wins, as
// braille glyphs carry one foreground colour per cell.
func (g *BrailleGrid) Set(x, y int, color Color) {
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		return
	}
	cellX, cellY := x/2, y/4
	subX, subY := x%2, y%4
	idx := cellY*g.cellsW + cellX
	g.dots[idx] |= brailleDotBit[subY][subX]
	g.colors[idx] = color
}

// Cell returns the braille rune and colour for the terminal cell at
// (cellX, cellY), and whether any dot in it is lit.
func (g *BrailleGrid) Cell(cellX, cellY int) (rune, Color, bool) {
	if cellX < 0 || cellY < 0 || cellX >= g.cellsW || cellY >= g.cellsH {
		return ' ', Color{}, false
	}
	idx := cellY*g.cellsW + cellX
	pattern := g.dots[idx]
	if pattern == 0 {
		return ' ', Color{}, false
	}
	return rune(brailleBase + int(pattern)), g.colors[idx], true
}

// Clear resets every dot and colour.
func (g *BrailleGrid) Clear() {
	for i := range g.dots {
		g.dots[i] = 0
		g.colors[i] = Color{}
	}
}

// BlitTo paints the grid's cells into buf, anchored at (originX, originY)
// in terminal-cell coordinates.
func (g *BrailleGrid) BlitTo(buf *Buffer, originX, originY int) {
	for cy := 0; cy < g.cellsH; cy++ {
		for cx := 0; cx < g.cellsW; cx++ {
			r, color, lit := g.Cell(cx, cy)
			if !lit {
				continue
			}
			buf.Set(originX+cx, originY+cy, Cell{Symbol: r, Fg: color})
		}
	}
}

// Shape is anything that can plot itself onto a BrailleGrid.
type Shape interface {
	Draw(grid *BrailleGrid)
}

// Draw plots shape onto the grid.
func (g *BrailleGrid) Draw(shape Shape) { shape.Draw(g) }

// Line is a straight segment in dot space.
type Line struct {
	X0, Y0, X1, Y1 float64
	Color          Color
}

// Draw rasterizes the line with a floating-point Bresenham walk.
func (l Line) Draw(grid *BrailleGrid) {
	dx := math.Abs(l.X1 - l.X0)
	dy := math.Abs(l.Y1 - l.Y0)
	sx, sy := 1.0, 1.0
	if l.X0 >= l.X1 {
		sx = -1
	}
	if l.Y0 >= l.Y1 {
		sy = -1
	}
	err := dx - dy
	x, y := l.X0, l.Y0

	for {
		grid.Set(int(x), int(y), l.Color)
		if math.Abs(x-l.X1) < 0.5 && math.Abs(y-l.Y1) < 0.5 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Circle is a circle outline in dot space.
type Circle struct {
	X, Y, Radius float64
	Color        Color
}

// Draw rasterizes the outline with the midpoint circle algorithm.
func (c Circle) Draw(grid *BrailleGrid) {
	x, y, err := int(c.Radius), 0, 0
	for x >= y {
		pts := [8][2]int{
			{int(c.X) + x, int(c.Y) + y}, {int(c.X) + y, int(c.Y) + x},
			{int(c.X) - y, int(c.Y) + x}, {int(c.X) - x, int(c.Y) + y},
			{int(c.X) - x, int(c.Y) - y}, {int(c.X) - y, int(c.Y) - x},
			{int(c.X) + y, int(c.Y) - x}, {int(c.X) + x, int(c.Y) - y},
		}
		for _, p := range pts {
			if p[0] >= 0 && p[1] >= 0 {
				grid.Set(p[0], p[1], c.Color)
			}
		}
		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// FilledCircle is a filled disc in dot space.
type FilledCircle struct {
	X, Y, Radius float64
	Color        Color
}

// Draw scans the bounding box and fills points inside the radius.
func (c FilledCircle) Draw(grid *BrailleGrid) {
	r2 := c.Radius * c.Radius
	minX, maxX := int(math.Max(c.X-c.Radius, 0)), int(c.X+c.Radius)
	minY, maxY := int(math.Max(c.Y-c.Radius, 0)), int(c.Y+c.Radius)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx, dy := float64(px)-c.X, float64(py)-c.Y
			if dx*dx+dy*dy <= r2 {
				grid.Set(px, py, c.Color)
			}
		}
	}
}

// Arc is a portion of a circle's outline, spanning StartAngle to EndAngle
// radians counter-clockwise (0 = right).
type Arc struct {
	X, Y, Radius         float64
	StartAngle, EndAngle float64
	Color                Color
}

// ArcFromDegrees builds an Arc from degree angles.
func ArcFromDegrees(x, y, radius, startDeg, endDeg float64, color Color) Arc {
	return Arc{X: x, Y: y, Radius: radius, StartAngle: startDeg * math.Pi / 180, EndAngle: endDeg * math.Pi / 180, Color: color}
}

// Draw rasterizes the arc by marching angle steps proportional to arc length.
func (a Arc) Draw(grid *BrailleGrid) {
	start := a.StartAngle
	end := a.EndAngle
	for end < start {
		end += 2 * math.Pi
	}
	arcLength := a.Radius * math.Abs(end-start)
	steps := int(math.Max(arcLength*2, 20))
	stepAngle := (end - start) / float64(steps)

	for i := 0; i <= steps; i++ {
		angle := start + stepAngle*float64(i)
		px := a.X + a.Radius*math.Cos(angle)
		py := a.Y + a.Radius*math.Sin(angle)
		if px >= 0 && py >= 0 {
			grid.Set(int(px), int(py), a.Color)
		}
	}
}

// Polygon is a closed outline through a list of vertices.
type Polygon struct {
	Vertices []Point2D
	Color    Color
}

// Point2D is a dot-space coordinate pair.
type Point2D struct{ X, Y float64 }

// RegularPolygon builds a polygon with evenly spaced vertices around a
// centre, starting at the top.
func RegularPolygon(x, y, radius float64, sides int, color Color) Polygon {
	vertices := make([]Point2D, sides)
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		angle := step*float64(i) - math.Pi/2
		vertices[i] = Point2D{X: x + radius*math.Cos(angle), Y: y + radius*math.Sin(angle)}
	}
	return Polygon{Vertices: vertices, Color: color}
}

// Draw connects consecutive vertices, wrapping back to the first.
func (p Polygon) Draw(grid *BrailleGrid) {
	if len(p.Vertices) < 2 {
		return
	}
	for i := range p.Vertices {
		p0 := p.Vertices[i]
		p1 := p.Vertices[(i+1)%len(p.Vertices)]
		Line{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y, Color: p.Color}.Draw(grid)
	}
}

// FilledPolygon is a polygon filled with a scanline ray-cast test.
type FilledPolygon struct {
	Vertices []Point2D
	Color    Color
}

// Draw fills the polygon's bounding box using point-in-polygon testing.
func (p FilledPolygon) Draw(grid *BrailleGrid) {
	if len(p.Vertices) < 3 {
		return
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range p.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}

	for py := int(math.Max(minY, 0)); py <= int(maxY); py++ {
		for px := int(math.Max(minX, 0)); px <= int(maxX); px++ {
			if p.pointInside(float64(px), float64(py)) {
				grid.Set(px, py, p.Color)
			}
		}
	}
}

func (p FilledPolygon) pointInside(x, y float64) bool {
	inside := false
	n := len(p.Vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > y) != (vj.Y > y) && x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Rectangle is an axis-aligned outline.
type Rectangle struct {
	X, Y, Width, Height float64
	Color               Color
}

// Draw traces the four edges as lines.
func (r Rectangle) Draw(grid *BrailleGrid) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	Line{X0: x0, Y0: y0, X1: x1, Y1: y0, Color: r.Color}.Draw(grid)
	Line{X0: x0, Y0: y1, X1: x1, Y1: y1, Color: r.Color}.Draw(grid)
	Line{X0: x0, Y0: y0, X1: x0, Y1: y1, Color: r.Color}.Draw(grid)
	Line{X0: x1, Y0: y0, X1: x1, Y1: y1, Color: r.Color}.Draw(grid)
}

// FilledRectangle is an axis-aligned filled rectangle.
type FilledRectangle struct {
	X, Y, Width, Height float64
	Color               Color
}

// Draw fills every dot within the rectangle's bounds.
func (r FilledRectangle) Draw(grid *BrailleGrid) {
	x0, y0 := int(math.Max(r.X, 0)), int(math.Max(r.Y, 0))
	x1, y1 := int(r.X+r.Width), int(r.Y+r.Height)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			grid.Set(px, py, r.Color)
		}
	}
}

// Points is a polyline through a sequence of dot-space coordinates.
type Points struct {
	Coords []Point2D
	Color  Color
}

// PointsFromSlices zips parallel x/y slices into a Points polyline.
func PointsFromSlices(xs, ys []float64, color Color) Points {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	coords := make([]Point2D, n)
	for i := 0; i < n; i++ {
		coords[i] = Point2D{X: xs[i], Y: ys[i]}
	}
	return Points{Coords: coords, Color: color}
}

// Draw connects consecutive points with line segments.
func (p Points) Draw(grid *BrailleGrid) {
	for i := 0; i+1 < len(p.Coords); i++ {
		p0, p1 := p.Coords[i], p.Coords[i+1]
		Line{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y, Color: p.Color}.Draw(grid)
	}
}
