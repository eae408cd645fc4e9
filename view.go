package vellum

// RenderContext is the read-only view a widget's render function gets:
// its back buffer, the cell rectangle the layout engine assigned it, and
// its fully cascaded style. Widgets are external collaborators — the
// runtime core ships none beyond what tests need — but every widget
// plugged into it implements View.
type RenderContext struct {
	Buffer *Buffer
	Area   Rect
	Style  Style
}

// View is the contract a widget implementation fulfils to participate in
// a frame's render phase. Render draws into ctx.Buffer within ctx.Area
// and returns nothing; the runtime then visits the node's DOM children
// itself.
type View interface {
	Render(ctx RenderContext)
}

// ViewFunc adapts a plain function to the View interface.
type ViewFunc func(ctx RenderContext)

// Render calls f.
func (f ViewFunc) Render(ctx RenderContext) { f(ctx) }

// FillBackground paints every cell in ctx.Area with the style's
// background colour, the baseline a container draws before its children.
func FillBackground(ctx RenderContext) {
	if ctx.Style.Visual.Background.IsZero() {
		return
	}
	for dy := 0; dy < int(ctx.Area.Height); dy++ {
		for dx := 0; dx < int(ctx.Area.Width); dx++ {
			x, y := int(ctx.Area.X)+dx, int(ctx.Area.Y)+dy
			cell := ctx.Buffer.Get(x, y)
			cell.Bg = ctx.Style.Visual.Background
			ctx.Buffer.Set(x, y, cell)
		}
	}
}

// DrawText writes a single line of text at the area's origin, clipped to
// the area's width, using the resolved foreground/background colours and
// no modifier.
func DrawText(ctx RenderContext, text string) {
	if ctx.Style.Visual.Opacity <= 0 {
		return
	}
	// The cascade carries no font-weight/decoration properties (spec's
	// visual style is limited to colour, opacity, visibility and border);
	// widgets wanting bold/italic/underline text call buffer.WriteString
	// directly with their own Modifier value instead of going through
	// DrawText.
	ctx.Buffer.WriteString(int(ctx.Area.X), int(ctx.Area.Y), clipToWidth(text, int(ctx.Area.Width)), ctx.Style.Visual.Color, ctx.Style.Visual.Background, 0)
}

func clipToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// Clip rune by rune, stopping before a rune that would overflow, so a
	// wide glyph is never split.
	var out []rune
	total := 0
	for _, r := range s {
		rw := RuneWidth(r)
		if total+rw > width {
			break
		}
		out = append(out, r)
		total += rw
	}
	return string(out)
}
