// Command vellumdemo drives a small animated panel through a real
// terminal, exercising cascade, layout, transitions, the braille canvas
// and the presenter end to end.
package main

import (
	"math"
	"time"

	vellum "github.com/vellumtui/vellum"
)

type demo struct {
	built           bool
	lastW, lastH    int
	root, bar, wave vellum.DomId
	gradient        *vellum.Gradient
	elapsed         time.Duration
}

func (d *demo) update(rt *vellum.Runtime, elapsed time.Duration) vellum.DomId {
	width, height := rt.Size()
	d.elapsed += elapsed

	if !d.built {
		d.buildDom(rt)
		d.built = true
	}
	// Resize clears the layout arena (old rects no longer apply), so the
	// layout side of the tree is rebuilt whenever the terminal size changes,
	// independently of the one-time Dom/View construction above.
	if width != d.lastW || height != d.lastH {
		d.buildLayout(rt, width, height)
		d.lastW, d.lastH = width, height
	}

	t := float32(math.Mod(d.elapsed.Seconds()/4, 1))
	barStyle := vellum.DefaultStyle()
	barStyle.Sizing.Width = vellum.Pct(100)
	barStyle.Sizing.Height = vellum.Cells(3)
	barStyle.Visual.Background = d.gradient.At(t)
	rt.Dom.SetInlineStyle(d.bar, &barStyle)
	rt.Layout.UpdateStyle(d.bar, barStyle)

	return d.root
}

func (d *demo) buildDom(rt *vellum.Runtime) {
	d.gradient = vellum.Rainbow().WithSpread(vellum.SpreadRepeat)

	d.root = rt.Dom.CreateNode(vellum.WidgetMeta{WidgetType: "box", ElementID: "root"})
	rootStyle := vellum.DefaultStyle()
	rootStyle.Layout.Display = vellum.DisplayBlock
	rootStyle.Spacing.Padding = vellum.EdgesAll(1)
	rootStyle.Visual.BorderStyle = vellum.BorderStyleRounded
	rootStyle.Visual.BorderColor = vellum.RGB(100, 200, 255)
	rootStyle.Visual.Background = vellum.ColorBlack
	rt.Dom.SetInlineStyle(d.root, &rootStyle)
	rt.SetView(d.root, vellum.ViewFunc(func(ctx vellum.RenderContext) {
		vellum.FillBackground(ctx)
		vellum.DrawBorder(ctx.Buffer, ctx.Area, ctx.Style)
	}))

	d.bar = rt.Dom.CreateNode(vellum.WidgetMeta{WidgetType: "box", ElementID: "bar"})
	barStyle := vellum.DefaultStyle()
	barStyle.Sizing.Width = vellum.Pct(100)
	barStyle.Sizing.Height = vellum.Cells(3)
	rt.Dom.SetInlineStyle(d.bar, &barStyle)
	rt.Dom.AddChild(d.root, d.bar)
	rt.SetView(d.bar, vellum.ViewFunc(func(ctx vellum.RenderContext) {
		vellum.FillBackground(ctx)
		vellum.DrawText(ctx, " cascade -> layout -> render -> transitions -> diff -> present")
	}))

	d.wave = rt.Dom.CreateNode(vellum.WidgetMeta{WidgetType: "canvas", ElementID: "wave"})
	waveStyle := vellum.DefaultStyle()
	waveStyle.Sizing.Width = vellum.Pct(100)
	waveStyle.Sizing.Height = vellum.Auto()
	rt.Dom.SetInlineStyle(d.wave, &waveStyle)
	rt.Dom.AddChild(d.root, d.wave)
	rt.SetView(d.wave, vellum.ViewFunc(d.renderWave))
}

// buildLayout (re)populates the layout arena for the current terminal size.
// Called once at startup and again after every SIGWINCH-driven resize, since
// Runtime.Resize discards the previous LayoutTree wholesale.
func (d *demo) buildLayout(rt *vellum.Runtime, width, height int) {
	rootStyle := *rt.Dom.Get(d.root).InlineStyle
	rootStyle.Sizing.Width = vellum.Cells(int32(width))
	rootStyle.Sizing.Height = vellum.Cells(int32(height))
	rt.Dom.SetInlineStyle(d.root, &rootStyle)
	rt.Layout.CreateNode(d.root, rootStyle)

	barStyle := *rt.Dom.Get(d.bar).InlineStyle
	rt.Layout.CreateNode(d.bar, barStyle)
	rt.Layout.AddChild(d.root, d.bar)

	waveStyle := *rt.Dom.Get(d.wave).InlineStyle
	rt.Layout.CreateNode(d.wave, waveStyle)
	rt.Layout.AddChild(d.root, d.wave)
}

func (d *demo) renderWave(ctx vellum.RenderContext) {
	w, h := int(ctx.Area.Width), int(ctx.Area.Height)
	if w <= 0 || h <= 0 {
		return
	}
	grid := vellum.NewBrailleGrid(w, h)
	phase := d.elapsed.Seconds() * 2
	amplitude := float64(grid.Height()) / 3

	points := make([]vellum.Point2D, 0, grid.Width())
	for x := 0; x < grid.Width(); x++ {
		angle := float64(x)/6 + phase
		y := float64(grid.Height())/2 + amplitude*math.Sin(angle)
		points = append(points, vellum.Point2D{X: float64(x), Y: y})
	}
	grid.Draw(vellum.Points{Coords: points, Color: vellum.RGB(0, 255, 180)})
	grid.BlitTo(ctx.Buffer, int(ctx.Area.X), int(ctx.Area.Y))
}

func main() {
	d := &demo{}
	vellum.Run(d.update, vellum.RunOptions{
		CaptureConsole: true,
	})
}
