package vellum

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// InterpolationMode selects the colour space a Gradient interpolates stops
// in.
type InterpolationMode uint8

const (
	InterpolationRGB InterpolationMode = iota
	InterpolationHSL
	InterpolationHSLShort
)

// SpreadMode controls how a Gradient handles positions outside [0,1].
type SpreadMode uint8

const (
	SpreadClamp SpreadMode = iota
	SpreadRepeat
	SpreadReflect
)

// ColorStop pins a colour to a position along a gradient.
type ColorStop struct {
	Position float32
	Color    Color
}

// StartStop places a colour at position 0.
func StartStop(c Color) ColorStop { return ColorStop{Position: 0, Color: c} }

// EndStop places a colour at position 1.
func EndStop(c Color) ColorStop { return ColorStop{Position: 1, Color: c} }

// Gradient is a multi-stop colour ramp sampled by position.
type Gradient struct {
	stops         []ColorStop
	Interpolation InterpolationMode
	Spread        SpreadMode
}

// NewGradient builds a gradient from stops, sorted by position.
func NewGradient(stops []ColorStop) *Gradient {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	return &Gradient{stops: sorted}
}

// DefaultGradient is black-to-white, matching Gradient's zero-value intent.
func DefaultGradient() *Gradient {
	return NewGradient([]ColorStop{StartStop(ColorBlack), EndStop(ColorWhite)})
}

// LinearGradient is a simple two-colour ramp.
func LinearGradient(from, to Color) *Gradient {
	return NewGradient([]ColorStop{StartStop(from), EndStop(to)})
}

// ThreeStopGradient places start/middle/end at positions 0, 0.5, 1.
func ThreeStopGradient(start, middle, end Color) *Gradient {
	return NewGradient([]ColorStop{
		{Position: 0, Color: start},
		{Position: 0.5, Color: middle},
		{Position: 1, Color: end},
	})
}

// GradientFromColors spreads colors evenly across [0,1]. Zero colors fall
// back to DefaultGradient; one colour produces a degenerate flat gradient.
func GradientFromColors(colors []Color) *Gradient {
	if len(colors) == 0 {
		return DefaultGradient()
	}
	if len(colors) == 1 {
		return LinearGradient(colors[0], colors[0])
	}
	step := 1 / float32(len(colors)-1)
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		stops[i] = ColorStop{Position: float32(i) * step, Color: c}
	}
	return NewGradient(stops)
}

// WithInterpolation sets the interpolation mode and returns the gradient.
func (g *Gradient) WithInterpolation(mode InterpolationMode) *Gradient {
	g.Interpolation = mode
	return g
}

// WithSpread sets the spread mode and returns the gradient.
func (g *Gradient) WithSpread(mode SpreadMode) *Gradient {
	g.Spread = mode
	return g
}

// AddStop inserts a stop, keeping stops sorted by position.
func (g *Gradient) AddStop(stop ColorStop) {
	g.stops = append(g.stops, stop)
	sort.Slice(g.stops, func(i, j int) bool { return g.stops[i].Position < g.stops[j].Position })
}

// Len reports the number of colour stops.
func (g *Gradient) Len() int { return len(g.stops) }

// IsEmpty reports whether the gradient has no stops.
func (g *Gradient) IsEmpty() bool { return len(g.stops) == 0 }

// Stops returns the sorted colour stops.
func (g *Gradient) Stops() []ColorStop { return g.stops }

func (g *Gradient) normalizePosition(t float32) float32 {
	switch g.Spread {
	case SpreadRepeat:
		return remEuclid(t, 1)
	case SpreadReflect:
		t = remEuclid(t, 2)
		if t > 1 {
			return 2 - t
		}
		return t
	default:
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

func remEuclid(a, b float32) float32 {
	r := float32(math.Mod(float64(a), float64(b)))
	if r < 0 {
		r += b
	}
	return r
}

// At samples the gradient's colour at position t (expected in [0,1], but
// Spread governs out-of-range behaviour).
func (g *Gradient) At(t float32) Color {
	if len(g.stops) == 0 {
		return ColorBlack
	}
	if len(g.stops) == 1 {
		return g.stops[0].Color
	}

	t = g.normalizePosition(t)

	prev := g.stops[0]
	next := g.stops[len(g.stops)-1]
	for _, s := range g.stops {
		if s.Position <= t {
			prev = s
		}
		if s.Position >= t && s.Position < next.Position {
			next = s
			break
		}
	}

	if prev.Position >= next.Position {
		return prev.Color
	}

	localT := (t - prev.Position) / (next.Position - prev.Position)
	return interpolateColor(prev.Color, next.Color, localT, g.Interpolation)
}

func interpolateColor(from, to Color, t float32, mode InterpolationMode) Color {
	t64 := float64(t)
	fc := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	tc := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}

	var blended colorful.Color
	switch mode {
	case InterpolationHSL, InterpolationHSLShort:
		fh, fs, fl := fc.Hsl()
		th, ts, tl := tc.Hsl()
		if mode == InterpolationHSLShort {
			th = shortestHue(fh, th)
		}
		h := fh + (th-fh)*t64
		s := fs + (ts-fs)*t64
		l := fl + (tl-fl)*t64
		blended = colorful.Hsl(math.Mod(h+360, 360), s, l)
	default:
		blended = fc.BlendRgb(tc, t64)
	}
	blended = blended.Clamped()
	r, g, b := blended.RGB255()
	a := from.A
	if t >= 1 {
		a = to.A
	}
	return Color{R: r, G: g, B: b, A: a}
}

// shortestHue adjusts `to` by a multiple of 360 so it lies within 180
// degrees of `from`, giving the short way around the hue wheel.
func shortestHue(from, to float64) float64 {
	diff := to - from
	if diff > 180 {
		return to - 360
	}
	if diff < -180 {
		return to + 360
	}
	return to
}

// Colors samples width evenly-spaced colours across the gradient.
func (g *Gradient) Colors(width int) []Color {
	if width <= 0 {
		return nil
	}
	if width == 1 {
		return []Color{g.At(0.5)}
	}
	out := make([]Color, width)
	for i := 0; i < width; i++ {
		out[i] = g.At(float32(i) / float32(width-1))
	}
	return out
}

// Reversed returns a new gradient with stop positions mirrored around 0.5.
func (g *Gradient) Reversed() *Gradient {
	stops := make([]ColorStop, len(g.stops))
	for i, s := range g.stops {
		stops[len(g.stops)-1-i] = ColorStop{Position: 1 - s.Position, Color: s.Color}
	}
	return &Gradient{stops: stops, Interpolation: g.Interpolation, Spread: g.Spread}
}

// RadialGradient maps a base Gradient onto a 2D area by distance from a
// centre point.
type RadialGradient struct {
	Gradient *Gradient
	CenterX  float32
	CenterY  float32
	Radius   float32
}

// NewRadialGradient wraps gradient, centered with radius reaching the
// area's edge.
func NewRadialGradient(gradient *Gradient) *RadialGradient {
	return &RadialGradient{Gradient: gradient, CenterX: 0.5, CenterY: 0.5, Radius: 1}
}

// CircularGradient is a radial gradient from a centre colour to an edge
// colour.
func CircularGradient(center, edge Color) *RadialGradient {
	return NewRadialGradient(LinearGradient(center, edge))
}

// WithCenter sets the centre point, clamped to [0,1] on each axis.
func (r *RadialGradient) WithCenter(x, y float32) *RadialGradient {
	r.CenterX = clamp01(x)
	r.CenterY = clamp01(y)
	return r
}

// WithRadius sets the radius scale, floored at 0.01 to avoid division by
// zero.
func (r *RadialGradient) WithRadius(radius float32) *RadialGradient {
	if radius < 0.01 {
		radius = 0.01
	}
	r.Radius = radius
	return r
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// At samples the colour at cell (x,y) within a width x height area.
func (r *RadialGradient) At(x, y, width, height int) Color {
	if width == 0 || height == 0 {
		return r.Gradient.At(0)
	}

	var nx, ny float32 = 0.5, 0.5
	if width > 1 {
		nx = float32(x) / float32(width-1)
	}
	if height > 1 {
		ny = float32(y) / float32(height-1)
	}

	dx := nx - r.CenterX
	dy := ny - r.CenterY
	distance := float32(math.Sqrt(float64(dx*dx+dy*dy))) / r.Radius

	return r.Gradient.At(distance)
}

// Colors2D samples a full width x height grid, row-major.
func (r *RadialGradient) Colors2D(width, height int) [][]Color {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([][]Color, height)
	for y := 0; y < height; y++ {
		row := make([]Color, width)
		for x := 0; x < width; x++ {
			row[x] = r.At(x, y, width, height)
		}
		out[y] = row
	}
	return out
}

// Rainbow is a ROYGBIV preset gradient.
func Rainbow() *Gradient {
	return GradientFromColors([]Color{
		RGB(255, 0, 0), RGB(255, 127, 0), RGB(255, 255, 0), RGB(0, 255, 0),
		RGB(0, 0, 255), RGB(75, 0, 130), RGB(148, 0, 211),
	})
}

// Sunset is a coral-to-gold preset gradient.
func Sunset() *Gradient {
	return GradientFromColors([]Color{RGB(255, 94, 77), RGB(255, 154, 0), RGB(255, 206, 84)})
}

// Ocean is a deep-blue-to-light-blue preset gradient.
func Ocean() *Gradient {
	return GradientFromColors([]Color{RGB(0, 105, 148), RGB(0, 168, 204), RGB(127, 219, 255)})
}

// Forest is a dark-to-light green preset gradient.
func Forest() *Gradient {
	return GradientFromColors([]Color{RGB(34, 85, 51), RGB(76, 153, 76), RGB(144, 190, 109)})
}

// Fire is a red-orange-yellow preset gradient.
func Fire() *Gradient {
	return GradientFromColors([]Color{RGB(255, 0, 0), RGB(255, 154, 0), RGB(255, 255, 0)})
}

// Ice is a light-to-dark blue preset gradient.
func Ice() *Gradient {
	return GradientFromColors([]Color{RGB(200, 230, 255), RGB(150, 200, 255), RGB(100, 150, 255)})
}

// PurpleHaze is a purple-magenta-pink preset gradient.
func PurpleHaze() *Gradient {
	return GradientFromColors([]Color{RGB(106, 13, 173), RGB(189, 59, 188), RGB(255, 102, 196)})
}

// Grayscale is a black-to-white preset gradient.
func Grayscale() *Gradient {
	return LinearGradient(ColorBlack, ColorWhite)
}

// HeatMap is a cold-to-hot preset gradient for data visualization.
func HeatMap() *Gradient {
	return GradientFromColors([]Color{
		RGB(0, 0, 139), RGB(0, 255, 255), RGB(0, 255, 0), RGB(255, 255, 0), RGB(255, 0, 0),
	})
}

// Viridis is a colourblind-friendly preset gradient.
func Viridis() *Gradient {
	return GradientFromColors([]Color{
		RGB(68, 1, 84), RGB(59, 82, 139), RGB(33, 145, 140), RGB(94, 201, 98), RGB(253, 231, 37),
	})
}

// Plasma is a dark-blue-to-yellow preset gradient.
func Plasma() *Gradient {
	return GradientFromColors([]Color{
		RGB(13, 8, 135), RGB(126, 3, 168), RGB(204, 71, 120), RGB(248, 149, 64), RGB(240, 249, 33),
	})
}

// Matrix is a terminal-green preset gradient.
func Matrix() *Gradient {
	return GradientFromColors([]Color{RGB(0, 50, 0), RGB(0, 150, 0), RGB(0, 255, 0)})
}
