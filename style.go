package vellum

import "time"

// Display is the box generation mode for a node.
type Display uint8

const (
	DisplayUnset Display = iota
	DisplayBlock
	DisplayFlex
	DisplayGrid
	DisplayNone
)

// Position is the positioning scheme for a node.
type Position uint8

const (
	PositionUnset Position = iota
	PositionStatic
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

const (
	FlexDirectionUnset FlexDirection = iota
	FlexDirectionRow
	FlexDirectionColumn
)

// Justify controls main-axis alignment.
type Justify uint8

const (
	JustifyUnset Justify = iota
	JustifyStart
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align controls cross-axis alignment.
type Align uint8

const (
	AlignUnset Align = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignStretch
)

// BorderStyle names a box-drawing border variant.
type BorderStyle uint8

const (
	BorderStyleUnset BorderStyle = iota
	BorderStyleNone
	BorderStyleSolid
	BorderStyleDashed
	BorderStyleDouble
	BorderStyleThick
	BorderStyleRounded
)

// SizeKind discriminates a Size's resolution mode.
type SizeKind uint8

const (
	SizeAuto SizeKind = iota
	SizeFixed
	SizePercent
)

// Size is a sizing value: Auto, a fixed cell count, or a percentage of the
// parent's content box.
type Size struct {
	Kind    SizeKind
	Fixed   int32
	Percent float32
}

// Auto is the zero-value "no constraint" size.
func Auto() Size { return Size{Kind: SizeAuto} }

// Cells builds a fixed-cell-count Size.
func Cells(n int32) Size { return Size{Kind: SizeFixed, Fixed: n} }

// Pct builds a percentage Size (p in [0,100]).
func Pct(p float32) Size { return Size{Kind: SizePercent, Percent: p} }

// IsAuto reports whether the size is unconstrained.
func (s Size) IsAuto() bool { return s.Kind == SizeAuto }

// Resolve turns the size into a concrete cell count given the parent's
// content-box dimension along the same axis. Auto resolves to fallback.
func (s Size) Resolve(parent int32, fallback int32) int32 {
	switch s.Kind {
	case SizeFixed:
		return s.Fixed
	case SizePercent:
		return int32(float32(parent) * s.Percent / 100)
	default:
		return fallback
	}
}

// Edges is a four-sided box-edge measurement (padding, margin).
type Edges struct {
	Top, Right, Bottom, Left uint16
}

// EdgesAll builds a uniform Edges.
func EdgesAll(v uint16) Edges { return Edges{v, v, v, v} }

func (e Edges) isZero() bool { return e == Edges{} }

// Easing names a transition timing function.
type Easing uint8

const (
	EasingLinear Easing = iota
	EasingEaseIn
	EasingEaseOut
	EasingEaseInOut
	EasingCubicBezier
)

// TransitionSpec is a single `property duration delay easing` entry parsed
// from a `transition:` declaration.
type TransitionSpec struct {
	Property string
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	// Bezier control points, only meaningful when Easing == EasingCubicBezier.
	X1, Y1, X2, Y2 float32
}

// ApplyEasing evaluates the easing function at progress t (clamped to [0,1]).
func (e TransitionSpec) ApplyEasing(t float32) float32 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	switch e.Easing {
	case EasingEaseIn:
		return t * t
	case EasingEaseOut:
		return t * (2 - t)
	case EasingEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EasingCubicBezier:
		return cubicBezierY(t, e.Y1, e.Y2)
	default:
		return t
	}
}

// cubicBezierY approximates the y-component of a cubic bezier curve with
// endpoints (0,0) and (1,1) at parameter t, via its Bernstein form.
func cubicBezierY(t, y1, y2 float32) float32 {
	mt := 1 - t
	y := 3*mt*mt*t*y1 + 3*mt*t*t*y2 + t*t*t
	if y < 0 {
		y = 0
	}
	if y > 1 {
		y = 1
	}
	return y
}

// LayoutStyle holds the layout-affecting subset of a resolved Style.
type LayoutStyle struct {
	Display        Display
	Position       Position
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignItems     Align
	FlexGrow       float32
	Gap            uint16
	RowGap         *uint16
	ColumnGap      *uint16
	GridTemplateRows    []GridTrack
	GridTemplateColumns []GridTrack
	GridRow    GridPlacement
	GridColumn GridPlacement
}

// GridTrackKind discriminates a grid track's sizing function.
type GridTrackKind uint8

const (
	GridTrackFixed GridTrackKind = iota
	GridTrackAuto
	GridTrackMinContent
	GridTrackMaxContent
	GridTrackFraction
)

// GridTrack is one entry of a grid-template-rows/columns track list.
type GridTrack struct {
	Kind  GridTrackKind
	Fixed int32
	Frac  float32
}

// GridPlacement is a 1-based start/span placement for grid-row/grid-column.
// Zero Start means "auto-place".
type GridPlacement struct {
	Start int32
	End   int32 // 0 means unspecified; negative encodes `span N` as -N.
}

func (g GridPlacement) isZero() bool { return g == GridPlacement{} }

// SizingStyle holds width/height constraints.
type SizingStyle struct {
	Width, MinWidth, MaxWidth    Size
	Height, MinHeight, MaxHeight Size
}

// SpacingStyle holds padding/margin/offset.
type SpacingStyle struct {
	Padding, Margin    Edges
	Top, Right, Bottom, Left *int16
}

// VisualStyle holds paint-affecting properties.
type VisualStyle struct {
	Color, Background, BorderColor Color
	Opacity     float32
	Visible     *bool
	BorderStyle BorderStyle
	ZIndex      int32
}

// Style is the fully composite, resolvable style of a DOM node.
type Style struct {
	Layout      LayoutStyle
	Sizing      SizingStyle
	Spacing     SpacingStyle
	Visual      VisualStyle
	Transitions []TransitionSpec
}

// DefaultStyle is the style every node starts from before cascade/inline
// overrides are merged in.
func DefaultStyle() Style {
	return Style{
		Visual: VisualStyle{Opacity: 1},
	}
}
