package vellum

// Merge combines base and overlay the way the cascade combines two matched
// rules: for every field, overlay wins only when overlay's value is
// non-default. A later rule that never mentions a property, or mentions it
// with its zero value, leaves the earlier value in place. This is the
// "default means unset" contract the cascade relies on to let a later,
// more specific rule set only some of a node's properties (spec.md §9
// Design Notes); it means an explicit zero write in a later rule cannot
// reset a property an earlier rule already set non-zero.
func (base Style) Merge(overlay Style) Style {
	out := base
	out.Layout = base.Layout.merge(overlay.Layout)
	out.Sizing = base.Sizing.merge(overlay.Sizing)
	out.Spacing = base.Spacing.merge(overlay.Spacing)
	out.Visual = base.Visual.merge(overlay.Visual)
	if len(overlay.Transitions) > 0 {
		out.Transitions = overlay.Transitions
	}
	return out
}

func mergeSize(base, overlay Size) Size {
	if overlay.Kind == SizeAuto {
		return base
	}
	return overlay
}

func (base LayoutStyle) merge(o LayoutStyle) LayoutStyle {
	out := base
	if o.Display != DisplayUnset {
		out.Display = o.Display
	}
	if o.Position != PositionUnset {
		out.Position = o.Position
	}
	if o.FlexDirection != FlexDirectionUnset {
		out.FlexDirection = o.FlexDirection
	}
	if o.JustifyContent != JustifyUnset {
		out.JustifyContent = o.JustifyContent
	}
	if o.AlignItems != AlignUnset {
		out.AlignItems = o.AlignItems
	}
	if o.FlexGrow != 0 {
		out.FlexGrow = o.FlexGrow
	}
	if o.Gap != 0 {
		out.Gap = o.Gap
	}
	if o.RowGap != nil {
		out.RowGap = o.RowGap
	}
	if o.ColumnGap != nil {
		out.ColumnGap = o.ColumnGap
	}
	if len(o.GridTemplateRows) > 0 {
		out.GridTemplateRows = o.GridTemplateRows
	}
	if len(o.GridTemplateColumns) > 0 {
		out.GridTemplateColumns = o.GridTemplateColumns
	}
	if !o.GridRow.isZero() {
		out.GridRow = o.GridRow
	}
	if !o.GridColumn.isZero() {
		out.GridColumn = o.GridColumn
	}
	return out
}

func (base SizingStyle) merge(o SizingStyle) SizingStyle {
	return SizingStyle{
		Width:     mergeSize(base.Width, o.Width),
		MinWidth:  mergeSize(base.MinWidth, o.MinWidth),
		MaxWidth:  mergeSize(base.MaxWidth, o.MaxWidth),
		Height:    mergeSize(base.Height, o.Height),
		MinHeight: mergeSize(base.MinHeight, o.MinHeight),
		MaxHeight: mergeSize(base.MaxHeight, o.MaxHeight),
	}
}

func (base SpacingStyle) merge(o SpacingStyle) SpacingStyle {
	out := base
	if !o.Padding.isZero() {
		out.Padding = o.Padding
	}
	if !o.Margin.isZero() {
		out.Margin = o.Margin
	}
	if o.Top != nil {
		out.Top = o.Top
	}
	if o.Right != nil {
		out.Right = o.Right
	}
	if o.Bottom != nil {
		out.Bottom = o.Bottom
	}
	if o.Left != nil {
		out.Left = o.Left
	}
	return out
}

func (base VisualStyle) merge(o VisualStyle) VisualStyle {
	out := base
	if !o.Color.IsZero() {
		out.Color = o.Color
	}
	if !o.Background.IsZero() {
		out.Background = o.Background
	}
	if !o.BorderColor.IsZero() {
		out.BorderColor = o.BorderColor
	}
	if o.Opacity != 0 {
		out.Opacity = o.Opacity
	}
	if o.Visible != nil {
		out.Visible = o.Visible
	}
	if o.BorderStyle != BorderStyleUnset {
		out.BorderStyle = o.BorderStyle
	}
	if o.ZIndex != 0 {
		out.ZIndex = o.ZIndex
	}
	return out
}

// inheritedFrom copies the subset of properties that inherit down the DOM
// tree (color, opacity, visible) from parent onto child, wherever child
// does not already specify its own value. Per spec.md §4.4 step 5 / §8
// property 4: only these three properties inherit.
func inheritedFrom(child, parent Style) Style {
	out := child
	if out.Visual.Color.IsZero() {
		out.Visual.Color = parent.Visual.Color
	}
	if out.Visual.Opacity == 0 {
		out.Visual.Opacity = parent.Visual.Opacity
	}
	if out.Visual.Visible == nil {
		out.Visual.Visible = parent.Visual.Visible
	}
	return out
}
