package vellum

import "testing"

// S1: a more specific selector wins regardless of source order.
func TestCascadeSpecificityMoreSpecificWins(t *testing.T) {
	dom := NewDom()
	id := dom.CreateNode(WidgetMeta{WidgetType: "box", ElementID: "panel", Classes: map[string]struct{}{"card": {}}})

	sheet, errs := ParseSheet(`
		.card { color: #111111; }
		#panel { color: #ff0000; }
	`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	style := ComputeStyle(dom, sheet, id)
	if style.Visual.Color != (Color{R: 0xff, G: 0, B: 0, A: 0xff}) {
		t.Fatalf("color = %+v, want id selector's red", style.Visual.Color)
	}
}

// S1: among equal-specificity rules, the later source-order rule wins.
func TestCascadeSourceOrderBreaksTies(t *testing.T) {
	dom := NewDom()
	id := dom.CreateNode(WidgetMeta{WidgetType: "box", Classes: map[string]struct{}{"card": {}}})

	sheet, errs := ParseSheet(`
		.card { color: #111111; }
		.card { color: #222222; }
	`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	style := ComputeStyle(dom, sheet, id)
	want, _ := Hex("#222222")
	if style.Visual.Color != want {
		t.Fatalf("color = %+v, want %+v", style.Visual.Color, want)
	}
}

// S2: color/opacity/visible inherit down the tree when the child leaves
// them unset; non-inherited properties like background do not.
func TestCascadeInheritanceOnlyInheritedPropertiesCopyDown(t *testing.T) {
	dom := NewDom()
	parent := dom.CreateNode(WidgetMeta{WidgetType: "box", ElementID: "outer"})
	child := dom.CreateNode(WidgetMeta{WidgetType: "box"})
	dom.AddChild(parent, child)

	sheet, errs := ParseSheet(`#outer { color: #00ff00; background: #0000ff; }`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	ResolveTree(dom, sheet, parent)

	parentStyle := dom.Get(parent).ResolvedStyle
	childStyle := dom.Get(child).ResolvedStyle

	if parentStyle.Visual.Color.IsZero() || parentStyle.Visual.Color != childStyle.Visual.Color {
		t.Fatalf("color did not inherit: parent %+v child %+v", parentStyle.Visual.Color, childStyle.Visual.Color)
	}
	if !childStyle.Visual.Background.IsZero() {
		t.Fatalf("background inherited from parent: child %+v", childStyle.Visual.Background)
	}
}

// S3: a :hover rule only applies while InteractionState.Hovered is set.
func TestCascadePseudoClassGatesOnInteractionState(t *testing.T) {
	dom := NewDom()
	id := dom.CreateNode(WidgetMeta{WidgetType: "box", ElementID: "btn"})

	sheet, errs := ParseSheet(`#btn:hover { background: #ff00ff; }`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	unhovered := ComputeStyle(dom, sheet, id)
	if !unhovered.Visual.Background.IsZero() {
		t.Fatalf("expected no background while not hovered, got %+v", unhovered.Visual.Background)
	}

	dom.Get(id).State.Hovered = true
	hovered := ComputeStyle(dom, sheet, id)
	want, _ := Hex("#ff00ff")
	if hovered.Visual.Background != want {
		t.Fatalf("background while hovered = %+v, want %+v", hovered.Visual.Background, want)
	}
}

// S4: a descendant combinator matches any depth, not just a direct child.
func TestCascadeDescendantCombinatorMatchesAnyDepth(t *testing.T) {
	dom := NewDom()
	root := dom.CreateNode(WidgetMeta{WidgetType: "box", ElementID: "panel"})
	mid := dom.CreateNode(WidgetMeta{WidgetType: "box"})
	leaf := dom.CreateNode(WidgetMeta{WidgetType: "box", Classes: map[string]struct{}{"label": {}}})
	dom.AddChild(root, mid)
	dom.AddChild(mid, leaf)

	sheet, errs := ParseSheet(`#panel .label { color: #abcdef; }`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	style := ComputeStyle(dom, sheet, leaf)
	want, _ := Hex("#abcdef")
	if style.Visual.Color != want {
		t.Fatalf("color = %+v, want %+v (descendant combinator should match through the intermediate node)", style.Visual.Color, want)
	}

	// A sibling without the ancestor's id in its chain must not match.
	detached := dom.CreateNode(WidgetMeta{WidgetType: "box", Classes: map[string]struct{}{"label": {}}})
	detachedStyle := ComputeStyle(dom, sheet, detached)
	if !detachedStyle.Visual.Color.IsZero() {
		t.Fatalf("expected unrelated .label node to be unaffected, got %+v", detachedStyle.Visual.Color)
	}
}

func TestCascadeInlineStyleOverridesSheet(t *testing.T) {
	dom := NewDom()
	id := dom.CreateNode(WidgetMeta{WidgetType: "box", ElementID: "panel"})
	sheet, _ := ParseSheet(`#panel { color: #111111; }`)

	inline := DefaultStyle()
	inline.Visual.Color = RGB(9, 9, 9)
	dom.SetInlineStyle(id, &inline)

	style := ComputeStyle(dom, sheet, id)
	if style.Visual.Color != RGB(9, 9, 9) {
		t.Fatalf("color = %+v, want inline override", style.Visual.Color)
	}
}
