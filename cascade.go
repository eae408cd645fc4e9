package vellum

import "sort"

// match pairs a stylesheet rule with the specificity it earns against one
// particular node.
type match struct {
	rule        *Rule
	specificity Specificity
}

// ComputeStyle resolves a node's style from the stylesheet and its own
// inline style, with no inheritance applied. Equivalent to
// ComputeStyleWithParent(dom, sheet, id, nil).
func ComputeStyle(dom *Dom, sheet *StyleSheet, id DomId) Style {
	return ComputeStyleWithParent(dom, sheet, id, nil)
}

// ComputeStyleWithParent resolves a node's style the way the cascade
// resolver does: collect every matching rule, sort by specificity
// (ascending, ties broken by source order), merge into a default Style
// with "zero means unset" overlay semantics, merge the inline style last,
// then copy down the inherited properties from parentStyle when supplied.
func ComputeStyleWithParent(dom *Dom, sheet *StyleSheet, id DomId, parentStyle *Style) Style {
	node := dom.Get(id)
	if node == nil {
		return DefaultStyle()
	}

	var matches []match
	if sheet != nil {
		for i := range sheet.Rules {
			r := &sheet.Rules[i]
			if r.Selector.Match(dom, id) {
				matches = append(matches, match{rule: r, specificity: r.Selector.Specificity()})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})

	out := DefaultStyle()
	for _, m := range matches {
		overlay := DefaultStyle()
		for _, d := range m.rule.Declarations {
			sheet.ApplyDeclaration(&overlay, d)
		}
		out = out.Merge(overlay)
	}

	if node.InlineStyle != nil {
		out = out.Merge(*node.InlineStyle)
	}

	if parentStyle != nil {
		out = inheritedFrom(out, *parentStyle)
	}

	return out
}

// ResolveTree walks the arena from root in pre-order, computing and
// storing ResolvedStyle on every node, threading parent styles down for
// inheritance. Matches the frame ordering contract: cascade visits parents
// before children.
func ResolveTree(dom *Dom, sheet *StyleSheet, root DomId) {
	resolveRec(dom, sheet, root, nil)
}

func resolveRec(dom *Dom, sheet *StyleSheet, id DomId, parentStyle *Style) {
	node := dom.Get(id)
	if node == nil {
		return
	}
	style := ComputeStyleWithParent(dom, sheet, id, parentStyle)
	node.ResolvedStyle = style
	for _, c := range node.Children {
		resolveRec(dom, sheet, c, &style)
	}
}
