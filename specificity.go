package vellum

// Specificity is the total order a compiled selector's match strength is
// compared by. The corpus's own cascade test suite pins the comparison
// order as important, then inline, then ids, then classes/attrs/pseudos,
// then types, then source order — important outranks an inline style, not
// the other way around, which is easy to get backwards from the property
// list alone.
type Specificity struct {
	Important bool
	Inline    bool
	IDs       int32
	Classes   int32
	Types     int32
	Order     int32
}

// InlineSpecificity is the fixed specificity assigned to a node's inline
// style when it participates in the merge ordering.
func InlineSpecificity(order int32) Specificity {
	return Specificity{Inline: true, Order: order}
}

// Less implements the total order: Important, then Inline, then IDs, then
// Classes, then Types, then Order, each compared high-wins except Order
// which is a plain ascending tie-break.
func (a Specificity) Less(b Specificity) bool {
	if a.Important != b.Important {
		return !a.Important && b.Important
	}
	if a.Inline != b.Inline {
		return !a.Inline && b.Inline
	}
	if a.IDs != b.IDs {
		return a.IDs < b.IDs
	}
	if a.Classes != b.Classes {
		return a.Classes < b.Classes
	}
	if a.Types != b.Types {
		return a.Types < b.Types
	}
	return a.Order < b.Order
}

// Add returns the component-wise sum of two specificities, the rule a
// selector chain uses to combine its compound selectors' specificities.
// Important/Inline/Order are not summed; they are per-rule flags/position
// set once by the caller.
func (a Specificity) Add(b Specificity) Specificity {
	return Specificity{
		Important: a.Important || b.Important,
		Inline:    a.Inline || b.Inline,
		IDs:       a.IDs + b.IDs,
		Classes:   a.Classes + b.Classes,
		Types:     a.Types + b.Types,
		Order:     a.Order,
	}
}
