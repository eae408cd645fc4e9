package vellum

// DomId is an opaque handle for a node. Stable for the life of the node;
// never reused while that node is alive.
type DomId uint64

// WidgetMeta is the selector-visible identity of a node: its widget type
// name, optional element id, and class set.
type WidgetMeta struct {
	WidgetType string
	ElementID  string
	Classes    map[string]struct{}
}

// HasClass reports whether m carries the given class.
func (m WidgetMeta) HasClass(class string) bool {
	if m.Classes == nil {
		return false
	}
	_, ok := m.Classes[class]
	return ok
}

// InteractionState is the boolean/ordinal state the selector engine's
// pseudo-classes read.
type InteractionState struct {
	Hovered, Focused, Disabled, Checked, Selected bool
	IndexInParent, SiblingCount                   int
}

// DomNode is one node of the retained DOM tree.
type DomNode struct {
	ID            DomId
	Meta          WidgetMeta
	State         InteractionState
	Parent        *DomId
	Children      []DomId
	InlineStyle   *Style
	ResolvedStyle Style
}

// Dom is an arena of DomNode records keyed by DomId. It owns the parent and
// child links and guarantees the invariant that if p.Children contains c
// then nodes[c].Parent == &p.ID.
type Dom struct {
	nodes  map[DomId]*DomNode
	nextID DomId
}

// NewDom creates an empty arena.
func NewDom() *Dom {
	return &Dom{nodes: make(map[DomId]*DomNode)}
}

// NewID allocates a fresh, never-before-used DomId.
func (d *Dom) NewID() DomId {
	d.nextID++
	return d.nextID
}

// Get returns the node for id, or nil if it does not exist. This is the
// `get_node` closure spec.md's selector/cascade contracts pass around,
// collapsed to an arena method per the Design Notes' arena recommendation.
func (d *Dom) Get(id DomId) *DomNode {
	return d.nodes[id]
}

// CreateNode inserts a new, parentless node with the given meta and returns
// its id. Use AddChild to attach it to the tree.
func (d *Dom) CreateNode(meta WidgetMeta) DomId {
	id := d.NewID()
	d.nodes[id] = &DomNode{ID: id, Meta: meta, ResolvedStyle: DefaultStyle()}
	return id
}

// AddChild appends child to parent's children and sets child's parent link,
// renumbering sibling ordinals on the parent. Returns an error if either id
// is unknown, or if child already has a parent.
func (d *Dom) AddChild(parent, child DomId) error {
	p := d.nodes[parent]
	c := d.nodes[child]
	if p == nil || c == nil {
		return &DomError{Op: "AddChild", ID: parent, Kind: ErrNodeNotFound}
	}
	if c.Parent != nil {
		return &DomError{Op: "AddChild", ID: child, Kind: ErrAlreadyAttached}
	}
	p.Children = append(p.Children, child)
	pid := parent
	c.Parent = &pid
	d.renumberSiblings(p)
	return nil
}

// RemoveNode detaches id from its parent (if any) and deletes it and its
// entire subtree from the arena.
func (d *Dom) RemoveNode(id DomId) error {
	n := d.nodes[id]
	if n == nil {
		return &DomError{Op: "RemoveNode", ID: id, Kind: ErrNodeNotFound}
	}
	if n.Parent != nil {
		if p := d.nodes[*n.Parent]; p != nil {
			for i, c := range p.Children {
				if c == id {
					p.Children = append(p.Children[:i], p.Children[i+1:]...)
					break
				}
			}
			d.renumberSiblings(p)
		}
	}
	d.removeSubtree(id)
	return nil
}

func (d *Dom) removeSubtree(id DomId) {
	n := d.nodes[id]
	if n == nil {
		return
	}
	for _, c := range n.Children {
		d.removeSubtree(c)
	}
	delete(d.nodes, id)
}

func (d *Dom) renumberSiblings(p *DomNode) {
	for i, c := range p.Children {
		if cn := d.nodes[c]; cn != nil {
			cn.State.IndexInParent = i
			cn.State.SiblingCount = len(p.Children)
		}
	}
}

// SetInlineStyle assigns (or clears, with nil) the inline style override on
// a node.
func (d *Dom) SetInlineStyle(id DomId, s *Style) error {
	n := d.nodes[id]
	if n == nil {
		return &DomError{Op: "SetInlineStyle", ID: id, Kind: ErrNodeNotFound}
	}
	n.InlineStyle = s
	return nil
}

// Ancestors returns id's ancestors, nearest-first.
func (d *Dom) Ancestors(id DomId) []DomId {
	var out []DomId
	n := d.nodes[id]
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		out = append(out, *n.Parent)
		n = d.nodes[*n.Parent]
		if n == nil {
			break
		}
	}
	return out
}

// PrecedingSibling returns the DomId of the node immediately before id in
// its parent's child list, and true, or false if there is none.
func (d *Dom) PrecedingSibling(id DomId) (DomId, bool) {
	n := d.nodes[id]
	if n == nil || n.Parent == nil {
		return 0, false
	}
	p := d.nodes[*n.Parent]
	if p == nil {
		return 0, false
	}
	idx := n.State.IndexInParent
	if idx <= 0 || idx > len(p.Children) {
		return 0, false
	}
	return p.Children[idx-1], true
}
