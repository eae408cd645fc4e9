package vellum

import (
	"sync"

	"github.com/vellumtui/vellum/signals"
)

// InteractionManager tracks focus and hover across a Dom arena, keeping
// each node's InteractionState in sync and driving key events to the
// focused node.
type InteractionManager struct {
	dom *Dom

	mu              sync.RWMutex
	focused         signals.Accessor[DomId]
	setFocused      signals.Setter[DomId]
	focusOrder      []DomId
	hovered         DomId
	globalKeyHandler func(key string) bool
}

// KeyHandler reacts to a routed keypress and reports whether it consumed
// the key.
type KeyHandler func(id DomId, key string) bool

// NewInteractionManager creates a manager bound to dom. 0 is reserved as
// the "nothing focused" sentinel DomId.
func NewInteractionManager(dom *Dom) *InteractionManager {
	focused, setFocused := signals.CreateSignal[DomId](0)
	return &InteractionManager{dom: dom, focused: focused, setFocused: setFocused}
}

// SetFocusOrder replaces the tab-navigation order.
func (m *InteractionManager) SetFocusOrder(ids []DomId) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focusOrder = append([]DomId(nil), ids...)
}

// Focused returns the currently focused node, or 0 if none.
func (m *InteractionManager) Focused() DomId {
	return m.focused()
}

// Focus sets id as focused, clearing any previously focused node's state.
func (m *InteractionManager) Focus(id DomId) {
	prev := m.focused()
	if prev == id {
		return
	}
	signals.BatchVoid(func() {
		if prev != 0 {
			if n := m.dom.Get(prev); n != nil {
				n.State.Focused = false
			}
		}
		if n := m.dom.Get(id); n != nil {
			n.State.Focused = true
		}
		m.setFocused(id)
	})
}

// Blur clears focus if id is currently focused.
func (m *InteractionManager) Blur(id DomId) {
	if m.focused() != id {
		return
	}
	signals.BatchVoid(func() {
		if n := m.dom.Get(id); n != nil {
			n.State.Focused = false
		}
		m.setFocused(0)
	})
}

// SetHovered updates the hover flag on the previously hovered node (if
// any) and on id.
func (m *InteractionManager) SetHovered(id DomId) {
	if m.hovered == id {
		return
	}
	if n := m.dom.Get(m.hovered); n != nil {
		n.State.Hovered = false
	}
	if n := m.dom.Get(id); n != nil {
		n.State.Hovered = true
	}
	m.hovered = id
}

// Next focuses the next node in tab order, wrapping around.
func (m *InteractionManager) Next() {
	m.mu.RLock()
	order := append([]DomId(nil), m.focusOrder...)
	m.mu.RUnlock()
	if len(order) == 0 {
		return
	}
	current := m.focused()
	if current == 0 {
		m.Focus(order[0])
		return
	}
	for i, id := range order {
		if id == current {
			m.Focus(order[(i+1)%len(order)])
			return
		}
	}
	m.Focus(order[0])
}

// Prev focuses the previous node in tab order, wrapping around.
func (m *InteractionManager) Prev() {
	m.mu.RLock()
	order := append([]DomId(nil), m.focusOrder...)
	m.mu.RUnlock()
	if len(order) == 0 {
		return
	}
	current := m.focused()
	if current == 0 {
		m.Focus(order[len(order)-1])
		return
	}
	for i, id := range order {
		if id == current {
			m.Focus(order[(i-1+len(order))%len(order)])
			return
		}
	}
	m.Focus(order[len(order)-1])
}

// SetGlobalKeyHandler installs a fallback handler invoked for keys no
// focused node consumes.
func (m *InteractionManager) SetGlobalKeyHandler(handler func(key string) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.globalKeyHandler = handler
}

// HandleKey routes a keypress: Tab/Shift+Tab move focus, otherwise handle
// is invoked against the focused node, falling back to the global handler.
func (m *InteractionManager) HandleKey(key string, handle KeyHandler) bool {
	if key == Tab {
		m.Next()
		return true
	}
	if key == ShiftTab {
		m.Prev()
		return true
	}
	if current := m.focused(); current != 0 && handle != nil && handle(current, key) {
		return true
	}
	m.mu.RLock()
	h := m.globalKeyHandler
	m.mu.RUnlock()
	if h != nil {
		return h(key)
	}
	return false
}
