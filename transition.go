package vellum

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// activeTransition is one in-flight interpolation of a single style
// property on a single element.
type activeTransition struct {
	Property string
	From, To float32
	// FromColor/ToColor are populated instead of From/To when Property names
	// a colour-valued field ("color", "background", "border-color");
	// colour interpolation goes through CIE-Lab space for perceptually
	// even blending rather than lerping raw RGB channels.
	FromColor, ToColor Color
	IsColor            bool

	Duration, Delay time.Duration
	Easing          TransitionSpec
	Elapsed         time.Duration
	Started         bool
}

func (a *activeTransition) progress() float32 {
	if a.Duration <= 0 {
		return 1
	}
	p := float32(a.Elapsed) / float32(a.Duration)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return a.Easing.ApplyEasing(p)
}

// Value returns the interpolated scalar at the transition's current
// progress.
func (a *activeTransition) Value() float32 {
	p := a.progress()
	return a.From + (a.To-a.From)*p
}

// ColorValue returns the interpolated colour at the transition's current
// progress, blended in CIE-Lab space.
func (a *activeTransition) ColorValue() Color {
	p := a.progress()
	from := colorful.Color{R: float64(a.FromColor.R) / 255, G: float64(a.FromColor.G) / 255, B: float64(a.FromColor.B) / 255}
	to := colorful.Color{R: float64(a.ToColor.R) / 255, G: float64(a.ToColor.G) / 255, B: float64(a.ToColor.B) / 255}
	blended := from.BlendLab(to, float64(p)).Clamped()
	r, g, b := blended.RGB255()
	alpha := a.FromColor.A
	if p >= 1 {
		alpha = a.ToColor.A
	}
	return Color{R: r, G: g, B: b, A: alpha}
}

func (a *activeTransition) done() bool {
	return a.Started && a.Elapsed >= a.Duration
}

func (a *activeTransition) tick(delta time.Duration) {
	a.Elapsed += delta
	if !a.Started && a.Elapsed >= a.Delay {
		a.Started = true
		a.Elapsed -= a.Delay
	}
}

// TransitionManager tracks every in-flight property transition, indexed
// both as a flat list and per element, so a partial redraw can query just
// the elements with live animations.
type TransitionManager struct {
	all               []*activeTransition
	byElement         map[DomId][]*activeTransition
	elementOf         map[*activeTransition]DomId
	reducedMotion     bool
}

// NewTransitionManager creates an empty manager. reducedMotion mirrors the
// host's accessibility preference: when true, Start never queues a
// transition and the caller should apply the final value immediately.
func NewTransitionManager(reducedMotion bool) *TransitionManager {
	return &TransitionManager{
		byElement: make(map[DomId][]*activeTransition),
		elementOf: make(map[*activeTransition]DomId),
		reducedMotion: reducedMotion,
	}
}

// SetReducedMotion updates the accessibility preference the manager honours.
func (m *TransitionManager) SetReducedMotion(v bool) { m.reducedMotion = v }

// ReducedMotion reports the current accessibility preference.
func (m *TransitionManager) ReducedMotion() bool { return m.reducedMotion }

// Start queues a scalar transition for element/property, replacing any
// existing transition for that pair. Returns false (no-op) when reduced
// motion is in effect — the caller must apply `to` immediately instead.
func (m *TransitionManager) Start(element DomId, property string, from, to float32, spec TransitionSpec) bool {
	if m.reducedMotion {
		return false
	}
	m.remove(element, property)
	t := &activeTransition{
		Property: property,
		From:     from,
		To:       to,
		Duration: spec.Duration,
		Delay:    spec.Delay,
		Easing:   spec,
	}
	m.add(element, t)
	return true
}

// StartColor queues a colour transition, interpolated in Lab space.
func (m *TransitionManager) StartColor(element DomId, property string, from, to Color, spec TransitionSpec) bool {
	if m.reducedMotion {
		return false
	}
	m.remove(element, property)
	t := &activeTransition{
		Property:  property,
		FromColor: from,
		ToColor:   to,
		IsColor:   true,
		Duration:  spec.Duration,
		Delay:     spec.Delay,
		Easing:    spec,
	}
	m.add(element, t)
	return true
}

func (m *TransitionManager) add(element DomId, t *activeTransition) {
	m.all = append(m.all, t)
	m.byElement[element] = append(m.byElement[element], t)
	m.elementOf[t] = element
}

func (m *TransitionManager) remove(element DomId, property string) {
	list := m.byElement[element]
	kept := list[:0]
	for _, t := range list {
		if t.Property == property {
			delete(m.elementOf, t)
			continue
		}
		kept = append(kept, t)
	}
	m.byElement[element] = kept
	m.pruneAll()
}

func (m *TransitionManager) pruneAll() {
	kept := m.all[:0]
	for _, t := range m.all {
		if _, ok := m.elementOf[t]; ok {
			kept = append(kept, t)
		}
	}
	m.all = kept
}

// Update advances every active transition by delta, removing any that
// have completed and dropping elements whose transition list empties out.
func (m *TransitionManager) Update(delta time.Duration) {
	for _, t := range m.all {
		t.tick(delta)
	}
	for id, list := range m.byElement {
		kept := list[:0]
		for _, t := range list {
			if t.done() {
				delete(m.elementOf, t)
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == 0 {
			delete(m.byElement, id)
		} else {
			m.byElement[id] = kept
		}
	}
	m.pruneAll()
}

// Active returns the in-flight transitions for an element, if any.
func (m *TransitionManager) Active(element DomId) []*activeTransition {
	return m.byElement[element]
}

// HasActive reports whether any element currently has a live transition.
func (m *TransitionManager) HasActive() bool {
	return len(m.all) > 0
}
