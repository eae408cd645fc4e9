package vellum

import (
	"testing"
	"time"
)

// S6: a scalar transition interpolates linearly by default and reaches
// exactly its target value once elapsed time meets the duration.
func TestTransitionScalarInterpolatesAndCompletes(t *testing.T) {
	mgr := NewTransitionManager(false)
	const elem = DomId(1)

	spec := TransitionSpec{Property: "flex-grow", Duration: 100 * time.Millisecond, Easing: EasingLinear}
	if !mgr.Start(elem, "flex-grow", 0, 10, spec) {
		t.Fatal("expected Start to queue a transition")
	}

	mgr.Update(50 * time.Millisecond)
	active := mgr.Active(elem)
	if len(active) != 1 {
		t.Fatalf("len(active) = %d, want 1", len(active))
	}
	if v := active[0].Value(); v < 4.9 || v > 5.1 {
		t.Fatalf("value at 50%% = %v, want ~5", v)
	}

	mgr.Update(50 * time.Millisecond)
	if v := active[0].Value(); v != 10 {
		t.Fatalf("value at completion = %v, want 10", v)
	}
	// The Update that completes a transition also prunes it.
	mgr.Update(0)
	if mgr.HasActive() {
		t.Fatal("expected the completed transition to be pruned")
	}
}

// S6: a colour transition blends toward the target colour without
// overshooting past it.
func TestTransitionColorReachesTarget(t *testing.T) {
	mgr := NewTransitionManager(false)
	const elem = DomId(1)
	from := RGB(0, 0, 0)
	to := RGB(255, 255, 255)

	mgr.StartColor(elem, "background", from, to, TransitionSpec{Duration: 10 * time.Millisecond})
	// Hold the transition before the completing Update, which removes it
	// from the active set.
	active := mgr.Active(elem)
	if len(active) != 1 {
		t.Fatalf("len(active) = %d, want 1", len(active))
	}
	mgr.Update(10 * time.Millisecond)

	got := active[0].ColorValue()
	if got != to {
		t.Fatalf("color at completion = %+v, want %+v", got, to)
	}
}

// S8: reduced motion skips queuing entirely — the caller is expected to
// apply the target value immediately instead.
func TestTransitionReducedMotionSkipsQueueing(t *testing.T) {
	mgr := NewTransitionManager(true)
	const elem = DomId(1)

	if mgr.Start(elem, "flex-grow", 0, 10, TransitionSpec{Duration: 100 * time.Millisecond}) {
		t.Fatal("expected Start to no-op under reduced motion")
	}
	if mgr.HasActive() {
		t.Fatal("expected no active transitions under reduced motion")
	}
}

func TestTransitionRestartingReplacesExisting(t *testing.T) {
	mgr := NewTransitionManager(false)
	const elem = DomId(1)

	mgr.Start(elem, "flex-grow", 0, 10, TransitionSpec{Duration: 100 * time.Millisecond})
	mgr.Start(elem, "flex-grow", 0, 20, TransitionSpec{Duration: 100 * time.Millisecond})

	active := mgr.Active(elem)
	if len(active) != 1 {
		t.Fatalf("len(active) = %d, want 1 (restart should replace, not stack)", len(active))
	}
	if active[0].To != 20 {
		t.Fatalf("To = %v, want 20", active[0].To)
	}
}
