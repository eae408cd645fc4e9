package vellum

import (
	"strings"
	"testing"
	"time"
)

func TestRuntimeFrameRendersViewIntoOutput(t *testing.T) {
	var out strings.Builder
	rt := NewRuntime(10, 3, &out, false)

	update := func(rt *Runtime, elapsed time.Duration) DomId {
		root := rt.Dom.CreateNode(WidgetMeta{WidgetType: "box"})
		style := DefaultStyle()
		style.Sizing.Width = Cells(10)
		style.Sizing.Height = Cells(3)
		style.Visual.Background = RGB(1, 2, 3)
		rt.Dom.SetInlineStyle(root, &style)
		rt.Layout.Clear()
		rt.Layout.CreateNode(root, style)
		rt.SetView(root, ViewFunc(FillBackground))
		return root
	}

	if err := rt.Frame(update, 16*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if out.Len() == 0 {
		t.Fatal("expected escape sequences written for the first frame")
	}
}

func TestRuntimeFrameSkipsInvisibleNodes(t *testing.T) {
	var out strings.Builder
	rt := NewRuntime(5, 5, &out, false)

	rendered := false
	update := func(rt *Runtime, elapsed time.Duration) DomId {
		root := rt.Dom.CreateNode(WidgetMeta{WidgetType: "box"})
		style := DefaultStyle()
		hidden := false
		style.Visual.Visible = &hidden
		style.Sizing.Width = Cells(5)
		style.Sizing.Height = Cells(5)
		rt.Dom.SetInlineStyle(root, &style)
		rt.Layout.Clear()
		rt.Layout.CreateNode(root, style)
		rt.SetView(root, ViewFunc(func(ctx RenderContext) { rendered = true }))
		return root
	}

	if err := rt.Frame(update, 0); err != nil {
		t.Fatal(err)
	}
	if rendered {
		t.Fatal("expected invisible node's view not to be called")
	}
}

func TestRuntimeResizeUpdatesSize(t *testing.T) {
	var out strings.Builder
	rt := NewRuntime(4, 4, &out, false)
	rt.Resize(8, 8)
	w, h := rt.Size()
	if w != 8 || h != 8 {
		t.Fatalf("size = %dx%d, want 8x8", w, h)
	}
}
