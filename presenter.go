package vellum

import (
	"io"
	"strings"
)

// colorState tracks an optional colour: set tells us whether the
// previous emitted SGR set a colour at all, distinct from Color's own
// zero-is-unset convention (a cell can legitimately want "no colour",
// which differs from "colour not yet decided").
type colorState struct {
	color Color
	set   bool
}

// RenderState is the presenter's running picture of what the terminal
// currently displays, so it only emits the escape sequences a frame
// actually needs.
type RenderState struct {
	cursor      *[2]int
	fg, bg      colorState
	modifier    Modifier
	hyperlinkID uint16
}

// Present writes the minimal escape-sequence stream that turns the
// terminal's prior picture into buf, given changes (as produced by
// DiffBuffers), to w. state is mutated in place so the next frame can
// continue from where this one left off; pass a fresh &RenderState{} on
// the first frame.
func Present(w io.Writer, buf *Buffer, changes []CellChange, state *RenderState) error {
	var sb strings.Builder
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		drawCellStateful(&sb, buf, ch.X, ch.Y, ch.Cell, state)
	}
	if state.hyperlinkID != 0 {
		sb.WriteString(HyperlinkEnd())
		state.hyperlinkID = 0
	}
	if state.fg.set || state.bg.set || state.modifier != 0 {
		sb.WriteString(sgrReset)
		state.fg = colorState{}
		state.bg = colorState{}
		state.modifier = 0
	}
	if sb.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func drawCellStateful(sb *strings.Builder, buf *Buffer, x, y int, cell Cell, state *RenderState) {
	if state.cursor == nil || state.cursor[0] != x || state.cursor[1] != y {
		sb.WriteString(MoveCursor(x, y))
	}

	if cell.SequenceID != 0 {
		if state.hyperlinkID != 0 {
			sb.WriteString(HyperlinkEnd())
			state.hyperlinkID = 0
		}
		if state.fg.set || state.bg.set || state.modifier != 0 {
			sb.WriteString(sgrReset)
			state.fg = colorState{}
			state.bg = colorState{}
			state.modifier = 0
		}
		if seq, ok := buf.Sequence(cell.SequenceID); ok {
			sb.WriteString(seq)
		}
		state.cursor = nil // raw sequences may move the cursor unpredictably
		return
	}

	if cell.HyperlinkID != state.hyperlinkID {
		if state.hyperlinkID != 0 {
			sb.WriteString(HyperlinkEnd())
		}
		if cell.HyperlinkID != 0 {
			if url, ok := buf.Hyperlink(cell.HyperlinkID); ok {
				sb.WriteString(HyperlinkStart(url))
			}
		}
		state.hyperlinkID = cell.HyperlinkID
	}

	if cell.Fg != state.fg.color || !state.fg.set {
		if !cell.Fg.IsZero() {
			sb.WriteString(FgSGR(cell.Fg))
		} else if state.fg.set {
			sb.WriteString(CSI + "39m")
		}
		state.fg = colorState{color: cell.Fg, set: !cell.Fg.IsZero()}
	}
	if cell.Bg != state.bg.color || !state.bg.set {
		if !cell.Bg.IsZero() {
			sb.WriteString(BgSGR(cell.Bg))
		} else if state.bg.set {
			sb.WriteString(CSI + "49m")
		}
		state.bg = colorState{color: cell.Bg, set: !cell.Bg.IsZero()}
	}

	if cell.Modifier != state.modifier {
		if state.modifier != 0 {
			// Some attributes (e.g. bold) cannot be turned off individually
			// on every terminal; reset wholesale and re-apply colours.
			sb.WriteString(sgrReset)
			if !cell.Fg.IsZero() {
				sb.WriteString(FgSGR(cell.Fg))
			}
			if !cell.Bg.IsZero() {
				sb.WriteString(BgSGR(cell.Bg))
			}
		}
		sb.WriteString(ModifierSGR(cell.Modifier))
		state.modifier = cell.Modifier
	}

	sb.WriteRune(cell.Symbol)

	width := RuneWidth(cell.Symbol)
	if width < 1 {
		width = 1
	}
	state.cursor = &[2]int{x + width, y}
}
