package vellum

import (
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/vellumtui/vellum/internal/termio"
)

// defaultFrameInterval bounds the frame loop to ~60fps.
const defaultFrameInterval = 16 * time.Millisecond

// UpdateFunc mutates the Dom/LayoutTree/Views for one frame and returns the
// id of the root node to render. elapsed is the wall-clock time since the
// previous frame, fed straight to the transition manager.
type UpdateFunc func(rt *Runtime, elapsed time.Duration) DomId

// Runtime owns every piece of state a frame touches: the retained DOM, its
// stylesheet, the layout arena, the double-buffered cell grid and the
// presenter's running state, the transition manager, and focus/hover
// tracking. One Runtime drives exactly one terminal screen.
type Runtime struct {
	Dom         *Dom
	Stylesheet  *StyleSheet
	Layout      *LayoutTree
	Transitions *TransitionManager
	Interaction *InteractionManager
	Views       map[DomId]View

	mu           sync.Mutex
	front, back  *Buffer
	presentState *RenderState
	width, height int
	output        io.Writer
	root          DomId
}

// NewRuntime creates a runtime sized width x height, writing presented
// frames to output. reducedMotion mirrors the host's accessibility
// preference and is forwarded to the transition manager.
func NewRuntime(width, height int, output io.Writer, reducedMotion bool) *Runtime {
	dom := NewDom()
	return &Runtime{
		Dom:          dom,
		Stylesheet:   newStyleSheet(),
		Layout:       NewLayoutTree(),
		Transitions:  NewTransitionManager(reducedMotion),
		Interaction:  NewInteractionManager(dom),
		Views:        make(map[DomId]View),
		front:        NewBuffer(width, height),
		back:         NewBuffer(width, height),
		presentState: &RenderState{},
		width:        width,
		height:       height,
		output:       output,
	}
}

// SetView associates a widget's render callback with a node. A node with
// no registered View still lays out and cascades normally — it simply
// paints nothing of its own, leaving only its children's output.
func (rt *Runtime) SetView(id DomId, view View) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.Views[id] = view
}

// Size reports the runtime's current width and height in cells.
func (rt *Runtime) Size() (int, int) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.width, rt.height
}

// Resize reallocates the front/back buffers to the new dimensions and
// resets the presenter state, forcing a full redraw on the next frame.
func (rt *Runtime) Resize(width, height int) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.width, rt.height = width, height
	rt.front = NewBuffer(width, height)
	rt.back = NewBuffer(width, height)
	rt.presentState = &RenderState{}
	rt.Layout.Clear()
}

// Root returns the id of the node rendered by the most recent frame.
func (rt *Runtime) Root() DomId {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.root
}

// Frame runs exactly one mutate -> cascade -> layout -> render ->
// transitions.update -> diff -> present -> swap cycle, matching the
// single-threaded, synchronous frame contract: no step here may block
// or suspend mid-frame.
func (rt *Runtime) Frame(update UpdateFunc, elapsed time.Duration) error {
	// update runs before the lock is taken: it calls back into rt
	// (SetView, Size, ...), which lock rt.mu themselves.
	root := update(rt, elapsed)

	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.root = root

	ResolveTree(rt.Dom, rt.Stylesheet, root)

	if err := rt.Layout.Compute(root, uint16(rt.width), uint16(rt.height)); err != nil {
		return err
	}

	rt.back.Clear()
	rt.renderNode(root)

	rt.Transitions.Update(elapsed)

	changes := DiffBuffers(rt.front, rt.back)
	if err := Present(rt.output, rt.back, changes, rt.presentState); err != nil {
		return err
	}
	rt.front, rt.back = rt.back, rt.front
	return nil
}

func (rt *Runtime) renderNode(id DomId) {
	node := rt.Dom.Get(id)
	if node == nil {
		return
	}
	if v := node.ResolvedStyle.Visual.Visible; v != nil && !*v {
		return
	}
	area, ok := rt.Layout.TryLayout(id)
	if !ok {
		return
	}
	if view, ok := rt.Views[id]; ok {
		view.Render(RenderContext{Buffer: rt.back, Area: area, Style: node.ResolvedStyle})
	}
	for _, c := range node.Children {
		rt.renderNode(c)
	}
}

// RunOptions configures Run's terminal lifecycle.
type RunOptions struct {
	Width, Height      int
	Output             io.Writer
	ReducedMotion      bool
	OnMount            func(*Runtime)
	OnUnmount          func()
	OnFrame            func(*Runtime)
	OnError            func(error)
	CaptureConsole     bool
	MaxConsoleMessages int
}

// Run drives a full terminal session: raw mode, SIGWINCH/SIGINT/SIGTERM
// handling, a ticking frame loop calling update, and an optional captured
// console log overlay toggled with Ctrl+L.
func Run(update UpdateFunc, opts RunOptions) {
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		if w, h, err := termio.GetSize(termio.Stdout()); err == nil {
			if width == 0 {
				width = w
			}
			if height == 0 {
				height = h
			}
		}
	}
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	maxMessages := opts.MaxConsoleMessages
	if maxMessages <= 0 {
		maxMessages = 1000
	}

	var logCapture *LogCapture
	if opts.CaptureConsole {
		logCapture = NewLogCapture(maxMessages)
		logCapture.Start()
	}

	output := opts.Output
	if output == nil {
		if logCapture != nil {
			output = logCapture.OriginalStdout()
		} else {
			output = os.Stdout
		}
	}

	var oldState *termio.State
	if termio.IsTerminal(termio.Stdin()) {
		if s, err := termio.MakeRaw(termio.Stdin()); err == nil {
			oldState = s
		}
	}
	defer func() {
		if oldState != nil {
			termio.Restore(termio.Stdin(), oldState)
		}
	}()

	rt := NewRuntime(width, height, output, opts.ReducedMotion)

	showLogs := false
	wrappedUpdate := update
	if logCapture != nil {
		wrappedUpdate = func(rt *Runtime, elapsed time.Duration) DomId {
			root := update(rt, elapsed)
			if showLogs {
				overlayLogPanel(rt, logCapture, root)
			}
			return root
		}
		rt.Interaction.SetGlobalKeyHandler(func(key string) bool {
			switch key {
			case CtrlL:
				showLogs = !showLogs
				return true
			case CtrlK:
				if showLogs {
					logCapture.Clear()
					return true
				}
			}
			return false
		})
	}

	io.WriteString(output, HideCursor())
	defer io.WriteString(output, ShowCursor())
	defer io.WriteString(output, ClearScreen())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGWINCH)

	done := make(chan struct{})
	var closeOnce sync.Once
	stop := func() { closeOnce.Do(func() { close(done) }) }

	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGWINCH:
				if w, h, err := termio.GetSize(termio.Stdout()); err == nil {
					rt.Resize(w, h)
				}
			case syscall.SIGINT, syscall.SIGTERM:
				stop()
				return
			}
		}
	}()

	go func() {
		buf := make([]byte, 64)
		for {
			select {
			case <-done:
				return
			default:
				n, err := os.Stdin.Read(buf)
				if err != nil {
					return
				}
				key := string(buf[:n])
				if key == CtrlC {
					stop()
					return
				}
				rt.Interaction.HandleKey(key, nil)
			}
		}
	}()

	if opts.OnMount != nil {
		opts.OnMount(rt)
	}

	ticker := time.NewTicker(defaultFrameInterval)
	defer ticker.Stop()
	last := time.Now()

loop:
	for {
		select {
		case <-done:
			break loop
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			func() {
				defer func() {
					if r := recover(); r != nil {
						if opts.OnError != nil {
							if err, ok := r.(error); ok {
								opts.OnError(err)
							}
						}
					}
				}()
				if err := rt.Frame(wrappedUpdate, elapsed); err != nil && opts.OnError != nil {
					opts.OnError(err)
				}
			}()
			if opts.OnFrame != nil {
				opts.OnFrame(rt)
			}
		}
	}

	if logCapture != nil {
		logCapture.Stop()
	}
	if opts.OnUnmount != nil {
		opts.OnUnmount()
	}
}

// overlayLogPanel paints the captured console messages as a bottom panel
// directly into the back buffer, bypassing the DOM/layout pipeline since
// it's host chrome rather than application content.
func overlayLogPanel(rt *Runtime, lc *LogCapture, root DomId) {
	width, height := rt.Size()
	panelHeight := height / 3
	if panelHeight < 6 {
		panelHeight = 6
	}
	panelY := height - panelHeight
	area := Rect{X: 0, Y: uint16(panelY), Width: uint16(width), Height: uint16(panelHeight)}

	style := DefaultStyle()
	style.Visual.Background = ColorBlack
	style.Visual.Color = ColorWhite
	style.Visual.BorderStyle = BorderStyleSolid
	style.Visual.BorderColor = RGB(0, 200, 200)

	buf := rt.back
	FillBackground(RenderContext{Buffer: buf, Area: area, Style: style})
	inner := DrawBorder(buf, area, style)

	messages := lc.Messages()
	header := RenderContext{Buffer: buf, Area: Rect{X: inner.X, Y: inner.Y, Width: inner.Width, Height: 1}, Style: style}
	DrawText(header, formatPanelHeader(len(messages)))

	maxLines := int(inner.Height) - 1
	if maxLines < 0 {
		maxLines = 0
	}
	visible := messages
	if len(visible) > maxLines {
		visible = visible[len(visible)-maxLines:]
	}
	for i, msg := range visible {
		lineStyle := style
		switch msg.Level {
		case LogLevelError:
			lineStyle.Visual.Color = RGB(255, 85, 85)
		case LogLevelWarn:
			lineStyle.Visual.Color = RGB(255, 200, 0)
		}
		ctx := RenderContext{Buffer: buf, Area: Rect{X: inner.X, Y: inner.Y + 1 + uint16(i), Width: inner.Width, Height: 1}, Style: lineStyle}
		DrawText(ctx, " "+FormatMessage(msg))
	}
}

func formatPanelHeader(count int) string {
	return "Console (" + strconv.Itoa(count) + ") - Ctrl+L close, Ctrl+K clear"
}
