// Package editorui embeds an immediate-mode GUI into a host-managed
// plugin editor surface. The host framework owns the window, delivers
// input events, and schedules redraws; this package translates those
// events into the gui package's per-frame input model, decides when the
// UI needs recomputing, and suppresses repaints whose draw output is
// byte-identical to the previous frame.
//
// The host drives an Editor through three kinds of entry points, all on
// one thread and never concurrently:
//
//   - event callbacks (Keyboard, Special, Mouse, Motion, Scroll, Reshape)
//     which update input state and report whether the UI claims the event;
//   - Idle, a periodic tick used purely as a timer source: when enough
//     time has passed since the last paint, one GUI frame is computed and,
//     if its draw output changed, Host.Repaint is requested;
//   - Display, the host's actual redraw callback, which clears the
//     surface and submits the live draw output to the Renderer.
package editorui

import (
	"errors"
	"math"
	"time"

	"github.com/pluginfx/editorui/gui"
)

// DefaultRepaintInterval is the minimum time between UI frame
// recomputations once the surface has painted at least once.
const DefaultRepaintInterval = 15 * time.Millisecond

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

// DefaultBackground is the clear color used when none is configured.
var DefaultBackground = Color{R: 0.25, G: 0.25, B: 0.25, A: 1}

// Host is the surface's upstream: the plugin framework that owns the
// window. Repaint asks it to schedule a real redraw; the host decides
// when the Display callback actually runs.
type Host interface {
	Repaint()
}

// Renderer rasterizes draw output produced by the GUI context.
// Implementations live in backend packages; they are only called from the
// Display path, with the host's GL context current.
type Renderer interface {
	Viewport(width, height int)
	Clear(c Color)
	Render(data *gui.DrawData) error
}

// DrawFunc is the plugin's per-frame UI description. It is invoked once
// per computed frame and issues widget calls on the context; its UI is
// rebuilt from scratch every time.
type DrawFunc func(*gui.Context)

// Editor is one plugin editor surface. It owns a gui.Context, the cached
// draw output of the last changed frame, and the repaint timer state.
// All methods must be called from the host's UI thread.
type Editor struct {
	host     Host
	renderer Renderer
	draw     DrawFunc

	ctx   *gui.Context
	cache []*gui.DrawList

	background      Color
	repaintInterval time.Duration

	lastPainted time.Time
	everPainted bool

	// Multiplier applied to incoming coordinates before they reach the
	// input model. Fixed at 1 until the host reports fractional scaling.
	scaleFactor float32

	closed bool

	now func() time.Time // swapped out in tests
}

// New creates an editor surface of the given size in logical pixels.
// The renderer must already be usable (its own construction is where
// graphics initialization failure surfaces); host, renderer and draw are
// all required.
func New(host Host, renderer Renderer, width, height int, draw DrawFunc) (*Editor, error) {
	if host == nil {
		return nil, errors.New("editorui: nil host")
	}
	if renderer == nil {
		return nil, errors.New("editorui: nil renderer")
	}
	if draw == nil {
		return nil, errors.New("editorui: nil draw callback")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("editorui: surface size must be positive")
	}

	e := &Editor{
		host:            host,
		renderer:        renderer,
		draw:            draw,
		background:      DefaultBackground,
		repaintInterval: DefaultRepaintInterval,
		scaleFactor:     1,
		now:             time.Now,
	}
	e.ctx = gui.NewContext(e.scaled(float32(width)), e.scaled(float32(height)))
	return e, nil
}

// Close releases the cached draw output and destroys the GUI context.
// It is safe to call more than once; only the first call does anything.
func (e *Editor) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.releaseCache()
	e.ctx.Destroy()
}

// Context returns the surface's GUI context. Hosts use it to seed backend
// state such as the font texture ID.
func (e *Editor) Context() *gui.Context {
	return e.ctx
}

// SetBackgroundColor sets the clear color used on every paint.
func (e *Editor) SetBackgroundColor(c Color) {
	e.background = c
}

// SetRepaintInterval sets the minimum time between UI frame
// recomputations. Non-positive values restore the default.
func (e *Editor) SetRepaintInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRepaintInterval
	}
	e.repaintInterval = interval
}

// Idle is the host's periodic tick. Until the first paint every tick
// computes a frame; afterwards a frame is computed only when strictly
// more than the repaint interval has elapsed since the last paint. When
// the computed frame's draw output differs from the cache, the host is
// asked to repaint.
func (e *Editor) Idle() {
	if e.closed {
		return
	}

	if e.everPainted && e.now().Sub(e.lastPainted) <= e.repaintInterval {
		return
	}

	if e.renderFrame() {
		e.host.Repaint()
	}
}

// Display is the host's redraw callback. It always clears to the
// background color and stamps the paint timestamp, even when there is no
// valid draw output yet.
func (e *Editor) Display() {
	if e.closed {
		return
	}

	size := e.ctx.DisplaySize()
	e.renderer.Viewport(int(size.X), int(size.Y))
	e.renderer.Clear(e.background)

	if data := e.ctx.DrawData(); data != nil && data.Valid {
		if err := e.renderer.Render(data); err != nil {
			editorLogger.Error("render failed", "err", err)
		}
	}

	e.lastPainted = e.now()
	e.everPainted = true
}

// Reshape updates the display geometry from a host resize event.
func (e *Editor) Reshape(width, height uint) {
	if e.closed {
		return
	}
	e.ctx.SetDisplaySize(e.scaled(float32(width)), e.scaled(float32(height)))
}

// renderFrame runs exactly one GUI frame and reports whether its draw
// output differs from the cached copy of the last changed frame. The GUI
// state advances either way.
func (e *Editor) renderFrame() bool {
	e.ctx.NewFrame()
	e.draw(e.ctx)
	e.ctx.Render()

	data := e.ctx.DrawData()
	if e.cacheEquals(data) {
		if editorVerbose() {
			editorLogger.Debug("frame unchanged, repaint skipped", "frame", e.ctx.FrameCount)
		}
		return false
	}

	e.updateCache(data)
	return true
}

// scaled applies the display scale factor, rounded to the nearest pixel.
func (e *Editor) scaled(v float32) float32 {
	return float32(math.Round(float64(e.scaleFactor * v)))
}
