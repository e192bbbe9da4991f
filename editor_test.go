package editorui

import (
	"errors"
	"testing"
	"time"

	"github.com/pluginfx/editorui/gui"
)

type fakeHost struct {
	repaints int
}

func (h *fakeHost) Repaint() { h.repaints++ }

type fakeRenderer struct {
	viewportW, viewportH int
	clears               []Color
	renders              int
	lastData             *gui.DrawData
	renderErr            error
}

func (r *fakeRenderer) Viewport(width, height int) {
	r.viewportW = width
	r.viewportH = height
}

func (r *fakeRenderer) Clear(c Color) {
	r.clears = append(r.clears, c)
}

func (r *fakeRenderer) Render(data *gui.DrawData) error {
	r.renders++
	r.lastData = data
	return r.renderErr
}

// newTestEditor builds an editor over fake collaborators with a
// controllable clock. The returned setter moves the clock.
func newTestEditor(t *testing.T, draw DrawFunc) (*Editor, *fakeHost, *fakeRenderer, func(time.Time)) {
	t.Helper()

	host := &fakeHost{}
	renderer := &fakeRenderer{}
	editor, err := New(host, renderer, 400, 300, draw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(editor.Close)

	current := time.Unix(1000, 0)
	editor.now = func() time.Time { return current }
	setNow := func(tm time.Time) { current = tm }

	return editor, host, renderer, setNow
}

func TestNewValidatesArguments(t *testing.T) {
	host := &fakeHost{}
	renderer := &fakeRenderer{}
	draw := func(*gui.Context) {}

	cases := []struct {
		name          string
		host          Host
		renderer      Renderer
		width, height int
		draw          DrawFunc
	}{
		{"nil host", nil, renderer, 400, 300, draw},
		{"nil renderer", host, nil, 400, 300, draw},
		{"nil draw", host, renderer, 400, 300, nil},
		{"zero width", host, renderer, 0, 300, draw},
		{"negative height", host, renderer, 400, -1, draw},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.host, tc.renderer, tc.width, tc.height, tc.draw); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestIdleComputesEveryTickBeforeFirstPaint(t *testing.T) {
	frames := 0
	editor, host, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		frames++
		ctx.Text("hello")
	})

	editor.Idle()
	if frames != 1 {
		t.Fatalf("expected 1 frame after first Idle, got %d", frames)
	}
	if host.repaints != 1 {
		t.Fatalf("expected 1 repaint request after first Idle, got %d", host.repaints)
	}

	// Never painted yet, so every tick computes even with no time passing.
	editor.Idle()
	editor.Idle()
	if frames != 3 {
		t.Errorf("expected 3 frames before first paint, got %d", frames)
	}
	// Output did not change, so no further repaint requests.
	if host.repaints != 1 {
		t.Errorf("expected repaints to stay at 1 for unchanged output, got %d", host.repaints)
	}
}

func TestIdleThrottlesAfterPaint(t *testing.T) {
	frames := 0
	editor, _, _, setNow := newTestEditor(t, func(ctx *gui.Context) {
		frames++
		ctx.Text("hello")
	})

	base := time.Unix(1000, 0)
	setNow(base)

	editor.Idle()
	editor.Display()
	if frames != 1 {
		t.Fatalf("expected 1 frame, got %d", frames)
	}

	// 10ms elapsed: under the 15ms interval, no frame.
	setNow(base.Add(10 * time.Millisecond))
	editor.Idle()
	if frames != 1 {
		t.Errorf("expected no frame at 10ms, got %d frames", frames)
	}

	// Exactly the interval: still no frame, the gate is strict.
	setNow(base.Add(DefaultRepaintInterval))
	editor.Idle()
	if frames != 1 {
		t.Errorf("expected no frame at exactly the interval, got %d frames", frames)
	}

	// Just past the interval: a frame is computed.
	setNow(base.Add(DefaultRepaintInterval + time.Nanosecond))
	editor.Idle()
	if frames != 2 {
		t.Errorf("expected a frame just past the interval, got %d frames", frames)
	}
}

func TestSetRepaintInterval(t *testing.T) {
	frames := 0
	editor, _, _, setNow := newTestEditor(t, func(ctx *gui.Context) {
		frames++
		ctx.Text("hello")
	})

	editor.SetRepaintInterval(5 * time.Millisecond)

	base := time.Unix(1000, 0)
	setNow(base)
	editor.Idle()
	editor.Display()

	setNow(base.Add(6 * time.Millisecond))
	editor.Idle()
	if frames != 2 {
		t.Errorf("expected a frame 6ms after paint with a 5ms interval, got %d frames", frames)
	}

	editor.SetRepaintInterval(0)
	if editor.repaintInterval != DefaultRepaintInterval {
		t.Errorf("expected non-positive interval to restore the default, got %v", editor.repaintInterval)
	}
}

func TestDisplayWithoutFrameStillPaints(t *testing.T) {
	editor, _, renderer, setNow := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})

	base := time.Unix(1000, 0)
	setNow(base)

	// No Idle yet: there is no draw output, but the surface must still be
	// cleared and the paint timestamp recorded.
	editor.Display()

	if len(renderer.clears) != 1 {
		t.Fatalf("expected 1 clear, got %d", len(renderer.clears))
	}
	if renderer.clears[0] != DefaultBackground {
		t.Errorf("expected default background %+v, got %+v", DefaultBackground, renderer.clears[0])
	}
	if renderer.renders != 0 {
		t.Errorf("expected no render without draw output, got %d", renderer.renders)
	}
	if !editor.everPainted {
		t.Error("expected the paint to be recorded")
	}
	if !editor.lastPainted.Equal(base) {
		t.Errorf("expected paint timestamp %v, got %v", base, editor.lastPainted)
	}
}

func TestDisplayRendersCurrentOutput(t *testing.T) {
	editor, _, renderer, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})

	custom := Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	editor.SetBackgroundColor(custom)

	editor.Idle()
	editor.Display()

	if renderer.viewportW != 400 || renderer.viewportH != 300 {
		t.Errorf("expected viewport 400x300, got %dx%d", renderer.viewportW, renderer.viewportH)
	}
	if len(renderer.clears) != 1 || renderer.clears[0] != custom {
		t.Errorf("expected clear with %+v, got %+v", custom, renderer.clears)
	}
	if renderer.renders != 1 {
		t.Fatalf("expected 1 render, got %d", renderer.renders)
	}
	if renderer.lastData == nil || !renderer.lastData.Valid || len(renderer.lastData.Lists) == 0 {
		t.Error("expected valid draw data to reach the renderer")
	}
}

func TestDisplaySurvivesRenderError(t *testing.T) {
	editor, _, renderer, setNow := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})
	renderer.renderErr = errors.New("context lost")

	base := time.Unix(1000, 0)
	setNow(base)

	editor.Idle()
	editor.Display()

	if renderer.renders != 1 {
		t.Fatalf("expected 1 render attempt, got %d", renderer.renders)
	}
	// A failed render still counts as a paint for the throttle.
	if !editor.lastPainted.Equal(base) {
		t.Errorf("expected paint timestamp %v, got %v", base, editor.lastPainted)
	}
}

func TestReshapeUpdatesDisplaySize(t *testing.T) {
	editor, _, renderer, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})

	editor.Reshape(800, 600)

	size := editor.Context().DisplaySize()
	if size.X != 800 || size.Y != 600 {
		t.Fatalf("expected display size 800x600, got %gx%g", size.X, size.Y)
	}

	editor.Display()
	if renderer.viewportW != 800 || renderer.viewportH != 600 {
		t.Errorf("expected viewport 800x600, got %dx%d", renderer.viewportW, renderer.viewportH)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	frames := 0
	editor, host, renderer, _ := newTestEditor(t, func(ctx *gui.Context) {
		frames++
		ctx.Text("hello")
	})

	editor.Close()
	editor.Close()

	editor.Idle()
	editor.Display()
	if frames != 0 {
		t.Errorf("expected no frames after Close, got %d", frames)
	}
	if host.repaints != 0 || renderer.renders != 0 {
		t.Errorf("expected no repaints or renders after Close, got %d/%d", host.repaints, renderer.renders)
	}

	if editor.Keyboard(KeyboardEvent{Press: true, Key: 'a'}) {
		t.Error("expected Keyboard to report unclaimed after Close")
	}
	if editor.Mouse(MouseEvent{Press: true, Button: 1}) {
		t.Error("expected Mouse to report unclaimed after Close")
	}
}
