package editorui

import (
	"testing"

	"github.com/pluginfx/editorui/gui"
)

func TestRepaintOnlyWhenOutputChanges(t *testing.T) {
	label := "gain: 0.0 dB"
	editor, host, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text(label)
	})

	editor.Idle()
	if host.repaints != 1 {
		t.Fatalf("expected 1 repaint for the first frame, got %d", host.repaints)
	}

	// Same UI output: no repaint.
	editor.Idle()
	editor.Idle()
	if host.repaints != 1 {
		t.Errorf("expected repaints to stay at 1 for identical frames, got %d", host.repaints)
	}

	// Changed output: repaint.
	label = "gain: -6.0 dB"
	editor.Idle()
	if host.repaints != 2 {
		t.Errorf("expected 2 repaints after the output changed, got %d", host.repaints)
	}
}

func TestCacheHoldsIndependentCopies(t *testing.T) {
	// Alternate between two outputs. The draw lists published by the
	// context are recycled on the next frame, so if the cache aliased
	// them it would silently track the live frame and miss changes.
	label := "a"
	editor, host, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text(label)
	})

	editor.Idle() // caches "a"
	label = "b"
	editor.Idle() // caches "b"
	label = "a"
	editor.Idle() // must differ from the cached "b"

	if host.repaints != 3 {
		t.Errorf("expected 3 repaints across a/b/a, got %d", host.repaints)
	}
}

func TestCacheEqualsEmptyStates(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})

	// Empty cache matches missing or invalid draw data.
	if !editor.cacheEquals(nil) {
		t.Error("expected nil data to match an empty cache")
	}
	if !editor.cacheEquals(&gui.DrawData{}) {
		t.Error("expected invalid data to match an empty cache")
	}

	editor.Idle()
	if editor.cacheEquals(nil) {
		t.Error("expected nil data to differ from a populated cache")
	}
}

func TestCacheComparesFlags(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})
	editor.Idle()

	data := editor.Context().DrawData()
	if data == nil || len(data.Lists) == 0 {
		t.Fatal("expected draw data after Idle")
	}
	if !editor.cacheEquals(data) {
		t.Fatal("expected current output to match its own cache")
	}

	saved := data.Lists[0].Flags
	data.Lists[0].Flags = 0
	if editor.cacheEquals(data) {
		t.Error("expected a flags mismatch to be detected")
	}
	data.Lists[0].Flags = saved
}

func TestCacheComparesBytes(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Text("hello")
	})
	editor.Idle()

	data := editor.Context().DrawData()
	if data == nil || len(data.Lists) == 0 || len(data.Lists[0].VtxBuffer) == 0 {
		t.Fatal("expected non-empty draw data after Idle")
	}

	// A single changed byte in the vertex buffer must register.
	data.Lists[0].VtxBuffer[0].Color ^= 1
	if editor.cacheEquals(data) {
		t.Error("expected a one-bit vertex difference to be detected")
	}
	data.Lists[0].VtxBuffer[0].Color ^= 1
	if !editor.cacheEquals(data) {
		t.Error("expected restored data to match the cache again")
	}
}

func TestBuffersEqual(t *testing.T) {
	a := []gui.Vertex{{Pos: [2]float32{1, 2}, Color: 0xFF0000FF}}
	b := []gui.Vertex{{Pos: [2]float32{1, 2}, Color: 0xFF0000FF}}
	if !buffersEqual(a, b) {
		t.Error("expected identical vertex buffers to compare equal")
	}

	b[0].Color = 0xFF0000FE
	if buffersEqual(a, b) {
		t.Error("expected differing colors to compare unequal")
	}

	if !buffersEqual([]uint16(nil), []uint16{}) {
		t.Error("expected nil and empty buffers to compare equal")
	}
	if buffersEqual([]uint16{1}, []uint16{1, 2}) {
		t.Error("expected different lengths to compare unequal")
	}
}
