package editorui

import (
	"testing"

	"github.com/pluginfx/editorui/gui"
)

func TestKeyboardNormalizesLetterCase(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	editor.Keyboard(KeyboardEvent{Press: true, Key: 'a'})

	if !in.ASCIIKeyDown('A') {
		t.Error("expected 'a' press to register under 'A'")
	}
	if !in.ASCIIKeyDown('a') {
		t.Error("expected lookup with 'a' to see the normalized slot")
	}
	if !in.ASCIIKeyPressed('A') {
		t.Error("expected a press edge for 'A'")
	}
	if len(in.InputChars) != 1 || in.InputChars[0] != 'a' {
		t.Errorf("expected the raw character 'a' in the text queue, got %q", string(in.InputChars))
	}

	editor.Keyboard(KeyboardEvent{Press: false, Key: 'a'})
	if in.ASCIIKeyDown('A') {
		t.Error("expected release to clear the held state")
	}
}

func TestKeyboardControlCharacters(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	editor.Keyboard(KeyboardEvent{Press: true, Key: '\b'})
	if !in.ASCIIKeyDown('\b') || !in.ASCIIKeyPressed('\b') {
		t.Error("expected backspace to register in the printable set")
	}
}

func TestKeyboardIgnoresNonASCIIKeyState(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	// A multi-byte character still queues as text input but records no
	// key state.
	editor.Keyboard(KeyboardEvent{Press: true, Key: 0x00E9}) // é
	if len(in.InputChars) != 1 || in.InputChars[0] != 0x00E9 {
		t.Errorf("expected the character in the text queue, got %q", string(in.InputChars))
	}
}

func TestSpecialKeysAndModifiers(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	editor.Special(SpecialEvent{Press: true, Key: KeyLeft})
	if !in.SpecialKeyDown(gui.KeyLeft) {
		t.Error("expected left arrow to register")
	}

	editor.Special(SpecialEvent{Press: true, Key: KeyShift})
	if !in.ModShift {
		t.Error("expected shift press to set the modifier flag")
	}
	if !in.SpecialKeyDown(gui.KeyShift) {
		t.Error("expected shift to also register as a held special key")
	}

	editor.Special(SpecialEvent{Press: false, Key: KeyShift})
	if in.ModShift {
		t.Error("expected shift release to clear the modifier flag")
	}

	editor.Special(SpecialEvent{Press: true, Key: KeyControl})
	editor.Special(SpecialEvent{Press: true, Key: KeyAlt})
	editor.Special(SpecialEvent{Press: true, Key: KeySuper})
	if !in.ModCtrl || !in.ModAlt || !in.ModSuper {
		t.Error("expected ctrl/alt/super presses to set their flags")
	}
}

func TestMouseButtonMapping(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	editor.Mouse(MouseEvent{Press: true, Button: 1})
	if !in.MouseDown(gui.MouseButtonLeft) {
		t.Error("expected platform button 1 to map to left")
	}

	editor.Mouse(MouseEvent{Press: true, Button: 2})
	if !in.MouseDown(gui.MouseButtonMiddle) {
		t.Error("expected platform button 2 to map to middle")
	}

	editor.Mouse(MouseEvent{Press: true, Button: 3})
	if !in.MouseDown(gui.MouseButtonRight) {
		t.Error("expected platform button 3 to map to right")
	}

	// Unmapped codes are dropped without touching button state.
	editor.Mouse(MouseEvent{Press: false, Button: 4})
	editor.Mouse(MouseEvent{Press: true, Button: 0})
	if !in.MouseDown(gui.MouseButtonLeft) || !in.MouseDown(gui.MouseButtonMiddle) || !in.MouseDown(gui.MouseButtonRight) {
		t.Error("expected unmapped button codes to leave state untouched")
	}
}

func TestMotionIsNeverClaimed(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	if editor.Motion(MotionEvent{X: 120, Y: 80}) {
		t.Error("expected motion events to report unclaimed")
	}
	if in.MouseX != 120 || in.MouseY != 80 {
		t.Errorf("expected pointer at (120, 80), got (%g, %g)", in.MouseX, in.MouseY)
	}
}

func TestScrollAccumulatesAcrossEvents(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	editor.Scroll(ScrollEvent{DeltaY: 1})
	editor.Scroll(ScrollEvent{DeltaY: 2})
	editor.Scroll(ScrollEvent{DeltaX: -1})

	if in.MouseWheelY != 3 {
		t.Errorf("expected vertical wheel delta 3, got %g", in.MouseWheelY)
	}
	if in.MouseWheelX != -1 {
		t.Errorf("expected horizontal wheel delta -1, got %g", in.MouseWheelX)
	}
}

func TestFrameConsumesTransientInput(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {})
	in := editor.Context().Input

	editor.Keyboard(KeyboardEvent{Press: true, Key: 'x'})
	editor.Scroll(ScrollEvent{DeltaY: 2})

	editor.Idle()

	if in.ASCIIKeyPressed('x') {
		t.Error("expected the press edge to be consumed by the frame")
	}
	if !in.ASCIIKeyDown('x') {
		t.Error("expected the held state to persist across the frame")
	}
	if in.MouseWheelY != 0 {
		t.Errorf("expected the wheel delta to be consumed, got %g", in.MouseWheelY)
	}
	if len(in.InputChars) != 0 {
		t.Errorf("expected typed characters to be consumed, got %q", string(in.InputChars))
	}
}

func TestCaptureFlagsReportedToHost(t *testing.T) {
	editor, _, _, _ := newTestEditor(t, func(ctx *gui.Context) {
		ctx.Button("OK")
	})

	// The first button sits at the window padding; park the pointer on it
	// and compute a frame so the capture flag is set.
	editor.Motion(MotionEvent{X: 15, Y: 15})
	editor.Idle()

	if !editor.Mouse(MouseEvent{Press: true, Button: 1}) {
		t.Error("expected a click over a widget to be claimed")
	}
	if editor.Keyboard(KeyboardEvent{Press: true, Key: 'a'}) {
		t.Error("expected keyboard input to be unclaimed with nothing focused")
	}
}
