package gui

import "testing"

func TestASCIIKeyNormalization(t *testing.T) {
	in := NewInputState()

	in.SetASCIIKey('q', true)
	if !in.ASCIIKeyDown('Q') || !in.ASCIIKeyDown('q') {
		t.Error("expected lowercase press to be readable through either case")
	}

	in.SetASCIIKey('Q', false)
	if in.ASCIIKeyDown('q') {
		t.Error("expected uppercase release to clear the shared slot")
	}

	// Non-letters keep their own slots.
	in.SetASCIIKey('1', true)
	if !in.ASCIIKeyDown('1') {
		t.Error("expected digit key to register")
	}
	if in.ASCIIKeyDown('!') {
		t.Error("expected no aliasing between digits and punctuation")
	}
}

func TestASCIIKeyIgnoresOutOfRange(t *testing.T) {
	in := NewInputState()
	in.SetASCIIKey(200, true)
	if in.ASCIIKeyDown(200) {
		t.Error("expected keys outside 7-bit ASCII to be ignored")
	}
}

func TestSpecialKeySeparateFromPrintable(t *testing.T) {
	in := NewInputState()

	// A special key and every printable key live in different tables, so
	// holding one can never read back as the other.
	in.SetSpecialKey(KeyHome, true)
	for key := byte(0); key < asciiKeyCount; key++ {
		if in.ASCIIKeyDown(key) {
			t.Fatalf("expected no printable key to alias KeyHome, got %d down", key)
		}
	}
	if !in.SpecialKeyDown(KeyHome) {
		t.Error("expected KeyHome to be held")
	}
}

func TestSpecialKeyBounds(t *testing.T) {
	in := NewInputState()
	in.SetSpecialKey(KeyNone, true)
	in.SetSpecialKey(SpecialKeyCount, true)
	in.SetSpecialKey(SpecialKey(-1), true)

	for k := KeyNone; k < SpecialKeyCount; k++ {
		if in.SpecialKeyDown(k) {
			t.Fatalf("expected out-of-range sets to be ignored, got %d down", k)
		}
	}
}

func TestMouseButtonEdges(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft) {
		t.Error("expected press to set both click edge and held state")
	}

	// A repeated down event is not a new click.
	in.EndFrame()
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("expected no click edge for a repeated down event")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	if !in.MouseReleased(MouseButtonLeft) || in.MouseDown(MouseButtonLeft) {
		t.Error("expected release to set the release edge and clear held state")
	}
}

func TestWheelAccumulates(t *testing.T) {
	in := NewInputState()
	in.AddMouseWheel(0, 1)
	in.AddMouseWheel(0, 2)
	in.AddMouseWheel(-1, 0)

	if in.MouseWheelY != 3 || in.MouseWheelX != -1 {
		t.Errorf("expected wheel deltas (-1, 3), got (%g, %g)", in.MouseWheelX, in.MouseWheelY)
	}
}

func TestEndFrameClearsTransients(t *testing.T) {
	in := NewInputState()
	in.SetASCIIKey('A', true)
	in.SetSpecialKey(KeyEnd, true)
	in.SetMouseButton(MouseButtonRight, true)
	in.AddMouseWheel(1, 2)
	in.AddInputChar('x')

	in.EndFrame()

	if in.ASCIIKeyPressed('A') || in.SpecialKeyPressed(KeyEnd) || in.MouseClicked(MouseButtonRight) {
		t.Error("expected press edges to be cleared")
	}
	if !in.ASCIIKeyDown('A') || !in.SpecialKeyDown(KeyEnd) || !in.MouseDown(MouseButtonRight) {
		t.Error("expected held state to persist")
	}
	if in.MouseWheelX != 0 || in.MouseWheelY != 0 {
		t.Error("expected wheel deltas to be cleared")
	}
	if in.HasInputChars() {
		t.Error("expected typed characters to be cleared")
	}
}
