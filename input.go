package editorui

// Keyboard handles a character key event. On press the character joins
// the pending text-input queue; keys in the 7-bit ASCII range also record
// press/release state (letters normalized to uppercase) so widgets can
// track held editing keys like backspace and enter.
// Returns true if the UI currently claims keyboard input.
func (e *Editor) Keyboard(ev KeyboardEvent) bool {
	if e.closed {
		return false
	}
	in := e.ctx.Input

	if ev.Press {
		in.AddInputChar(rune(ev.Key))
	}
	if ev.Key < 128 {
		in.SetASCIIKey(byte(ev.Key), ev.Press)
	}

	return e.ctx.WantCaptureKeyboard
}

// Special handles a non-printable key event. Modifier keys additionally
// update the modifier flags. Returns true if the UI currently claims
// keyboard input.
func (e *Editor) Special(ev SpecialEvent) bool {
	if e.closed {
		return false
	}
	in := e.ctx.Input

	if k := specialKeyToGUI(ev.Key); k != 0 {
		in.SetSpecialKey(k, ev.Press)
	}

	switch ev.Key {
	case KeyShift:
		in.ModShift = ev.Press
	case KeyControl:
		in.ModCtrl = ev.Press
	case KeyAlt:
		in.ModAlt = ev.Press
	case KeySuper:
		in.ModSuper = ev.Press
	}

	return e.ctx.WantCaptureKeyboard
}

// Mouse handles a button press/release event. Button codes outside the
// mapped set are silently ignored. Returns true if the UI currently
// claims mouse input.
func (e *Editor) Mouse(ev MouseEvent) bool {
	if e.closed {
		return false
	}

	if b := mouseButtonToGUI(ev.Button); b >= 0 {
		e.ctx.Input.SetMouseButton(b, ev.Press)
	}

	return e.ctx.WantCaptureMouse
}

// Motion handles a pointer move event. The position is scaled by the
// display factor and rounded. Motion events are never claimed.
func (e *Editor) Motion(ev MotionEvent) bool {
	if e.closed {
		return false
	}

	e.ctx.Input.SetMousePos(e.scaled(float32(ev.X)), e.scaled(float32(ev.Y)))
	return false
}

// Scroll handles a wheel event. Deltas accumulate onto the wheel axes so
// multiple events between frames compound. Returns true if the UI
// currently claims mouse input.
func (e *Editor) Scroll(ev ScrollEvent) bool {
	if e.closed {
		return false
	}

	e.ctx.Input.AddMouseWheel(float32(ev.DeltaX), float32(ev.DeltaY))
	return e.ctx.WantCaptureMouse
}
