package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonCount
)

// SpecialKey identifies a non-printable key. Printable keys are tracked by
// their ASCII value instead; the two sets are deliberately separate so a
// special key can never alias a printable one.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyShift
	KeyControl
	KeyAlt
	KeySuper
	SpecialKeyCount
)

// asciiKeyCount covers the 7-bit ASCII range tracked by the printable set.
const asciiKeyCount = 128

// InputState holds input state for the current frame.
// It is populated by the embedding surface from host events and read by
// widgets during frame computation. Transient per-frame values (wheel
// deltas, typed characters, pressed/released edges) are cleared when the
// frame is rendered.
type InputState struct {
	// Mouse position, already scaled to display pixels.
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel. Deltas accumulate across events between frames so
	// multiple scroll events compound rather than overwrite.
	MouseWheelX float32
	MouseWheelY float32

	// Printable keys, indexed by ASCII value. Lowercase letters are
	// normalized to uppercase so 'a' and 'A' share one slot.
	asciiDown    [asciiKeyCount]bool
	asciiPressed [asciiKeyCount]bool

	// Special keys, indexed by SpecialKey.
	specialDown    [SpecialKeyCount]bool
	specialPressed [SpecialKeyCount]bool

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// EndFrame clears transient per-frame state: press/release edges, wheel
// deltas and typed characters. Held-key and held-button state persists.
func (s *InputState) EndFrame() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.asciiPressed {
		s.asciiPressed[i] = false
	}
	for i := range s.specialPressed {
		s.specialPressed[i] = false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetASCIIKey records press/release state for a printable key.
// Lowercase letters are normalized to uppercase; values outside 7-bit
// ASCII are ignored.
func (s *InputState) SetASCIIKey(key byte, down bool) {
	if key >= asciiKeyCount {
		return
	}
	if key >= 'a' && key <= 'z' {
		key = key - 'a' + 'A'
	}

	wasDown := s.asciiDown[key]
	s.asciiDown[key] = down
	if down && !wasDown {
		s.asciiPressed[key] = true
	}
}

// SetSpecialKey records press/release state for a non-printable key.
func (s *InputState) SetSpecialKey(key SpecialKey, down bool) {
	if key <= KeyNone || key >= SpecialKeyCount {
		return
	}

	wasDown := s.specialDown[key]
	s.specialDown[key] = down
	if down && !wasDown {
		s.specialPressed[key] = true
	}
}

// AddMouseWheel accumulates wheel delta onto both axes.
func (s *InputState) AddMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// AddInputChar adds a typed character to the pending text queue.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// ASCIIKeyDown returns true if a printable key is currently held.
// The lookup applies the same uppercase normalization as SetASCIIKey.
func (s *InputState) ASCIIKeyDown(key byte) bool {
	if key >= asciiKeyCount {
		return false
	}
	if key >= 'a' && key <= 'z' {
		key = key - 'a' + 'A'
	}
	return s.asciiDown[key]
}

// ASCIIKeyPressed returns true if a printable key was pressed this frame.
func (s *InputState) ASCIIKeyPressed(key byte) bool {
	if key >= asciiKeyCount {
		return false
	}
	if key >= 'a' && key <= 'z' {
		key = key - 'a' + 'A'
	}
	return s.asciiPressed[key]
}

// SpecialKeyDown returns true if a special key is currently held.
func (s *InputState) SpecialKeyDown(key SpecialKey) bool {
	if key <= KeyNone || key >= SpecialKeyCount {
		return false
	}
	return s.specialDown[key]
}

// SpecialKeyPressed returns true if a special key was pressed this frame.
func (s *InputState) SpecialKeyPressed(key SpecialKey) bool {
	if key <= KeyNone || key >= SpecialKeyCount {
		return false
	}
	return s.specialPressed[key]
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}
