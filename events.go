package editorui

import "github.com/pluginfx/editorui/gui"

// Key identifies a non-printable key in a host event. The values follow
// the host framework's ordering and are translated to the gui package's
// key model before they reach widgets.
type Key int

const (
	KeyLeft Key = iota + 1
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
)

// KeyboardEvent is a character key event. Key holds the character code as
// delivered by the host (lowercase for unshifted letters).
type KeyboardEvent struct {
	Press bool
	Key   uint32
}

// SpecialEvent is a non-printable key event.
type SpecialEvent struct {
	Press bool
	Key   Key
}

// MouseEvent is a button press/release event. Button uses the platform's
// 1-based ordering (1 left, 2 middle, 3 right).
type MouseEvent struct {
	Press  bool
	Button int
	X, Y   float64
}

// MotionEvent is a pointer move event in window coordinates.
type MotionEvent struct {
	X, Y float64
}

// ScrollEvent is a wheel event. Deltas are in scroll steps, vertical
// positive away from the user.
type ScrollEvent struct {
	DeltaX, DeltaY float64
}

// specialKeyToGUI translates a host key code to the gui key model.
// Unknown codes map to KeyNone and are ignored by the input state.
func specialKeyToGUI(key Key) gui.SpecialKey {
	switch key {
	case KeyLeft:
		return gui.KeyLeft
	case KeyUp:
		return gui.KeyUp
	case KeyRight:
		return gui.KeyRight
	case KeyDown:
		return gui.KeyDown
	case KeyPageUp:
		return gui.KeyPageUp
	case KeyPageDown:
		return gui.KeyPageDown
	case KeyHome:
		return gui.KeyHome
	case KeyEnd:
		return gui.KeyEnd
	case KeyInsert:
		return gui.KeyInsert
	case KeyShift:
		return gui.KeyShift
	case KeyControl:
		return gui.KeyControl
	case KeyAlt:
		return gui.KeyAlt
	case KeySuper:
		return gui.KeySuper
	default:
		return gui.KeyNone
	}
}

// mouseButtonToGUI maps a platform button code to the gui package's
// left/middle/right ordering. Unmapped codes return -1.
func mouseButtonToGUI(button int) gui.MouseButton {
	switch button {
	case 1:
		return gui.MouseButtonLeft
	case 2:
		return gui.MouseButtonMiddle
	case 3:
		return gui.MouseButtonRight
	default:
		return -1
	}
}
