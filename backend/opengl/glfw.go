package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pluginfx/editorui"
)

// HostWindow adapts a GLFW window into an editorui.Host, translating
// window callbacks into editor events. It stands in for the plugin
// framework when an editor surface runs standalone.
type HostWindow struct {
	window      *glfw.Window
	editor      *editorui.Editor
	needsRedraw bool
}

// NewHostWindow wraps an existing GLFW window. Bind must be called with
// the editor before events flow.
func NewHostWindow(window *glfw.Window) *HostWindow {
	return &HostWindow{window: window}
}

// Repaint implements editorui.Host: the redraw request is deferred to
// the next Tick, like a plugin host queueing an expose event.
func (h *HostWindow) Repaint() {
	h.needsRedraw = true
}

// Bind registers window callbacks that forward events to the editor.
func (h *HostWindow) Bind(editor *editorui.Editor) {
	h.editor = editor
	// Paint once up front so the window is not blank until the first change.
	h.needsRedraw = true

	h.window.SetCharCallback(h.charCallback)
	h.window.SetKeyCallback(h.keyCallback)
	h.window.SetMouseButtonCallback(h.mouseButtonCallback)
	h.window.SetCursorPosCallback(h.cursorPosCallback)
	h.window.SetScrollCallback(h.scrollCallback)
	h.window.SetSizeCallback(h.sizeCallback)
}

// Tick runs one host loop iteration: deliver the idle callback, and if a
// repaint was requested, run the display callback and swap buffers.
func (h *HostWindow) Tick() {
	h.editor.Idle()
	if h.needsRedraw {
		h.needsRedraw = false
		h.editor.Display()
		h.window.SwapBuffers()
	}
}

// ShouldClose reports whether the user asked to close the window.
func (h *HostWindow) ShouldClose() bool {
	return h.window.ShouldClose()
}

func (h *HostWindow) charCallback(_ *glfw.Window, char rune) {
	// Typed characters arrive as a press/release pair, the way a plugin
	// host delivers keyboard events.
	h.editor.Keyboard(editorui.KeyboardEvent{Press: true, Key: uint32(char)})
	h.editor.Keyboard(editorui.KeyboardEvent{Press: false, Key: uint32(char)})
}

func (h *HostWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	press := action == glfw.Press || action == glfw.Repeat

	// Control keys produce no char callback, so synthesize keyboard
	// events with their ASCII codes.
	if code, ok := glfwControlKeyCode(key); ok {
		h.editor.Keyboard(editorui.KeyboardEvent{Press: press, Key: code})
		return
	}

	if special, ok := glfwSpecialKey(key); ok {
		h.editor.Special(editorui.SpecialEvent{Press: press, Key: special})
	}
}

func (h *HostWindow) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	code, ok := glfwMouseButtonCode(button)
	if !ok {
		return
	}
	x, y := w.GetCursorPos()
	h.editor.Mouse(editorui.MouseEvent{
		Press:  action == glfw.Press,
		Button: code,
		X:      x,
		Y:      y,
	})
}

func (h *HostWindow) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	h.editor.Motion(editorui.MotionEvent{X: xpos, Y: ypos})
}

func (h *HostWindow) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	h.editor.Scroll(editorui.ScrollEvent{DeltaX: xoff, DeltaY: yoff})
}

func (h *HostWindow) sizeCallback(_ *glfw.Window, width, height int) {
	h.editor.Reshape(uint(width), uint(height))
	h.needsRedraw = true
}

// glfwControlKeyCode maps editing keys without char events to the ASCII
// codes the editor's keyboard path expects.
func glfwControlKeyCode(key glfw.Key) (uint32, bool) {
	switch key {
	case glfw.KeyEnter:
		return '\r', true
	case glfw.KeyTab:
		return '\t', true
	case glfw.KeyBackspace:
		return '\b', true
	case glfw.KeyEscape:
		return 27, true
	case glfw.KeyDelete:
		return 127, true
	default:
		return 0, false
	}
}

// glfwSpecialKey maps GLFW navigation and modifier keys to host key codes.
func glfwSpecialKey(key glfw.Key) (editorui.Key, bool) {
	switch key {
	case glfw.KeyLeft:
		return editorui.KeyLeft, true
	case glfw.KeyUp:
		return editorui.KeyUp, true
	case glfw.KeyRight:
		return editorui.KeyRight, true
	case glfw.KeyDown:
		return editorui.KeyDown, true
	case glfw.KeyPageUp:
		return editorui.KeyPageUp, true
	case glfw.KeyPageDown:
		return editorui.KeyPageDown, true
	case glfw.KeyHome:
		return editorui.KeyHome, true
	case glfw.KeyEnd:
		return editorui.KeyEnd, true
	case glfw.KeyInsert:
		return editorui.KeyInsert, true
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return editorui.KeyShift, true
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return editorui.KeyControl, true
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return editorui.KeyAlt, true
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return editorui.KeySuper, true
	default:
		return 0, false
	}
}

// glfwMouseButtonCode maps GLFW buttons to the platform's 1-based codes.
func glfwMouseButtonCode(button glfw.MouseButton) (int, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return 1, true
	case glfw.MouseButtonMiddle:
		return 2, true
	case glfw.MouseButtonRight:
		return 3, true
	default:
		return 0, false
	}
}
