// Simplegain runs a gain-plugin editor surface in a standalone window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                   # dev environment with Go + OpenGL/X11 headers
//	go run ./example/simplegain/   # run this example
//
// The example stands a GLFW window in for a plugin host: window callbacks
// feed the editor's event methods, the host loop drives Idle, and the
// editor requests repaints only when its drawn output actually changes.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pluginfx/editorui"
	"github.com/pluginfx/editorui/backend/opengl"
	"github.com/pluginfx/editorui/gui"
)

const (
	windowWidth  = 480
	windowHeight = 360
	windowTitle  = "simple gain"

	gainMinDB = -90.0
	gainMaxDB = 30.0
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// gainModel holds the plugin-side state the editor surface reflects.
// In a real plugin the host owns this and the edit gesture calls would
// drive automation recording.
type gainModel struct {
	gainDB  float32
	bypass  bool
	program string
	editing bool
}

// loadFactoryPreset resets the model to the shipped "Unity Gain" program.
func (m *gainModel) loadFactoryPreset() {
	m.gainDB = 0
	m.bypass = false
	m.program = "Unity Gain"
}

func (m *gainModel) beginEdit() { m.editing = true }
func (m *gainModel) endEdit()   { m.editing = false }

// linearGain converts the stored decibel value to the multiplier the
// audio path would apply.
func (m *gainModel) linearGain() float32 {
	if m.bypass {
		return 1
	}
	return float32(math.Pow(10, float64(m.gainDB)/20))
}

func (m *gainModel) draw(ctx *gui.Context) {
	size := ctx.DisplaySize()
	const margin = 16
	ctx.SetNextWindowPos(margin, margin)
	ctx.SetNextWindowSize(size.X-2*margin, size.Y-2*margin)

	ctx.Window("Simple Gain", func() {
		ctx.Textf("Program: %s", m.program)
		ctx.Spacing(4)

		if ctx.SliderFloat("Gain (dB)", &m.gainDB, gainMinDB, gainMaxDB) {
			if ctx.IsItemActivated() {
				m.beginEdit()
			}
		}
		if ctx.IsItemDeactivated() {
			m.endEdit()
		}

		ctx.Textf("Linear: %.4f", m.linearGain())
		ctx.Spacing(4)

		ctx.Checkbox("Bypass", &m.bypass)
		ctx.Spacing(4)

		if ctx.Button("Reset to Unity Gain") {
			m.loadFactoryPreset()
		}

		ctx.Spacing(8)
		ctx.Separator()
		ctx.InputText("Notes", &m.program)
		if m.editing {
			ctx.TextDisabled("recording automation...")
		}
	})
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	model := &gainModel{}
	model.loadFactoryPreset()

	host := opengl.NewHostWindow(window)
	editor, err := editorui.New(host, renderer, windowWidth, windowHeight, model.draw)
	if err != nil {
		return fmt.Errorf("create editor: %w", err)
	}
	defer editor.Close()

	editor.Context().FontTextureID = renderer.FontTextureID()

	// An optional theme.yml next to the binary overrides background and
	// repaint cadence.
	if cfg, err := editorui.LoadConfig("theme.yml"); err == nil {
		editor.ApplyConfig(cfg)
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "theme.yml ignored:", err)
	}

	host.Bind(editor)

	for !host.ShouldClose() {
		glfw.PollEvents()
		host.Tick()
		// A plugin host polls idle on a timer; emulate that cadence so the
		// loop does not spin between vsync swaps.
		time.Sleep(4 * time.Millisecond)
	}

	return nil
}
