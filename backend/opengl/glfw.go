package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/outline/gui"
)

// StrokeHandler receives left-button strokes in window pixels.
// *outline.Session implements it.
type StrokeHandler interface {
	Press(x, y float64)
	Release()
}

// Overlay reports whether a window position falls on the UI.
// *gui.GUI implements it.
type Overlay interface {
	Contains(x, y float32) bool
}

// GLFWInputAdapter feeds GLFW mouse events to gui.InputState and forwards
// left-button presses and releases to a StrokeHandler.
type GLFWInputAdapter struct {
	window  *glfw.Window
	input   *gui.InputState
	strokes StrokeHandler
	overlay Overlay
}

// NewGLFWInputAdapter installs mouse callbacks on window.
// overlay may be nil, in which case every press starts a stroke.
func NewGLFWInputAdapter(window *glfw.Window, strokes StrokeHandler, overlay Overlay) *GLFWInputAdapter {
	adapter := newInputAdapter(strokes, overlay)
	adapter.window = window

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

func newInputAdapter(strokes StrokeHandler, overlay Overlay) *GLFWInputAdapter {
	return &GLFWInputAdapter{
		input:   gui.NewInputState(),
		strokes: strokes,
		overlay: overlay,
	}
}

// BeginFrame clears single-frame input. Call it before glfw.PollEvents so
// the events polled next are visible to the overlay this frame.
func (a *GLFWInputAdapter) BeginFrame() *gui.InputState {
	a.input.Reset()
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// CursorPos returns the cursor position in window pixels.
func (a *GLFWInputAdapter) CursorPos() (x, y float64) {
	return a.window.GetCursorPos()
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	x, y := w.GetCursorPos()
	switch action {
	case glfw.Press:
		a.handleButton(guiButton, true, x, y)
	case glfw.Release:
		a.handleButton(guiButton, false, x, y)
	}
}

// handleButton updates the overlay input and drives strokes with the left
// button. A press at a position on the overlay does not start a stroke;
// releases are always forwarded so a stroke dragged onto the overlay still
// ends.
func (a *GLFWInputAdapter) handleButton(button gui.MouseButton, down bool, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
	a.input.SetMouseButton(button, down)

	if button != gui.MouseButtonLeft || a.strokes == nil {
		return
	}
	if !down {
		a.strokes.Release()
		return
	}
	if a.overlay != nil && a.overlay.Contains(float32(x), float32(y)) {
		return
	}
	a.strokes.Press(x, y)
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
