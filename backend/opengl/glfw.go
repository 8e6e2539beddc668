package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imui"
)

// GLFWInputAdapter pushes GLFW events into an imui.Input.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *imui.Input
}

// NewGLFWInputAdapter installs the GLFW callbacks of window. Events are only
// recorded inside Poll.
func NewGLFWInputAdapter(window *glfw.Window, input *imui.Input) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  input,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Poll runs one input tick: it opens the tick, polls GLFW so the callbacks
// push their events, and closes the tick.
func (a *GLFWInputAdapter) Poll() {
	a.input.Begin()
	glfw.PollEvents()
	x, y := a.window.GetCursorPos()
	a.input.PushMousePos(float32(x), float32(y))
	a.input.End()
}

// Input returns the input buffer events are pushed into.
func (a *GLFWInputAdapter) Input() *imui.Input {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKey(key)
	if k == imui.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.PushKeyDown(k)
	case glfw.Repeat:
		a.input.PushKeyRepeat(k)
	case glfw.Release:
		a.input.PushKeyUp(k)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.PushChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.PushMouseDown(b)
	case glfw.Release:
		a.input.PushMouseUp(b)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.PushScrollDelta(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.PushMousePos(float32(xpos), float32(ypos))
}

// glfwKey maps GLFW keys to imui keys.
func glfwKey(key glfw.Key) imui.Key {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return imui.Key0 + imui.Key(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return imui.KeyA + imui.Key(key-glfw.KeyA)
	}
	switch key {
	case glfw.KeyTab:
		return imui.KeyTab
	case glfw.KeyLeft:
		return imui.KeyLeft
	case glfw.KeyRight:
		return imui.KeyRight
	case glfw.KeyUp:
		return imui.KeyUp
	case glfw.KeyDown:
		return imui.KeyDown
	case glfw.KeyPageUp:
		return imui.KeyPageUp
	case glfw.KeyPageDown:
		return imui.KeyPageDown
	case glfw.KeyHome:
		return imui.KeyHome
	case glfw.KeyEnd:
		return imui.KeyEnd
	case glfw.KeyInsert:
		return imui.KeyInsert
	case glfw.KeyDelete:
		return imui.KeyDelete
	case glfw.KeyBackspace:
		return imui.KeyBackspace
	case glfw.KeySpace:
		return imui.KeySpace
	case glfw.KeyEnter:
		return imui.KeyEnter
	case glfw.KeyEscape:
		return imui.KeyEscape
	case glfw.KeyLeftShift:
		return imui.KeyLeftShift
	case glfw.KeyRightShift:
		return imui.KeyRightShift
	case glfw.KeyLeftControl:
		return imui.KeyLeftControl
	case glfw.KeyRightControl:
		return imui.KeyRightControl
	case glfw.KeyLeftAlt:
		return imui.KeyLeftAlt
	case glfw.KeyRightAlt:
		return imui.KeyRightAlt
	case glfw.KeyF1:
		return imui.KeyF1
	case glfw.KeyF2:
		return imui.KeyF2
	case glfw.KeyF3:
		return imui.KeyF3
	case glfw.KeyF4:
		return imui.KeyF4
	case glfw.KeyF5:
		return imui.KeyF5
	case glfw.KeyF6:
		return imui.KeyF6
	case glfw.KeyF7:
		return imui.KeyF7
	case glfw.KeyF8:
		return imui.KeyF8
	case glfw.KeyF9:
		return imui.KeyF9
	case glfw.KeyF10:
		return imui.KeyF10
	case glfw.KeyF11:
		return imui.KeyF11
	case glfw.KeyF12:
		return imui.KeyF12
	default:
		return imui.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons to imui buttons.
func glfwMouseButton(button glfw.MouseButton) imui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imui.MouseButtonMiddle
	default:
		return -1
	}
}
