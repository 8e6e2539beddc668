package imui

import "unicode/utf8"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// inputSnapshot is the level-triggered state of one tick.
type inputSnapshot struct {
	keys     [KeyCount]bool
	mouse    [MouseButtonCount]bool
	mousePos Vec2
	scroll   Vec2
}

// inlineTextSize is the text capacity kept inside Input before the buffer
// moves to the heap.
const inlineTextSize = 64

// textBuffer collects typed UTF-8 text for one tick. Short input stays in
// the inline array; longer input grows a heap slice by doubling.
type textBuffer struct {
	inline [inlineTextSize]byte
	buf    []byte
}

func (t *textBuffer) reset() {
	if cap(t.buf) > inlineTextSize {
		// drop the heap buffer of the previous tick
		t.buf = nil
	}
	if t.buf == nil {
		t.buf = t.inline[:0]
	}
	t.buf = t.buf[:0]
}

func (t *textBuffer) append(p []byte) {
	if t.buf == nil {
		t.buf = t.inline[:0]
	}
	need := len(t.buf) + len(p)
	if need > cap(t.buf) {
		n := cap(t.buf) * 2
		for n < need {
			n *= 2
		}
		grown := make([]byte, len(t.buf), n)
		copy(grown, t.buf)
		t.buf = grown
	}
	t.buf = append(t.buf, p...)
}

// Input is the double-buffered input state of a Context. The host pushes
// platform events between Begin and End once per tick; widgets read the
// result afterwards. Edge-triggered queries (pressed/released) compare the
// current snapshot with the one of the previous tick, there is no event queue.
type Input struct {
	current inputSnapshot
	last    inputSnapshot
	repeat  [KeyCount]bool
	text    textBuffer
	open    bool
}

// NewInput creates an empty input buffer.
func NewInput() *Input {
	in := &Input{}
	in.text.reset()
	return in
}

// Begin starts a new tick: the current snapshot becomes the previous one and
// the per-tick text and repeat flags are cleared.
func (in *Input) Begin() {
	if in.open {
		usagePanic("Input.Begin", ErrFrameState, "input tick already open")
	}
	in.last = in.current
	in.repeat = [KeyCount]bool{}
	in.text.reset()
	in.open = true
}

// End closes the push phase of the tick.
func (in *Input) End() {
	if !in.open {
		usagePanic("Input.End", ErrFrameState, "no input tick open")
	}
	in.open = false
}

// PushKeyDown records a key press.
func (in *Input) PushKeyDown(key Key) {
	if validKey(key) {
		in.current.keys[key] = true
	}
}

// PushKeyUp records a key release.
func (in *Input) PushKeyUp(key Key) {
	if validKey(key) {
		in.current.keys[key] = false
	}
}

// PushKeyRepeat records an auto-repeat event from the platform.
func (in *Input) PushKeyRepeat(key Key) {
	if validKey(key) {
		in.current.keys[key] = true
		in.repeat[key] = true
	}
}

// PushText appends typed UTF-8 text.
func (in *Input) PushText(s string) {
	in.text.append([]byte(s))
}

// PushChar appends a single typed character.
func (in *Input) PushChar(r rune) {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	in.text.append(b[:n])
}

// PushMouseDown records a mouse button press.
func (in *Input) PushMouseDown(button MouseButton) {
	if validButton(button) {
		in.current.mouse[button] = true
	}
}

// PushMouseUp records a mouse button release.
func (in *Input) PushMouseUp(button MouseButton) {
	if validButton(button) {
		in.current.mouse[button] = false
	}
}

// PushMousePos sets the absolute mouse position.
func (in *Input) PushMousePos(x, y float32) {
	in.current.mousePos = Vec2{X: x, Y: y}
}

// PushMouseDelta moves the mouse position by a relative amount.
func (in *Input) PushMouseDelta(dx, dy float32) {
	in.current.mousePos = in.current.mousePos.Add(Vec2{X: dx, Y: dy})
}

// PushScroll sets the absolute scroll position.
func (in *Input) PushScroll(x, y float32) {
	in.current.scroll = Vec2{X: x, Y: y}
}

// PushScrollDelta accumulates a relative scroll amount, e.g. a wheel step.
func (in *Input) PushScrollDelta(dx, dy float32) {
	in.current.scroll = in.current.scroll.Add(Vec2{X: dx, Y: dy})
}

// IsKeyDown returns true if a key is currently held.
func (in *Input) IsKeyDown(key Key) bool {
	return validKey(key) && in.current.keys[key]
}

// IsKeyUp returns true if a key is not held.
func (in *Input) IsKeyUp(key Key) bool {
	return validKey(key) && !in.current.keys[key]
}

// HasKeyPressed returns true if a key went down this tick.
func (in *Input) HasKeyPressed(key Key) bool {
	return validKey(key) && in.current.keys[key] && !in.last.keys[key]
}

// HasKeyReleased returns true if a key went up this tick.
func (in *Input) HasKeyReleased(key Key) bool {
	return validKey(key) && !in.current.keys[key] && in.last.keys[key]
}

// HasKeyRepeat returns true on the initial press and on every platform
// repeat event. Use it for actions that repeat while a key is held.
func (in *Input) HasKeyRepeat(key Key) bool {
	return in.HasKeyPressed(key) || (validKey(key) && in.repeat[key])
}

// IsMouseDown returns true if a mouse button is currently held.
func (in *Input) IsMouseDown(button MouseButton) bool {
	return validButton(button) && in.current.mouse[button]
}

// IsMouseUp returns true if a mouse button is not held.
func (in *Input) IsMouseUp(button MouseButton) bool {
	return validButton(button) && !in.current.mouse[button]
}

// HasMousePressed returns true if a mouse button went down this tick.
func (in *Input) HasMousePressed(button MouseButton) bool {
	return validButton(button) && in.current.mouse[button] && !in.last.mouse[button]
}

// HasMouseReleased returns true if a mouse button went up this tick.
func (in *Input) HasMouseReleased(button MouseButton) bool {
	return validButton(button) && !in.current.mouse[button] && in.last.mouse[button]
}

// MousePos returns the mouse position.
func (in *Input) MousePos() Vec2 { return in.current.mousePos }

// MouseDelta returns how far the mouse moved since the previous tick.
func (in *Input) MouseDelta() Vec2 { return in.current.mousePos.Sub(in.last.mousePos) }

// Scroll returns the accumulated scroll position.
func (in *Input) Scroll() Vec2 { return in.current.scroll }

// ScrollDelta returns the scroll movement since the previous tick.
func (in *Input) ScrollDelta() Vec2 { return in.current.scroll.Sub(in.last.scroll) }

// Text returns the UTF-8 text typed this tick. The slice is only valid until
// the next Begin.
func (in *Input) Text() []byte { return in.text.buf }

func validKey(key Key) bool { return key > KeyNone && key < KeyCount }

func validButton(b MouseButton) bool { return b >= 0 && b < MouseButtonCount }

var keyNames = [KeyCount]string{
	KeyNone:         "--",
	KeyTab:          "Tab",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyInsert:       "Ins",
	KeyDelete:       "Del",
	KeyBackspace:    "Backspace",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Esc",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftControl:  "LCtrl",
	KeyRightControl: "RCtrl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= 0 && k < KeyCount:
		return keyNames[k]
	}
	return "?"
}
