package imui_test

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/imui"
)

func tick(in *imui.Input, push func()) {
	in.Begin()
	push()
	in.End()
}

func TestInput_KeyEdges(t *testing.T) {
	in := imui.NewInput()

	tick(in, func() { in.PushKeyDown(imui.KeyTab) })
	if !in.IsKeyDown(imui.KeyTab) || !in.HasKeyPressed(imui.KeyTab) || in.HasKeyReleased(imui.KeyTab) {
		t.Error("tick 1: key should be down and pressed")
	}

	tick(in, func() {})
	if !in.IsKeyDown(imui.KeyTab) || in.HasKeyPressed(imui.KeyTab) {
		t.Error("tick 2: key should stay down without a new press edge")
	}

	tick(in, func() { in.PushKeyUp(imui.KeyTab) })
	if !in.IsKeyUp(imui.KeyTab) || !in.HasKeyReleased(imui.KeyTab) {
		t.Error("tick 3: key should be released")
	}

	tick(in, func() {})
	if in.HasKeyReleased(imui.KeyTab) {
		t.Error("tick 4: release edge should last one tick")
	}
}

func TestInput_PressAndReleaseInOneTick(t *testing.T) {
	in := imui.NewInput()
	tick(in, func() {
		in.PushKeyDown(imui.KeyLeft)
		in.PushKeyUp(imui.KeyLeft)
	})
	// level-triggered: only the final state of the tick counts
	if in.IsKeyDown(imui.KeyLeft) || in.HasKeyPressed(imui.KeyLeft) {
		t.Error("a key released within the tick should not be reported")
	}
}

func TestInput_KeyRepeat(t *testing.T) {
	in := imui.NewInput()

	tick(in, func() { in.PushKeyDown(imui.KeyDown) })
	if !in.HasKeyRepeat(imui.KeyDown) {
		t.Error("initial press should count as repeat")
	}
	tick(in, func() {})
	if in.HasKeyRepeat(imui.KeyDown) {
		t.Error("held key without a repeat event should not repeat")
	}
	tick(in, func() { in.PushKeyRepeat(imui.KeyDown) })
	if !in.HasKeyRepeat(imui.KeyDown) || in.HasKeyPressed(imui.KeyDown) {
		t.Error("repeat event should repeat without a press edge")
	}
}

func TestInput_InvalidKeys(t *testing.T) {
	in := imui.NewInput()
	tick(in, func() {
		in.PushKeyDown(imui.KeyCount)
		in.PushKeyDown(imui.Key(-1))
		in.PushMouseDown(imui.MouseButtonCount)
	})
	if in.IsKeyDown(imui.KeyCount) || in.IsKeyUp(imui.KeyNone) || in.IsMouseDown(imui.MouseButtonCount) {
		t.Error("out of range keys and buttons should be ignored")
	}
}

func TestInput_Mouse(t *testing.T) {
	in := imui.NewInput()

	tick(in, func() {
		in.PushMousePos(10, 20)
		in.PushMouseDown(imui.MouseButtonLeft)
		in.PushScrollDelta(0, 1)
	})
	if !in.HasMousePressed(imui.MouseButtonLeft) || !in.IsMouseDown(imui.MouseButtonLeft) {
		t.Error("left button should be pressed")
	}
	if in.ScrollDelta() != (imui.Vec2{Y: 1}) {
		t.Errorf("scroll delta = %v", in.ScrollDelta())
	}

	tick(in, func() {
		in.PushMouseDelta(5, -5)
		in.PushMouseUp(imui.MouseButtonLeft)
	})
	if in.MousePos() != (imui.Vec2{X: 15, Y: 15}) || in.MouseDelta() != (imui.Vec2{X: 5, Y: -5}) {
		t.Errorf("pos %v delta %v", in.MousePos(), in.MouseDelta())
	}
	if !in.HasMouseReleased(imui.MouseButtonLeft) || !in.IsMouseUp(imui.MouseButtonLeft) {
		t.Error("left button should be released")
	}
	if in.ScrollDelta() != (imui.Vec2{}) || in.Scroll() != (imui.Vec2{Y: 1}) {
		t.Errorf("scroll %v delta %v", in.Scroll(), in.ScrollDelta())
	}

	tick(in, func() { in.PushScroll(3, 4) })
	if in.ScrollDelta() != (imui.Vec2{X: 3, Y: 3}) {
		t.Errorf("absolute scroll delta = %v", in.ScrollDelta())
	}
}

func TestInput_Text(t *testing.T) {
	in := imui.NewInput()

	tick(in, func() {
		in.PushText("hé")
		in.PushChar('✓')
	})
	if got := string(in.Text()); got != "hé✓" {
		t.Errorf("Text() = %q", got)
	}

	long := strings.Repeat("x", 200)
	tick(in, func() {
		for i := 0; i < len(long); i += 50 {
			in.PushText(long[i : i+50])
		}
	})
	if got := string(in.Text()); got != long {
		t.Errorf("long text has %d bytes, want %d", len(got), len(long))
	}

	tick(in, func() {})
	if len(in.Text()) != 0 {
		t.Error("text should be cleared by the next tick")
	}
}

func TestInput_TickDiscipline(t *testing.T) {
	in := imui.NewInput()
	in.Begin()
	expectUsagePanic(t, imui.ErrFrameState, in.Begin)
	in.End()
	expectUsagePanic(t, imui.ErrFrameState, in.End)
}

func TestKeyName(t *testing.T) {
	if imui.KeyName(imui.KeyTab) == "" || imui.KeyName(imui.KeyF12) == "" {
		t.Error("known keys should have names")
	}
}
