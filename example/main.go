// Example demonstrates a minimal imui window with a panel and a few toolbox
// widgets rendered by the OpenGL backend.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/imui"
	"github.com/go-theft-auto/imui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "imui example"
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

	ui, err := imui.New()
	if err != nil {
		return fmt.Errorf("imui: %w", err)
	}
	defer ui.Close()

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, ui.VertexFormat())
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	font, err := imui.LoadFont("goregular", goregular.TTF, 16, nil)
	if err != nil {
		return err
	}
	defer font.Close()
	if err := renderer.UploadFont(font); err != nil {
		return err
	}

	input := opengl.NewGLFWInputAdapter(window, ui.Input())
	tb := &Toolbox{Style: DefaultStyle(), Font: font}

	items := make([]string, 40)
	for i := range items {
		items[i] = fmt.Sprintf("Item %02d", i)
	}
	clickCount := 0
	selected := -1

	for !window.ShouldClose() {
		input.Poll()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		frame := ui.BeginFrame()
		surface := frame.BeginSurface("main", imui.Vec2{X: float32(w), Y: float32(h)}, 1)

		win := surface.BeginWindow("panel", imui.Rect{X: 20, Y: 20, W: 320, H: 420}, 0)
		tb.Panel(win, "example", func() {
			tb.Label(win, "Hello from imui!")
			if tb.Button(win, fmt.Sprintf("Click me (%d)", clickCount)) {
				clickCount++
			}
			if tb.Checkbox(win, "Show overlay") {
				tb.Label(win, "Overlay enabled")
			}
			if i := tb.ScrollList(win, "items", 200, items); i >= 0 {
				selected = i
			}
			if selected >= 0 {
				tb.Label(win, "Selected: "+items[selected])
			}
		})
		if err := win.End(); err != nil {
			return err
		}

		overlay := surface.BeginWindow("overlay", imui.Rect{X: float32(w) - 180, Y: 20, W: 160, H: 24}, 1)
		overlay.DrawRect(overlay.Rect(), imui.RGBA(0, 0, 0, 160))
		overlay.DrawText(frame.TextLayout(renderer.Font(), fmt.Sprintf("frame %d", frame.Number())),
			imui.Vec2{X: overlay.Rect().X + 8, Y: overlay.Rect().Y + 8}, imui.ColorYellow)
		if err := overlay.End(); err != nil {
			return err
		}

		if err := imui.RenderSurface(surface, renderer); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		if err := ui.EndFrame(); err != nil {
			return err
		}

		window.SwapBuffers()
	}

	return nil
}
