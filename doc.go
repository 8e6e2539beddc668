/*
Package imui provides the core of an immediate-mode GUI: per-frame widget
tree construction, layout resolution and draw data generation.

# Overview

The application declares its whole UI every frame. Each widget is matched
against the widget with the same identity in the previous frame, so its
rectangle and any attached state carry over even though the tree is rebuilt
from scratch. After a window is ended its tree is laid out, and after a
surface is ended the draw elements of its windows are flattened into one
renderer-agnostic vertex, index and command stream.

Rendering is left to the application; backend/opengl is one implementation.

# Quick Start

	ui, _ := imui.New()
	font, _ := imui.LoadFont("goregular", goregular.TTF, 16, nil)

	for !window.ShouldClose() {
	    input.Poll() // pushes platform events into ui.Input()

	    frame := ui.BeginFrame()
	    surface := frame.BeginSurface("main", imui.Vec2{X: 800, Y: 600}, 1)

	    win := surface.BeginWindow("panel", imui.Rect{W: 300, H: 400}, 0)
	    win.Root().SetLayout(imui.VerticalLayout{Spacing: 4})
	    win.WidgetNamed("title", func(w *imui.Widget) {
	        l := win.TextLayout(font, "Hello")
	        w.SetPrefSize(l.Size.X, font.LineHeight())
	        win.DrawText(l, w.Rect().Pos(), imui.ColorWhite)
	    })
	    if err := win.End(); err != nil {
	        // the arena limit was reached, the window was not laid out
	    }

	    imui.RenderSurface(surface, renderer)
	    ui.EndFrame()
	}

# Frame Protocol

Calls nest strictly:

	BeginFrame
	    BeginSurface          once per name and frame
	        BeginWindow       once per name and surface, not nested
	            BeginWidget / EndWidget, nested freely
	        Window.End        resolves the layout
	    Surface.End           sorts windows by z and emits draw data
	EndFrame

Breaking the nesting, beginning a name twice or calling outside a frame
panics with a *UsageError. Surfaces and windows not begun during a frame are
removed at its end.

# Widget Identity

A widget is identified by its id and its parent. BeginWidget numbers
siblings (previous sibling id plus one), BeginWidgetID takes an explicit id
and BeginWidgetNamed hashes a name. Named widgets keep their identity when
siblings are inserted or removed; auto-numbered ones do not.

State attached to a widget (State, AllocState, SetScrollOffset) lives as long
as the widget is declared every frame. Skipping a single frame drops it.

While a window is being built, Widget.Rect returns the rectangle from the
previous frame. This is the usual one frame of latency of immediate-mode
layout: hit testing and drawing use last frame's geometry.

# Layout

Every widget has a margin (outside), padding (inside), min, max and
preferred size, per-axis stretch factors and an alignment. Its Layout
arranges the children:

	StackLayout       children overlap and fill the inner rect
	ScrollLayout      a stack moved by the scroll offset, sized without its content
	HorizontalLayout  children left to right
	VerticalLayout    children top to bottom
	GridLayout        row-major cells sized by the largest child per track

In linear layouts each child gets its measured size plus a share of the
remaining space proportional to its stretch factor. The remaining space may
be negative, shrinking stretched children. The final size is clamped to
[min, max], so SetFixedSize pins a widget regardless of stretch.

# Draw Data

Draw elements are recorded per window and emitted in window z order
(stable for equal z). Consecutive geometry with the same primitive and
texture shares one DrawCommand. The vertex layout (VertexFormat) and quad
topology (Topology) are fixed when the Context is created.

# Memory

Widgets come from a chunked arena with three generations: the frame being
built, the previous frame (read by identity matching) and free chunks. A
Context configured with WithMaxChunks stops allocating at the limit; further
Begin calls return nil widgets, which accept every call, and the error is
reported by Window.End, Surface.End and EndFrame.

Text layouts and interned names are kept while they are used every frame.
*/
package imui
