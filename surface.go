package imui

import (
	"cmp"
	"slices"
)

// Surface is one render target, typically an OS window. Surfaces persist
// across frames by name and own their windows; a surface not begun in a
// frame is removed by EndFrame.
type Surface struct {
	ctx      *Context
	name     string
	size     Vec2
	dpiScale float32

	windows     []*Window
	window      *Window // open window
	windowOrder int

	builder *drawBuilder

	open bool
	used bool
	err  error
}

// BeginSurface opens the surface called name. Surfaces are not nested; each
// name may be begun once per frame.
func (f *Frame) BeginSurface(name string, size Vec2, dpiScale float32) *Surface {
	ctx := f.ctx
	ctx.checkFrame("Frame.BeginSurface")
	if ctx.surface != nil {
		usagePanic("Frame.BeginSurface", ErrStackDiscipline,
			"surface %q begun while surface %q is open", name, ctx.surface.name)
	}

	s := ctx.findSurface(name)
	switch {
	case s == nil:
		s = &Surface{
			ctx:     ctx,
			name:    ctx.interner.Intern(name),
			builder: newDrawBuilder(ctx.format, ctx.topology),
		}
		ctx.surfaces = append(ctx.surfaces, s)
		ctx.logger.Debug("surface created", "surface", s.name)
	case s.used:
		usagePanic("Frame.BeginSurface", ErrDuplicateName, "surface %q begun twice", name)
	}
	ctx.interner.Intern(s.name)

	if dpiScale <= 0 {
		dpiScale = 1
	}
	s.size = size
	s.dpiScale = dpiScale
	s.used = true
	s.open = true
	s.err = nil
	s.windowOrder = 0
	for _, w := range s.windows {
		w.used = false
	}
	ctx.surface = s
	return s
}

// End sweeps the windows that were not begun this frame, orders the rest by
// z and flattens their draw elements. The DrawData is reused by the next End
// of this surface. The error is the first allocation failure of the frame;
// the draw data is still produced from what was recorded.
func (s *Surface) End() (*DrawData, error) {
	s.checkOpen("Surface.End")
	if s.window != nil {
		usagePanic("Surface.End", ErrStackDiscipline,
			"surface %q ended while window %q is open", s.name, s.window.name)
	}
	s.open = false
	s.ctx.surface = nil

	s.windows = slices.DeleteFunc(s.windows, func(w *Window) bool {
		if !w.used {
			s.ctx.logger.Debug("window removed", "surface", s.name, "window", w.name)
		}
		return !w.used
	})
	// equal z keeps the begin order of this frame
	slices.SortStableFunc(s.windows, func(a, b *Window) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	b := s.builder
	b.begin(s.size, s.dpiScale)
	for _, w := range s.windows {
		for _, e := range w.elements {
			e.emit(b)
		}
	}
	return b.data, s.err
}

// Name returns the interned surface name.
func (s *Surface) Name() string { return s.name }

// Size returns the surface size in pixels.
func (s *Surface) Size() Vec2 { return s.size }

// DPIScale returns the scale factor given to BeginSurface.
func (s *Surface) DPIScale() float32 { return s.dpiScale }

// Windows returns the windows in draw order. The order is only final after End.
func (s *Surface) Windows() []*Window { return s.windows }

// Window returns the window called name, or nil.
func (s *Surface) Window(name string) *Window { return s.findWindow(name) }

// Err returns the first allocation failure of this frame.
func (s *Surface) Err() error { return s.err }

func (s *Surface) findWindow(name string) *Window {
	for _, w := range s.windows {
		if w.name == name {
			return w
		}
	}
	return nil
}

func (s *Surface) checkOpen(op string) {
	if !s.open {
		usagePanic(op, ErrFrameState, "surface %q is not open", s.name)
	}
}

func (s *Surface) fail(err error) {
	if s.err == nil {
		s.err = err
	}
	s.ctx.fail(err)
}
