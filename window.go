package imui

// Window is a z-ordered region of a Surface holding one widget tree and the
// draw elements recorded while building it. Windows persist across frames by
// name; a window not begun in a frame is removed when its surface ends.
type Window struct {
	ctx     *Context
	surface *Surface
	name    string
	rect    Rect
	z       int
	order   int // begin order within the surface this frame

	root     *Widget
	lastRoot *Widget
	current  *Widget
	hasher   *structHasher

	elements []element

	open          bool
	used          bool
	layoutChanged bool
	err           error
}

// BeginWindow opens the window called name, creating it on first use.
// Windows are not nested; each name may be begun once per frame.
func (s *Surface) BeginWindow(name string, rect Rect, z int) *Window {
	s.checkOpen("Surface.BeginWindow")
	if s.window != nil {
		usagePanic("Surface.BeginWindow", ErrStackDiscipline,
			"window %q begun while window %q is open", name, s.window.name)
	}
	ctx := s.ctx

	win := s.findWindow(name)
	switch {
	case win == nil:
		win = &Window{
			ctx:     ctx,
			surface: s,
			name:    ctx.interner.Intern(name),
			hasher:  newStructHasher(),
		}
		s.windows = append(s.windows, win)
		ctx.logger.Debug("window created", "surface", s.name, "window", win.name)
	case win.used:
		usagePanic("Surface.BeginWindow", ErrDuplicateName,
			"window %q begun twice in surface %q", name, s.name)
	}
	// keep the canonical name alive in the interner
	ctx.interner.Intern(win.name)

	win.rect = rect
	win.z = z
	win.order = s.windowOrder
	s.windowOrder++
	win.used = true
	win.open = true
	win.err = nil
	win.elements = win.elements[:0]
	win.layoutChanged = false

	win.lastRoot = nil
	if r := win.root; r != nil && r.frame+1 == ctx.frame {
		win.lastRoot = r
	}
	win.root = nil
	win.current = nil

	root, err := ctx.arena.alloc()
	if err != nil {
		win.fail(err)
		s.window = win
		return win
	}
	root.init(win, 0, win.name, true)
	root.SetFixedSize(rect.W, rect.H)
	root.rect = rect
	if win.lastRoot != nil {
		root.adopt(win.lastRoot)
		root.rect = rect
	}
	win.root = root
	win.current = root
	s.window = win
	return win
}

// End closes the window and resolves the layout of its tree. Any widget
// still open is a usage error. The returned error is the first allocation
// failure of the window, in which case the tree is incomplete and the layout
// is skipped.
func (win *Window) End() error {
	win.checkOpen("Window.End")
	s := win.surface
	if win.current != win.root {
		usagePanic("Window.End", ErrStackDiscipline,
			"window %q ended with widget %d still open", win.name, win.current.id)
	}
	win.open = false
	s.window = nil
	if win.err != nil {
		return win.err
	}

	root := win.root
	win.closeWidget(root)
	win.layoutChanged = win.lastRoot == nil || win.lastRoot.hash != root.hash
	if win.layoutChanged && debugEnabled(win.ctx.logger) {
		win.ctx.logger.Debug("window layout changed",
			"surface", s.name, "window", win.name, "frame", win.ctx.frame)
	}
	resolveLayout(root, win.rect)
	return nil
}

// Name returns the interned window name.
func (win *Window) Name() string { return win.name }

// Rect returns the window rectangle.
func (win *Window) Rect() Rect { return win.rect }

// Z returns the z-order; higher values are drawn later.
func (win *Window) Z() int { return win.z }

// Surface returns the surface the window belongs to.
func (win *Window) Surface() *Surface { return win.surface }

// Root returns the root widget, which always covers the window rectangle.
func (win *Window) Root() *Widget { return win.root }

// Current returns the innermost open widget.
func (win *Window) Current() *Widget { return win.current }

// LayoutChanged reports whether the structural hash of the tree differs
// from the previous frame. Valid after End.
func (win *Window) LayoutChanged() bool { return win.layoutChanged }

// Err returns the first allocation failure of this frame.
func (win *Window) Err() error { return win.err }

// Input returns the input of the owning context.
func (win *Window) Input() *Input { return win.ctx.input }

// TextLayout returns the cached layout of text in f.
func (win *Window) TextLayout(f *Font, text string) *TextLayout {
	return win.ctx.text.Layout(f, text)
}

func (win *Window) checkOpen(op string) {
	if !win.open {
		usagePanic(op, ErrFrameState, "window %q is not open", win.name)
	}
}

// fail records err on the window and its owners. Only the first failure is
// kept.
func (win *Window) fail(err error) {
	if win.err == nil {
		win.err = err
	}
	win.surface.fail(err)
}
