package imui

// Widget is a node of the tree a Window builds every frame. Widgets are
// allocated from the Context's arena and are valid until the end of the
// frame after the one they were built in; callers must not keep them longer.
//
// A nil *Widget is the result of a failed allocation. Every setter and
// accessor accepts a nil receiver, so construction code does not need to
// check; the failure is reported by Window.End.
type Widget struct {
	window *Window

	// tree links for the current frame
	parent     *Widget
	firstChild *Widget
	lastChild  *Widget
	prev       *Widget
	next       *Widget
	childCount int

	// identity
	id    uint32
	name  string
	named bool
	frame uint64

	// match is the same logical widget in the previous frame, nil when new.
	// matchCursor is the previous-frame child after the last matched one,
	// where the search for the next child starts.
	match       *Widget
	matchCursor *Widget
	claimed     bool
	closed      bool

	// layout inputs
	margin   Thickness
	padding  Thickness
	minSize  Vec2
	maxSize  Vec2
	prefSize Vec2
	stretch  Vec2
	align    Vec2
	layout   Layout

	// outputs
	hash   uint64
	lctx   layoutContext
	rect   Rect
	states []stateBlock
}

// Horizontal and vertical alignment fractions.
const (
	AlignStart  float32 = 0
	AlignCenter float32 = 0.5
	AlignEnd    float32 = 1
)

// BeginWidget opens a child of the current widget. Its id is the id of the
// previous sibling plus one, so inserting a widget conditionally shifts the
// identity of every later sibling. Use BeginWidgetID or BeginWidgetNamed for
// widgets that carry state.
func (win *Window) BeginWidget() *Widget {
	win.checkOpen("Window.BeginWidget")
	if win.err != nil {
		return nil
	}
	var id uint32
	if last := win.current.lastChild; last != nil {
		id = last.id + 1
	}
	return win.beginWidget(id, "", false)
}

// BeginWidgetID opens a child with an explicit id.
func (win *Window) BeginWidgetID(id uint32) *Widget {
	win.checkOpen("Window.BeginWidgetID")
	return win.beginWidget(id, "", false)
}

// BeginWidgetNamed opens a child whose id is derived from name. Named
// widgets keep their identity when siblings come and go.
func (win *Window) BeginWidgetNamed(name string) *Widget {
	win.checkOpen("Window.BeginWidgetNamed")
	return win.beginWidget(HashName(name), win.ctx.interner.Intern(name), true)
}

func (win *Window) beginWidget(id uint32, name string, named bool) *Widget {
	if win.err != nil {
		return nil
	}
	w, err := win.ctx.arena.alloc()
	if err != nil {
		win.fail(err)
		return nil
	}
	w.init(win, id, name, named)

	parent := win.current
	w.parent = parent
	if parent.lastChild == nil {
		parent.firstChild = w
	} else {
		parent.lastChild.next = w
		w.prev = parent.lastChild
	}
	parent.lastChild = w
	parent.childCount++

	w.matchPrevious()
	win.current = w
	return w
}

func (w *Widget) init(win *Window, id uint32, name string, named bool) {
	w.window = win
	w.id = id
	w.name = name
	w.named = named
	w.frame = win.ctx.frame
	w.maxSize = Vec2{X: inf, Y: inf}
}

// matchPrevious looks for the same logical widget among the children of the
// parent's previous-frame node. The search starts after the last match and
// wraps around, so widgets declared in the same order match in O(1) each.
func (w *Widget) matchPrevious() {
	pm := w.parent.match
	if pm == nil || pm.frame+1 != w.frame || pm.firstChild == nil {
		return
	}
	start := w.parent.matchCursor
	if start == nil {
		start = pm.firstChild
	}
	c := start
	for {
		if !c.claimed && c.id == w.id && (!w.named || c.name == w.name) {
			w.adopt(c)
			w.parent.matchCursor = c.next
			return
		}
		c = c.next
		if c == nil {
			c = pm.firstChild
		}
		if c == start {
			return
		}
	}
}

// adopt carries the results of the previous frame over to w.
func (w *Widget) adopt(m *Widget) {
	m.claimed = true
	w.match = m
	w.rect = m.rect
	w.lctx = m.lctx
	w.states = m.states
}

// EndWidget closes w, which must be the innermost open widget. Ending a nil
// widget does nothing.
func (win *Window) EndWidget(w *Widget) {
	if w == nil {
		return
	}
	win.checkOpen("Window.EndWidget")
	if w != win.current || w == win.root {
		usagePanic("Window.EndWidget", ErrStackDiscipline,
			"widget %d is not the innermost open widget of window %q", w.id, win.name)
	}
	win.closeWidget(w)
	win.current = w.parent
}

func (win *Window) closeWidget(w *Widget) {
	w.hash = win.hasher.hashWidget(w)
	w.closed = true
}

// Scope returns a function that ends w, meant to be deferred right after the
// begin call:
//
//	w := win.BeginWidgetNamed("list")
//	defer win.Scope(w)()
func (win *Window) Scope(w *Widget) func() {
	return func() { win.EndWidget(w) }
}

// Widget opens an auto-id child, runs fn with it and ends it, also when fn
// panics.
func (win *Window) Widget(fn func(w *Widget)) {
	w := win.BeginWidget()
	defer win.EndWidget(w)
	fn(w)
}

// WidgetNamed is Widget for a named child.
func (win *Window) WidgetNamed(name string, fn func(w *Widget)) {
	w := win.BeginWidgetNamed(name)
	defer win.EndWidget(w)
	fn(w)
}

// ID returns the widget id.
func (w *Widget) ID() uint32 {
	if w == nil {
		return 0
	}
	return w.id
}

// Name returns the interned name of a named widget.
func (w *Widget) Name() string {
	if w == nil {
		return ""
	}
	return w.name
}

// Window returns the window the widget belongs to.
func (w *Widget) Window() *Window {
	if w == nil {
		return nil
	}
	return w.window
}

func (w *Widget) Parent() *Widget {
	if w == nil {
		return nil
	}
	return w.parent
}

func (w *Widget) FirstChild() *Widget {
	if w == nil {
		return nil
	}
	return w.firstChild
}

func (w *Widget) LastChild() *Widget {
	if w == nil {
		return nil
	}
	return w.lastChild
}

// Next returns the next sibling.
func (w *Widget) Next() *Widget {
	if w == nil {
		return nil
	}
	return w.next
}

// Prev returns the previous sibling.
func (w *Widget) Prev() *Widget {
	if w == nil {
		return nil
	}
	return w.prev
}

func (w *Widget) ChildCount() int {
	if w == nil {
		return 0
	}
	return w.childCount
}

// IsNew reports whether the widget had no counterpart in the previous frame.
func (w *Widget) IsNew() bool {
	return w == nil || w.match == nil
}

// Closed reports whether EndWidget was called for w.
func (w *Widget) Closed() bool {
	return w != nil && w.closed
}

// Rect returns the border box assigned by the last layout pass. Until the
// window ends, this is the rectangle from the previous frame.
func (w *Widget) Rect() Rect {
	if w == nil {
		return Rect{}
	}
	return w.rect
}

// InnerRect returns Rect shrunk by the padding, the space offered to children.
func (w *Widget) InnerRect() Rect {
	if w == nil {
		return Rect{}
	}
	return w.rect.Shrink(w.padding)
}

// ContentSize returns the space the children asked for in the last layout
// pass, excluding padding.
func (w *Widget) ContentSize() Vec2 {
	if w == nil {
		return Vec2{}
	}
	return w.lctx.content
}

// Hash returns the structural hash computed when the widget was closed.
func (w *Widget) Hash() uint64 {
	if w == nil {
		return 0
	}
	return w.hash
}

func (w *Widget) Margin() Thickness {
	if w == nil {
		return Thickness{}
	}
	return w.margin
}

func (w *Widget) Padding() Thickness {
	if w == nil {
		return Thickness{}
	}
	return w.padding
}

func (w *Widget) MinSize() Vec2 {
	if w == nil {
		return Vec2{}
	}
	return w.minSize
}

func (w *Widget) MaxSize() Vec2 {
	if w == nil {
		return Vec2{}
	}
	return w.maxSize
}

func (w *Widget) PrefSize() Vec2 {
	if w == nil {
		return Vec2{}
	}
	return w.prefSize
}

func (w *Widget) Stretch() Vec2 {
	if w == nil {
		return Vec2{}
	}
	return w.stretch
}

func (w *Widget) Align() Vec2 {
	if w == nil {
		return Vec2{}
	}
	return w.align
}

// Layout returns the strategy used for the children, StackLayout when unset.
func (w *Widget) Layout() Layout {
	if w == nil || w.layout == nil {
		return StackLayout{}
	}
	return w.layout
}

// SetMargin sets the space kept free around the widget.
func (w *Widget) SetMargin(t Thickness) {
	if w != nil {
		w.margin = t
	}
}

// SetPadding sets the space between the widget's border and its children.
func (w *Widget) SetPadding(t Thickness) {
	if w != nil {
		w.padding = t
	}
}

func (w *Widget) SetMinSize(width, height float32) {
	if w != nil {
		w.minSize = Vec2{X: width, Y: height}
	}
}

// SetMaxSize limits the size; +Inf means unbounded.
func (w *Widget) SetMaxSize(width, height float32) {
	if w != nil {
		w.maxSize = Vec2{X: width, Y: height}
	}
}

// SetPrefSize sets the size the widget asks for when it does not stretch.
func (w *Widget) SetPrefSize(width, height float32) {
	if w != nil {
		w.prefSize = Vec2{X: width, Y: height}
	}
}

// SetFixedSize pins min, max and preferred size to the same value, making
// the widget immune to stretching.
func (w *Widget) SetFixedSize(width, height float32) {
	w.SetFixedWidth(width)
	w.SetFixedHeight(height)
}

func (w *Widget) SetFixedWidth(width float32) {
	if w != nil {
		w.minSize.X, w.maxSize.X, w.prefSize.X = width, width, width
	}
}

func (w *Widget) SetFixedHeight(height float32) {
	if w != nil {
		w.minSize.Y, w.maxSize.Y, w.prefSize.Y = height, height, height
	}
}

// SetStretch sets the weights used to share free space with siblings. Zero
// keeps the measured size on that axis.
func (w *Widget) SetStretch(x, y float32) {
	if w != nil {
		w.stretch = Vec2{X: x, Y: y}
	}
}

func (w *Widget) SetHStretch(x float32) {
	if w != nil {
		w.stretch.X = x
	}
}

func (w *Widget) SetVStretch(y float32) {
	if w != nil {
		w.stretch.Y = y
	}
}

// SetAlign positions the widget inside its slot when it is smaller than the
// slot: 0 is start, 0.5 center, 1 end.
func (w *Widget) SetAlign(x, y float32) {
	if w != nil {
		w.align = Vec2{X: x, Y: y}
	}
}

func (w *Widget) SetHAlign(x float32) {
	if w != nil {
		w.align.X = x
	}
}

func (w *Widget) SetVAlign(y float32) {
	if w != nil {
		w.align.Y = y
	}
}

// SetLayout selects how the children are arranged.
func (w *Widget) SetLayout(l Layout) {
	if w != nil {
		w.layout = l
	}
}
