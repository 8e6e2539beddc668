package imui

// Layout is the strategy a widget uses to place its children. The variants
// are StackLayout, ScrollLayout, HorizontalLayout, VerticalLayout and
// GridLayout; a nil Layout behaves like StackLayout.
type Layout interface {
	layoutKind() layoutKind
}

type layoutKind uint8

const (
	layoutStack layoutKind = iota
	layoutScroll
	layoutHorizontal
	layoutVertical
	layoutGrid
)

// StackLayout overlaps all children, each filling the inner rect shrunk by
// its own margin.
type StackLayout struct{}

// ScrollLayout is a StackLayout whose inner rect is moved by the widget's
// scroll offset (see SetScrollOffset). Children are not clipped. The widget's
// own measured size ignores its content, which stays available through
// ContentSize as the scroll range.
type ScrollLayout struct{}

// HorizontalLayout places children left to right.
type HorizontalLayout struct {
	Spacing float32
}

// VerticalLayout places children top to bottom.
type VerticalLayout struct {
	Spacing float32
}

// GridLayout tiles children row by row into Columns columns. Each column is
// as wide as its widest child and each row as tall as its tallest child.
type GridLayout struct {
	Columns       int
	ColumnSpacing float32
	RowSpacing    float32
}

func (StackLayout) layoutKind() layoutKind      { return layoutStack }
func (ScrollLayout) layoutKind() layoutKind     { return layoutScroll }
func (HorizontalLayout) layoutKind() layoutKind { return layoutHorizontal }
func (VerticalLayout) layoutKind() layoutKind   { return layoutVertical }
func (GridLayout) layoutKind() layoutKind       { return layoutGrid }

// layoutContext is the result of the measure pass for one widget.
type layoutContext struct {
	minSize      Vec2 // border box size the widget needs, clamped to min/max
	content      Vec2 // children extent, without padding
	stretchTotal Vec2 // sum of the children's stretch factors
}

func hashLayout(s *structHasher, l Layout) {
	if l == nil {
		l = StackLayout{}
	}
	s.u32(uint32(l.layoutKind()))
	switch l := l.(type) {
	case HorizontalLayout:
		s.f32(l.Spacing)
	case VerticalLayout:
		s.f32(l.Spacing)
	case GridLayout:
		s.u32(uint32(l.Columns))
		s.f32(l.ColumnSpacing)
		s.f32(l.RowSpacing)
	}
}

// resolveLayout assigns the final rectangle of every widget below root.
// The root always takes rect.
func resolveLayout(root *Widget, rect Rect) {
	measure(root)
	root.rect = rect
	arrange(root)
}

// outerSize is the measured size of w including its margin.
func outerSize(w *Widget) Vec2 {
	return w.lctx.minSize.Add(w.margin.Size())
}

// measure aggregates the size requirements bottom-up.
func measure(w *Widget) {
	var stretch Vec2
	for c := w.firstChild; c != nil; c = c.next {
		measure(c)
		stretch = stretch.Add(c.stretch)
	}

	var content Vec2
	switch l := w.Layout().(type) {
	case HorizontalLayout:
		content = measureLinear(w, 0, l.Spacing)
	case VerticalLayout:
		content = measureLinear(w, 1, l.Spacing)
	case GridLayout:
		cols, rows := gridTracks(w, l.Columns)
		content = Vec2{
			X: sumTracks(cols, l.ColumnSpacing),
			Y: sumTracks(rows, l.RowSpacing),
		}
	default:
		for c := w.firstChild; c != nil; c = c.next {
			o := outerSize(c)
			content.X = maxf(content.X, o.X)
			content.Y = maxf(content.Y, o.Y)
		}
	}

	need := content.Add(w.padding.Size())
	if _, ok := w.Layout().(ScrollLayout); ok {
		// a viewport does not grow to its content
		need = w.padding.Size()
	}
	w.lctx = layoutContext{
		minSize: Vec2{
			X: clampf(maxf(w.prefSize.X, need.X), w.minSize.X, w.maxSize.X),
			Y: clampf(maxf(w.prefSize.Y, need.Y), w.minSize.Y, w.maxSize.Y),
		},
		content:      content,
		stretchTotal: stretch,
	}
}

// measureLinear sums the children along axis and takes the maximum across it.
func measureLinear(w *Widget, axis int, spacing float32) Vec2 {
	var content Vec2
	var along, across float32
	for c := w.firstChild; c != nil; c = c.next {
		o := outerSize(c)
		along += o.axis(axis)
		across = maxf(across, o.axis(1-axis))
	}
	if w.childCount > 1 {
		along += spacing * float32(w.childCount-1)
	}
	content.setAxis(axis, along)
	content.setAxis(1-axis, across)
	return content
}

// gridTracks returns the column widths and row heights of a grid.
func gridTracks(w *Widget, columns int) (cols, rows []float32) {
	if w.childCount == 0 {
		return nil, nil
	}
	n := max(columns, 1)
	n = min(n, w.childCount)
	cols = make([]float32, n)
	rows = make([]float32, (w.childCount+n-1)/n)
	i := 0
	for c := w.firstChild; c != nil; c = c.next {
		o := outerSize(c)
		cols[i%n] = maxf(cols[i%n], o.X)
		rows[i/n] = maxf(rows[i/n], o.Y)
		i++
	}
	return cols, rows
}

func sumTracks(tracks []float32, spacing float32) float32 {
	var s float32
	for _, t := range tracks {
		s += t
	}
	if len(tracks) > 1 {
		s += spacing * float32(len(tracks)-1)
	}
	return s
}

// arrange distributes w's inner rect among its children top-down.
func arrange(w *Widget) {
	if w.firstChild == nil {
		return
	}
	inner := w.rect.Shrink(w.padding)
	switch l := w.Layout().(type) {
	case ScrollLayout:
		inner = inner.Translate(ScrollOffset(w).Mul(-1))
		for c := w.firstChild; c != nil; c = c.next {
			placeInSlot(c, inner)
		}
	case HorizontalLayout:
		arrangeLinear(w, inner, 0, l.Spacing)
	case VerticalLayout:
		arrangeLinear(w, inner, 1, l.Spacing)
	case GridLayout:
		arrangeGrid(w, inner, l)
	default:
		for c := w.firstChild; c != nil; c = c.next {
			placeInSlot(c, inner)
		}
	}
	for c := w.firstChild; c != nil; c = c.next {
		arrange(c)
	}
}

// placeInSlot sizes and aligns c inside slot on both axes.
func placeInSlot(c *Widget, slot Rect) {
	slot = slot.Shrink(c.margin)
	pos, size := slot.Pos(), slot.Size()
	for axis := range 2 {
		p, s := alignAxis(c, axis, pos.axis(axis), size.axis(axis))
		pos.setAxis(axis, p)
		size.setAxis(axis, s)
	}
	c.rect = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// alignAxis sizes c on one axis within a span that already excludes its
// margin: stretched widgets take the span, others their measured size.
func alignAxis(c *Widget, axis int, start, span float32) (pos, size float32) {
	size = c.lctx.minSize.axis(axis)
	if c.stretch.axis(axis) > 0 {
		size = span
	}
	size = clampf(size, c.minSize.axis(axis), c.maxSize.axis(axis))
	return start + c.align.axis(axis)*(span-size), size
}

// arrangeLinear places children one after another along axis. Every child
// gets its measured size plus a share of the remaining space proportional to
// its stretch factor. The remaining space is not clamped, so it shrinks
// stretched children when the content does not fit.
func arrangeLinear(w *Widget, inner Rect, axis int, spacing float32) {
	start := inner.Pos().axis(axis)
	span := inner.Size().axis(axis)

	remaining := span
	for c := w.firstChild; c != nil; c = c.next {
		remaining -= outerSize(c).axis(axis)
	}
	if w.childCount > 1 {
		remaining -= spacing * float32(w.childCount-1)
	}
	total := w.lctx.stretchTotal.axis(axis)

	cross := 1 - axis
	crossStart := inner.Pos().axis(cross)
	crossSpan := inner.Size().axis(cross)

	cursor := start
	for c := w.firstChild; c != nil; c = c.next {
		mLead, mTrail := marginAxis(c.margin, axis)
		size := c.lctx.minSize.axis(axis)
		if st := c.stretch.axis(axis); st > 0 && total > 0 {
			size += remaining * st / total
		}
		size = clampf(size, c.minSize.axis(axis), c.maxSize.axis(axis))

		cLead, cTrail := marginAxis(c.margin, cross)
		cp, cs := alignAxis(c, cross, crossStart+cLead, crossSpan-cLead-cTrail)

		var pos, sz Vec2
		pos.setAxis(axis, cursor+mLead)
		sz.setAxis(axis, size)
		pos.setAxis(cross, cp)
		sz.setAxis(cross, cs)
		c.rect = Rect{X: pos.X, Y: pos.Y, W: sz.X, H: sz.Y}

		cursor += mLead + size + mTrail + spacing
	}
}

// arrangeGrid places each child into its cell like a stack.
func arrangeGrid(w *Widget, inner Rect, l GridLayout) {
	cols, rows := gridTracks(w, l.Columns)
	n := len(cols)
	i := 0
	y := inner.Y
	x := inner.X
	for c := w.firstChild; c != nil; c = c.next {
		col, row := i%n, i/n
		if col == 0 && row > 0 {
			y += rows[row-1] + l.RowSpacing
			x = inner.X
		}
		placeInSlot(c, Rect{X: x, Y: y, W: cols[col], H: rows[row]})
		x += cols[col] + l.ColumnSpacing
		i++
	}
}

func marginAxis(t Thickness, axis int) (lead, trail float32) {
	if axis == 0 {
		return t.Left, t.Right
	}
	return t.Top, t.Bottom
}
