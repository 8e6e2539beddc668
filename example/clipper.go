package main

// listClipper computes which rows of a uniformly sized list intersect the
// viewport, so only those rows need widgets.
//
//	c := newListClipper(len(items), rowStep, viewHeight, scrollY)
//	for i := c.start; i < c.end; i++ { ... }
type listClipper struct {
	start int // first visible row (inclusive)
	end   int // last visible row (exclusive)
	step  float32
	total int
}

// newListClipper returns the visible range for total rows spaced step apart.
// One extra row on each side covers partially visible rows.
func newListClipper(total int, step, viewHeight, scrollY float32) listClipper {
	if total == 0 || step <= 0 {
		return listClipper{step: step, total: total}
	}
	start := max(int(scrollY/step), 0)
	end := start + int(viewHeight/step) + 2
	return listClipper{
		start: min(start, total),
		end:   min(end, total),
		step:  step,
		total: total,
	}
}

// before is the height taken by the rows above the visible range.
func (c listClipper) before() float32 {
	return float32(c.start) * c.step
}

// after is the height taken by the rows below the visible range.
func (c listClipper) after() float32 {
	return float32(c.total-c.end) * c.step
}

// maxScroll is the largest useful scroll offset for a viewport.
func (c listClipper) maxScroll(viewHeight float32) float32 {
	return max(float32(c.total)*c.step-viewHeight, 0)
}

// scrollTo returns the offset that brings row idx into view, or current when
// it is already visible.
func (c listClipper) scrollTo(idx int, current, viewHeight float32) float32 {
	if idx < 0 || idx >= c.total {
		return current
	}
	top := float32(idx) * c.step
	bottom := top + c.step
	switch {
	case top < current:
		return top
	case bottom > current+viewHeight:
		return bottom - viewHeight
	}
	return current
}
