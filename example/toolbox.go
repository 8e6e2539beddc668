package main

import "github.com/go-theft-auto/imui"

// Spacing constants for consistent layout.
const (
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
)

// Style defines the visual appearance of the toolbox widgets.
type Style struct {
	TextColor          imui.Color
	PanelColor         imui.Color
	PanelBorderColor   imui.Color
	ButtonColor        imui.Color
	ButtonHoveredColor imui.Color
	ButtonActiveColor  imui.Color
	CheckColor         imui.Color
	SelectedBgColor    imui.Color

	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	ScrollStep    float32
}

// DefaultStyle returns a dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:          imui.RGBA(230, 230, 230, 255),
		PanelColor:         imui.RGBA(30, 32, 38, 240),
		PanelBorderColor:   imui.RGBA(80, 84, 96, 255),
		ButtonColor:        imui.RGBA(52, 58, 70, 255),
		ButtonHoveredColor: imui.RGBA(70, 78, 94, 255),
		ButtonActiveColor:  imui.RGBA(90, 120, 170, 255),
		CheckColor:         imui.RGBA(120, 200, 120, 255),
		SelectedBgColor:    imui.RGBA(60, 90, 140, 255),
		ItemSpacing:        SpaceSM,
		PanelPadding:       SpaceMD,
		ButtonPadding:      SpaceSM,
		ScrollStep:         24,
	}
}

// Toolbox is a tiny widget set built on the public imui API. Each toolbox
// carries its own style, so differently styled sets can coexist.
type Toolbox struct {
	Style Style
	Font  *imui.Font
}

// Panel opens a vertical container with a background and border; content
// builds the children.
func (t *Toolbox) Panel(win *imui.Window, name string, content func()) {
	w := win.BeginWidgetNamed(name)
	defer win.Scope(w)()
	w.SetPadding(imui.All(t.Style.PanelPadding))
	w.SetLayout(imui.VerticalLayout{Spacing: t.Style.ItemSpacing})
	w.SetStretch(1, 1)

	win.DrawWidgetRect(w, t.Style.PanelColor)
	win.DrawRectOutline(w.Rect(), 1, t.Style.PanelBorderColor)
	content()
}

// Label draws a line of text.
func (t *Toolbox) Label(win *imui.Window, text string) {
	l := win.TextLayout(t.Font, text)
	win.Widget(func(w *imui.Widget) {
		w.SetPrefSize(l.Size.X, t.Font.LineHeight())
		win.DrawText(l, w.Rect().Pos(), t.Style.TextColor)
	})
}

// Button draws a clickable button and reports whether it was pressed this
// frame.
func (t *Toolbox) Button(win *imui.Window, label string) bool {
	in := win.Input()
	l := win.TextLayout(t.Font, label)
	clicked := false
	win.WidgetNamed(label, func(w *imui.Widget) {
		w.SetPadding(imui.All(t.Style.ButtonPadding))
		w.SetPrefSize(l.Size.X+2*t.Style.ButtonPadding, t.Font.LineHeight()+2*t.Style.ButtonPadding)

		r := w.Rect()
		hovered := !w.IsNew() && r.Contains(in.MousePos())
		color := t.Style.ButtonColor
		switch {
		case hovered && in.IsMouseDown(imui.MouseButtonLeft):
			color = t.Style.ButtonActiveColor
		case hovered:
			color = t.Style.ButtonHoveredColor
		}
		clicked = hovered && in.HasMousePressed(imui.MouseButtonLeft)

		win.DrawRect(r, color)
		win.DrawText(l, w.InnerRect().Pos(), t.Style.TextColor)
	})
	return clicked
}

// checkboxState persists the toggle of a Checkbox.
type checkboxState struct {
	checked bool
}

// Checkbox draws a toggle whose state is kept by the widget itself and
// returns the current value.
func (t *Toolbox) Checkbox(win *imui.Window, label string) bool {
	in := win.Input()
	l := win.TextLayout(t.Font, label)
	var checked bool
	win.WidgetNamed(label, func(w *imui.Widget) {
		box := t.Font.LineHeight()
		w.SetLayout(imui.HorizontalLayout{Spacing: SpaceSM})
		w.SetPrefSize(box+SpaceSM+l.Size.X, box)

		st := imui.State[checkboxState](w)
		if !w.IsNew() && w.Rect().Contains(in.MousePos()) && in.HasMousePressed(imui.MouseButtonLeft) {
			st.checked = !st.checked
		}
		checked = st.checked

		mark := win.BeginWidget()
		mark.SetFixedSize(box, box)
		mark.SetPadding(imui.All(3))
		win.DrawRect(mark.Rect(), t.Style.ButtonColor)
		if checked {
			win.DrawRect(mark.InnerRect(), t.Style.CheckColor)
		}
		win.EndWidget(mark)

		win.DrawText(l, imui.Vec2{X: mark.Rect().X + box + SpaceSM, Y: w.Rect().Y}, t.Style.TextColor)
	})
	return checked
}

// listState is the keyboard selection of a ScrollList.
type listState struct {
	selected int
	active   bool
}

// ScrollList draws items in a fixed height viewport scrolled by the mouse
// wheel or the arrow keys while hovered. Only visible rows get widgets. It
// returns the index of the clicked item, or -1.
func (t *Toolbox) ScrollList(win *imui.Window, name string, height float32, items []string) int {
	in := win.Input()
	clicked := -1
	win.WidgetNamed(name, func(view *imui.Widget) {
		view.SetFixedHeight(height)
		view.SetHStretch(1)
		view.SetLayout(imui.ScrollLayout{})
		win.DrawWidgetRect(view, t.Style.PanelColor)

		step := t.Font.LineHeight()
		viewH := height
		if !view.IsNew() {
			viewH = view.InnerRect().H
		}
		off := imui.ScrollOffset(view)
		clip := newListClipper(len(items), step, viewH, off.Y)

		hovered := !view.IsNew() && view.Rect().Contains(in.MousePos())
		if hovered {
			off.Y -= in.ScrollDelta().Y * t.Style.ScrollStep
			sel := imui.State[listState](view)
			move := 0
			if in.HasKeyRepeat(imui.KeyDown) {
				move = 1
			}
			if in.HasKeyRepeat(imui.KeyUp) {
				move = -1
			}
			if move != 0 && len(items) > 0 {
				if sel.active {
					sel.selected = min(max(sel.selected+move, 0), len(items)-1)
				}
				sel.active = true
				off.Y = clip.scrollTo(sel.selected, off.Y, viewH)
			}
		}
		off.Y = min(max(off.Y, 0), clip.maxScroll(viewH))
		imui.SetScrollOffset(view, off)
		clip = newListClipper(len(items), step, viewH, off.Y)
		sel := imui.State[listState](view)

		content := win.BeginWidget()
		defer win.Scope(content)()
		content.SetLayout(imui.VerticalLayout{})
		content.SetHStretch(1)

		win.WidgetNamed("before", func(w *imui.Widget) { w.SetFixedHeight(clip.before()) })
		for i := clip.start; i < clip.end; i++ {
			row := win.BeginWidgetID(uint32(i))
			row.SetHStretch(1)
			row.SetFixedHeight(step)
			r := row.Rect()
			switch {
			case !row.IsNew() && r.Contains(in.MousePos()) && view.Rect().Contains(in.MousePos()):
				win.DrawRect(r, t.Style.SelectedBgColor)
				if in.HasMousePressed(imui.MouseButtonLeft) {
					clicked = i
					sel.selected, sel.active = i, true
				}
			case sel.active && sel.selected == i:
				win.DrawRect(r, t.Style.ButtonColor)
			}
			win.DrawText(win.TextLayout(t.Font, items[i]), r.Pos(), t.Style.TextColor)
			win.EndWidget(row)
		}
		win.WidgetNamed("after", func(w *imui.Widget) { w.SetFixedHeight(clip.after()) })
	})
	return clicked
}
