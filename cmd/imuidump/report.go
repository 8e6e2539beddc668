package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-theft-auto/imui"
)

var (
	colorAccent = lipgloss.Color("36")
	colorMuted  = lipgloss.Color("245")
	colorBorder = lipgloss.Color("238")
	colorNew    = lipgloss.Color("214")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleNew    = lipgloss.NewStyle().Foreground(colorNew)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
}

func renderDrawData(d *imui.DrawData) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Draw data"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %d  %s %d  %s %d\n",
		styleMuted.Render("topology"), d.Topology,
		styleMuted.Render("stride"), d.VertexStride,
		styleMuted.Render("vertices"), d.VertexCount,
		styleMuted.Render("indices"), len(d.Indices))
	fmt.Fprintf(&b, "%s %s\n", styleMuted.Render("format"), d.Format)

	t := newTable("#", "Primitive", "Texture", "Offset", "Count")
	for i, c := range d.Commands {
		t.Row(strconv.Itoa(i), c.Primitive.String(), strconv.FormatUint(uint64(c.Texture), 10),
			strconv.Itoa(c.Offset), strconv.Itoa(c.Count))
	}
	b.WriteString(t.Render())
	return b.String()
}

func renderStats(st imui.Stats) string {
	t := newTable("Counter", "Value")
	rows := [][]string{
		{"frame", strconv.FormatUint(st.Frame, 10)},
		{"widgets", strconv.Itoa(st.Widgets)},
		{"surfaces", strconv.Itoa(st.Surfaces)},
		{"windows", strconv.Itoa(st.Windows)},
		{"chunk capacity", strconv.Itoa(st.Arena.ChunkCapacity)},
		{"chunks (total)", strconv.Itoa(st.Arena.TotalChunks)},
		{"chunks (current/previous/free)", fmt.Sprintf("%d/%d/%d", st.Arena.CurrentChunks, st.Arena.PreviousChunks, st.Arena.FreeChunks)},
		{"text layouts", strconv.Itoa(st.Text.Layouts)},
		{"text hits/misses", fmt.Sprintf("%d/%d", st.Text.Hits, st.Text.Misses)},
		{"text evictions", strconv.FormatUint(st.Text.Evictions, 10)},
		{"interned names", strconv.Itoa(st.InternedNames)},
	}
	t.Rows(rows...)
	return styleTitle.Render("Context") + "\n" + t.Render()
}

// renderTree prints one line per widget, indented by depth.
func renderTree(win *imui.Window) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Window " + win.Name()))
	if win.LayoutChanged() {
		b.WriteString(styleNew.Render("  (layout changed)"))
	}
	b.WriteString("\n")
	writeWidget(&b, win.Root(), 0)
	return b.String()
}

func writeWidget(b *strings.Builder, w *imui.Widget, depth int) {
	r := w.Rect()
	label := w.Name()
	if label == "" {
		label = "#" + strconv.FormatUint(uint64(w.ID()), 10)
	}
	fmt.Fprintf(b, "%s%s %s\n", strings.Repeat("  ", depth), label,
		styleMuted.Render(fmt.Sprintf("%s (%g,%g %gx%g)", layoutName(w.Layout()), r.X, r.Y, r.W, r.H)))
	for c := w.FirstChild(); c != nil; c = c.Next() {
		writeWidget(b, c, depth+1)
	}
}

func layoutName(l imui.Layout) string {
	switch l := l.(type) {
	case imui.HorizontalLayout:
		return "horizontal"
	case imui.VerticalLayout:
		return "vertical"
	case imui.GridLayout:
		return fmt.Sprintf("grid[%d]", l.Columns)
	case imui.ScrollLayout:
		return "scroll"
	default:
		return "stack"
	}
}
