package imui

import (
	"fmt"
	"math"
	"strings"
)

// Topology selects how quads are written into the draw data. It is fixed at
// Context creation.
type Topology uint8

const (
	VertexList   Topology = iota // 6 vertices per quad
	VertexStrip                  // 4 vertices per quad, degenerate vertices between quads
	IndexedList                  // 4 vertices and 6 indices per quad
	IndexedStrip                 // 4 vertices and 4 indices per quad, degenerate indices between quads
)

// Indexed reports whether the topology writes an index buffer.
func (t Topology) Indexed() bool { return t == IndexedList || t == IndexedStrip }

// Strip reports whether quads are written as triangle strips.
func (t Topology) Strip() bool { return t == VertexStrip || t == IndexedStrip }

var topologyNames = [...]string{
	VertexList:   "vertex_list",
	VertexStrip:  "vertex_strip",
	IndexedList:  "indexed_list",
	IndexedStrip: "indexed_strip",
}

func (t Topology) String() string {
	if int(t) < len(topologyNames) {
		return topologyNames[t]
	}
	return fmt.Sprintf("Topology(%d)", t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses names such as "indexed_list".
func (t *Topology) UnmarshalText(b []byte) error {
	i := indexOf(topologyNames[:], strings.ToLower(strings.TrimSpace(string(b))))
	if i < 0 {
		return fmt.Errorf("imui: unknown topology %q", b)
	}
	*t = Topology(i)
	return nil
}

// Primitive is the primitive type of a draw command.
type Primitive uint8

const (
	PrimitiveTriangles Primitive = iota
	PrimitiveTriangleStrip
	PrimitiveLines
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveTriangles:
		return "triangles"
	case PrimitiveTriangleStrip:
		return "triangle_strip"
	case PrimitiveLines:
		return "lines"
	}
	return fmt.Sprintf("Primitive(%d)", p)
}

// Skin is a texture region drawn as nine slices: the corners keep their
// size, the edges stretch along one axis and the center along both.
type Skin struct {
	Texture TextureID
	UV      Rect      // region of the texture holding the whole skin
	Border  Thickness // border size in pixels on screen
	// UVBorder is the border size in texture coordinates. Zero edges map
	// the on-screen border to the full UV region proportionally.
	UVBorder Thickness
	Hollow   bool // skip the center slice
}

// element is one recorded draw element of a window.
type element interface {
	emit(b *drawBuilder)
}

type lineElement struct {
	from, to Vec2
	width    float32
	color    Color
}

type rectElement struct {
	rect    Rect
	texture TextureID
	uv      Rect
	color   Color
}

type skinElement struct {
	rect  Rect
	skin  Skin
	color Color
}

// DrawLine records a line. Lines up to one pixel wide are emitted as line
// primitives, wider ones as quads.
func (win *Window) DrawLine(from, to Vec2, width float32, c Color) {
	if invisible(c) {
		return
	}
	win.elements = append(win.elements, lineElement{from: from, to: to, width: width, color: c})
}

// DrawRect records a filled rectangle.
func (win *Window) DrawRect(r Rect, c Color) {
	win.DrawTexturedRect(r, 0, Rect{}, c)
}

// DrawTexturedRect records a rectangle sampling uv from tex, tinted by c.
func (win *Window) DrawTexturedRect(r Rect, tex TextureID, uv Rect, c Color) {
	if invisible(c) {
		return
	}
	win.elements = append(win.elements, rectElement{rect: r, texture: tex, uv: uv, color: c})
}

// DrawRectOutline records the four edges of r as rectangles.
func (win *Window) DrawRectOutline(r Rect, thickness float32, c Color) {
	win.DrawRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, c)
	win.DrawRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, c)
	win.DrawRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, c)
	win.DrawRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, c)
}

// DrawSkin records a nine-slice skin stretched over r.
func (win *Window) DrawSkin(r Rect, s Skin, c Color) {
	if invisible(c) {
		return
	}
	win.elements = append(win.elements, skinElement{rect: r, skin: s, color: c})
}

// DrawText records one textured rectangle per visible glyph of l with the
// layout origin at pos.
func (win *Window) DrawText(l *TextLayout, pos Vec2, c Color) {
	if l == nil || invisible(c) {
		return
	}
	tex := l.Font.Texture()
	for _, g := range l.Glyphs {
		if g.Size.X <= 0 || g.Size.Y <= 0 {
			continue
		}
		r := Rect{X: pos.X + g.Pos.X, Y: pos.Y + g.Pos.Y, W: g.Size.X, H: g.Size.Y}
		win.elements = append(win.elements, rectElement{rect: r, texture: tex, uv: g.UV, color: c})
	}
}

// DrawWidgetRect fills the border box of w. During construction this is the
// rectangle of the previous frame.
func (win *Window) DrawWidgetRect(w *Widget, c Color) {
	if w == nil {
		return
	}
	win.DrawRect(w.rect, c)
}

// ElementCount returns the number of recorded draw elements.
func (win *Window) ElementCount() int { return len(win.elements) }

func invisible(c Color) bool { return c>>24 == 0 }

func (e lineElement) emit(b *drawBuilder) {
	if e.width <= 1 {
		b.line(vertex{pos: e.from, color: e.color}, vertex{pos: e.to, color: e.color})
		return
	}
	dx, dy := e.to.X-e.from.X, e.to.Y-e.from.Y
	l := float32(1)
	if dx != 0 || dy != 0 {
		l = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	// normal perpendicular to the line
	nx := -dy * l * e.width * 0.5
	ny := dx * l * e.width * 0.5
	b.quad(0, [4]vertex{
		{pos: Vec2{X: e.from.X + nx, Y: e.from.Y + ny}, color: e.color},
		{pos: Vec2{X: e.to.X + nx, Y: e.to.Y + ny}, color: e.color},
		{pos: Vec2{X: e.to.X - nx, Y: e.to.Y - ny}, color: e.color},
		{pos: Vec2{X: e.from.X - nx, Y: e.from.Y - ny}, color: e.color},
	})
}

func (e rectElement) emit(b *drawBuilder) {
	b.rect(e.rect, e.texture, e.uv, e.color)
}

func (e skinElement) emit(b *drawBuilder) {
	s := e.skin
	r := e.rect
	ub := s.UVBorder
	if ub == (Thickness{}) && r.W > 0 && r.H > 0 {
		ub = Thickness{
			Left:   s.Border.Left / r.W * s.UV.W,
			Right:  s.Border.Right / r.W * s.UV.W,
			Top:    s.Border.Top / r.H * s.UV.H,
			Bottom: s.Border.Bottom / r.H * s.UV.H,
		}
	}
	xs := [4]float32{r.X, r.X + s.Border.Left, r.X + r.W - s.Border.Right, r.X + r.W}
	ys := [4]float32{r.Y, r.Y + s.Border.Top, r.Y + r.H - s.Border.Bottom, r.Y + r.H}
	us := [4]float32{s.UV.X, s.UV.X + ub.Left, s.UV.X + s.UV.W - ub.Right, s.UV.X + s.UV.W}
	vs := [4]float32{s.UV.Y, s.UV.Y + ub.Top, s.UV.Y + s.UV.H - ub.Bottom, s.UV.Y + s.UV.H}
	for row := range 3 {
		for col := range 3 {
			if s.Hollow && row == 1 && col == 1 {
				continue
			}
			w, h := xs[col+1]-xs[col], ys[row+1]-ys[row]
			if w <= 0 || h <= 0 {
				continue
			}
			b.rect(
				Rect{X: xs[col], Y: ys[row], W: w, H: h},
				s.Texture,
				Rect{X: us[col], Y: vs[row], W: us[col+1] - us[col], H: vs[row+1] - vs[row]},
				e.color,
			)
		}
	}
}
