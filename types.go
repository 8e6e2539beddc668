package imui

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// axis returns the component along the given axis (0 = X, 1 = Y).
func (v Vec2) axis(a int) float32 {
	if a == 0 {
		return v.X
	}
	return v.Y
}

func (v *Vec2) setAxis(a int, val float32) {
	if a == 0 {
		v.X = val
	} else {
		v.Y = val
	}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.W, Y: r.Y + r.H} }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Shrink returns the rectangle inset by t. The result is not clamped, an
// inset larger than the rectangle yields a negative size.
func (r Rect) Shrink(t Thickness) Rect {
	return Rect{
		X: r.X + t.Left,
		Y: r.Y + t.Top,
		W: r.W - t.Left - t.Right,
		H: r.H - t.Top - t.Bottom,
	}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Thickness holds per-edge insets used for margins and padding.
type Thickness struct {
	Left, Top, Right, Bottom float32
}

// All returns a Thickness with the same inset on every edge.
func All(v float32) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Symmetric returns a Thickness with horizontal inset h and vertical inset v.
func Symmetric(h, v float32) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Size returns the total horizontal and vertical inset.
func (t Thickness) Size() Vec2 {
	return Vec2{X: t.Left + t.Right, Y: t.Top + t.Bottom}
}

// TextureID is an opaque renderer-defined texture handle. Zero means untextured.
type TextureID uint64

// Color is a packed RGBA color (0xAABBGGRR, OpenGL byte order).
type Color uint32

// Color constants
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorGray        Color = 0xFF808080
	ColorDarkGray    Color = 0xFF404040
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) Color {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// Unpack extracts RGBA components from a packed color.
func (c Color) Unpack() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range. The upper bound wins when
// minVal > maxVal.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		v = minVal
	}
	if v > maxVal {
		v = maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// inf is used as the default maximum size of a widget.
var inf = float32(math.Inf(1))
