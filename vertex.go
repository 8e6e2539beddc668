package imui

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Semantic is the meaning of one vertex attribute.
type Semantic uint8

const (
	SemanticScreenPos Semantic = iota // pixel position, origin top-left
	SemanticClipPos                   // normalized device position, y up
	SemanticUV                        // texture coordinate
	SemanticColor                     // vertex color
)

// ElementType is the numeric type and component count of an attribute.
type ElementType uint8

const (
	Float1 ElementType = iota
	Float2
	Float3
	Float4
	Int1
	Int2
	Int3
	Int4
	UInt1
	UInt2
	UInt3
	UInt4
)

// Components returns the number of components, 1 to 4.
func (t ElementType) Components() int {
	return int(t%4) + 1
}

// Size returns the encoded size in bytes. Every component takes four bytes.
func (t ElementType) Size() int {
	return t.Components() * 4
}

func (t ElementType) isFloat() bool { return t <= Float4 }
func (t ElementType) isInt() bool   { return t >= Int1 && t <= Int4 }
func (t ElementType) valid() bool   { return t <= UInt4 }

// VertexElement is one attribute of the vertex format.
type VertexElement struct {
	Semantic Semantic
	Type     ElementType
}

// VertexFormat is the ordered attribute list written for every vertex.
type VertexFormat []VertexElement

// DefaultVertexFormat matches the OpenGL backend: screen position, UV and a
// packed 0xAABBGGRR color, 20 bytes per vertex.
var DefaultVertexFormat = VertexFormat{
	{Semantic: SemanticScreenPos, Type: Float2},
	{Semantic: SemanticUV, Type: Float2},
	{Semantic: SemanticColor, Type: UInt1},
}

// Stride returns the size of one encoded vertex.
func (f VertexFormat) Stride() int {
	n := 0
	for _, e := range f {
		n += e.Type.Size()
	}
	return n
}

// Offset returns the byte offset of the first element with semantic s.
func (f VertexFormat) Offset(s Semantic) (int, bool) {
	n := 0
	for _, e := range f {
		if e.Semantic == s {
			return n, true
		}
		n += e.Type.Size()
	}
	return 0, false
}

// Validate checks that the format is non-empty and every element is known.
func (f VertexFormat) Validate() error {
	if len(f) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalidVertexFormat)
	}
	for i, e := range f {
		if e.Semantic > SemanticColor {
			return fmt.Errorf("%w: element %d: unknown semantic %d", ErrInvalidVertexFormat, i, e.Semantic)
		}
		if !e.Type.valid() {
			return fmt.Errorf("%w: element %d: unknown type %d", ErrInvalidVertexFormat, i, e.Type)
		}
	}
	return nil
}

var semanticNames = [...]string{
	SemanticScreenPos: "screen_pos",
	SemanticClipPos:   "clip_pos",
	SemanticUV:        "uv",
	SemanticColor:     "color",
}

var typeNames = [...]string{
	Float1: "float1", Float2: "float2", Float3: "float3", Float4: "float4",
	Int1: "int1", Int2: "int2", Int3: "int3", Int4: "int4",
	UInt1: "uint1", UInt2: "uint2", UInt3: "uint3", UInt4: "uint4",
}

func (s Semantic) String() string {
	if int(s) < len(semanticNames) {
		return semanticNames[s]
	}
	return fmt.Sprintf("Semantic(%d)", s)
}

func (t ElementType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("ElementType(%d)", t)
}

// String formats the element as "semantic:type", e.g. "uv:float2".
func (e VertexElement) String() string {
	return e.Semantic.String() + ":" + e.Type.String()
}

// MarshalText implements encoding.TextMarshaler.
func (e VertexElement) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses the "semantic:type" form used in config files.
func (e *VertexElement) UnmarshalText(b []byte) error {
	sem, typ, ok := strings.Cut(strings.ToLower(strings.TrimSpace(string(b))), ":")
	if !ok {
		return fmt.Errorf("%w: %q: want semantic:type", ErrInvalidVertexFormat, b)
	}
	si := indexOf(semanticNames[:], sem)
	ti := indexOf(typeNames[:], typ)
	if si < 0 || ti < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidVertexFormat, b)
	}
	*e = VertexElement{Semantic: Semantic(si), Type: ElementType(ti)}
	return nil
}

func indexOf(names []string, s string) int {
	for i, n := range names {
		if n == s {
			return i
		}
	}
	return -1
}

// vertex is the format-independent form of one emitted vertex.
type vertex struct {
	pos   Vec2
	uv    Vec2
	color Color
}

// vertexEncoder appends vertices in a VertexFormat.
type vertexEncoder struct {
	format VertexFormat
	stride int
	size   Vec2 // surface size for clip-space conversion
}

func newVertexEncoder(f VertexFormat) vertexEncoder {
	return vertexEncoder{format: f, stride: f.Stride()}
}

// encode appends v to dst.
func (e *vertexEncoder) encode(dst []byte, v vertex) []byte {
	for _, el := range e.format {
		var comps [4]float32
		switch el.Semantic {
		case SemanticScreenPos:
			comps = [4]float32{v.pos.X, v.pos.Y, 0, 1}
		case SemanticClipPos:
			comps = [4]float32{e.clipX(v.pos.X), e.clipY(v.pos.Y), 0, 1}
		case SemanticUV:
			comps = [4]float32{v.uv.X, v.uv.Y, 0, 0}
		case SemanticColor:
			dst = encodeColor(dst, el.Type, v.color)
			continue
		}
		dst = encodeComponents(dst, el.Type, comps)
	}
	return dst
}

func (e *vertexEncoder) clipX(x float32) float32 {
	if e.size.X == 0 {
		return 0
	}
	return x/e.size.X*2 - 1
}

func (e *vertexEncoder) clipY(y float32) float32 {
	if e.size.Y == 0 {
		return 0
	}
	return 1 - y/e.size.Y*2
}

// encodeComponents writes the first Components() values of comps converted
// to the element type, little-endian.
func encodeComponents(dst []byte, t ElementType, comps [4]float32) []byte {
	for i := range t.Components() {
		switch {
		case t.isFloat():
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(comps[i]))
		case t.isInt():
			dst = binary.LittleEndian.AppendUint32(dst, uint32(int32(comps[i])))
		default:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(max(comps[i], 0)))
		}
	}
	return dst
}

// encodeColor writes a color: floats as 0..1 components, integers as 0..255
// components, and a single uint as the packed 0xAABBGGRR value.
func encodeColor(dst []byte, t ElementType, c Color) []byte {
	if t == UInt1 {
		return binary.LittleEndian.AppendUint32(dst, uint32(c))
	}
	r, g, b, a := c.Unpack()
	comps := [4]float32{float32(r), float32(g), float32(b), float32(a)}
	if t.isFloat() {
		for i := range comps {
			comps[i] /= 255
		}
	}
	return encodeComponents(dst, t, comps)
}
