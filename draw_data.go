package imui

// DrawCommand is one draw call: Count vertices (or indices, for indexed
// topologies) starting at Offset, drawn as Primitive with Texture bound.
type DrawCommand struct {
	Primitive Primitive
	Texture   TextureID
	Offset    int
	Count     int
}

// DrawData is the flattened output of one surface. Commands are in draw
// order; windows with higher z come later. Indices are absolute vertex
// numbers. The DrawData and its slices are reused by the next End of the same
// surface.
type DrawData struct {
	VertexData   []byte
	VertexStride int
	VertexCount  int
	Indices      []uint32 // nil for non-indexed topologies
	Commands     []DrawCommand
	Size         Vec2
	DPIScale     float32
	Topology     Topology
	Format       VertexFormat
}

// Indexed reports whether commands count indices rather than vertices.
func (d *DrawData) Indexed() bool { return d.Topology.Indexed() }

func (d *DrawData) reset() {
	d.VertexData = d.VertexData[:0]
	d.VertexCount = 0
	d.Indices = d.Indices[:0]
	d.Commands = d.Commands[:0]
}

// drawBuilder flattens elements into a DrawData.
type drawBuilder struct {
	data     *DrawData
	topology Topology
	enc      vertexEncoder

	// last vertex written to the current strip command, repeated as the
	// first degenerate vertex before the next quad
	lastVertex vertex
	lastIndex  uint32
}

func newDrawBuilder(format VertexFormat, topology Topology) *drawBuilder {
	return &drawBuilder{
		data:     &DrawData{Topology: topology, Format: format, VertexStride: format.Stride()},
		topology: topology,
		enc:      newVertexEncoder(format),
	}
}

// begin resets the output for a surface of the given size.
func (b *drawBuilder) begin(size Vec2, dpi float32) {
	b.data.reset()
	b.data.Size = size
	b.data.DPIScale = dpi
	b.enc.size = size
}

// command returns the command new geometry of prim and tex goes into,
// extending the last command when both match.
func (b *drawBuilder) command(prim Primitive, tex TextureID) *DrawCommand {
	d := b.data
	if n := len(d.Commands); n > 0 {
		c := &d.Commands[n-1]
		if c.Primitive == prim && c.Texture == tex {
			return c
		}
	}
	offset := d.VertexCount
	if b.topology.Indexed() {
		offset = len(d.Indices)
	}
	d.Commands = append(d.Commands, DrawCommand{Primitive: prim, Texture: tex, Offset: offset})
	return &d.Commands[len(d.Commands)-1]
}

func (b *drawBuilder) vertex(v vertex) uint32 {
	b.data.VertexData = b.enc.encode(b.data.VertexData, v)
	i := uint32(b.data.VertexCount)
	b.data.VertexCount++
	return i
}

func (b *drawBuilder) index(i ...uint32) {
	b.data.Indices = append(b.data.Indices, i...)
}

// rect emits an axis-aligned quad.
func (b *drawBuilder) rect(r Rect, tex TextureID, uv Rect, c Color) {
	b.quad(tex, [4]vertex{
		{pos: Vec2{X: r.X, Y: r.Y}, uv: Vec2{X: uv.X, Y: uv.Y}, color: c},
		{pos: Vec2{X: r.X + r.W, Y: r.Y}, uv: Vec2{X: uv.X + uv.W, Y: uv.Y}, color: c},
		{pos: Vec2{X: r.X + r.W, Y: r.Y + r.H}, uv: Vec2{X: uv.X + uv.W, Y: uv.Y + uv.H}, color: c},
		{pos: Vec2{X: r.X, Y: r.Y + r.H}, uv: Vec2{X: uv.X, Y: uv.Y + uv.H}, color: c},
	})
}

// quad emits corners given clockwise from the top-left.
func (b *drawBuilder) quad(tex TextureID, v [4]vertex) {
	if b.topology.Strip() {
		b.stripQuad(tex, v)
		return
	}
	cmd := b.command(PrimitiveTriangles, tex)
	if b.topology.Indexed() {
		i := b.vertex(v[0])
		b.vertex(v[1])
		b.vertex(v[2])
		b.vertex(v[3])
		b.index(i, i+1, i+2, i, i+2, i+3)
		cmd.Count += 6
		return
	}
	for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
		b.vertex(v[k])
	}
	cmd.Count += 6
}

// stripQuad emits a quad as a four vertex strip. Quads after the first one
// of a command are joined by two degenerate triangles.
func (b *drawBuilder) stripQuad(tex TextureID, v [4]vertex) {
	cmd := b.command(PrimitiveTriangleStrip, tex)
	order := [4]int{0, 1, 3, 2}
	if b.topology.Indexed() {
		base := uint32(b.data.VertexCount)
		for _, vv := range v {
			b.vertex(vv)
		}
		if cmd.Count > 0 {
			b.index(b.lastIndex, base+uint32(order[0]))
			cmd.Count += 2
		}
		for _, k := range order {
			b.index(base + uint32(k))
		}
		cmd.Count += 4
		b.lastIndex = base + uint32(order[3])
		return
	}
	if cmd.Count > 0 {
		b.vertex(b.lastVertex)
		b.vertex(v[order[0]])
		cmd.Count += 2
	}
	for _, k := range order {
		b.vertex(v[k])
	}
	cmd.Count += 4
	b.lastVertex = v[order[3]]
}

// line emits a one pixel line.
func (b *drawBuilder) line(from, to vertex) {
	cmd := b.command(PrimitiveLines, 0)
	i := b.vertex(from)
	b.vertex(to)
	if b.topology.Indexed() {
		b.index(i, i+1)
	}
	cmd.Count += 2
}
