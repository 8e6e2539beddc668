package imui_test

import (
	"encoding/binary"
	"math"
	"slices"
	"testing"

	"github.com/go-theft-auto/imui"
)

// vertexFloat reads the float32 at byte offset off of vertex i.
func vertexFloat(d *imui.DrawData, i, off int) float32 {
	p := i*d.VertexStride + off
	return math.Float32frombits(binary.LittleEndian.Uint32(d.VertexData[p:]))
}

func vertexPos(d *imui.DrawData, i int) imui.Vec2 {
	return imui.Vec2{X: vertexFloat(d, i, 0), Y: vertexFloat(d, i, 4)}
}

func drawRects(n int, tex ...imui.TextureID) func(win *imui.Window) {
	return func(win *imui.Window) {
		for i := range n {
			r := imui.Rect{X: float32(i * 10), Y: 0, W: 8, H: 8}
			win.DrawTexturedRect(r, tex[i%len(tex)], imui.Rect{W: 1, H: 1}, imui.ColorWhite)
		}
	}
}

func TestDraw_BatchingByTexture(t *testing.T) {
	tests := []struct {
		topology    imui.Topology
		vertices    int
		indices     int
		primitive   imui.Primitive
		perQuadSize int
	}{
		{imui.VertexList, 30, 0, imui.PrimitiveTriangles, 6},
		{imui.IndexedList, 20, 30, imui.PrimitiveTriangles, 6},
	}
	for _, tt := range tests {
		t.Run(tt.topology.String(), func(t *testing.T) {
			ctx := newContext(t, imui.WithTopology(tt.topology))
			defer ctx.Close()

			_, d := buildFrame(t, ctx, drawRects(5, 7))
			if len(d.Commands) != 1 {
				t.Fatalf("expected 1 command, got %d", len(d.Commands))
			}
			c := d.Commands[0]
			if c.Primitive != tt.primitive || c.Texture != 7 || c.Offset != 0 || c.Count != 5*tt.perQuadSize {
				t.Errorf("command = %+v", c)
			}
			if d.VertexCount != tt.vertices || len(d.Indices) != tt.indices {
				t.Errorf("vertices %d indices %d, want %d and %d", d.VertexCount, len(d.Indices), tt.vertices, tt.indices)
			}
			if len(d.VertexData) != d.VertexCount*d.VertexStride {
				t.Errorf("vertex data holds %d bytes for %d vertices", len(d.VertexData), d.VertexCount)
			}
			if d.Indexed() {
				want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
				if !slices.Equal(d.Indices[:12], want) {
					t.Errorf("indices = %v, want %v", d.Indices[:12], want)
				}
			}
		})
	}
}

func TestDraw_TextureSwitchStartsCommand(t *testing.T) {
	for _, topo := range []imui.Topology{imui.VertexList, imui.IndexedList} {
		t.Run(topo.String(), func(t *testing.T) {
			ctx := newContext(t, imui.WithTopology(topo))
			defer ctx.Close()

			_, d := buildFrame(t, ctx, drawRects(3, 1, 2))
			want := []imui.DrawCommand{
				{Primitive: imui.PrimitiveTriangles, Texture: 1, Offset: 0, Count: 6},
				{Primitive: imui.PrimitiveTriangles, Texture: 2, Offset: 6, Count: 6},
				{Primitive: imui.PrimitiveTriangles, Texture: 1, Offset: 12, Count: 6},
			}
			if !slices.Equal(d.Commands, want) {
				t.Errorf("commands = %+v, want %+v", d.Commands, want)
			}
		})
	}
}

func TestDraw_VertexStripDegenerates(t *testing.T) {
	ctx := newContext(t, imui.WithTopology(imui.VertexStrip))
	defer ctx.Close()

	_, d := buildFrame(t, ctx, drawRects(2, 1))
	if len(d.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(d.Commands))
	}
	c := d.Commands[0]
	if c.Primitive != imui.PrimitiveTriangleStrip || c.Count != 10 || d.VertexCount != 10 {
		t.Fatalf("command = %+v, vertices %d; want a 10 vertex strip", c, d.VertexCount)
	}
	// strip order is top-left, top-right, bottom-left, bottom-right
	if got := vertexPos(d, 3); got != (imui.Vec2{X: 8, Y: 8}) {
		t.Errorf("last vertex of the first quad = %v", got)
	}
	if vertexPos(d, 4) != vertexPos(d, 3) {
		t.Error("first degenerate should repeat the last vertex")
	}
	if vertexPos(d, 5) != vertexPos(d, 6) || vertexPos(d, 6) != (imui.Vec2{X: 10, Y: 0}) {
		t.Error("second degenerate should repeat the first vertex of the next quad")
	}
	if d.Indices != nil {
		t.Error("non-indexed draw data should not carry indices")
	}
}

func TestDraw_IndexedStripDegenerates(t *testing.T) {
	ctx := newContext(t, imui.WithTopology(imui.IndexedStrip))
	defer ctx.Close()

	_, d := buildFrame(t, ctx, drawRects(2, 1))
	want := []uint32{0, 1, 3, 2, 2, 4, 4, 5, 7, 6}
	if !slices.Equal(d.Indices, want) {
		t.Errorf("indices = %v, want %v", d.Indices, want)
	}
	if d.VertexCount != 8 || d.Commands[0].Count != 10 {
		t.Errorf("vertices %d count %d, want 8 and 10", d.VertexCount, d.Commands[0].Count)
	}
}

func TestDraw_StripCommandsHaveNoLeadingDegenerates(t *testing.T) {
	ctx := newContext(t, imui.WithTopology(imui.VertexStrip))
	defer ctx.Close()

	_, d := buildFrame(t, ctx, drawRects(2, 1, 2))
	if len(d.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(d.Commands))
	}
	for i, c := range d.Commands {
		if c.Count != 4 || c.Offset != i*4 {
			t.Errorf("command %d = %+v, want 4 vertices at %d", i, c, i*4)
		}
	}
}

func TestDraw_Lines(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Close()

	_, d := buildFrame(t, ctx, func(win *imui.Window) {
		win.DrawLine(imui.Vec2{X: 0, Y: 0}, imui.Vec2{X: 10, Y: 10}, 1, imui.ColorWhite)
		win.DrawLine(imui.Vec2{X: 0, Y: 10}, imui.Vec2{X: 100, Y: 10}, 4, imui.ColorWhite)
	})

	if len(d.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %+v", d.Commands)
	}
	if c := d.Commands[0]; c.Primitive != imui.PrimitiveLines || c.Count != 2 {
		t.Errorf("thin line command = %+v", c)
	}
	if c := d.Commands[1]; c.Primitive != imui.PrimitiveTriangles || c.Count != 6 || c.Offset != 2 {
		t.Errorf("wide line command = %+v", c)
	}
	if !slices.Equal(d.Indices[:2], []uint32{0, 1}) {
		t.Errorf("line indices = %v", d.Indices[:2])
	}
	// the wide line is offset by half its width on both sides
	if got := vertexPos(d, 2); got.Y != 12 || got.X != 0 {
		t.Errorf("wide line corner = %v, want 0,12", got)
	}
	if got := vertexPos(d, 4); got.Y != 8 || got.X != 100 {
		t.Errorf("wide line corner = %v, want 100,8", got)
	}
}

func TestDraw_TransparentSkipped(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Close()

	win, d := buildFrame(t, ctx, func(win *imui.Window) {
		win.DrawRect(imui.Rect{W: 10, H: 10}, imui.ColorTransparent)
		win.DrawLine(imui.Vec2{}, imui.Vec2{X: 1}, 1, imui.RGBA(255, 255, 255, 0))
		win.DrawSkin(imui.Rect{W: 10, H: 10}, imui.Skin{}, imui.ColorTransparent)
		win.DrawRectOutline(imui.Rect{W: 10, H: 10}, 1, imui.ColorRed)
	})
	if win.ElementCount() != 4 {
		t.Errorf("ElementCount() = %d, want only the 4 outline edges", win.ElementCount())
	}
	if d.Commands[0].Count != 24 {
		t.Errorf("count = %d, want 24", d.Commands[0].Count)
	}
}

func TestDraw_Skin(t *testing.T) {
	skin := imui.Skin{Texture: 3, UV: imui.Rect{W: 1, H: 1}, Border: imui.All(10)}
	tests := []struct {
		name   string
		hollow bool
		quads  int
	}{
		{"filled", false, 9},
		{"hollow", true, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t)
			defer ctx.Close()

			s := skin
			s.Hollow = tt.hollow
			_, d := buildFrame(t, ctx, func(win *imui.Window) {
				win.DrawSkin(imui.Rect{W: 100, H: 100}, s, imui.ColorWhite)
			})
			if len(d.Commands) != 1 || d.Commands[0].Count != tt.quads*6 || d.Commands[0].Texture != 3 {
				t.Fatalf("commands = %+v, want %d quads", d.Commands, tt.quads)
			}
			// the top-left corner slice maps to a tenth of the UV region
			if got := vertexPos(d, 2); got != (imui.Vec2{X: 10, Y: 10}) {
				t.Errorf("corner slice ends at %v", got)
			}
			if u, v := vertexFloat(d, 2, 8), vertexFloat(d, 2, 12); !approx(u, 0.1) || !approx(v, 0.1) {
				t.Errorf("corner slice uv = %v,%v, want 0.1,0.1", u, v)
			}
		})
	}
}

func TestDraw_WindowZOrder(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Close()

	frame := func(order ...string) []imui.TextureID {
		z := map[string]int{"a": 1, "b": 0, "c": 1}
		tex := map[string]imui.TextureID{"a": 1, "b": 2, "c": 3}
		s := ctx.BeginFrame().BeginSurface("main", imui.Vec2{X: 100, Y: 100}, 1)
		for _, name := range order {
			win := s.BeginWindow(name, imui.Rect{W: 100, H: 100}, z[name])
			win.DrawTexturedRect(imui.Rect{W: 10, H: 10}, tex[name], imui.Rect{}, imui.ColorWhite)
			if err := win.End(); err != nil {
				t.Fatal(err)
			}
		}
		d, err := s.End()
		if err != nil {
			t.Fatal(err)
		}
		if err := ctx.EndFrame(); err != nil {
			t.Fatal(err)
		}
		var got []imui.TextureID
		for _, c := range d.Commands {
			got = append(got, c.Texture)
		}
		return got
	}

	if got, want := frame("a", "b", "c"), []imui.TextureID{2, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("draw order = %v, want %v", got, want)
	}
	// equal z follows the begin order of the current frame
	if got, want := frame("c", "a", "b"), []imui.TextureID{2, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("draw order = %v, want %v", got, want)
	}
}

func TestDraw_Text(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Close()

	f := testFont()
	f.SetTexture(9)
	_, d := buildFrame(t, ctx, func(win *imui.Window) {
		win.DrawText(win.TextLayout(f, "a a"), imui.Vec2{X: 100, Y: 50}, imui.ColorWhite)
		win.DrawText(nil, imui.Vec2{}, imui.ColorWhite)
	})

	if len(d.Commands) != 1 || d.Commands[0].Texture != 9 || d.Commands[0].Count != 12 {
		t.Fatalf("commands = %+v, want 2 glyph quads with the font texture", d.Commands)
	}
	// second 'a' after advance 8 plus space advance 4, bearing 1
	if got := vertexPos(d, 4); got != (imui.Vec2{X: 113, Y: 50}) {
		t.Errorf("second glyph at %v, want 113,50", got)
	}
}

func TestDraw_DataReusedPerSurface(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Close()

	_, d1 := buildFrame(t, ctx, drawRects(4, 1))
	_, d2 := buildFrame(t, ctx, drawRects(1, 1))
	if d1 != d2 {
		t.Error("a surface should reuse its draw data")
	}
	if d2.VertexCount != 4 || len(d2.Commands) != 1 || d2.Commands[0].Count != 6 {
		t.Errorf("draw data not reset: vertices %d commands %+v", d2.VertexCount, d2.Commands)
	}
}
