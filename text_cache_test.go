package imui_test

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/imui"
)

// testFont has 'a', space and the replacement glyph.
func testFont() *imui.Font {
	return imui.NewFont("test", 8, 10, []imui.Glyph{
		{Codepoint: 'a', Advance: 8, BearingX: 1, BearingY: 8, Width: 6, Height: 8, UV: imui.Rect{W: 0.5, H: 0.5}},
		{Codepoint: ' ', Advance: 4},
		{Codepoint: imui.ReplacementChar, Advance: 5, BearingY: 6, Width: 4, Height: 6},
	})
}

func TestTextLayout_Measure(t *testing.T) {
	tc := imui.NewTextCache(quietLogger)
	f := testFont()

	l := tc.Layout(f, "a a")
	if l.Size != (imui.Vec2{X: 20, Y: 8}) {
		t.Errorf("size = %v, want 20x8", l.Size)
	}
	if len(l.Glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(l.Glyphs))
	}
	if g := l.Glyphs[2]; g.Pos != (imui.Vec2{X: 13, Y: 0}) || g.Size != (imui.Vec2{X: 6, Y: 8}) {
		t.Errorf("third glyph = %+v", g)
	}
	if l.Font != f || l.Text != "a a" {
		t.Error("layout should remember font and text")
	}
}

func TestTextLayout_Replacement(t *testing.T) {
	tc := imui.NewTextCache(quietLogger)

	l := tc.Layout(testFont(), "aé")
	if g := l.Glyphs[1]; g.Codepoint != 'é' || g.Size != (imui.Vec2{X: 4, Y: 6}) || g.Pos.Y != 2 {
		t.Errorf("missing glyph should use the replacement metrics, got %+v", g)
	}
	if l.Size.X != 13 {
		t.Errorf("width = %v, want 13", l.Size.X)
	}

	// without a replacement glyph the codepoint takes no space
	bare := imui.NewFont("bare", 8, 10, []imui.Glyph{{Codepoint: 'a', Advance: 8}})
	l = tc.Layout(bare, "aéa")
	if l.Size.X != 16 || len(l.Glyphs) != 3 || l.Glyphs[1].Size != (imui.Vec2{}) {
		t.Errorf("layout = %+v", l)
	}
}

func TestTextLayout_InvalidUTF8(t *testing.T) {
	tc := imui.NewTextCache(quietLogger)
	l := tc.Layout(testFont(), "a\xffa")
	if len(l.Glyphs) != 3 || l.Glyphs[1].Codepoint != imui.ReplacementChar {
		t.Errorf("invalid byte should decode to the replacement char, got %+v", l.Glyphs)
	}
}

func TestTextCache_SharedWithinFrame(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Close()

	f := testFont()
	buildFrame(t, ctx, func(win *imui.Window) {
		buf := []byte("hello")
		l1 := win.TextLayout(f, string(buf))
		buf[0] = 'j'
		l2 := win.TextLayout(f, "hello")
		if l1 != l2 {
			t.Error("equal text should share one layout")
		}
		if win.TextLayout(testFont(), "hello") == l1 {
			t.Error("different fonts should not share layouts")
		}
	})
	st := ctx.Stats().Text
	if st.Hits != 1 || st.Misses != 2 || st.Layouts != 2 {
		t.Errorf("stats = %+v", st)
	}
}

func TestTextCache_FrameEviction(t *testing.T) {
	f := testFont()

	t.Run("idle frame evicts", func(t *testing.T) {
		ctx := newContext(t)
		defer ctx.Close()

		var l1, l3 *imui.TextLayout
		fr := ctx.BeginFrame()
		l1 = fr.TextLayout(f, "hello")
		mustEndFrame(t, ctx)
		ctx.BeginFrame()
		mustEndFrame(t, ctx)
		fr = ctx.BeginFrame()
		if ctx.Stats().Text.Layouts != 0 {
			t.Error("layout should be evicted when frame N+2 begins")
		}
		l3 = fr.TextLayout(f, "hello")
		mustEndFrame(t, ctx)

		if l1 == l3 {
			t.Error("re-requesting after an idle frame should build a new layout")
		}
		if ev := ctx.Stats().Text.Evictions; ev != 1 {
			t.Errorf("evictions = %d, want 1", ev)
		}
	})

	t.Run("used every frame survives", func(t *testing.T) {
		ctx := newContext(t)
		defer ctx.Close()

		var ls []*imui.TextLayout
		for range 4 {
			ls = append(ls, ctx.BeginFrame().TextLayout(f, "hello"))
			mustEndFrame(t, ctx)
		}
		for i := 1; i < len(ls); i++ {
			if ls[i] != ls[0] {
				t.Errorf("frame %d built a new layout", i+1)
			}
		}
	})
}

func mustEndFrame(t *testing.T, ctx *imui.Context) {
	t.Helper()
	if err := ctx.EndFrame(); err != nil {
		t.Fatalf("EndFrame() returned error: %v", err)
	}
}

func TestLoadFont(t *testing.T) {
	f, err := imui.LoadFont("goregular", goregular.TTF, 16, nil)
	if err != nil {
		t.Fatalf("LoadFont() returned error: %v", err)
	}
	defer f.Close()

	if f.GlyphCount() < 95 {
		t.Errorf("GlyphCount() = %d, want at least printable ASCII", f.GlyphCount())
	}
	if _, ok := f.Lookup('é'); !ok {
		t.Error("Latin-1 glyphs should be loaded by default")
	}
	g, ok := f.Lookup('A')
	if !ok || g.Width <= 0 || g.Height <= 0 || g.Advance <= 0 || g.UV.W <= 0 {
		t.Errorf("glyph A = %+v", g)
	}
	if sp, _ := f.Lookup(' '); sp.Advance <= 0 {
		t.Error("space should advance the pen")
	}
	if f.LineHeight() < f.Size() || f.Ascent() <= 0 {
		t.Errorf("line height %v ascent %v", f.LineHeight(), f.Ascent())
	}

	w, h := f.MinAtlasSize()
	if w == 0 || h == 0 {
		t.Fatal("atlas size should be known")
	}
	if err := f.Rasterize(image.NewAlpha(image.Rect(0, 0, w/2, h/2))); err == nil {
		t.Error("too small atlas should fail")
	}
	atlas := image.NewAlpha(image.Rect(0, 0, w, h))
	if err := f.Rasterize(atlas); err != nil {
		t.Fatalf("Rasterize() returned error: %v", err)
	}
	// some coverage inside the UV rectangle of 'A'
	x0, y0 := int(g.UV.X*float32(w)), int(g.UV.Y*float32(h))
	covered := false
	for y := y0; y < y0+int(g.Height) && !covered; y++ {
		for x := x0; x < x0+int(g.Width); x++ {
			if atlas.AlphaAt(x, y).A > 0 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("glyph A left no coverage in its atlas cell")
	}
}

func TestLoadFont_Invalid(t *testing.T) {
	if _, err := imui.LoadFont("junk", []byte("not a font"), 16, nil); err == nil {
		t.Fatal("expected an error for junk data")
	}
	if err := testFont().Rasterize(image.NewAlpha(image.Rect(0, 0, 8, 8))); err == nil {
		t.Error("table-only fonts cannot rasterize")
	}
}

func TestTextLayout_MissingGlyphLogged(t *testing.T) {
	var buf bytes.Buffer
	tc := imui.NewTextCache(debugLogger(&buf))
	f := imui.NewFont("bare", 8, 10, []imui.Glyph{{Codepoint: 'a', Advance: 8}})

	l := tc.Layout(f, "ab")
	if l.Size.X != 8 || l.Glyphs[1].Size != (imui.Vec2{}) {
		t.Errorf("missing glyph should take no space, layout = %+v", l)
	}
	if !strings.Contains(buf.String(), "glyph missing without replacement") {
		t.Errorf("debug logger did not get the missing glyph record:\n%s", buf.String())
	}
}
