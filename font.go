package imui

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ReplacementChar is looked up when a font has no glyph for a codepoint.
const ReplacementChar = '�'

// Glyph holds the metrics and atlas location of one codepoint.
type Glyph struct {
	Codepoint rune
	Advance   float32 // horizontal pen advance in pixels
	BearingX  float32 // offset from the pen to the left edge of the bitmap
	BearingY  float32 // distance from the baseline up to the top of the bitmap
	Width     float32 // bitmap width in pixels
	Height    float32 // bitmap height in pixels
	UV        Rect    // normalized atlas rectangle
}

// Font is the codepoint table the text layout cache reads from. Fonts built
// with LoadFont can also rasterize their glyphs into an atlas image; the
// renderer uploads that image and hands the texture back via SetTexture.
type Font struct {
	name       string
	size       float32
	ascent     float32
	lineHeight float32
	glyphs     map[rune]Glyph
	texture    TextureID

	// rasterization data, nil for table-only fonts
	face      font.Face
	positions map[rune]image.Point
	atlasW    int
	atlasH    int
}

// NewFont creates a table-only font from precomputed glyph metrics, e.g. a
// bitmap font whose atlas already exists.
func NewFont(name string, ascent, lineHeight float32, glyphs []Glyph) *Font {
	f := &Font{
		name:       name,
		ascent:     ascent,
		lineHeight: lineHeight,
		glyphs:     make(map[rune]Glyph, len(glyphs)),
	}
	for _, g := range glyphs {
		f.glyphs[g.Codepoint] = g
	}
	return f
}

// atlasPadding separates glyphs in the packed atlas.
const atlasPadding = 2

// maxAtlasSize bounds atlas growth while packing.
const maxAtlasSize = 4096

// LoadFont parses a TrueType/OpenType font and builds the codepoint table
// for runes at sizePx. When runes is empty, Latin-1 plus U+FFFD is used.
func LoadFont(name string, ttf []byte, sizePx float32, runes []rune) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontParse, name, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: new face: %w", ErrFontParse, name, err)
	}

	if len(runes) == 0 {
		for r := rune(32); r <= 255; r++ {
			runes = append(runes, r)
		}
		runes = append(runes, ReplacementChar)
	}

	m := face.Metrics()
	f := &Font{
		name:       name,
		size:       sizePx,
		ascent:     float32(m.Ascent.Round()),
		lineHeight: float32(m.Height.Round()),
		glyphs:     make(map[rune]Glyph, len(runes)),
		face:       face,
	}

	type measured struct {
		r       rune
		w, h    int
		adv, bx float32
		by      float32
	}
	ms := make([]measured, 0, len(runes))
	for _, r := range runes {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		ms = append(ms, measured{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	// shelf packer, growing the square atlas until everything fits
	size := 64
	var pos map[rune]image.Point
	for {
		pos = make(map[rune]image.Point, len(ms))
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, g := range ms {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+2*atlasPadding > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > maxAtlasSize {
			_ = face.Close()
			return nil, fmt.Errorf("%w: %s: atlas larger than %d", ErrFontParse, name, maxAtlasSize)
		}
	}

	f.positions = pos
	f.atlasW, f.atlasH = size, size
	for _, g := range ms {
		glyph := Glyph{
			Codepoint: g.r,
			Advance:   g.adv,
			BearingX:  g.bx,
			BearingY:  g.by,
			Width:     float32(g.w),
			Height:    float32(g.h),
		}
		if p, ok := pos[g.r]; ok {
			glyph.UV = Rect{
				X: float32(p.X) / float32(size),
				Y: float32(p.Y) / float32(size),
				W: float32(g.w) / float32(size),
				H: float32(g.h) / float32(size),
			}
		}
		f.glyphs[g.r] = glyph
	}
	return f, nil
}

// Name returns the font name.
func (f *Font) Name() string { return f.name }

// Size returns the pixel size the font was built for (0 for table fonts).
func (f *Font) Size() float32 { return f.size }

// Ascent returns the distance from the top of a line to the baseline.
func (f *Font) Ascent() float32 { return f.ascent }

// LineHeight returns the recommended distance between baselines.
func (f *Font) LineHeight() float32 { return f.lineHeight }

// Lookup returns the glyph for r.
func (f *Font) Lookup(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// GlyphCount returns the number of codepoints in the table.
func (f *Font) GlyphCount() int { return len(f.glyphs) }

// Texture returns the atlas texture handle set by the renderer.
func (f *Font) Texture() TextureID { return f.texture }

// SetTexture records the renderer handle of the uploaded atlas.
func (f *Font) SetTexture(t TextureID) { f.texture = t }

// MinAtlasSize returns the smallest atlas that holds every glyph. Table-only
// fonts report 0, 0.
func (f *Font) MinAtlasSize() (w, h int) {
	return f.atlasW, f.atlasH
}

// Rasterize draws every glyph into dst as alpha coverage at the positions
// used for the UV rectangles. dst must be at least MinAtlasSize.
func (f *Font) Rasterize(dst *image.Alpha) error {
	if f.face == nil {
		return fmt.Errorf("imui: font %s has no outlines to rasterize", f.name)
	}
	b := dst.Bounds()
	if b.Dx() < f.atlasW || b.Dy() < f.atlasH {
		return fmt.Errorf("imui: atlas %dx%d smaller than required %dx%d", b.Dx(), b.Dy(), f.atlasW, f.atlasH)
	}
	draw.Draw(dst, b, image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: dst, Src: image.Opaque, Face: f.face}
	for r, p := range f.positions {
		g := f.glyphs[r]
		// the drawer's dot sits on the baseline left of the bearing
		d.Dot = fixed.P(b.Min.X+p.X-int(g.BearingX), b.Min.Y+p.Y+int(g.BearingY))
		d.DrawString(string(r))
	}
	return nil
}

// Close releases the font face.
func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}
