package imui

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// GlyphPlacement is one positioned glyph of a TextLayout, relative to the
// layout origin (top-left of the first line).
type GlyphPlacement struct {
	Codepoint rune
	Pos       Vec2
	Size      Vec2
	UV        Rect
}

// TextLayout is the immutable measured result for one (font, text) pair.
// Layouts are shared: every request for the same pair in the same frame
// returns the same pointer.
type TextLayout struct {
	Font   *Font
	Text   string
	Glyphs []GlyphPlacement
	Size   Vec2
}

type textKey struct {
	font *Font
	text string
}

// TextCacheStats counts cache traffic since the Context was created.
type TextCacheStats struct {
	Layouts   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// TextCache maps (font, text) to a TextLayout. A layout survives only while
// it is requested at least once every frame.
type TextCache struct {
	store  *frameStore[textKey, *TextLayout]
	logger *slog.Logger
	stats  TextCacheStats
}

// NewTextCache creates an empty cache.
func NewTextCache(logger *slog.Logger) *TextCache {
	if logger == nil {
		logger = defaultLogger
	}
	tc := &TextCache{
		store:  newFrameStore[textKey, *TextLayout](),
		logger: logger,
	}
	tc.store.onEvict = func(k textKey, _ *TextLayout) {
		tc.stats.Evictions++
	}
	return tc
}

// Layout returns the cached layout of text in f, building it on a miss.
func (tc *TextCache) Layout(f *Font, text string) *TextLayout {
	key := textKey{font: f, text: text}
	if l, ok := tc.store.get(key); ok {
		tc.stats.Hits++
		return l
	}
	tc.stats.Misses++
	// the key keeps its own copy so callers may reuse their buffers
	key.text = strings.Clone(text)
	l := tc.build(f, key.text)
	tc.store.put(key, l)
	return l
}

// build decodes text and accumulates glyph metrics along one line.
func (tc *TextCache) build(f *Font, text string) *TextLayout {
	l := &TextLayout{
		Font:   f,
		Text:   text,
		Glyphs: make([]GlyphPlacement, 0, utf8.RuneCountInString(text)),
	}
	var pen, height float32
	for i, r := range text {
		g, ok := f.Lookup(r)
		if !ok {
			g, ok = f.Lookup(ReplacementChar)
			if !ok {
				// no replacement glyph either: the codepoint takes no space
				if debugEnabled(tc.logger) {
					tc.logger.Debug("glyph missing without replacement",
						"font", f.Name(), "codepoint", r, "offset", i)
				}
				g = Glyph{Codepoint: r}
			}
		}
		p := GlyphPlacement{
			Codepoint: r,
			Pos:       Vec2{X: pen + g.BearingX, Y: f.Ascent() - g.BearingY},
			Size:      Vec2{X: g.Width, Y: g.Height},
			UV:        g.UV,
		}
		l.Glyphs = append(l.Glyphs, p)
		pen += g.Advance
		height = maxf(height, p.Pos.Y+p.Size.Y)
	}
	l.Size = Vec2{X: pen, Y: height}
	return l
}

// Len returns the number of cached layouts.
func (tc *TextCache) Len() int { return tc.store.len() }

// Stats returns cache counters.
func (tc *TextCache) Stats() TextCacheStats {
	s := tc.stats
	s.Layouts = tc.store.len()
	return s
}

func (tc *TextCache) beginFrame(frame uint64) {
	if n := tc.store.beginFrame(frame); n > 0 {
		tc.logger.Debug("text layouts evicted", "count", n, "frame", frame)
	}
}
