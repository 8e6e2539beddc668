package imui

import (
	"fmt"
	"log/slog"
	"slices"
)

// Context owns everything that outlives a frame: the widget arena, the
// input buffer, the string interner, the text layout cache and the
// surfaces. A Context is not safe for concurrent use; one goroutine drives
// all begin and end calls.
type Context struct {
	logger   *slog.Logger
	arena    *arena
	input    *Input
	interner *Interner
	text     *TextCache
	format   VertexFormat
	topology Topology

	surfaces []*Surface
	surface  *Surface // open surface

	frame       uint64
	frameOpen   bool
	frameHandle Frame
	lastWidgets int
	lastChunks  int
	err         error
	closed      bool
}

// New creates a Context configured by opts on top of DefaultConfig.
func New(opts ...Option) (*Context, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.VertexFormat.Validate(); err != nil {
		return nil, err
	}
	if cfg.Topology > IndexedStrip {
		return nil, fmt.Errorf("imui: unknown topology %d", cfg.Topology)
	}
	if cfg.Verbose {
		SetVerbose(true)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger
	}

	ctx := &Context{
		logger:   logger,
		arena:    newArena(cfg.ChunkCapacity, cfg.MaxChunks),
		input:    NewInput(),
		interner: NewInterner(),
		text:     NewTextCache(logger),
		format:   slices.Clone(cfg.VertexFormat),
		topology: cfg.Topology,
	}
	ctx.frameHandle.ctx = ctx
	logger.Debug("context created",
		"chunk_capacity", ctx.arena.chunkCapacity,
		"max_chunks", cfg.MaxChunks,
		"vertex_stride", ctx.format.Stride(),
		"topology", ctx.topology)
	return ctx, nil
}

// Close releases the surfaces and caches. The Context cannot be used
// afterwards.
func (ctx *Context) Close() error {
	if ctx.closed {
		return nil
	}
	if ctx.frameOpen {
		usagePanic("Context.Close", ErrFrameState, "frame %d still open", ctx.frame)
	}
	ctx.closed = true
	ctx.surfaces = nil
	ctx.arena = newArena(ctx.arena.chunkCapacity, ctx.arena.maxChunks)
	ctx.text = NewTextCache(ctx.logger)
	ctx.interner = NewInterner()
	ctx.logger.Debug("context closed", "frames", ctx.frame)
	return nil
}

// Input returns the input buffer the host pushes platform events into.
func (ctx *Context) Input() *Input { return ctx.input }

// Logger returns the logger of the context.
func (ctx *Context) Logger() *slog.Logger { return ctx.logger }

// FrameNumber returns the number of the current or last frame, starting at 1.
func (ctx *Context) FrameNumber() uint64 { return ctx.frame }

// VertexFormat returns the vertex format of all draw data.
func (ctx *Context) VertexFormat() VertexFormat { return ctx.format }

// Topology returns the topology of all draw data.
func (ctx *Context) Topology() Topology { return ctx.topology }

// BeginFrame starts a frame. Text layouts and names not used during the
// previous frame are released here.
func (ctx *Context) BeginFrame() *Frame {
	if ctx.closed {
		usagePanic("Context.BeginFrame", ErrFrameState, "context closed")
	}
	if ctx.frameOpen {
		usagePanic("Context.BeginFrame", ErrFrameState, "frame %d still open", ctx.frame)
	}
	ctx.frame++
	ctx.frameOpen = true
	ctx.err = nil
	ctx.text.beginFrame(ctx.frame)
	if n := ctx.interner.beginFrame(ctx.frame); n > 0 && debugEnabled(ctx.logger) {
		ctx.logger.Debug("names released", "count", n, "frame", ctx.frame)
	}
	for _, s := range ctx.surfaces {
		s.used = false
	}
	return &ctx.frameHandle
}

// EndFrame removes the surfaces that were not begun and recycles the widget
// storage of the frame before last. The error is the first allocation
// failure of the frame.
func (ctx *Context) EndFrame() error {
	ctx.checkFrame("Context.EndFrame")
	if ctx.surface != nil {
		usagePanic("Context.EndFrame", ErrStackDiscipline,
			"frame ended while surface %q is open", ctx.surface.name)
	}
	kept := ctx.surfaces[:0]
	for _, s := range ctx.surfaces {
		if s.used {
			kept = append(kept, s)
			continue
		}
		ctx.logger.Debug("surface removed", "surface", s.name)
	}
	clear(ctx.surfaces[len(kept):])
	ctx.surfaces = kept

	if ctx.arena.chunks != ctx.lastChunks {
		ctx.logger.Debug("arena grew", "chunks", ctx.arena.chunks, "frame", ctx.frame)
		ctx.lastChunks = ctx.arena.chunks
	}
	ctx.lastWidgets = ctx.arena.allocated
	ctx.arena.endFrame()
	ctx.frameOpen = false
	if ctx.err != nil {
		ctx.logger.Warn("frame incomplete", "frame", ctx.frame, "err", ctx.err)
	}
	return ctx.err
}

// Surface returns the surface called name, or nil.
func (ctx *Context) Surface(name string) *Surface { return ctx.findSurface(name) }

// Stats describes the resources held by a Context.
type Stats struct {
	Frame         uint64
	Widgets       int // widgets built in the last completed frame
	Arena         ArenaStats
	Surfaces      int
	Windows       int
	Text          TextCacheStats
	InternedNames int
}

// Stats returns current resource counters.
func (ctx *Context) Stats() Stats {
	st := Stats{
		Frame:         ctx.frame,
		Widgets:       ctx.lastWidgets,
		Arena:         ctx.arena.stats(),
		Surfaces:      len(ctx.surfaces),
		Text:          ctx.text.Stats(),
		InternedNames: ctx.interner.Len(),
	}
	for _, s := range ctx.surfaces {
		st.Windows += len(s.windows)
	}
	return st
}

func (ctx *Context) findSurface(name string) *Surface {
	for _, s := range ctx.surfaces {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (ctx *Context) checkFrame(op string) {
	if !ctx.frameOpen {
		usagePanic(op, ErrFrameState, "no frame open")
	}
}

func (ctx *Context) fail(err error) {
	if ctx.err == nil {
		ctx.err = err
		ctx.logger.Debug("allocation failed", "frame", ctx.frame, "err", err)
	}
}
