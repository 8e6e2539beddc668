package imui

// DefaultChunkCapacity is the number of widgets stored per arena chunk.
const DefaultChunkCapacity = 256

// widgetChunk is a fixed-size block of widget storage. Chunks form singly
// linked lists, one per generation.
type widgetChunk struct {
	widgets []Widget
	used    int
	next    *widgetChunk
}

// arena hands out widgets for the frame being built. It keeps three chunk
// lists: current (being filled), previous (last frame's tree, still read by
// identity matching) and free (two frames old, recycled). Chunks are never
// released once allocated.
type arena struct {
	chunkCapacity int
	maxChunks     int // 0 = unlimited

	current  *widgetChunk
	previous *widgetChunk
	free     *widgetChunk

	chunks    int // total chunks ever allocated
	allocated int // widgets handed out this frame
}

// ArenaStats describes the chunk lists of the widget arena.
type ArenaStats struct {
	ChunkCapacity  int
	CurrentChunks  int
	PreviousChunks int
	FreeChunks     int
	TotalChunks    int
	Allocated      int // widgets allocated in the frame being built
}

func newArena(chunkCapacity, maxChunks int) *arena {
	if chunkCapacity <= 0 {
		chunkCapacity = DefaultChunkCapacity
	}
	return &arena{chunkCapacity: chunkCapacity, maxChunks: maxChunks}
}

// alloc returns a zeroed widget from the current generation.
func (a *arena) alloc() (*Widget, error) {
	c := a.current
	if c == nil || c.used == len(c.widgets) {
		c = a.takeChunk()
		if c == nil {
			return nil, ErrArenaExhausted
		}
		c.next = a.current
		a.current = c
	}
	w := &c.widgets[c.used]
	c.used++
	*w = Widget{}
	a.allocated++
	return w, nil
}

// takeChunk pops a free chunk or allocates a new one within the chunk limit.
func (a *arena) takeChunk() *widgetChunk {
	if c := a.free; c != nil {
		a.free = c.next
		c.next = nil
		return c
	}
	if a.maxChunks > 0 && a.chunks >= a.maxChunks {
		return nil
	}
	a.chunks++
	return &widgetChunk{widgets: make([]Widget, a.chunkCapacity)}
}

// endFrame rotates the generations: previous chunks become free, current
// chunks become previous.
func (a *arena) endFrame() {
	for c := a.previous; c != nil; {
		next := c.next
		// drop references so state blocks of dead widgets can be collected
		clear(c.widgets[:c.used])
		c.used = 0
		c.next = a.free
		a.free = c
		c = next
	}
	a.previous = a.current
	a.current = nil
	a.allocated = 0
}

func (a *arena) stats() ArenaStats {
	return ArenaStats{
		ChunkCapacity:  a.chunkCapacity,
		CurrentChunks:  chunkCount(a.current),
		PreviousChunks: chunkCount(a.previous),
		FreeChunks:     chunkCount(a.free),
		TotalChunks:    a.chunks,
		Allocated:      a.allocated,
	}
}

func chunkCount(c *widgetChunk) int {
	n := 0
	for ; c != nil; c = c.next {
		n++
	}
	return n
}
