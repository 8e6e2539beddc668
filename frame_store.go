package imui

// frameEntry wraps a stored value with frame tracking for staleness detection.
type frameEntry[K comparable, V any] struct {
	key       K
	value     V
	lastFrame uint64
}

// frameStore is a hash table whose entries live only as long as they are
// touched every frame. Entries touched in a frame are appended to that
// frame's list; when the next frame starts, entries from the frame before
// that were not touched again are evicted. An entry therefore survives one
// frame boundary without use and is gone after a whole idle frame.
//
// Unlike an LRU, eviction never walks the whole table: only the list of
// entries touched two frames ago is inspected.
type frameStore[K comparable, V any] struct {
	entries  map[K]*frameEntry[K, V]
	current  []*frameEntry[K, V] // touched in the frame being built
	previous []*frameEntry[K, V] // touched (first) in the last frame
	frame    uint64

	// onEvict is called for each entry removed by beginFrame.
	onEvict func(key K, value V)
}

func newFrameStore[K comparable, V any]() *frameStore[K, V] {
	return &frameStore[K, V]{
		entries: make(map[K]*frameEntry[K, V]),
	}
}

// get returns the value for key and marks it used this frame.
func (s *frameStore[K, V]) get(key K) (V, bool) {
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.touch(e)
	return e.value, true
}

// put stores value under key and marks it used this frame.
func (s *frameStore[K, V]) put(key K, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		s.touch(e)
		return
	}
	e := &frameEntry[K, V]{key: key, value: value, lastFrame: s.frame}
	s.entries[key] = e
	s.current = append(s.current, e)
}

func (s *frameStore[K, V]) touch(e *frameEntry[K, V]) {
	if e.lastFrame == s.frame {
		return
	}
	e.lastFrame = s.frame
	s.current = append(s.current, e)
}

// beginFrame advances to frame and evicts everything from the previous list
// that was not touched in the frame that just ended. Returns the number of
// evicted entries.
func (s *frameStore[K, V]) beginFrame(frame uint64) int {
	evicted := 0
	for _, e := range s.previous {
		if e.lastFrame+1 >= frame {
			continue // touched again in the last frame, it is on that list
		}
		delete(s.entries, e.key)
		evicted++
		if s.onEvict != nil {
			s.onEvict(e.key, e.value)
		}
	}
	clear(s.previous)
	s.previous, s.current = s.current, s.previous[:0]
	s.frame = frame
	return evicted
}

// len returns the number of stored entries.
func (s *frameStore[K, V]) len() int {
	return len(s.entries)
}
