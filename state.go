package imui

// stateBlock is memory attached to a widget under a key. Byte blocks use
// data, typed blocks created by State use value.
type stateBlock struct {
	key   any
	data  []byte
	value any
}

// AllocState returns the byte block stored under key, creating a zeroed
// block of size bytes on first use. key must be comparable.
//
// The block belongs to the logical widget: as long as the widget is matched
// every frame, later calls return the same bytes with whatever the caller
// wrote into them. A frame without the widget discards the block.
func (w *Widget) AllocState(key any, size int) []byte {
	b, _ := w.AllocStateNew(key, size)
	return b
}

// AllocStateNew is AllocState that also reports whether the block was just
// created. A block requested with a larger size than before keeps its
// contents and is zero-extended.
func (w *Widget) AllocStateNew(key any, size int) ([]byte, bool) {
	if w == nil {
		return make([]byte, size), true
	}
	for i := range w.states {
		s := &w.states[i]
		if s.key != key || s.value != nil {
			continue
		}
		if len(s.data) < size {
			grown := make([]byte, size)
			copy(grown, s.data)
			s.data = grown
		}
		return s.data[:size], false
	}
	b := make([]byte, size)
	w.states = append(w.states, stateBlock{key: key, data: b})
	return b, true
}

// typeKey keys the typed state of T.
type typeKey[T any] struct{}

// State returns the widget's value of type T, zero on first use. Each type
// has one slot per widget; wrap a type to keep several values of the same
// underlying type.
func State[T any](w *Widget) *T {
	v, _ := StateNew[T](w)
	return v
}

// StateNew is State that also reports whether the value was just created.
func StateNew[T any](w *Widget) (*T, bool) {
	if w == nil {
		return new(T), true
	}
	var key any = typeKey[T]{}
	for i := range w.states {
		if w.states[i].key == key {
			return w.states[i].value.(*T), false
		}
	}
	v := new(T)
	w.states = append(w.states, stateBlock{key: key, value: v})
	return v, true
}

// HasState reports whether a typed value of T is attached to the widget.
func HasState[T any](w *Widget) bool {
	if w == nil {
		return false
	}
	var key any = typeKey[T]{}
	for i := range w.states {
		if w.states[i].key == key {
			return true
		}
	}
	return false
}

// scrollState is the persisted offset of a ScrollLayout widget.
type scrollState struct {
	offset Vec2
}

// ScrollOffset returns how far the content of a ScrollLayout widget is moved
// up and to the left.
func ScrollOffset(w *Widget) Vec2 {
	if !HasState[scrollState](w) {
		return Vec2{}
	}
	return State[scrollState](w).offset
}

// SetScrollOffset stores the scroll offset used by the next layout pass.
func SetScrollOffset(w *Widget, offset Vec2) {
	if w == nil {
		return
	}
	State[scrollState](w).offset = offset
}
