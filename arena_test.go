package imui

import (
	"errors"
	"testing"
)

// owns reports whether w lives in one of the chunks of list.
func owns(list *widgetChunk, w *Widget) bool {
	for c := list; c != nil; c = c.next {
		for i := range c.used {
			if &c.widgets[i] == w {
				return true
			}
		}
	}
	return false
}

func TestArena_Generations(t *testing.T) {
	a := newArena(4, 0)

	var frame1 []*Widget
	for range 6 {
		w, err := a.alloc()
		if err != nil {
			t.Fatal(err)
		}
		w.id = 1
		frame1 = append(frame1, w)
	}
	if st := a.stats(); st.CurrentChunks != 2 || st.Allocated != 6 {
		t.Fatalf("frame 1 stats = %+v", st)
	}
	a.endFrame()

	w2, _ := a.alloc()
	for _, w := range frame1 {
		if !owns(a.previous, w) {
			t.Fatal("last frame's widgets should be in the previous generation")
		}
		if w == w2 || w.id != 1 {
			t.Fatal("last frame's widgets must not be reused while the next frame is built")
		}
	}
	if st := a.stats(); st.PreviousChunks != 2 || st.CurrentChunks != 1 || st.TotalChunks != 3 {
		t.Errorf("frame 2 stats = %+v", st)
	}
	a.endFrame()

	if st := a.stats(); st.FreeChunks != 2 || st.PreviousChunks != 1 {
		t.Errorf("after frame 2 = %+v", st)
	}
	for range 8 {
		if _, err := a.alloc(); err != nil {
			t.Fatal(err)
		}
	}
	if st := a.stats(); st.TotalChunks != 3 || st.FreeChunks != 0 {
		t.Errorf("free chunks should be recycled before allocating, stats = %+v", st)
	}
}

func TestArena_AllocZeroes(t *testing.T) {
	a := newArena(2, 0)
	for range 3 {
		w, _ := a.alloc()
		w.id = 7
		w.states = []stateBlock{{key: 1}}
		a.endFrame()
	}
	// a recycled chunk is handed out
	w, _ := a.alloc()
	if w.id != 0 || w.states != nil {
		t.Errorf("recycled widget not zeroed: %+v", w)
	}
}

func TestArena_Limit(t *testing.T) {
	a := newArena(2, 1)
	for range 2 {
		if _, err := a.alloc(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := a.alloc(); !errors.Is(err, ErrArenaExhausted) {
		t.Errorf("alloc() = %v, want ErrArenaExhausted", err)
	}
	if a.stats().TotalChunks != 1 {
		t.Error("the limit should hold")
	}
}

func TestArena_DefaultCapacity(t *testing.T) {
	if a := newArena(0, 0); a.chunkCapacity != DefaultChunkCapacity {
		t.Errorf("capacity = %d", a.chunkCapacity)
	}
}
