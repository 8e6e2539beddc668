package imui

import "strings"

// Interner deduplicates surface, window and widget names. Equal names map to
// one canonical string that does not alias caller memory, so name
// comparisons across frames never depend on buffers the caller reuses.
//
// Names that go unused for a whole frame drop out of the table; strings
// already handed out stay valid.
type Interner struct {
	store *frameStore[string, string]
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{store: newFrameStore[string, string]()}
}

// Intern returns the canonical copy of s.
func (in *Interner) Intern(s string) string {
	if s == "" {
		return ""
	}
	if c, ok := in.store.get(s); ok {
		return c
	}
	c := strings.Clone(s)
	in.store.put(c, c)
	return c
}

// Len returns the number of names in the table.
func (in *Interner) Len() int {
	return in.store.len()
}

func (in *Interner) beginFrame(frame uint64) int {
	return in.store.beginFrame(frame)
}
