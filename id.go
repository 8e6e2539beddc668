package imui

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// HashName returns the widget id derived from a name. The id depends only on
// the content of the name, so named widgets keep their identity when
// siblings are inserted or reordered.
func HashName(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

// structHasher accumulates the structural hash of a closed widget.
type structHasher struct {
	h   hash.Hash64
	buf []byte
}

func newStructHasher() *structHasher {
	return &structHasher{h: fnv.New64a(), buf: make([]byte, 0, 128)}
}

func (s *structHasher) reset() {
	s.h.Reset()
	s.buf = s.buf[:0]
}

func (s *structHasher) u32(v uint32) { s.buf = binary.LittleEndian.AppendUint32(s.buf, v) }
func (s *structHasher) u64(v uint64) { s.buf = binary.LittleEndian.AppendUint64(s.buf, v) }
func (s *structHasher) f32(v float32) { s.u32(math.Float32bits(v)) }

func (s *structHasher) vec(v Vec2) {
	s.f32(v.X)
	s.f32(v.Y)
}

func (s *structHasher) thickness(t Thickness) {
	s.f32(t.Left)
	s.f32(t.Top)
	s.f32(t.Right)
	s.f32(t.Bottom)
}

func (s *structHasher) str(v string) {
	s.u32(uint32(len(v)))
	s.buf = append(s.buf, v...)
}

func (s *structHasher) sum() uint64 {
	s.h.Write(s.buf)
	return s.h.Sum64()
}

// hashWidget covers identity and the layout inputs of w and, through their
// already computed hashes, of all children.
func (s *structHasher) hashWidget(w *Widget) uint64 {
	s.reset()
	s.u32(w.id)
	s.str(w.name)
	s.thickness(w.margin)
	s.thickness(w.padding)
	s.vec(w.minSize)
	s.vec(w.maxSize)
	s.vec(w.prefSize)
	s.vec(w.stretch)
	s.vec(w.align)
	hashLayout(s, w.layout)
	for c := w.firstChild; c != nil; c = c.next {
		s.u64(c.hash)
	}
	return s.sum()
}
