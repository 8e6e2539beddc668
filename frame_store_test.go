package imui

import "testing"

func TestFrameStore_Eviction(t *testing.T) {
	s := newFrameStore[string, int]()
	var evicted []string
	s.onEvict = func(k string, _ int) { evicted = append(evicted, k) }

	s.beginFrame(1)
	s.put("a", 1)
	s.put("b", 2)

	s.beginFrame(2)
	if v, ok := s.get("a"); !ok || v != 1 {
		t.Fatalf("get(a) = %d, %v", v, ok)
	}

	if n := s.beginFrame(3); n != 1 || len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("frame 3 evicted %d %v, want only b", n, evicted)
	}
	if _, ok := s.get("b"); ok {
		t.Error("b should be gone")
	}
	if _, ok := s.get("a"); !ok {
		t.Error("a was used in frame 2 and should survive")
	}

	s.beginFrame(4)
	s.beginFrame(5)
	if s.len() != 0 {
		t.Errorf("len() = %d after idle frames", s.len())
	}
}

func TestFrameStore_PutTwiceInFrame(t *testing.T) {
	s := newFrameStore[int, string]()
	s.beginFrame(1)
	s.put(1, "x")
	s.get(1)
	s.put(1, "y")
	if len(s.current) != 1 {
		t.Errorf("entry listed %d times in one frame", len(s.current))
	}
	if v, _ := s.get(1); v != "y" {
		t.Errorf("value = %q, want y", v)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	in.beginFrame(1)

	buf := []byte("panel")
	a := in.Intern(string(buf))
	buf[0] = 'x'
	b := in.Intern("panel")
	if a != "panel" || a != b {
		t.Errorf("Intern = %q, %q", a, b)
	}
	if in.Intern("") != "" || in.Len() != 1 {
		t.Errorf("Len() = %d, empty names are not stored", in.Len())
	}

	in.beginFrame(2)
	in.beginFrame(3)
	if in.Len() != 0 {
		t.Error("unused names should be released")
	}
}

func TestHashName(t *testing.T) {
	// FNV-1a 32
	if got := HashName(""); got != 0x811c9dc5 {
		t.Errorf("HashName(\"\") = %#x", got)
	}
	if HashName("a") == HashName("b") {
		t.Error("different names should hash differently")
	}
}
