package main

import "testing"

func TestListClipper_Range(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		scroll     float32
		start, end int
	}{
		{"top", 100, 0, 0, 7},
		{"middle", 100, 250, 12, 19},
		{"bottom", 100, 1900, 95, 100},
		{"short list", 3, 0, 0, 3},
		{"empty", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newListClipper(tt.total, 20, 100, tt.scroll)
			if c.start != tt.start || c.end != tt.end {
				t.Errorf("range = [%d, %d), want [%d, %d)", c.start, c.end, tt.start, tt.end)
			}
			if got := c.before() + float32(c.end-c.start)*20 + c.after(); got != float32(tt.total)*20 {
				t.Errorf("spacers and rows cover %v, want %v", got, float32(tt.total)*20)
			}
		})
	}
}

func TestListClipper_Scroll(t *testing.T) {
	c := newListClipper(10, 20, 100, 0)
	if got := c.maxScroll(100); got != 100 {
		t.Errorf("maxScroll = %v, want 100", got)
	}
	if got := c.scrollTo(7, 0, 100); got != 60 {
		t.Errorf("scrollTo(7) = %v, want 60", got)
	}
	if got := c.scrollTo(1, 60, 100); got != 20 {
		t.Errorf("scrollTo(1) = %v, want 20", got)
	}
	if got := c.scrollTo(4, 60, 100); got != 60 {
		t.Errorf("visible row should not scroll, got %v", got)
	}
	if got := newListClipper(2, 20, 100, 0).maxScroll(100); got != 0 {
		t.Errorf("short list maxScroll = %v", got)
	}
}
