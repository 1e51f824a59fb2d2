package glyph

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/image/math/fixed"
)

type countingRasterizer struct {
	calls map[rune]int
}

func (c *countingRasterizer) Rasterize(r rune) (*Glyph, error) {
	c.calls[r]++
	if r == 'x' {
		return nil, &UnsupportedRuneError{Runes: []rune{r}}
	}
	return &Glyph{Rune: r, Advance: fixed.I(int(r))}, nil
}

func TestCachedRasterizer(t *testing.T) {
	next := &countingRasterizer{calls: make(map[rune]int)}
	c := NewCachedRasterizer(next, 2)

	for _, r := range "aab" {
		g, err := c.Rasterize(r)
		if err != nil {
			t.Fatalf("Rasterize(%q) error = %v", r, err)
		}
		if g.Rune != r {
			t.Errorf("Rasterize(%q).Rune = %q", r, g.Rune)
		}
	}
	if next.calls['a'] != 1 || next.calls['b'] != 1 {
		t.Errorf("calls = %v, want one per rune", next.calls)
	}

	// 'a' is now the least recently used entry.
	if _, err := c.Rasterize('c'); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Rasterize('b'); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Rasterize('a'); err != nil {
		t.Fatal(err)
	}
	if next.calls['a'] != 2 {
		t.Errorf("'a' rasterized %d times, want 2 after eviction", next.calls['a'])
	}
	if next.calls['b'] != 1 {
		t.Errorf("'b' rasterized %d times, want 1", next.calls['b'])
	}

	stats := c.Stats()
	want := CacheStats{Len: 2, Capacity: 2, Hits: 2, Misses: 4, Evictions: 2}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestCachedRasterizerErrorsNotCached(t *testing.T) {
	next := &countingRasterizer{calls: make(map[rune]int)}
	c := NewCachedRasterizer(next, 0)

	for range 2 {
		if _, err := c.Rasterize('x'); !errors.Is(err, ErrUnsupportedRune) {
			t.Fatalf("Rasterize('x') error = %v, want ErrUnsupportedRune", err)
		}
	}
	if next.calls['x'] != 2 {
		t.Errorf("failing rune rasterized %d times, want 2", next.calls['x'])
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Stats().Capacity != DefaultCacheCapacity {
		t.Errorf("Capacity = %d, want %d", c.Stats().Capacity, DefaultCacheCapacity)
	}
}

func TestCachedRasterizerClear(t *testing.T) {
	next := &countingRasterizer{calls: make(map[rune]int)}
	c := NewCachedRasterizer(next, 4)

	_, _ = c.Rasterize('a')
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", c.Len())
	}
	_, _ = c.Rasterize('a')
	if next.calls['a'] != 2 {
		t.Errorf("'a' rasterized %d times after Clear, want 2", next.calls['a'])
	}
}

// exclusiveRasterizer fails the test when entered from two goroutines.
type exclusiveRasterizer struct {
	t      *testing.T
	inside atomic.Int32
	calls  atomic.Int32
}

func (e *exclusiveRasterizer) Rasterize(r rune) (*Glyph, error) {
	if e.inside.Add(1) != 1 {
		e.t.Error("wrapped Rasterizer called concurrently")
	}
	defer e.inside.Add(-1)
	e.calls.Add(1)
	return &Glyph{Rune: r}, nil
}

func TestCachedRasterizerConcurrent(t *testing.T) {
	next := &exclusiveRasterizer{t: t}
	c := NewCachedRasterizer(next, 8)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				r := rune('a' + (i+j)%16)
				g, err := c.Rasterize(r)
				if err != nil {
					t.Errorf("Rasterize(%q) error = %v", r, err)
					continue
				}
				if g.Rune != r {
					t.Errorf("Rasterize(%q).Rune = %q", r, g.Rune)
				}
			}
		}()
	}
	wg.Wait()

	st := c.Stats()
	if st.Hits+st.Misses != 800 {
		t.Errorf("hits+misses = %d, want 800", st.Hits+st.Misses)
	}
	if int32(st.Misses) != next.calls.Load() {
		t.Errorf("misses = %d, wrapped calls = %d", st.Misses, next.calls.Load())
	}
}
