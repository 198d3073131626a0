package alloc

import "testing"

// stats counts calls through a tracking allocator.
type stats struct {
	allocs, deallocs, reallocs int
}

// tracking returns a valid allocator that counts every call in s.
func tracking(s *stats) Allocator {
	return Allocator{
		Allocate: func(size int, state interface{}) []byte {
			state.(*stats).allocs++
			return make([]byte, size)
		},
		Deallocate: func(_ []byte, state interface{}) {
			state.(*stats).deallocs++
		},
		Reallocate: func(p []byte, size int, state interface{}) []byte {
			state.(*stats).reallocs++
			np := make([]byte, size)
			copy(np, p)
			return np
		},
		State: s,
	}
}

// failing returns a valid allocator whose allocations always fail.
func failing(s *stats) Allocator {
	a := tracking(s)
	a.Allocate = func(int, interface{}) []byte { return nil }
	a.Reallocate = func([]byte, int, interface{}) []byte { return nil }
	return a
}

func TestDefaultAllocator(t *testing.T) {
	a := Default()
	if !a.Valid() {
		t.Fatal("default allocator is not valid")
	}

	p := a.Allocate(16, a.State)
	if len(p) != 16 {
		t.Fatalf("Allocate(16) returned %d bytes", len(p))
	}
	copy(p, "hello")

	p = a.Reallocate(p, 64, a.State)
	if len(p) != 64 {
		t.Fatalf("Reallocate(64) returned %d bytes", len(p))
	}
	if string(p[:5]) != "hello" {
		t.Errorf("Reallocate did not preserve contents: %q", p[:5])
	}

	a.Deallocate(p, a.State)
}

func TestZeroAllocatorInvalid(t *testing.T) {
	if Zero().Valid() {
		t.Error("zero allocator reported valid")
	}
	if (Allocator{}).Valid() {
		t.Error("zero value reported valid")
	}
	partial := Default()
	partial.Reallocate = nil
	if partial.Valid() {
		t.Error("allocator with nil Reallocate reported valid")
	}
}

func TestReallocfGrows(t *testing.T) {
	var s stats
	a := tracking(&s)

	p := a.Allocate(8, a.State)
	copy(p, "abcdefgh")
	p = Reallocf(p, 32, a)
	if len(p) != 32 || string(p[:8]) != "abcdefgh" {
		t.Fatalf("Reallocf lost contents: %q", p[:8])
	}
	if s.reallocs != 1 || s.deallocs != 0 {
		t.Errorf("reallocs=%d deallocs=%d, want 1 and 0", s.reallocs, s.deallocs)
	}
}

func TestReallocfFreesOnFailure(t *testing.T) {
	var s stats
	a := failing(&s)

	p := make([]byte, 8)
	if got := Reallocf(p, 32, a); got != nil {
		t.Fatalf("Reallocf on failing allocator returned %v, want nil", got)
	}
	if s.deallocs != 1 {
		t.Errorf("old block was not freed, deallocs=%d", s.deallocs)
	}
}

func TestReallocfInvalidAllocator(t *testing.T) {
	// Cannot free safely, so the pointer must be leaked, not freed.
	if got := Reallocf(make([]byte, 8), 32, Zero()); got != nil {
		t.Fatalf("Reallocf with invalid allocator returned %v, want nil", got)
	}
}
