package alloc

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ErrBadAlloc is returned when an allocator fails a required allocation.
var ErrBadAlloc = errors.New("allocation failed")

// AllocateFunc returns a new block of size bytes, or nil on failure.
type AllocateFunc func(size int, state interface{}) []byte

// DeallocateFunc releases a block previously obtained from the same allocator.
type DeallocateFunc func(p []byte, state interface{})

// ReallocateFunc resizes a block, preserving its contents up to the smaller
// of the old and new sizes. It returns nil on failure, leaving p untouched.
type ReallocateFunc func(p []byte, size int, state interface{}) []byte

// Allocator bundles the three allocation functions with an opaque State
// value handed back on every call. The zero value is invalid; use Default
// for the runtime-backed allocator.
type Allocator struct {
	Allocate   AllocateFunc
	Deallocate DeallocateFunc
	Reallocate ReallocateFunc
	State      interface{}
}

// Valid reports whether all three function fields are set.
func (a Allocator) Valid() bool {
	return a.Allocate != nil && a.Deallocate != nil && a.Reallocate != nil
}

// Default returns the runtime-backed allocator. Deallocate is a no-op; the
// garbage collector reclaims released blocks.
func Default() Allocator {
	return Allocator{
		Allocate: func(size int, _ interface{}) []byte {
			return make([]byte, size)
		},
		Deallocate: func(_ []byte, _ interface{}) {},
		Reallocate: func(p []byte, size int, _ interface{}) []byte {
			if size <= cap(p) {
				return p[:size]
			}
			np := make([]byte, size)
			copy(np, p)
			return np
		},
	}
}

// Zero returns the all-nil allocator, used as an error sentinel or
// placeholder where no allocator is configured.
func Zero() Allocator {
	return Allocator{}
}

// Reallocf resizes p through a, freeing p and returning nil when the
// reallocation fails. When a is invalid nothing can be safely reclaimed;
// a diagnostic is written to standard error and nil is returned.
func Reallocf(p []byte, size int, a Allocator) []byte {
	if a.Reallocate == nil || a.Deallocate == nil {
		fmt.Fprintln(os.Stderr,
			"alloc: Reallocf: invalid allocator or allocator function pointers, memory leaked")
		return nil
	}
	np := a.Reallocate(p, size, a.State)
	if np == nil {
		a.Deallocate(p, a.State)
	}
	return np
}
