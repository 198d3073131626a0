// Package alloc defines the pluggable allocator contract threaded through
// all dynamic memory operations in the library.
//
// An Allocator is a small capability value: three function fields plus an
// opaque State that is passed back to every call. It is copied by value and
// never stored on the heap by the library. The Default allocator is backed
// by the Go runtime; tests substitute counting or failing allocators to
// observe and fault the allocation paths.
//
// Buffer is an allocator-backed output buffer with 1 KiB of inline storage.
// It moves to allocator-owned storage only when a write would overflow,
// growing by doubling, so the common short log line never allocates.
package alloc
