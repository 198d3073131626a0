package alloc

// BufferInitialSize is the inline capacity of a Buffer. Writes beyond it
// move the contents to allocator-owned storage.
const BufferInitialSize = 1024

// Buffer accumulates bytes through an Allocator. It starts with inline
// storage and grows by doubling; the first growth copies the inline
// contents into an allocator-owned block. After a failed growth the buffer
// is unusable and every write returns ErrBadAlloc.
type Buffer struct {
	a       Allocator
	block   []byte
	n       int
	heap    bool
	failed  bool
	initial [BufferInitialSize]byte
}

// NewBuffer returns a Buffer that grows through a.
func NewBuffer(a Allocator) *Buffer {
	b := &Buffer{a: a}
	b.block = b.initial[:]
	return b
}

// WriteString appends s, growing the buffer if needed.
func (b *Buffer) WriteString(s string) error {
	if err := b.grow(len(s)); err != nil {
		return err
	}
	copy(b.block[b.n:], s)
	b.n += len(s)
	return nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.grow(1); err != nil {
		return err
	}
	b.block[b.n] = c
	b.n++
	return nil
}

// Bytes returns the accumulated contents. The slice is valid until the
// next write or Release.
func (b *Buffer) Bytes() []byte {
	return b.block[:b.n]
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.n
}

// Release returns any allocator-owned storage and resets the buffer to
// its inline state.
func (b *Buffer) Release() {
	if b.heap && b.block != nil {
		b.a.Deallocate(b.block, b.a.State)
	}
	b.block = b.initial[:]
	b.n = 0
	b.heap = false
	b.failed = false
}

func (b *Buffer) grow(n int) error {
	if b.failed {
		return ErrBadAlloc
	}
	need := b.n + n
	if need <= len(b.block) {
		return nil
	}
	size := len(b.block)
	for size < need {
		size *= 2
	}
	if !b.heap {
		block := b.a.Allocate(size, b.a.State)
		if block == nil || len(block) < size {
			b.failed = true
			return ErrBadAlloc
		}
		copy(block, b.block[:b.n])
		b.block = block
		b.heap = true
		return nil
	}
	block := Reallocf(b.block, size, b.a)
	if block == nil || len(block) < size {
		// Reallocf already freed the old block.
		b.block = nil
		b.failed = true
		return ErrBadAlloc
	}
	b.block = block
	return nil
}
