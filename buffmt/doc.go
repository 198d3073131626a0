// Package buffmt provides bounded printf-style formatting into
// caller-supplied buffers.
//
// Unlike C's snprintf there is no formatter error path: Go's fmt renders
// bad verbs into the output instead of failing. Format therefore only
// reports the size of the complete rendering, which callers use to decide
// whether their buffer was large enough.
package buffmt
