// Package formatter implements the output-format mini-language used to
// render log lines.
//
// A Template is a byte string in which {token} spans are replaced by fields
// of the log record; everything else is emitted verbatim. The parse is a
// single left-to-right scan: an unterminated '{' emits the remainder of the
// template literally, and an unrecognized token emits the '{' and rescans
// from the following character, so non-token text between braces survives
// unchanged. There is no escape sequence for a literal brace; this is a
// known limitation kept for compatibility.
//
// Expansion writes into an alloc.Buffer, so lines longer than the buffer's
// inline storage grow through the configured allocator and an allocation
// failure aborts the emission without producing a partial line.
package formatter
