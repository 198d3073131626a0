// Package logging is the public API of the library: a process-wide logger
// with dotted-namespace severity inheritance and a pluggable output sink.
//
// The state behind this package is global and initialized once, either
// explicitly through Initialize (or InitializeWithAllocator) or implicitly
// by the first Log call. Shutdown releases the severity map and returns the
// system to its uninitialized state.
//
// Loggers are named with dot-separated byte strings. A name with no
// configured threshold inherits from its longest configured ancestor at a
// '.' boundary, falling back to the process default (INFO after
// initialization). The empty name addresses the default threshold directly.
//
// Configuration — initialization, shutdown, thresholds, the output handler
// and the output format — is not safe for concurrent use and must happen
// while no other goroutine is logging. Log itself is safe to call from
// multiple goroutines only to the extent the active handler is; the
// console sink serializes at the granularity of one Write per line.
//
// The console line format is configurable through the
// RCUTILS_CONSOLE_OUTPUT_FORMAT environment variable, read once during
// initialization. See package formatter for the template language.
package logging
