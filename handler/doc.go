// Package handler defines the output-handler contract and the default
// console sink.
//
// The wire contract is Func: a function receiving the raw log call
// (location, severity, name, printf format and args) before any rendering.
// Exactly one handler is active at a time; Handler and Adapt exist for
// implementations that prefer an interface.
//
// The console sink chooses its stream by severity (DEBUG and INFO to
// stdout, everything else to stderr), renders the user message with a 1 KiB
// buffer before falling back to an exact-size allocation, expands the
// configured template, and writes the line in a single Write call. Internal
// failures drop the line and leave a one-line diagnostic on the error
// stream.
package handler
