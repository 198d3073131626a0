// Package core defines the shared types used across the library.
//
// It provides the Severity ladder used for threshold filtering, the
// Location type describing a log call site, and the Record type that
// carries one log event through the output pipeline. Severity values are
// spaced ten apart so that hosts can define intermediate levels without
// colliding with the built-in ladder.
package core
