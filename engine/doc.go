// Package engine coordinates the character matrix and its two metadata
// tables so that every structural edit lands on all of them atomically.
//
// All mutations follow compute-then-commit: index sets are resolved and
// validated before either structure is touched, so a failed precondition
// never leaves the matrix edited but its metadata stale (or vice versa).
// Each edit exists in two modes sharing one transformation path: in-place
// (apply to the receiver) and copy (apply to a fresh deep clone and return
// it, leaving the receiver untouched).
//
// The engine itself is not goroutine-safe; the alngo façade serializes
// access with a single lock covering matrix and metadata jointly.
package engine
