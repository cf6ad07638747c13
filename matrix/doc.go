// Package matrix owns the rectangular character matrix of an alignment
// and performs its structural edits.
//
// The matrix never reasons about negative positions or slices; it only
// receives ordinals that package position has already validated. Edits
// mutate in place; callers that need copy semantics clone first.
package matrix
