// Package position resolves user-supplied position descriptors into
// validated, deduplicated ordinal lists over a row or column axis.
//
// Descriptors come in three shapes:
//
//   - Single(i): one position, negative values count from the end.
//   - List(i...): several positions, validated independently; duplicates
//     collapse to the first occurrence.
//   - Slice{Start, Stop, Step}: a half-open range with Python-style
//     defaulting and clamping, including negative steps.
//
// Resolution is a pure function of the descriptor and the axis length;
// it never consults storage. Callers capture the axis length under their
// own lock before resolving so the ordinals cannot go stale mid-edit.
package position
