// Package metadata provides the typed metadata model of an alignment and
// the per-row and per-column tables that mirror every structural edit of
// the character matrix.
//
// Row metadata carries a human-readable identifier and description per
// sample plus arbitrary named fields; column metadata starts empty and
// accumulates named fields. Both tables are edited with the same resolved
// ordinal sets as the matrix; the engine guarantees matrix and tables are
// never edited against different index sets.
package metadata
