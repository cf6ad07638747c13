// Package alngo provides an embedded multiple sequence alignment engine
// for Go.
//
// An Alignment pairs a rectangular character matrix (rows = samples,
// columns = aligned sites) with a per-row metadata table, a per-column
// metadata table and a free-form alignment-level metadata document, and
// keeps all four mutually consistent through every edit.
//
// # Quick Start
//
//	aln, _ := alngo.New("example", []alngo.Record{
//	    {ID: "seq1", Description: "description1", Sequence: "AACAATCGG"},
//	    {ID: "seq2", Sequence: "TACAATCGG"},
//	    {ID: "seq3", Description: "description3", Sequence: "TACAATGGG"},
//	})
//
//	// In-place edit: mutates aln and returns it.
//	aln.RemoveRows(position.Single(0))
//
//	// Copy edit: aln stays untouched, the edited copy is returned.
//	sub, _ := aln.RetainRows(position.Single(0), alngo.WithCopy())
//
// # Positions
//
// Every positional argument accepts negative indices (-1 is the last
// position), lists and Python-style slices; see package position.
//
// # Filtering
//
// FilterRows and FilterColumns evaluate a predicate exactly once per
// position against the characters found there (a full sequence for rows,
// a vertical site slice for columns) and retain the matching partition:
//
//	// Drop every column containing the ambiguity character N.
//	aln.FilterColumns(func(col string) bool {
//	    return !strings.ContainsRune(col, 'N')
//	})
//
// WithInverse keeps the rejected partition instead; WithDryRun reports
// both partitions without structural change.
//
// # Key Features
//
//   - Negative, list and slice positional indexing
//   - Remove/retain/reorder on both axes with in-place or copy semantics
//   - Predicate filtering with inverse and dry-run modes
//   - Row/column metadata kept in lockstep with the matrix
//   - FASTA loading, compressed snapshots, pluggable blob storage
package alngo
