// Package fasta reads and writes FASTA files, including the
// semicolon-comment dialect, with transparent gzip handling on both
// ends. It carries raw records only; rectangularity and alignment
// semantics are enforced by the importing layer.
package fasta
