package alngo

import "github.com/hupe1980/alngo/metadata"

type options struct {
	meta      metadata.Document
	columns   []metadata.ColumnRecord
	logger    *Logger
	noHistory bool
}

// Option configures alignment construction.
type Option func(*options)

// WithMetadata seeds the alignment-level metadata document (comments,
// provenance). The document is deep-copied.
func WithMetadata(meta metadata.Document) Option {
	return func(o *options) {
		o.meta = meta
	}
}

// WithColumnMetadata seeds the per-column metadata table. The record
// count must equal the sequence length.
func WithColumnMetadata(records []metadata.ColumnRecord) Option {
	return func(o *options) {
		o.columns = records
	}
}

// WithLogger installs a logger. If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithoutHistory disables edit-history tracking for this alignment and
// the copies derived from it.
func WithoutHistory() Option {
	return func(o *options) {
		o.noHistory = true
	}
}

// EditOption configures a single edit or filter call.
type EditOption func(*editOptions)

type editOptions struct {
	copy          bool
	inverse       bool
	dryRun        bool
	caseSensitive bool
}

func newEditOptions(opts []EditOption) editOptions {
	var o editOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithCopy leaves the receiver untouched and returns an edited copy
// owning fully independent storage.
func WithCopy() EditOption {
	return func(o *editOptions) {
		o.copy = true
	}
}

// WithInverse keeps the positions the filter predicate rejected instead
// of the ones it matched. Filter calls only.
func WithInverse() EditOption {
	return func(o *editOptions) {
		o.inverse = true
	}
}

// WithDryRun evaluates a filter and reports its partitions without any
// structural change, regardless of WithCopy. Filter calls only.
func WithDryRun() EditOption {
	return func(o *editOptions) {
		o.dryRun = true
	}
}

// WithCaseSensitive makes the character matching of the column-drop
// helpers case-sensitive. By default 'n' and 'N' are treated as the same
// character.
func WithCaseSensitive() EditOption {
	return func(o *editOptions) {
		o.caseSensitive = true
	}
}
