package alngo

import (
	"context"

	"github.com/hupe1980/alngo/fasta"
	"github.com/hupe1980/alngo/metadata"
)

// CommentsKey is the alignment metadata key FromFASTA stores the file's
// semicolon comments under, as an array of strings.
const CommentsKey = "comments"

// FromFASTA loads an alignment from a FASTA file. Gzip input is handled
// transparently and "-" reads stdin. Comment lines are kept as alignment
// metadata under CommentsKey. All sequences must have equal length.
func FromFASTA(ctx context.Context, path, name string, opts ...Option) (*Alignment, error) {
	f, err := fasta.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return fromFile(f, name, opts...)
}

func fromFile(f *fasta.File, name string, opts ...Option) (*Alignment, error) {
	records := make([]Record, len(f.Records))
	for i, r := range f.Records {
		records[i] = Record{ID: r.ID, Description: r.Description, Sequence: r.Sequence}
	}
	a, err := New(name, records, opts...)
	if err != nil {
		return nil, err
	}
	if len(f.Comments) > 0 {
		vals := make([]metadata.Value, len(f.Comments))
		for i, c := range f.Comments {
			vals[i] = metadata.String(c)
		}
		a.SetMeta(CommentsKey, metadata.Array(vals...))
	}
	return a, nil
}

// ToFASTA writes the alignment to path, gzip-compressing when the path
// ends in .gz. Comments stored under CommentsKey are written back as
// semicolon lines.
func (a *Alignment) ToFASTA(ctx context.Context, path string) error {
	a.mu.RLock()
	f := &fasta.File{Records: make([]fasta.Record, a.eng.RowTable().Len())}
	for i := range f.Records {
		r := a.eng.RowTable().Record(i)
		f.Records[i] = fasta.Record{ID: r.ID, Description: r.Description, Sequence: a.eng.Matrix().Row(i)}
	}
	if v, ok := a.eng.Meta()[CommentsKey]; ok {
		if items, ok := v.AsArray(); ok {
			for _, item := range items {
				if s, ok := item.AsString(); ok {
					f.Comments = append(f.Comments, s)
				}
			}
		}
	}
	a.mu.RUnlock()

	return fasta.Save(ctx, path, f)
}
