package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/alngo"
	"github.com/hupe1980/alngo/blobstore"
	"github.com/hupe1980/alngo/codec"
	"github.com/hupe1980/alngo/metadata"
	"github.com/hupe1980/alngo/position"
)

var magic = [4]byte{'A', 'L', 'N', 'S'}

const version = 1

var (
	// ErrBadMagic is returned when the blob does not start with the
	// snapshot magic bytes.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrTruncated is returned when the blob ends inside the header.
	ErrTruncated = errors.New("snapshot: truncated header")
)

// UnsupportedVersionError is returned for snapshots written by a newer
// format revision.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("snapshot: unsupported format version %d", e.Version)
}

// Option configures Save and Encode.
type Option func(*options)

type options struct {
	codec       codec.Codec
	compression Compression
}

// WithCodec selects the payload codec. Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithCompression selects the payload compression. Defaults to Zstd.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// payload is the complete serialized aggregate. Edit history is not part
// of a snapshot; a loaded alignment starts with a fresh log.
type payload struct {
	Name    string              `json:"name"`
	Records []alngo.Record      `json:"records"`
	Columns []metadata.Document `json:"columns"`
	Meta    metadata.Document   `json:"meta,omitempty"`
}

// Encode serializes the alignment to the self-describing snapshot
// format: magic, version, codec name, compression name, then the
// compressed payload.
func Encode(a *alngo.Alignment, opts ...Option) ([]byte, error) {
	o := options{codec: codec.Default, compression: Zstd{}}
	for _, fn := range opts {
		fn(&o)
	}

	records, err := a.Records(position.All())
	if err != nil {
		return nil, err
	}
	items, err := a.ColumnItems(position.All())
	if err != nil {
		return nil, err
	}
	columns := make([]metadata.Document, len(items))
	for j, item := range items {
		columns[j] = item.Fields
	}

	p := payload{
		Name:    a.Name(),
		Records: records,
		Columns: columns,
		Meta:    a.Metadata(),
	}

	raw, err := o.codec.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode payload: %w", err)
	}
	compressed, err := o.compression.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress payload: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(version)
	writeString(&buf, o.codec.Name())
	writeString(&buf, o.compression.Name())
	buf.Write(compressed)

	return buf.Bytes(), nil
}

// Decode reconstructs an alignment from snapshot bytes. The codec and
// compression are taken from the header; unknown names fail with a
// descriptive error. Construction options (logger, history) may be
// passed through extra.
func Decode(data []byte, extra ...alngo.Option) (*alngo.Alignment, error) {
	r := bytes.NewReader(data)

	var m [4]byte
	if _, err := r.Read(m[:]); err != nil || m != magic {
		return nil, ErrBadMagic
	}
	v, err := r.ReadByte()
	if err != nil {
		return nil, ErrTruncated
	}
	if v != version {
		return nil, &UnsupportedVersionError{Version: v}
	}

	codecName, err := readString(r)
	if err != nil {
		return nil, err
	}
	compName, err := readString(r)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown codec %q", codecName)
	}
	comp, ok := CompressionByName(compName)
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown compression %q", compName)
	}

	compressed := data[len(data)-r.Len():]
	raw, err := comp.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress payload: %w", err)
	}

	var p payload
	if err := c.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}

	columns := make([]metadata.ColumnRecord, len(p.Columns))
	for j, fields := range p.Columns {
		columns[j] = metadata.ColumnRecord{Fields: fields}
	}

	opts := []alngo.Option{alngo.WithColumnMetadata(columns)}
	if p.Meta != nil {
		opts = append(opts, alngo.WithMetadata(p.Meta))
	}
	opts = append(opts, extra...)

	return alngo.New(p.Name, p.Records, opts...)
}

// Save encodes the alignment and writes it to the store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, a *alngo.Alignment, opts ...Option) error {
	data, err := Encode(a, opts...)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

// Load reads the blob under name and reconstructs the alignment.
func Load(ctx context.Context, store blobstore.BlobStore, name string, extra ...alngo.Option) (*alngo.Alignment, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return Decode(data, extra...)
}

func writeString(buf *bytes.Buffer, s string) {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
	buf.Write(lenBuf[:n])
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return "", ErrTruncated
	}
	if n > uint64(r.Len()) {
		return "", ErrTruncated
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", ErrTruncated
	}
	return string(b), nil
}
