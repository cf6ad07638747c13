package fasta

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
)

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for reading. "-" means stdin. Gzip input is
// detected by magic number (1F 8B) or by a .gz suffix and decompressed
// transparently.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Load parses one FASTA file from disk (or stdin for "-"), decompressing
// gzip input transparently.
func Load(ctx context.Context, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}

// LoadAll parses several FASTA files concurrently, preserving input
// order in the result. The first error cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]*File, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]*File, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			f, err := Load(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save writes f to path, gzip-compressing when the path ends in .gz. The
// file is written atomically via a temp file in the same directory.
func Save(ctx context.Context, path string, f *File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fasta-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	var w io.Writer = tmp
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(tmp)
		w = gz
	}
	if err := Write(w, f); err != nil {
		_ = tmp.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
