package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMissingHeader is returned when sequence data appears before the
	// first '>' header line.
	ErrMissingHeader = errors.New("fasta: sequence data before first header")
)

// Record is one FASTA entry. The header line '>' is split at the first
// space into ID and Description.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// File is one parsed FASTA file: its comment lines (the ';' dialect,
// leading semicolon and surrounding whitespace stripped) and its records
// in file order.
type File struct {
	Comments []string
	Records  []Record
}

// maxLineSize bounds a single FASTA line; whole chromosomes on one line
// still fit.
const maxLineSize = 64 * 1024 * 1024

// Parse reads records from r until EOF. Blank lines are skipped,
// sequence data may span multiple lines, and '\r' line endings are
// tolerated. A file with no records parses to an empty File.
func Parse(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	f := &File{}
	var cur *Record
	var seq strings.Builder

	flush := func() {
		if cur == nil {
			return
		}
		cur.Sequence = seq.String()
		f.Records = append(f.Records, *cur)
		seq.Reset()
		cur = nil
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == "":
		case line[0] == ';':
			f.Comments = append(f.Comments, strings.TrimSpace(line[1:]))
		case line[0] == '>':
			flush()
			id, desc, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
			cur = &Record{ID: id, Description: strings.TrimSpace(desc)}
		default:
			if cur == nil {
				return nil, ErrMissingHeader
			}
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: %w", err)
	}
	flush()

	return f, nil
}

// lineWidth is the sequence wrap column on output.
const lineWidth = 80

// Write serializes f: comments first, then each record with its sequence
// wrapped at 80 characters.
func Write(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	for _, c := range f.Comments {
		fmt.Fprintf(bw, ";%s\n", c)
	}
	for _, r := range f.Records {
		if r.Description != "" {
			fmt.Fprintf(bw, ">%s %s\n", r.ID, r.Description)
		} else {
			fmt.Fprintf(bw, ">%s\n", r.ID)
		}
		for i := 0; i < len(r.Sequence); i += lineWidth {
			end := min(i+lineWidth, len(r.Sequence))
			bw.WriteString(r.Sequence[i:end])
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
