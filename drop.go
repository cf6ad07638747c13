package alngo

import "github.com/hupe1980/alngo/engine"

// MatchMode controls how a column-drop helper matches a column's site
// against a character set.
type MatchMode int

const (
	// MatchAny matches a column if at least one character of its site is
	// in the set.
	MatchAny MatchMode = iota
	// MatchAll matches a column only if every character of its site is
	// in the set.
	MatchAll
)

func (m MatchMode) String() string {
	if m == MatchAll {
		return "all"
	}
	return "any"
}

type charSet [256]bool

func newCharSet(chars string, caseSensitive bool) *charSet {
	var s charSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s[c] = true
		if !caseSensitive {
			s[foldByte(c)] = true
		}
	}
	return &s
}

func (s *charSet) contains(c byte) bool { return s[c] }

func foldByte(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - ('a' - 'A')
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	}
	return c
}

// matchPredicate reports whether a site matches the set under mode. A
// zero-row site never matches.
func matchPredicate(set *charSet, mode MatchMode) Predicate {
	return func(site string) bool {
		if len(site) == 0 {
			return false
		}
		for i := 0; i < len(site); i++ {
			in := set.contains(site[i])
			if mode == MatchAll && !in {
				return false
			}
			if mode == MatchAny && in {
				return true
			}
		}
		return mode == MatchAll
	}
}

// outsidePredicate reports whether a site contains any character outside
// the set.
func outsidePredicate(set *charSet) Predicate {
	return func(site string) bool {
		for i := 0; i < len(site); i++ {
			if !set.contains(site[i]) {
				return true
			}
		}
		return false
	}
}

// dropColumns removes the columns pred matched. In the returned report
// Matched always holds the dropped candidates, so a dry run states
// exactly which columns a real call would remove.
func (a *Alignment) dropColumns(pred Predicate, o editOptions) (*FilterReport, error) {
	o.inverse = !o.inverse
	report, err := a.filter(engine.Columns, pred, o)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DropColumnsWith removes every column whose site matches chars under
// mode: with MatchAny a single occurrence of any listed character drops
// the column, with MatchAll the site must consist entirely of listed
// characters. Matching ignores case unless WithCaseSensitive is given.
// The report's Matched slice holds the dropped positions.
func (a *Alignment) DropColumnsWith(chars string, mode MatchMode, opts ...EditOption) (*FilterReport, error) {
	o := newEditOptions(opts)
	return a.dropColumns(matchPredicate(newCharSet(chars, o.caseSensitive), mode), o)
}

// DropColumnsExcept removes every column whose site contains a character
// not listed in chars, keeping only columns composed entirely of allowed
// characters.
func (a *Alignment) DropColumnsExcept(chars string, opts ...EditOption) (*FilterReport, error) {
	o := newEditOptions(opts)
	return a.dropColumns(outsidePredicate(newCharSet(chars, o.caseSensitive)), o)
}

// DropAmbiguous removes every column containing the ambiguity character
// (for nucleotide data typically 'N').
func (a *Alignment) DropAmbiguous(ambiguous byte, opts ...EditOption) (*FilterReport, error) {
	return a.DropColumnsWith(string(ambiguous), MatchAny, opts...)
}

// DropGaps removes every column containing the gap character (typically
// '-').
func (a *Alignment) DropGaps(gap byte, opts ...EditOption) (*FilterReport, error) {
	return a.DropColumnsWith(string(gap), MatchAny, opts...)
}
