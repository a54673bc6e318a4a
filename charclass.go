package bunsetsu

import "unicode"

// RuneSet is an immutable set of characters assembled from Unicode range
// tables and literal runes. Membership never changes after construction, so
// a set can be shared between engines and goroutines.
type RuneSet struct {
	runes  []rune
	tables []*unicode.RangeTable
}

// NewRuneSet builds a set from literal runes and range tables. Both inputs
// are copied; later changes to the arguments do not affect the set.
func NewRuneSet(runes []rune, tables ...*unicode.RangeTable) *RuneSet {
	s := &RuneSet{
		runes:  make([]rune, len(runes)),
		tables: make([]*unicode.RangeTable, len(tables)),
	}
	copy(s.runes, runes)
	copy(s.tables, tables)
	return s
}

// Contains reports whether r is a member of the set. A nil set holds no
// characters.
func (s *RuneSet) Contains(r rune) bool {
	if s == nil {
		return false
	}
	for _, m := range s.runes {
		if m == r {
			return true
		}
	}
	return unicode.In(r, s.tables...)
}

// DefaultDigitOpenAlpha returns the characters a phrase may flow over
// without interrupting an eligible text run: decimal digits, opening and
// initial punctuation and everything alphabetic.
func DefaultDigitOpenAlpha() *RuneSet {
	return NewRuneSet(nil,
		unicode.Nd,
		unicode.Ps,
		unicode.Pi,
		unicode.L,
		unicode.Other_Alphabetic,
	)
}

// DefaultClosePunct returns the characters no phrase may start with:
// connector, dash, closing, final and other punctuation. A candidate
// boundary directly before one of these is rejected without scoring.
func DefaultClosePunct() *RuneSet {
	return NewRuneSet(nil,
		unicode.Pc,
		unicode.Pd,
		unicode.Pe,
		unicode.Pf,
		unicode.Po,
	)
}
