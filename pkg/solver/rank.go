package solver

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bastiangx/wordgrid/pkg/board"
)

// SortMode selects the ranking key.
type SortMode string

const (
	// SortByScore orders by (score, -length, word), descending.
	SortByScore SortMode = "score"
	// SortByLength orders by (length, score, word), descending.
	SortByLength SortMode = "length"
	// SortByStart orders by (start position, score, word), ascending.
	SortByStart SortMode = "start"
	// SortByEnd orders by (end position, score, word), ascending.
	SortByEnd SortMode = "end"
)

// SortModes lists the accepted modes, default first.
var SortModes = []SortMode{SortByScore, SortByLength, SortByStart, SortByEnd}

// ParseSortMode accepts a mode name; the empty string selects SortByScore.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortByScore, nil
	}
	m := SortMode(strings.ToLower(s))
	if slices.Contains(SortModes, m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownSortMode, s, SortModes)
}

// descending reports the intrinsic direction of the mode.
func (m SortMode) descending() bool {
	return m == SortByScore || m == SortByLength
}

func comparePos(a, b board.Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// compareKeys compares the key tuples of a and b in ascending order.
func (m SortMode) compareKeys(a, b Candidate) int {
	var c int
	switch m {
	case SortByLength:
		c = cmp.Or(cmp.Compare(a.Len(), b.Len()), cmp.Compare(a.Score, b.Score))
	case SortByStart:
		c = cmp.Or(comparePos(a.Snake.Start(), b.Snake.Start()), cmp.Compare(a.Score, b.Score))
	case SortByEnd:
		c = cmp.Or(comparePos(a.Snake.End(), b.Snake.End()), cmp.Compare(a.Score, b.Score))
	default:
		c = cmp.Or(cmp.Compare(a.Score, b.Score), cmp.Compare(b.Len(), a.Len()))
	}
	return cmp.Or(c, strings.Compare(a.Word, b.Word))
}

// Rank returns a sorted copy of entries.
//
// The whole key tuple follows the mode's direction, word included, so the
// descending modes break ties in reverse alphabetical order. reverse flips the
// direction rather than reversing the output.
func Rank(entries []Candidate, mode SortMode, reverse bool) []Candidate {
	desc := mode.descending()
	if reverse {
		desc = !desc
	}

	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Candidate) int {
		c := mode.compareKeys(a, b)
		if desc {
			return -c
		}
		return c
	})
	return out
}
