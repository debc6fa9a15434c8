package board

import (
	"fmt"

	"github.com/bastiangx/wordgrid/pkg/language"
)

// Multiplier is the bonus tag printed after a letter on the board (e.g. "Mtw").
type Multiplier string

const (
	NoMultiplier Multiplier = ""
	DoubleLetter Multiplier = "dl"
	TripleLetter Multiplier = "tl"
	DoubleWord   Multiplier = "dw"
	TripleWord   Multiplier = "tw"
)

// ParseMultiplier validates a tag. The empty string means no multiplier.
func ParseMultiplier(tag string) (Multiplier, error) {
	switch m := Multiplier(tag); m {
	case NoMultiplier, DoubleLetter, TripleLetter, DoubleWord, TripleWord:
		return m, nil
	}
	return NoMultiplier, fmt.Errorf("%w: unrecognized multiplier %q", ErrConfiguration, tag)
}

// Factors returns the word and letter factors of the tag. A tag never sets both.
func (m Multiplier) Factors() (word, letter int) {
	switch m {
	case TripleWord:
		return 3, 1
	case DoubleWord:
		return 2, 1
	case TripleLetter:
		return 1, 3
	case DoubleLetter:
		return 1, 2
	}
	return 1, 1
}

// Position is a (row, col) coordinate, 0-indexed from the top-left corner.
type Position struct {
	Row int
	Col int
}

// Less orders positions row-major (NW to SE).
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Adjacent reports whether o is one of the 8 neighbours of p.
func (p Position) Adjacent(o Position) bool {
	dr, dc := abs(p.Row-o.Row), abs(p.Col-o.Col)
	return max(dr, dc) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Spec is the raw description of a cell before validation.
type Spec struct {
	Letter     rune
	Multiplier Multiplier
}

// Cell is a validated board cell. LetterScore already includes the letter multiplier.
type Cell struct {
	Pos            Position
	Letter         rune
	LetterScore    int
	WordMultiplier int
	Multiplier     Multiplier
}

// NewCell validates spec against lang.
func NewCell(pos Position, spec Spec, lang *language.Language) (Cell, error) {
	base, ok := lang.Score(spec.Letter)
	if !ok {
		return Cell{}, fmt.Errorf("%w: unrecognized letter %q for language %q at %v",
			ErrConfiguration, spec.Letter, lang.Code, pos)
	}
	mult, err := ParseMultiplier(string(spec.Multiplier))
	if err != nil {
		return Cell{}, fmt.Errorf("%w at %v", err, pos)
	}
	wordFactor, letterFactor := mult.Factors()
	return Cell{
		Pos:            pos,
		Letter:         spec.Letter,
		LetterScore:    base * letterFactor,
		WordMultiplier: wordFactor,
		Multiplier:     mult,
	}, nil
}

// Token renders the cell as it appears in a board file.
func (c Cell) Token(withMultiplier bool) string {
	if withMultiplier {
		return string(c.Letter) + string(c.Multiplier)
	}
	return string(c.Letter)
}

func (c Cell) String() string {
	return fmt.Sprintf("%c (L=%d, W=%d)", c.Letter, c.LetterScore, c.WordMultiplier)
}
