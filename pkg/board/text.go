package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/wordgrid/pkg/language"
)

// tokenWidth is the column width used when printing a board.
const tokenWidth = 4

// ParseToken splits a board token such as "Mtw" or "e" into letter and multiplier.
// The letter is upper-cased, the tag lower-cased.
func ParseToken(tok string) (Spec, error) {
	r, size := utf8.DecodeRuneInString(tok)
	if size == 0 {
		return Spec{}, fmt.Errorf("%w: empty token", ErrValidation)
	}
	if r == utf8.RuneError {
		return Spec{}, fmt.Errorf("%w: invalid UTF-8 in token %q", ErrConfiguration, tok)
	}
	mult, err := ParseMultiplier(strings.ToLower(tok[size:]))
	if err != nil {
		return Spec{}, err
	}
	return Spec{Letter: unicode.ToUpper(r), Multiplier: mult}, nil
}

// Read parses a board: one row per line, tokens separated by whitespace.
// Blank lines before the first row are skipped and the first blank line after it
// ends the board, so several boards can be read from one stream.
// If r is a *bufio.Reader it is used directly and nothing past the board is consumed.
// Read returns io.EOF if the input ends before any row.
func Read(r io.Reader, lang *language.Language) (*Grid, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var specs [][]Spec
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read board: %w", err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if len(specs) > 0 || err != nil {
				break
			}
			continue
		}

		row := make([]Spec, 0, len(fields))
		for _, f := range fields {
			spec, perr := ParseToken(f)
			if perr != nil {
				return nil, fmt.Errorf("row %d: %w", len(specs), perr)
			}
			row = append(row, spec)
		}
		specs = append(specs, row)
		if err != nil {
			break
		}
	}

	if len(specs) == 0 {
		return nil, io.EOF
	}
	return NewGrid(lang, specs)
}

// ReadFile reads a board file. An empty file is a validation error.
func ReadFile(path string, lang *language.Language) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board file: %w", err)
	}
	defer f.Close()

	g, err := Read(f, lang)
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: board file %s seems empty", ErrValidation, path)
	}
	return g, err
}

// Format renders the grid in the board file format, optionally with multipliers.
func (g *Grid) Format(withMultipliers bool) string {
	rows := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for c := 0; c < g.cols; c++ {
			tok := g.Cell(Position{Row: r, Col: c}).Token(withMultipliers)
			sb.WriteString(tok)
			if pad := tokenWidth - utf8.RuneCountInString(tok); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		rows[r] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(rows, "\n")
}

// WriteTo writes the grid with multipliers so that Read can load it back.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Format(true)+"\n")
	return int64(n), err
}

// SaveFile writes the grid to path.
func (g *Grid) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create board file: %w", err)
	}
	if _, err := g.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
