// Package board models a letter grid: validated cells with their scores and multipliers,
// the 8-connected neighbourhood, and the plain text board format.
package board

import (
	"fmt"

	"github.com/bastiangx/wordgrid/pkg/language"
)

// Grid is a dense rows × cols array of cells. It is immutable once built.
type Grid struct {
	lang      *language.Language
	rows      int
	cols      int
	cells     []Cell
	neighbors [][]Position
}

// NewGrid validates specs (one slice per row) against lang.
// A missing or jagged shape yields ErrValidation, an unknown letter or tag ErrConfiguration.
func NewGrid(lang *language.Language, specs [][]Spec) (*Grid, error) {
	if lang == nil {
		return nil, fmt.Errorf("%w: no language", ErrConfiguration)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrValidation)
	}
	cols := len(specs[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: grid has no columns", ErrValidation)
	}
	for r := 1; r < len(specs); r++ {
		if len(specs[r]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cols while row %d has %d cols",
				ErrValidation, r, len(specs[r]), r-1, len(specs[r-1]))
		}
	}

	g := &Grid{
		lang:  lang,
		rows:  len(specs),
		cols:  cols,
		cells: make([]Cell, 0, len(specs)*cols),
	}
	for r, row := range specs {
		for c, spec := range row {
			cell, err := NewCell(Position{Row: r, Col: c}, spec, lang)
			if err != nil {
				return nil, err
			}
			g.cells = append(g.cells, cell)
		}
	}
	g.neighbors = g.buildNeighbors()
	return g, nil
}

// buildNeighbors precomputes the clamped 8-neighbourhood of every cell in row-major order.
func (g *Grid) buildNeighbors() [][]Position {
	out := make([][]Position, len(g.cells))
	for i := range g.cells {
		p := g.cells[i].Pos
		var ns []Position
		for r := max(0, p.Row-1); r < min(g.rows, p.Row+2); r++ {
			for c := max(0, p.Col-1); c < min(g.cols, p.Col+2); c++ {
				if r == p.Row && c == p.Col {
					continue
				}
				ns = append(ns, Position{Row: r, Col: c})
			}
		}
		out[i] = ns
	}
	return out
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Language returns the table the grid was validated against.
func (g *Grid) Language() *language.Language { return g.lang }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("board: position %v outside %dx%d grid", p, g.rows, g.cols))
	}
	return p.Row*g.cols + p.Col
}

// Cell returns the cell at p. It panics if p is out of bounds.
func (g *Grid) Cell(p Position) Cell { return g.cells[g.index(p)] }

// LetterAt returns the letter at p.
func (g *Grid) LetterAt(p Position) rune { return g.cells[g.index(p)].Letter }

// ScoreAt returns the letter score at p with the letter multiplier applied.
func (g *Grid) ScoreAt(p Position) int { return g.cells[g.index(p)].LetterScore }

// WordMultiplierAt returns the word factor at p (1, 2 or 3).
func (g *Grid) WordMultiplierAt(p Position) int { return g.cells[g.index(p)].WordMultiplier }

// Neighbors returns the in-bounds 8-neighbours of p in row-major order.
// The returned slice is shared and must not be modified.
func (g *Grid) Neighbors(p Position) []Position { return g.neighbors[g.index(p)] }

// Positions returns every position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Pos
	}
	return out
}

// Letters returns the letters of the grid in row-major order.
func (g *Grid) Letters() []rune {
	out := make([]rune, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Letter
	}
	return out
}

func (g *Grid) String() string {
	return g.Format(true)
}
