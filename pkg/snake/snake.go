// Package snake represents a trace across the board: an ordered run of distinct,
// 8-adjacent positions spelling a candidate word.
//
// A Snake is persistent. Extend never touches the receiver, it returns a new node
// that points at it, so sibling branches of a search share their common prefix
// instead of copying it.
package snake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordgrid/pkg/board"
)

// ErrInvariantViolation is the panic value (wrapped) raised when Extend is asked to
// revisit a position or jump to a non-adjacent one. Callers are expected to check first.
var ErrInvariantViolation = errors.New("snake: invariant violation")

// Snake is an immutable, non-empty path.
type Snake struct {
	parent *Snake
	pos    board.Position
	start  board.Position
	length int
}

// New returns the length-1 snake at p.
func New(p board.Position) *Snake {
	return &Snake{pos: p, start: p, length: 1}
}

// Len is the number of positions.
func (s *Snake) Len() int { return s.length }

// Start returns the first position.
func (s *Snake) Start() board.Position { return s.start }

// End returns the last position.
func (s *Snake) End() board.Position { return s.pos }

// Contains reports whether p is already on the snake.
func (s *Snake) Contains(p board.Position) bool {
	for n := s; n != nil; n = n.parent {
		if n.pos == p {
			return true
		}
	}
	return false
}

// Extend returns a new snake with p appended.
// It panics with ErrInvariantViolation if p is on the snake or not adjacent to End.
func (s *Snake) Extend(p board.Position) *Snake {
	if s.Contains(p) {
		panic(fmt.Errorf("%w: %v already in snake %v", ErrInvariantViolation, p, s))
	}
	if !s.pos.Adjacent(p) {
		panic(fmt.Errorf("%w: %v not adjacent to %v", ErrInvariantViolation, p, s.pos))
	}
	return &Snake{parent: s, pos: p, start: s.start, length: s.length + 1}
}

// Positions returns the positions from start to end.
func (s *Snake) Positions() []board.Position {
	out := make([]board.Position, s.length)
	i := s.length - 1
	for n := s; n != nil; n = n.parent {
		out[i] = n.pos
		i--
	}
	return out
}

func (s *Snake) String() string {
	parts := make([]string, 0, s.length)
	for _, p := range s.Positions() {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}
