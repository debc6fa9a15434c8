package board

import "errors"

var (
	// ErrConfiguration indicates a cell that the language or multiplier tables cannot describe:
	// a letter outside the alphabet or an unrecognized multiplier tag.
	ErrConfiguration = errors.New("board: configuration error")
	// ErrValidation indicates a grid with no rows, no columns, or rows of differing lengths.
	ErrValidation = errors.New("board: validation error")
)
