package solver

import "errors"

var (
	// ErrGridRequired is returned when no grid is supplied.
	ErrGridRequired = errors.New("solver: grid is required")
	// ErrDictionaryRequired is returned when no dictionary is supplied.
	ErrDictionaryRequired = errors.New("solver: dictionary is required")
	// ErrUnknownSortMode is returned for a sort mode name that is not recognized.
	ErrUnknownSortMode = errors.New("solver: unknown sort mode")
)
