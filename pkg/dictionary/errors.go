package dictionary

import "errors"

var (
	// ErrUnknownFormat indicates a dictionary file whose format cannot be detected.
	ErrUnknownFormat = errors.New("dictionary: unknown file format")
	// ErrEmptyDictionary indicates a source that yielded no words.
	ErrEmptyDictionary = errors.New("dictionary: no words loaded")
	// ErrBadHeader indicates a compiled file with a missing or foreign header.
	ErrBadHeader = errors.New("dictionary: bad compiled header")
)
