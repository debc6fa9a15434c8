// Package dictionary provides the word index the solver prunes its search with.
//
// The solver only depends on PrefixDictionary. Trie, backed by a Patricia trie,
// is the production implementation. PrefixSet trades memory for a plain hash lookup.
// Keys are stored as given; normalization (case folding, diacritic stripping)
// happens once in the loaders, never at query time.
package dictionary

// PrefixDictionary answers the two questions the search engine asks on every path.
// Both must be sublinear in the vocabulary size.
type PrefixDictionary interface {
	// Contains reports whether word is a key.
	Contains(word string) bool

	// HasPrefix reports whether at least one key starts with prefix (the key itself included).
	HasPrefix(prefix string) bool
}
