package dictionary

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Trie is a PrefixDictionary over a Patricia trie.
// It is safe for concurrent readers once loading is done.
type Trie struct {
	trie *patricia.Trie
	size int
}

// NewTrie builds a trie holding words.
func NewTrie(words ...string) *Trie {
	t := &Trie{trie: patricia.NewTrie()}
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts word and reports whether it was new. Empty words are ignored.
func (t *Trie) Add(word string) bool {
	if word == "" {
		return false
	}
	if !t.trie.Insert(patricia.Prefix(word), true) {
		return false
	}
	t.size++
	return true
}

// Contains implements PrefixDictionary.
func (t *Trie) Contains(word string) bool {
	return t.trie.Get(patricia.Prefix(word)) != nil
}

// HasPrefix implements PrefixDictionary.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.size > 0
	}
	return t.trie.MatchSubtree(patricia.Prefix(prefix))
}

// Len is the number of distinct words.
func (t *Trie) Len() int { return t.size }

// Keys returns every word, sorted.
func (t *Trie) Keys() []string {
	keys := make([]string, 0, t.size)
	err := t.trie.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		keys = append(keys, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie: %v", err)
	}
	sort.Strings(keys)
	return keys
}

// KeysWithPrefix returns the words starting with prefix, sorted.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	var keys []string
	err := t.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		keys = append(keys, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	sort.Strings(keys)
	return keys
}
