package dictionary

// PrefixSet stores every prefix of every word in a hash set.
// Lookups are O(len(prefix)) for hashing; memory grows with total key length.
type PrefixSet struct {
	words    map[string]struct{}
	prefixes map[string]struct{}
}

// NewPrefixSet builds a set from words. Empty words are ignored.
func NewPrefixSet(words ...string) *PrefixSet {
	ps := &PrefixSet{
		words:    make(map[string]struct{}, len(words)),
		prefixes: make(map[string]struct{}, len(words)*4),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		ps.words[w] = struct{}{}
		for i := range w {
			if i > 0 {
				ps.prefixes[w[:i]] = struct{}{}
			}
		}
		ps.prefixes[w] = struct{}{}
	}
	return ps
}

// Contains implements PrefixDictionary.
func (ps *PrefixSet) Contains(word string) bool {
	_, ok := ps.words[word]
	return ok
}

// HasPrefix implements PrefixDictionary.
func (ps *PrefixSet) HasPrefix(prefix string) bool {
	if prefix == "" {
		return len(ps.words) > 0
	}
	_, ok := ps.prefixes[prefix]
	return ok
}

// Len is the number of distinct words.
func (ps *PrefixSet) Len() int { return len(ps.words) }
