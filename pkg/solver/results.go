package solver

// Results keeps the best candidate per word.
// A stored candidate is only replaced by a strictly higher score, so among equal
// scores the first one added wins.
type Results struct {
	index   map[string]int
	entries []Candidate
}

// NewResults returns an empty aggregate.
func NewResults() *Results {
	return &Results{index: make(map[string]int)}
}

// Add offers c and reports whether it was stored.
func (r *Results) Add(c Candidate) bool {
	i, seen := r.index[c.Word]
	if !seen {
		r.index[c.Word] = len(r.entries)
		r.entries = append(r.entries, c)
		return true
	}
	if c.Score > r.entries[i].Score {
		r.entries[i] = c
		return true
	}
	return false
}

// Get returns the stored candidate for word.
func (r *Results) Get(word string) (Candidate, bool) {
	i, ok := r.index[word]
	if !ok {
		return Candidate{}, false
	}
	return r.entries[i], true
}

// Len is the number of distinct words.
func (r *Results) Len() int { return len(r.entries) }

// Entries returns the stored candidates in first-discovery order.
func (r *Results) Entries() []Candidate {
	out := make([]Candidate, len(r.entries))
	copy(out, r.entries)
	return out
}
