package solver

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/bastiangx/wordgrid/pkg/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t testing.TB, src string) *board.Grid {
	t.Helper()
	lang, err := language.Get("en")
	require.NoError(t, err)
	g, err := board.Read(strings.NewReader(src), lang)
	require.NoError(t, err)
	return g
}

func pos(r, c int) board.Position { return board.Position{Row: r, Col: c} }

func path(ps ...board.Position) *snake.Snake {
	s := snake.New(ps[0])
	for _, p := range ps[1:] {
		s = s.Extend(p)
	}
	return s
}

func solveAll(t testing.TB, g *board.Grid, dict dictionary.PrefixDictionary, opts ...Option) *Results {
	t.Helper()
	s, err := New(g, dict, opts...)
	require.NoError(t, err)
	results, _, err := s.Find()
	require.NoError(t, err)
	return results
}

func TestNewRequiresInputs(t *testing.T) {
	g := mustGrid(t, "A T\nE C")

	_, err := New(nil, dictionary.NewTrie("AT"))
	assert.ErrorIs(t, err, ErrGridRequired)

	_, err = New(g, nil)
	assert.ErrorIs(t, err, ErrDictionaryRequired)

	_, err = New(g, dictionary.NewTrie("AT"), WithWorkers(-1))
	assert.Error(t, err)

	s, err := New(g, dictionary.NewTrie("AT"), WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, s.logger)
}

func TestSmallBoard(t *testing.T) {
	g := mustGrid(t, "A T\nE C")
	results := solveAll(t, g, dictionary.NewTrie("ATE", "CAT", "TEA"))

	require.Equal(t, 3, results.Len())

	ate, ok := results.Get("ATE")
	require.True(t, ok)
	assert.Equal(t, 3, ate.Score)
	assert.Equal(t, []board.Position{pos(0, 0), pos(0, 1), pos(1, 0)}, ate.Snake.Positions())

	cat, ok := results.Get("CAT")
	require.True(t, ok)
	assert.Equal(t, 6, cat.Score)
	assert.Equal(t, []board.Position{pos(1, 1), pos(0, 0), pos(0, 1)}, cat.Snake.Positions())

	tea, ok := results.Get("TEA")
	require.True(t, ok)
	assert.Equal(t, 3, tea.Score)
}

func TestSingleLetterWordsAreNotEmitted(t *testing.T) {
	g := mustGrid(t, "A T")
	results := solveAll(t, g, dictionary.NewTrie("A", "T", "AT"))

	assert.Equal(t, 1, results.Len())
	_, ok := results.Get("A")
	assert.False(t, ok)
}

func TestCandidatesAreValidPaths(t *testing.T) {
	lang, err := language.Get("en")
	require.NoError(t, err)
	g, err := board.Generate(lang, 4, 4, rand.New(rand.NewPCG(3, 9)))
	require.NoError(t, err)
	dict := dictionary.NewTrie(wordsOnBoard(g, rand.New(rand.NewPCG(5, 5)), 60)...)

	engine, err := NewEngine(g, dict)
	require.NoError(t, err)

	count := 0
	engine.Search(func(c Candidate) {
		count++
		ps := c.Snake.Positions()
		require.Greater(t, len(ps), 1)
		assert.True(t, dict.Contains(c.Word))

		seen := map[board.Position]bool{}
		var sb strings.Builder
		for i, p := range ps {
			assert.False(t, seen[p], "position %v repeated in %s", p, c.Snake)
			seen[p] = true
			if i > 0 {
				assert.True(t, ps[i-1].Adjacent(p))
			}
			sb.WriteRune(g.LetterAt(p))
		}
		assert.Equal(t, c.Word, sb.String())
	})
	assert.Positive(t, count)
}

func TestTiedScoresKeepFirstDiscovered(t *testing.T) {
	g := mustGrid(t, "A T A")
	results := solveAll(t, g, dictionary.NewTrie("AT", "TA"))

	at, ok := results.Get("AT")
	require.True(t, ok)
	assert.Equal(t, pos(0, 0), at.Snake.Start(), "search from (0,0) runs before (0,2)")

	ta, ok := results.Get("TA")
	require.True(t, ok)
	assert.Equal(t, pos(0, 0), ta.Snake.End(), "neighbours are visited in row-major order")
}

func TestHigherScorePathWins(t *testing.T) {
	// two ways to spell TEA; only the right-hand A is doubled
	g := mustGrid(t, "A T Adl\nX E X")
	results := solveAll(t, g, dictionary.NewTrie("TEA"))

	tea, ok := results.Get("TEA")
	require.True(t, ok)
	assert.Equal(t, 4, tea.Score)
	assert.Equal(t, pos(0, 2), tea.Snake.End())
}

func TestParallelMatchesSequential(t *testing.T) {
	lang, err := language.Get("en")
	require.NoError(t, err)

	for seed := uint64(1); seed <= 5; seed++ {
		g, err := board.Generate(lang, 4, 4, rand.New(rand.NewPCG(seed, 11)))
		require.NoError(t, err)
		dict := dictionary.NewTrie(wordsOnBoard(g, rand.New(rand.NewPCG(seed, 13)), 80)...)

		seq := solveAll(t, g, dict)
		par := solveAll(t, g, dict, WithWorkers(4))

		require.Equal(t, seq.Len(), par.Len())
		for i, want := range seq.Entries() {
			got := par.Entries()[i]
			assert.Equal(t, want.Word, got.Word)
			assert.Equal(t, want.Score, got.Score)
			assert.Equal(t, want.Snake.Positions(), got.Snake.Positions(), "word %s", want.Word)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	lang, err := language.Get("en")
	require.NoError(t, err)
	g, err := board.Generate(lang, 4, 4, rand.New(rand.NewPCG(21, 1)))
	require.NoError(t, err)
	words := wordsOnBoard(g, rand.New(rand.NewPCG(8, 8)), 80)

	fromTrie := solveAll(t, g, dictionary.NewTrie(words...)).Entries()
	fromSet := solveAll(t, g, dictionary.NewPrefixSet(words...)).Entries()

	require.Equal(t, len(fromTrie), len(fromSet))
	for i := range fromTrie {
		assert.Equal(t, fromTrie[i].Word, fromSet[i].Word)
		assert.Equal(t, fromTrie[i].Snake.Positions(), fromSet[i].Snake.Positions())
	}
}

// TestBestScoreMatchesExhaustiveSearch compares the pruned search against a plain
// DFS over every simple path: same words, and each word keeps its maximum score.
func TestBestScoreMatchesExhaustiveSearch(t *testing.T) {
	lang, err := language.Get("en")
	require.NoError(t, err)

	for seed := uint64(1); seed <= 4; seed++ {
		g, err := board.Generate(lang, 3, 4, rand.New(rand.NewPCG(seed, 99)))
		require.NoError(t, err)
		words := wordsOnBoard(g, rand.New(rand.NewPCG(seed, 7)), 50)
		words = append(words, "QQQ", "ZZZZ", "XYXY")
		dict := dictionary.NewTrie(words...)

		want := exhaustiveBest(g, dict, 6)
		got := solveAll(t, g, dict)

		require.Equal(t, len(want), got.Len(), "seed %d", seed)
		for word, score := range want {
			c, ok := got.Get(word)
			if assert.True(t, ok, "missing %s", word) {
				assert.Equal(t, score, c.Score, "word %s", word)
			}
		}
	}
}

func TestStats(t *testing.T) {
	g := mustGrid(t, "A T\nE C")
	s, err := New(g, dictionary.NewTrie("ATE", "CAT", "TEA", "CATE"))
	require.NoError(t, err)

	words, stats, err := s.Solve(SortByScore, false)
	require.NoError(t, err)

	assert.Len(t, words, 4)
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 4, stats.Candidates)
	assert.Equal(t, 4, stats.LongestWord)
	assert.Equal(t, 3+6+3+7, stats.TotalScore)
	assert.Greater(t, stats.Explored, stats.Candidates)
}

// wordsOnBoard samples random walks on g and returns the words they spell,
// lengths 2 to 6, so that the dictionary is guaranteed to have hits.
func wordsOnBoard(g *board.Grid, rng *rand.Rand, n int) []string {
	ps := g.Positions()
	var out []string
	for len(out) < n {
		s := snake.New(ps[rng.IntN(len(ps))])
		word := string(g.LetterAt(s.End()))
		length := 2 + rng.IntN(5)
		for s.Len() < length {
			var free []board.Position
			for _, nb := range g.Neighbors(s.End()) {
				if !s.Contains(nb) {
					free = append(free, nb)
				}
			}
			if len(free) == 0 {
				break
			}
			next := free[rng.IntN(len(free))]
			s = s.Extend(next)
			word += string(g.LetterAt(next))
		}
		if s.Len() > 1 {
			out = append(out, word)
		}
	}
	return out
}

func exhaustiveBest(g *board.Grid, dict dictionary.PrefixDictionary, maxLen int) map[string]int {
	best := map[string]int{}
	var walk func(s *snake.Snake, word string)
	walk = func(s *snake.Snake, word string) {
		if s.Len() > 1 && dict.Contains(word) {
			score := Score(g, s)
			if prev, ok := best[word]; !ok || score > prev {
				best[word] = score
			}
		}
		if s.Len() == maxLen {
			return
		}
		for _, nb := range g.Neighbors(s.End()) {
			if !s.Contains(nb) {
				walk(s.Extend(nb), word+string(g.LetterAt(nb)))
			}
		}
	}
	for _, p := range g.Positions() {
		walk(snake.New(p), string(g.LetterAt(p)))
	}
	return best
}
