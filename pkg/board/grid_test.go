package board

import (
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func english(t *testing.T) *language.Language {
	t.Helper()
	lang, err := language.Get("en")
	require.NoError(t, err)
	return lang
}

func TestNewCellScores(t *testing.T) {
	lang := english(t)

	tests := []struct {
		spec       Spec
		wantLetter int
		wantWord   int
	}{
		{Spec{'C', NoMultiplier}, 4, 1},
		{Spec{'C', DoubleLetter}, 8, 1},
		{Spec{'C', TripleLetter}, 12, 1},
		{Spec{'C', DoubleWord}, 4, 2},
		{Spec{'C', TripleWord}, 4, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.spec.Multiplier), func(t *testing.T) {
			cell, err := NewCell(Position{}, tt.spec, lang)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLetter, cell.LetterScore)
			assert.Equal(t, tt.wantWord, cell.WordMultiplier)
		})
	}
}

func TestNewCellErrors(t *testing.T) {
	lang := english(t)

	_, err := NewCell(Position{}, Spec{Letter: 'é'}, lang)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewCell(Position{}, Spec{Letter: 'A', Multiplier: "qq"}, lang)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewGridValidation(t *testing.T) {
	lang := english(t)

	_, err := NewGrid(lang, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewGrid(lang, [][]Spec{{}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewGrid(lang, [][]Spec{{{Letter: 'A'}, {Letter: 'B'}}, {{Letter: 'C'}}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewGrid(lang, [][]Spec{{{Letter: 'A'}, {Letter: '1'}}})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewGrid(nil, [][]Spec{{{Letter: 'A'}}})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestGridAccessors(t *testing.T) {
	g, err := Read(strings.NewReader("A Ttw\nEdl C\n"), english(t))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 'T', g.LetterAt(Position{0, 1}))
	assert.Equal(t, 3, g.WordMultiplierAt(Position{0, 1}))
	assert.Equal(t, 2, g.ScoreAt(Position{1, 0}))
	assert.Equal(t, 4, g.ScoreAt(Position{1, 1}))
	assert.Equal(t, []rune("ATEC"), g.Letters())
	assert.Panics(t, func() { g.LetterAt(Position{2, 0}) })
}

func TestNeighbors(t *testing.T) {
	g, err := Generate(english(t), 3, 4, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, []Position{{0, 1}, {1, 0}, {1, 1}}, g.Neighbors(Position{0, 0}))
	assert.Equal(t, []Position{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, g.Neighbors(Position{1, 1}))
	assert.Equal(t, []Position{{1, 2}, {1, 3}, {2, 2}}, g.Neighbors(Position{2, 3}))

	for _, p := range g.Positions() {
		for _, n := range g.Neighbors(p) {
			assert.True(t, p.Adjacent(n), "%v not adjacent to %v", p, n)
		}
	}
}

func TestPositionOrdering(t *testing.T) {
	assert.True(t, Position{0, 3}.Less(Position{1, 0}))
	assert.True(t, Position{1, 0}.Less(Position{1, 1}))
	assert.False(t, Position{1, 1}.Less(Position{1, 1}))
	assert.False(t, Position{1, 1}.Adjacent(Position{1, 1}))
	assert.False(t, Position{0, 0}.Adjacent(Position{0, 2}))
	assert.True(t, Position{0, 0}.Adjacent(Position{1, 1}))
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		tok     string
		want    Spec
		wantErr error
	}{
		{"a", Spec{'A', NoMultiplier}, nil},
		{"Mtw", Spec{'M', TripleWord}, nil},
		{"eDL", Spec{'E', DoubleLetter}, nil},
		{"Xzz", Spec{}, ErrConfiguration},
		{"", Spec{}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseToken(tt.tok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadStopsAtBlankLine(t *testing.T) {
	lang := english(t)
	input := "\n\nA B\nC D\n\nE F\nG H\n"

	br := bufio.NewReader(strings.NewReader(input))
	first, err := Read(br, lang)
	require.NoError(t, err)
	assert.Equal(t, "A   B\nC   D", first.Format(false))

	second, err := Read(br, lang)
	require.NoError(t, err)
	assert.Equal(t, "E   F\nG   H", second.Format(false))

	_, err = Read(br, lang)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadJagged(t *testing.T) {
	_, err := Read(strings.NewReader("A B C\nD E\n"), english(t))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFormatRoundTrip(t *testing.T) {
	lang := english(t)
	src := "Ttl R   S   Ndl\nOdw Htw E   I\nCdw I   N   V\nEtl A   D   E"

	g, err := Read(strings.NewReader(src), lang)
	require.NoError(t, err)
	assert.Equal(t, src, g.Format(true))

	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, g.SaveFile(path))

	loaded, err := ReadFile(path, lang)
	require.NoError(t, err)
	assert.Equal(t, g.Format(true), loaded.Format(true))
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := ReadFile(path, english(t))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGenerate(t *testing.T) {
	lang := english(t)

	g1, err := Generate(lang, 4, 5, rand.New(rand.NewPCG(42, 7)))
	require.NoError(t, err)
	g2, err := Generate(lang, 4, 5, rand.New(rand.NewPCG(42, 7)))
	require.NoError(t, err)

	assert.Equal(t, 4, g1.Rows())
	assert.Equal(t, 5, g1.Cols())
	assert.Equal(t, g1.Format(true), g2.Format(true), "same seed, same board")
	for _, l := range g1.Letters() {
		assert.True(t, lang.Contains(l))
	}

	_, err = Generate(lang, 0, 4, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDrawFollowsCDF(t *testing.T) {
	assert.Equal(t, TripleWord, draw(multiplierCDF, 0.0))
	assert.Equal(t, TripleWord, draw(multiplierCDF, 0.05))
	assert.Equal(t, DoubleWord, draw(multiplierCDF, 0.10))
	assert.Equal(t, DoubleLetter, draw(multiplierCDF, 0.39))
	assert.Equal(t, NoMultiplier, draw(multiplierCDF, 0.99))
}
