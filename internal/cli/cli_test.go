package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/bastiangx/wordgrid/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func english(t *testing.T) *language.Language {
	t.Helper()
	lang, err := language.Get("en")
	require.NoError(t, err)
	return lang
}

func solve(t *testing.T, src string, words ...string) (*board.Grid, []solver.Candidate, solver.Stats) {
	t.Helper()
	g, err := board.Read(strings.NewReader(src), english(t))
	require.NoError(t, err)
	s, err := solver.New(g, dictionary.NewTrie(words...))
	require.NoError(t, err)
	ranked, stats, err := s.Solve(solver.SortByScore, false)
	require.NoError(t, err)
	return g, ranked, stats
}

func TestReportQuiet(t *testing.T) {
	g, words, stats := solve(t, "A T\nE C", "ATE", "CAT", "TEA", "CATE")

	var out bytes.Buffer
	NewReporter(&out, true, true).Report(g, words, stats)

	assert.Equal(t, ""+
		"CATE    7    (1,1) (0,0) (0,1) (1,0)\n"+
		"CAT     6    (1,1) (0,0) (0,1)\n"+
		"TEA     3    (0,1) (1,0) (0,0)\n"+
		"ATE     3    (0,0) (0,1) (1,0)\n", out.String())
}

func TestReportFull(t *testing.T) {
	g, words, stats := solve(t, "Atw T\nE Cdl", "CAT")

	var out bytes.Buffer
	NewReporter(&out, false, true).Report(g, words, stats)
	text := out.String()

	assert.Contains(t, text, "Atw T\nE   Cdl\n")
	assert.Contains(t, text, "CAT    30    (1,1) (0,0) (0,1)\n")
	assert.Contains(t, text, "Number of words:            1\n")
	assert.Contains(t, text, "Length of the longest word: 3\n")
	assert.Contains(t, text, "Maximum total score:        30\n")
}

func TestBoardWithoutMultipliers(t *testing.T) {
	g, _, _ := solve(t, "Atw T\nE Cdl", "CAT")

	var out bytes.Buffer
	NewReporter(&out, false, false).Board(g)
	assert.Equal(t, "A   T\nE   C\n", out.String())
}

func TestReportNoWords(t *testing.T) {
	g, words, stats := solve(t, "A T", "ZZZ")

	var out bytes.Buffer
	NewReporter(&out, false, true).Report(g, words, stats)
	assert.Contains(t, out.String(), "Number of words:            0\n")
}

func TestReadBlock(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("\n\nA T\nE C\n\n  \nB\n"))

	block, err := readBlock(br)
	require.NoError(t, err)
	assert.Equal(t, "A T\nE C", block)

	block, err = readBlock(br)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "B", block)

	block, err = readBlock(br)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, block)
}

func TestInputHandlerSkipsBadBoards(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(english(t), dictionary.NewTrie("CAT"), NewReporter(&out, true, true), solver.SortByScore, false, 2)

	input := "A T\nE C\n\nA 1\nT C\n\nC A\nX T"
	require.NoError(t, h.Start(strings.NewReader(input)))

	assert.Equal(t, 2, h.Solved())
	assert.Equal(t, 2, strings.Count(out.String(), "CAT"))
}
