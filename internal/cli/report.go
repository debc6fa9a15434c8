// Package cli prints boards and solve results, and runs the interactive board reader.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/solver"
	"github.com/charmbracelet/lipgloss"
)

const (
	tokenWidth = 4
	columnGap  = "    "
)

// Reporter writes human-readable output. Colors are only emitted when the
// writer is a terminal that supports them.
type Reporter struct {
	out             io.Writer
	quiet           bool
	showMultipliers bool

	word    lipgloss.Style
	score   lipgloss.Style
	label   lipgloss.Style
	letters map[board.Multiplier]lipgloss.Style
}

// NewReporter creates a Reporter for w. In quiet mode only the word lines are printed.
func NewReporter(w io.Writer, quiet, showMultipliers bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	text := lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	return &Reporter{
		out:             w,
		quiet:           quiet,
		showMultipliers: showMultipliers,
		word:            r.NewStyle().Bold(true).Foreground(text),
		score:           r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		label:           r.NewStyle().Italic(true).Foreground(text),
		letters: map[board.Multiplier]lipgloss.Style{
			board.NoMultiplier: r.NewStyle().Foreground(text),
			board.DoubleLetter: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#9ccfd8"}),
			board.TripleLetter: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#31748f"}),
			board.DoubleWord:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ebbcba"}),
			board.TripleWord:   r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		},
	}
}

// Board prints the grid, one row per line, tokens padded to a fixed width.
func (r *Reporter) Board(g *board.Grid) {
	var sb strings.Builder
	for row := range g.Rows() {
		for col := range g.Cols() {
			cell := g.Cell(board.Position{Row: row, Col: col})
			tok := cell.Token(r.showMultipliers)
			sb.WriteString(r.letters[cell.Multiplier].Render(tok))
			if col < g.Cols()-1 {
				sb.WriteString(strings.Repeat(" ", max(1, tokenWidth-utf8.RuneCountInString(tok))))
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out, sb.String())
}

// Words prints one line per word: the word, its score and its path, each column padded.
func (r *Reporter) Words(words []solver.Candidate) {
	wordWidth, scoreWidth := 0, 0
	for _, c := range words {
		wordWidth = max(wordWidth, utf8.RuneCountInString(c.Word))
		scoreWidth = max(scoreWidth, len(strconv.Itoa(c.Score)))
	}
	for _, c := range words {
		score := strconv.Itoa(c.Score)
		fmt.Fprintf(r.out, "%s%s%s%s%s%s%s\n",
			r.word.Render(c.Word),
			strings.Repeat(" ", wordWidth-utf8.RuneCountInString(c.Word)),
			columnGap,
			r.score.Render(score),
			strings.Repeat(" ", scoreWidth-len(score)),
			columnGap,
			c.Snake)
	}
}

// Summary prints the totals of a solve.
func (r *Reporter) Summary(stats solver.Stats) {
	fmt.Fprintf(r.out, "%s %d\n", r.label.Render("Number of words:           "), stats.Words)
	fmt.Fprintf(r.out, "%s %d\n", r.label.Render("Length of the longest word:"), stats.LongestWord)
	fmt.Fprintf(r.out, "%s %d\n", r.label.Render("Maximum total score:       "), stats.TotalScore)
}

// Report prints a full solve: board, word table and summary. Quiet mode keeps the table only.
func (r *Reporter) Report(g *board.Grid, words []solver.Candidate, stats solver.Stats) {
	if !r.quiet {
		fmt.Fprintln(r.out)
		r.Board(g)
		fmt.Fprintln(r.out)
	}
	r.Words(words)
	if !r.quiet {
		fmt.Fprintln(r.out)
		r.Summary(stats)
		fmt.Fprintln(r.out)
	}
}
