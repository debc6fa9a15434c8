package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/bastiangx/wordgrid/pkg/solver"
	"github.com/charmbracelet/log"
)

// InputHandler reads boards from an input stream, one per blank-line separated
// block, and reports the solution of each.
type InputHandler struct {
	lang     *language.Language
	dict     dictionary.PrefixDictionary
	reporter *Reporter
	mode     solver.SortMode
	reverse  bool
	workers  int
	solved   int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(lang *language.Language, dict dictionary.PrefixDictionary, reporter *Reporter, mode solver.SortMode, reverse bool, workers int) *InputHandler {
	return &InputHandler{
		lang:     lang,
		dict:     dict,
		reporter: reporter,
		mode:     mode,
		reverse:  reverse,
		workers:  workers,
	}
}

// Start reads boards from in until it is exhausted.
// A bad board is logged and skipped; only read errors stop the loop.
func (h *InputHandler) Start(in io.Reader) error {
	log.Print("wordgrid interactive")
	log.Print("type a board, one row per line, then an empty line (Ctrl+D to exit):")

	br := bufio.NewReader(in)
	for {
		block, err := readBlock(br)
		if block != "" {
			h.handleBoard(block)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed", "boards", h.solved)
				return nil
			}
			return err
		}
	}
}

// Solved is the number of boards solved so far.
func (h *InputHandler) Solved() int { return h.solved }

func (h *InputHandler) handleBoard(block string) {
	grid, err := board.Read(strings.NewReader(block), h.lang)
	if err != nil {
		log.Errorf("Invalid board: %v", err)
		return
	}
	s, err := solver.New(grid, h.dict, solver.WithWorkers(h.workers))
	if err != nil {
		log.Errorf("Cannot solve board: %v", err)
		return
	}
	words, stats, err := s.Solve(h.mode, h.reverse)
	if err != nil {
		log.Errorf("Cannot solve board: %v", err)
		return
	}
	h.solved++
	log.Debugf("Took [ %v ] for a %dx%d board", stats.Elapsed, grid.Rows(), grid.Cols())
	h.reporter.Report(grid, words, stats)
}

// readBlock returns the next run of non-blank lines. Leading blank lines are skipped.
// The returned error is io.EOF once the input is exhausted.
func readBlock(br *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		} else if len(lines) > 0 && err == nil {
			return strings.Join(lines, "\n"), nil
		}
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
	}
}
