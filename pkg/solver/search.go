package solver

import (
	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/snake"
)

// Candidate is a dictionary word found on the board with the path that spells it.
type Candidate struct {
	Word  string
	Score int
	Snake *snake.Snake
}

// Len is the number of letters in the word.
func (c Candidate) Len() int { return c.Snake.Len() }

// Engine enumerates every path on a grid whose letters spell a dictionary word.
// It holds no per-search state and may be shared by concurrent searches.
type Engine struct {
	grid *board.Grid
	dict dictionary.PrefixDictionary
}

// NewEngine pairs a grid with a dictionary.
func NewEngine(grid *board.Grid, dict dictionary.PrefixDictionary) (*Engine, error) {
	if grid == nil {
		return nil, ErrGridRequired
	}
	if dict == nil {
		return nil, ErrDictionaryRequired
	}
	return &Engine{grid: grid, dict: dict}, nil
}

// frontierItem carries the word alongside its snake so it is never rebuilt.
type frontierItem struct {
	snake *snake.Snake
	word  string
}

// Search runs the breadth-first search from every cell in row-major order and
// calls emit for each candidate in discovery order. It returns the number of paths explored.
func (e *Engine) Search(emit func(Candidate)) int {
	explored := 0
	for _, start := range e.grid.Positions() {
		explored += e.SearchFrom(start, emit)
	}
	return explored
}

// SearchFrom runs the search seeded with the single cell at start.
//
// The frontier is a FIFO queue. A dequeued path of two or more letters that is a
// dictionary key is emitted; a path is extended to each unvisited neighbour of its
// end, in row-major order, only while some key still has its word as a prefix.
func (e *Engine) SearchFrom(start board.Position, emit func(Candidate)) int {
	queue := []frontierItem{{
		snake: snake.New(start),
		word:  string(e.grid.LetterAt(start)),
	}}

	explored := 0
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		queue[head] = frontierItem{}
		explored++

		if cur.snake.Len() > 1 && e.dict.Contains(cur.word) {
			emit(Candidate{
				Word:  cur.word,
				Score: Score(e.grid, cur.snake),
				Snake: cur.snake,
			})
		}

		if !e.dict.HasPrefix(cur.word) {
			continue
		}
		for _, next := range e.grid.Neighbors(cur.snake.End()) {
			if cur.snake.Contains(next) {
				continue
			}
			queue = append(queue, frontierItem{
				snake: cur.snake.Extend(next),
				word:  cur.word + string(e.grid.LetterAt(next)),
			})
		}
	}
	return explored
}
