package solver

import (
	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/snake"
)

// lengthBonus maps word length to the flat bonus added after multipliers.
var lengthBonus = map[int]int{
	5: 5,
	6: 10,
	7: 15,
	8: 20,
	9: 25,
}

// LengthBonus returns the bonus for a word of n letters, 0 outside 5..9.
func LengthBonus(n int) int {
	return lengthBonus[n]
}

// Score computes the value of s on g: the summed letter scores, times every word
// multiplier on the path (they compound), plus the length bonus.
func Score(g *board.Grid, s *snake.Snake) int {
	sum, mult := 0, 1
	for _, p := range s.Positions() {
		sum += g.ScoreAt(p)
		mult *= g.WordMultiplierAt(p)
	}
	return sum*mult + LengthBonus(s.Len())
}
