package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/bastiangx/wordgrid/pkg/language"
)

type weighted[T any] struct {
	value T
	cum   float64
}

// multiplierCDF: tw 5%, dw 10%, tl 10%, dl 15%, none 60%.
var multiplierCDF = []weighted[Multiplier]{
	{TripleWord, 0.05},
	{DoubleWord, 0.15},
	{TripleLetter, 0.25},
	{DoubleLetter, 0.40},
	{NoMultiplier, 1.0},
}

// Generate builds a random rows × cols board. Letters follow the language
// frequency table, multipliers a fixed distribution. A nil rng uses the global source.
func Generate(lang *language.Language, rows, cols int, rng *rand.Rand) (*Grid, error) {
	if lang == nil {
		return nil, fmt.Errorf("%w: no language", ErrConfiguration)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: cannot generate a %dx%d board", ErrValidation, rows, cols)
	}

	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}

	letters := letterCDF(lang)
	specs := make([][]Spec, rows)
	for r := range specs {
		specs[r] = make([]Spec, cols)
		for c := range specs[r] {
			specs[r][c] = Spec{
				Letter:     draw(letters, float()),
				Multiplier: draw(multiplierCDF, float()),
			}
		}
	}
	return NewGrid(lang, specs)
}

func letterCDF(lang *language.Language) []weighted[rune] {
	letters := lang.Letters()
	cdf := make([]weighted[rune], len(letters))
	total := 0.0
	for i, l := range letters {
		total += lang.Frequency(l)
		cdf[i] = weighted[rune]{value: l, cum: total}
	}
	if total == 0 {
		// uniform when the table carries no frequencies
		for i := range cdf {
			cdf[i].cum = float64(i + 1)
		}
		total = float64(len(cdf))
	}
	for i := range cdf {
		cdf[i].cum /= total
	}
	cdf[len(cdf)-1].cum = 1.0
	return cdf
}

func draw[T any](cdf []weighted[T], x float64) T {
	for _, w := range cdf {
		if x <= w.cum {
			return w.value
		}
	}
	return cdf[len(cdf)-1].value
}
