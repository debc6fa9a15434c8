// Package language holds the per-language letter tables used to score and generate boards.
//
// Tables are embedded TOML files under tables/. Each one lists the alphabet of the
// language with the base score and relative frequency of every letter, plus a demo board.
// Letters are stored already normalized (single uppercase rune), the same form
// the board and dictionary packages expect.
package language

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

//go:embed tables/*.toml
var tablesFS embed.FS

// ErrUnknownLanguage is returned when no table exists for a language code.
var ErrUnknownLanguage = errors.New("language: unknown language")

// letterEntry is one row of the [letters] table.
type letterEntry struct {
	Score     int     `toml:"score"`
	Frequency float64 `toml:"frequency"`
}

type tableFile struct {
	Code    string                 `toml:"code"`
	Name    string                 `toml:"name"`
	Demo    string                 `toml:"demo"`
	Letters map[string]letterEntry `toml:"letters"`
}

// Language is an immutable letter table.
type Language struct {
	Code string
	Name string
	// Demo is a board in text format bundled with the table.
	Demo string

	scores  map[rune]int
	freqs   map[rune]float64
	letters []rune
}

var registry = mustLoadTables()

// Get returns the table for code.
func Get(code string) (*Language, error) {
	lang, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownLanguage, code, Codes())
	}
	return lang, nil
}

// Codes returns the supported language codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Contains reports whether letter belongs to the alphabet.
func (l *Language) Contains(letter rune) bool {
	_, ok := l.scores[letter]
	return ok
}

// Score returns the base value of letter.
func (l *Language) Score(letter rune) (int, bool) {
	s, ok := l.scores[letter]
	return s, ok
}

// Frequency returns the relative frequency of letter, 0 if not in the alphabet.
func (l *Language) Frequency(letter rune) float64 {
	return l.freqs[letter]
}

// Letters returns the alphabet in ascending order.
func (l *Language) Letters() []rune {
	out := make([]rune, len(l.letters))
	copy(out, l.letters)
	return out
}

func mustLoadTables() map[string]*Language {
	langs, err := loadTables()
	if err != nil {
		panic(err)
	}
	return langs
}

func loadTables() (map[string]*Language, error) {
	entries, err := tablesFS.ReadDir("tables")
	if err != nil {
		return nil, fmt.Errorf("failed to list language tables: %w", err)
	}

	langs := make(map[string]*Language, len(entries))
	for _, entry := range entries {
		name := path.Join("tables", entry.Name())
		data, err := tablesFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		lang, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("invalid table %s: %w", name, err)
		}
		langs[lang.Code] = lang
	}
	return langs, nil
}

func parseTable(data []byte) (*Language, error) {
	var tf tableFile
	if _, err := toml.Decode(string(data), &tf); err != nil {
		return nil, err
	}
	if tf.Code == "" {
		return nil, errors.New("missing code")
	}
	if len(tf.Letters) == 0 {
		return nil, errors.New("empty alphabet")
	}

	lang := &Language{
		Code:   tf.Code,
		Name:   tf.Name,
		Demo:   tf.Demo,
		scores: make(map[rune]int, len(tf.Letters)),
		freqs:  make(map[rune]float64, len(tf.Letters)),
	}
	for key, entry := range tf.Letters {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("letter %q is not a single character", key)
		}
		if entry.Score < 1 {
			return nil, fmt.Errorf("letter %q has non-positive score %d", key, entry.Score)
		}
		lang.scores[r] = entry.Score
		lang.freqs[r] = entry.Frequency
		lang.letters = append(lang.letters, r)
	}
	sort.Slice(lang.letters, func(i, j int) bool { return lang.letters[i] < lang.letters[j] })
	return lang, nil
}
