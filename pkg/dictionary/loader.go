package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// compiledMagic tags the first message of a compiled dictionary.
const compiledMagic = "WGD1"

// Options controls how a plain text dictionary is cleaned up while loading.
type Options struct {
	// Normalize applies NFKD and drops every non-ASCII rune ("città" -> "citta").
	Normalize bool
	// IgnoreCase upper-cases every word.
	IgnoreCase bool
}

// header is the first message of a compiled file. Count words follow, one message each.
type header struct {
	Magic string `msgpack:"m"`
	Count int    `msgpack:"n"`
}

func asciiFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
}

func clean(word string, opts Options, folder transform.Transformer) (string, error) {
	word = strings.TrimSpace(word)
	if opts.Normalize {
		folded, _, err := transform.String(folder, word)
		if err != nil {
			return "", err
		}
		word = folded
	}
	if opts.IgnoreCase {
		word = strings.ToUpper(word)
	}
	return word, nil
}

// LoadText reads one word per line. Blank lines are skipped.
func LoadText(r io.Reader, opts Options) (*Trie, error) {
	t := NewTrie()
	folder := asciiFolder()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		lines++
		word, err := clean(scanner.Text(), opts, folder)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize line %d: %w", lines, err)
		}
		t.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	if t.Len() == 0 {
		return nil, ErrEmptyDictionary
	}

	log.Debugf("Loaded %d words from %d lines", t.Len(), lines)
	return t, nil
}

// LoadCompiled reads a dictionary written by SaveCompiled.
func LoadCompiled(r io.Reader) (*Trie, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))

	h, err := readHeader(dec)
	if err != nil {
		return nil, err
	}

	t := NewTrie()
	for i := 0; i < h.Count; i++ {
		word, err := dec.DecodeString()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: truncated after %d of %d words", ErrBadHeader, i, h.Count)
			}
			return nil, fmt.Errorf("failed to read word %d: %w", i, err)
		}
		t.Add(word)
	}
	if t.Len() == 0 {
		return nil, ErrEmptyDictionary
	}

	log.Debugf("Loaded %d compiled words", t.Len())
	return t, nil
}

func readHeader(dec *msgpack.Decoder) (header, error) {
	var h header
	if err := dec.Decode(&h); err != nil {
		return h, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if h.Magic != compiledMagic {
		return h, fmt.Errorf("%w: magic %q", ErrBadHeader, h.Magic)
	}
	if h.Count < 0 {
		return h, fmt.Errorf("%w: negative word count %d", ErrBadHeader, h.Count)
	}
	return h, nil
}

// SaveCompiled writes the sorted keys in the compiled msgpack format.
func (t *Trie) SaveCompiled(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)

	keys := t.Keys()
	if err := enc.Encode(header{Magic: compiledMagic, Count: len(keys)}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, k := range keys {
		if err := enc.EncodeString(k); err != nil {
			return fmt.Errorf("failed to write word %q: %w", k, err)
		}
	}
	return bw.Flush()
}

// SaveText writes the sorted keys, one per line.
func (t *Trie) SaveText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, k := range t.Keys() {
		if _, err := bw.WriteString(k + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile detects the format of path and loads it.
// opts only applies to text files; compiled files are already normalized.
func LoadFile(path string, opts Options) (*Trie, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	log.Debugf("Loading dictionary %s as %s", path, supportedFormats[format].Description)
	switch format {
	case FormatCompiled:
		return LoadCompiled(f)
	case FormatText:
		return LoadText(f, opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// SaveFile writes t to path in the given format.
func (t *Trie) SaveFile(path string, format FileFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	switch format {
	case FormatCompiled:
		err = t.SaveCompiled(f)
	case FormatText:
		err = t.SaveText(f)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
