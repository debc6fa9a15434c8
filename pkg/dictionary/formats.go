package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatCompiled            // msgpack word list
	FormatText                // one word per line
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatCompiled: {
		Format:      FormatCompiled,
		Description: "Compiled Dictionary",
		Extensions:  []string{".bin"},
		MinSize:     8, // header map with magic and count
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ".dic"},
		MinSize:     1,
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// Extension returns the canonical file extension of the format.
func (f FileFormat) Extension() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Extensions[0]
	}
	return ""
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	if expectedFormat == FormatCompiled {
		return validateCompiledFormat(filename)
	}
	return nil
}

// validateCompiledFormat checks that the header decodes and carries the magic
func validateCompiledFormat(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	h, err := readHeader(msgpack.NewDecoder(bufio.NewReader(file)))
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	log.Debugf("Compiled file %s validated: %d words", filename, h.Count)
	return nil
}

// DetectFileFormat attempts to detect the format of a file
func DetectFileFormat(filename string) (FileFormat, error) {
	for _, format := range []FileFormat{FormatCompiled, FormatText} {
		if err := ValidateFileFormat(filename, format); err == nil {
			return format, nil
		} else {
			log.Debugf("%s is not %s: %v", filename, format, err)
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// FormatForPath picks the format implied by the extension of path, for writing.
func FormatForPath(path string) FileFormat {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range []FileFormat{FormatCompiled, FormatText} {
		for _, e := range supportedFormats[format].Extensions {
			if e == ext {
				return format
			}
		}
	}
	return FormatUnknown
}
