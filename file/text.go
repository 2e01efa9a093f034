package file

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/mwalczyk-dev/postrisk"
)

// Ensure TextExtractor implements postrisk.FormatExtractor at compile time.
var _ postrisk.FormatExtractor = (*TextExtractor)(nil)

// TextExtractor decodes plain-text files. Decoding is attempted against an
// ordered list of character encodings; the first clean decode wins. When no
// encoding decodes cleanly, the content is decoded as UTF-8 with invalid
// sequences dropped rather than failing outright.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Available always reports true: text decoding has no external dependency.
func (e *TextExtractor) Available() bool { return true }

// Extract decodes the reader's content into a trimmed string.
func (e *TextExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to read text file: %v", err)
	}

	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}

	// Charmap decoders never error; a clean decode is one that produced no
	// replacement runes.
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		s := string(decoded)
		if !strings.ContainsRune(s, utf8.RuneError) {
			return strings.TrimSpace(s), nil
		}
	}

	return strings.TrimSpace(strings.ToValidUTF8(string(data), "")), nil
}
