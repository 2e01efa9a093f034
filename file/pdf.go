package file

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mwalczyk-dev/postrisk"
)

// Ensure PDFExtractor implements postrisk.FormatExtractor at compile time.
var _ postrisk.FormatExtractor = (*PDFExtractor)(nil)

// PDFExtractor extracts text from PDF files page by page. A single
// unreadable page is skipped; extraction fails only when no page yields
// text.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Available always reports true: the PDF parser is compiled in.
func (e *PDFExtractor) Available() bool { return true }

// Extract reads the full PDF and returns the concatenated page text.
func (e *PDFExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to read PDF: %v", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to parse PDF: %v", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		text, err := pageText(reader, i)
		if err != nil {
			continue // unreadable page, not fatal
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", postrisk.Errorf(postrisk.ENOCONTENT, "no readable text found in PDF")
	}

	return strings.Join(pages, "\n\n"), nil
}

// pageText extracts one page's plain text. The parser panics on some
// malformed content streams, so a recover guard turns that into a skipped
// page.
func pageText(reader *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", n, r)
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", n)
	}
	return page.GetPlainText(nil)
}
