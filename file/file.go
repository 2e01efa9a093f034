// Package file extracts plain text from uploaded files: plain text with
// charset detection, PDF, DOCX, and image OCR. Each format extractor is
// independently optional; a missing capability surfaces as EUNAVAILABLE
// rather than a crash.
package file

import (
	"io"
	"strings"

	"github.com/mwalczyk-dev/postrisk"
)

// Extractor dispatches a file to the matching format extractor based on its
// declared content type or file extension.
type Extractor struct {
	Text  postrisk.FormatExtractor
	PDF   postrisk.FormatExtractor
	DOCX  postrisk.FormatExtractor
	Image postrisk.FormatExtractor
}

// NewExtractor creates an Extractor with the default format extractors.
func NewExtractor() *Extractor {
	return &Extractor{
		Text:  NewTextExtractor(),
		PDF:   NewPDFExtractor(),
		DOCX:  NewDOCXExtractor(),
		Image: NewImageExtractor(),
	}
}

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExtractFile extracts text from the file content in r, selecting the
// format by contentType or, failing that, by the extension of name.
// Returns EUNSUPPORTED for unrecognized formats.
func (e *Extractor) ExtractFile(name, contentType string, r io.Reader) (string, error) {
	ext := strings.ToLower(name)
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "text/plain") || strings.HasSuffix(ext, ".txt"):
		return e.Text.Extract(r)
	case strings.Contains(ct, "application/pdf") || strings.HasSuffix(ext, ".pdf"):
		return e.PDF.Extract(r)
	case ct == docxContentType || strings.HasSuffix(ext, ".docx"):
		return e.DOCX.Extract(r)
	case isImageType(ct) || hasImageExt(ext):
		return e.Image.Extract(r)
	default:
		return "", postrisk.Errorf(postrisk.EUNSUPPORTED, "unsupported file type: %s", contentType)
	}
}

// IsSupported reports whether a file with the given content type or name can
// be processed.
func (e *Extractor) IsSupported(contentType, name string) bool {
	ext := strings.ToLower(name)
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/plain") || strings.HasSuffix(ext, ".txt") ||
		strings.Contains(ct, "application/pdf") || strings.HasSuffix(ext, ".pdf") ||
		ct == docxContentType || strings.HasSuffix(ext, ".docx") ||
		isImageType(ct) || hasImageExt(ext)
}

// FileInfo describes an uploaded file.
func (e *Extractor) FileInfo(name string, size int64, contentType string) postrisk.FileInfo {
	return postrisk.FileInfo{
		Name:      name,
		Size:      size,
		Type:      contentType,
		Supported: e.IsSupported(contentType, name),
	}
}

func isImageType(ct string) bool {
	switch ct {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

func hasImageExt(name string) bool {
	return strings.HasSuffix(name, ".jpg") ||
		strings.HasSuffix(name, ".jpeg") ||
		strings.HasSuffix(name, ".png")
}
