package file

import (
	"io"
	"os/exec"
	"strings"

	"github.com/mwalczyk-dev/postrisk"
)

// Ensure ImageExtractor implements postrisk.FormatExtractor at compile time.
var _ postrisk.FormatExtractor = (*ImageExtractor)(nil)

// ImageExtractor runs OCR over image files by shelling out to the tesseract
// binary. The capability is optional: when the binary is not installed,
// extraction fails with EUNAVAILABLE.
type ImageExtractor struct {
	binary string
}

// NewImageExtractor creates an ImageExtractor, probing PATH for tesseract.
func NewImageExtractor() *ImageExtractor {
	path, err := exec.LookPath("tesseract")
	if err != nil {
		return &ImageExtractor{}
	}
	return &ImageExtractor{binary: path}
}

// Available reports whether the OCR binary was found.
func (e *ImageExtractor) Available() bool {
	return e.binary != ""
}

// Extract runs OCR over the image content in r.
func (e *ImageExtractor) Extract(r io.Reader) (string, error) {
	if !e.Available() {
		return "", postrisk.Errorf(postrisk.EUNAVAILABLE, "OCR not available: tesseract binary not found in PATH")
	}

	cmd := exec.Command(e.binary, "stdin", "stdout")
	cmd.Stdin = r
	out, err := cmd.Output()
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINTERNAL, "OCR failed: %v", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", postrisk.Errorf(postrisk.ENOCONTENT, "no readable text found in image")
	}

	return text, nil
}
