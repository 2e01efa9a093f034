package mock

import (
	"io"

	"github.com/mwalczyk-dev/postrisk"
)

var _ postrisk.FormatExtractor = (*FormatExtractor)(nil)

// FormatExtractor is a mock implementation of postrisk.FormatExtractor.
type FormatExtractor struct {
	ExtractFn   func(r io.Reader) (string, error)
	AvailableFn func() bool
}

func (e *FormatExtractor) Extract(r io.Reader) (string, error) {
	return e.ExtractFn(r)
}

func (e *FormatExtractor) Available() bool {
	if e.AvailableFn == nil {
		return true
	}
	return e.AvailableFn()
}
