package file_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalczyk-dev/postrisk"
	"github.com/mwalczyk-dev/postrisk/file"
)

// buildDOCX assembles a minimal DOCX archive around the given document XML.
func buildDOCX(t *testing.T, documentXML string) *bytes.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return bytes.NewReader(buf.Bytes())
}

const docxHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`

func TestDOCXExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := file.NewDOCXExtractor()

	t.Run("paragraphs in order", func(t *testing.T) {
		t.Parallel()

		r := buildDOCX(t, docxHeader+`<w:body>
			<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
			<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
			<w:p></w:p>
		</w:body></w:document>`)

		out, err := e.Extract(r)
		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", out)
	})

	t.Run("table rows join cells with pipes", func(t *testing.T) {
		t.Parallel()

		r := buildDOCX(t, docxHeader+`<w:body>
			<w:p><w:r><w:t>Intro.</w:t></w:r></w:p>
			<w:tbl>
				<w:tr>
					<w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc>
					<w:tc><w:p><w:r><w:t>Value</w:t></w:r></w:p></w:tc>
				</w:tr>
				<w:tr>
					<w:tc><w:p><w:r><w:t>Rows</w:t></w:r></w:p></w:tc>
					<w:tc><w:p><w:r><w:t>2</w:t></w:r></w:p></w:tc>
				</w:tr>
			</w:tbl>
		</w:body></w:document>`)

		out, err := e.Extract(r)
		require.NoError(t, err)
		assert.Equal(t, "Intro.\n\nName | Value\n\nRows | 2", out)
	})

	t.Run("empty body returns ENOCONTENT", func(t *testing.T) {
		t.Parallel()

		r := buildDOCX(t, docxHeader+`<w:body></w:body></w:document>`)
		_, err := e.Extract(r)
		require.Error(t, err)
		assert.Equal(t, postrisk.ENOCONTENT, postrisk.ErrorCode(err))
	})

	t.Run("missing document part", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("other.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte("<x/>"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = e.Extract(bytes.NewReader(buf.Bytes()))
		require.Error(t, err)
		assert.Equal(t, postrisk.EINVALID, postrisk.ErrorCode(err))
	})

	t.Run("not a zip archive", func(t *testing.T) {
		t.Parallel()

		_, err := e.Extract(bytes.NewReader([]byte("plain text, not a zip")))
		require.Error(t, err)
		assert.Equal(t, postrisk.EINVALID, postrisk.ErrorCode(err))
	})
}
