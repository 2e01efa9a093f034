package file

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/mwalczyk-dev/postrisk"
)

// Ensure DOCXExtractor implements postrisk.FormatExtractor at compile time.
var _ postrisk.FormatExtractor = (*DOCXExtractor)(nil)

// DOCXExtractor extracts text from DOCX files: body paragraphs in document
// order, then table content with each row's non-empty cells joined by " | ".
type DOCXExtractor struct{}

// NewDOCXExtractor creates a new DOCXExtractor.
func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

// Available always reports true: the archive and XML parsers are compiled in.
func (e *DOCXExtractor) Available() bool { return true }

// Extract reads the full DOCX archive and returns its text content.
func (e *DOCXExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to read DOCX: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to open DOCX archive: %v", err)
	}

	docXML, err := readArchiveFile(zr, "word/document.xml")
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to parse DOCX document: %v", err)
	}

	body := doc.FindElement("//w:body")
	if body == nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "DOCX document has no body")
	}

	var blocks []string

	// Top-level paragraphs first, then tables, mirroring how word
	// processors order mixed content for extraction.
	for _, el := range body.ChildElements() {
		if el.Space == "w" && el.Tag == "p" {
			if text := runText(el); text != "" {
				blocks = append(blocks, text)
			}
		}
	}
	for _, tbl := range body.ChildElements() {
		if tbl.Space != "w" || tbl.Tag != "tbl" {
			continue
		}
		for _, row := range tbl.FindElements(".//w:tr") {
			var cells []string
			for _, cell := range row.FindElements(".//w:tc") {
				if text := runText(cell); text != "" {
					cells = append(cells, text)
				}
			}
			if len(cells) > 0 {
				blocks = append(blocks, strings.Join(cells, " | "))
			}
		}
	}

	if len(blocks) == 0 {
		return "", postrisk.Errorf(postrisk.ENOCONTENT, "no readable text found in DOCX")
	}

	return strings.Join(blocks, "\n\n"), nil
}

// runText concatenates all text runs under el.
func runText(el *etree.Element) string {
	var sb strings.Builder
	for _, t := range el.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}
	return strings.TrimSpace(sb.String())
}

func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, postrisk.Errorf(postrisk.EINVALID, "failed to open %s: %v", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, postrisk.Errorf(postrisk.EINVALID, "not a DOCX file: missing %s", name)
}
