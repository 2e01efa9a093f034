package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwalczyk-dev/postrisk"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	settings := c.Settings()
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postrisk.ErrorMessage(err))
		return err
	}

	content, visualContext, err := c.resolveContent(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postrisk.ErrorMessage(err))
		return err
	}

	result := deps.Analyzer.Analyze(deps.Ctx, content, settings, visualContext)
	return printJSON(deps.Stdout, result)
}

// resolveContent picks the content source: inline text, a local file, or a
// web page. Extraction failures block analysis; there is nothing to analyze.
func (c *AnalyzeCmd) resolveContent(deps *Dependencies) (content, visualContext string, err error) {
	switch {
	case c.URL != "":
		result, err := deps.Web.Extract(deps.Ctx, c.URL)
		if err != nil {
			return "", "", err
		}
		if result.Error != "" {
			return "", "", postrisk.Errorf(postrisk.ETRANSPORT, "%s", result.Error)
		}
		return result.TextContent, result.VisualSummary(), nil

	case c.File != "":
		f, err := os.Open(c.File)
		if err != nil {
			return "", "", postrisk.Errorf(postrisk.EINVALID, "cannot open file: %v", err)
		}
		defer f.Close()

		text, err := deps.Files.ExtractFile(filepath.Base(c.File), "", f)
		if err != nil {
			return "", "", err
		}
		return text, "", nil

	case c.Text != "":
		return c.Text, "", nil

	default:
		return "", "", postrisk.Errorf(postrisk.EINVALID, "no content: pass text, --file, or --url")
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
