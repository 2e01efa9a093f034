package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mwalczyk-dev/postrisk"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	settings := c.Settings()
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postrisk.ErrorMessage(err))
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return postrisk.Errorf(postrisk.EINVALID, "cannot open file: %v", err)
	}
	defer f.Close()

	var contents []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			contents = append(contents, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return postrisk.Errorf(postrisk.EINVALID, "cannot read file: %v", err)
	}
	if len(contents) == 0 {
		return postrisk.Errorf(postrisk.EINVALID, "no content items in %s", c.File)
	}

	results := deps.Analyzer.BatchAnalyze(deps.Ctx, contents, settings)
	summary, err := deps.Analyzer.Summarize(results)
	if err != nil {
		return err
	}

	return printJSON(deps.Stdout, struct {
		Results []*postrisk.AnalysisResult `json:"results"`
		Summary *postrisk.Summary          `json:"summary"`
	}{Results: results, Summary: summary})
}
