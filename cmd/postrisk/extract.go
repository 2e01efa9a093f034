package main

import (
	"fmt"

	"github.com/mwalczyk-dev/postrisk"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Web.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postrisk.ErrorMessage(err))
		return err
	}

	return printJSON(deps.Stdout, result)
}
