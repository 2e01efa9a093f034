package main

import "fmt"

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if err := deps.Checker.TestConnection(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "API connection failed: %v\n", err)
		return err
	}
	fmt.Fprintln(deps.Stdout, "API connection OK")
	return nil
}
