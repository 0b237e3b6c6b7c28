package main

import (
	"errors"

	"github.com/Raab70/dax/pkg/check"
	"github.com/Raab70/dax/pkg/output"
)

// Checker is implemented by all check types.
type Checker interface {
	Run() check.Result
}

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes Cobra to exit with code 1.
func runCheck(c Checker) error {
	result := c.Run()
	output.PrintResult(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}

// printResults prints every result and reports whether none failed.
func printResults(results []check.Result) bool {
	ok := true
	for _, r := range results {
		output.PrintResult(r)
		if !r.OK() {
			ok = false
		}
	}
	return ok
}
