package main

import "fmt"

// exitError carries a process exit code through the cobra error path.
// A silent exitError sets the code without printing anything, for
// commands that already reported the failure themselves.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}
