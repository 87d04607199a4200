package main

import (
	"sync"

	"github.com/spf13/cobra"
)

// annotationStructuredLog marks commands whose fatal-path output goes
// through the structured logger instead of plain stderr lines.
const annotationStructuredLog = "structured-log"

// commandExecutionContext records which command is running so the
// fatal error path can emit output in that command's format.
type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	execContextMu sync.Mutex
	execContext   commandExecutionContext
)

func setCommandExecutionContext(ctx commandExecutionContext) {
	execContextMu.Lock()
	defer execContextMu.Unlock()
	execContext = ctx
}

func currentCommandExecutionContext() commandExecutionContext {
	execContextMu.Lock()
	defer execContextMu.Unlock()
	return execContext
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd.Annotations[annotationStructuredLog] == "true"
}
