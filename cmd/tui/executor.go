package tui

import (
	"context"
	"strings"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/commands"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/shell"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/term"
)

// consoleExecutor routes submitted lines: a leading ':' means an app
// command, anything else goes through the whitelisted shell runner.
type consoleExecutor struct {
	handler *commands.Handler
	runner  *shell.Runner
}

func newConsoleExecutor(handler *commands.Handler, runner *shell.Runner) *consoleExecutor {
	return &consoleExecutor{handler: handler, runner: runner}
}

func (e *consoleExecutor) Execute(ctx context.Context, command string) (*term.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(command), ":") {
		out, err := e.handler.Execute(ctx, command)
		if err != nil {
			return &term.Result{Stderr: err.Error(), ExitCode: 1}, nil
		}
		return &term.Result{Stdout: out, Success: true}, nil
	}

	return e.runner.Execute(ctx, command)
}
