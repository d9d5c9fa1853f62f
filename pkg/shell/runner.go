package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/term"
)

const defaultTimeout = 30 * time.Second

// Runner executes whitelisted commands through bash and captures their
// streams separately. The working directory defaults to the parent of
// the truth repository so relative paths in commands resolve sensibly.
type Runner struct {
	workDir func() string
	timeout time.Duration
	logger  logging.Logger
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithTimeout overrides the per-command deadline.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.timeout = d }
}

// NewRunner builds a Runner. workDir is consulted per execution so a
// settings change takes effect without rebuilding the runner; it may
// return "" to run in the process working directory.
func NewRunner(workDir func() string, opts ...RunnerOption) *Runner {
	r := &Runner{
		workDir: workDir,
		timeout: defaultTimeout,
		logger:  logging.NewComponentLogger("shell"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute validates the command against the safety rules and runs it.
// Safety violations and spawn failures are returned as errors; a
// command that ran but exited non-zero is a normal Result.
func (r *Runner) Execute(ctx context.Context, command string) (*term.Result, error) {
	if err := Validate(command); err != nil {
		r.logger.Warn("command rejected", "command", command, "error", err)
		return nil, err
	}

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "bash", "-c", command)
	if dir := r.workDir(); dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if execCtx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("command timed out after %v", r.timeout)
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to execute command: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	r.logger.Debug("command finished", "command", command, "exit_code", exitCode)

	return &term.Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		Success:  exitCode == 0,
	}, nil
}

// RepoParentDir derives the default working directory from a truth
// repository path: its parent, or "." when the path is unusable.
func RepoParentDir(repoPath string) string {
	if repoPath == "" {
		return "."
	}
	parent := filepath.Dir(repoPath)
	if parent == "" {
		return "."
	}
	return parent
}
