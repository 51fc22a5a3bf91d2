// Package runner adapts grading.ProcessRunner onto an actual child process, reusing the process-group supervision pattern
// the sandbox engine used for submission execution.
package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"

	grading "gradecore/internal/grading"
	pkgerrors "gradecore/pkg/errors"
)

// ExecRunner implements grading.ProcessRunner by spawning the solution
// command with os/exec, piping stdin from a file and capturing stdout up to
// DefaultOutputCapBytes. The wall-time enforcer (opts.TimeLimit) runs the
// child in its own process group so a timeout kill reaches every
// descendant it may have spawned, not just the immediate child; the
// memory cap (opts.MemoryLimitMB) is applied via withMemoryLimit.
type ExecRunner struct {
	DefaultOutputCapBytes int64
}

// NewExecRunner returns an ExecRunner; outputCapBytes of 0 disables output
// truncation.
func NewExecRunner(outputCapBytes int64) *ExecRunner {
	return &ExecRunner{DefaultOutputCapBytes: outputCapBytes}
}

// Run implements grading.ProcessRunner.
func (r *ExecRunner) Run(ctx context.Context, command, stdinPath string, opts grading.GradingOptions) (grading.RunOutcome, error) {
	args, err := shlex.Split(command)
	if err != nil || len(args) == 0 {
		return grading.RunOutcome{}, pkgerrors.Wrapf(err, pkgerrors.GradingRunnerError, "cannot parse solution_command %q", command)
	}

	stdin, err := os.Open(stdinPath)
	if err != nil {
		return grading.RunOutcome{}, pkgerrors.Wrapf(err, pkgerrors.GradingRunnerError, "cannot open input %q", stdinPath)
	}
	defer stdin.Close()

	runCtx := ctx
	var cancel context.CancelFunc
	if opts.TimeLimit > 0 {
		runCtx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, args[0], args[1:]...)
	cmd.Stdin = stdin

	var stdout bytes.Buffer
	cap := r.DefaultOutputCapBytes
	if cap > 0 {
		cmd.Stdout = &limitedWriter{w: &stdout, remaining: cap}
	} else {
		cmd.Stdout = &stdout
	}

	configureProcessGroup(cmd)

	startErr := withMemoryLimit(opts.MemoryLimitMB, cmd.Start)
	if startErr != nil {
		return grading.RunOutcome{}, pkgerrors.Wrapf(startErr, pkgerrors.GradingRunnerError, "cannot spawn %q", command)
	}

	waitErr := cmd.Wait()
	timedOut := runCtx.Err() == context.DeadlineExceeded
	if timedOut {
		killProcessGroup(cmd)
		return grading.RunOutcome{TimedOut: true}, nil
	}

	outcome := grading.RunOutcome{Stdout: stdout.Bytes()}
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			outcome.ExitCode = exitErr.ExitCode()
			outcome.Signaled = exitErr.ExitCode() < 0
			return outcome, nil
		}
		return grading.RunOutcome{}, pkgerrors.Wrapf(waitErr, pkgerrors.GradingRunnerError, "wait failed for %q", command)
	}
	return outcome, nil
}

// limitedWriter truncates after remaining bytes but still reports success,
// matching a judge's usual "excess output still counts as a completed run,
// just a failing one once compared" treatment (classification happens at
// the comparator, not here).
type limitedWriter struct {
	w         io.Writer
	remaining int64
}

func (l *limitedWriter) Write(p []byte) (int, error) {
	if l.remaining <= 0 {
		return len(p), nil
	}
	n := int64(len(p))
	if n > l.remaining {
		n = l.remaining
	}
	written, err := l.w.Write(p[:n])
	l.remaining -= int64(written)
	return len(p), err
}
