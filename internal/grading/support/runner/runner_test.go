package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	grading "gradecore/internal/grading"
)

func writeTempInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.in")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	r := NewExecRunner(0)
	in := writeTempInput(t, "3 4\n")

	outcome, err := r.Run(context.Background(), "cat", in, grading.GradingOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if string(outcome.Stdout) != "3 4\n" {
		t.Errorf("Stdout = %q, want %q", outcome.Stdout, "3 4\n")
	}
	if outcome.ExitCode != 0 || outcome.Signaled || outcome.TimedOut {
		t.Errorf("outcome = %+v, want clean exit", outcome)
	}
}

func TestExecRunnerNonZeroExitIsReported(t *testing.T) {
	r := NewExecRunner(0)
	in := writeTempInput(t, "")

	outcome, err := r.Run(context.Background(), "false", in, grading.GradingOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if outcome.ExitCode == 0 {
		t.Errorf("ExitCode = %d, want non-zero", outcome.ExitCode)
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	r := NewExecRunner(0)
	in := writeTempInput(t, "")

	outcome, err := r.Run(context.Background(), "sleep 5", in, grading.GradingOptions{TimeLimit: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !outcome.TimedOut {
		t.Errorf("outcome = %+v, want TimedOut", outcome)
	}
}

func TestExecRunnerUnspawnableCommandErrors(t *testing.T) {
	r := NewExecRunner(0)
	in := writeTempInput(t, "")

	_, err := r.Run(context.Background(), "this-binary-does-not-exist-anywhere", in, grading.GradingOptions{})
	if err == nil {
		t.Error("Run() with unspawnable command, want error")
	}
}

func TestExecRunnerMemoryLimitDoesNotBreakNormalRun(t *testing.T) {
	r := NewExecRunner(0)
	in := writeTempInput(t, "ok\n")

	outcome, err := r.Run(context.Background(), "cat", in, grading.GradingOptions{MemoryLimitMB: 256})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if string(outcome.Stdout) != "ok\n" || outcome.ExitCode != 0 {
		t.Errorf("outcome = %+v, want clean exit with stdout %q", outcome, "ok\n")
	}
}

func TestExecRunnerOutputCap(t *testing.T) {
	r := NewExecRunner(4)
	in := writeTempInput(t, "")

	outcome, err := r.Run(context.Background(), "printf abcdefgh", in, grading.GradingOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(outcome.Stdout) != 4 {
		t.Errorf("len(Stdout) = %d, want 4", len(outcome.Stdout))
	}
}
