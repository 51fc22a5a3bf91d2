package grading

import (
	"context"
	"path/filepath"
)

// TestCaseGrader runs one test case end to end: invoke the solution,
// capture its output, invoke the comparator, produce a Verdict. The
// orchestrator assigns the TestCaseVerdict's 1-based index; this contract
// only classifies.
type TestCaseGrader interface {
	Grade(ctx context.Context, tc TestCase, opts GradingOptions) Verdict
}

// DefaultTestCaseGrader is the standard TestCaseGrader implementation: it
// delegates execution to a ProcessRunner and classification of a normal
// exit to a Comparator. Execution failures surface as verdicts, never as Go
// errors; only the I/O layer (an unspawnable command, a comparator
// malfunction) is mapped to ERR, mirroring a judge run's usual distinction
// between a failed submission (a verdict) and a judge system error
// (an internal fault reported separately from any verdict).
type DefaultTestCaseGrader struct {
	Runner     ProcessRunner
	Comparator Comparator
}

// NewDefaultTestCaseGrader wires a ProcessRunner and Comparator into the
// standard grader.
func NewDefaultTestCaseGrader(runner ProcessRunner, comparator Comparator) *DefaultTestCaseGrader {
	return &DefaultTestCaseGrader{Runner: runner, Comparator: comparator}
}

// Grade implements TestCaseGrader.
func (g *DefaultTestCaseGrader) Grade(ctx context.Context, tc TestCase, opts GradingOptions) Verdict {
	if g.Runner == nil || g.Comparator == nil {
		return ERR()
	}

	outcome, err := g.Runner.Run(ctx, opts.SolutionCommand, tc.InputPath, opts)
	if err != nil {
		return ERR()
	}
	if outcome.TimedOut {
		return TLE()
	}
	if outcome.Signaled || outcome.ExitCode != 0 {
		return RTE()
	}

	expected := ReferenceOutputPath(opts, tc)
	verdict, err := g.Comparator.Compare(ctx, expected, outcome.Stdout)
	if err != nil {
		return ERR()
	}
	if verdict == CompareAC {
		return AC()
	}
	return WA()
}

// GradeBatch implements BatchGrader by running the synthesized batch case
// exactly like a normal one, additionally surfacing the runner's detected
// faulting member index for a failed run (TLE/RTE). When the normal
// exit classification already fails (RTE/TLE), the faulting index comes
// straight off the RunOutcome; a comparator mismatch (WA) has no such
// signal from the runner, so it is left at 0 and the adaptor falls back to
// blaming the last member.
func (g *DefaultTestCaseGrader) GradeBatch(ctx context.Context, synth TestCase, opts GradingOptions) (Verdict, int) {
	if g.Runner == nil || g.Comparator == nil {
		return ERR(), 0
	}

	outcome, err := g.Runner.Run(ctx, opts.SolutionCommand, synth.InputPath, opts)
	if err != nil {
		return ERR(), 0
	}
	if outcome.TimedOut {
		return TLE(), outcome.FaultingCaseIndex
	}
	if outcome.Signaled || outcome.ExitCode != 0 {
		return RTE(), outcome.FaultingCaseIndex
	}

	expected := ReferenceOutputPath(opts, synth)
	verdict, err := g.Comparator.Compare(ctx, expected, outcome.Stdout)
	if err != nil {
		return ERR(), 0
	}
	if verdict == CompareAC {
		return AC(), 0
	}
	return WA(), 0
}

// ReferenceOutputPath derives the reference-output location for tc. Case
// names already encode the filename scheme in full: "<slug>_sample_<k>"
// for a sample case, "<slug>_<k>" for a main case, "<slug>_<subtask>_<k>"
// for a subtasked case, and the corresponding batched forms without "_<k>"
// for a synthesized multi-case TestCase. The reference output is always
// that stem plus ".out" under GradingOptions.OutputDir.
func ReferenceOutputPath(opts GradingOptions, tc TestCase) string {
	return filepath.Join(opts.OutputDir, tc.Name+".out")
}
