package grading

import "context"

// SpecClient is the consumed collaborator that owns the specification DSL:
// parsing the problem author's declared groups, subtasks, and inputs into a
// TestSuite. Parsing that declaration language is out of scope for the
// grading core itself.
type SpecClient interface {
	GetTestSuite(ctx context.Context) (TestSuite, error)
	HasMultipleTestCases(ctx context.Context) (bool, error)
}

// Logger is a push-only sink for grading progress. Implementations render
// events however they like (console, structured log, UI stream); the core
// never blocks on or inspects what a Logger does with an event.
type Logger interface {
	Introduction(solutionCommand string)
	TestGroupIntroduction(groupID int)
	TestCaseIntroduction(tc TestCase)
	Result(perSubtask []SubtaskResult, overall SubtaskVerdict)
}

// SubtaskResult pairs a subtask id with its verdict, in the ascending order
// the Logger must observe them.
type SubtaskResult struct {
	ID      int
	Verdict SubtaskVerdict
}

// RunOutcome is the raw result of spawning the solution command against one
// input, before any comparison has happened.
type RunOutcome struct {
	Stdout         []byte
	ExitCode       int
	Signaled       bool
	TimedOut       bool
	MemoryExceeded bool
	// FaultingCaseIndex is only meaningful for a batched multi-case run: the
	// 1-based ordinal, within the group, of the member case the runner
	// detected as responsible for a non-zero exit or a TLE. Zero means
	// unknown; the adaptor then attributes the failure to the last member.
	FaultingCaseIndex int
}

// ProcessRunner spawns the solution command, pipes stdinPath to its stdin,
// and captures stdout under the given resource caps. It returns an error
// only for I/O-layer catastrophes (unspawnable command); timeouts, signals,
// and non-zero exits are reported through RunOutcome, not error.
type ProcessRunner interface {
	Run(ctx context.Context, command, stdinPath string, opts GradingOptions) (RunOutcome, error)
}

// CompareVerdict is the comparator's binary classification of a solution's
// output against the reference.
type CompareVerdict int

const (
	CompareAC CompareVerdict = iota
	CompareWA
)

// Comparator compares captured stdout against the reference output file. An
// error return means the comparator itself malfunctioned (ERR), not that
// the answer was wrong (WA).
type Comparator interface {
	Compare(ctx context.Context, expectedPath string, actual []byte) (CompareVerdict, error)
}
