package grading

import "time"

// Reserved test group ids.
const (
	// SampleGroupID identifies the sample group: graded for visibility,
	// never scored unless its cases carry subtask labels.
	SampleGroupID = 0
	// MainGroupID identifies the single implicit subtask used when the
	// problem declares no subtasks.
	MainGroupID = -1
)

// MainPoints is the sentinel point amount awarded to the main subtask. It
// is never surfaced as a real score; problems with subtasks never use it.
const MainPoints float64 = 0

// TestCase is an opaque test identity. Names are unique within a TestSuite;
// Subtasks is the (possibly empty) set of subtask ids this case contributes
// to, empty meaning "main subtask only". InputPath is resolved by whatever
// produced the suite (out of scope here); the grading core only derives the
// reference-output path from Name and GradingOptions.OutputDir.
type TestCase struct {
	Name      string
	InputPath string
	Subtasks  []int
	Sample    bool
}

// HasSubtask reports whether id is in the case's label set.
func (tc TestCase) HasSubtask(id int) bool {
	for _, s := range tc.Subtasks {
		if s == id {
			return true
		}
	}
	return false
}

// TestGroup is an ordered sequence of cases sharing a group id.
type TestGroup struct {
	ID    int
	Cases []TestCase
}

// TestSuite is an ordered sequence of groups. By convention the first group
// (if present) is the sample group; subsequent groups are either the single
// main group or the positive-id subtask groups in declaration order.
type TestSuite struct {
	Groups []TestGroup
}

// GradingOptions configures one grading run.
type GradingOptions struct {
	// Slug is the problem identifier, used as the reference-output filename
	// prefix via each TestCase's Name.
	Slug string
	// SolutionCommand is the shell command graded against every test case.
	SolutionCommand string
	// OutputDir holds reference outputs, named "<case.Name>.out".
	OutputDir string
	// SubtaskPoints is the declared point amount per subtask, in subtask-id
	// order starting at 1. Empty means the problem is single-subtask (main).
	SubtaskPoints []float64
	TimeLimit     time.Duration
	MemoryLimitMB int64
}

// HasSubtasks reports whether the problem declares any subtasks.
func (o GradingOptions) HasSubtasks() bool {
	return len(o.SubtaskPoints) > 0
}

// PointsForSubtask returns the declared points for subtask id (1-based).
func (o GradingOptions) PointsForSubtask(id int) float64 {
	if id < 1 || id > len(o.SubtaskPoints) {
		return 0
	}
	return o.SubtaskPoints[id-1]
}

// TestCaseVerdict pairs a verdict with the 1-based ordinal of the case
// within its group, disambiguating multi-case batch reports.
type TestCaseVerdict struct {
	Verdict Verdict
	Index   int
}

// SubtaskVerdict is a verdict together with the points scored for it. The
// same shape represents both a single subtask's result and the overall
// result returned by the subtask aggregator.
type SubtaskVerdict struct {
	Verdict Verdict
	Points  float64
}
