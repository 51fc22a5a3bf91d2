package grading

import (
	"context"
	"fmt"
	"path/filepath"
)

// BatchGrader is the test-case grading variant used in multi-case mode.
// Beyond the verdict for the synthesized batch case, it reports the 1-based
// index of the
// member case that caused a non-AC status. That detection is owned by the
// surrounding execution framework (the solution itself signals which case
// it was on when it failed, or the runner infers it from partial output);
// this core does not reinvent that protocol, only consumes it. faultIndex
// is meaningless when the verdict is AC.
type BatchGrader interface {
	GradeBatch(ctx context.Context, synth TestCase, opts GradingOptions) (verdict Verdict, faultIndex int)
}

// MultiCaseAdaptor grades a whole group as a single concatenated-input
// execution: it synthesizes the one TestCase the group
// is collapsed into, drives the batch grader exactly once against it, and
// demultiplexes the single verdict back into a TestCaseVerdict per original
// member.
type MultiCaseAdaptor struct {
	Grader BatchGrader
}

// NewMultiCaseAdaptor wires a BatchGrader for batched execution.
func NewMultiCaseAdaptor(grader BatchGrader) *MultiCaseAdaptor {
	return &MultiCaseAdaptor{Grader: grader}
}

// GroupCaseName derives the synthesized case name for a whole group:
// "<slug>_sample" for the sample group, "<slug>" for the main group,
// "<slug>_<id>" for a declared subtask group.
func GroupCaseName(slug string, groupID int) string {
	switch groupID {
	case SampleGroupID:
		return slug + "_sample"
	case MainGroupID:
		return slug
	default:
		return fmt.Sprintf("%s_%d", slug, groupID)
	}
}

// Synthesize builds the single TestCase a group collapses into: its name
// follows GroupCaseName, its InputPath is the group's combined input, and
// its Subtasks is the union of every member case's labels so that label
// based subtask inclusion still finds it under every subtask any member
// belongs to.
func Synthesize(slug string, groupID int, combinedInputPath string, members []TestCase) TestCase {
	labels := map[int]struct{}{}
	for _, m := range members {
		for _, s := range m.Subtasks {
			labels[s] = struct{}{}
		}
	}
	union := make([]int, 0, len(labels))
	for s := range labels {
		union = append(union, s)
	}
	return TestCase{
		Name:      GroupCaseName(slug, groupID),
		InputPath: combinedInputPath,
		Subtasks:  union,
		Sample:    groupID == SampleGroupID,
	}
}

// CombinedInputPath derives the location of a group's concatenated input
// file, following the same stem as GroupCaseName but in the directory and
// with the extension of the group's own member inputs (the combined file
// itself is produced by test-case generation, out of scope here; this only
// names where it is expected to live). An empty member list (the sample
// group may legitimately be empty) yields an empty path.
func CombinedInputPath(slug string, groupID int, members []TestCase) string {
	if len(members) == 0 {
		return ""
	}
	dir := filepath.Dir(members[0].InputPath)
	ext := filepath.Ext(members[0].InputPath)
	return filepath.Join(dir, GroupCaseName(slug, groupID)+ext)
}

// Grade runs the synthesized case once and demultiplexes the result into
// one TestCaseVerdict per member: a batch verdict of AC means every member
// is AC. Otherwise exactly one member — the one at
// faultIndex — caused the failure and keeps the real status; members
// before it already ran and passed, so they are AC; members after it never
// ran and are reported OK, a non-failing placeholder that must not be
// mistaken for AC when a subtask is scored.
func (a *MultiCaseAdaptor) Grade(ctx context.Context, slug string, groupID int, combinedInputPath string, members []TestCase, opts GradingOptions) []TestCaseVerdict {
	synth := Synthesize(slug, groupID, combinedInputPath, members)
	verdict, faultIndex := a.Grader.GradeBatch(ctx, synth, opts)

	out := make([]TestCaseVerdict, len(members))
	if verdict.Status == StatusAC {
		for i := range members {
			out[i] = TestCaseVerdict{Verdict: AC(), Index: i + 1}
		}
		return out
	}

	if faultIndex < 1 || faultIndex > len(members) {
		faultIndex = len(members)
	}
	for i := range members {
		switch {
		case i+1 < faultIndex:
			out[i] = TestCaseVerdict{Verdict: AC(), Index: i + 1}
		case i+1 == faultIndex:
			out[i] = TestCaseVerdict{Verdict: verdict, Index: i + 1}
		default:
			out[i] = TestCaseVerdict{Verdict: OK(), Index: i + 1}
		}
	}
	return out
}
