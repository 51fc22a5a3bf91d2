package grading

// TestCaseAggregator combines a subtask's test-case verdicts into a single
// SubtaskVerdict. Status is the worst severity across the verdicts; points
// are awarded in full iff status is AC, else zero.
type TestCaseAggregator interface {
	Aggregate(verdicts []TestCaseVerdict, subtaskPoints float64) SubtaskVerdict
}

// SubtaskAggregator combines a suite's subtask verdicts into the overall
// result: worst-severity status, summed points.
type SubtaskAggregator interface {
	Aggregate(subtasks []SubtaskVerdict) SubtaskVerdict
}

type defaultAggregator struct{}

type defaultSubtaskAggregator struct{}

// NewTestCaseAggregator returns the standard test-case-to-subtask aggregator.
func NewTestCaseAggregator() TestCaseAggregator { return defaultAggregator{} }

// NewSubtaskAggregator returns the standard subtask-to-overall aggregator.
func NewSubtaskAggregator() SubtaskAggregator { return defaultSubtaskAggregator{} }

// Aggregate implements TestCaseAggregator. An empty verdict list is
// vacuously AC and awards subtaskPoints in full, matching the sampled
// reference behavior (see DESIGN.md Open Question).
func (defaultAggregator) Aggregate(verdicts []TestCaseVerdict, subtaskPoints float64) SubtaskVerdict {
	statuses := make([]VerdictStatus, len(verdicts))
	for i, v := range verdicts {
		statuses[i] = v.Verdict.Status
	}
	status := AggregateStatuses(statuses)
	points := 0.0
	if status == StatusAC {
		points = subtaskPoints
	}
	return SubtaskVerdict{Verdict: Verdict{Status: status}, Points: points}
}

// Aggregate implements SubtaskAggregator.
func (defaultSubtaskAggregator) Aggregate(subtasks []SubtaskVerdict) SubtaskVerdict {
	statuses := make([]VerdictStatus, len(subtasks))
	total := 0.0
	for i, s := range subtasks {
		statuses[i] = s.Verdict.Status
		total += s.Points
	}
	return SubtaskVerdict{Verdict: Verdict{Status: AggregateStatuses(statuses)}, Points: total}
}
