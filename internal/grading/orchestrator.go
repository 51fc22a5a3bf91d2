package grading

import "context"

// Grader walks a TestSuite in group order, drives the per-case
// grader (or, in multi-case mode, the batch adaptor), aggregates verdicts
// into subtask results and an overall result, and reports both to a Logger.
// A Grader borrows its collaborators for the duration of one Grade call; it
// owns nothing beyond the in-call verdict accumulator.
type Grader struct {
	Spec        SpecClient
	CaseGrader  TestCaseGrader
	Batch       BatchGrader
	TestCaseAgg TestCaseAggregator
	SubtaskAgg  SubtaskAggregator
	Logger      Logger
}

// NewGrader wires every collaborator the orchestrator needs.
func NewGrader(spec SpecClient, caseGrader TestCaseGrader, batch BatchGrader, testCaseAgg TestCaseAggregator, subtaskAgg SubtaskAggregator, logger Logger) *Grader {
	return &Grader{
		Spec:        spec,
		CaseGrader:  caseGrader,
		Batch:       batch,
		TestCaseAgg: testCaseAgg,
		SubtaskAgg:  subtaskAgg,
		Logger:      logger,
	}
}

// Grade runs one full grading pass and returns the overall SubtaskVerdict.
// Only structural failures (an empty solution command or slug, or an
// unreachable spec client) return a non-nil error; every test-case-level outcome, however bad, is folded into the
// returned verdict instead.
func (g *Grader) Grade(ctx context.Context, opts GradingOptions) (SubtaskVerdict, error) {
	if opts.SolutionCommand == "" {
		return SubtaskVerdict{}, ErrInvalidOptions("solution_command is required")
	}
	if opts.Slug == "" {
		return SubtaskVerdict{}, ErrInvalidOptions("slug is required")
	}

	suite, err := g.Spec.GetTestSuite(ctx)
	if err != nil {
		return SubtaskVerdict{}, ErrSpecUnavailable(err)
	}
	multiCase, err := g.Spec.HasMultipleTestCases(ctx)
	if err != nil {
		return SubtaskVerdict{}, ErrSpecUnavailable(err)
	}

	g.Logger.Introduction(opts.SolutionCommand)

	verdicts := make(map[string]TestCaseVerdict, suite.caseCount())

	for _, group := range suite.Groups {
		if group.ID == SampleGroupID && len(group.Cases) == 0 {
			continue
		}
		g.Logger.TestGroupIntroduction(group.ID)

		if multiCase {
			synth := Synthesize(opts.Slug, group.ID, CombinedInputPath(opts.Slug, group.ID, group.Cases), group.Cases)
			g.Logger.TestCaseIntroduction(synth)
			adaptor := NewMultiCaseAdaptor(g.Batch)
			for i, v := range adaptor.Grade(ctx, opts.Slug, group.ID, synth.InputPath, group.Cases, opts) {
				verdicts[group.Cases[i].Name] = v
			}
			continue
		}

		for i, tc := range group.Cases {
			g.Logger.TestCaseIntroduction(tc)
			v := g.CaseGrader.Grade(ctx, tc, opts)
			verdicts[tc.Name] = TestCaseVerdict{Verdict: v, Index: i + 1}
		}
	}

	var subtaskResults []SubtaskResult
	var subtaskVerdicts []SubtaskVerdict

	if !opts.HasSubtasks() {
		var contributing []TestCaseVerdict
		for _, group := range suite.Groups {
			if group.ID != MainGroupID {
				continue
			}
			for _, tc := range group.Cases {
				contributing = append(contributing, verdicts[tc.Name])
			}
		}
		sv := g.TestCaseAgg.Aggregate(contributing, MainPoints)
		subtaskResults = append(subtaskResults, SubtaskResult{ID: MainGroupID, Verdict: sv})
		subtaskVerdicts = append(subtaskVerdicts, sv)
	} else {
		for s := 1; s <= len(opts.SubtaskPoints); s++ {
			var contributing []TestCaseVerdict
			for _, group := range suite.Groups {
				for _, tc := range group.Cases {
					if tc.HasSubtask(s) {
						contributing = append(contributing, verdicts[tc.Name])
					}
				}
			}
			sv := g.TestCaseAgg.Aggregate(contributing, opts.PointsForSubtask(s))
			subtaskResults = append(subtaskResults, SubtaskResult{ID: s, Verdict: sv})
			subtaskVerdicts = append(subtaskVerdicts, sv)
		}
	}

	overall := g.SubtaskAgg.Aggregate(subtaskVerdicts)
	g.Logger.Result(subtaskResults, overall)
	return overall, nil
}

func (s TestSuite) caseCount() int {
	n := 0
	for _, group := range s.Groups {
		n += len(group.Cases)
	}
	return n
}
