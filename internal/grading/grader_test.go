package grading

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	outcome RunOutcome
	err     error
}

func (f fakeRunner) Run(ctx context.Context, command, stdinPath string, opts GradingOptions) (RunOutcome, error) {
	return f.outcome, f.err
}

type fakeComparator struct {
	verdict CompareVerdict
	err     error
}

func (f fakeComparator) Compare(ctx context.Context, expectedPath string, actual []byte) (CompareVerdict, error) {
	return f.verdict, f.err
}

func TestDefaultTestCaseGraderUnspawnableIsErr(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{err: errors.New("boom")}, fakeComparator{})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusErr {
		t.Errorf("Grade = %+v, want ERR", got)
	}
}

func TestDefaultTestCaseGraderTimeout(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{outcome: RunOutcome{TimedOut: true}}, fakeComparator{})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusTLE {
		t.Errorf("Grade = %+v, want TLE", got)
	}
}

func TestDefaultTestCaseGraderNonZeroExitIsRTE(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{outcome: RunOutcome{ExitCode: 1}}, fakeComparator{})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusRTE {
		t.Errorf("Grade = %+v, want RTE", got)
	}
}

func TestDefaultTestCaseGraderSignaledIsRTE(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{outcome: RunOutcome{Signaled: true}}, fakeComparator{})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusRTE {
		t.Errorf("Grade = %+v, want RTE", got)
	}
}

func TestDefaultTestCaseGraderComparatorErrorIsErr(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{}, fakeComparator{err: errors.New("disk full")})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusErr {
		t.Errorf("Grade = %+v, want ERR", got)
	}
}

func TestDefaultTestCaseGraderAC(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{}, fakeComparator{verdict: CompareAC})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusAC {
		t.Errorf("Grade = %+v, want AC", got)
	}
}

func TestDefaultTestCaseGraderWA(t *testing.T) {
	g := NewDefaultTestCaseGrader(fakeRunner{}, fakeComparator{verdict: CompareWA})
	got := g.Grade(context.Background(), TestCase{Name: "p_1"}, GradingOptions{})
	if got.Status != StatusWA {
		t.Errorf("Grade = %+v, want WA", got)
	}
}

func TestReferenceOutputPath(t *testing.T) {
	opts := GradingOptions{OutputDir: "/data/out"}
	tc := TestCase{Name: "sum_1"}
	got := ReferenceOutputPath(opts, tc)
	want := "/data/out/sum_1.out"
	if got != want {
		t.Errorf("ReferenceOutputPath = %q, want %q", got, want)
	}
}
