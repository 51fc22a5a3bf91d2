package grading

import (
	"context"
	"testing"
)

type fakeBatchGrader struct {
	verdict Verdict
	fault   int
}

func (f fakeBatchGrader) GradeBatch(ctx context.Context, synth TestCase, opts GradingOptions) (Verdict, int) {
	return f.verdict, f.fault
}

func TestGroupCaseName(t *testing.T) {
	cases := []struct {
		groupID int
		want    string
	}{
		{SampleGroupID, "foo_sample"},
		{MainGroupID, "foo"},
		{1, "foo_1"},
		{2, "foo_2"},
	}
	for _, c := range cases {
		if got := GroupCaseName("foo", c.groupID); got != c.want {
			t.Errorf("GroupCaseName(foo, %d) = %q, want %q", c.groupID, got, c.want)
		}
	}
}

func TestSynthesizeUnionsLabels(t *testing.T) {
	members := []TestCase{
		{Name: "foo_1", Subtasks: []int{1, 2}},
		{Name: "foo_2", Subtasks: []int{2}},
	}
	synth := Synthesize("foo", 1, "/tmp/foo_1.in", members)
	if synth.Name != "foo_1" {
		t.Errorf("Name = %q, want foo_1", synth.Name)
	}
	if !synth.HasSubtask(1) || !synth.HasSubtask(2) {
		t.Errorf("Subtasks = %v, want union {1,2}", synth.Subtasks)
	}
}

func TestMultiCaseAdaptorAllAC(t *testing.T) {
	adaptor := NewMultiCaseAdaptor(fakeBatchGrader{verdict: AC()})
	members := []TestCase{{Name: "foo_1"}, {Name: "foo_2"}, {Name: "foo_3"}}
	got := adaptor.Grade(context.Background(), "foo", MainGroupID, "/tmp/foo.in", members, GradingOptions{})
	for i, v := range got {
		if v.Verdict.Status != StatusAC || v.Index != i+1 {
			t.Errorf("got[%d] = %+v, want AC with index %d", i, v, i+1)
		}
	}
}

func TestMultiCaseAdaptorDemultiplexesFault(t *testing.T) {
	adaptor := NewMultiCaseAdaptor(fakeBatchGrader{verdict: WA(), fault: 2})
	members := []TestCase{{Name: "foo_1"}, {Name: "foo_2"}, {Name: "foo_3"}, {Name: "foo_4"}}
	got := adaptor.Grade(context.Background(), "foo", MainGroupID, "/tmp/foo.in", members, GradingOptions{})

	if got[0].Verdict.Status != StatusAC {
		t.Errorf("member before fault = %+v, want AC", got[0])
	}
	if got[1].Verdict.Status != StatusWA {
		t.Errorf("faulting member = %+v, want WA", got[1])
	}
	if got[2].Verdict.Status != StatusOK || got[3].Verdict.Status != StatusOK {
		t.Errorf("members after fault = %+v, %+v, want OK", got[2], got[3])
	}
	for i, v := range got {
		if v.Index != i+1 {
			t.Errorf("got[%d].Index = %d, want %d", i, v.Index, i+1)
		}
	}
}

func TestMultiCaseAdaptorUnknownFaultBlamesLast(t *testing.T) {
	adaptor := NewMultiCaseAdaptor(fakeBatchGrader{verdict: RTE(), fault: 0})
	members := []TestCase{{Name: "foo_1"}, {Name: "foo_2"}}
	got := adaptor.Grade(context.Background(), "foo", MainGroupID, "/tmp/foo.in", members, GradingOptions{})

	if got[0].Verdict.Status != StatusAC {
		t.Errorf("got[0] = %+v, want AC", got[0])
	}
	if got[1].Verdict.Status != StatusRTE {
		t.Errorf("got[1] = %+v, want RTE", got[1])
	}
}
