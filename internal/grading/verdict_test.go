package grading

import "testing"

func TestMaxStatus(t *testing.T) {
	cases := []struct {
		a, b VerdictStatus
		want VerdictStatus
	}{
		{StatusAC, StatusAC, StatusAC},
		{StatusAC, StatusWA, StatusWA},
		{StatusWA, StatusAC, StatusWA},
		{StatusWA, StatusTLE, StatusTLE},
		{StatusTLE, StatusWA, StatusTLE},
		{StatusOK, StatusAC, StatusOK},
		{StatusErr, StatusTLE, StatusErr},
	}
	for _, c := range cases {
		if got := MaxStatus(c.a, c.b); got != c.want {
			t.Errorf("MaxStatus(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAggregateStatusesEmpty(t *testing.T) {
	if got := AggregateStatuses(nil); got != StatusAC {
		t.Errorf("AggregateStatuses(nil) = %v, want AC", got)
	}
}

func TestAggregateStatusesWorstDominates(t *testing.T) {
	got := AggregateStatuses([]VerdictStatus{StatusAC, StatusWA, StatusTLE, StatusAC})
	if got != StatusTLE {
		t.Errorf("AggregateStatuses = %v, want TLE", got)
	}
}

func TestVerdictEquality(t *testing.T) {
	if AC() != (Verdict{Status: StatusAC}) {
		t.Error("AC() should equal the zero-points AC verdict")
	}
	if WA() == TLE() {
		t.Error("WA and TLE verdicts must not compare equal")
	}
}

func TestStatusOrdering(t *testing.T) {
	ordered := []VerdictStatus{StatusAC, StatusOK, StatusWA, StatusRTE, StatusTLE, StatusErr}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i] > ordered[i-1]) {
			t.Fatalf("expected %v < %v in severity order", ordered[i-1], ordered[i])
		}
	}
}
