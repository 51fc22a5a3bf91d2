package logger

import (
	"bytes"
	"strings"
	"testing"

	grading "gradecore/internal/grading"
)

func TestConsoleLoggerHeadings(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, nil)

	l.Introduction("python Sol.py")
	l.TestGroupIntroduction(grading.SampleGroupID)
	l.TestCaseIntroduction(grading.TestCase{Name: "foo_sample_1"})
	l.TestGroupIntroduction(grading.MainGroupID)
	l.TestGroupIntroduction(3)
	l.Result(
		[]grading.SubtaskResult{{ID: grading.MainGroupID, Verdict: grading.SubtaskVerdict{Verdict: grading.AC(), Points: grading.MainPoints}}},
		grading.SubtaskVerdict{Verdict: grading.AC(), Points: grading.MainPoints},
	)

	out := buf.String()
	for _, want := range []string{"SAMPLE TEST CASES", "foo_sample_1: ", "OFFICIAL TEST CASES", "TEST GROUP 3", "RESULT", "Overall: AC"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestGroupHeadingMapping(t *testing.T) {
	cases := map[int]string{
		grading.SampleGroupID: "SAMPLE TEST CASES",
		grading.MainGroupID:   "OFFICIAL TEST CASES",
		1:                     "TEST GROUP 1",
		7:                     "TEST GROUP 7",
	}
	for id, want := range cases {
		if got := groupHeading(id); got != want {
			t.Errorf("groupHeading(%d) = %q, want %q", id, got, want)
		}
	}
}
