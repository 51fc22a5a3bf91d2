// Package logger implements grading.Logger as both a human-readable console
// stream (the headings a grading run has always printed) and a structured
// zap record of the same events, for callers that tail logs instead of a
// terminal.
package logger

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	grading "gradecore/internal/grading"
)

// ConsoleLogger renders grading.Logger events as headings and hanging
// paragraphs, the same console shape a grading run has always used: a
// heading per group introduction, a "<name>: " marker per test case (with
// no line break after it), and a per-subtask result table at the end.
type ConsoleLogger struct {
	out io.Writer
	zap *zap.Logger
}

// NewConsoleLogger writes human-readable output to out and, if zapLogger is
// non-nil, a structured mirror of every event to it.
func NewConsoleLogger(out io.Writer, zapLogger *zap.Logger) *ConsoleLogger {
	return &ConsoleLogger{out: out, zap: zapLogger}
}

// Introduction implements grading.Logger.
func (l *ConsoleLogger) Introduction(solutionCommand string) {
	l.heading(fmt.Sprintf("GRADING (%s)", solutionCommand))
	if l.zap != nil {
		l.zap.Info("grading started", zap.String("solution_command", solutionCommand))
	}
}

// TestGroupIntroduction implements grading.Logger, rendering the group id
// exactly as the original console headings did: the sample group as
// "SAMPLE TEST CASES", the main group as "OFFICIAL TEST CASES", and a
// positive id as "TEST GROUP n".
func (l *ConsoleLogger) TestGroupIntroduction(groupID int) {
	l.heading(groupHeading(groupID))
	if l.zap != nil {
		l.zap.Info("test group", zap.Int("group_id", groupID))
	}
}

func groupHeading(groupID int) string {
	switch groupID {
	case grading.SampleGroupID:
		return "SAMPLE TEST CASES"
	case grading.MainGroupID:
		return "OFFICIAL TEST CASES"
	default:
		return "TEST GROUP " + strconv.Itoa(groupID)
	}
}

// TestCaseIntroduction implements grading.Logger as a hanging paragraph:
// the case name followed by a colon, with the verdict to follow on the
// same line once it is known. This core only announces the case; nothing
// downstream of grading.Grader writes the verdict onto this line, so
// callers that want it inline should wrap ConsoleLogger.
func (l *ConsoleLogger) TestCaseIntroduction(tc grading.TestCase) {
	fmt.Fprintf(l.out, "%s: ", tc.Name)
	if l.zap != nil {
		l.zap.Debug("test case", zap.String("case", tc.Name))
	}
}

// Result implements grading.Logger, printing the per-subtask table in
// ascending subtask-id order followed by the overall verdict.
func (l *ConsoleLogger) Result(perSubtask []grading.SubtaskResult, overall grading.SubtaskVerdict) {
	l.heading("RESULT")
	for _, r := range perSubtask {
		fmt.Fprintf(l.out, "  %s: %s (%.2f)\n", subtaskLabel(r.ID), r.Verdict.Verdict.Status, r.Verdict.Points)
	}
	fmt.Fprintf(l.out, "Overall: %s (%.2f)\n", overall.Verdict.Status, overall.Points)

	if l.zap != nil {
		fields := make([]zap.Field, 0, len(perSubtask)+2)
		for _, r := range perSubtask {
			fields = append(fields, zap.String(subtaskLabel(r.ID), r.Verdict.Verdict.Status.String()))
		}
		fields = append(fields, zap.String("overall_status", overall.Verdict.Status.String()), zap.Float64("overall_points", overall.Points))
		l.zap.Info("grading result", fields...)
	}
}

func subtaskLabel(id int) string {
	if id == grading.MainGroupID {
		return "main"
	}
	return "subtask " + strconv.Itoa(id)
}

func (l *ConsoleLogger) heading(text string) {
	fmt.Fprintf(l.out, "\n%s\n", text)
}
