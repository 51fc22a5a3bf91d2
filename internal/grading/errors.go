package grading

import appErr "gradecore/pkg/errors"

// Structural failures abort a grade() call outright: a test suite the spec
// client cannot deliver, or malformed options. They are distinct from
// verdicts (WA/RTE/TLE/ERR), which are always values, never thrown; a
// missing reference file or an unspawnable solution command is reported
// by DefaultTestCaseGrader as an ERR verdict, not as a structural failure.

// ErrSpecUnavailable wraps a failure to fetch the test suite from the spec
// client.
func ErrSpecUnavailable(err error) error {
	return appErr.Wrapf(err, appErr.GradingSpecError, "fetch test suite failed")
}

// ErrInvalidOptions reports malformed GradingOptions.
func ErrInvalidOptions(reason string) error {
	return appErr.New(appErr.GradingOptionsInvalid).WithMessage(reason).WithDetail("reason", reason)
}
