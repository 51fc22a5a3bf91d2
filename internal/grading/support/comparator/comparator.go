// Package comparator implements grading.Comparator against reference
// output files, including the gzip-compressed ones a large test data set
// is often shipped as.
package comparator

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	grading "gradecore/internal/grading"
	pkgerrors "gradecore/pkg/errors"
)

// TokenComparator implements the conventional competitive-programming
// comparator: both streams are split on whitespace and compared token by
// token, so trailing newlines, extra blank lines, and run-to-run spacing
// differences never cause a spurious WA. Reference files ending in ".gz"
// are transparently decompressed with klauspost/compress's gzip.
type TokenComparator struct{}

// NewTokenComparator returns the standard comparator.
func NewTokenComparator() *TokenComparator { return &TokenComparator{} }

// Compare implements grading.Comparator.
func (c *TokenComparator) Compare(ctx context.Context, expectedPath string, actual []byte) (grading.CompareVerdict, error) {
	expected, err := readReference(expectedPath)
	if err != nil {
		return grading.CompareWA, pkgerrors.Wrapf(err, pkgerrors.GradingReferenceError, "cannot read reference output %q", expectedPath)
	}

	if tokensEqual(expected, actual) {
		return grading.CompareAC, nil
	}
	return grading.CompareWA, nil
}

func readReference(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return io.ReadAll(f)
}

func tokensEqual(a, b []byte) bool {
	sa := bufio.NewScanner(bytes.NewReader(a))
	sb := bufio.NewScanner(bytes.NewReader(b))
	sa.Split(bufio.ScanWords)
	sb.Split(bufio.ScanWords)

	for {
		hasA := sa.Scan()
		hasB := sb.Scan()
		if hasA != hasB {
			return false
		}
		if !hasA {
			return true
		}
		if sa.Text() != sb.Text() {
			return false
		}
	}
}
