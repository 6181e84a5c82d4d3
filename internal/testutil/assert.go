package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hailam/chesscore/internal/board"
)

// PositionComparer compares positions field by field, unexported state included.
var PositionComparer = cmp.AllowUnexported(board.Position{})

// SortedStrings makes []string comparisons order-insensitive.
var SortedStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t testing.TB, got, want any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertSamePosition fails if the two positions differ in any field.
func AssertSamePosition(t testing.TB, got, want *board.Position) {
	t.Helper()
	AssertSamePositionf(t, got, want, "")
}

// AssertSamePositionf is AssertSamePosition with a formatted message
// prefixed to the diff.
func AssertSamePositionf(t testing.TB, got, want *board.Position, format string, args ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got, PositionComparer); diff != "" {
		if format != "" {
			t.Errorf("%s: position mismatch (-want +got):\n%s", fmt.Sprintf(format, args...), diff)
		} else {
			t.Errorf("position mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertNoErrorf is AssertNoError with a formatted message.
func AssertNoErrorf(t testing.TB, err error, format string, args ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", fmt.Sprintf(format, args...), err)
	}
}

// AssertErrorIs fails if err does not wrap target.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("got error %v, want %v", err, target)
	}
}

// AssertErrorIsf is AssertErrorIs with a formatted message.
func AssertErrorIsf(t testing.TB, err, target error, format string, args ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%s: got error %v, want %v", fmt.Sprintf(format, args...), err, target)
	}
}
