// Package testutil holds the assertion helpers shared by the package tests.
//
// Each helper takes an optional plain message. The f variants take a format
// and arguments instead.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want with cmp.Diff.
func AssertEqual(t testing.TB, got, want interface{}, msg ...string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msg), diff)
	}
}

func AssertEqualf(t testing.TB, got, want interface{}, format string, args ...interface{}) {
	t.Helper()
	AssertEqual(t, got, want, fmt.Sprintf(format, args...))
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t testing.TB, err error, msg ...string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msg), err)
	}
}

func AssertNoErrorf(t testing.TB, err error, format string, args ...interface{}) {
	t.Helper()
	AssertNoError(t, err, fmt.Sprintf(format, args...))
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msg ...string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%sgot error %v, want %v", prefix(msg), err, target)
	}
}

func AssertContains(t testing.TB, got, substr string, msg ...string) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msg), got, substr)
	}
}

func AssertTrue(t testing.TB, condition bool, msg ...string) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true", prefix(msg))
	}
}

func AssertTruef(t testing.TB, condition bool, format string, args ...interface{}) {
	t.Helper()
	AssertTrue(t, condition, fmt.Sprintf(format, args...))
}

func AssertFalse(t testing.TB, condition bool, msg ...string) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false", prefix(msg))
	}
}

func AssertFalsef(t testing.TB, condition bool, format string, args ...interface{}) {
	t.Helper()
	AssertFalse(t, condition, fmt.Sprintf(format, args...))
}

func prefix(msg []string) string {
	if s := strings.Join(msg, " "); s != "" {
		return s + ": "
	}
	return ""
}
