package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	msgs []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func TestAssertSuccess(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "plain message")
	AssertEqualf(t, 42, 42, "value should be %d", 42)
	AssertNoError(t, nil)
	AssertNoErrorf(t, nil, "operation %s", "parse")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", errSentinel), errSentinel)
	AssertContains(t, "hello world", "world")
	AssertTrue(t, true)
	AssertTruef(t, true, "depth %d", 3)
	AssertFalse(t, false)
	AssertFalsef(t, false, "move %q", "e2e4")
}

var errSentinel = errors.New("sentinel")

func TestFailureMessages(t *testing.T) {
	cases := []struct {
		name   string
		assert func(tb *recorder)
		want   string
	}{
		{"no message", func(tb *recorder) { AssertTrue(tb, false) }, "expected true"},
		{"plain message keeps verbs", func(tb *recorder) { AssertTrue(tb, false, "100%d") }, "100%d: expected true"},
		{"joined messages", func(tb *recorder) { AssertFalse(tb, true, "a", "b") }, "a b: expected false"},
		{"formatted", func(tb *recorder) { AssertTruef(tb, false, "depth %d", 3) }, "depth 3: expected true"},
		{"formatted error", func(tb *recorder) { AssertNoErrorf(tb, errSentinel, "fen %q", "x") }, `fen "x": unexpected error: sentinel`},
		{"error is", func(tb *recorder) { AssertErrorIs(tb, errors.New("other"), errSentinel, "check") }, "check: got error other, want sentinel"},
		{"contains", func(tb *recorder) { AssertContains(tb, "abc", "z") }, `"abc" does not contain "z"`},
	}
	for _, c := range cases {
		tb := &recorder{TB: t}
		c.assert(tb)
		if len(tb.msgs) != 1 || tb.msgs[0] != c.want {
			t.Errorf("%s: got %q want [%q]", c.name, tb.msgs, c.want)
		}
	}
}

func TestEqualFailureShowsDiff(t *testing.T) {
	tb := &recorder{TB: t}
	AssertEqualf(tb, 1, 2, "case %d", 7)
	if len(tb.msgs) != 1 {
		t.Fatalf("got %d failures want 1", len(tb.msgs))
	}
	AssertContains(t, tb.msgs[0], "case 7: mismatch (-want +got):")
}
