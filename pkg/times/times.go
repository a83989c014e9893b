// Package times provides call-count expectations for mock verification.
//
// A Times value is a pure predicate over an observed invocation count plus a
// human-readable phrase used in verification failure messages. Values are
// constructed through the named factories and are immutable.
package times

import "fmt"

// Times is an expectation over an invocation count.
type Times struct {
	check func(count int) bool
	desc  string
}

// Validate reports whether the observed count satisfies the expectation.
func (t Times) Validate(count int) bool {
	if t.check == nil {
		// Zero value behaves like AtLeastOnce, the common default.
		return count >= 1
	}
	return t.check(count)
}

// String returns the expectation phrase, e.g. "exactly 3 times".
func (t Times) String() string {
	if t.check == nil {
		return "at least once"
	}
	return t.desc
}

// Once expects exactly one invocation.
func Once() Times {
	return Exactly(1)
}

// Never expects zero invocations.
func Never() Times {
	return Times{
		check: func(c int) bool { return c == 0 },
		desc:  "never",
	}
}

// Exactly expects exactly n invocations.
func Exactly(n int) Times {
	return Times{
		check: func(c int) bool { return c == n },
		desc:  fmt.Sprintf("exactly %s", plural(n)),
	}
}

// AtLeast expects n or more invocations.
func AtLeast(n int) Times {
	return Times{
		check: func(c int) bool { return c >= n },
		desc:  fmt.Sprintf("at least %s", plural(n)),
	}
}

// AtLeastOnce expects one or more invocations.
func AtLeastOnce() Times {
	return Times{
		check: func(c int) bool { return c >= 1 },
		desc:  "at least once",
	}
}

// AtMost expects n or fewer invocations.
func AtMost(n int) Times {
	return Times{
		check: func(c int) bool { return c <= n },
		desc:  fmt.Sprintf("at most %s", plural(n)),
	}
}

// AtMostOnce expects zero or one invocations.
func AtMostOnce() Times {
	return Times{
		check: func(c int) bool { return c <= 1 },
		desc:  "at most once",
	}
}

// Between expects an invocation count in [lo, hi].
func Between(lo, hi int) Times {
	return Times{
		check: func(c int) bool { return c >= lo && c <= hi },
		desc:  fmt.Sprintf("between %d and %d times", lo, hi),
	}
}

func plural(n int) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", n)
}
