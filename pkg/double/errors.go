package double

import (
	"fmt"
	"strings"

	"github.com/getmockd/double/internal/strutil"
)

// StrictViolationError reports a dispatched call that matched no setup on a
// mock with Strict behavior. It fails the enclosing test; the engine never
// recovers from it internally.
type StrictViolationError struct {
	Mock      string
	Signature string
	Args      []any
}

func (e *StrictViolationError) Error() string {
	return fmt.Sprintf("mock %s: unexpected call %s in strict mode", e.Mock, formatCall(e.Signature, e.Args))
}

// VerificationError reports an expectation that the recorded call history
// does not satisfy.
type VerificationError struct {
	Mock     string
	Pattern  string // call pattern or invocation the failure is about
	Expected string // expectation phrase, e.g. "exactly once"
	Count    int    // observed matching invocation count
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("mock %s: %s: expected %s, observed %s",
		e.Mock, e.Pattern, e.Expected, pluralCalls(e.Count))
}

func pluralCalls(n int) string {
	if n == 1 {
		return "1 call"
	}
	return fmt.Sprintf("%d calls", n)
}

func formatCall(signature string, args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strutil.Truncate(fmt.Sprintf("%v", a), 0)
	}
	return signature + "(" + strings.Join(parts, ", ") + ")"
}
