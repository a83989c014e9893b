package double

import "time"

// Invocation is an immutable record of one call dispatched to a mock.
type Invocation struct {
	Signature string
	Args      []any

	at time.Time

	// verified is set when a Verify call's matchers cover this invocation.
	// VerifyNoOtherCalls reports invocations that never got covered.
	verified bool
}

// At returns the time the call was recorded.
func (inv *Invocation) At() time.Time {
	return inv.at
}

// Verified reports whether a prior Verify call covered this invocation.
func (inv *Invocation) Verified() bool {
	return inv.verified
}

func (inv *Invocation) String() string {
	return formatCall(inv.Signature, inv.Args)
}
