package double

import (
	"errors"

	"github.com/getmockd/double/pkg/match"
	"github.com/getmockd/double/pkg/times"
)

// Verify asserts that the number of recorded invocations matching the
// signature and argument pattern satisfies the expectation. Arguments may be
// plain values or match.Matcher values, evaluated with the same machinery as
// dispatch. Matching invocations are marked covered for VerifyNoOtherCalls
// regardless of whether the expectation holds.
func (h *Handler) Verify(signature string, t times.Times, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	matchers := match.Normalize(args...)
	count := 0
	for _, inv := range h.ledger {
		if inv.Signature == signature && match.Args(matchers, inv.Args) {
			inv.verified = true
			count++
		}
	}

	if !t.Validate(count) {
		return &VerificationError{
			Mock:     h.name,
			Pattern:  match.Describe(signature, matchers),
			Expected: t.String(),
			Count:    count,
		}
	}
	return nil
}

// VerifyGet asserts on property getter invocations (get_<Name>).
func (h *Handler) VerifyGet(property string, t times.Times) error {
	return h.Verify("get_"+property, t)
}

// VerifySet asserts on property setter invocations (set_<Name>). The value
// argument participates in matching like a method argument.
func (h *Handler) VerifySet(property string, t times.Times, value any) error {
	return h.Verify("set_"+property, t, value)
}

// VerifyAll asserts that every setup marked Verifiable was selected at least
// once. Failures for multiple setups are joined.
func (h *Handler) VerifyAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var errs []error
	for _, s := range h.setups {
		if s.verifiable && s.callCount == 0 {
			errs = append(errs, &VerificationError{
				Mock:     h.name,
				Pattern:  match.Describe(s.signature, s.matchers),
				Expected: "at least once (marked verifiable)",
				Count:    0,
			})
		}
	}
	return errors.Join(errs...)
}

// VerifyNoOtherCalls asserts that every recorded invocation was covered by a
// prior Verify, VerifyGet, or VerifySet call. Uncovered invocations are
// reported individually and joined.
func (h *Handler) VerifyNoOtherCalls() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var errs []error
	for _, inv := range h.ledger {
		if !inv.verified {
			errs = append(errs, &VerificationError{
				Mock:     h.name,
				Pattern:  inv.String(),
				Expected: "coverage by an explicit Verify call",
				Count:    1,
			})
		}
	}
	return errors.Join(errs...)
}
