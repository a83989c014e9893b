// Package double implements the mock engine: per-mock setup registries,
// call dispatch, an invocation ledger, and verification.
//
// A Handler holds the full state of one mock. The mocked interface itself is
// implemented by a thin hand-written façade that forwards every call into
// Handler.Dispatch under a stable signature string and converts the Result
// back into typed return values:
//
//	type calcMock struct {
//		h *double.Handler
//	}
//
//	func (m *calcMock) Add(a, b int) int {
//		return double.ValueOf[int](m.h.Dispatch("Add", a, b))
//	}
//
// Behavior is configured with On and the chainable Setup methods, and
// asserted with Verify and times expectations:
//
//	h := double.New()
//	h.On("Add", 2, 2).Returns(4)
//	h.On("Add", match.Any(), match.Any()).Returns(0)
//	...
//	err := h.Verify("Add", times.Once(), 2, 2)
//
// Setups are matched in registration order; the first setup whose matchers
// all accept the arguments wins. Unmatched calls return zero values under
// Loose behavior and a StrictViolationError under Strict behavior. Every
// call, matched or not, is appended to the invocation ledger first, so
// verification always sees the attempted call.
//
// Property accessors dispatch under synthetic get_<Name> / set_<Name>
// signatures via OnGet, OnSet, VerifyGet, and VerifySet.
package double
