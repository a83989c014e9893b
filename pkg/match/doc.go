// Package match provides argument matchers for mock setups and verification.
//
// A Matcher is a predicate over a single argument position. The same matcher
// machinery is used when a dispatched call is matched against registered
// setups and when the invocation ledger is scanned during verification.
//
// Matchers never panic: any internal problem (wrong runtime type, nil value,
// invalid pattern) resolves to "does not match". Failing a test with a crash
// instead of a mismatch is never acceptable here.
//
// Plain values can be used wherever a Matcher is expected; they are wrapped
// in Eq by Normalize. The available matchers:
//
//   - Eq: literal equality (nil matches only nil)
//   - Any: matches everything, including nil
//   - Is: typed predicate function
//   - In / NotIn: set membership
//   - InRange: ordered range with inclusive or exclusive bounds
//   - Regexp: regular expression over string arguments
//   - NotNil: any non-nil value
//   - Expr: boolean expr-lang expression over the argument
//   - JSONPath: JSONPath lookup into structured arguments
package match
