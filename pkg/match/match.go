package match

import (
	"fmt"
	"reflect"
)

// Matcher is a predicate over a single argument position.
type Matcher interface {
	// Matches reports whether the actual runtime value satisfies the matcher.
	// It must not panic; incompatible values simply do not match.
	Matches(actual any) bool

	// String describes the matcher for failure messages.
	String() string
}

// Eq returns a matcher that accepts values equal to expected.
// A nil actual value matches only a nil expected value. Non-nil values are
// compared structurally with reflect.DeepEqual.
func Eq(expected any) Matcher {
	return eqMatcher{expected: expected}
}

// Any returns a matcher that accepts every value, including nil.
func Any() Matcher {
	return anyMatcher{}
}

// NotNil returns a matcher that accepts any non-nil value.
func NotNil() Matcher {
	return notNilMatcher{}
}

// Normalize converts a mixed list of matchers and plain values into matchers.
// Plain values are wrapped in Eq; existing matchers pass through unchanged.
func Normalize(values ...any) []Matcher {
	matchers := make([]Matcher, len(values))
	for i, v := range values {
		if m, ok := v.(Matcher); ok {
			matchers[i] = m
			continue
		}
		matchers[i] = Eq(v)
	}
	return matchers
}

// Args matches a tuple of matchers against a tuple of actual arguments.
// It succeeds iff the lengths are equal and every positional pair matches.
// An arity mismatch is always a non-match, never an error.
func Args(matchers []Matcher, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, m := range matchers {
		if !m.Matches(actual[i]) {
			return false
		}
	}
	return true
}

// Describe renders a matcher tuple as a call pattern, e.g. "Process(Eq(42), Any)".
func Describe(signature string, matchers []Matcher) string {
	args := make([]string, len(matchers))
	for i, m := range matchers {
		args[i] = m.String()
	}
	return signature + "(" + join(args) + ")"
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

type eqMatcher struct {
	expected any
}

func (m eqMatcher) Matches(actual any) bool {
	if m.expected == nil || actual == nil {
		return m.expected == nil && actual == nil
	}
	return reflect.DeepEqual(m.expected, actual)
}

func (m eqMatcher) String() string {
	return fmt.Sprintf("Eq(%v)", m.expected)
}

type anyMatcher struct{}

func (anyMatcher) Matches(any) bool { return true }
func (anyMatcher) String() string   { return "Any" }

type notNilMatcher struct{}

func (notNilMatcher) Matches(actual any) bool {
	if actual == nil {
		return false
	}
	// A non-nil interface can still hold a nil pointer, map, or slice.
	rv := reflect.ValueOf(actual)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func (notNilMatcher) String() string { return "NotNil" }

// neverMatcher rejects everything. Used when a matcher cannot be constructed
// (e.g. an invalid regular expression); the construction error is carried in
// the description so verification failures explain themselves.
type neverMatcher struct {
	desc string
}

func (neverMatcher) Matches(any) bool { return false }
func (m neverMatcher) String() string { return m.desc }
