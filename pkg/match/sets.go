package match

import (
	"cmp"
	"fmt"
)

// In returns a matcher that accepts values equal to any member of the set.
func In(values ...any) Matcher {
	return setMatcher{values: values}
}

// NotIn returns a matcher that accepts values equal to no member of the set.
func NotIn(values ...any) Matcher {
	return setMatcher{values: values, negate: true}
}

type setMatcher struct {
	values []any
	negate bool
}

func (m setMatcher) Matches(actual any) bool {
	found := false
	for _, v := range m.values {
		if (eqMatcher{expected: v}).Matches(actual) {
			found = true
			break
		}
	}
	if m.negate {
		return !found
	}
	return found
}

func (m setMatcher) String() string {
	name := "In"
	if m.negate {
		name = "NotIn"
	}
	return fmt.Sprintf("%s(%v)", name, m.values)
}

// RangeKind selects how InRange treats its bounds.
type RangeKind int

const (
	// Inclusive accepts values v with lo <= v <= hi.
	Inclusive RangeKind = iota
	// Exclusive accepts values v with lo < v < hi.
	Exclusive
)

// InRange returns a matcher that accepts ordered values inside [lo, hi]
// (Inclusive) or (lo, hi) (Exclusive). Values of a different runtime type
// than T do not match.
func InRange[T cmp.Ordered](lo, hi T, kind RangeKind) Matcher {
	return rangeMatcher[T]{lo: lo, hi: hi, kind: kind}
}

type rangeMatcher[T cmp.Ordered] struct {
	lo, hi T
	kind   RangeKind
}

func (m rangeMatcher[T]) Matches(actual any) bool {
	v, ok := actual.(T)
	if !ok {
		return false
	}
	if m.kind == Exclusive {
		return m.lo < v && v < m.hi
	}
	return m.lo <= v && v <= m.hi
}

func (m rangeMatcher[T]) String() string {
	if m.kind == Exclusive {
		return fmt.Sprintf("InRange(%v, %v, Exclusive)", m.lo, m.hi)
	}
	return fmt.Sprintf("InRange(%v, %v, Inclusive)", m.lo, m.hi)
}
