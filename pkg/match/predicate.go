package match

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Is returns a matcher backed by a typed predicate function.
//
// A nil actual value invokes the predicate with T's zero value rather than
// short-circuiting to a non-match; predicates that care must check for the
// zero value themselves. A non-nil actual of an incompatible dynamic type
// fails without invoking the predicate.
func Is[T any](fn func(T) bool) Matcher {
	return isMatcher[T]{fn: fn}
}

type isMatcher[T any] struct {
	fn func(T) bool
}

func (m isMatcher[T]) Matches(actual any) bool {
	if actual == nil {
		var zero T
		return m.fn(zero)
	}
	v, ok := actual.(T)
	if !ok {
		return false
	}
	return m.fn(v)
}

func (m isMatcher[T]) String() string {
	return fmt.Sprintf("Is(func(%s) bool)", reflect.TypeOf((*T)(nil)).Elem())
}

// Expr returns a matcher that evaluates a boolean expr-lang expression
// against the argument, bound as `value`. Example: Expr("value > 3 && value < 10").
//
// A compile error yields a matcher that never matches; evaluation errors and
// non-boolean results are non-matches.
func Expr(expression string) Matcher {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return neverMatcher{desc: fmt.Sprintf("Expr(%q): %v", expression, err)}
	}
	return exprMatcher{src: expression, program: program}
}

type exprMatcher struct {
	src     string
	program *vm.Program
}

func (m exprMatcher) Matches(actual any) bool {
	out, err := expr.Run(m.program, map[string]any{"value": actual})
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func (m exprMatcher) String() string {
	return fmt.Sprintf("Expr(%q)", m.src)
}
