package match

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/ohler55/ojg/jp"
)

// JSONPath returns a matcher that evaluates a JSONPath expression against a
// structured argument (map, slice, struct, or a JSON-encoded string/[]byte).
//
// With a non-nil expected value, the matcher accepts arguments where any
// value selected by the path equals expected. With a nil expected value it is
// an existence check: the path must select at least one value.
//
// An invalid path, a non-structured argument, or unparsable JSON is a
// non-match, never an error.
func JSONPath(path string, expected any) Matcher {
	parsed, err := jp.ParseString(path)
	if err != nil {
		return neverMatcher{desc: fmt.Sprintf("JSONPath(%q): %v", path, err)}
	}
	return jsonPathMatcher{path: path, expr: parsed, expected: expected}
}

type jsonPathMatcher struct {
	path     string
	expr     jp.Expr
	expected any
}

func (m jsonPathMatcher) Matches(actual any) bool {
	data, ok := structuredValue(actual)
	if !ok {
		return false
	}

	results := m.expr.Get(data)
	if len(results) == 0 {
		return false
	}
	if m.expected == nil {
		return true
	}
	for _, r := range results {
		if looseEqual(r, m.expected) {
			return true
		}
	}
	return false
}

func (m jsonPathMatcher) String() string {
	if m.expected == nil {
		return fmt.Sprintf("JSONPath(%q)", m.path)
	}
	return fmt.Sprintf("JSONPath(%q == %v)", m.path, m.expected)
}

// structuredValue decodes string/[]byte arguments as JSON and passes other
// values through for direct path evaluation.
func structuredValue(actual any) (any, bool) {
	switch v := actual.(type) {
	case nil:
		return nil, false
	case string:
		var data any
		if err := json.Unmarshal([]byte(v), &data); err != nil {
			return nil, false
		}
		return data, true
	case []byte:
		var data any
		if err := json.Unmarshal(v, &data); err != nil {
			return nil, false
		}
		return data, true
	default:
		return actual, true
	}
}

// looseEqual compares with numeric widening so that JSON-decoded float64
// values compare equal to int expectations.
func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
