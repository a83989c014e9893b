package scenario

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/getmockd/double/pkg/double"
	"github.com/getmockd/double/pkg/match"
)

// Build creates a handler per mock definition, applies its setups, and
// returns the handlers keyed by name. Extra options are applied to every
// handler after the behavior from the document.
func (d *Document) Build(opts ...double.Option) (map[string]*double.Handler, error) {
	handlers := make(map[string]*double.Handler, len(d.Mocks))
	for _, def := range d.Mocks {
		if _, exists := handlers[def.Name]; exists {
			return nil, fmt.Errorf("duplicate mock name %q", def.Name)
		}

		behavior := double.Loose
		if def.Behavior == "strict" {
			behavior = double.Strict
		}
		all := append([]double.Option{
			double.WithBehavior(behavior),
			double.WithName(def.Name),
		}, opts...)

		h := double.New(all...)
		if err := applyMock(h, def); err != nil {
			return nil, err
		}
		handlers[def.Name] = h
	}
	return handlers, nil
}

// Apply registers the document's setups on existing handlers, looked up by
// mock name. Handler behavior is left untouched. A definition with no
// matching handler is an error.
func (d *Document) Apply(handlers map[string]*double.Handler) error {
	for _, def := range d.Mocks {
		h, ok := handlers[def.Name]
		if !ok {
			return fmt.Errorf("no handler registered for mock %q", def.Name)
		}
		if err := applyMock(h, def); err != nil {
			return err
		}
	}
	return nil
}

func applyMock(h *double.Handler, def MockDef) error {
	for i, sd := range def.Setups {
		if err := applySetup(h, sd); err != nil {
			return fmt.Errorf("mock %q: setups[%d]: %w", def.Name, i, err)
		}
	}
	return nil
}

func applySetup(h *double.Handler, def SetupDef) error {
	args := make([]any, len(def.Args))
	for i, spec := range def.Args {
		m, err := matcherFor(spec)
		if err != nil {
			return fmt.Errorf("args[%d]: %w", i, err)
		}
		args[i] = m
	}

	s := h.On(def.Signature, args...)

	switch {
	case def.Throws != "":
		s.Throws(errors.New(def.Throws))
	case len(def.ReturnsInOrder) > 0:
		s.ReturnsInOrder(def.ReturnsInOrder...)
	case def.Returns != nil:
		s.Returns(def.Returns)
	}

	for key, value := range def.Out {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 {
			return fmt.Errorf("out parameter index %q is not a valid index", key)
		}
		s.OutValue(index, value)
	}

	if def.Verifiable {
		s.Verifiable()
	}
	return nil
}

// matcherFor converts one argument spec into a matcher. Scalars and lists
// are literals; maps are matcher specs and must use a recognized key.
func matcherFor(spec any) (match.Matcher, error) {
	m, ok := spec.(map[string]any)
	if !ok {
		return match.Eq(spec), nil
	}
	if len(m) != 1 {
		return nil, fmt.Errorf("matcher spec must have exactly one key, got %d", len(m))
	}

	for key, value := range m {
		switch key {
		case "eq":
			return match.Eq(value), nil
		case "any":
			if value != true {
				return nil, fmt.Errorf("matcher spec {any} must be true")
			}
			return match.Any(), nil
		case "notNil":
			if value != true {
				return nil, fmt.Errorf("matcher spec {notNil} must be true")
			}
			return match.NotNil(), nil
		case "regexp":
			pattern, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("matcher spec {regexp} needs a string pattern")
			}
			return match.Regexp(pattern), nil
		case "expr":
			src, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("matcher spec {expr} needs a string expression")
			}
			return match.Expr(src), nil
		case "in":
			values, ok := value.([]any)
			if !ok {
				return nil, fmt.Errorf("matcher spec {in} needs a list")
			}
			return match.In(values...), nil
		case "notIn":
			values, ok := value.([]any)
			if !ok {
				return nil, fmt.Errorf("matcher spec {notIn} needs a list")
			}
			return match.NotIn(values...), nil
		case "range":
			return rangeMatcher(value)
		case "jsonPath":
			return jsonPathMatcher(value)
		default:
			return nil, fmt.Errorf("unknown matcher spec %q", key)
		}
	}
	return nil, fmt.Errorf("empty matcher spec")
}

// rangeMatcher builds a numeric range check as an expr matcher, which
// handles numeric type widening that a typed comparison would not.
func rangeMatcher(value any) (match.Matcher, error) {
	spec, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("matcher spec {range} needs min and max")
	}
	lo, loOK := toNumber(spec["min"])
	hi, hiOK := toNumber(spec["max"])
	if !loOK || !hiOK {
		return nil, fmt.Errorf("matcher spec {range} needs numeric min and max")
	}

	exclusive, _ := spec["exclusive"].(bool)
	op := "="
	if exclusive {
		op = ""
	}
	return match.Expr(fmt.Sprintf("value >%s %v && value <%s %v", op, lo, op, hi)), nil
}

func jsonPathMatcher(value any) (match.Matcher, error) {
	spec, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("matcher spec {jsonPath} needs a path")
	}
	path, ok := spec["path"].(string)
	if !ok || path == "" {
		return nil, fmt.Errorf("matcher spec {jsonPath} needs a string path")
	}
	return match.JSONPath(path, spec["value"]), nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
