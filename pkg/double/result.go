package double

// Result is the outcome of one dispatched call.
type Result struct {
	// Value is the configured return value, or nil when no setup matched
	// under Loose behavior. Façades use ValueOf to coerce nil into the
	// declared return type's zero value.
	Value any

	// Err is a StrictViolationError on a strict-mode miss, a fault injected
	// by the chaos decorator, or the error configured with Setup.Throws.
	Err error

	// Out holds injected out/ref parameter values keyed by parameter index.
	Out map[int]any
}

// ValueOf coerces a dispatch result into the declared return type. A nil
// result value or a type mismatch yields T's zero value, which is exactly
// the Loose-behavior default for an unmatched call.
func ValueOf[T any](r *Result) T {
	var zero T
	if r == nil || r.Value == nil {
		return zero
	}
	v, ok := r.Value.(T)
	if !ok {
		return zero
	}
	return v
}

// OutOf coerces the injected out/ref value at the given parameter index.
// Missing indices and type mismatches yield T's zero value.
func OutOf[T any](r *Result, index int) T {
	var zero T
	if r == nil || r.Out == nil {
		return zero
	}
	v, ok := r.Out[index].(T)
	if !ok {
		return zero
	}
	return v
}
