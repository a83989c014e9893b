package double

import (
	"sort"

	"github.com/getmockd/double/pkg/match"
)

// Setup is one configured behavior bound to a signature and an argument
// matcher tuple. All configuration methods mutate the setup in place and
// return it for chaining; configuration is expected to happen before the
// mock is exercised.
type Setup struct {
	h         *Handler
	signature string
	matchers  []match.Matcher

	retValue    any
	retFunc     func(args []any) any
	retErr      error
	sequence    []any
	hasSequence bool
	callback    func(args []any)
	injectors   []injector

	verifiable bool

	// callCount counts selections of this setup by the dispatch engine.
	// It is deliberately not cleared by ResetCalls: a setup that was ever
	// triggered stays satisfied for VerifyAll even after the ledger is wiped.
	callCount int
}

// injector writes a value into an out/ref parameter slot on every selection.
type injector struct {
	index int
	value any
	fn    func(args []any) any
}

// Signature returns the member signature this setup is bound to.
func (s *Setup) Signature() string {
	return s.signature
}

// CallCount returns how many times the dispatch engine selected this setup.
func (s *Setup) CallCount() int {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return s.callCount
}

// Returns configures a fixed return value.
func (s *Setup) Returns(value any) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.retValue = value
	s.retFunc = nil
	s.retErr = nil
	s.hasSequence = false
	return s
}

// ReturnsFunc configures a value-producing callback invoked with the actual
// arguments on every selection.
func (s *Setup) ReturnsFunc(fn func(args []any) any) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.retFunc = fn
	s.retErr = nil
	s.hasSequence = false
	return s
}

// ReturnsInOrder configures a sequence of return values. Each selection
// consumes the next value; once exhausted, the last value repeats.
func (s *Setup) ReturnsInOrder(values ...any) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.sequence = append([]any(nil), values...)
	s.hasSequence = true
	s.retFunc = nil
	s.retErr = nil
	return s
}

// Throws configures an error to surface on every selection. The configured
// error instance passes through to the caller untouched. Out/ref injectors
// and callbacks still run before the error is returned.
func (s *Setup) Throws(err error) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.retErr = err
	s.retFunc = nil
	s.hasSequence = false
	return s
}

// Callback configures a side-effect callback invoked with the actual
// arguments on every selection, regardless of the return action.
func (s *Setup) Callback(fn func(args []any)) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.callback = fn
	return s
}

// OutValue configures a static value injected into the out parameter at the
// given index on every selection.
func (s *Setup) OutValue(index int, value any) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.injectors = append(s.injectors, injector{index: index, value: value})
	return s
}

// OutFunc configures an out-parameter value computed from the actual
// arguments on every selection.
func (s *Setup) OutFunc(index int, fn func(args []any) any) *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.injectors = append(s.injectors, injector{index: index, fn: fn})
	return s
}

// RefValue configures a value written back through the ref parameter at the
// given index. Ref and out parameters share the same injection mechanism.
func (s *Setup) RefValue(index int, value any) *Setup {
	return s.OutValue(index, value)
}

// Verifiable marks this setup as required-to-be-called for VerifyAll.
func (s *Setup) Verifiable() *Setup {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.verifiable = true
	return s
}

// sortedInjectors returns the injectors in parameter-index order.
// Callers must hold the handler lock.
func (s *Setup) sortedInjectors() []injector {
	if len(s.injectors) < 2 {
		return s.injectors
	}
	out := append([]injector(nil), s.injectors...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}
