package double

import (
	"log/slog"
	"sync"
	"time"

	"github.com/getmockd/double/internal/id"
	"github.com/getmockd/double/pkg/chaos"
	"github.com/getmockd/double/pkg/logging"
	"github.com/getmockd/double/pkg/match"
)

// Behavior controls how a mock treats calls that match no setup.
type Behavior int

const (
	// Loose returns zero values for unmatched calls. This is the default.
	Loose Behavior = iota
	// Strict surfaces a StrictViolationError for unmatched calls.
	Strict
)

func (b Behavior) String() string {
	if b == Strict {
		return "strict"
	}
	return "loose"
}

// Handler holds the full state of one mock: its behavior mode, the ordered
// setup registry, and the invocation ledger. A single coarse lock guards all
// state; the engine targets single-threaded test execution, and the lock only
// makes concurrent use of one mock within a test safe, not fast.
type Handler struct {
	id       string
	name     string
	behavior Behavior
	log      *slog.Logger
	chaos    *chaos.Injector

	mu     sync.Mutex
	setups []*Setup
	ledger []*Invocation
}

// Option configures a Handler at construction.
type Option func(*Handler)

// WithBehavior selects the behavior mode. Loose is the default.
func WithBehavior(b Behavior) Option {
	return func(h *Handler) { h.behavior = b }
}

// WithName sets a human-readable mock name used in error messages.
func WithName(name string) Option {
	return func(h *Handler) { h.name = name }
}

// WithLogger sets the logger for dispatch tracing. Defaults to a no-op.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithChaos wraps dispatch in a fault-injection decorator.
func WithChaos(inj *chaos.Injector) Option {
	return func(h *Handler) { h.chaos = inj }
}

// New creates a mock handler.
func New(opts ...Option) *Handler {
	h := &Handler{
		id:  id.UUID(),
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.name == "" {
		h.name = "mock-" + id.Short()
	}
	return h
}

// ID returns the handler's unique identifier.
func (h *Handler) ID() string { return h.id }

// Name returns the handler's display name.
func (h *Handler) Name() string { return h.name }

// Behavior returns the configured behavior mode.
func (h *Handler) Behavior() Behavior { return h.behavior }

// On registers a setup for the signature. Arguments may be plain values
// (matched by equality) or match.Matcher values. Setups are consulted in
// registration order; the first whose matchers all accept the actual
// arguments wins.
func (h *Handler) On(signature string, args ...any) *Setup {
	s := &Setup{
		h:         h,
		signature: signature,
		matchers:  match.Normalize(args...),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setups = append(h.setups, s)
	return s
}

// OnGet registers a setup for a property getter under the synthetic
// get_<Name> signature.
func (h *Handler) OnGet(property string) *Setup {
	return h.On("get_" + property)
}

// OnSet registers a setup for a property setter under the synthetic
// set_<Name> signature. The value argument participates in matching exactly
// like a method argument.
func (h *Handler) OnSet(property string, value any) *Setup {
	return h.On("set_"+property, value)
}

// Dispatch routes one call through the engine: the invocation is recorded,
// the chaos decorator (if any) gets its draw, and the first matching setup's
// action produces the Result. With no matching setup the Result is empty
// under Loose behavior and carries a StrictViolationError under Strict.
func (h *Handler) Dispatch(signature string, args ...any) *Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	inv := &Invocation{
		Signature: signature,
		Args:      append([]any(nil), args...),
		at:        time.Now(),
	}
	// Recording happens unconditionally, before any failure path: a strict
	// miss and an injected fault must still be visible to verification.
	h.ledger = append(h.ledger, inv)

	if h.chaos != nil {
		d := h.chaos.Decide()
		if d.Delay > 0 {
			time.Sleep(d.Delay)
		}
		if d.Err != nil {
			h.log.Debug("chaos fault injected", "mock", h.name, "signature", signature, "err", d.Err)
			return &Result{Err: d.Err}
		}
	}

	var selected *Setup
	for _, s := range h.setups {
		if s.signature == signature && match.Args(s.matchers, args) {
			selected = s
			break
		}
	}

	if selected == nil {
		if h.behavior == Strict {
			err := &StrictViolationError{Mock: h.name, Signature: signature, Args: inv.Args}
			h.log.Debug("strict violation", "mock", h.name, "signature", signature)
			return &Result{Err: err}
		}
		h.log.Debug("dispatch unmatched", "mock", h.name, "signature", signature)
		return &Result{}
	}

	seqIndex := selected.callCount
	selected.callCount++

	res := &Result{}
	for _, inj := range selected.sortedInjectors() {
		if res.Out == nil {
			res.Out = make(map[int]any)
		}
		if inj.fn != nil {
			res.Out[inj.index] = inj.fn(args)
		} else {
			res.Out[inj.index] = inj.value
		}
	}
	if selected.callback != nil {
		selected.callback(args)
	}

	switch {
	case selected.retErr != nil:
		res.Err = selected.retErr
	case selected.hasSequence:
		if n := len(selected.sequence); n > 0 {
			if seqIndex >= n {
				seqIndex = n - 1
			}
			res.Value = selected.sequence[seqIndex]
		}
	case selected.retFunc != nil:
		res.Value = selected.retFunc(args)
	default:
		res.Value = selected.retValue
	}

	h.log.Debug("dispatch matched", "mock", h.name, "signature", signature, "setup", match.Describe(signature, selected.matchers))
	return res
}

// Get dispatches a property getter under the synthetic get_<Name> signature.
func (h *Handler) Get(property string) *Result {
	return h.Dispatch("get_" + property)
}

// Set dispatches a property setter under the synthetic set_<Name> signature.
func (h *Handler) Set(property string, value any) *Result {
	return h.Dispatch("set_"+property, value)
}

// Calls returns the recorded invocations for a signature, in call order.
func (h *Handler) Calls(signature string) []*Invocation {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*Invocation
	for _, inv := range h.ledger {
		if inv.Signature == signature {
			out = append(out, inv)
		}
	}
	return out
}

// TotalCalls returns the number of recorded invocations.
func (h *Handler) TotalCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.ledger)
}

// Reset wipes the full mock state: all setups and the invocation ledger.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setups = nil
	h.ledger = nil
}

// ResetCalls clears the invocation ledger only. Setups survive, and so do
// their selection counts: VerifyAll still treats a setup triggered before
// the reset as satisfied.
func (h *Handler) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ledger = nil
}
