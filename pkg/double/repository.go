package double

import (
	"errors"
	"sync"
)

// Repository aggregates mock handlers so a test can reset or verify all of
// them at once. It fans operations out to each handler and has no matching
// logic of its own.
type Repository struct {
	mu       sync.Mutex
	behavior Behavior
	handlers []*Handler
}

// NewRepository creates a repository. The behavior is applied to handlers
// created through Repository.New.
func NewRepository(behavior Behavior) *Repository {
	return &Repository{behavior: behavior}
}

// New creates a handler with the repository's behavior and registers it.
// Additional options are applied after the behavior and may override it.
func (r *Repository) New(opts ...Option) *Handler {
	h := New(append([]Option{WithBehavior(r.behavior)}, opts...)...)
	r.Add(h)
	return h
}

// Add registers existing handlers with the repository.
func (r *Repository) Add(handlers ...*Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, handlers...)
}

// Handlers returns the registered handlers in registration order.
func (r *Repository) Handlers() []*Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Handler(nil), r.handlers...)
}

// Reset wipes setups and ledgers on every registered handler.
func (r *Repository) Reset() {
	for _, h := range r.Handlers() {
		h.Reset()
	}
}

// ResetCalls clears the ledger on every registered handler.
func (r *Repository) ResetCalls() {
	for _, h := range r.Handlers() {
		h.ResetCalls()
	}
}

// VerifyAll runs VerifyAll on every registered handler and joins failures.
func (r *Repository) VerifyAll() error {
	var errs []error
	for _, h := range r.Handlers() {
		if err := h.VerifyAll(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// VerifyNoOtherCalls runs VerifyNoOtherCalls on every registered handler and
// joins failures.
func (r *Repository) VerifyNoOtherCalls() error {
	var errs []error
	for _, h := range r.Handlers() {
		if err := h.VerifyNoOtherCalls(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
