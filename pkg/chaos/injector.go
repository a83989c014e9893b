package chaos

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrFaultInjected is the injected error when no error pool is configured.
var ErrFaultInjected = errors.New("chaos: fault injected")

// Config configures fault injection for a mock.
type Config struct {
	// Enabled turns injection on. A disabled injector never triggers but
	// still counts invocations.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// FailureRate is the per-dispatch trigger probability, clamped to
	// [0.0, 1.0].
	FailureRate float64 `json:"failureRate" yaml:"failureRate"`

	// Errors is the pool of errors to inject; one is drawn uniformly per
	// triggered fault. Empty pool falls back to ErrFaultInjected.
	Errors []error `json:"-" yaml:"-"`

	// Delay is a fixed sleep applied on every triggered fault. Zero means
	// no delay.
	Delay time.Duration `json:"delay,omitempty" yaml:"delay,omitempty"`

	// Seed seeds the pseudo-random source. Zero selects a time-based seed;
	// any other value makes the decision sequence reproducible.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Clamp forces rate values into their valid ranges.
func (c *Config) Clamp() {
	if c.FailureRate < 0 {
		c.FailureRate = 0
	}
	if c.FailureRate > 1 {
		c.FailureRate = 1
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
}

// Stats accumulates injection statistics per mock.
type Stats struct {
	TotalInvocations int64 `json:"totalInvocations"`
	Triggered        int64 `json:"triggered"`
}

// Decision is the outcome of one chaos draw.
type Decision struct {
	// Err is the injected error, nil when the draw did not trigger.
	Err error

	// Delay is the fixed delay to apply before failing, zero when the draw
	// did not trigger.
	Delay time.Duration
}

// Triggered reports whether the draw injected a fault.
func (d Decision) Triggered() bool {
	return d.Err != nil || d.Delay > 0
}

// Injector draws chaos decisions from a seeded pseudo-random source.
type Injector struct {
	config *Config

	mu    sync.Mutex
	rng   *rand.Rand
	stats Stats
}

// NewInjector creates a chaos injector from configuration.
func NewInjector(config *Config) (*Injector, error) {
	if config == nil {
		return nil, errors.New("chaos config is required")
	}
	config.Clamp()

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Injector{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// IsEnabled returns whether fault injection is enabled.
func (i *Injector) IsEnabled() bool {
	return i.config != nil && i.config.Enabled
}

// Decide performs one chaos draw. Every call counts as an invocation; a
// triggered draw additionally yields an error from the pool and the
// configured delay.
func (i *Injector) Decide() Decision {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.stats.TotalInvocations++

	if !i.IsEnabled() || i.config.FailureRate <= 0 {
		return Decision{}
	}
	if i.rng.Float64() >= i.config.FailureRate {
		return Decision{}
	}

	i.stats.Triggered++

	err := ErrFaultInjected
	if n := len(i.config.Errors); n > 0 {
		err = i.config.Errors[i.rng.Intn(n)]
	}
	return Decision{Err: err, Delay: i.config.Delay}
}

// Stats returns a snapshot of the accumulated statistics.
func (i *Injector) Stats() Stats {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stats
}

// ResetStats zeroes the accumulated statistics.
func (i *Injector) ResetStats() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stats = Stats{}
}
