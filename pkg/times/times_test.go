package times

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		times Times
		count int
		want  bool
	}{
		{name: "once with one call", times: Once(), count: 1, want: true},
		{name: "once with no calls", times: Once(), count: 0, want: false},
		{name: "once with two calls", times: Once(), count: 2, want: false},
		{name: "never with no calls", times: Never(), count: 0, want: true},
		{name: "never with one call", times: Never(), count: 1, want: false},
		{name: "exactly matching", times: Exactly(3), count: 3, want: true},
		{name: "exactly off by one", times: Exactly(3), count: 4, want: false},
		{name: "exactly zero", times: Exactly(0), count: 0, want: true},
		{name: "at least met", times: AtLeast(2), count: 2, want: true},
		{name: "at least exceeded", times: AtLeast(2), count: 5, want: true},
		{name: "at least unmet", times: AtLeast(2), count: 1, want: false},
		{name: "at least once met", times: AtLeastOnce(), count: 1, want: true},
		{name: "at least once unmet", times: AtLeastOnce(), count: 0, want: false},
		{name: "at most met", times: AtMost(2), count: 2, want: true},
		{name: "at most under", times: AtMost(2), count: 0, want: true},
		{name: "at most exceeded", times: AtMost(2), count: 3, want: false},
		{name: "at most once met", times: AtMostOnce(), count: 1, want: true},
		{name: "at most once exceeded", times: AtMostOnce(), count: 2, want: false},
		{name: "between lower bound", times: Between(2, 4), count: 2, want: true},
		{name: "between upper bound", times: Between(2, 4), count: 4, want: true},
		{name: "between below", times: Between(2, 4), count: 1, want: false},
		{name: "between above", times: Between(2, 4), count: 5, want: false},
		{name: "between degenerate", times: Between(3, 3), count: 3, want: true},
		{name: "zero value acts as at least once", times: Times{}, count: 1, want: true},
		{name: "zero value rejects zero calls", times: Times{}, count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.times.Validate(tt.count))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "exactly once", Once().String())
	assert.Equal(t, "never", Never().String())
	assert.Equal(t, "exactly 3 times", Exactly(3).String())
	assert.Equal(t, "at least once", AtLeast(1).String())
	assert.Equal(t, "at least 2 times", AtLeast(2).String())
	assert.Equal(t, "at most once", AtMost(1).String())
	assert.Equal(t, "at most 4 times", AtMost(4).String())
	assert.Equal(t, "between 2 and 4 times", Between(2, 4).String())
	assert.Equal(t, "at least once", Times{}.String())
}
