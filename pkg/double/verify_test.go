package double

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/double/pkg/match"
	"github.com/getmockd/double/pkg/times"
)

func TestVerifyCountLaws(t *testing.T) {
	const n = 3
	h := New()
	for _i := 0; _i < n; _i++ {
		h.Dispatch("Process", 42)
	}

	assert.NoError(t, h.Verify("Process", times.Exactly(n), 42))
	assert.Error(t, h.Verify("Process", times.Exactly(n+1), 42))
	assert.NoError(t, h.Verify("Process", times.AtLeast(n), 42))
	assert.Error(t, h.Verify("Process", times.AtMost(n-1), 42))
	assert.NoError(t, h.Verify("Process", times.Between(n, n), 42))
}

func TestVerifyUsesMatchers(t *testing.T) {
	h := New()
	h.Dispatch("Process", 5)
	h.Dispatch("Process", 50)
	h.Dispatch("Process", "not a number")

	assert.NoError(t, h.Verify("Process", times.Exactly(3), match.Any()))
	assert.NoError(t, h.Verify("Process", times.Exactly(1), match.InRange(1, 10, match.Inclusive)))
	assert.NoError(t, h.Verify("Process", times.Once(), 50))
	assert.NoError(t, h.Verify("Process", times.Never(), 7))
}

func TestVerifyDistinguishesSignatures(t *testing.T) {
	h := New()
	h.Dispatch("A", 1)
	h.Dispatch("B", 1)

	assert.NoError(t, h.Verify("A", times.Once(), 1))
	assert.NoError(t, h.Verify("B", times.Once(), 1))
	assert.NoError(t, h.Verify("C", times.Never(), 1))
}

func TestVerifyFailureIsDescriptive(t *testing.T) {
	h := New(WithName("userService"))
	h.Dispatch("GetUser", 42)
	h.Dispatch("GetUser", 42)

	err := h.Verify("GetUser", times.Once(), 42)

	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Count)
	assert.Contains(t, err.Error(), "userService")
	assert.Contains(t, err.Error(), "GetUser(Eq(42))")
	assert.Contains(t, err.Error(), "exactly once")
	assert.Contains(t, err.Error(), "2 calls")
}

func TestVerifyAll(t *testing.T) {
	h := New()
	h.On("Required", match.Any()).Returns("x").Verifiable()
	h.On("Optional", match.Any()).Returns("y")

	err := h.VerifyAll()
	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Pattern, "Required")

	h.Dispatch("Required", 1)
	assert.NoError(t, h.VerifyAll())
}

func TestVerifyAllReportsEveryUnfulfilledSetup(t *testing.T) {
	h := New()
	h.On("A").Verifiable()
	h.On("B").Verifiable()

	err := h.VerifyAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A()")
	assert.Contains(t, err.Error(), "B()")
}

func TestVerifyNoOtherCalls(t *testing.T) {
	h := New()
	h.Dispatch("A", 1)
	h.Dispatch("B", 2)

	require.NoError(t, h.Verify("A", times.Once(), 1))

	err := h.VerifyNoOtherCalls()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "B(2)")
	assert.NotContains(t, err.Error(), "A(1)")

	require.NoError(t, h.Verify("B", times.Once(), 2))
	assert.NoError(t, h.VerifyNoOtherCalls())
}

func TestVerifyNoOtherCallsAfterWildcardVerify(t *testing.T) {
	h := New()
	h.Dispatch("Process", 1)
	h.Dispatch("Process", 2)

	// A wildcard Verify covers every matching invocation.
	require.NoError(t, h.Verify("Process", times.Exactly(2), match.Any()))
	assert.NoError(t, h.VerifyNoOtherCalls())
}

func TestVerifyNoOtherCallsEmptyLedger(t *testing.T) {
	h := New()
	assert.NoError(t, h.VerifyNoOtherCalls())
}

func TestStrictMissIsStillVerifiable(t *testing.T) {
	h := New(WithBehavior(Strict))

	res := h.Dispatch("Process", 42)
	require.Error(t, res.Err)

	// The caller caught the strict error and continues: the attempted call
	// is in the ledger.
	assert.NoError(t, h.Verify("Process", times.Once(), 42))
	assert.Error(t, h.Verify("Process", times.Never(), 42))
}
