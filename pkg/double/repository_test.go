package double

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/double/pkg/times"
)

func TestRepositoryNewAppliesBehavior(t *testing.T) {
	repo := NewRepository(Strict)

	h := repo.New(WithName("svc"))
	assert.Equal(t, Strict, h.Behavior())
	assert.Equal(t, "svc", h.Name())

	loose := repo.New(WithBehavior(Loose))
	assert.Equal(t, Loose, loose.Behavior(), "explicit option overrides repository default")

	require.Len(t, repo.Handlers(), 2)
}

func TestRepositoryFanOut(t *testing.T) {
	repo := NewRepository(Loose)
	a := repo.New(WithName("a"))
	b := repo.New(WithName("b"))

	a.On("Get").Returns(1).Verifiable()
	b.On("Get").Returns(2).Verifiable()

	err := repo.VerifyAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock a")
	assert.Contains(t, err.Error(), "mock b")

	a.Dispatch("Get")
	b.Dispatch("Get")
	assert.NoError(t, repo.VerifyAll())

	err = repo.VerifyNoOtherCalls()
	require.Error(t, err, "neither ledger entry was verified yet")

	require.NoError(t, a.Verify("Get", times.Once()))
	require.NoError(t, b.Verify("Get", times.Once()))
	assert.NoError(t, repo.VerifyNoOtherCalls())

	repo.ResetCalls()
	assert.Zero(t, a.TotalCalls())
	assert.Zero(t, b.TotalCalls())
	assert.NoError(t, repo.VerifyAll(), "setup call counts survive ResetCalls")

	repo.Reset()
	assert.Nil(t, a.Dispatch("Get").Value, "setups are gone after Reset")
}

func TestRepositoryAddExisting(t *testing.T) {
	repo := NewRepository(Loose)
	h := New(WithName("external"))
	repo.Add(h)

	h.Dispatch("Ping")
	repo.ResetCalls()
	assert.Zero(t, h.TotalCalls())
}
