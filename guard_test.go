package localize

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGuardIdentity verifies each guard carries a unique identifier and
// the attribute name it restores.
func TestGuardIdentity(t *testing.T) {
	t.Parallel()

	attr := Own(1, WithName("bar"))
	g1 := attr.Localize(2)
	g2 := attr.Localize(3)

	assert.Equal(t, "bar", g1.Attr())
	assert.NotEqual(t, uuid.Nil, g1.ID())
	assert.NotEqual(t, g1.ID(), g2.ID())

	g2.Release()
	g1.Release()
}

// TestGuardReleasedStates verifies the Active -> Released transition is
// one way and observable.
func TestGuardReleasedStates(t *testing.T) {
	t.Parallel()

	attr := Own("v0")
	g := attr.Localize("v1")
	require.False(t, g.Released())

	g.Release()
	assert.True(t, g.Released())
	assert.Equal(t, "v0", attr.Get())

	g.Release()
	assert.True(t, g.Released())
	assert.Equal(t, "v0", attr.Get())
}

// TestNilGuard verifies nil guards behave as released, inert tokens.
func TestNilGuard(t *testing.T) {
	t.Parallel()

	var g *Guard
	assert.True(t, g.Released())
	assert.NotPanics(t, func() { g.Release() })
}

// TestGuardDepthInvariant verifies stack depth always equals the number
// of live guards.
func TestGuardDepthInvariant(t *testing.T) {
	t.Parallel()

	attr := Own(0)
	require.Equal(t, 0, attr.Depth())

	guards := []*Guard{attr.Localize(1), attr.Localize(2), attr.Localize(3)}
	require.Equal(t, 3, attr.Depth())

	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Release()
		assert.Equal(t, i, attr.Depth())
	}
}

// TestContractErrorContext verifies the panic value carries attribute
// context and unwraps to the sentinel.
func TestContractErrorContext(t *testing.T) {
	t.Parallel()

	err := contractViolation("bar", 2, ErrReleaseOrder)
	assert.True(t, errors.Is(err, ErrReleaseOrder))
	assert.Contains(t, err.Error(), "attr=bar")
	assert.Contains(t, err.Error(), "depth=2")

	unnamed := contractViolation("", 0, ErrEmptyStack)
	assert.Contains(t, unnamed.Error(), "<unnamed>")

	var nilErr *ContractError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}
