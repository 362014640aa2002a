package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoolSize(t *testing.T) {
	for _, s := range []string{"small", "medium", "large"} {
		pool, err := ParsePoolSize(s)
		require.NoError(t, err)
		assert.Equal(t, PoolSize(s), pool)
	}

	_, err := ParsePoolSize("gigantic")
	assert.Error(t, err)
	_, err = ParsePoolSize("")
	assert.Error(t, err)
	_, err = ParsePoolSize("Small") // case sensitive
	assert.Error(t, err)
}

func TestDenominations(t *testing.T) {
	assert.Equal(t, uint64(100_000_000), PoolSmall.Denomination())
	assert.Equal(t, uint64(1_000_000_000), PoolMedium.Denomination())
	assert.Equal(t, uint64(10_000_000_000), PoolLarge.Denomination())
	assert.Equal(t, uint64(0), PoolSize("bogus").Denomination())
}

func TestHopState_IsTerminal(t *testing.T) {
	assert.True(t, HopStateComplete.IsTerminal())
	assert.True(t, HopStateFailed.IsTerminal())
	assert.False(t, HopStateIdle.IsTerminal())
	assert.False(t, HopStateWithdrawing.IsTerminal())
	assert.False(t, HopStateFunded.IsTerminal())
	assert.False(t, HopStateForwarding.IsTerminal())
}
