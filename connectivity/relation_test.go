// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisep/connectivity"
)

// TestNewComplete_Counts checks the n·(n−1) initial count for a range of sizes.
func TestNewComplete_Counts(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 100} {
		r, err := connectivity.NewComplete(n)
		require.NoError(t, err)
		assert.Equal(t, n, r.Len())
		assert.Equal(t, n*(n-1), r.Remaining(), "n=%d", n)
		require.NoError(t, r.Verify())
	}
}

func TestNewComplete_Negative(t *testing.T) {
	_, err := connectivity.NewComplete(-1)
	require.ErrorIs(t, err, connectivity.ErrNegativeSize)
}

// TestConnected_Diagonal verifies a point is never connected to itself.
func TestConnected_Diagonal(t *testing.T) {
	r, err := connectivity.NewComplete(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c, err := r.Connected(i, j)
			require.NoError(t, err)
			assert.Equal(t, i != j, c, "(%d,%d)", i, j)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	r, err := connectivity.NewComplete(2)
	require.NoError(t, err)

	_, err = r.Connected(-1, 0)
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)
	_, err = r.Connected(0, 2)
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)
	_, err = r.Disconnect(2, 0)
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)
	_, err = r.Degree(5)
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)
	_, err = r.AnyBetween([]int{0}, []int{3})
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)
	_, err = r.DisconnectBetween([]int{-1}, []int{1})
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)

	// a rejected bulk call must not have touched anything
	assert.Equal(t, 2, r.Remaining())
}

// TestDisconnect_Idempotent verifies a second disconnect changes nothing.
func TestDisconnect_Idempotent(t *testing.T) {
	r, err := connectivity.NewComplete(4)
	require.NoError(t, err)

	removed, err := r.Disconnect(1, 3)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 10, r.Remaining())

	// symmetric
	c, _ := r.Connected(3, 1)
	assert.False(t, c)

	d1, _ := r.Degree(1)
	d3, _ := r.Degree(3)
	assert.Equal(t, 2, d1)
	assert.Equal(t, 2, d3)

	// both orientations are no-ops now
	removed, err = r.Disconnect(1, 3)
	require.NoError(t, err)
	assert.False(t, removed)
	removed, err = r.Disconnect(3, 1)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 10, r.Remaining())

	d1, _ = r.Degree(1)
	assert.Equal(t, 2, d1)

	// self pairs are never connected
	removed, err = r.Disconnect(2, 2)
	require.NoError(t, err)
	assert.False(t, removed)
	require.NoError(t, r.Verify())
}

func TestBetween(t *testing.T) {
	r, err := connectivity.NewComplete(5)
	require.NoError(t, err)

	left, right := []int{0, 1}, []int{2, 3, 4}
	live, err := r.AnyBetween(left, right)
	require.NoError(t, err)
	assert.True(t, live)

	removed, err := r.DisconnectBetween(left, right)
	require.NoError(t, err)
	assert.Equal(t, 6, removed)
	assert.Equal(t, 20-12, r.Remaining())

	live, err = r.AnyBetween(left, right)
	require.NoError(t, err)
	assert.False(t, live)
	live, err = r.AnyBetween(right, left)
	require.NoError(t, err)
	assert.False(t, live)

	// a partially overlapping cut only removes what is left
	removed, err = r.DisconnectBetween([]int{0, 1, 2}, []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 4, r.Remaining())
	require.NoError(t, r.Verify())

	// empty sides never cross
	live, err = r.AnyBetween(nil, right)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestReset(t *testing.T) {
	r, err := connectivity.NewComplete(3)
	require.NoError(t, err)
	_, err = r.DisconnectBetween([]int{0}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, r.Remaining())

	r.Reset()
	assert.Equal(t, 6, r.Remaining())
	d0, _ := r.Degree(0)
	assert.Equal(t, 2, d0)
	require.NoError(t, r.Verify())
}

func TestVerify_DetectsCorruption(t *testing.T) {
	t.Run("Asymmetric", func(t *testing.T) {
		r, _ := connectivity.NewComplete(3)
		connectivity.CorruptCell_TestOnly(r, 0, 1)
		require.ErrorIs(t, r.Verify(), connectivity.ErrIntegrity)
	})
	t.Run("Diagonal", func(t *testing.T) {
		r, _ := connectivity.NewComplete(3)
		connectivity.CorruptCell_TestOnly(r, 2, 2)
		require.ErrorIs(t, r.Verify(), connectivity.ErrIntegrity)
	})
	t.Run("Counter", func(t *testing.T) {
		r, _ := connectivity.NewComplete(3)
		connectivity.CorruptRemaining_TestOnly(r, -2)
		require.ErrorIs(t, r.Verify(), connectivity.ErrIntegrity)
	})
}

func TestString(t *testing.T) {
	r, _ := connectivity.NewComplete(2)
	assert.Equal(t, "0: [0 1]\n1: [1 0]\n", r.String())
}
