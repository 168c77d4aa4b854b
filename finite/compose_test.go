package finite_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhaustive-map/finite"
)

func TestMaybeOfLaws(t *testing.T) {
	e := finite.MaybeOf(finite.Bool())
	checkLaws(t, e, 3)

	// None first, then the Some values in element order.
	assert.Equal(t, 0, e.ToIndex(finite.None[bool]()))
	assert.Equal(t, 1, e.ToIndex(finite.Some(false)))
	assert.Equal(t, 2, e.ToIndex(finite.Some(true)))
}

func TestMaybeOfNested(t *testing.T) {
	e := finite.MaybeOf(finite.MaybeOf(finite.Bool()))
	checkLaws(t, e, 4)
}

func TestPairOfLaws(t *testing.T) {
	inner, err := finite.IntRange(0, 3)
	require.NoError(t, err)

	e, err := finite.PairOf(finite.Bool(), inner)
	require.NoError(t, err)
	checkLaws(t, e, 6)

	// First component is least significant.
	assert.Equal(t, finite.Pair[bool, int]{First: false, Second: 0}, finite.MustFromIndex(e, 0))
	assert.Equal(t, finite.Pair[bool, int]{First: true, Second: 0}, finite.MustFromIndex(e, 1))
	assert.Equal(t, finite.Pair[bool, int]{First: false, Second: 1}, finite.MustFromIndex(e, 2))
	assert.Equal(t, finite.Pair[bool, int]{First: true, Second: 2}, finite.MustFromIndex(e, 5))
}

func TestPairOfUninhabitedComponent(t *testing.T) {
	empty, err := finite.IntRange(0, 0)
	require.NoError(t, err)

	e, err := finite.PairOf(empty, finite.Bool())
	require.NoError(t, err)
	checkLaws(t, e, 0)
}

func TestPairOfOverflow(t *testing.T) {
	huge, err := finite.IntRange(0, math.MaxInt)
	require.NoError(t, err)

	_, err = finite.PairOf(huge, huge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")
}
