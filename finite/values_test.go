package finite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhaustive-map/finite"
)

func TestOfValuesLaws(t *testing.T) {
	e, err := finite.OfValues("north", "east", "south", "west")
	require.NoError(t, err)
	checkLaws(t, e, 4)

	// Index is list position.
	assert.Equal(t, 0, e.ToIndex("north"))
	assert.Equal(t, 3, e.ToIndex("west"))
	assert.Equal(t, []string{"north", "east", "south", "west"}, finite.Collect(e))
}

func TestOfValuesEmpty(t *testing.T) {
	e, err := finite.OfValues[string]()
	require.NoError(t, err)
	checkLaws(t, e, 0)
}

func TestOfValuesRejectsDuplicates(t *testing.T) {
	_, err := finite.OfValues("a", "b", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate value")
}

func TestOfValuesUnknownValue(t *testing.T) {
	e, err := finite.OfValues("a", "b")
	require.NoError(t, err)

	assert.Equal(t, -1, e.ToIndex("zzz"))
}
