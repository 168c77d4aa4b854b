package finite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exhaustive-map/finite"
)

func TestUnitLaws(t *testing.T) {
	checkLaws(t, finite.Unit(), 1)
}

func TestBoolLaws(t *testing.T) {
	e := finite.Bool()
	checkLaws(t, e, 2)

	assert.Equal(t, 0, e.ToIndex(false))
	assert.Equal(t, 1, e.ToIndex(true))
}

func TestUint8Laws(t *testing.T) {
	e := finite.Uint8()
	checkLaws(t, e, 256)

	// Index equals numeric value.
	assert.Equal(t, 0, e.ToIndex(0))
	assert.Equal(t, 7, e.ToIndex(7))
	assert.Equal(t, 255, e.ToIndex(255))
}

func TestUint16Laws(t *testing.T) {
	e := finite.Uint16()
	checkLaws(t, e, 1<<16)

	assert.Equal(t, 40000, e.ToIndex(40000))
}

func TestInt8Laws(t *testing.T) {
	e := finite.Int8()
	checkLaws(t, e, 256)

	// Bit-pattern order: non-negatives first, then the negatives.
	assert.Equal(t, 0, e.ToIndex(0))
	assert.Equal(t, 127, e.ToIndex(127))
	assert.Equal(t, 128, e.ToIndex(-128))
	assert.Equal(t, 255, e.ToIndex(-1))
}

func TestInt16Laws(t *testing.T) {
	e := finite.Int16()
	checkLaws(t, e, 1<<16)

	assert.Equal(t, 1<<16-1, e.ToIndex(-1))
}

func TestRuneLaws(t *testing.T) {
	e := finite.Rune()
	checkLaws(t, e, 1_112_064)

	// ASCII indices match code points.
	assert.Equal(t, 65, e.ToIndex('A'))

	// The surrogate range is skipped: the index right after U+D7FF belongs
	// to U+E000.
	r, ok := e.FromIndex(0xD800)
	assert.True(t, ok)
	assert.Equal(t, rune(0xE000), r)
	assert.Equal(t, 0xD800, e.ToIndex(0xE000))
	assert.Equal(t, 0xD7FF, e.ToIndex(0xD7FF))
}
