package finite

import (
	"fmt"
	"slices"
)

// OfValues builds a descriptor from an explicit, ordered list of values.
// The value at position p gets index p. Duplicate values make the bijection
// impossible and are rejected.
//
// This is the hand-written alternative to finite-gen for enumerations the
// generator cannot see, such as values from another package.
func OfValues[K comparable](vs ...K) (Enum[K], error) {
	e := valuesEnum[K]{
		values:  slices.Clone(vs),
		indexes: make(map[K]int, len(vs)),
	}
	for i, v := range vs {
		if prev, dup := e.indexes[v]; dup {
			return nil, fmt.Errorf("finite: duplicate value %v at positions %d and %d", v, prev, i)
		}
		e.indexes[v] = i
	}
	return e, nil
}

// Lookups in both directions are O(1): a slice for index to value, a map for
// value to index.
type valuesEnum[K comparable] struct {
	values  []K
	indexes map[K]int
}

func (e valuesEnum[K]) Inhabitants() int { return len(e.values) }

func (e valuesEnum[K]) ToIndex(v K) int {
	i, ok := e.indexes[v]
	if !ok {
		return -1
	}
	return i
}

func (e valuesEnum[K]) FromIndex(i int) (K, bool) {
	if i < 0 || i >= len(e.values) {
		var zero K
		return zero, false
	}
	return e.values[i], true
}
