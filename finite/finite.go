// Package finite defines the Enum capability: a bijection between the
// inhabitants of a type K and the contiguous integer range [0, Inhabitants()).
//
// An Enum descriptor is the single source of truth for how many distinct
// values K has and in which order they are enumerated. Descriptors for
// primitive-like types (Bool, Uint8, Rune, ...) live in this package;
// descriptors for application enum types are generated by finite-gen
// (see cmd/finite-gen) or built explicitly with OfValues.
package finite

import (
	"fmt"
	"iter"
)

// Enum describes a finite key domain for K.
//
// Implementations must uphold the round-trip laws:
//
//	FromIndex(ToIndex(v)) == (v, true)   for every valid v
//	ToIndex(k) == i with FromIndex(i) == (k, true)   for every i in [0, Inhabitants())
//
// Inhabitants must be a fixed non-negative number, independent of any value.
// ToIndex must be total and injective over the valid values of K; FromIndex
// must report ok exactly for indices in [0, Inhabitants()).
type Enum[K any] interface {
	// Inhabitants returns the total number of distinct values of K.
	Inhabitants() int

	// ToIndex returns the index of v in [0, Inhabitants()).
	ToIndex(v K) int

	// FromIndex returns the unique value with the given index,
	// or ok=false if the index is out of range.
	FromIndex(i int) (K, bool)
}

// All returns a lazy sequence yielding every inhabitant of K exactly once,
// in index order. The sequence is restartable: each range starts over at
// index zero.
func All[K any](e Enum[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		n := e.Inhabitants()
		for i := 0; i < n; i++ {
			if !yield(MustFromIndex(e, i)) {
				return
			}
		}
	}
}

// Collect returns all inhabitants of K as a slice, in index order.
func Collect[K any](e Enum[K]) []K {
	out := make([]K, 0, e.Inhabitants())
	for k := range All(e) {
		out = append(out, k)
	}
	return out
}

// MustFromIndex is FromIndex for indices the caller knows to be in range.
// It panics if the descriptor breaks its own contract.
func MustFromIndex[K any](e Enum[K], i int) K {
	k, ok := e.FromIndex(i)
	if !ok {
		panic(fmt.Sprintf("finite: FromIndex(%d) returned no value for a domain of %d inhabitants", i, e.Inhabitants()))
	}
	return k
}
