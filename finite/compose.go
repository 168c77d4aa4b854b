package finite

import (
	"fmt"
	"math"
)

// Maybe is an optional K: either no value, or exactly one.
type Maybe[K any] struct {
	Value K
	Valid bool
}

// Some returns a Maybe holding v.
func Some[K any](v K) Maybe[K] { return Maybe[K]{Value: v, Valid: true} }

// None returns the empty Maybe.
func None[K any]() Maybe[K] { return Maybe[K]{} }

// MaybeOf lifts a descriptor for K to one for Maybe[K]. None gets index 0
// and Some(v) gets 1 + e.ToIndex(v), so the domain grows by exactly one.
func MaybeOf[K any](e Enum[K]) Enum[Maybe[K]] { return maybeEnum[K]{elem: e} }

type maybeEnum[K any] struct {
	elem Enum[K]
}

func (m maybeEnum[K]) Inhabitants() int { return 1 + m.elem.Inhabitants() }

func (m maybeEnum[K]) ToIndex(v Maybe[K]) int {
	if !v.Valid {
		return 0
	}
	return 1 + m.elem.ToIndex(v.Value)
}

func (m maybeEnum[K]) FromIndex(i int) (Maybe[K], bool) {
	if i == 0 {
		return Maybe[K]{}, true
	}
	v, ok := m.elem.FromIndex(i - 1)
	if !ok {
		return Maybe[K]{}, false
	}
	return Some(v), true
}

// Pair is an ordered pair of independently enumerable components.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf combines two descriptors into one for Pair[A, B] using mixed-radix
// indexing with the first component least significant:
//
//	index = ToIndex(Second) * a.Inhabitants() + ToIndex(First)
//
// The product of the two domain sizes must fit in an int.
func PairOf[A, B any](a Enum[A], b Enum[B]) (Enum[Pair[A, B]], error) {
	na, nb := a.Inhabitants(), b.Inhabitants()
	if na > 0 && nb > math.MaxInt/na {
		return nil, fmt.Errorf("finite: pair domain %d x %d overflows int", na, nb)
	}
	return pairEnum[A, B]{a: a, b: b, n: na * nb}, nil
}

type pairEnum[A, B any] struct {
	a Enum[A]
	b Enum[B]
	n int
}

func (p pairEnum[A, B]) Inhabitants() int { return p.n }

func (p pairEnum[A, B]) ToIndex(v Pair[A, B]) int {
	return p.b.ToIndex(v.Second)*p.a.Inhabitants() + p.a.ToIndex(v.First)
}

func (p pairEnum[A, B]) FromIndex(i int) (Pair[A, B], bool) {
	if i < 0 || i >= p.n {
		var zero Pair[A, B]
		return zero, false
	}
	na := p.a.Inhabitants()
	return Pair[A, B]{
		First:  MustFromIndex(p.a, i%na),
		Second: MustFromIndex(p.b, i/na),
	}, true
}
