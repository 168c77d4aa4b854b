// Package exhaustive provides Map, a total mapping from every inhabitant of
// a finite key type to a value.
//
// A Map is backed by a dense slice of exactly Inhabitants slots, addressed by
// converting the key through its finite.Enum descriptor. There is no concept
// of a missing key: the map is constructed total and stays total. No internal
// locking is performed; a Map is safe to share between goroutines read-only,
// or for writes partitioned over disjoint keys, but concurrent writes to the
// same slot must be synchronized by the caller.
package exhaustive

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"exhaustive-map/finite"
)

// Map is a fixed-size total mapping from K to V. Its length always equals
// the number of inhabitants of K; it is never resized and never partially
// populated. Keys are not stored: they are reconstructed from their index
// on demand.
type Map[K, V any] struct {
	enum  finite.Enum[K]
	slots []V
}

// FromFunc builds a map by applying f to every key. f is invoked exactly
// once per key, in index order.
func FromFunc[K, V any](e finite.Enum[K], f func(K) V) *Map[K, V] {
	slots := make([]V, 0, e.Inhabitants())
	for k := range finite.All(e) {
		slots = append(slots, f(k))
	}
	return &Map[K, V]{enum: e, slots: slots}
}

// TryFromFunc builds a map by applying f to every key in index order,
// stopping at the first error. Construction either fully succeeds or fails
// as a whole.
func TryFromFunc[K, V any](e finite.Enum[K], f func(K) (V, error)) (*Map[K, V], error) {
	slots := make([]V, 0, e.Inhabitants())
	for k := range finite.All(e) {
		v, err := f(k)
		if err != nil {
			return nil, err
		}
		slots = append(slots, v)
	}
	return &Map[K, V]{enum: e, slots: slots}, nil
}

// FromIndexFunc builds a map by applying f to every index in [0, Len()).
func FromIndexFunc[K, V any](e finite.Enum[K], f func(int) V) *Map[K, V] {
	slots := make([]V, e.Inhabitants())
	for i := range slots {
		slots[i] = f(i)
	}
	return &Map[K, V]{enum: e, slots: slots}
}

// FromSlice builds a map from an existing value sequence, slot i keeping
// values[i]. The slice is copied. A length mismatch is a construction error.
func FromSlice[K, V any](e finite.Enum[K], values []V) (*Map[K, V], error) {
	if len(values) != e.Inhabitants() {
		return nil, fmt.Errorf("exhaustive: got %d values for a key domain of %d inhabitants",
			len(values), e.Inhabitants())
	}
	return &Map[K, V]{enum: e, slots: slices.Clone(values)}, nil
}

// NewZero builds a map with every slot set to the zero value of V.
func NewZero[K, V any](e finite.Enum[K]) *Map[K, V] {
	return &Map[K, V]{enum: e, slots: make([]V, e.Inhabitants())}
}

// Enum returns the key descriptor the map was built with.
func (m *Map[K, V]) Enum() finite.Enum[K] { return m.enum }

// Len returns the number of slots, always equal to the inhabitant count of K.
func (m *Map[K, V]) Len() int { return len(m.slots) }

// IsEmpty reports whether the map has no slots, which happens only when K
// itself is uninhabited.
func (m *Map[K, V]) IsEmpty() bool { return len(m.slots) == 0 }

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) V { return m.slots[m.enum.ToIndex(k)] }

// Set stores v for k.
func (m *Map[K, V]) Set(k K, v V) { m.slots[m.enum.ToIndex(k)] = v }

// Ptr returns a pointer to the slot for k, valid until the map is discarded.
func (m *Map[K, V]) Ptr(k K) *V { return &m.slots[m.enum.ToIndex(k)] }

// Replace stores v for k and returns the previously stored value.
func (m *Map[K, V]) Replace(k K, v V) V {
	p := m.Ptr(k)
	old := *p
	*p = v
	return old
}

// Take replaces the value for k with the zero value of V and returns the
// previously stored value.
func (m *Map[K, V]) Take(k K) V {
	var zero V
	return m.Replace(k, zero)
}

// Swap exchanges the values stored for a and b in constant time, leaving
// every other slot untouched. Swapping a key with itself is a no-op.
func (m *Map[K, V]) Swap(a, b K) {
	i, j := m.enum.ToIndex(a), m.enum.ToIndex(b)
	if i == j {
		return
	}
	m.slots[i], m.slots[j] = m.slots[j], m.slots[i]
}

// All returns a lazy sequence of (key, value) pairs in ascending index
// order, covering every key exactly once.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, v := range m.slots {
			if !yield(finite.MustFromIndex(m.enum, i), v) {
				return
			}
		}
	}
}

// Keys returns a lazy sequence of all keys in index order.
func (m *Map[K, V]) Keys() iter.Seq[K] { return finite.All(m.enum) }

// Values returns a lazy sequence of all values in key index order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.slots {
			if !yield(v) {
				return
			}
		}
	}
}

// UpdateValues calls f for every key in index order with a pointer to its
// slot, allowing in-place value updates. Keys and length cannot change.
func (m *Map[K, V]) UpdateValues(f func(K, *V)) {
	for i := range m.slots {
		f(finite.MustFromIndex(m.enum, i), &m.slots[i])
	}
}

// Clone returns a map with a copied backing sequence.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{enum: m.enum, slots: slices.Clone(m.slots)}
}

// String formats the map like a built-in map literal, in key index order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for i, v := range m.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", finite.MustFromIndex(m.enum, i), v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// MapValues builds a new map over the same key domain with each slot
// recomputed by f from the corresponding (key, value) pair.
func MapValues[K, V, U any](m *Map[K, V], f func(K, V) U) *Map[K, U] {
	out := make([]U, len(m.slots))
	for i, v := range m.slots {
		out[i] = f(finite.MustFromIndex(m.enum, i), v)
	}
	return &Map[K, U]{enum: m.enum, slots: out}
}

// Equal reports whether two maps hold equal values slot by slot. It mirrors
// equality of the backing sequences; the key descriptors are assumed to
// describe the same domain.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return slices.Equal(a.slots, b.slots)
}

// EqualFunc is Equal with a custom value comparison.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(V, V) bool) bool {
	return slices.EqualFunc(a.slots, b.slots, eq)
}

// Compare orders two maps lexicographically over their backing sequences,
// mirroring the ordering of the sequences themselves.
func Compare[K any, V cmp.Ordered](a, b *Map[K, V]) int {
	return slices.Compare(a.slots, b.slots)
}

// ToGoMap copies the map into a built-in map.
func ToGoMap[K comparable, V any](m *Map[K, V]) map[K]V {
	out := make(map[K]V, len(m.slots))
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// FromGoMap builds a total map from a built-in map that must contain every
// inhabitant of K exactly once. Missing or surplus keys are a construction
// error.
func FromGoMap[K comparable, V any](e finite.Enum[K], src map[K]V) (*Map[K, V], error) {
	if len(src) != e.Inhabitants() {
		return nil, fmt.Errorf("exhaustive: got %d entries for a key domain of %d inhabitants",
			len(src), e.Inhabitants())
	}
	return TryFromFunc(e, func(k K) (V, error) {
		v, ok := src[k]
		if !ok {
			var zero V
			return zero, fmt.Errorf("exhaustive: missing key %v", k)
		}
		return v, nil
	})
}
