package enumdex

import "iter"

// Map is a fixed-length associative container keyed by a finite domain.
// Slot i holds the value for the domain value whose index is i, so every
// lookup is a single array access and no hashing is involved.
//
// A Map is a thin header over its backing slice: copying a Map yields a view
// of the same slots, like copying a slice. The zero Map has no domain and no
// slots; construct with New or NewWith.
type Map[K, V any] struct {
	dom   Domain[K]
	slots []V
}

// New creates a map over dom with every slot set to the zero value of V.
func New[K, V any](dom Domain[K]) Map[K, V] {
	return Map[K, V]{dom: dom, slots: make([]V, dom.Len())}
}

// NewWith creates a map over dom where slot i holds gen(dom.Value(i)).
// gen is called exactly once per domain value, in ascending index order.
func NewWith[K, V any](dom Domain[K], gen func(K) V) Map[K, V] {
	m := New[K, V](dom)
	for i := range m.slots {
		m.slots[i] = gen(dom.Value(i))
	}
	return m
}

// Domain returns the map's domain descriptor.
func (m Map[K, V]) Domain() Domain[K] { return m.dom }

// Len returns the number of slots, which equals the domain cardinality.
func (m Map[K, V]) Len() int { return len(m.slots) }

// Get returns the value stored for k.
func (m Map[K, V]) Get(k K) V { return m.slots[m.dom.Index(k)] }

// Set stores v as the value for k.
func (m Map[K, V]) Set(k K, v V) { m.slots[m.dom.Index(k)] = v }

// At returns a pointer to the slot for k, for in-place mutation.
func (m Map[K, V]) At(k K) *V { return &m.slots[m.dom.Index(k)] }

// All yields (key, value) pairs in ascending index order. The sequence is
// finite and restartable.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, v := range m.slots {
			if !yield(m.dom.Value(i), v) {
				return
			}
		}
	}
}

// Keys yields every domain value in ascending index order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.slots {
			if !yield(m.dom.Value(i)) {
				return
			}
		}
	}
}

// Values yields the stored values in ascending index order.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.slots {
			if !yield(v) {
				return
			}
		}
	}
}

// Apply replaces every slot with f(key, value), in ascending index order.
func (m Map[K, V]) Apply(f func(K, V) V) {
	for i := range m.slots {
		m.slots[i] = f(m.dom.Value(i), m.slots[i])
	}
}

// Clear resets every slot to the zero value of V.
func (m Map[K, V]) Clear() {
	var zero V
	for i := range m.slots {
		m.slots[i] = zero
	}
}

// Swap exchanges the values stored for a and b.
func (m Map[K, V]) Swap(a, b K) {
	i, j := m.dom.Index(a), m.dom.Index(b)
	m.slots[i], m.slots[j] = m.slots[j], m.slots[i]
}

// Slice returns the backing slice, aliased, with slot i paired with the
// domain value of index i.
func (m Map[K, V]) Slice() []V { return m.slots }

// Transform produces a new map over the same domain where slot i holds
// f(key, value) of the source's slot i. The source is not modified.
func Transform[K, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	out := Map[K, W]{dom: m.dom, slots: make([]W, len(m.slots))}
	for i, v := range m.slots {
		out.slots[i] = f(m.dom.Value(i), v)
	}
	return out
}

// Equal reports whether two maps hold equal values slot for slot.
func Equal[K any, V comparable](a, b Map[K, V]) bool {
	if len(a.slots) != len(b.slots) {
		return false
	}
	for i := range a.slots {
		if a.slots[i] != b.slots[i] {
			return false
		}
	}
	return true
}
