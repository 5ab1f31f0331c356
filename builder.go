package enumdex

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey marks builder errors caused by a domain value with no entry.
	ErrMissingKey = errors.New("enumdex: missing key")

	// ErrDuplicateKey marks builder errors caused by a key supplied twice.
	ErrDuplicateKey = errors.New("enumdex: duplicate key")
)

// Entry pairs a key with its value for FromEntries.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// E constructs an Entry.
func E[K, V any](k K, v V) Entry[K, V] { return Entry[K, V]{Key: k, Value: v} }

// FromEntries builds a map from an exhaustive list of entries, given in any
// order. Every domain value must appear exactly once. On violation the
// returned error reports all missing and all duplicated keys, and no map is
// produced; there is no partially filled result.
func FromEntries[K, V any](dom Domain[K], entries ...Entry[K, V]) (Map[K, V], error) {
	m := New[K, V](dom)
	seen := make([]bool, dom.Len())
	var errs []error
	for _, e := range entries {
		i := dom.Index(e.Key)
		if seen[i] {
			errs = append(errs, fmt.Errorf("%w: %v", ErrDuplicateKey, e.Key))
			continue
		}
		seen[i] = true
		m.slots[i] = e.Value
	}
	for i, ok := range seen {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %v", ErrMissingKey, dom.Value(i)))
		}
	}
	if len(errs) > 0 {
		return Map[K, V]{}, errors.Join(errs...)
	}
	return m, nil
}

// MustFromEntries is FromEntries that panics on error. It is meant for
// package-level variable initialization, so an incomplete table still fails
// before any real work runs.
func MustFromEntries[K, V any](dom Domain[K], entries ...Entry[K, V]) Map[K, V] {
	m, err := FromEntries(dom, entries...)
	if err != nil {
		panic(err)
	}
	return m
}
