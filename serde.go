package enumdex

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrLength reports a compact payload whose value count differs from the
	// domain cardinality. It is the only runtime-recoverable failure in this
	// package.
	ErrLength = errors.New("enumdex: value count does not match domain length")

	// ErrNoDomain reports an attempt to deserialize into a zero Map, which
	// carries no domain descriptor to size and key the slots.
	ErrNoDomain = errors.New("enumdex: map has no domain")
)

// MarshalJSON encodes the map compactly as a JSON array of its values in
// index order. Keys are omitted: they are fully determined by position.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	if m.slots == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.slots)
}

// UnmarshalJSON decodes a compact JSON array of exactly Len values, pairing
// the i-th element with the domain value of index i. The map must have been
// constructed with New or NewWith; on any error the receiver is untouched.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.dom == nil {
		return ErrNoDomain
	}
	var vals []V
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != m.dom.Len() {
		return fmt.Errorf("%w: got %d values, want %d", ErrLength, len(vals), m.dom.Len())
	}
	copy(m.slots, vals)
	return nil
}

var (
	_ json.Marshaler   = Map[bool, int]{}
	_ json.Unmarshaler = (*Map[bool, int])(nil)
)
