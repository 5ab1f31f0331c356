package enumdex

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack encodes the map compactly as a MessagePack array of its
// values in index order.
func (m Map[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(m.slots)); err != nil {
		return err
	}
	for i := range m.slots {
		if err := enc.Encode(m.slots[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack decodes a MessagePack array of exactly Len values. The map
// must have been constructed with New or NewWith; on any error the receiver
// is untouched.
func (m *Map[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	if m.dom == nil {
		return ErrNoDomain
	}
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != m.dom.Len() {
		return fmt.Errorf("%w: got %d values, want %d", ErrLength, n, m.dom.Len())
	}
	vals := make([]V, n)
	for i := range vals {
		if err := dec.Decode(&vals[i]); err != nil {
			return err
		}
	}
	copy(m.slots, vals)
	return nil
}

var (
	_ msgpack.CustomEncoder = Map[bool, int]{}
	_ msgpack.CustomDecoder = (*Map[bool, int])(nil)
)
