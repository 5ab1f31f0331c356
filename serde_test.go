package enumdex_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vk/enumdex"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("worked example", func(t *testing.T) {
		m, err := enumdex.FromEntries[status](statusDomain{},
			enumdex.E[status](idle{}, 10),
			enumdex.E[status](busy{Urgent: false}, 20),
			enumdex.E[status](busy{Urgent: true}, 30),
		)
		require.NoError(t, err)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `[10,20,30]`, string(data))
	})

	t.Run("zero map marshals as empty sequence", func(t *testing.T) {
		var m enumdex.Map[status, int]
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		src := enumdex.NewWith[flavor](flavorDomain{}, func(k flavor) int {
			return flavorDomain{}.Index(k) * 3
		})
		data, err := json.Marshal(src)
		require.NoError(t, err)

		dst := enumdex.New[flavor, int](flavorDomain{})
		require.NoError(t, json.Unmarshal(data, &dst))
		assert.True(t, enumdex.Equal(src, dst))
	})

	t.Run("length mismatch", func(t *testing.T) {
		m := enumdex.New[status, int](statusDomain{})
		err := json.Unmarshal([]byte(`[1,2]`), &m)
		require.Error(t, err)
		assert.ErrorIs(t, err, enumdex.ErrLength)
		// The receiver is untouched on failure.
		assert.Equal(t, []int{0, 0, 0}, m.Slice())

		err = json.Unmarshal([]byte(`[1,2,3,4]`), &m)
		assert.ErrorIs(t, err, enumdex.ErrLength)
	})

	t.Run("no domain", func(t *testing.T) {
		var m enumdex.Map[status, int]
		err := json.Unmarshal([]byte(`[1,2,3]`), &m)
		assert.ErrorIs(t, err, enumdex.ErrNoDomain)
	})
}

func TestMsgpack(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		src := enumdex.NewWith[status](statusDomain{}, func(k status) string {
			if (statusDomain{}).Index(k) == 0 {
				return "idle"
			}
			return "busy"
		})
		data, err := msgpack.Marshal(src)
		require.NoError(t, err)

		dst := enumdex.New[status, string](statusDomain{})
		require.NoError(t, msgpack.Unmarshal(data, &dst))
		assert.True(t, enumdex.Equal(src, dst))
	})

	t.Run("length mismatch", func(t *testing.T) {
		two := enumdex.NewWith[bool](enumdex.Bool, func(k bool) int { return 1 })
		data, err := msgpack.Marshal(two)
		require.NoError(t, err)

		three := enumdex.New[status, int](statusDomain{})
		err = msgpack.Unmarshal(data, &three)
		require.Error(t, err)
		assert.ErrorIs(t, err, enumdex.ErrLength)
	})

	t.Run("no domain", func(t *testing.T) {
		var m enumdex.Map[bool, int]
		err := msgpack.Unmarshal([]byte{0x90}, &m)
		assert.ErrorIs(t, err, enumdex.ErrNoDomain)
	})
}
