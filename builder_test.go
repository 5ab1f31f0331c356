package enumdex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/enumdex"
)

func TestFromEntries(t *testing.T) {
	t.Parallel()

	t.Run("exhaustive in arbitrary order", func(t *testing.T) {
		m, err := enumdex.FromEntries[status](statusDomain{},
			enumdex.E[status](busy{Urgent: true}, 30),
			enumdex.E[status](idle{}, 10),
			enumdex.E[status](busy{Urgent: false}, 20),
		)
		require.NoError(t, err)

		want := enumdex.NewWith[status](statusDomain{}, func(k status) int {
			return (statusDomain{}.Index(k) + 1) * 10
		})
		assert.True(t, enumdex.Equal(m, want))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := enumdex.FromEntries[status](statusDomain{},
			enumdex.E[status](idle{}, 10),
			enumdex.E[status](busy{Urgent: false}, 20),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, enumdex.ErrMissingKey)
		assert.Contains(t, err.Error(), "{true}")
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := enumdex.FromEntries[status](statusDomain{},
			enumdex.E[status](idle{}, 10),
			enumdex.E[status](busy{Urgent: false}, 20),
			enumdex.E[status](busy{Urgent: false}, 21),
			enumdex.E[status](busy{Urgent: true}, 30),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, enumdex.ErrDuplicateKey)
	})

	t.Run("missing and duplicate reported together", func(t *testing.T) {
		_, err := enumdex.FromEntries[status](statusDomain{},
			enumdex.E[status](idle{}, 10),
			enumdex.E[status](idle{}, 11),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, enumdex.ErrDuplicateKey)
		assert.ErrorIs(t, err, enumdex.ErrMissingKey)
	})

	t.Run("empty domain needs no entries", func(t *testing.T) {
		m, err := enumdex.FromEntries[note, int](enumdex.Ordinal[note](0))
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}

func TestMustFromEntries(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		enumdex.MustFromEntries(enumdex.Bool,
			enumdex.E(false, "no"),
			enumdex.E(true, "yes"),
		)
	})
	assert.Panics(t, func() {
		enumdex.MustFromEntries(enumdex.Bool, enumdex.E(true, "yes"))
	})
}
