package enumdex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/enumdex"
)

// checkBijection verifies both directions of the domain contract and that
// every index is produced exactly once.
func checkBijection[K any](t *testing.T, dom enumdex.Domain[K]) {
	t.Helper()
	seen := make([]bool, dom.Len())
	for i := 0; i < dom.Len(); i++ {
		v := dom.Value(i)
		got := dom.Index(v)
		require.Equal(t, i, got, "Index(Value(%d))", i)
		require.False(t, seen[got], "index %d produced twice", got)
		seen[got] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "index %d never produced", i)
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, enumdex.Bool.Len())
	assert.Equal(t, 0, enumdex.Bool.Index(false))
	assert.Equal(t, 1, enumdex.Bool.Index(true))
	checkBijection(t, enumdex.Bool)

	assert.Panics(t, func() { enumdex.Bool.Value(2) })
	assert.Panics(t, func() { enumdex.Bool.Value(-1) })
}

func TestByte(t *testing.T) {
	t.Parallel()

	require.Equal(t, 256, enumdex.Byte.Len())
	checkBijection(t, enumdex.Byte)
	assert.Equal(t, 255, enumdex.Byte.Index(uint8(255)))
	assert.Panics(t, func() { enumdex.Byte.Value(256) })
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	t.Run("identity encoding", func(t *testing.T) {
		require.Equal(t, 3, noteDomain.Len())
		assert.Equal(t, 0, noteDomain.Index(noteDo))
		assert.Equal(t, 2, noteDomain.Index(noteMi))
		assert.Equal(t, noteRe, noteDomain.Value(1))
		checkBijection(t, noteDomain)
	})

	t.Run("out of domain value panics", func(t *testing.T) {
		assert.Panics(t, func() { noteDomain.Index(note(3)) })
		assert.Panics(t, func() { noteDomain.Index(note(-1)) })
	})

	t.Run("empty domain", func(t *testing.T) {
		empty := enumdex.Ordinal[note](0)
		assert.Equal(t, 0, empty.Len())
		assert.Panics(t, func() { empty.Value(0) })
	})

	t.Run("negative cardinality panics", func(t *testing.T) {
		assert.Panics(t, func() { enumdex.Ordinal[int](-1) })
	})
}

func TestPairOf(t *testing.T) {
	t.Parallel()

	dom := enumdex.PairOf(noteDomain, enumdex.Bool)
	require.Equal(t, 6, dom.Len())
	checkBijection(t, dom)

	// The second component varies fastest.
	assert.Equal(t, 0, dom.Index(enumdex.Pair[note, bool]{A: noteDo, B: false}))
	assert.Equal(t, 1, dom.Index(enumdex.Pair[note, bool]{A: noteDo, B: true}))
	assert.Equal(t, 2, dom.Index(enumdex.Pair[note, bool]{A: noteRe, B: false}))
	assert.Equal(t, enumdex.Pair[note, bool]{A: noteMi, B: true}, dom.Value(5))
}

func TestTripleOf(t *testing.T) {
	t.Parallel()

	dom := enumdex.TripleOf(enumdex.Bool, noteDomain, enumdex.Bool)
	require.Equal(t, 12, dom.Len())
	checkBijection(t, dom)

	// First component slowest, last fastest.
	assert.Equal(t, 0, dom.Index(enumdex.Triple[bool, note, bool]{}))
	assert.Equal(t, 1, dom.Index(enumdex.Triple[bool, note, bool]{C: true}))
	assert.Equal(t, 2, dom.Index(enumdex.Triple[bool, note, bool]{B: noteRe}))
	assert.Equal(t, 6, dom.Index(enumdex.Triple[bool, note, bool]{A: true}))
}

func TestSliceOf(t *testing.T) {
	t.Parallel()

	dom := enumdex.SliceOf(noteDomain, 2)
	require.Equal(t, 9, dom.Len())
	checkBijection(t, dom)

	// The first element is the slowest-varying digit.
	assert.Equal(t, 1, dom.Index([]note{noteDo, noteRe}))
	assert.Equal(t, 3, dom.Index([]note{noteRe, noteDo}))
	assert.Equal(t, []note{noteMi, noteMi}, dom.Value(8))

	t.Run("wrong length panics", func(t *testing.T) {
		assert.Panics(t, func() { dom.Index([]note{noteDo}) })
		assert.Panics(t, func() { dom.Index(nil) })
	})

	t.Run("zero elements", func(t *testing.T) {
		unit := enumdex.SliceOf(enumdex.Bool, 0)
		require.Equal(t, 1, unit.Len())
		assert.Equal(t, 0, unit.Index([]bool{}))
	})
}

func TestSumDomains(t *testing.T) {
	t.Parallel()

	t.Run("worked example", func(t *testing.T) {
		var dom statusDomain
		require.Equal(t, 3, dom.Len())
		assert.Equal(t, 0, dom.Index(idle{}))
		assert.Equal(t, 1, dom.Index(busy{Urgent: false}))
		assert.Equal(t, 2, dom.Index(busy{Urgent: true}))
		assert.Equal(t, status(idle{}), dom.Value(0))
		assert.Equal(t, status(busy{Urgent: false}), dom.Value(1))
		assert.Equal(t, status(busy{Urgent: true}), dom.Value(2))
		checkBijection[status](t, dom)
	})

	t.Run("mixed unit and product variants", func(t *testing.T) {
		var dom flavorDomain
		require.Equal(t, 7, dom.Len())
		assert.Equal(t, 0, dom.Index(plain{}))
		// Base offset 1, note weighted by |bool| = 2.
		assert.Equal(t, 1, dom.Index(mixed{N: noteDo, B: false}))
		assert.Equal(t, 2, dom.Index(mixed{N: noteDo, B: true}))
		assert.Equal(t, 3, dom.Index(mixed{N: noteRe, B: false}))
		assert.Equal(t, 6, dom.Index(mixed{N: noteMi, B: true}))
		checkBijection[flavor](t, dom)
	})

	t.Run("nested products compose", func(t *testing.T) {
		dom := enumdex.PairOf[status, flavor](statusDomain{}, flavorDomain{})
		require.Equal(t, 21, dom.Len())
		checkBijection(t, dom)
	})
}
