package enumdex

import "fmt"

// Domain describes a finite key domain: a total bijection between the values
// of K and the dense index range [0, Len).
//
// Implementations must guarantee that Index is injective and bounded by Len,
// and that Value is its exact inverse over [0, Len). Both panic only on
// inputs outside the domain, which is a programmer error; no valid input can
// fail.
type Domain[K any] interface {
	// Len returns the domain cardinality. It is constant for a given domain.
	Len() int

	// Index maps a domain value to its dense index in [0, Len).
	Index(k K) int

	// Value maps a dense index back to the unique domain value it encodes.
	Value(i int) K
}

// Integer constrains the underlying types accepted by Ordinal.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bool indexes the two boolean values, false before true.
var Bool Domain[bool] = boolDomain{}

type boolDomain struct{}

func (boolDomain) Len() int { return 2 }

func (boolDomain) Index(k bool) int {
	if k {
		return 1
	}
	return 0
}

func (boolDomain) Value(i int) bool {
	switch i {
	case 0:
		return false
	case 1:
		return true
	}
	panic(outOfRange(i, 2))
}

// Byte indexes all 256 uint8 values by identity.
var Byte Domain[uint8] = byteDomain{}

type byteDomain struct{}

func (byteDomain) Len() int { return 256 }

func (byteDomain) Index(k uint8) int { return int(k) }

func (byteDomain) Value(i int) uint8 {
	if i < 0 || i > 255 {
		panic(outOfRange(i, 256))
	}
	return uint8(i)
}

// Ordinal returns a domain over the first n values of an integer-backed
// type, encoded by identity. Generated code uses it for iota const blocks.
// n may be zero, producing an empty domain.
func Ordinal[K Integer](n int) Domain[K] {
	if n < 0 {
		panic("enumdex: negative domain cardinality")
	}
	return ordinalDomain[K]{n: n}
}

type ordinalDomain[K Integer] struct {
	n int
}

func (d ordinalDomain[K]) Len() int { return d.n }

func (d ordinalDomain[K]) Index(k K) int {
	i := int(k)
	if i < 0 || i >= d.n {
		panic(fmt.Sprintf("enumdex: value %v outside domain of length %d", k, d.n))
	}
	return i
}

func (d ordinalDomain[K]) Value(i int) K {
	if i < 0 || i >= d.n {
		panic(outOfRange(i, d.n))
	}
	return K(i)
}

// Pair is the key type of a two-component product domain.
type Pair[A, B any] struct {
	A A
	B B
}

// PairOf combines two domains into a product domain over Pair keys. The
// second component varies fastest, matching the field order rule used by
// generated code.
func PairOf[A, B any](a Domain[A], b Domain[B]) Domain[Pair[A, B]] {
	return pairDomain[A, B]{a: a, b: b}
}

type pairDomain[A, B any] struct {
	a Domain[A]
	b Domain[B]
}

func (d pairDomain[A, B]) Len() int { return d.a.Len() * d.b.Len() }

func (d pairDomain[A, B]) Index(k Pair[A, B]) int {
	return d.a.Index(k.A)*d.b.Len() + d.b.Index(k.B)
}

func (d pairDomain[A, B]) Value(i int) Pair[A, B] {
	if i < 0 || i >= d.Len() {
		panic(outOfRange(i, d.Len()))
	}
	return Pair[A, B]{
		A: d.a.Value(i / d.b.Len()),
		B: d.b.Value(i % d.b.Len()),
	}
}

// Triple is the key type of a three-component product domain.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// TripleOf combines three domains into a product domain over Triple keys.
// The last component varies fastest, the first slowest.
func TripleOf[A, B, C any](a Domain[A], b Domain[B], c Domain[C]) Domain[Triple[A, B, C]] {
	return tripleDomain[A, B, C]{a: a, b: b, c: c}
}

type tripleDomain[A, B, C any] struct {
	a Domain[A]
	b Domain[B]
	c Domain[C]
}

func (d tripleDomain[A, B, C]) Len() int { return d.a.Len() * d.b.Len() * d.c.Len() }

func (d tripleDomain[A, B, C]) Index(k Triple[A, B, C]) int {
	return (d.a.Index(k.A)*d.b.Len()+d.b.Index(k.B))*d.c.Len() + d.c.Index(k.C)
}

func (d tripleDomain[A, B, C]) Value(i int) Triple[A, B, C] {
	if i < 0 || i >= d.Len() {
		panic(outOfRange(i, d.Len()))
	}
	c := d.c.Value(i % d.c.Len())
	i /= d.c.Len()
	return Triple[A, B, C]{
		A: d.a.Value(i / d.b.Len()),
		B: d.b.Value(i % d.b.Len()),
		C: c,
	}
}

// SliceOf returns a domain over slices holding exactly k elements of elem,
// with cardinality |elem|^k. The first element is the slowest-varying digit.
// Index panics on a slice whose length differs from k; such a value lies
// outside the domain.
func SliceOf[E any](elem Domain[E], k int) Domain[[]E] {
	if k < 0 {
		panic("enumdex: negative slice domain length")
	}
	n := 1
	for range k {
		n *= elem.Len()
	}
	return sliceDomain[E]{elem: elem, k: k, n: n}
}

type sliceDomain[E any] struct {
	elem Domain[E]
	k    int
	n    int
}

func (d sliceDomain[E]) Len() int { return d.n }

func (d sliceDomain[E]) Index(k []E) int {
	if len(k) != d.k {
		panic(fmt.Sprintf("enumdex: slice key has length %d, domain requires %d", len(k), d.k))
	}
	i := 0
	for _, e := range k {
		i = i*d.elem.Len() + d.elem.Index(e)
	}
	return i
}

func (d sliceDomain[E]) Value(i int) []E {
	if i < 0 || i >= d.n {
		panic(outOfRange(i, d.n))
	}
	out := make([]E, d.k)
	for j := d.k - 1; j >= 0; j-- {
		out[j] = d.elem.Value(i % d.elem.Len())
		i /= d.elem.Len()
	}
	return out
}

func outOfRange(i, n int) string {
	return fmt.Sprintf("enumdex: index %d out of range for domain of length %d", i, n)
}
