// Package enumdex provides fixed-size maps keyed by finite domains.
//
// A Domain describes a bijection between the values of a key type and the
// dense index range [0, Len). Map stores one value slot per domain value in
// a flat array, so lookups compile down to a single bounds-free array access
// and serialization can omit keys entirely.
//
// Domain implementations for user-defined types are normally produced by the
// enumgen tool (see cmd/enumgen), which derives the mixed-radix encoding
// from the type declarations. Primitive domains (Bool, Byte, Ordinal) and
// combinators (PairOf, TripleOf, SliceOf) are provided here.
package enumdex
