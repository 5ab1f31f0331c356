// Package scan recognizes finite-domain type declarations in Go source and
// translates them into the shape model consumed by the emitter.
//
// Two declaration shapes are recognized. An iota enum is an integer-backed
// type with a plain iota const run; every constant is a unit variant. A sum
// type is a sealed interface with a single marker method `is<Name>()` whose
// variants are the package's struct types declaring that method, in
// declaration order; their fields must themselves be domain types.
package scan
