// Package model defines the format-agnostic shape model for finite-domain
// type declarations. The `model.Package` is the single source of truth
// between the scanner, which recognizes declarations in Go source, and the
// emitter, which turns shapes into Domain implementations.
package model
