// Package config defines the format-agnostic model of a generation run,
// along with the Loader interface for reading it from a manifest file.
//
// The `config.Model` is the single source of truth for the scan and emit
// packages. The concrete HCL implementation lives in the `hcl` package.
package config
