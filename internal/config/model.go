package config

// Model is the unified, format-agnostic description of one generation run.
type Model struct {
	// Dir is the package directory to scan.
	Dir string

	// Output is the generated file name, relative to Dir.
	Output string

	// External lists type names whose domains were generated in a previous
	// run and may be referenced by fields without being regenerated.
	External []string

	// Domains selects the types to generate. Empty means every
	// recognizable domain type in the package.
	Domains []*DomainRequest
}

// DomainRequest selects a single type for generation.
type DomainRequest struct {
	Type       string
	Descriptor string // optional override of the exported descriptor name
}
