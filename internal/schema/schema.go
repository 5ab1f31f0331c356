// Package schema declares the HCL block structures of an enumgen manifest.
// Translation into the format-agnostic config model happens in the `hcl`
// package.
package schema

import "github.com/hashicorp/hcl/v2"

// Manifest is the top-level structure of an enumgen.hcl file.
type Manifest struct {
	Generate *GenerateBlock `hcl:"generate,block"`
}

// GenerateBlock represents a `generate` block: one package directory to
// scan and the domains to emit for it.
type GenerateBlock struct {
	Dir      string         `hcl:"dir,optional"`
	Output   string         `hcl:"output,optional"`
	External hcl.Expression `hcl:"external,optional"`
	Domains  []*DomainBlock `hcl:"domain,block"`
}

// DomainBlock selects one type for generation.
type DomainBlock struct {
	Type       string `hcl:"type_name,label"`
	Descriptor string `hcl:"descriptor,optional"`
}
