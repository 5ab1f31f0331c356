package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/enumdex/internal/config"
	"github.com/vk/enumdex/internal/schema"
)

// translateGenerate converts the HCL-specific generate block into the
// agnostic model, applying defaults for omitted attributes.
func translateGenerate(g *schema.GenerateBlock) (*config.Model, error) {
	model := &config.Model{
		Dir:    g.Dir,
		Output: g.Output,
	}
	if model.Dir == "" {
		model.Dir = "."
	}
	if model.Output == "" {
		model.Output = "enumdex_domains.go"
	}

	external, err := externalNames(g)
	if err != nil {
		return nil, err
	}
	model.External = external

	seen := make(map[string]struct{}, len(g.Domains))
	for _, d := range g.Domains {
		if _, dup := seen[d.Type]; dup {
			return nil, fmt.Errorf("domain %q selected twice", d.Type)
		}
		seen[d.Type] = struct{}{}
		model.Domains = append(model.Domains, &config.DomainRequest{
			Type:       d.Type,
			Descriptor: d.Descriptor,
		})
	}
	return model, nil
}

// externalNames evaluates the optional `external` attribute, which must be
// a list of type name strings.
func externalNames(g *schema.GenerateBlock) ([]string, error) {
	if g.External == nil {
		return nil, nil
	}
	val, diags := g.External.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate external: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("external must be a list of type names, got %s", val.Type().FriendlyName())
	}
	var names []string
	for it := val.ElementIterator(); it.Next(); {
		_, el := it.Element()
		if el.Type() != cty.String {
			return nil, fmt.Errorf("external entries must be strings, got %s", el.Type().FriendlyName())
		}
		names = append(names, el.AsString())
	}
	return names, nil
}
