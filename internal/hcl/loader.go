package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/enumdex/internal/config"
	"github.com/vk/enumdex/internal/ctxlog"
	"github.com/vk/enumdex/internal/schema"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses an enumgen.hcl manifest and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing manifest.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var manifest schema.Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &manifest); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if manifest.Generate == nil {
		return nil, fmt.Errorf("manifest %s has no generate block", path)
	}

	model, err := translateGenerate(manifest.Generate)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	// Relative dirs are anchored at the manifest, not the process cwd.
	if !filepath.IsAbs(model.Dir) {
		model.Dir = filepath.Join(filepath.Dir(path), model.Dir)
	}
	logger.Debug("Manifest translated into unified model.",
		"dir", model.Dir, "output", model.Output, "domains", len(model.Domains))
	return model, nil
}
