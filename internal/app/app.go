package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/enumdex/internal/config"
	"github.com/vk/enumdex/internal/ctxlog"
	"github.com/vk/enumdex/internal/emit"
	"github.com/vk/enumdex/internal/fsutil"
	"github.com/vk/enumdex/internal/registry"
	"github.com/vk/enumdex/internal/scan"
)

// manifestName is the per-package manifest file the generator discovers
// when no explicit -config is given.
const manifestName = "enumgen.hcl"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Dir        string
	Output     string
	ConfigPath string
	Types      []string
	Stdout     bool
	LogFormat  string
	LogLevel   string
}

// App encapsulates the generator's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the generator application. It returns a
// fully initialized App instance with its own isolated logger.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}

// Run resolves the generation runs and executes them in order. A run that
// fails stops the whole invocation; completed runs keep their output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	models, err := a.resolveRuns(ctx)
	if err != nil {
		return err
	}
	for _, model := range models {
		if err := a.generate(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

// resolveRuns determines what to generate: an explicit manifest, every
// manifest discovered under the directory, or a single run described by
// flags when no manifest exists.
func (a *App) resolveRuns(ctx context.Context) ([]*config.Model, error) {
	if a.config.ConfigPath != "" {
		model, err := a.loader.Load(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, err
		}
		return []*config.Model{model}, nil
	}

	manifests, err := fsutil.FindFilesByExtension(a.config.Dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for manifests: %w", a.config.Dir, err)
	}
	var models []*config.Model
	for _, path := range manifests {
		if filepath.Base(path) != manifestName {
			continue
		}
		model, err := a.loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	if len(models) > 0 {
		a.logger.Debug("Manifests discovered.", "count", len(models))
		return models, nil
	}

	model := &config.Model{
		Dir:    a.config.Dir,
		Output: a.config.Output,
	}
	if model.Output == "" {
		model.Output = "enumdex_domains.go"
	}
	for _, typeName := range a.config.Types {
		model.Domains = append(model.Domains, &config.DomainRequest{Type: typeName})
	}
	return []*config.Model{model}, nil
}

// generate performs one scan-and-emit run.
func (a *App) generate(ctx context.Context, model *config.Model) error {
	reg := registry.New()
	pkg, err := scan.Scan(ctx, model, reg)
	if err != nil {
		return err
	}
	if len(pkg.Shapes) == 0 {
		return fmt.Errorf("no domain types found in %s", model.Dir)
	}

	src, err := emit.Source(ctx, pkg)
	if err != nil {
		return err
	}

	if a.config.Stdout {
		_, err := a.outW.Write(src)
		return err
	}

	outPath := filepath.Join(model.Dir, model.Output)
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	a.logger.Info("Domains generated.",
		"package", pkg.Name, "path", outPath, "types", len(pkg.Shapes))
	return nil
}
