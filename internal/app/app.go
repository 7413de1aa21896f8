package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/model"
	"github.com/relforge/relforge/internal/registry"
	"github.com/relforge/relforge/internal/resolve"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: loaded declarations, the world registry, and the resolver.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	doc      *model.Document
	registry *registry.Registry
	resolver *resolve.Resolver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, the declaration
// document loaded, and the world registry built and validated. Loading
// failures are fatal startup errors and panic; the entrypoint recovers
// them into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config, loader model.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Merge all declaration paths into a single collection for the loader.
	paths := []string{appConfig.ConfigPath}
	paths = append(paths, appConfig.WorldPaths...)

	doc, err := loader.Load(ctx, paths...)
	if err != nil {
		// A failure to load declarations is a fatal startup error.
		panic(fmt.Errorf("failed to load declarations: %w", err))
	}
	logger.Debug("Declarations loaded into unified model.",
		"releases", len(doc.Releases), "world_entries", len(doc.World))

	reg := registry.New(doc.World)
	if err := reg.Validate(ctx); err != nil {
		panic(fmt.Errorf("world validation failed: %w", err))
	}
	logger.Debug("World registry validated.", "entries", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		doc:      doc,
		registry: reg,
		resolver: resolve.New(reg),
	}
}

// Registry returns the application's world registry. Primarily for tests.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
