package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	ballotledger "votingsystem/contexts/election-management/ballot-ledger"
	electionregistry "votingsystem/contexts/election-management/election-registry"
	accesscontrol "votingsystem/contexts/identity-access/access-control"
	identitydirectory "votingsystem/contexts/identity-access/identity-directory"
	"votingsystem/internal/app/seed"
	"votingsystem/internal/platform/config"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

// App holds the wired contexts. Callers go through Access; the owner modules
// are exposed for read-side inspection and seeding.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Directory identitydirectory.Module
	Registry  electionregistry.Module
	Ledger    ballotledger.Module
	Access    accesscontrol.Module
}

// Build wires the four contexts over in-memory stores and applies the seed
// when enabled.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{Config: cfg, Logger: logger}

	app.Directory = identitydirectory.NewInMemoryModule(logger)
	app.Registry = electionregistry.NewInMemoryModule(candidateDirectoryBridge{directory: &app.Directory}, logger)
	app.Ledger = ballotledger.NewInMemoryModule(
		electionDirectoryBridge{registry: &app.Registry},
		voterDirectoryBridge{directory: &app.Directory},
		logger,
	)
	app.Access = accesscontrol.NewInMemoryModule(
		accessDirectoryBridge{directory: &app.Directory},
		accessRegistryBridge{registry: &app.Registry},
		accessLedgerBridge{ledger: &app.Ledger},
		cfg.SessionTTL,
		logger,
	)

	if cfg.SeedEnabled {
		if err := app.applySeed(ctx); err != nil {
			return nil, err
		}
	}

	logger.Info("app built",
		"event", "bootstrap_app_built",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"seeded", cfg.SeedEnabled,
	)
	return app, nil
}

func (a *App) applySeed(ctx context.Context) error {
	var (
		doc seed.Document
		err error
	)
	if path := strings.TrimSpace(a.Config.SeedFile); path != "" {
		doc, err = seed.LoadFile(path)
	} else {
		doc, err = seed.Baseline()
	}
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, a.SeedTargets(), doc, a.Logger)
	return err
}

func (a *App) SeedTargets() seed.Targets {
	return seed.Targets{
		Directory: &a.Directory,
		Registry:  &a.Registry,
		Ledger:    &a.Ledger,
	}
}

// Close releases process resources. State is in memory, so only the logger
// gets a final record.
func (a *App) Close() error {
	if a.Logger != nil {
		a.Logger.Info("app closed",
			"event", "bootstrap_app_closed",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return nil
}
