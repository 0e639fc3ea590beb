package main

import (
	"context"
	"flag"
	"log"
	"os"

	"votingsystem/internal/app/bootstrap"
	"votingsystem/internal/app/walkthrough"
	"votingsystem/internal/platform/config"
	"votingsystem/internal/platform/logging"
)

// Election process entrypoint.
// Data flow:
// 1) Load config (.env, environment, flags).
// 2) Build app wiring and apply the seed.
// 3) Run the scripted session and exit non-zero if it diverges.
func main() {
	fs := flag.NewFlagSet("election", flag.ExitOnError)
	seedFile := fs.String("seed-file", "", "Seed document overriding the embedded baseline (prefer SEED_FILE)")
	noSeed := fs.Bool("no-seed", false, "Start without the seed dataset")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if *seedFile != "" {
		cfg.SeedFile = *seedFile
	}
	if *noSeed {
		cfg.SeedEnabled = false
	}

	logger := logging.New(cfg, os.Stdout).With("process", "election")
	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("shutdown close failed: %v", err)
		}
	}()

	if _, err := walkthrough.Run(ctx, app, logger); err != nil {
		logger.Error("walkthrough failed",
			"event", "election_walkthrough_failed",
			"error", err.Error(),
		)
		os.Exit(1)
	}
}
