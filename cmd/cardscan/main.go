package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/slabworks/cardscan/internal/common"
	repo "github.com/slabworks/cardscan/internal/repository"
)

var (
	// Version is set at build time
	Version = "dev"

	verbose bool

	rootCmd = &cobra.Command{
		Use:   "cardscan",
		Short: "Batch pairing and extraction pipeline for scanned trading cards",
		Long: `cardscan drives the card scanning pipeline from the command line:
pair a batch's uploads into front/back card pairs, queue extraction jobs,
inspect job progress and export the results.

All commands talk directly to the database configured via DB_URL.`,
		Version: Version,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// app bundles the repositories every subcommand needs.
type app struct {
	cfg    *common.Config
	logger *slog.Logger

	batches repo.BatchRepository
	uploads repo.UploadRepository
	pairs   repo.PairRepository
	jobs    repo.JobRepository
	events  repo.JobEventRepository

	close func()
}

func openApp(ctx context.Context) (*app, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DB_URL env var is required")
	}

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		batches: repo.NewBatchRepository(entc, logger),
		uploads: repo.NewUploadRepository(entc, logger),
		pairs:   repo.NewPairRepository(entc, logger),
		jobs:    repo.NewJobRepository(entc, logger),
		events:  repo.NewJobEventRepository(entc, logger),
		close:   func() { repo.Close(entc, pool, logger) },
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
