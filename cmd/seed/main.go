// Command seed creates the database schema and loads the curated catalog of
// destinations and landmarks. Safe to re-run.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/escapegenie/api/internal/config"
	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/seed"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.New(database.Config{URL: cfg.Database.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := seed.Apply(ctx, db.Pool()); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed complete",
		slog.Int("destinations", len(seed.Destinations)),
		slog.Int("landmarks", len(seed.Landmarks)),
	)
}
