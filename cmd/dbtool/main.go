package main

import (
	"context"
	"database/sql"
	"fmt"
	"subway-path-service/internal/adapters/repositories"
	"subway-path-service/internal/config"
	"subway-path-service/internal/platform/db"
	"subway-path-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	obs.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed")
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	log.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Msg("schema ready")

	seed, err := repositories.ReadSeed(seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Info().
		Str("seed", seedPath).
		Int("stations", len(seed.Stations)).
		Int("lines", len(seed.Lines)).
		Int("sections", len(seed.Sections)).
		Msg("seeding catalog")
	if err := repositories.SeedCatalog(ctx, conn, seed); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Msg("seeding complete")

	return nil
}
