package main

import (
	"database/sql"
	"net/http"
	"subway-path-service/internal/adapters/repositories"
	"subway-path-service/internal/api"
	"subway-path-service/internal/config"
	"subway-path-service/internal/platform/db"
	"subway-path-service/internal/platform/obs"
	"subway-path-service/internal/ports"
	"time"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires a concrete catalog (Postgres or in-memory seed) behind the ports and starts the HTTP server.
func main() {
	cfg := config.Load()
	obs.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	policy, err := config.LoadFarePolicy(cfg.FarePolicyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("fare policy")
	}

	catalog, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog")
	}
	defer closeCatalog()

	router := api.NewRouter(catalog, policy)

	log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// Without DATABASE_URL the seed file is served from memory, which is enough for local runs.
func openCatalog(cfg config.Config) (ports.Catalog, func(), error) {
	if cfg.DatabaseURL == "" {
		seed, err := repositories.ReadSeed(cfg.SeedPath)
		if err != nil {
			return nil, nil, err
		}
		catalog, err := repositories.NewMemoryCatalog(seed)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("seed", cfg.SeedPath).Msg("using in-memory catalog")
		return catalog, func() {}, nil
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msg("using postgres catalog")
	return repositories.NewPostgresCatalog(conn), func() { closeDB(conn) }, nil
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}
