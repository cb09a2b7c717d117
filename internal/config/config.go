package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Runtime settings shared by the server and dbtool commands.
type Config struct {
	Port           string
	DatabaseURL    string
	SeedPath       string
	FarePolicyPath string
	LogLevel       string
	LogFormat      string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	return Config{
		Port:           Get("PORT", "8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:       Get("SEED_PATH", "data/seeds/subway.json"),
		FarePolicyPath: strings.TrimSpace(os.Getenv("FARE_POLICY_PATH")),
		LogLevel:       Get("LOG_LEVEL", "info"),
		LogFormat:      Get("LOG_FORMAT", "json"),
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
