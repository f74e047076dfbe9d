package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultGridSize        = 10
	defaultCleanupInterval = time.Minute * 20
	defaultGracePeriod     = time.Minute * 2
	defaultMaxGameAge      = time.Minute * 30
)

type Config struct {
	Stage           string
	Port            int
	DatabaseUrl     string
	GridSize        int
	CleanupInterval time.Duration
	GracePeriod     time.Duration
	MaxGameAge      time.Duration
}

// Load reads the environment. Outside of prod the variables
// come from envFile first.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, err
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:       getenv("STAGE"),
		DatabaseUrl: getenv("DATABASE_URL"),
	}
	if cfg.Stage != "dev" && cfg.Stage != "prod" {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %q", cfg.Stage)
	}

	port, err := strconv.Atoi(getenv("PORT"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	if cfg.GridSize, err = intOr(getenv("GRID_SIZE"), defaultGridSize); err != nil {
		return Config{}, fmt.Errorf("invalid GRID_SIZE: %w", err)
	}
	if cfg.CleanupInterval, err = durationOr(getenv("SESSION_CLEANUP_INTERVAL"), defaultCleanupInterval); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_CLEANUP_INTERVAL: %w", err)
	}
	if cfg.GracePeriod, err = durationOr(getenv("RECONNECT_GRACE_PERIOD"), defaultGracePeriod); err != nil {
		return Config{}, fmt.Errorf("invalid RECONNECT_GRACE_PERIOD: %w", err)
	}
	if cfg.MaxGameAge, err = durationOr(getenv("MAX_GAME_AGE"), defaultMaxGameAge); err != nil {
		return Config{}, fmt.Errorf("invalid MAX_GAME_AGE: %w", err)
	}

	return cfg, nil
}

func intOr(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func durationOr(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}
