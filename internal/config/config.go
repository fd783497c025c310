package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendRedis = "redis"
	BackendFile  = "file"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	RedisURL       string
	StorageBackend string
	SaveDir        string
	WorldFile      string // empty means the embedded world

	SessionTTL       time.Duration
	SessionCacheSize int
	DiceSeed         uint64 // 0 means seed from crypto/rand
}

// Load reads configuration from the environment, after loading a .env
// file when one exists.
func Load() (*Config, error) {
	// A missing .env is fine; real env vars may be set.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendRedis)),
		SaveDir:        getEnv("SAVE_DIR", "./saves"),
		WorldFile:      getEnv("WORLD_FILE", ""),
	}

	switch cfg.StorageBackend {
	case BackendRedis, BackendFile:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value %q", cfg.StorageBackend)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL value: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL value %s", ttl)
	}
	cfg.SessionTTL = ttl

	size, err := strconv.Atoi(getEnv("SESSION_CACHE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SIZE value: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SIZE value %d", size)
	}
	cfg.SessionCacheSize = size

	seed, err := strconv.ParseUint(getEnv("DICE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DICE_SEED value: %w", err)
	}
	cfg.DiceSeed = seed

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
