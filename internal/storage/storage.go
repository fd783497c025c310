package storage

import (
	"fmt"
	"log/slog"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// New builds the session store selected by cfg.StorageBackend.
func New(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return NewFileStorage(cfg.SaveDir, logger)
	case config.BackendRedis, "":
		return NewRedisStorage(cfg.RedisURL, cfg.SessionTTL, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
