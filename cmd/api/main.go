package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/handlers"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"storage_backend", cfg.StorageBackend)

	w, err := loadWorld(cfg.WorldFile)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load world", "file", cfg.WorldFile)
		os.Exit(1)
	}
	log.Info("World loaded",
		"name", w.Name(),
		"locations", len(w.Locations()),
		"items", len(w.Items()))

	seed := cfg.DiceSeed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			logger.WithError(log, err).Error("Failed to seed dice")
			os.Exit(1)
		}
	} else {
		log.Warn("Using fixed dice seed", "seed", seed)
	}
	// One engine serves every request, so the generator must be locked.
	src := dice.NewLocked(dice.NewRand(seed))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	engine := state.NewEngine(w, src, log).WithMetrics(m)

	store, err := storage.New(cfg, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to create storage")
		os.Exit(1)
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if rs, ok := store.(*storage.RedisStorage); ok {
		err = rs.WaitForConnection(storageCtx, 10, 3*time.Second)
	} else {
		err = store.Ping(storageCtx)
	}
	if err != nil {
		logger.WithError(log, err).Error("Failed to connect to storage")
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	cache := services.NewSessionCache(cfg.SessionCacheSize, cfg.SessionTTL)
	games := services.NewGameService(engine, store, cache, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.NewRouter(games, store, m, reg, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(log, err).Error("Server failed to start")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(log, err).Error("Server forced to shutdown")
	}

	if err := store.Close(); err != nil {
		logger.WithError(log, err).Error("Error closing storage connection")
	}

	log.Info("Server exited")
}

func loadWorld(path string) (*world.World, error) {
	if path == "" {
		return world.Default(), nil
	}
	return world.LoadFile(path)
}
