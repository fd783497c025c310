package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

const healthCheckTimeout = 2 * time.Second

// Check probes one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Service    string            `json:"service"`
	Uptime     string            `json:"uptime"`
	Components map[string]string `json:"components"`
}

// HealthHandler reports "healthy" when every check passes and "degraded"
// with a 503 otherwise.
type HealthHandler struct {
	checks  map[string]Check
	started time.Time
	logger  *slog.Logger
}

func NewHealthHandler(store storage.Storage, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checks:  map[string]Check{"storage": store.Ping},
		started: time.Now(),
		logger:  logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	slices.Sort(names)

	resp := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now(),
		Service:    "adventure-engine",
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: make(map[string]string, len(names)),
	}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warn("Health check failed", "component", name, "error", err)
			resp.Components[name] = "unhealthy"
			resp.Status = "degraded"
			continue
		}
		resp.Components[name] = "healthy"
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Error encoding health response", "error", err)
	}
}
