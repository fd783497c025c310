package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MoveRequest struct {
	Direction string `json:"direction"`
}

type AttackRequest struct {
	WeaponID int `json:"weapon_id"`
}

type PotionRequest struct {
	PotionID int `json:"potion_id"`
}

// GameHandler serves the /v1/games routes.
type GameHandler struct {
	games  *services.GameService
	logger *slog.Logger
}

func NewGameHandler(games *services.GameService, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		games:  games,
		logger: logger,
	}
}

// Routes mounts:
// POST   /                - Create a new game
// GET    /{id}            - Read a game
// DELETE /{id}            - Delete a game
// POST   /{id}/move       - Move in a direction
// POST   /{id}/attack     - Attack with a weapon
// POST   /{id}/potion     - Drink a healing potion
func (h *GameHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.handleCreate)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Delete("/", h.handleDelete)
		r.Post("/move", h.handleMove)
		r.Post("/attack", h.handleAttack)
		r.Post("/potion", h.handlePotion)
	})
	return r
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	view, err := h.games.Create(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *GameHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	view, err := h.games.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *GameHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	if err := h.games.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) handleMove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	var req MoveRequest
	if !h.decode(w, r, &req) {
		return
	}
	dir, ok := world.ParseDirection(req.Direction)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "direction must be north, south, east or west"})
		return
	}
	h.execute(w, r, id, state.Command{Type: state.CmdMove, Direction: dir})
}

func (h *GameHandler) handleAttack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	var req AttackRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.execute(w, r, id, state.Command{Type: state.CmdAttack, ItemID: req.WeaponID})
}

func (h *GameHandler) handlePotion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	var req PotionRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.execute(w, r, id, state.Command{Type: state.CmdPotion, ItemID: req.PotionID})
}

func (h *GameHandler) execute(w http.ResponseWriter, r *http.Request, id uuid.UUID, cmd state.Command) {
	view, err := h.games.Execute(r.Context(), id, cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *GameHandler) gameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("Invalid game ID", "id", idStr, "error", err)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// decode reads a JSON body. An empty body leaves req at its zero value.
func (h *GameHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Invalid request body", "error", err, "path", r.URL.Path)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, state.ErrNoEncounter):
		return http.StatusConflict
	case errors.Is(err, state.ErrUnknownItem),
		errors.Is(err, state.ErrNotAWeapon),
		errors.Is(err, state.ErrNotAPotion),
		errors.Is(err, state.ErrItemNotOwned):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrNoExit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *GameHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("Game request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		msg = "Internal server error"
	}
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (h *GameHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
