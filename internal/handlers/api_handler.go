package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ravico/dinefinder/internal/availability"
	appSignals "github.com/ravico/dinefinder/internal/signals"
)

// APIHandler serves the JSON query and catalog endpoints
type APIHandler struct {
	*BaseHandler
}

// NewAPIHandler creates a new JSON API handler
func NewAPIHandler(baseHandler *BaseHandler) *APIHandler {
	return &APIHandler{
		BaseHandler: baseHandler,
	}
}

// RegisterRoutes registers the JSON API routes
func (h *APIHandler) RegisterRoutes() {
	http.HandleFunc("/api/open", h.handleOpen)
	http.HandleFunc("/api/catalog/reload", h.handleReload)
}

// OpenResponse is the response for GET /api/open
type OpenResponse struct {
	Restaurants []RestaurantResult `json:"restaurants"`
	Count       int                `json:"count"`
}

// RestaurantResult is one open restaurant in an OpenResponse
type RestaurantResult struct {
	Name string `json:"name"`
}

// handleOpen answers GET /api/open?date=...&time=... with the restaurants
// open at that instant.
func (h *APIHandler) handleOpen(w http.ResponseWriter, r *http.Request) {
	handlerLogger := h.logger.With().Str("handler", "handleOpen").Logger()

	defer func() {
		if p := recover(); p != nil {
			handlerLogger.Error().Interface("panic", p).Msg("Panic while handling open query")
			h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": ErrCodeUnknown})
		}
	}()

	if r.Method != http.MethodGet {
		h.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": ErrCodeMethodNotAllowed})
		return
	}

	query := r.URL.Query()
	open, err := h.Session.FindOpen(query.Get("date"), query.Get("time"))
	if err != nil {
		var invalid *availability.InvalidInputError
		if errors.As(err, &invalid) {
			code := ErrCodeInvalidDate
			if invalid.Field == "time" {
				code = ErrCodeInvalidTime
			}
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": code})
			return
		}
		handlerLogger.Error().Err(err).Msg("Query failed")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": ErrCodeQueryFailed})
		return
	}

	response := OpenResponse{
		Restaurants: make([]RestaurantResult, 0, len(open)),
		Count:       len(open),
	}
	for _, restaurant := range open {
		response.Restaurants = append(response.Restaurants, RestaurantResult{Name: restaurant.Name})
	}

	h.writeJSON(w, http.StatusOK, response)
}

// handleReload answers POST /api/catalog/reload by asking the catalog
// owner to reload. With force=true the source file is reseeded first.
func (h *APIHandler) handleReload(w http.ResponseWriter, r *http.Request) {
	handlerLogger := h.logger.With().Str("handler", "handleReload").Logger()

	if r.Method != http.MethodPost {
		h.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": ErrCodeMethodNotAllowed})
		return
	}

	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	handlerLogger.Info().Bool("force", force).Msg("Catalog reload requested")

	// the reload outlives this request, so detach from its context
	appSignals.EmitCatalogReloadRequested(context.Background(), force)

	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": SuccessCodeReloadRequested})
}

func (h *BaseHandler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
