package handlers

import (
	"net/http"
	"strconv"

	"github.com/shubham56-h/Trackify/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) BestLifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	lifts, err := h.progressService.BestLifts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.BestLifts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"best_lifts": lifts})
}

func (h *ProgressHandler) Volume(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	volume, err := h.progressService.Volume(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.Volume", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"volume": volume})
}

func (h *ProgressHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	heatmap, err := h.progressService.Heatmap(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.Heatmap", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"heatmap": heatmap})
}

func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	stats, err := h.progressService.Stats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.Stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// WorkoutHistory accepts an optional ?limit= query parameter.
func (h *ProgressHandler) WorkoutHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	history, err := h.progressService.WorkoutHistory(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, "handlers.WorkoutHistory", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}
