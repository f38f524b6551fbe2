package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/service"
)

type SplitHandler struct {
	splitService    *service.SplitService
	rotationService *service.RotationService
}

func NewSplitHandler(splitService *service.SplitService, rotationService *service.RotationService) *SplitHandler {
	return &SplitHandler{
		splitService:    splitService,
		rotationService: rotationService,
	}
}

type SplitDayRequest struct {
	Name         string  `json:"name"`
	MuscleGroups *string `json:"muscle_groups"`
}

type CreateSplitRequest struct {
	Name string            `json:"name"`
	Days []SplitDayRequest `json:"days"`
}

type AssignSplitRequest struct {
	SplitID string `json:"split_id"`
}

type SplitDayResponse struct {
	ID           uuid.UUID `json:"id"`
	Position     int       `json:"position"`
	Name         string    `json:"name"`
	MuscleGroups *string   `json:"muscle_groups"`
}

type SplitResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	IsTemplate bool               `json:"is_template"`
	Days       []SplitDayResponse `json:"days"`
}

func toSplitResponse(split *domain.Split) SplitResponse {
	resp := SplitResponse{
		ID:         split.ID,
		Name:       split.Name,
		IsTemplate: split.IsTemplate,
		Days:       make([]SplitDayResponse, 0, len(split.Days)),
	}
	for _, day := range split.Days {
		resp.Days = append(resp.Days, SplitDayResponse{
			ID:           day.ID,
			Position:     day.Position,
			Name:         day.Name,
			MuscleGroups: day.MuscleGroups,
		})
	}
	return resp
}

func toSplitList(splits []*domain.Split) map[string][]SplitResponse {
	out := make([]SplitResponse, 0, len(splits))
	for _, split := range splits {
		out = append(out, toSplitResponse(split))
	}
	return map[string][]SplitResponse{"splits": out}
}

func (h *SplitHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req CreateSplitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreateSplitInput{Name: req.Name}
	for _, day := range req.Days {
		input.Days = append(input.Days, service.SplitDayInput{
			Name:         day.Name,
			MuscleGroups: day.MuscleGroups,
		})
	}

	result, err := h.splitService.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, "handlers.CreateSplit", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":            result.Split.ID,
		"name":          result.Split.Name,
		"assignment_id": result.Assignment.ID,
	})
}

func (h *SplitHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	splits, err := h.splitService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.ListSplits", err)
		return
	}
	writeJSON(w, http.StatusOK, toSplitList(splits))
}

func (h *SplitHandler) Templates(w http.ResponseWriter, r *http.Request) {
	splits, err := h.splitService.Templates(r.Context())
	if err != nil {
		writeServiceError(w, "handlers.ListTemplates", err)
		return
	}
	writeJSON(w, http.StatusOK, toSplitList(splits))
}

func (h *SplitHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	splitID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	split, err := h.splitService.Get(r.Context(), userID, splitID)
	if err != nil {
		writeServiceError(w, "handlers.GetSplit", err)
		return
	}
	writeJSON(w, http.StatusOK, toSplitResponse(split))
}

func (h *SplitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	splitID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.splitService.Delete(r.Context(), userID, splitID); err != nil {
		writeServiceError(w, "handlers.DeleteSplit", err)
		return
	}
	writeMessage(w, http.StatusOK, "Split deleted")
}

func (h *SplitHandler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	splitID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	dayID, ok := uuidParam(w, r, "dayID")
	if !ok {
		return
	}

	if err := h.splitService.DeleteDay(r.Context(), userID, splitID, dayID); err != nil {
		writeServiceError(w, "handlers.DeleteSplitDay", err)
		return
	}
	writeMessage(w, http.StatusOK, "Split day deleted")
}

func (h *SplitHandler) Assign(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req AssignSplitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SplitID == "" {
		writeMessage(w, http.StatusBadRequest, "split_id required")
		return
	}
	splitID, err := uuid.Parse(req.SplitID)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid split_id")
		return
	}

	assignment, err := h.rotationService.Assign(r.Context(), userID, splitID)
	if err != nil {
		writeServiceError(w, "handlers.AssignSplit", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assignment_id":    assignment.ID,
		"current_position": assignment.CurrentPosition,
	})
}
