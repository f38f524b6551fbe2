package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/service"
)

type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type CreateExerciseRequest struct {
	Name           string `json:"name"`
	MuscleGroup    string `json:"muscle_group"`
	SpecificMuscle string `json:"specific_muscle"`
}

type ExerciseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
}

func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	exercises, err := h.exerciseService.List(r.Context(), userID,
		chi.URLParam(r, "muscleGroup"), chi.URLParam(r, "specificMuscle"))
	if err != nil {
		writeServiceError(w, "handlers.ListExercises", err)
		return
	}

	out := make([]ExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, ExerciseResponse{ID: ex.ID, Name: ex.Name, IsDefault: ex.IsDefault})
	}
	writeJSON(w, http.StatusOK, map[string][]ExerciseResponse{"exercises": out})
}

func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req CreateExerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	exercise, err := h.exerciseService.Create(r.Context(), userID, service.CreateExerciseInput{
		Name:           req.Name,
		MuscleGroup:    req.MuscleGroup,
		SpecificMuscle: req.SpecificMuscle,
	})
	if err != nil {
		writeServiceError(w, "handlers.CreateExercise", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      exercise.ID,
		"name":    exercise.Name,
		"message": "Exercise created successfully",
	})
}
