package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/service"
)

type TodayHandler struct {
	rotationService *service.RotationService
	workoutService  *service.WorkoutService
}

func NewTodayHandler(rotationService *service.RotationService, workoutService *service.WorkoutService) *TodayHandler {
	return &TodayHandler{
		rotationService: rotationService,
		workoutService:  workoutService,
	}
}

// AddSetRequest accepts either exercise_id or a free-text exercise_name.
// reps and weight are pointers so that a missing field can be told apart
// from zero.
type AddSetRequest struct {
	ExerciseID   string   `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	Reps         *int     `json:"reps"`
	Weight       *float64 `json:"weight"`
}

type TodayDayResponse struct {
	DayName      string    `json:"day_name"`
	MuscleGroups *string   `json:"muscle_groups"`
	SplitDayID   uuid.UUID `json:"split_day_id"`
}

type ActiveSessionResponse struct {
	ID        uuid.UUID `json:"id"`
	StartedAt time.Time `json:"started_at"`
}

type AssignmentResponse struct {
	ID              uuid.UUID     `json:"id"`
	CurrentPosition int           `json:"current_position"`
	Split           SplitResponse `json:"split"`
}

type TodayResponse struct {
	Today         TodayDayResponse       `json:"today"`
	ActiveSession *ActiveSessionResponse `json:"active_session"`
	Assignment    AssignmentResponse     `json:"assignment"`
}

type SetResponse struct {
	ID           uuid.UUID  `json:"id"`
	ExerciseID   *uuid.UUID `json:"exercise_id"`
	ExerciseName string     `json:"exercise_name"`
	SetNumber    int        `json:"set_number"`
	Reps         int        `json:"reps"`
	Weight       float64    `json:"weight"`
}

type NextDayResponse struct {
	Name         string  `json:"name"`
	MuscleGroups *string `json:"muscle_groups"`
}

func (h *TodayHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	view, err := h.rotationService.Today(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.Today", err)
		return
	}

	resp := TodayResponse{
		Today: TodayDayResponse{
			DayName:      view.Day.Name,
			MuscleGroups: view.Day.MuscleGroups,
			SplitDayID:   view.Day.ID,
		},
		Assignment: AssignmentResponse{
			ID:              view.Assignment.ID,
			CurrentPosition: view.Assignment.CurrentPosition,
		},
	}
	if view.Assignment.Split != nil {
		resp.Assignment.Split = toSplitResponse(view.Assignment.Split)
	}
	if view.ActiveSession != nil {
		resp.ActiveSession = &ActiveSessionResponse{
			ID:        view.ActiveSession.ID,
			StartedAt: view.ActiveSession.StartedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TodayHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	result, err := h.workoutService.Start(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.StartWorkout", err)
		return
	}

	if result.AlreadyActive {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "Workout already in progress",
			"session_id": result.Session.ID,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Workout started",
		"session_id": result.Session.ID,
		"day_name":   result.DayName,
	})
}

func (h *TodayHandler) AddSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req AddSetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if (req.ExerciseID == "" && req.ExerciseName == "") || req.Reps == nil || req.Weight == nil {
		writeMessage(w, http.StatusBadRequest, "exercise_id (or exercise_name), reps, and weight required")
		return
	}

	ref := domain.ExerciseRefByName(req.ExerciseName)
	if req.ExerciseID != "" {
		id, err := uuid.Parse(req.ExerciseID)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid exercise_id")
			return
		}
		ref = domain.ExerciseRefByID(id)
	}

	set, err := h.workoutService.AddSet(r.Context(), userID, service.AddSetInput{
		Exercise: ref,
		Reps:     *req.Reps,
		Weight:   *req.Weight,
	})
	if err != nil {
		writeServiceError(w, "handlers.AddSet", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Set added",
		"set": SetResponse{
			ID:           set.ID,
			ExerciseID:   set.ExerciseID,
			ExerciseName: set.ExerciseName,
			SetNumber:    set.SetNumber,
			Reps:         set.Reps,
			Weight:       set.Weight,
		},
	})
}

func (h *TodayHandler) Finish(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	result, err := h.workoutService.Finish(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.FinishWorkout", err)
		return
	}

	next := NextDayResponse{Name: "Unknown"}
	if result.NextDay != nil {
		next = NextDayResponse{Name: result.NextDay.Name, MuscleGroups: result.NextDay.MuscleGroups}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Workout completed!",
		"next_day": next,
	})
}

func (h *TodayHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	if err := h.workoutService.Cancel(r.Context(), userID); err != nil {
		writeServiceError(w, "handlers.CancelWorkout", err)
		return
	}
	writeMessage(w, http.StatusOK, "Workout cancelled successfully")
}

func (h *TodayHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	summary, err := h.workoutService.Summary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.SessionSummary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *TodayHandler) ExerciseHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	exerciseID, ok := uuidParam(w, r, "exerciseID")
	if !ok {
		return
	}

	history, err := h.workoutService.ExerciseHistory(r.Context(), userID, exerciseID)
	if err != nil {
		writeServiceError(w, "handlers.ExerciseHistory", err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
