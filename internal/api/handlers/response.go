package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/api/middleware"
	"github.com/shubham56-h/Trackify/internal/domain"
	log "github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// userMessages holds the client-facing wording for sentinel errors whose
// Error() text is written for logs.
var userMessages = map[error]string{
	domain.ErrNoSplitAssigned:  "No split assigned. Create a split first.",
	domain.ErrEmptySplit:       "Split has no days configured",
	domain.ErrNoActiveSession:  "No active workout session",
	domain.ErrExerciseNotFound: "Exercise not found",
	domain.ErrSplitNotFound:    "Split not found",
	domain.ErrSplitDayNotFound: "Split day not found",
	domain.ErrSplitInUse:       "Split is assigned and cannot be deleted",
	domain.ErrUserNotFound:     "User not found",
}

func messageFor(err error) string {
	for sentinel, msg := range userMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}

// writeServiceError maps a service error to its HTTP status. where names
// the handler for the log line.
func writeServiceError(w http.ResponseWriter, where string, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		writeMessage(w, http.StatusBadRequest, validation.Message)
	case errors.Is(err, domain.ErrEmptySplit),
		errors.Is(err, domain.ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, messageFor(err))
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, messageFor(err))
	case errors.Is(err, domain.ErrNoSplitAssigned),
		errors.Is(err, domain.ErrNoActiveSession),
		errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, domain.ErrSplitNotFound),
		errors.Is(err, domain.ErrSplitDayNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, messageFor(err))
	case errors.Is(err, domain.ErrSplitInUse):
		writeMessage(w, http.StatusConflict, messageFor(err))
	default:
		log.Errorf("[%s] %v", where, err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	log.Debugf("[%s] rejected: %v", where, err)
}

// decodeJSON reads the request body into v. An empty body, whether or not
// its length was declared, leaves v at its zero value so field validation
// reports what is missing.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func userIDFrom(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
