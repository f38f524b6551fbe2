package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/live"
	"github.com/shubham56-h/Trackify/internal/metrics"
	"github.com/shubham56-h/Trackify/internal/repository"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const exerciseHistorySessions = 3

// unknownDayName is reported when the cursor lands on a deleted day.
const unknownDayName = "Unknown"

// WorkoutService runs the session lifecycle: start, log sets, then finish
// or cancel. Finishing a session advances the rotation in the same
// transaction.
type WorkoutService struct {
	repos     *repository.Repositories
	tx        repository.Transactor
	publisher EventPublisher
	metrics   *metrics.Manager
	now       func() time.Time
}

func NewWorkoutService(repos *repository.Repositories, tx repository.Transactor, publisher EventPublisher, m *metrics.Manager) *WorkoutService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &WorkoutService{
		repos:     repos,
		tx:        tx,
		publisher: publisher,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock. Used by tests.
func (s *WorkoutService) WithClock(now func() time.Time) *WorkoutService {
	s.now = now
	return s
}

type StartResult struct {
	Session       *domain.WorkoutSession
	DayName       string
	AlreadyActive bool
}

type AddSetInput struct {
	Exercise domain.ExerciseRef
	Reps     int
	Weight   float64
}

// FinishResult carries the completed session and the day now at the
// cursor. NextDay is nil when the cursor sits on a gap left by a deleted day.
type FinishResult struct {
	Session *domain.WorkoutSession
	NextDay *domain.SplitDay
}

type SessionSummary struct {
	SessionID       uuid.UUID               `json:"session_id"`
	StartedAt       time.Time               `json:"started_at"`
	DurationMinutes int                     `json:"duration_minutes"`
	Exercises       []domain.ExerciseTotals `json:"exercises"`
	Totals          domain.SessionTotals    `json:"totals"`
}

type ExerciseHistoryEntry struct {
	Date        string           `json:"date"`
	Timestamp   *time.Time       `json:"timestamp"`
	TotalSets   int              `json:"total_sets"`
	Sets        []domain.SetLine `json:"sets"`
	TotalVolume float64          `json:"total_volume"`
	MaxWeight   float64          `json:"max_weight"`
}

type ExerciseHistory struct {
	ExerciseID   uuid.UUID              `json:"exercise_id"`
	ExerciseName string                 `json:"exercise_name"`
	History      []ExerciseHistoryEntry `json:"history"`
}

// Start opens a session on the current day. When a session is already
// active it is returned unchanged with AlreadyActive set.
func (s *WorkoutService) Start(ctx context.Context, userID uuid.UUID) (*StartResult, error) {
	var result *StartResult
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		assignment, err := loadAssignment(ctx, repos, userID)
		if err != nil {
			return err
		}

		active, err := repos.Workout.GetActiveSession(ctx, userID)
		if err == nil {
			result = &StartResult{Session: active, DayName: active.DayName(), AlreadyActive: true}
			return nil
		}
		if !isNotFound(err) {
			return fmt.Errorf("loading active session: %w", err)
		}

		day, repaired, err := assignment.CurrentDay(assignment.Split.Days)
		if err != nil {
			return err
		}
		if repaired {
			if err := repos.Assignment.Update(ctx, assignment); err != nil {
				return fmt.Errorf("repairing assignment position: %w", err)
			}
		}

		session := &domain.WorkoutSession{
			ID:           uuid.New(),
			UserID:       userID,
			AssignmentID: assignment.ID,
			SplitDayID:   &day.ID,
			StartedAt:    s.now(),
			Completed:    false,
		}
		if err := repos.Workout.CreateSession(ctx, session); err != nil {
			return err
		}
		session.SplitDay = day
		result = &StartResult{Session: session, DayName: day.Name}
		return nil
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent start won; report its session.
		active, getErr := s.repos.Workout.GetActiveSession(ctx, userID)
		if getErr != nil {
			return nil, fmt.Errorf("loading concurrent session: %w", getErr)
		}
		result, err = &StartResult{Session: active, DayName: active.DayName(), AlreadyActive: true}, nil
	}
	if err != nil {
		return nil, err
	}

	if result.AlreadyActive {
		s.metrics.SessionOutcome(metrics.OutcomeResumed)
		return result, nil
	}

	s.metrics.SessionOutcome(metrics.OutcomeStarted)
	s.publisher.Publish(userID, live.EventSessionStarted, map[string]interface{}{
		"session_id": result.Session.ID,
		"day_name":   result.DayName,
		"started_at": result.Session.StartedAt,
	})
	log.WithFields(log.Fields{
		"user_id":    userID,
		"session_id": result.Session.ID,
	}).Debug("workout session started")
	return result, nil
}

// AddSet logs one set in the active session. set_number counts per
// exercise within the session, starting at 1.
func (s *WorkoutService) AddSet(ctx context.Context, userID uuid.UUID, input AddSetInput) (*domain.WorkoutSet, error) {
	if !input.Exercise.IsByID() && input.Exercise.Name() == "" {
		return nil, domain.NewValidationError("exercise_id (or exercise_name), reps, and weight required")
	}
	if input.Reps <= 0 {
		return nil, domain.NewValidationError("reps must be positive")
	}
	if input.Weight < 0 {
		return nil, domain.NewValidationError("weight must not be negative")
	}

	var set *domain.WorkoutSet
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		session, err := repos.Workout.GetActiveSession(ctx, userID)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrNoActiveSession
			}
			return fmt.Errorf("loading active session: %w", err)
		}

		exercise, err := resolveExercise(ctx, repos, userID, input.Exercise)
		if err != nil {
			return err
		}

		count, err := repos.Workout.CountSetsForExercise(ctx, session.ID, exercise.ID, exercise.Name)
		if err != nil {
			return fmt.Errorf("counting sets: %w", err)
		}

		set = &domain.WorkoutSet{
			ID:           uuid.New(),
			SessionID:    session.ID,
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			SetNumber:    int(count) + 1,
			Reps:         input.Reps,
			Weight:       input.Weight,
			CreatedAt:    s.now(),
		}
		return repos.Workout.CreateSet(ctx, set)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SetLogged()
	s.publisher.Publish(userID, live.EventSetAdded, set)
	return set, nil
}

// resolveExercise turns a reference into its canonical form. Ids must name
// an exercise the user can see. Names resolve to a visible catalog entry
// when one matches case-insensitively and are otherwise kept as free text.
func resolveExercise(ctx context.Context, repos *repository.Repositories, userID uuid.UUID, ref domain.ExerciseRef) (domain.ResolvedExercise, error) {
	if ref.IsByID() {
		exercise, err := repos.Exercise.GetByID(ctx, ref.ID())
		if err != nil {
			if isNotFound(err) {
				return domain.ResolvedExercise{}, domain.ErrExerciseNotFound
			}
			return domain.ResolvedExercise{}, fmt.Errorf("loading exercise: %w", err)
		}
		if !exercise.VisibleTo(userID) {
			return domain.ResolvedExercise{}, domain.ErrExerciseNotFound
		}
		return domain.ResolvedExercise{ID: &exercise.ID, Name: exercise.Name}, nil
	}

	exercise, err := repos.Exercise.FindVisibleByName(ctx, userID, ref.Name())
	if err != nil {
		if isNotFound(err) {
			return domain.ResolvedExercise{Name: ref.Name()}, nil
		}
		return domain.ResolvedExercise{}, fmt.Errorf("matching exercise name: %w", err)
	}
	return domain.ResolvedExercise{ID: &exercise.ID, Name: exercise.Name}, nil
}

// Finish completes the active session and advances the rotation atomically.
func (s *WorkoutService) Finish(ctx context.Context, userID uuid.UUID) (*FinishResult, error) {
	var result *FinishResult
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		session, err := repos.Workout.GetActiveSession(ctx, userID)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrNoActiveSession
			}
			return fmt.Errorf("loading active session: %w", err)
		}

		assignment, err := loadAssignment(ctx, repos, userID)
		if err != nil {
			return err
		}

		now := s.now()
		days := assignment.Split.Days
		if err := assignment.Advance(len(days), now); err != nil {
			return err
		}
		next := assignment.DayAt(days)

		session.Complete(now)
		if err := repos.Workout.UpdateSession(ctx, session); err != nil {
			return fmt.Errorf("completing session: %w", err)
		}
		if err := repos.Assignment.Update(ctx, assignment); err != nil {
			return fmt.Errorf("advancing assignment: %w", err)
		}

		result = &FinishResult{Session: session, NextDay: next}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SessionOutcome(metrics.OutcomeFinished)
	nextName := unknownDayName
	if result.NextDay != nil {
		nextName = result.NextDay.Name
	}
	s.publisher.Publish(userID, live.EventSessionFinished, map[string]interface{}{
		"session_id":    result.Session.ID,
		"next_day_name": nextName,
	})
	return result, nil
}

// Cancel deletes the active session and its sets. The rotation does not move.
func (s *WorkoutService) Cancel(ctx context.Context, userID uuid.UUID) error {
	var sessionID uuid.UUID
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		session, err := repos.Workout.GetActiveSession(ctx, userID)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrNoActiveSession
			}
			return fmt.Errorf("loading active session: %w", err)
		}
		sessionID = session.ID
		if err := repos.Workout.DeleteSession(ctx, session.ID); err != nil {
			if isNotFound(err) {
				return domain.ErrNoActiveSession
			}
			return fmt.Errorf("deleting session: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.SessionOutcome(metrics.OutcomeCancelled)
	s.publisher.Publish(userID, live.EventSessionCancelled, map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

// Summary totals the active session so far.
func (s *WorkoutService) Summary(ctx context.Context, userID uuid.UUID) (*SessionSummary, error) {
	session, err := s.repos.Workout.GetActiveSession(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("loading active session: %w", err)
	}

	sets, err := s.repos.Workout.ListSets(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}

	exercises, totals := domain.SummarizeSets(sets)
	return &SessionSummary{
		SessionID:       session.ID,
		StartedAt:       session.StartedAt,
		DurationMinutes: session.DurationMinutes(s.now()),
		Exercises:       exercises,
		Totals:          totals,
	}, nil
}

// ExerciseHistory returns the user's last few completed sessions that
// include the exercise, newest first.
func (s *WorkoutService) ExerciseHistory(ctx context.Context, userID, exerciseID uuid.UUID) (*ExerciseHistory, error) {
	exercise, err := s.repos.Exercise.GetByID(ctx, exerciseID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("loading exercise: %w", err)
	}
	if !exercise.VisibleTo(userID) {
		return nil, domain.ErrExerciseNotFound
	}

	sessions, err := s.repos.Workout.ListRecentSessionsWithExercise(ctx, userID, exercise, exerciseHistorySessions)
	if err != nil {
		return nil, fmt.Errorf("listing exercise sessions: %w", err)
	}

	history := &ExerciseHistory{
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		History:      make([]ExerciseHistoryEntry, 0, len(sessions)),
	}
	for i := range sessions {
		if len(sessions[i].Sets) == 0 {
			continue
		}
		history.History = append(history.History, historyEntry(&sessions[i]))
	}
	return history, nil
}

func historyEntry(session *domain.WorkoutSession) ExerciseHistoryEntry {
	entry := ExerciseHistoryEntry{
		Date:      "Unknown",
		Timestamp: session.EndedAt,
		Sets:      make([]domain.SetLine, 0, len(session.Sets)),
	}
	if session.EndedAt != nil {
		entry.Date = session.EndedAt.UTC().Format("Jan 02, 2006")
	}

	for i := range session.Sets {
		set := &session.Sets[i]
		volume := set.Volume()
		entry.Sets = append(entry.Sets, domain.SetLine{
			SetNumber: set.SetNumber,
			Reps:      set.Reps,
			Weight:    set.Weight,
			Volume:    volume,
		})
		entry.TotalSets++
		entry.TotalVolume += volume
		if set.Weight > entry.MaxWeight {
			entry.MaxWeight = set.Weight
		}
	}
	return entry
}
