package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ProgressService computes read-only statistics from completed sessions.
// Nothing is persisted; every call recomputes from history.
type ProgressService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

func NewProgressService(workoutRepo repository.WorkoutRepository) *ProgressService {
	return &ProgressService{
		workoutRepo: workoutRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock. Used by tests.
func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	s.now = now
	return s
}

type Stats struct {
	TotalWorkouts int      `json:"total_workouts"`
	TotalSets     int      `json:"total_sets"`
	TotalVolume   float64  `json:"total_volume"`
	CurrentStreak int      `json:"current_streak"`
	LongestStreak int      `json:"longest_streak"`
	WorkoutDates  []string `json:"workout_dates"`
	LastWorkout   *string  `json:"last_workout"`
}

type WorkoutHistoryEntry struct {
	SessionID       uuid.UUID               `json:"session_id"`
	DayName         string                  `json:"day_name"`
	StartedAt       time.Time               `json:"started_at"`
	EndedAt         *time.Time              `json:"ended_at"`
	DurationMinutes int                     `json:"duration_minutes"`
	Exercises       []domain.ExerciseTotals `json:"exercises"`
	Totals          domain.SessionTotals    `json:"totals"`
}

func (s *ProgressService) completed(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutSession, error) {
	sessions, err := s.workoutRepo.ListCompletedSessions(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("listing completed sessions: %w", err)
	}
	return sessions, nil
}

func (s *ProgressService) BestLifts(ctx context.Context, userID uuid.UUID) ([]domain.BestLift, error) {
	sessions, err := s.completed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.BestLifts(sessions), nil
}

func (s *ProgressService) Volume(ctx context.Context, userID uuid.UUID) ([]domain.DailyVolume, error) {
	sessions, err := s.completed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.VolumeByDay(sessions), nil
}

func (s *ProgressService) Heatmap(ctx context.Context, userID uuid.UUID) ([]domain.DailyCount, error) {
	sessions, err := s.completed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.Heatmap(sessions), nil
}

func (s *ProgressService) Stats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	sessions, err := s.completed(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalWorkouts: len(sessions),
		WorkoutDates:  make([]string, 0),
	}
	for i := range sessions {
		for j := range sessions[i].Sets {
			stats.TotalSets++
			stats.TotalVolume += sessions[i].Sets[j].Volume()
		}
	}

	dates := domain.WorkoutDates(sessions)
	for _, d := range dates {
		stats.WorkoutDates = append(stats.WorkoutDates, d.Format(domain.DateLayout))
	}
	if len(stats.WorkoutDates) > 0 {
		last := stats.WorkoutDates[0]
		stats.LastWorkout = &last
	}
	stats.CurrentStreak, stats.LongestStreak = domain.Streaks(dates, s.now())
	return stats, nil
}

// WorkoutHistory lists completed sessions newest first. limit defaults to
// 20 and is capped at 100.
func (s *ProgressService) WorkoutHistory(ctx context.Context, userID uuid.UUID, limit int) ([]WorkoutHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	sessions, err := s.workoutRepo.ListCompletedSessions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing completed sessions: %w", err)
	}

	history := make([]WorkoutHistoryEntry, 0, len(sessions))
	for i := range sessions {
		session := &sessions[i]
		exercises, totals := domain.SummarizeSets(session.Sets)
		history = append(history, WorkoutHistoryEntry{
			SessionID:       session.ID,
			DayName:         session.DayName(),
			StartedAt:       session.StartedAt,
			EndedAt:         session.EndedAt,
			DurationMinutes: session.DurationMinutes(s.now()),
			Exercises:       exercises,
			Totals:          totals,
		})
	}
	return history, nil
}
