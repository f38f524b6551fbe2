package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *workoutRepository {
	return &workoutRepository{db: db}
}

func setsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, set_number ASC")
}

func (r *workoutRepository) CreateSession(ctx context.Context, session *domain.WorkoutSession) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

func (r *workoutRepository) GetActiveSession(ctx context.Context, userID uuid.UUID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.db.WithContext(ctx).
		Preload("SplitDay").
		First(&session, "user_id = ? AND completed = ?", userID, false).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *workoutRepository) UpdateSession(ctx context.Context, session *domain.WorkoutSession) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(session).Error
}

func (r *workoutRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.WorkoutSession{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *workoutRepository) CreateSet(ctx context.Context, set *domain.WorkoutSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *workoutRepository) CountSetsForExercise(ctx context.Context, sessionID uuid.UUID, exerciseID *uuid.UUID, name string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.WorkoutSet{}).
		Where("session_id = ?", sessionID)
	if exerciseID != nil {
		// Sets logged as free text before the exercise entered the catalog
		// belong to the same exercise.
		query = query.Where("exercise_id = ? OR (exercise_id IS NULL AND LOWER(exercise_name) = LOWER(?))", *exerciseID, name)
	} else {
		query = query.Where("exercise_id IS NULL AND LOWER(exercise_name) = LOWER(?)", name)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *workoutRepository) ListSets(ctx context.Context, sessionID uuid.UUID) ([]domain.WorkoutSet, error) {
	var sets []domain.WorkoutSet
	err := setsInOrder(r.db.WithContext(ctx)).
		Where("session_id = ?", sessionID).
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *workoutRepository) ListCompletedSessions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WorkoutSession, error) {
	query := r.db.WithContext(ctx).
		Preload("SplitDay").
		Preload("Sets", setsInOrder).
		Where("user_id = ? AND completed = ?", userID, true).
		Order("ended_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var sessions []domain.WorkoutSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *workoutRepository) ListRecentSessionsWithExercise(ctx context.Context, userID uuid.UUID, exercise *domain.Exercise, limit int) ([]domain.WorkoutSession, error) {
	// Legacy rows carry only a name, so match either form.
	const matchSet = "exercise_id = ? OR LOWER(exercise_name) = LOWER(?)"

	matching := r.db.
		Model(&domain.WorkoutSet{}).
		Select("session_id").
		Where(matchSet, exercise.ID, exercise.Name)

	var sessions []domain.WorkoutSession
	err := r.db.WithContext(ctx).
		Preload("Sets", func(db *gorm.DB) *gorm.DB {
			return db.Where(matchSet, exercise.ID, exercise.Name).Order("set_number ASC")
		}).
		Where("user_id = ? AND completed = ?", userID, true).
		Where("id IN (?)", matching).
		Order("ended_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
