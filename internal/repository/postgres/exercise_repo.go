package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"gorm.io/gorm"
)

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *exerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) CreateMany(ctx context.Context, exercises []*domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(exercises, 100).Error
}

func (r *exerciseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.WithContext(ctx).First(&exercise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) ListDefaults(ctx context.Context, muscleGroup, specificMuscle string) ([]*domain.Exercise, error) {
	var exercises []*domain.Exercise
	err := r.db.WithContext(ctx).
		Where("is_default = ? AND muscle_group = ? AND specific_muscle = ?", true, muscleGroup, specificMuscle).
		Order("name ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepository) ListCustom(ctx context.Context, userID uuid.UUID, muscleGroup, specificMuscle string) ([]*domain.Exercise, error) {
	var exercises []*domain.Exercise
	err := r.db.WithContext(ctx).
		Where("is_default = ? AND created_by = ? AND muscle_group = ? AND specific_muscle = ?", false, userID, muscleGroup, specificMuscle).
		Order("name ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepository) FindVisibleByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Where("is_default = ? OR created_by = ?", true, userID).
		Order("is_default DESC, created_at ASC").
		First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) CountDefaults(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("is_default = ?", true).
		Count(&count).Error
	return count, err
}
