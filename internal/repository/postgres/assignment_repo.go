package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
}

func (r *assignmentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Assignment, error) {
	var assignment domain.Assignment
	err := r.db.WithContext(ctx).
		Preload("Split").
		Preload("Split.Days", daysByPosition).
		First(&assignment, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *domain.Assignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(assignment).Error
}

func (r *assignmentRepository) CountBySplitID(ctx context.Context, splitID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Assignment{}).
		Where("split_id = ?", splitID).
		Count(&count).Error
	return count, err
}
