package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"gorm.io/gorm"
)

type splitRepository struct {
	db *gorm.DB
}

func NewSplitRepository(db *gorm.DB) *splitRepository {
	return &splitRepository{db: db}
}

func daysByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *splitRepository) Create(ctx context.Context, split *domain.Split) error {
	return r.db.WithContext(ctx).Create(split).Error
}

func (r *splitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Split, error) {
	var split domain.Split
	err := r.db.WithContext(ctx).
		Preload("Days", daysByPosition).
		First(&split, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &split, nil
}

func (r *splitRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Split, error) {
	var splits []*domain.Split
	err := r.db.WithContext(ctx).
		Preload("Days", daysByPosition).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&splits).Error
	if err != nil {
		return nil, err
	}
	return splits, nil
}

func (r *splitRepository) ListTemplates(ctx context.Context) ([]*domain.Split, error) {
	var splits []*domain.Split
	err := r.db.WithContext(ctx).
		Preload("Days", daysByPosition).
		Where("is_template = ?", true).
		Order("name ASC").
		Find(&splits).Error
	if err != nil {
		return nil, err
	}
	return splits, nil
}

func (r *splitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Split{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *splitRepository) DeleteDay(ctx context.Context, splitID, dayID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND split_id = ?", dayID, splitID).
		Delete(&domain.SplitDay{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
