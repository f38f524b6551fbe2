package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/repository"
)

type SplitService struct {
	splitRepo repository.SplitRepository
	tx        repository.Transactor
}

func NewSplitService(splitRepo repository.SplitRepository, tx repository.Transactor) *SplitService {
	return &SplitService{
		splitRepo: splitRepo,
		tx:        tx,
	}
}

type SplitDayInput struct {
	Name         string
	MuscleGroups *string
}

type CreateSplitInput struct {
	Name string
	Days []SplitDayInput
}

type CreateSplitResult struct {
	Split      *domain.Split
	Assignment *domain.Assignment
}

// Create stores a user-owned split and makes it the user's active split.
// Days take positions 0..n-1 in input order.
func (s *SplitService) Create(ctx context.Context, userID uuid.UUID, input CreateSplitInput) (*CreateSplitResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(input.Days) == 0 {
		return nil, domain.NewValidationError("name and days required")
	}
	for i, day := range input.Days {
		if strings.TrimSpace(day.Name) == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("days[%d].name required", i))
		}
	}

	var result *CreateSplitResult
	err := retryOnConflict(func() error {
		split := buildSplit(&userID, name, false, input.Days)
		return s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
			if err := repos.Split.Create(ctx, split); err != nil {
				return fmt.Errorf("creating split: %w", err)
			}
			assignment, err := assignSplit(ctx, repos, userID, split.ID)
			if err != nil {
				return err
			}
			result = &CreateSplitResult{Split: split, Assignment: assignment}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func buildSplit(ownerID *uuid.UUID, name string, template bool, days []SplitDayInput) *domain.Split {
	split := &domain.Split{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		IsTemplate: template,
		CreatedAt:  time.Now().UTC(),
		Days:       make([]domain.SplitDay, len(days)),
	}
	for i, day := range days {
		split.Days[i] = domain.SplitDay{
			ID:           uuid.New(),
			SplitID:      split.ID,
			Position:     i,
			Name:         strings.TrimSpace(day.Name),
			MuscleGroups: day.MuscleGroups,
		}
	}
	return split
}

func (s *SplitService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Split, error) {
	return s.splitRepo.ListByOwner(ctx, userID)
}

func (s *SplitService) Templates(ctx context.Context) ([]*domain.Split, error) {
	return s.splitRepo.ListTemplates(ctx)
}

// Get returns a split the user owns or a template.
func (s *SplitService) Get(ctx context.Context, userID, splitID uuid.UUID) (*domain.Split, error) {
	split, err := s.splitRepo.GetByID(ctx, splitID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrSplitNotFound
		}
		return nil, err
	}
	if !split.VisibleTo(userID) {
		return nil, domain.ErrSplitNotFound
	}
	return split, nil
}

// Delete removes an owned split and its days. A split that any user is
// assigned to cannot be deleted.
func (s *SplitService) Delete(ctx context.Context, userID, splitID uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := ownedSplit(ctx, repos, userID, splitID); err != nil {
			return err
		}

		inUse, err := repos.Assignment.CountBySplitID(ctx, splitID)
		if err != nil {
			return fmt.Errorf("counting assignments: %w", err)
		}
		if inUse > 0 {
			return domain.ErrSplitInUse
		}

		if err := repos.Split.Delete(ctx, splitID); err != nil {
			if isNotFound(err) {
				return domain.ErrSplitNotFound
			}
			return fmt.Errorf("deleting split: %w", err)
		}
		return nil
	})
}

// DeleteDay removes one day from an owned split. Remaining positions are
// left as they are; the rotation falls back to the lowest position when
// its cursor lands on the gap.
func (s *SplitService) DeleteDay(ctx context.Context, userID, splitID, dayID uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := ownedSplit(ctx, repos, userID, splitID); err != nil {
			return err
		}
		if err := repos.Split.DeleteDay(ctx, splitID, dayID); err != nil {
			if isNotFound(err) {
				return domain.ErrSplitDayNotFound
			}
			return fmt.Errorf("deleting split day: %w", err)
		}
		return nil
	})
}

func ownedSplit(ctx context.Context, repos *repository.Repositories, userID, splitID uuid.UUID) (*domain.Split, error) {
	split, err := repos.Split.GetByID(ctx, splitID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrSplitNotFound
		}
		return nil, fmt.Errorf("loading split: %w", err)
	}
	if !split.OwnedBy(userID) {
		return nil, domain.ErrSplitNotFound
	}
	return split, nil
}
