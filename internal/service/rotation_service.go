package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/repository"
)

// RotationService owns each user's split assignment and its day cursor.
type RotationService struct {
	workoutRepo repository.WorkoutRepository
	tx          repository.Transactor
}

func NewRotationService(workoutRepo repository.WorkoutRepository, tx repository.Transactor) *RotationService {
	return &RotationService{
		workoutRepo: workoutRepo,
		tx:          tx,
	}
}

// TodayView is the user's current position in their split.
type TodayView struct {
	Day           *domain.SplitDay
	Assignment    *domain.Assignment
	ActiveSession *domain.WorkoutSession
}

// Assign points the user at splitID, creating the assignment on first use.
// Rotation always restarts at position 0.
func (s *RotationService) Assign(ctx context.Context, userID, splitID uuid.UUID) (*domain.Assignment, error) {
	if splitID == uuid.Nil {
		return nil, domain.NewValidationError("split_id required")
	}

	var assignment *domain.Assignment
	err := retryOnConflict(func() error {
		return s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
			split, err := repos.Split.GetByID(ctx, splitID)
			if err != nil {
				if isNotFound(err) {
					return domain.ErrSplitNotFound
				}
				return fmt.Errorf("loading split: %w", err)
			}
			if !split.VisibleTo(userID) {
				return domain.ErrSplitNotFound
			}

			assignment, err = assignSplit(ctx, repos, userID, splitID)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// Today resolves the current day, repairing a cursor that no longer points
// at a day, and reports any active session.
func (s *RotationService) Today(ctx context.Context, userID uuid.UUID) (*TodayView, error) {
	view := &TodayView{}
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		assignment, day, err := currentDay(ctx, repos, userID)
		if err != nil {
			return err
		}
		view.Assignment = assignment
		view.Day = day
		return nil
	})
	if err != nil {
		return nil, err
	}

	active, err := s.workoutRepo.GetActiveSession(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("loading active session: %w", err)
	}
	view.ActiveSession = active
	return view, nil
}

// assignSplit is look-up-or-create over the user's single assignment.
func assignSplit(ctx context.Context, repos *repository.Repositories, userID, splitID uuid.UUID) (*domain.Assignment, error) {
	assignment, err := repos.Assignment.GetByUserID(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("loading assignment: %w", err)
	}

	if assignment == nil {
		now := time.Now().UTC()
		assignment = &domain.Assignment{
			ID:              uuid.New(),
			UserID:          userID,
			SplitID:         splitID,
			CurrentPosition: 0,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := repos.Assignment.Create(ctx, assignment); err != nil {
			return nil, fmt.Errorf("creating assignment: %w", err)
		}
		return assignment, nil
	}

	assignment.Reassign(splitID)
	if err := repos.Assignment.Update(ctx, assignment); err != nil {
		return nil, fmt.Errorf("updating assignment: %w", err)
	}
	return assignment, nil
}

// currentDay loads the user's assignment and resolves its day, persisting
// the cursor when it had to be repaired.
func currentDay(ctx context.Context, repos *repository.Repositories, userID uuid.UUID) (*domain.Assignment, *domain.SplitDay, error) {
	assignment, err := loadAssignment(ctx, repos, userID)
	if err != nil {
		return nil, nil, err
	}

	day, repaired, err := assignment.CurrentDay(assignment.Split.Days)
	if err != nil {
		return nil, nil, err
	}
	if repaired {
		if err := repos.Assignment.Update(ctx, assignment); err != nil {
			return nil, nil, fmt.Errorf("repairing assignment position: %w", err)
		}
	}
	return assignment, day, nil
}

func loadAssignment(ctx context.Context, repos *repository.Repositories, userID uuid.UUID) (*domain.Assignment, error) {
	assignment, err := repos.Assignment.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNoSplitAssigned
		}
		return nil, fmt.Errorf("loading assignment: %w", err)
	}
	if assignment.Split == nil {
		return nil, domain.ErrSplitNotFound
	}
	return assignment, nil
}
