package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SplitRepository interface {
	// Create inserts the split together with its days.
	Create(ctx context.Context, split *domain.Split) error
	// GetByID loads the split with days ordered by position.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Split, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Split, error)
	ListTemplates(ctx context.Context) ([]*domain.Split, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteDay(ctx context.Context, splitID, dayID uuid.UUID) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	// GetByUserID loads the assignment with its split and the split's days.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Assignment, error)
	Update(ctx context.Context, assignment *domain.Assignment) error
	CountBySplitID(ctx context.Context, splitID uuid.UUID) (int64, error)
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	CreateMany(ctx context.Context, exercises []*domain.Exercise) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	ListDefaults(ctx context.Context, muscleGroup, specificMuscle string) ([]*domain.Exercise, error)
	ListCustom(ctx context.Context, userID uuid.UUID, muscleGroup, specificMuscle string) ([]*domain.Exercise, error)
	// FindVisibleByName matches case-insensitively among defaults and the
	// user's own exercises, preferring defaults.
	FindVisibleByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Exercise, error)
	CountDefaults(ctx context.Context) (int64, error)
}

type WorkoutRepository interface {
	CreateSession(ctx context.Context, session *domain.WorkoutSession) error
	// GetActiveSession returns the user's session with completed = false,
	// with its split day preloaded.
	GetActiveSession(ctx context.Context, userID uuid.UUID) (*domain.WorkoutSession, error)
	UpdateSession(ctx context.Context, session *domain.WorkoutSession) error
	DeleteSession(ctx context.Context, id uuid.UUID) error

	CreateSet(ctx context.Context, set *domain.WorkoutSet) error
	// CountSetsForExercise counts sets in the session that belong to the
	// exercise identified by exerciseID (when known) or by name. With an id,
	// free-text sets carrying the same name are counted too.
	CountSetsForExercise(ctx context.Context, sessionID uuid.UUID, exerciseID *uuid.UUID, name string) (int64, error)
	ListSets(ctx context.Context, sessionID uuid.UUID) ([]domain.WorkoutSet, error)

	// ListCompletedSessions returns completed sessions newest first with sets
	// and split day preloaded. limit <= 0 means no limit.
	ListCompletedSessions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WorkoutSession, error)
	// ListRecentSessionsWithExercise returns up to limit completed sessions
	// containing the exercise, newest first, preloading only that
	// exercise's sets.
	ListRecentSessionsWithExercise(ctx context.Context, userID uuid.UUID, exercise *domain.Exercise, limit int) ([]domain.WorkoutSession, error)
}

type Repositories struct {
	User       UserRepository
	Split      SplitRepository
	Assignment AssignmentRepository
	Exercise   ExerciseRepository
	Workout    WorkoutRepository
}

// Transactor runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos *Repositories) error) error
}
