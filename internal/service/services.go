package service

import (
	"errors"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/config"
	"github.com/shubham56-h/Trackify/internal/metrics"
	"github.com/shubham56-h/Trackify/internal/repository"
	"gorm.io/gorm"
)

// EventPublisher receives workout lifecycle events for a user.
type EventPublisher interface {
	Publish(userID uuid.UUID, eventType string, payload interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(uuid.UUID, string, interface{}) {}

type Services struct {
	Auth     *AuthService
	Split    *SplitService
	Rotation *RotationService
	Workout  *WorkoutService
	Exercise *ExerciseService
	Progress *ProgressService
	Seeder   *Seeder
}

// NewServices wires every service. publisher and m may be nil.
func NewServices(repos *repository.Repositories, tx repository.Transactor, cfg *config.Config, publisher EventPublisher, m *metrics.Manager) *Services {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	megabyte := 1024 * 1024
	exercises := NewExerciseService(repos.Exercise, freecache.NewCache(cfg.ExerciseCacheMB*megabyte))

	return &Services{
		Auth:     NewAuthService(repos.User, cfg, m),
		Split:    NewSplitService(repos.Split, tx),
		Rotation: NewRotationService(repos.Workout, tx),
		Workout:  NewWorkoutService(repos, tx, publisher, m),
		Exercise: exercises,
		Progress: NewProgressService(repos.Workout),
		Seeder:   NewSeeder(repos.Split, repos.Exercise, exercises),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// retryOnConflict runs fn again once when it loses a uniqueness race. The
// second attempt observes the winner's row.
func retryOnConflict(fn func() error) error {
	err := fn()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = fn()
	}
	return err
}
