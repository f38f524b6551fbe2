package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/repository"
	log "github.com/sirupsen/logrus"
)

const defaultsCacheExpire = 10 * 60 // seconds

// ExerciseService serves the exercise catalog. The shared default
// exercises change only on seeding, so they are cached per muscle.
type ExerciseService struct {
	repo  repository.ExerciseRepository
	cache *freecache.Cache
}

func NewExerciseService(repo repository.ExerciseRepository, cache *freecache.Cache) *ExerciseService {
	return &ExerciseService{
		repo:  repo,
		cache: cache,
	}
}

type CreateExerciseInput struct {
	Name           string
	MuscleGroup    string
	SpecificMuscle string
}

// List returns defaults first, then the user's own exercises, each
// alphabetical.
func (s *ExerciseService) List(ctx context.Context, userID uuid.UUID, muscleGroup, specificMuscle string) ([]*domain.Exercise, error) {
	defaults, err := s.defaults(ctx, muscleGroup, specificMuscle)
	if err != nil {
		return nil, err
	}

	custom, err := s.repo.ListCustom(ctx, userID, muscleGroup, specificMuscle)
	if err != nil {
		return nil, fmt.Errorf("listing custom exercises: %w", err)
	}

	exercises := make([]*domain.Exercise, 0, len(defaults)+len(custom))
	exercises = append(exercises, defaults...)
	exercises = append(exercises, custom...)
	return exercises, nil
}

func (s *ExerciseService) defaults(ctx context.Context, muscleGroup, specificMuscle string) ([]*domain.Exercise, error) {
	cacheKey := []byte(fmt.Sprintf("defaults::%s::%s", muscleGroup, specificMuscle))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var exercises []*domain.Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		}
		log.Errorf("failed to unmarshal cached exercises for %s/%s: %s", muscleGroup, specificMuscle, err)
	}

	exercises, err := s.repo.ListDefaults(ctx, muscleGroup, specificMuscle)
	if err != nil {
		return nil, fmt.Errorf("listing default exercises: %w", err)
	}

	if data, err := json.Marshal(exercises); err == nil {
		if err := s.cache.Set(cacheKey, data, defaultsCacheExpire); err != nil {
			log.Errorf("failed to cache exercises for %s/%s: %s", muscleGroup, specificMuscle, err)
		}
	}
	return exercises, nil
}

// Create adds a custom exercise visible only to userID.
func (s *ExerciseService) Create(ctx context.Context, userID uuid.UUID, input CreateExerciseInput) (*domain.Exercise, error) {
	name := strings.TrimSpace(input.Name)
	muscleGroup := strings.TrimSpace(input.MuscleGroup)
	specificMuscle := strings.TrimSpace(input.SpecificMuscle)
	if name == "" || muscleGroup == "" || specificMuscle == "" {
		return nil, domain.NewValidationError("name, muscle_group, and specific_muscle required")
	}

	exercise := &domain.Exercise{
		ID:             uuid.New(),
		Name:           name,
		MuscleGroup:    muscleGroup,
		SpecificMuscle: specificMuscle,
		IsDefault:      false,
		CreatedBy:      &userID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("creating exercise: %w", err)
	}
	return exercise, nil
}

// InvalidateDefaults drops every cached default list.
func (s *ExerciseService) InvalidateDefaults() {
	s.cache.Clear()
}
