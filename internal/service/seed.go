package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/repository"
	log "github.com/sirupsen/logrus"
)

// Seeder installs the template splits and the default exercise catalog.
// Running it again only adds what is missing.
type Seeder struct {
	splitRepo    repository.SplitRepository
	exerciseRepo repository.ExerciseRepository
	exercises    *ExerciseService
}

func NewSeeder(splitRepo repository.SplitRepository, exerciseRepo repository.ExerciseRepository, exercises *ExerciseService) *Seeder {
	return &Seeder{
		splitRepo:    splitRepo,
		exerciseRepo: exerciseRepo,
		exercises:    exercises,
	}
}

type SeedReport struct {
	TemplatesCreated int
	TemplatesSkipped int
	ExercisesCreated int
}

func (s *Seeder) Seed(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{}
	if err := s.seedTemplates(ctx, report); err != nil {
		return nil, err
	}
	if err := s.seedExercises(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Seeder) seedTemplates(ctx context.Context, report *SeedReport) error {
	existing, err := s.splitRepo.ListTemplates(ctx)
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}
	names := make(map[string]bool, len(existing))
	for _, t := range existing {
		names[t.Name] = true
	}

	for _, t := range templateSplits {
		if names[t.name] {
			log.Debugf("template split %q already exists, skipping", t.name)
			report.TemplatesSkipped++
			continue
		}
		if err := s.splitRepo.Create(ctx, buildSplit(nil, t.name, true, t.days)); err != nil {
			return fmt.Errorf("creating template %q: %w", t.name, err)
		}
		log.Infof("created template split %q", t.name)
		report.TemplatesCreated++
	}
	return nil
}

// seedExercises runs only against an empty default catalog.
func (s *Seeder) seedExercises(ctx context.Context, report *SeedReport) error {
	count, err := s.exerciseRepo.CountDefaults(ctx)
	if err != nil {
		return fmt.Errorf("counting default exercises: %w", err)
	}
	if count > 0 {
		log.Infof("database already has %d default exercises, skipping", count)
		return nil
	}

	now := time.Now().UTC()
	var exercises []*domain.Exercise
	for _, group := range defaultExercises {
		for _, muscle := range group.muscles {
			for _, name := range muscle.exercises {
				exercises = append(exercises, &domain.Exercise{
					ID:             uuid.New(),
					Name:           name,
					MuscleGroup:    group.group,
					SpecificMuscle: muscle.muscle,
					IsDefault:      true,
					CreatedAt:      now,
				})
			}
		}
	}

	if err := s.exerciseRepo.CreateMany(ctx, exercises); err != nil {
		return fmt.Errorf("creating default exercises: %w", err)
	}
	s.exercises.InvalidateDefaults()

	log.Infof("seeded %d default exercises", len(exercises))
	report.ExercisesCreated = len(exercises)
	return nil
}
