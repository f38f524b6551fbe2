package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog entry. Defaults are shared (CreatedBy is nil);
// custom exercises are private to their creator.
type Exercise struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string     `json:"name" gorm:"not null"`
	MuscleGroup    string     `json:"muscle_group" gorm:"not null"`
	SpecificMuscle string     `json:"specific_muscle" gorm:"not null"`
	IsDefault      bool       `json:"is_default" gorm:"not null;default:false"`
	CreatedBy      *uuid.UUID `json:"created_by" gorm:"type:uuid"`
	CreatedAt      time.Time  `json:"created_at"`
}

// VisibleTo reports whether the exercise shows up in userID's catalog.
func (e *Exercise) VisibleTo(userID uuid.UUID) bool {
	return e.IsDefault || (e.CreatedBy != nil && *e.CreatedBy == userID)
}

// ExerciseRef names an exercise either by catalog id or, for older clients,
// by free-text name. Exactly one form is set.
type ExerciseRef struct {
	id   uuid.UUID
	name string
	byID bool
}

func ExerciseRefByID(id uuid.UUID) ExerciseRef {
	return ExerciseRef{id: id, byID: true}
}

func ExerciseRefByName(name string) ExerciseRef {
	return ExerciseRef{name: strings.TrimSpace(name)}
}

func (r ExerciseRef) IsByID() bool { return r.byID }

func (r ExerciseRef) ID() uuid.UUID { return r.id }

func (r ExerciseRef) Name() string { return r.name }

// ResolvedExercise is the canonical form an ExerciseRef takes once it has
// been checked against the catalog. ID is nil for free-text names that match
// nothing the user can see.
type ResolvedExercise struct {
	ID   *uuid.UUID
	Name string
}

// Key groups sets of the same exercise regardless of how they were logged.
func (r ResolvedExercise) Key() string {
	return exerciseKey(r.ID, r.Name)
}

func exerciseKey(id *uuid.UUID, name string) string {
	if id != nil {
		return "id:" + id.String()
	}
	return "name:" + strings.ToLower(strings.TrimSpace(name))
}
