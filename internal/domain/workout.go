package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one occurrence of performing a split day. A user has at
// most one session with Completed == false at a time.
type WorkoutSession struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`
	AssignmentID uuid.UUID  `json:"assignment_id" gorm:"type:uuid;not null"`
	SplitDayID   *uuid.UUID `json:"split_day_id" gorm:"type:uuid"`
	StartedAt    time.Time  `json:"started_at" gorm:"not null"`
	EndedAt      *time.Time `json:"ended_at"`
	Completed    bool       `json:"completed" gorm:"not null;default:false"`

	SplitDay *SplitDay   `json:"split_day,omitempty" gorm:"foreignKey:SplitDayID"`
	Sets     []WorkoutSet `json:"sets,omitempty" gorm:"foreignKey:SessionID"`
}

// Complete marks the session finished at now.
func (s *WorkoutSession) Complete(now time.Time) {
	s.Completed = true
	s.EndedAt = &now
}

// DayName returns the split day's name, or "" when the day has since been deleted.
func (s *WorkoutSession) DayName() string {
	if s.SplitDay == nil {
		return ""
	}
	return s.SplitDay.Name
}

// DurationMinutes is whole minutes from start to end, or to now while active.
func (s *WorkoutSession) DurationMinutes(now time.Time) int {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	d := end.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}

// WorkoutSet is one logged set. Sets are immutable and go away only with
// their session.
type WorkoutSet struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID    uuid.UUID  `json:"session_id" gorm:"type:uuid;not null"`
	ExerciseID   *uuid.UUID `json:"exercise_id" gorm:"type:uuid"`
	ExerciseName string     `json:"exercise_name" gorm:"not null"`
	SetNumber    int        `json:"set_number" gorm:"not null"`
	Reps         int        `json:"reps" gorm:"not null"`
	Weight       float64    `json:"weight" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Volume is reps × weight.
func (s *WorkoutSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// ExerciseKey groups this set with others of the same exercise.
func (s *WorkoutSet) ExerciseKey() string {
	return exerciseKey(s.ExerciseID, s.ExerciseName)
}
