package domain

import (
	"time"

	"github.com/google/uuid"
)

// Split is an ordered, repeating multi-day training program. Templates have
// no owner and can be assigned by anyone.
type Split struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    *uuid.UUID `json:"owner_id" gorm:"type:uuid"`
	Name       string     `json:"name" gorm:"not null"`
	IsTemplate bool       `json:"is_template" gorm:"not null;default:false"`
	CreatedAt  time.Time  `json:"created_at"`

	Days []SplitDay `json:"days" gorm:"foreignKey:SplitID"`
}

// SplitDay is one position within a split. Positions are unique per split
// and are expected to form a dense 0-based sequence.
type SplitDay struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SplitID      uuid.UUID `json:"split_id" gorm:"type:uuid;not null"`
	Position     int       `json:"position" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	MuscleGroups *string   `json:"muscle_groups"`
}

// VisibleTo reports whether userID may view or assign the split.
func (s *Split) VisibleTo(userID uuid.UUID) bool {
	if s.IsTemplate {
		return true
	}
	return s.OwnerID != nil && *s.OwnerID == userID
}

// OwnedBy reports whether userID owns the split. Templates are owned by nobody.
func (s *Split) OwnedBy(userID uuid.UUID) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}
