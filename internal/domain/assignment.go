package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Assignment binds a user to one split and carries the rotation cursor.
// There is at most one per user. CurrentPosition is only mutated through
// Reassign, CurrentDay and Advance.
type Assignment struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID       `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	SplitID         uuid.UUID       `json:"split_id" gorm:"type:uuid;not null"`
	CurrentPosition int             `json:"current_position" gorm:"not null;default:0"`
	LastCompletedAt *datatypes.Date `json:"last_completed_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Split *Split `json:"split,omitempty" gorm:"foreignKey:SplitID"`
}

func (Assignment) TableName() string {
	return "user_split_assignments"
}

// Reassign points the assignment at another split and discards rotation
// progress in the old one.
func (a *Assignment) Reassign(splitID uuid.UUID) {
	a.SplitID = splitID
	a.CurrentPosition = 0
	a.Split = nil
}

// CurrentDay resolves the cursor against days. When no day sits at the
// cursor, the lowest-position day is returned and the cursor is reset to 0;
// repaired reports whether the cursor changed and needs persisting.
func (a *Assignment) CurrentDay(days []SplitDay) (day *SplitDay, repaired bool, err error) {
	if len(days) == 0 {
		return nil, false, ErrEmptySplit
	}

	lowest := 0
	for i := range days {
		if days[i].Position == a.CurrentPosition {
			return &days[i], false, nil
		}
		if days[i].Position < days[lowest].Position {
			lowest = i
		}
	}

	repaired = a.CurrentPosition != 0
	a.CurrentPosition = 0
	return &days[lowest], repaired, nil
}

// DayAt returns the day sitting at the cursor, or nil when the cursor points
// at a gap. The cursor is left untouched; CurrentDay repairs it later.
func (a *Assignment) DayAt(days []SplitDay) *SplitDay {
	for i := range days {
		if days[i].Position == a.CurrentPosition {
			return &days[i]
		}
	}
	return nil
}

// Advance moves the cursor one step around the split and stamps the
// completion date.
func (a *Assignment) Advance(dayCount int, now time.Time) error {
	next, err := NextPosition(a.CurrentPosition, dayCount)
	if err != nil {
		return err
	}
	a.CurrentPosition = next
	completed := datatypes.Date(CalendarDay(now))
	a.LastCompletedAt = &completed
	return nil
}

// NextPosition is circular arithmetic over a split of dayCount days.
func NextPosition(position, dayCount int) (int, error) {
	if dayCount <= 0 {
		return 0, ErrEmptySplit
	}
	next := (position + 1) % dayCount
	if next < 0 {
		next += dayCount
	}
	return next, nil
}
