package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

// Split catalog errors
var (
	ErrSplitNotFound    = errors.New("split not found")
	ErrSplitDayNotFound = errors.New("split day not found")
	ErrSplitInUse       = errors.New("split is assigned and cannot be deleted")
)

// Rotation and session lifecycle errors
var (
	ErrNoSplitAssigned  = errors.New("no split assigned")
	ErrEmptySplit       = errors.New("split has no days configured")
	ErrNoActiveSession  = errors.New("no active workout session")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ValidationError reports a missing or malformed request field.
// No state is changed when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
