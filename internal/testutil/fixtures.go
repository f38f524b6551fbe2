package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
	mobile   string
}

// NewUserBuilder creates a new UserBuilder with random values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    strings.ToLower(fmt.Sprintf("%s_%s", uuid.New().String()[:8], gofakeit.Email())),
		password: gofakeit.Password(true, true, true, false, false, 12),
		name:     gofakeit.Name(),
		mobile:   gofakeit.Phone(),
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		Mobile:       b.mobile,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate signs the user up through the API, logs in and
// returns the user with an access token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	signup := map[string]string{
		"email":    b.email,
		"password": b.password,
		"name":     b.name,
		"mobile":   b.mobile,
	}
	resp := postJSON(t, ts.APIURL("/auth/signup"), signup)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected signup status code: %d", resp.StatusCode)
	}

	var created struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}

	login := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
		"email":    b.email,
		"password": b.password,
	})
	defer login.Body.Close()
	if login.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", login.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(login.Body).Decode(&token); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	userID, _ := uuid.Parse(created.ID)
	return &domain.User{ID: userID, Email: created.Email, Name: created.Name}, token.AccessToken
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("request to %s failed: %v", url, err)
	}
	return resp
}

// SplitBuilder creates test splits with a builder pattern
type SplitBuilder struct {
	owner    *domain.User
	name     string
	template bool
	days     []string
}

// NewSplitBuilder creates a SplitBuilder with a random name and three days
func NewSplitBuilder() *SplitBuilder {
	return &SplitBuilder{
		name: gofakeit.AppName(),
		days: []string{"Push", "Pull", "Legs"},
	}
}

// WithOwner sets the owning user
func (b *SplitBuilder) WithOwner(user *domain.User) *SplitBuilder {
	b.owner = user
	return b
}

// WithName sets the split name
func (b *SplitBuilder) WithName(name string) *SplitBuilder {
	b.name = name
	return b
}

// WithDays replaces the day names; positions follow slice order
func (b *SplitBuilder) WithDays(days ...string) *SplitBuilder {
	b.days = days
	return b
}

// AsTemplate marks the split as an ownerless template
func (b *SplitBuilder) AsTemplate() *SplitBuilder {
	b.template = true
	b.owner = nil
	return b
}

// Build creates the split and its days in the database
func (b *SplitBuilder) Build(t *testing.T, db *gorm.DB) *domain.Split {
	t.Helper()

	split := &domain.Split{
		ID:         uuid.New(),
		Name:       b.name,
		IsTemplate: b.template,
		CreatedAt:  time.Now().UTC(),
	}
	if !b.template {
		if b.owner == nil {
			b.owner, _ = NewUserBuilder().Build(t, db)
		}
		split.OwnerID = &b.owner.ID
	}
	for i, name := range b.days {
		muscles := gofakeit.Word()
		split.Days = append(split.Days, domain.SplitDay{
			ID:           uuid.New(),
			SplitID:      split.ID,
			Position:     i,
			Name:         name,
			MuscleGroups: &muscles,
		})
	}

	if err := db.Create(split).Error; err != nil {
		t.Fatalf("failed to create split: %v", err)
	}

	return split
}

// Assign points user at split with the cursor at position
func Assign(t *testing.T, db *gorm.DB, user *domain.User, split *domain.Split, position int) *domain.Assignment {
	t.Helper()

	assignment := &domain.Assignment{
		ID:              uuid.New(),
		UserID:          user.ID,
		SplitID:         split.ID,
		CurrentPosition: position,
	}
	if err := db.Omit("Split").Create(assignment).Error; err != nil {
		t.Fatalf("failed to create assignment: %v", err)
	}
	return assignment
}

// ExerciseBuilder creates test exercises
type ExerciseBuilder struct {
	name           string
	muscleGroup    string
	specificMuscle string
	createdBy      *domain.User
}

// NewExerciseBuilder creates a default catalog exercise with a random name
func NewExerciseBuilder() *ExerciseBuilder {
	return &ExerciseBuilder{
		name:           fmt.Sprintf("%s %s", gofakeit.Adjective(), gofakeit.Noun()),
		muscleGroup:    "Chest",
		specificMuscle: "Middle Chest",
	}
}

// WithName sets the exercise name
func (b *ExerciseBuilder) WithName(name string) *ExerciseBuilder {
	b.name = name
	return b
}

// WithMuscles sets the muscle group and specific muscle
func (b *ExerciseBuilder) WithMuscles(group, specific string) *ExerciseBuilder {
	b.muscleGroup = group
	b.specificMuscle = specific
	return b
}

// CustomFor makes the exercise private to user
func (b *ExerciseBuilder) CustomFor(user *domain.User) *ExerciseBuilder {
	b.createdBy = user
	return b
}

// Build creates the exercise in the database
func (b *ExerciseBuilder) Build(t *testing.T, db *gorm.DB) *domain.Exercise {
	t.Helper()

	exercise := &domain.Exercise{
		ID:             uuid.New(),
		Name:           b.name,
		MuscleGroup:    b.muscleGroup,
		SpecificMuscle: b.specificMuscle,
		IsDefault:      b.createdBy == nil,
		CreatedAt:      time.Now().UTC(),
	}
	if b.createdBy != nil {
		exercise.CreatedBy = &b.createdBy.ID
	}

	if err := db.Create(exercise).Error; err != nil {
		t.Fatalf("failed to create exercise: %v", err)
	}

	return exercise
}

// CompletedSession inserts a finished session with the given sets at endedAt.
// Each set is {reps, weight} for exercise.
func CompletedSession(t *testing.T, db *gorm.DB, assignment *domain.Assignment, exercise *domain.Exercise, endedAt time.Time, sets ...[2]float64) *domain.WorkoutSession {
	t.Helper()

	started := endedAt.Add(-time.Hour)
	session := &domain.WorkoutSession{
		ID:           uuid.New(),
		UserID:       assignment.UserID,
		AssignmentID: assignment.ID,
		StartedAt:    started,
		EndedAt:      &endedAt,
		Completed:    true,
	}
	for i, s := range sets {
		session.Sets = append(session.Sets, domain.WorkoutSet{
			ID:           uuid.New(),
			SessionID:    session.ID,
			ExerciseID:   &exercise.ID,
			ExerciseName: exercise.Name,
			SetNumber:    i + 1,
			Reps:         int(s[0]),
			Weight:       s[1],
			CreatedAt:    started,
		})
	}

	if err := db.Omit("SplitDay").Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// Do sends an authenticated request and returns the response
func Do(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(CreateAuthenticatedRequest(t, method, url, body, token))
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
