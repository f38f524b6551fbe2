package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/repository"
	"github.com/shubham56-h/Trackify/internal/repository/postgres"
	"github.com/shubham56-h/Trackify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func activeSession(assignment *domain.Assignment) *domain.WorkoutSession {
	return &domain.WorkoutSession{
		ID:           uuid.New(),
		UserID:       assignment.UserID,
		AssignmentID: assignment.ID,
		StartedAt:    time.Now().UTC(),
	}
}

func TestWorkoutRepository_OneActiveSessionPerUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewWorkoutRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	split := testutil.NewSplitBuilder().WithOwner(user).Build(t, testDB.DB)
	assignment := testutil.Assign(t, testDB.DB, user, split, 0)

	first := activeSession(assignment)
	require.NoError(t, repo.CreateSession(ctx, first))

	err := repo.CreateSession(ctx, activeSession(assignment))
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	got, err := repo.GetActiveSession(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	// Completing the session frees the slot.
	first.Complete(time.Now().UTC())
	require.NoError(t, repo.UpdateSession(ctx, first))
	require.NoError(t, repo.CreateSession(ctx, activeSession(assignment)))
}

func TestWorkoutRepository_CountSetsForExercise(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewWorkoutRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	split := testutil.NewSplitBuilder().WithOwner(user).Build(t, testDB.DB)
	assignment := testutil.Assign(t, testDB.DB, user, split, 0)
	bench := testutil.NewExerciseBuilder().WithName("Bench").Build(t, testDB.DB)
	sled := testutil.NewExerciseBuilder().WithName("Sled Push").CustomFor(user).Build(t, testDB.DB)

	session := activeSession(assignment)
	require.NoError(t, repo.CreateSession(ctx, session))

	add := func(exerciseID *uuid.UUID, name string, number int) {
		require.NoError(t, repo.CreateSet(ctx, &domain.WorkoutSet{
			ID:           uuid.New(),
			SessionID:    session.ID,
			ExerciseID:   exerciseID,
			ExerciseName: name,
			SetNumber:    number,
			Reps:         5,
			Weight:       50,
		}))
	}
	add(&bench.ID, "Bench", 1)
	add(nil, "Farmer Carry", 1)
	add(&bench.ID, "Bench", 2)
	add(nil, "farmer carry", 2)
	add(nil, "sled push", 1)
	add(&sled.ID, "Sled Push", 2)

	tests := []struct {
		name       string
		exerciseID *uuid.UUID
		exercise   string
		want       int64
	}{
		{name: "by id", exerciseID: &bench.ID, exercise: "Bench", want: 2},
		{name: "by id includes earlier free text", exerciseID: &sled.ID, exercise: "Sled Push", want: 2},
		{name: "free text is case-insensitive", exercise: "FARMER CARRY", want: 2},
		{name: "free text ignores catalog rows", exercise: "Bench", want: 0},
		{name: "unknown", exercise: "Plank", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CountSetsForExercise(ctx, session.ID, tt.exerciseID, tt.exercise)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	sets, err := repo.ListSets(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, sets, 6)
}

func TestWorkoutRepository_CompletedHistory(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewWorkoutRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	split := testutil.NewSplitBuilder().WithOwner(user).Build(t, testDB.DB)
	assignment := testutil.Assign(t, testDB.DB, user, split, 0)
	squat := testutil.NewExerciseBuilder().WithName("Squat").Build(t, testDB.DB)
	row := testutil.NewExerciseBuilder().WithName("Row").Build(t, testDB.DB)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	oldest := testutil.CompletedSession(t, testDB.DB, assignment, squat, base, [2]float64{5, 100})
	testutil.CompletedSession(t, testDB.DB, assignment, row, base.AddDate(0, 0, 1), [2]float64{10, 60})
	middle := testutil.CompletedSession(t, testDB.DB, assignment, squat, base.AddDate(0, 0, 2), [2]float64{5, 105})
	newest := testutil.CompletedSession(t, testDB.DB, assignment, squat, base.AddDate(0, 0, 3), [2]float64{5, 110}, [2]float64{3, 120})
	newer := testutil.CompletedSession(t, testDB.DB, assignment, squat, base.AddDate(0, 0, 4), [2]float64{5, 80})
	require.NoError(t, repo.CreateSession(ctx, activeSession(assignment)))

	t.Run("completed sessions newest first", func(t *testing.T) {
		all, err := repo.ListCompletedSessions(ctx, user.ID, 0)
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, newer.ID, all[0].ID)
		assert.Equal(t, oldest.ID, all[4].ID)

		limited, err := repo.ListCompletedSessions(ctx, user.ID, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("recent sessions with exercise", func(t *testing.T) {
		sessions, err := repo.ListRecentSessionsWithExercise(ctx, user.ID, squat, 3)
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, newer.ID, sessions[0].ID)
		assert.Equal(t, newest.ID, sessions[1].ID)
		assert.Equal(t, middle.ID, sessions[2].ID)
		assert.Len(t, sessions[1].Sets, 2)
	})

	t.Run("legacy name-only sets match", func(t *testing.T) {
		legacy := testutil.CompletedSession(t, testDB.DB, assignment, row, base.AddDate(0, 0, 5), [2]float64{8, 70})
		require.NoError(t, testDB.DB.Model(&domain.WorkoutSet{}).
			Where("session_id = ?", legacy.ID).
			Updates(map[string]interface{}{"exercise_id": nil, "exercise_name": "row"}).Error)

		sessions, err := repo.ListRecentSessionsWithExercise(ctx, user.ID, row, 3)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, legacy.ID, sessions[0].ID)
	})
}

func TestWorkoutRepository_DeleteCascadesSets(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewWorkoutRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	split := testutil.NewSplitBuilder().WithOwner(user).Build(t, testDB.DB)
	assignment := testutil.Assign(t, testDB.DB, user, split, 0)

	session := activeSession(assignment)
	require.NoError(t, repo.CreateSession(ctx, session))
	require.NoError(t, repo.CreateSet(ctx, &domain.WorkoutSet{
		ID: uuid.New(), SessionID: session.ID, ExerciseName: "Curl", SetNumber: 1, Reps: 10, Weight: 15,
	}))

	require.NoError(t, repo.DeleteSession(ctx, session.ID))
	sets, err := repo.ListSets(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.ErrorIs(t, repo.DeleteSession(ctx, session.ID), gorm.ErrRecordNotFound)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	tx := postgres.NewTransactor(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	boom := errors.New("boom")

	err := tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		split := &domain.Split{ID: uuid.New(), OwnerID: &owner.ID, Name: "Doomed",
			Days: []domain.SplitDay{{ID: uuid.New(), Position: 0, Name: "A"}}}
		if err := repos.Split.Create(ctx, split); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	splits, err := postgres.NewSplitRepository(testDB.DB).ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, splits)
}
