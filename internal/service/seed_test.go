package service_test

import (
	"context"
	"testing"

	"github.com/shubham56-h/Trackify/internal/domain"
	fixtures "github.com/shubham56-h/Trackify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_IsIdempotent(t *testing.T) {
	f := newWorkoutFixture(t)
	ctx := context.Background()

	first, err := f.services.Seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, first.TemplatesCreated)
	assert.Zero(t, first.TemplatesSkipped)
	assert.Greater(t, first.ExercisesCreated, 0)

	second, err := f.services.Seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.TemplatesCreated)
	assert.Equal(t, 6, second.TemplatesSkipped)
	assert.Zero(t, second.ExercisesCreated)

	var defaults int64
	require.NoError(t, f.db.DB.Model(&domain.Exercise{}).Where("is_default = ?", true).Count(&defaults).Error)
	assert.Equal(t, int64(first.ExercisesCreated), defaults)

	templates, err := f.services.Split.Templates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 6)
	for _, tmpl := range templates {
		assert.True(t, tmpl.IsTemplate)
		assert.Nil(t, tmpl.OwnerID)
		assert.NotEmpty(t, tmpl.Days)
		for i, day := range tmpl.Days {
			assert.Equal(t, i, day.Position)
		}
	}
}

func TestSeeder_TemplatesAreUsable(t *testing.T) {
	f := newWorkoutFixture(t)
	ctx := context.Background()

	_, err := f.services.Seeder.Seed(ctx)
	require.NoError(t, err)

	templates, err := f.services.Split.Templates(ctx)
	require.NoError(t, err)

	user, _ := fixtures.NewUserBuilder().Build(t, f.db.DB)
	_, err = f.services.Rotation.Assign(ctx, user.ID, templates[0].ID)
	require.NoError(t, err)

	started, err := f.services.Workout.Start(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, templates[0].Days[0].Name, started.DayName)

	list, err := f.services.Exercise.List(ctx, user.ID, "chest", "upper_chest")
	require.NoError(t, err)
	assert.NotEmpty(t, list)
}
