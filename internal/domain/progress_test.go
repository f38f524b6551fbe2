package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func completedSession(started time.Time, sets ...domain.WorkoutSet) domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:        uuid.New(),
		StartedAt: started,
		Completed: true,
		Sets:      sets,
	}
}

func set(name string, reps int, weight float64) domain.WorkoutSet {
	return domain.WorkoutSet{ID: uuid.New(), ExerciseName: name, Reps: reps, Weight: weight}
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "no workouts",
			dates:       nil,
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name:        "today, yesterday, two days ago and five days ago",
			dates:       []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(5)},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "most recent is yesterday",
			dates:       []time.Time{daysAgo(1), daysAgo(2)},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "most recent is two days ago breaks the current streak",
			dates:       []time.Time{daysAgo(2), daysAgo(3), daysAgo(4)},
			wantCurrent: 0,
			wantLongest: 3,
		},
		{
			name:        "longest run is in the past",
			dates:       []time.Time{daysAgo(0), daysAgo(10), daysAgo(11), daysAgo(12), daysAgo(13)},
			wantCurrent: 1,
			wantLongest: 4,
		},
		{
			name:        "across a month boundary",
			dates:       []time.Time{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
			wantCurrent: 0,
			wantLongest: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := domain.Streaks(tt.dates, today)
			assert.Equal(t, tt.wantCurrent, current)
			assert.Equal(t, tt.wantLongest, longest)
		})
	}
}

func TestWorkoutDates_DistinctAndDescending(t *testing.T) {
	sessions := []domain.WorkoutSession{
		completedSession(daysAgo(2)),
		completedSession(daysAgo(0).Add(2 * time.Hour)),
		completedSession(daysAgo(0)),
		{StartedAt: daysAgo(1), Completed: false},
	}

	dates := domain.WorkoutDates(sessions)

	assert.Equal(t, []time.Time{domain.CalendarDay(daysAgo(0)), domain.CalendarDay(daysAgo(2))}, dates)
}

func TestBestLifts_MaximaAreIndependent(t *testing.T) {
	sessions := []domain.WorkoutSession{
		completedSession(daysAgo(3), set("Squat", 5, 140), set("Squat", 12, 80)),
		completedSession(daysAgo(1), set("squat", 8, 120), set("Bench Press", 5, 100)),
		{StartedAt: daysAgo(0), Completed: false, Sets: []domain.WorkoutSet{set("Squat", 1, 500)}},
	}

	lifts := domain.BestLifts(sessions)

	assert.Equal(t, []domain.BestLift{
		{Exercise: "Bench Press", MaxWeight: 100, MaxReps: 5},
		{Exercise: "Squat", MaxWeight: 140, MaxReps: 12},
	}, lifts)
}

func TestVolumeByDay_MatchesTotalSetVolume(t *testing.T) {
	sessions := []domain.WorkoutSession{
		completedSession(daysAgo(1), set("Row", 10, 50), set("Row", 8, 60)),
		completedSession(daysAgo(1).Add(3*time.Hour), set("Curl", 12, 15)),
		completedSession(daysAgo(4), set("Squat", 5, 100)),
		completedSession(daysAgo(2)),
	}

	volume := domain.VolumeByDay(sessions)

	assert.Equal(t, []domain.DailyVolume{
		{Date: domain.CalendarDay(daysAgo(4)).Format(domain.DateLayout), Volume: 500},
		{Date: domain.CalendarDay(daysAgo(1)).Format(domain.DateLayout), Volume: 500 + 480 + 180},
	}, volume)

	var sum, want float64
	for _, v := range volume {
		sum += v.Volume
	}
	for _, s := range sessions {
		for _, st := range s.Sets {
			want += st.Volume()
		}
	}
	assert.InDelta(t, want, sum, 0.0001)
}

func TestHeatmap(t *testing.T) {
	sessions := []domain.WorkoutSession{
		completedSession(daysAgo(1)),
		completedSession(daysAgo(1).Add(time.Hour)),
		completedSession(daysAgo(3)),
		{StartedAt: daysAgo(0)},
	}

	heatmap := domain.Heatmap(sessions)

	assert.Equal(t, []domain.DailyCount{
		{Date: domain.CalendarDay(daysAgo(3)).Format(domain.DateLayout), Count: 1},
		{Date: domain.CalendarDay(daysAgo(1)).Format(domain.DateLayout), Count: 2},
	}, heatmap)
}
