package domain

import (
	"sort"
	"strings"
	"time"
)

// BestLift carries the heaviest weight and the most reps ever logged for an
// exercise. The two maxima are independent and may come from different sets.
type BestLift struct {
	Exercise  string  `json:"exercise"`
	MaxWeight float64 `json:"max_weight"`
	MaxReps   int     `json:"max_reps"`
}

type DailyVolume struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BestLifts groups every set of the completed sessions by exercise name.
func BestLifts(sessions []WorkoutSession) []BestLift {
	byName := make(map[string]*BestLift)
	for _, sess := range completedOnly(sessions) {
		for _, set := range sess.Sets {
			key := strings.ToLower(strings.TrimSpace(set.ExerciseName))
			lift, ok := byName[key]
			if !ok {
				lift = &BestLift{Exercise: set.ExerciseName}
				byName[key] = lift
			}
			if set.Weight > lift.MaxWeight {
				lift.MaxWeight = set.Weight
			}
			if set.Reps > lift.MaxReps {
				lift.MaxReps = set.Reps
			}
		}
	}

	result := make([]BestLift, 0, len(byName))
	for _, lift := range byName {
		result = append(result, *lift)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Exercise) < strings.ToLower(result[j].Exercise)
	})
	return result
}

// VolumeByDay sums reps × weight per calendar date of session start,
// ascending. Sessions without sets contribute no entry.
func VolumeByDay(sessions []WorkoutSession) []DailyVolume {
	byDay := make(map[time.Time]float64)
	for _, sess := range completedOnly(sessions) {
		if len(sess.Sets) == 0 {
			continue
		}
		day := CalendarDay(sess.StartedAt)
		for i := range sess.Sets {
			byDay[day] += sess.Sets[i].Volume()
		}
	}

	days := sortedDays(byDay)
	result := make([]DailyVolume, 0, len(days))
	for _, d := range days {
		result = append(result, DailyVolume{Date: d.Format(DateLayout), Volume: byDay[d]})
	}
	return result
}

// Heatmap counts completed sessions per calendar date of session start, ascending.
func Heatmap(sessions []WorkoutSession) []DailyCount {
	byDay := make(map[time.Time]int)
	for _, sess := range completedOnly(sessions) {
		byDay[CalendarDay(sess.StartedAt)]++
	}

	days := sortedDays(byDay)
	result := make([]DailyCount, 0, len(days))
	for _, d := range days {
		result = append(result, DailyCount{Date: d.Format(DateLayout), Count: byDay[d]})
	}
	return result
}

// WorkoutDates returns the distinct calendar dates with a completed session,
// most recent first.
func WorkoutDates(sessions []WorkoutSession) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, sess := range completedOnly(sessions) {
		seen[CalendarDay(sess.StartedAt)] = struct{}{}
	}
	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// Streaks computes the current and longest runs of consecutive days from
// distinct dates sorted most recent first. The current streak only counts
// when the most recent date is today or yesterday.
func Streaks(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	today = CalendarDay(today)
	latest := CalendarDay(dates[0])
	if latest.Equal(today) || latest.Equal(today.AddDate(0, 0, -1)) {
		current = 1
		for i := 0; i < len(dates)-1; i++ {
			if !consecutiveDays(dates[i], dates[i+1]) {
				break
			}
			current++
		}
	}

	run := 1
	longest = 1
	for i := 0; i < len(dates)-1; i++ {
		if consecutiveDays(dates[i], dates[i+1]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}

func completedOnly(sessions []WorkoutSession) []WorkoutSession {
	out := make([]WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Completed {
			out = append(out, s)
		}
	}
	return out
}

func sortedDays[V any](m map[time.Time]V) []time.Time {
	days := make([]time.Time, 0, len(m))
	for d := range m {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
