package domain

import "github.com/google/uuid"

type SetLine struct {
	SetNumber int     `json:"set_number"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Volume    float64 `json:"volume"`
}

// ExerciseTotals aggregates one exercise's sets within a session.
type ExerciseTotals struct {
	ExerciseID  *uuid.UUID `json:"exercise_id"`
	Name        string     `json:"name"`
	Sets        []SetLine  `json:"sets"`
	TotalSets   int        `json:"total_sets"`
	TotalVolume float64    `json:"total_volume"`
	MaxWeight   float64    `json:"max_weight"`
}

type SessionTotals struct {
	Exercises int     `json:"exercises"`
	Sets      int     `json:"sets"`
	Volume    float64 `json:"volume"`
}

// SummarizeSets groups sets by exercise in order of first appearance.
// Free-text sets join the catalog exercise of the same name when the
// session also logged it by id.
func SummarizeSets(sets []WorkoutSet) ([]ExerciseTotals, SessionTotals) {
	groups := make([]ExerciseTotals, 0)
	index := make(map[string]int)
	var totals SessionTotals

	catalog := make(map[string]string)
	for i := range sets {
		if sets[i].ExerciseID != nil {
			catalog[exerciseKey(nil, sets[i].ExerciseName)] = sets[i].ExerciseKey()
		}
	}

	for i := range sets {
		s := &sets[i]
		key := s.ExerciseKey()
		if idKey, ok := catalog[key]; ok {
			key = idKey
		}
		idx, ok := index[key]
		if !ok {
			idx = len(groups)
			index[key] = idx
			groups = append(groups, ExerciseTotals{
				ExerciseID: s.ExerciseID,
				Name:       s.ExerciseName,
				Sets:       make([]SetLine, 0),
			})
		}

		g := &groups[idx]
		if g.ExerciseID == nil && s.ExerciseID != nil {
			g.ExerciseID = s.ExerciseID
			g.Name = s.ExerciseName
		}
		volume := s.Volume()
		g.Sets = append(g.Sets, SetLine{
			SetNumber: s.SetNumber,
			Reps:      s.Reps,
			Weight:    s.Weight,
			Volume:    volume,
		})
		g.TotalSets++
		g.TotalVolume += volume
		if s.Weight > g.MaxWeight {
			g.MaxWeight = s.Weight
		}

		totals.Sets++
		totals.Volume += volume
	}
	totals.Exercises = len(groups)
	return groups, totals
}
