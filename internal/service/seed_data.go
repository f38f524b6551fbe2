package service

type templateSplit struct {
	name string
	days []SplitDayInput
}

func templateDays(pairs ...string) []SplitDayInput {
	out := make([]SplitDayInput, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		groups := pairs[i+1]
		out = append(out, SplitDayInput{Name: pairs[i], MuscleGroups: &groups})
	}
	return out
}

var templateSplits = []templateSplit{
	{
		name: "Push Pull Legs (PPL)",
		days: templateDays(
			"Push Day", "Chest, Shoulders, Triceps",
			"Pull Day", "Back, Biceps",
			"Leg Day", "Legs, Core",
		),
	},
	{
		name: "Upper Lower Split",
		days: templateDays(
			"Upper Body", "Chest, Back, Shoulders, Arms",
			"Lower Body", "Legs, Core",
		),
	},
	{
		name: "Bro Split (5 Day)",
		days: templateDays(
			"Chest Day", "Chest",
			"Back Day", "Back",
			"Shoulder Day", "Shoulders",
			"Arm Day", "Biceps, Triceps, Forearms",
			"Leg Day", "Legs, Core",
		),
	},
	{
		name: "Full Body (3 Day)",
		days: templateDays(
			"Full Body A", "Chest, Back, Legs",
			"Full Body B", "Shoulders, Arms, Core",
			"Full Body C", "Chest, Back, Legs",
		),
	},
	{
		name: "Arnold Split",
		days: templateDays(
			"Chest & Back", "Chest, Back",
			"Shoulders & Arms", "Shoulders, Biceps, Triceps",
			"Legs", "Legs, Core",
		),
	},
	{
		name: "Enhanced Bro Split (6 Day)",
		days: templateDays(
			"Leg Day", "Quads, Hamstrings, Glutes, Calves",
			"Shoulder Day", "Shoulders",
			"Back Day", "Lats, Rhomboids, Lower Back, Traps",
			"Chest Day", "Upper Chest, Lower Chest, Middle Chest",
			"Arm Day", "Biceps, Triceps, Forearms",
			"Calisthenics Day", "Bodyweight, Core, Mobility",
		),
	},
}

type muscleExercises struct {
	muscle    string
	exercises []string
}

type muscleGroupExercises struct {
	group   string
	muscles []muscleExercises
}

var defaultExercises = []muscleGroupExercises{
	{"chest", []muscleExercises{
		{"upper_chest", []string{"Incline Barbell Press", "Incline Dumbbell Press", "Cable Fly"}},
		{"middle_chest", []string{"Flat Barbell Bench Press", "Flat Dumbbell Press", "Pec-Dec Fly", "Push-ups"}},
		{"lower_chest", []string{"Decline Barbell Press", "Decline Dumbbell Press", "Dips"}},
	}},
	{"back", []muscleExercises{
		{"lats", []string{"Pull-ups", "Lat Pulldown", "Dumbbell Row", "One Arm Half-Kneeling Lat"}},
		{"upper_back", []string{"Face Pulls", "Reverse Fly", "Seated Cable Row"}},
		{"lower_back", []string{"Deadlift", "Romanian Deadlift", "Back Extensions", "Good Mornings"}},
		{"traps", []string{"Barbell Shrugs", "Dumbbell Shrugs", "Farmer Walks", "Rack Pulls"}},
		{"rhomboids", []string{"Bent Over Row", "T-Bar Row", "Chest Supported Row", "Inverted Row"}},
	}},
	{"shoulders", []muscleExercises{
		{"front_delt", []string{"Overhead Press", "Front Raise", "Arnold Press"}},
		{"side_delt", []string{"Lateral Raise", "Dumbbell Lateral Raise", "Cable Lateral Raise", "Upright Row"}},
		{"rear_delt", []string{"Reverse Fly", "Face Pulls", "Bent Over Lateral Raise", "Rear Delt Row"}},
	}},
	{"arms", []muscleExercises{
		{"biceps", []string{"Barbell Curl", "Dumbbell Curl", "Hammer Curl", "Preacher Curl", "Cable Curl", "Spider Curl"}},
		{"triceps", []string{"Close Grip Bench Press", "Tricep Dips", "Overhead Extension", "Tricep Pushdown", "Skull Crushers"}},
		{"forearms", []string{"Wrist Curl", "Reverse Wrist Curl", "Farmers Walk"}},
	}},
	{"legs", []muscleExercises{
		{"quads", []string{"Squat", "Smith Machine Squat", "Leg Press", "Leg Extension", "Lunges"}},
		{"hamstrings", []string{"Romanian Deadlift", "Leg Curl", "Good Mornings", "Nordic Curls"}},
		{"glutes", []string{"Hip Thrust", "Bulgarian Split Squat", "Glute Bridge", "Cable Kickbacks"}},
		{"calves", []string{"Standing Calf Raise", "Seated Calf Raise", "Calf Press"}},
	}},
	{"core", []muscleExercises{
		{"abs", []string{"Crunches", "Leg Raise", "Cable Crunch", "Ab Wheel", "Plank"}},
		{"obliques", []string{"Russian Twist", "Side Plank", "Woodchoppers", "Bicycle Crunches"}},
	}},
}
