// ABOUTME: The 7-day workout plan data and day successor rule.
// ABOUTME: Day 4 is active recovery and can be skipped in the rotation.
package plan

// Exercise is one prescribed exercise within a plan day.
type Exercise struct {
	Key   string
	Name  string
	Sets  int
	Reps  string
	Notes string
}

// WorkoutDay is one day of the 7-day rotation.
type WorkoutDay struct {
	DayIndex    int
	Name        string
	Description string
	Exercises   []Exercise
}

// Days is the full rotation, indexed 1-7.
var Days = []WorkoutDay{
	{
		DayIndex:    1,
		Name:        "Upper Push",
		Description: "Incline Chest + Triceps + Delts",
		Exercises: []Exercise{
			{Key: "incline-db-press", Name: "Incline DB Press", Sets: 3, Reps: "6-10", Notes: "Start 27.5 kg; progress to 30 when you hit 4x8 clean"},
			{Key: "incline-machine-press", Name: "Incline Machine Press", Sets: 3, Reps: "8-12", Notes: "Or Smith incline"},
			{Key: "cable-fly", Name: "Cable Fly (mid or high-to-low)", Sets: 3, Reps: "12-15"},
			{Key: "seated-db-shoulder-press", Name: "Seated DB Shoulder Press", Sets: 3, Reps: "6-10"},
			{Key: "db-lateral-raise", Name: "DB Lateral Raise", Sets: 3, Reps: "12-20", Notes: "Avoid cable laterals for now"},
			{Key: "rope-triceps-pushdown", Name: "Rope Triceps Pushdown", Sets: 3, Reps: "10-15"},
			{Key: "overhead-triceps-extension", Name: "Overhead Triceps Extension", Sets: 3, Reps: "10-15", Notes: "Cable/rope"},
			{Key: "cardio-incline-walk", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
	{
		DayIndex:    2,
		Name:        "Lower A",
		Description: "Quads/Squat Pattern + Core",
		Exercises: []Exercise{
			{Key: "leg-press", Name: "Leg Press", Sets: 3, Reps: "8-15"},
			{Key: "squat-variation", Name: "Squat Variation", Sets: 3, Reps: "6-10", Notes: "Goblet / Smith / Barbell"},
			{Key: "leg-curl", Name: "Leg Curl", Sets: 3, Reps: "10-15"},
			{Key: "leg-extension", Name: "Leg Extension", Sets: 3, Reps: "12-15"},
			{Key: "calf-raise-standing", Name: "Calf Raise (Standing/Seated)", Sets: 3, Reps: "10-15"},
			{Key: "cable-crunch", Name: "Cable Crunch", Sets: 3, Reps: "10-15"},
			{Key: "cardio-incline-walk-2", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
	{
		DayIndex:    3,
		Name:        "Pull",
		Description: "Back + Biceps",
		Exercises: []Exercise{
			{Key: "lat-pulldown", Name: "Lat Pulldown", Sets: 3, Reps: "6-12"},
			{Key: "chest-supported-row", Name: "Chest-Supported Row", Sets: 3, Reps: "8-12"},
			{Key: "seated-cable-row", Name: "Seated Cable Row", Sets: 3, Reps: "10-12"},
			{Key: "face-pull", Name: "Face Pull", Sets: 3, Reps: "12-20"},
			{Key: "ez-bar-curl", Name: "EZ-Bar Curl", Sets: 3, Reps: "6-10"},
			{Key: "incline-db-curl", Name: "Incline DB Curl", Sets: 3, Reps: "10-15"},
			{Key: "hammer-curl", Name: "Hammer Curl", Sets: 2, Reps: "12-15", Notes: "If time"},
			{Key: "cardio-incline-walk-3", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
	{
		DayIndex:    4,
		Name:        "Active Recovery",
		Description: "Shoulder Health (Easy Day)",
		Exercises: []Exercise{
			{Key: "cardio-recovery", Name: "Cardio: Incline Walk / Bike", Sets: 1, Reps: "25-35 min", Notes: "Easy-moderate"},
			{Key: "band-external-rotation", Name: "Band/Cable External Rotation", Sets: 2, Reps: "12-15/side"},
			{Key: "rear-delt-fly-machine", Name: "Rear Delt Fly Machine", Sets: 2, Reps: "15-20"},
			{Key: "straight-arm-pulldown", Name: "Straight-arm Pulldown (light)", Sets: 2, Reps: "12-15"},
			{Key: "serratus-wall-slides", Name: "Serratus Wall Slides", Sets: 2, Reps: "8-12"},
			{Key: "cardio-incline-walk-4", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
	{
		DayIndex:    5,
		Name:        "Arms + Delts",
		Description: "Specialization Day",
		Exercises: []Exercise{
			{Key: "cable-curl", Name: "Cable Curl", Sets: 3, Reps: "10-15"},
			{Key: "preacher-curl", Name: "Preacher Curl (Machine/EZ)", Sets: 3, Reps: "8-12"},
			{Key: "hammer-curl-5", Name: "Hammer Curl", Sets: 2, Reps: "12-15"},
			{Key: "rope-pushdown", Name: "Rope Pushdown", Sets: 3, Reps: "10-15"},
			{Key: "single-arm-cable-pushdown", Name: "Single-arm Cable Pushdown", Sets: 2, Reps: "12-15/side"},
			{Key: "overhead-cable-extension", Name: "Overhead Cable Extension", Sets: 3, Reps: "10-15"},
			{Key: "db-lateral-raise-5", Name: "DB Lateral Raise", Sets: 3, Reps: "12-20"},
			{Key: "rear-delt-fly-5", Name: "Rear Delt Fly", Sets: 3, Reps: "15-20"},
			{Key: "cardio-incline-walk-5", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
	{
		DayIndex:    6,
		Name:        "Lower B",
		Description: "Hinge/Glutes + Conditioning",
		Exercises: []Exercise{
			{Key: "romanian-deadlift", Name: "Romanian Deadlift", Sets: 3, Reps: "6-10"},
			{Key: "hip-thrust", Name: "Hip Thrust", Sets: 3, Reps: "8-12"},
			{Key: "bulgarian-split-squat", Name: "Bulgarian Split Squat", Sets: 3, Reps: "8-12/side"},
			{Key: "leg-curl-6", Name: "Leg Curl", Sets: 3, Reps: "10-15"},
			{Key: "calf-raise-6", Name: "Calf Raise", Sets: 3, Reps: "10-15"},
			{Key: "conditioning", Name: "Conditioning: Incline Walk/Bike", Sets: 1, Reps: "15-25 min"},
			{Key: "cardio-incline-walk-6", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
	{
		DayIndex:    7,
		Name:        "Upper Mix",
		Description: "Chest/Back + Light Arms",
		Exercises: []Exercise{
			{Key: "incline-db-press-7", Name: "Incline DB Press", Sets: 3, Reps: "8-12"},
			{Key: "cable-fly-7", Name: "Cable Fly", Sets: 2, Reps: "12-15"},
			{Key: "lat-pulldown-7", Name: "Lat Pulldown", Sets: 3, Reps: "8-12"},
			{Key: "row-machine", Name: "Row Machine", Sets: 3, Reps: "10-12"},
			{Key: "triceps-pushdown-7", Name: "Triceps Pushdown", Sets: 2, Reps: "12-15"},
			{Key: "db-curl-7", Name: "DB Curl", Sets: 2, Reps: "12-15"},
			{Key: "cardio-incline-walk-7", Name: "Optional: Incline Walk", Sets: 1, Reps: "20-30 min"},
		},
	},
}

// Day returns the plan day for a 1-7 index.
func Day(dayIndex int) (WorkoutDay, bool) {
	for _, d := range Days {
		if d.DayIndex == dayIndex {
			return d, true
		}
	}
	return WorkoutDay{}, false
}

// NextDayIndex returns the successor of a day index, wrapping 7 to 1.
// When includeDay4 is false the recovery day is skipped: 3 goes to 5.
func NextDayIndex(current int, includeDay4 bool) int {
	next := current + 1
	if current >= 7 {
		next = 1
	}
	if !includeDay4 && next == 4 {
		next = 5
	}
	return next
}
