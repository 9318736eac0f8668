package models

// Exercise type values accepted for target and completed exercises.
const (
	ExerciseTypeBodyweight = "bodyweight"
	ExerciseTypeFreeWeight = "free weight"
	ExerciseTypeCable      = "cable"
	ExerciseTypeMachine    = "machine"
)

// ValidExerciseType reports whether s is one of the accepted exercise types.
func ValidExerciseType(s string) bool {
	switch s {
	case ExerciseTypeBodyweight, ExerciseTypeFreeWeight, ExerciseTypeCable, ExerciseTypeMachine:
		return true
	}
	return false
}

// Workout is a reusable template: a named list of target exercises owned by
// one user.
type Workout struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`

	TargetExercises []*TargetExercise `json:"targetExercises,omitempty"`
}

// TargetExercise holds the planned parameters for one exercise within a
// workout template. Its effective owner is the owner of its Workout.
type TargetExercise struct {
	ID           int64   `json:"id"`
	WorkoutID    int64   `json:"workoutId"`
	ExerciseID   int64   `json:"exerciseId"`
	ExerciseType string  `json:"exerciseType"`
	Unilateral   bool    `json:"unilateral"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Load         float64 `json:"load"`
}
