package models

import "time"

// CompletedWorkout is a dated record of one performed workout. WorkoutID
// points at the originating template and is nullable: deleting a template
// must not erase the history derived from it.
type CompletedWorkout struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	WorkoutID *int64    `json:"workoutId"`
	Date      time.Time `json:"date"`

	CompletedExercises []*CompletedExercise `json:"completedExercises,omitempty"`
}

// CompletedExercise is the actual-performance record for one exercise within
// a completed workout. Its effective owner is the owner of its
// CompletedWorkout.
type CompletedExercise struct {
	ID                 int64   `json:"id"`
	CompletedWorkoutID int64   `json:"completedWorkoutId"`
	ExerciseID         int64   `json:"exerciseId"`
	ExerciseType       string  `json:"exerciseType"`
	Unilateral         bool    `json:"unilateral"`
	Sets               int     `json:"sets"`
	Reps               int     `json:"reps"`
	Load               float64 `json:"load"`
}
