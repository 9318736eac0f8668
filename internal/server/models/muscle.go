package models

// Muscle is global reference data; it has no owner.
type Muscle struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exercise references exactly one Muscle; it has no owner.
type Exercise struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	MuscleID int64  `json:"muscleId"`
}
