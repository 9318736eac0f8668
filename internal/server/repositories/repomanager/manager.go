package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/completedexercises"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/completedworkouts"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/exercises"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/muscles"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/targetexercises"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/workouts"
)

// RepositoryManager vends repository implementations bound to a DBTX, so the
// same repository code runs against *sql.DB or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Muscles(db dbx.DBTX) muscles.Repository
	Exercises(db dbx.DBTX) exercises.Repository
	Workouts(db dbx.DBTX) workouts.Repository
	TargetExercises(db dbx.DBTX) targetexercises.Repository
	CompletedWorkouts(db dbx.DBTX) completedworkouts.Repository
	CompletedExercises(db dbx.DBTX) completedexercises.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
