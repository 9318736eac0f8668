// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/migrations"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/completedexercises"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/completedworkouts"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/exercises"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/muscles"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/targetexercises"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/workouts"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Muscles(db dbx.DBTX) muscles.Repository {
	return muscles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Exercises(db dbx.DBTX) exercises.Repository {
	return exercises.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Workouts(db dbx.DBTX) workouts.Repository {
	return workouts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) TargetExercises(db dbx.DBTX) targetexercises.Repository {
	return targetexercises.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) CompletedWorkouts(db dbx.DBTX) completedworkouts.Repository {
	return completedworkouts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) CompletedExercises(db dbx.DBTX) completedexercises.Repository {
	return completedexercises.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
