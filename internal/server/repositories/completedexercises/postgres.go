// Package completedexercises provides a PostgreSQL-backed repository for the
// actual-performance rows of recorded workouts.
package completedexercises

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCompletedExercise(row interface{ Scan(...any) error }) (*models.CompletedExercise, error) {
	ce := &models.CompletedExercise{}
	err := row.Scan(&ce.ID, &ce.CompletedWorkoutID, &ce.ExerciseID, &ce.ExerciseType,
		&ce.Unilateral, &ce.Sets, &ce.Reps, &ce.Load)
	return ce, err
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.CompletedExercise, error) {
	query := `
		SELECT id, completed_workout_id, exercise_id, exercise_type, unilateral, sets, reps, load
		FROM completed_exercises
		WHERE id = $1
	`
	ce, err := scanCompletedExercise(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ce, nil
}

func (r *PostgresRepository) ListByCompletedWorkout(ctx context.Context, completedWorkoutID int64) ([]*models.CompletedExercise, error) {
	query := `
		SELECT id, completed_workout_id, exercise_id, exercise_type, unilateral, sets, reps, load
		FROM completed_exercises
		WHERE completed_workout_id = $1
		ORDER BY id
	`
	return r.list(ctx, query, completedWorkoutID)
}

// ListByOwner returns every completed exercise reachable through the caller's
// completed workouts, used to embed children when listing history.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.CompletedExercise, error) {
	query := `
		SELECT ce.id, ce.completed_workout_id, ce.exercise_id, ce.exercise_type, ce.unilateral, ce.sets, ce.reps, ce.load
		FROM completed_exercises ce
		JOIN completed_workouts cw ON cw.id = ce.completed_workout_id
		WHERE cw.user_id = $1
		ORDER BY ce.id
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg any) ([]*models.CompletedExercise, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CompletedExercise
	for rows.Next() {
		ce, err := scanCompletedExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ce)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ce *models.CompletedExercise) (*models.CompletedExercise, error) {
	query := `
		INSERT INTO completed_exercises (completed_workout_id, exercise_id, exercise_type, unilateral, sets, reps, load)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, ce.CompletedWorkoutID, ce.ExerciseID, ce.ExerciseType,
		ce.Unilateral, ce.Sets, ce.Reps, ce.Load).Scan(&ce.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ce, nil
}

// CreateBatch inserts the given rows one by one. Callers that need the batch
// to be atomic run it inside dbx.WithTx.
func (r *PostgresRepository) CreateBatch(ctx context.Context, ces []*models.CompletedExercise) error {
	for _, ce := range ces {
		if _, err := r.Create(ctx, ce); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, ce *models.CompletedExercise) (*models.CompletedExercise, error) {
	query := `
		UPDATE completed_exercises
		SET exercise_id = $2, exercise_type = $3, unilateral = $4, sets = $5, reps = $6, load = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, ce.ID, ce.ExerciseID, ce.ExerciseType,
		ce.Unilateral, ce.Sets, ce.Reps, ce.Load)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ce, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM completed_exercises
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByCompletedWorkout(ctx context.Context, completedWorkoutID int64) error {
	query := `
		DELETE FROM completed_exercises
		WHERE completed_workout_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, completedWorkoutID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
