// Package targetexercises provides a PostgreSQL-backed repository for the
// planned exercises of a workout template.
package targetexercises

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

func scanTargetExercise(row interface{ Scan(...any) error }) (*models.TargetExercise, error) {
	te := &models.TargetExercise{}
	err := row.Scan(&te.ID, &te.WorkoutID, &te.ExerciseID, &te.ExerciseType,
		&te.Unilateral, &te.Sets, &te.Reps, &te.Load)
	return te, err
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.TargetExercise, error) {
	query := `
		SELECT id, workout_id, exercise_id, exercise_type, unilateral, sets, reps, load
		FROM target_exercises
		WHERE id = $1
	`
	te, err := scanTargetExercise(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return te, nil
}

func (r *PostgresRepository) ListByWorkout(ctx context.Context, workoutID int64) ([]*models.TargetExercise, error) {
	query := `
		SELECT id, workout_id, exercise_id, exercise_type, unilateral, sets, reps, load
		FROM target_exercises
		WHERE workout_id = $1
		ORDER BY id
	`
	return r.list(ctx, query, workoutID)
}

// ListByOwner returns every target exercise reachable through the caller's
// workouts, used to embed children when listing templates.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.TargetExercise, error) {
	query := `
		SELECT te.id, te.workout_id, te.exercise_id, te.exercise_type, te.unilateral, te.sets, te.reps, te.load
		FROM target_exercises te
		JOIN workouts w ON w.id = te.workout_id
		WHERE w.user_id = $1
		ORDER BY te.id
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg any) ([]*models.TargetExercise, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.TargetExercise
	for rows.Next() {
		te, err := scanTargetExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, te *models.TargetExercise) (*models.TargetExercise, error) {
	query := `
		INSERT INTO target_exercises (workout_id, exercise_id, exercise_type, unilateral, sets, reps, load)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, te.WorkoutID, te.ExerciseID, te.ExerciseType,
		te.Unilateral, te.Sets, te.Reps, te.Load).Scan(&te.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return te, nil
}

func (r *PostgresRepository) Update(ctx context.Context, te *models.TargetExercise) (*models.TargetExercise, error) {
	query := `
		UPDATE target_exercises
		SET exercise_id = $2, exercise_type = $3, unilateral = $4, sets = $5, reps = $6, load = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, te.ID, te.ExerciseID, te.ExerciseType,
		te.Unilateral, te.Sets, te.Reps, te.Load)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return te, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM target_exercises
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByWorkout(ctx context.Context, workoutID int64) error {
	query := `
		DELETE FROM target_exercises
		WHERE workout_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, workoutID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
