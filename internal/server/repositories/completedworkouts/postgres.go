// Package completedworkouts provides a PostgreSQL-backed repository for
// recorded workout instances.
package completedworkouts

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.CompletedWorkout, error) {
	query := `
		SELECT id, user_id, workout_id, date
		FROM completed_workouts
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CompletedWorkout
	for rows.Next() {
		cw := &models.CompletedWorkout{}
		if err := rows.Scan(&cw.ID, &cw.UserID, &cw.WorkoutID, &cw.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.CompletedWorkout, error) {
	query := `
		SELECT id, user_id, workout_id, date
		FROM completed_workouts
		WHERE id = $1
	`
	cw := &models.CompletedWorkout{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&cw.ID, &cw.UserID, &cw.WorkoutID, &cw.Date)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cw, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cw *models.CompletedWorkout) (*models.CompletedWorkout, error) {
	query := `
		INSERT INTO completed_workouts (user_id, workout_id, date)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, cw.UserID, cw.WorkoutID, cw.Date).Scan(&cw.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cw, nil
}

func (r *PostgresRepository) Update(ctx context.Context, cw *models.CompletedWorkout) (*models.CompletedWorkout, error) {
	query := `
		UPDATE completed_workouts
		SET workout_id = $2, date = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, cw.ID, cw.WorkoutID, cw.Date); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cw, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM completed_workouts
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
