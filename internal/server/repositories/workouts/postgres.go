// Package workouts provides a PostgreSQL-backed repository for workout
// templates.
package workouts

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Workout, error) {
	query := `
		SELECT id, user_id, name
		FROM workouts
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Workout
	for rows.Next() {
		workout := &models.Workout{}
		if err := rows.Scan(&workout.ID, &workout.UserID, &workout.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Workout, error) {
	query := `
		SELECT id, user_id, name
		FROM workouts
		WHERE id = $1
	`
	workout := &models.Workout{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&workout.ID, &workout.UserID, &workout.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return workout, nil
}

func (r *PostgresRepository) Create(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	query := `
		INSERT INTO workouts (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, workout.UserID, workout.Name).Scan(&workout.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return workout, nil
}

func (r *PostgresRepository) Update(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	query := `
		UPDATE workouts
		SET name = $2
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, workout.ID, workout.Name); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return workout, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM workouts
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
