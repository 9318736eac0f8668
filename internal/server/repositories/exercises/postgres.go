// Package exercises provides a PostgreSQL-backed repository for the exercise
// catalogue.
package exercises

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_id
		FROM exercises
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Exercise
	for rows.Next() {
		exercise := &models.Exercise{}
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.MuscleID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_id
		FROM exercises
		WHERE id = $1
	`
	exercise := &models.Exercise{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exercise.ID, &exercise.Name, &exercise.MuscleID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return exercise, nil
}

func (r *PostgresRepository) Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (name, muscle_id)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, exercise.Name, exercise.MuscleID).Scan(&exercise.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return exercise, nil
}

func (r *PostgresRepository) Update(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error) {
	query := `
		UPDATE exercises
		SET name = $2, muscle_id = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, exercise.ID, exercise.Name, exercise.MuscleID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return exercise, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM exercises
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
