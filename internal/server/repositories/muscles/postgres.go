// Package muscles provides a PostgreSQL-backed repository for muscle
// reference data.
package muscles

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Muscle, error) {
	query := `
		SELECT id, name
		FROM muscles
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Muscle
	for rows.Next() {
		muscle := &models.Muscle{}
		if err := rows.Scan(&muscle.ID, &muscle.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, muscle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Muscle, error) {
	query := `
		SELECT id, name
		FROM muscles
		WHERE id = $1
	`
	muscle := &models.Muscle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&muscle.ID, &muscle.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return muscle, nil
}

func (r *PostgresRepository) Create(ctx context.Context, muscle *models.Muscle) (*models.Muscle, error) {
	query := `
		INSERT INTO muscles (name)
		VALUES ($1)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, muscle.Name).Scan(&muscle.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return muscle, nil
}

func (r *PostgresRepository) Update(ctx context.Context, muscle *models.Muscle) (*models.Muscle, error) {
	query := `
		UPDATE muscles
		SET name = $2
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, muscle.ID, muscle.Name); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return muscle, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM muscles
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
