package exercises

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Exercise, error)
	Get(ctx context.Context, id int64) (*models.Exercise, error)
	Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error)
	Update(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error)
	Delete(ctx context.Context, id int64) error
}
