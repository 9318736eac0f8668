package muscles

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Muscle, error)
	Get(ctx context.Context, id int64) (*models.Muscle, error)
	Create(ctx context.Context, muscle *models.Muscle) (*models.Muscle, error)
	Update(ctx context.Context, muscle *models.Muscle) (*models.Muscle, error)
	Delete(ctx context.Context, id int64) error
}
