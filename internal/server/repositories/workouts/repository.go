package workouts

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Workout, error)
	Get(ctx context.Context, id int64) (*models.Workout, error)
	Create(ctx context.Context, workout *models.Workout) (*models.Workout, error)
	Update(ctx context.Context, workout *models.Workout) (*models.Workout, error)
	Delete(ctx context.Context, id int64) error
}
