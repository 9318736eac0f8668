package completedworkouts

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.CompletedWorkout, error)
	Get(ctx context.Context, id int64) (*models.CompletedWorkout, error)
	Create(ctx context.Context, cw *models.CompletedWorkout) (*models.CompletedWorkout, error)
	Update(ctx context.Context, cw *models.CompletedWorkout) (*models.CompletedWorkout, error)
	Delete(ctx context.Context, id int64) error
}
