package completedexercises

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, id int64) (*models.CompletedExercise, error)
	ListByCompletedWorkout(ctx context.Context, completedWorkoutID int64) ([]*models.CompletedExercise, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.CompletedExercise, error)
	Create(ctx context.Context, ce *models.CompletedExercise) (*models.CompletedExercise, error)
	CreateBatch(ctx context.Context, ces []*models.CompletedExercise) error
	Update(ctx context.Context, ce *models.CompletedExercise) (*models.CompletedExercise, error)
	Delete(ctx context.Context, id int64) error
	DeleteByCompletedWorkout(ctx context.Context, completedWorkoutID int64) error
}
