package targetexercises

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, id int64) (*models.TargetExercise, error)
	ListByWorkout(ctx context.Context, workoutID int64) ([]*models.TargetExercise, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.TargetExercise, error)
	Create(ctx context.Context, te *models.TargetExercise) (*models.TargetExercise, error)
	Update(ctx context.Context, te *models.TargetExercise) (*models.TargetExercise, error)
	Delete(ctx context.Context, id int64) error
	DeleteByWorkout(ctx context.Context, workoutID int64) error
}
