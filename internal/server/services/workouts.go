package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// WorkoutService manages workout templates, including the cascade delete of
// their target exercises.
type WorkoutService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	resolver *authz.Resolver
}

func NewWorkoutService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *WorkoutService {
	return &WorkoutService{db: db, repos: m, resolver: authz.NewResolver(db, m)}
}

// List returns the caller's templates with their target exercises embedded.
func (s *WorkoutService) List(ctx context.Context, p *authz.Principal) ([]*models.Workout, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}

	result, err := s.repos.Workouts(s.db).ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	children, err := s.repos.TargetExercises(s.db).ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	byWorkout := make(map[int64]*models.Workout, len(result))
	for _, w := range result {
		byWorkout[w.ID] = w
	}
	for _, te := range children {
		if w, ok := byWorkout[te.WorkoutID]; ok {
			w.TargetExercises = append(w.TargetExercises, te)
		}
	}

	return result, nil
}

func (s *WorkoutService) Create(ctx context.Context, p *authz.Principal, name string) (*models.Workout, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}
	if name == "" {
		return nil, invalidf("name is required")
	}
	return s.repos.Workouts(s.db).Create(ctx, &models.Workout{UserID: p.UserID, Name: name})
}

// Get returns one owned template with its target exercises embedded.
func (s *WorkoutService) Get(ctx context.Context, p *authz.Principal, id int64) (*models.Workout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindWorkout, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}

	workout := res.Workout()
	workout.TargetExercises, err = s.repos.TargetExercises(s.db).ListByWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) Update(ctx context.Context, p *authz.Principal, id int64, name string) (*models.Workout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindWorkout, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}
	if name == "" {
		return nil, invalidf("name is required")
	}

	workout := res.Workout()
	workout.Name = name
	return s.repos.Workouts(s.db).Update(ctx, workout)
}

// Delete removes a template together with all its target exercises, children
// first, in one transaction. Completed workouts that reference the template
// are untouched: the two hierarchies are independent and history survives
// template deletion.
func (s *WorkoutService) Delete(ctx context.Context, p *authz.Principal, id int64) (*models.Workout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindWorkout, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}

	workout := res.Workout()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.TargetExercises(tx).DeleteByWorkout(ctx, id); err != nil {
			return err
		}
		return s.repos.Workouts(tx).Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return workout, nil
}
