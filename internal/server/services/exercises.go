package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// ExerciseService manages the exercise catalogue. The muscleId supplied on
// create/update is a payload-embedded reference: an unresolvable value is a
// validation failure, never a 404.
type ExerciseService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	resolver *authz.Resolver
}

func NewExerciseService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ExerciseService {
	return &ExerciseService{db: db, repos: m, resolver: authz.NewResolver(db, m)}
}

func (s *ExerciseService) List(ctx context.Context, p *authz.Principal) ([]*models.Exercise, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}
	return s.repos.Exercises(s.db).List(ctx)
}

func (s *ExerciseService) Get(ctx context.Context, p *authz.Principal, id int64) (*models.Exercise, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindExercise, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	return res.Resource.(*models.Exercise), nil
}

// resolveMuscleRef checks that the body-supplied muscle id points at an
// existing muscle.
func (s *ExerciseService) resolveMuscleRef(ctx context.Context, p *authz.Principal, muscleID int64) error {
	res, err := resolveTarget(ctx, s.resolver, authz.KindMuscle, muscleID)
	if err != nil {
		return err
	}
	return authz.Decide(p, res, authz.Check{RequireAdmin: true, Position: authz.IDFromBody}).Err()
}

func (s *ExerciseService) Create(ctx context.Context, p *authz.Principal, name string, muscleID int64) (*models.Exercise, error) {
	if out := authz.DecideAccess(p, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	if err := s.resolveMuscleRef(ctx, p, muscleID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, invalidf("name is required")
	}

	exercise, err := s.repos.Exercises(s.db).Create(ctx, &models.Exercise{Name: name, MuscleID: muscleID})
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, invalidf("name must be unique")
		}
		return nil, err
	}
	return exercise, nil
}

func (s *ExerciseService) Update(ctx context.Context, p *authz.Principal, id int64, name string, muscleID int64) (*models.Exercise, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindExercise, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	if err := s.resolveMuscleRef(ctx, p, muscleID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, invalidf("name is required")
	}

	exercise := res.Resource.(*models.Exercise)
	exercise.Name = name
	exercise.MuscleID = muscleID
	return s.repos.Exercises(s.db).Update(ctx, exercise)
}

func (s *ExerciseService) Delete(ctx context.Context, p *authz.Principal, id int64) (*models.Exercise, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindExercise, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}

	exercise := res.Resource.(*models.Exercise)
	if err := s.repos.Exercises(s.db).Delete(ctx, id); err != nil {
		return nil, err
	}
	return exercise, nil
}
