package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// TargetExerciseService manages the planned exercises nested under a workout
// template. Every operation first resolves the parent template: the parent
// id is a caller-supplied reference, so an unresolvable one is a validation
// failure (400) and a foreign one is Forbidden, while the leaf id is
// path-addressed and misses with NotFound.
type TargetExerciseService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	resolver *authz.Resolver
}

func NewTargetExerciseService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TargetExerciseService {
	return &TargetExerciseService{db: db, repos: m, resolver: authz.NewResolver(db, m)}
}

func (s *TargetExerciseService) resolveParent(ctx context.Context, p *authz.Principal, workoutID int64) (*models.Workout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindWorkout, workoutID)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true, Position: authz.IDFromBody}); out != authz.Allow {
		return nil, out.Err()
	}
	return res.Workout(), nil
}

// resolveExerciseRef checks the body-supplied exercise id.
func (s *TargetExerciseService) resolveExerciseRef(ctx context.Context, p *authz.Principal, exerciseID int64) error {
	res, err := resolveTarget(ctx, s.resolver, authz.KindExercise, exerciseID)
	if err != nil {
		return err
	}
	return authz.Decide(p, res, authz.Check{Position: authz.IDFromBody}).Err()
}

// resolveLeaf loads the target exercise by its path id and authorizes it
// through its own parent chain: the effective owner is the owner of the
// exercise's actual workout, not of whatever parent the path names.
func (s *TargetExerciseService) resolveLeaf(ctx context.Context, p *authz.Principal, id int64) (*models.TargetExercise, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindTargetExercise, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}
	return res.Resource.(*models.TargetExercise), nil
}

func (s *TargetExerciseService) Get(ctx context.Context, p *authz.Principal, workoutID, id int64) (*models.TargetExercise, error) {
	if _, err := s.resolveParent(ctx, p, workoutID); err != nil {
		return nil, err
	}
	return s.resolveLeaf(ctx, p, id)
}

func (s *TargetExerciseService) Create(ctx context.Context, p *authz.Principal, workoutID int64, params ExerciseParams) (*models.TargetExercise, error) {
	parent, err := s.resolveParent(ctx, p, workoutID)
	if err != nil {
		return nil, err
	}
	if err := s.resolveExerciseRef(ctx, p, params.ExerciseID); err != nil {
		return nil, err
	}
	if err := params.validate(1); err != nil {
		return nil, err
	}

	te := &models.TargetExercise{
		WorkoutID:    parent.ID,
		ExerciseID:   params.ExerciseID,
		ExerciseType: params.ExerciseType,
		Unilateral:   params.Unilateral,
		Sets:         params.Sets,
		Reps:         params.Reps,
		Load:         params.Load,
	}
	return s.repos.TargetExercises(s.db).Create(ctx, te)
}

// Update rewrites the stored row from params. A zero load keeps the prior
// stored value instead of resetting it; the create path defaults the same
// omission to 0. The asymmetry is kept for compatibility with existing
// clients.
func (s *TargetExerciseService) Update(ctx context.Context, p *authz.Principal, workoutID, id int64, params ExerciseParams) (*models.TargetExercise, error) {
	if _, err := s.resolveParent(ctx, p, workoutID); err != nil {
		return nil, err
	}
	te, err := s.resolveLeaf(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveExerciseRef(ctx, p, params.ExerciseID); err != nil {
		return nil, err
	}
	if err := params.validate(1); err != nil {
		return nil, err
	}

	te.ExerciseID = params.ExerciseID
	te.ExerciseType = params.ExerciseType
	te.Unilateral = params.Unilateral
	te.Sets = params.Sets
	te.Reps = params.Reps
	if params.Load != 0 {
		te.Load = params.Load
	}
	return s.repos.TargetExercises(s.db).Update(ctx, te)
}

func (s *TargetExerciseService) Delete(ctx context.Context, p *authz.Principal, workoutID, id int64) (*models.TargetExercise, error) {
	if _, err := s.resolveParent(ctx, p, workoutID); err != nil {
		return nil, err
	}
	te, err := s.resolveLeaf(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if err := s.repos.TargetExercises(s.db).Delete(ctx, id); err != nil {
		return nil, err
	}
	return te, nil
}
