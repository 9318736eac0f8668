package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// CompletedExerciseService manages the actual-performance rows nested under
// a completed workout. The parent resolution rules mirror
// TargetExerciseService; the field constraints differ: sets and reps may be
// zero, because an unperformed copy is a legitimate state.
type CompletedExerciseService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	resolver *authz.Resolver
}

func NewCompletedExerciseService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CompletedExerciseService {
	return &CompletedExerciseService{db: db, repos: m, resolver: authz.NewResolver(db, m)}
}

func (s *CompletedExerciseService) resolveParent(ctx context.Context, p *authz.Principal, completedWorkoutID int64) (*models.CompletedWorkout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindCompletedWorkout, completedWorkoutID)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true, Position: authz.IDFromBody}); out != authz.Allow {
		return nil, out.Err()
	}
	return res.CompletedWorkout(), nil
}

func (s *CompletedExerciseService) resolveExerciseRef(ctx context.Context, p *authz.Principal, exerciseID int64) error {
	res, err := resolveTarget(ctx, s.resolver, authz.KindExercise, exerciseID)
	if err != nil {
		return err
	}
	return authz.Decide(p, res, authz.Check{Position: authz.IDFromBody}).Err()
}

func (s *CompletedExerciseService) resolveLeaf(ctx context.Context, p *authz.Principal, id int64) (*models.CompletedExercise, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindCompletedExercise, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}
	return res.Resource.(*models.CompletedExercise), nil
}

func (s *CompletedExerciseService) Get(ctx context.Context, p *authz.Principal, completedWorkoutID, id int64) (*models.CompletedExercise, error) {
	if _, err := s.resolveParent(ctx, p, completedWorkoutID); err != nil {
		return nil, err
	}
	return s.resolveLeaf(ctx, p, id)
}

func (s *CompletedExerciseService) Create(ctx context.Context, p *authz.Principal, completedWorkoutID int64, params ExerciseParams) (*models.CompletedExercise, error) {
	parent, err := s.resolveParent(ctx, p, completedWorkoutID)
	if err != nil {
		return nil, err
	}
	if err := s.resolveExerciseRef(ctx, p, params.ExerciseID); err != nil {
		return nil, err
	}
	if err := params.validate(0); err != nil {
		return nil, err
	}

	ce := &models.CompletedExercise{
		CompletedWorkoutID: parent.ID,
		ExerciseID:         params.ExerciseID,
		ExerciseType:       params.ExerciseType,
		Unilateral:         params.Unilateral,
		Sets:               params.Sets,
		Reps:               params.Reps,
		Load:               params.Load,
	}
	return s.repos.CompletedExercises(s.db).Create(ctx, ce)
}

// Update rewrites the stored row from params, with the same load asymmetry
// as target exercises: a zero load preserves the prior stored value.
func (s *CompletedExerciseService) Update(ctx context.Context, p *authz.Principal, completedWorkoutID, id int64, params ExerciseParams) (*models.CompletedExercise, error) {
	if _, err := s.resolveParent(ctx, p, completedWorkoutID); err != nil {
		return nil, err
	}
	ce, err := s.resolveLeaf(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveExerciseRef(ctx, p, params.ExerciseID); err != nil {
		return nil, err
	}
	if err := params.validate(0); err != nil {
		return nil, err
	}

	ce.ExerciseID = params.ExerciseID
	ce.ExerciseType = params.ExerciseType
	ce.Unilateral = params.Unilateral
	ce.Sets = params.Sets
	ce.Reps = params.Reps
	if params.Load != 0 {
		ce.Load = params.Load
	}
	return s.repos.CompletedExercises(s.db).Update(ctx, ce)
}

func (s *CompletedExerciseService) Delete(ctx context.Context, p *authz.Principal, completedWorkoutID, id int64) (*models.CompletedExercise, error) {
	if _, err := s.resolveParent(ctx, p, completedWorkoutID); err != nil {
		return nil, err
	}
	ce, err := s.resolveLeaf(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if err := s.repos.CompletedExercises(s.db).Delete(ctx, id); err != nil {
		return nil, err
	}
	return ce, nil
}
