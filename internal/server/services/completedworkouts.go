package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// CompletedWorkoutService manages recorded workout instances and implements
// the template instantiation engine.
type CompletedWorkoutService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	resolver *authz.Resolver
}

func NewCompletedWorkoutService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CompletedWorkoutService {
	return &CompletedWorkoutService{db: db, repos: m, resolver: authz.NewResolver(db, m)}
}

// List returns the caller's history with completed exercises embedded.
func (s *CompletedWorkoutService) List(ctx context.Context, p *authz.Principal) ([]*models.CompletedWorkout, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}

	result, err := s.repos.CompletedWorkouts(s.db).ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	children, err := s.repos.CompletedExercises(s.db).ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	byInstance := make(map[int64]*models.CompletedWorkout, len(result))
	for _, cw := range result {
		byInstance[cw.ID] = cw
	}
	for _, ce := range children {
		if cw, ok := byInstance[ce.CompletedWorkoutID]; ok {
			cw.CompletedExercises = append(cw.CompletedExercises, ce)
		}
	}

	return result, nil
}

// Start instantiates a template: it snapshots the template's target
// exercises into a new completed workout whose rows start unperformed
// (sets and reps zeroed, everything else copied). The snapshot and all its
// children commit in one transaction, so concurrent readers never observe a
// partial copy. The template only has to exist, not belong to the caller,
// which effectively shares every template with every user (see DESIGN.md).
func (s *CompletedWorkoutService) Start(ctx context.Context, p *authz.Principal, workoutID int64, date time.Time) (*models.CompletedWorkout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindWorkout, workoutID)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{Position: authz.IDFromBody}); out != authz.Allow {
		return nil, out.Err()
	}

	if date.IsZero() {
		date = time.Now()
	}

	cw := &models.CompletedWorkout{
		UserID:    p.UserID,
		WorkoutID: &workoutID,
		Date:      date,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		// The targets are read inside the transaction so a concurrently
		// edited template yields one consistent snapshot, never an
		// interleaving.
		targets, err := s.repos.TargetExercises(tx).ListByWorkout(ctx, workoutID)
		if err != nil {
			return err
		}

		if _, err := s.repos.CompletedWorkouts(tx).Create(ctx, cw); err != nil {
			return err
		}

		copies := make([]*models.CompletedExercise, 0, len(targets))
		for _, te := range targets {
			copies = append(copies, &models.CompletedExercise{
				CompletedWorkoutID: cw.ID,
				ExerciseID:         te.ExerciseID,
				ExerciseType:       te.ExerciseType,
				Unilateral:         te.Unilateral,
				Sets:               0,
				Reps:               0,
				Load:               te.Load,
			})
		}

		if err := s.repos.CompletedExercises(tx).CreateBatch(ctx, copies); err != nil {
			return err
		}
		cw.CompletedExercises = copies
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cw, nil
}

// Get returns one owned instance with its completed exercises embedded.
func (s *CompletedWorkoutService) Get(ctx context.Context, p *authz.Principal, id int64) (*models.CompletedWorkout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindCompletedWorkout, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}

	cw := res.CompletedWorkout()
	cw.CompletedExercises, err = s.repos.CompletedExercises(s.db).ListByCompletedWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	return cw, nil
}

// UpdateCompletedWorkoutParams are the optional fields of an instance
// update; nil leaves the stored value alone.
type UpdateCompletedWorkoutParams struct {
	WorkoutID *int64
	Date      *time.Time
}

func (s *CompletedWorkoutService) Update(ctx context.Context, p *authz.Principal, id int64, params UpdateCompletedWorkoutParams) (*models.CompletedWorkout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindCompletedWorkout, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}

	cw := res.CompletedWorkout()

	if params.WorkoutID != nil {
		// A rebound template reference is payload-supplied: it must exist.
		wres, err := resolveTarget(ctx, s.resolver, authz.KindWorkout, *params.WorkoutID)
		if err != nil {
			return nil, err
		}
		if out := authz.Decide(p, wres, authz.Check{Position: authz.IDFromBody}); out != authz.Allow {
			return nil, out.Err()
		}
		cw.WorkoutID = params.WorkoutID
	}
	if params.Date != nil {
		cw.Date = *params.Date
	}

	return s.repos.CompletedWorkouts(s.db).Update(ctx, cw)
}

// Delete removes an instance together with all its completed exercises,
// children first, in one transaction.
func (s *CompletedWorkoutService) Delete(ctx context.Context, p *authz.Principal, id int64) (*models.CompletedWorkout, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindCompletedWorkout, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireOwner: true}); out != authz.Allow {
		return nil, out.Err()
	}

	cw := res.CompletedWorkout()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.CompletedExercises(tx).DeleteByCompletedWorkout(ctx, id); err != nil {
			return err
		}
		return s.repos.CompletedWorkouts(tx).Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return cw, nil
}
