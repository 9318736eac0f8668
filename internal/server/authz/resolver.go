package authz

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// Kind names a resolvable resource type.
type Kind string

const (
	KindMuscle            Kind = "muscle"
	KindExercise          Kind = "exercise"
	KindWorkout           Kind = "workout"
	KindTargetExercise    Kind = "target_exercise"
	KindCompletedWorkout  Kind = "completed_workout"
	KindCompletedExercise Kind = "completed_exercise"
)

// Resolution is the outcome of an ownership walk: the loaded resource plus
// its effective owner. Owned is false for global reference data (muscles,
// exercises), which has no owner concept.
type Resolution struct {
	Resource any
	OwnerID  int64
	Owned    bool
}

// Resolver loads a resource by kind and id and computes its effective owner
// by walking the minimal parent chain. Nested resources cannot be authorized
// from the leaf row alone: a TargetExercise carries no user id, so the walk
// through its Workout is mandatory.
type Resolver struct {
	db    dbx.DBTX
	repos repomanager.RepositoryManager
}

func NewResolver(db dbx.DBTX, repos repomanager.RepositoryManager) *Resolver {
	return &Resolver{db: db, repos: repos}
}

// Resolve returns the resource and its effective owner, or
// common.ErrorNotFound (possibly wrapped) when any lookup on the chain
// misses.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, id int64) (*Resolution, error) {
	switch kind {
	case KindMuscle:
		m, err := r.repos.Muscles(r.db).Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Resolution{Resource: m}, nil

	case KindExercise:
		e, err := r.repos.Exercises(r.db).Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Resolution{Resource: e}, nil

	case KindWorkout:
		w, err := r.repos.Workouts(r.db).Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Resolution{Resource: w, OwnerID: w.UserID, Owned: true}, nil

	case KindCompletedWorkout:
		cw, err := r.repos.CompletedWorkouts(r.db).Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Resolution{Resource: cw, OwnerID: cw.UserID, Owned: true}, nil

	case KindTargetExercise:
		te, err := r.repos.TargetExercises(r.db).Get(ctx, id)
		if err != nil {
			return nil, err
		}
		w, err := r.repos.Workouts(r.db).Get(ctx, te.WorkoutID)
		if err != nil {
			return nil, err
		}
		return &Resolution{Resource: te, OwnerID: w.UserID, Owned: true}, nil

	case KindCompletedExercise:
		ce, err := r.repos.CompletedExercises(r.db).Get(ctx, id)
		if err != nil {
			return nil, err
		}
		cw, err := r.repos.CompletedWorkouts(r.db).Get(ctx, ce.CompletedWorkoutID)
		if err != nil {
			return nil, err
		}
		return &Resolution{Resource: ce, OwnerID: cw.UserID, Owned: true}, nil
	}

	return nil, fmt.Errorf("unknown resource kind %q", kind)
}

// Workout returns the resolved resource as a workout template.
func (res *Resolution) Workout() *models.Workout {
	w, _ := res.Resource.(*models.Workout)
	return w
}

// CompletedWorkout returns the resolved resource as a workout instance.
func (res *Resolution) CompletedWorkout() *models.CompletedWorkout {
	cw, _ := res.Resource.(*models.CompletedWorkout)
	return cw
}
