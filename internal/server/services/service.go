// Package services implements the application operations on top of the
// repositories: CRUD with ownership-scoped authorization, the template
// instantiation engine, and the cascade delete coordinator.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// invalidf wraps a field-validation failure so it surfaces as HTTP 400.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorInvalid, fmt.Sprintf(format, args...))
}

// uniqueViolation reports whether err is a Postgres duplicate-key failure
// and returns the violated constraint name. Only this class of store error
// is the caller's fault; anything else stays a server fault.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// resolveTarget runs the ownership walk and normalizes a miss to a nil
// Resolution, which authz.Decide turns into NotFound or Invalid depending on
// where the id came from. Store faults pass through untouched.
func resolveTarget(ctx context.Context, r *authz.Resolver, kind authz.Kind, id int64) (*authz.Resolution, error) {
	res, err := r.Resolve(ctx, kind, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

// ExerciseParams are the caller-supplied fields for creating or updating a
// target or completed exercise.
type ExerciseParams struct {
	ExerciseID   int64
	ExerciseType string
	Unilateral   bool
	Sets         int
	Reps         int
	Load         float64
}

// validate checks the shared field constraints. minSetsReps is 1 for target
// exercises (a plan of zero sets is meaningless) and 0 for completed ones
// (an unperformed instance legitimately holds zeroes).
func (p *ExerciseParams) validate(minSetsReps int) error {
	if !models.ValidExerciseType(p.ExerciseType) {
		return invalidf("unknown exercise type %q", p.ExerciseType)
	}
	if p.Sets < minSetsReps {
		return invalidf("sets must be at least %d", minSetsReps)
	}
	if p.Reps < minSetsReps {
		return invalidf("reps must be at least %d", minSetsReps)
	}
	if p.Load < 0 {
		return invalidf("load must not be negative")
	}
	return nil
}
