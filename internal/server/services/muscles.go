package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// MuscleService manages the muscle reference data. Reading the list is open
// to any authenticated user; everything else is admin only.
type MuscleService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	resolver *authz.Resolver
}

func NewMuscleService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *MuscleService {
	return &MuscleService{db: db, repos: m, resolver: authz.NewResolver(db, m)}
}

func (s *MuscleService) List(ctx context.Context, p *authz.Principal) ([]*models.Muscle, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}
	return s.repos.Muscles(s.db).List(ctx)
}

func (s *MuscleService) Get(ctx context.Context, p *authz.Principal, id int64) (*models.Muscle, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindMuscle, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	return res.Resource.(*models.Muscle), nil
}

func (s *MuscleService) Create(ctx context.Context, p *authz.Principal, name string) (*models.Muscle, error) {
	if out := authz.DecideAccess(p, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	if name == "" {
		return nil, invalidf("name is required")
	}
	muscle, err := s.repos.Muscles(s.db).Create(ctx, &models.Muscle{Name: name})
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, invalidf("name must be unique")
		}
		return nil, err
	}
	return muscle, nil
}

func (s *MuscleService) Update(ctx context.Context, p *authz.Principal, id int64, name string) (*models.Muscle, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindMuscle, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	if name == "" {
		return nil, invalidf("name is required")
	}

	muscle := res.Resource.(*models.Muscle)
	muscle.Name = name
	return s.repos.Muscles(s.db).Update(ctx, muscle)
}

func (s *MuscleService) Delete(ctx context.Context, p *authz.Principal, id int64) (*models.Muscle, error) {
	res, err := resolveTarget(ctx, s.resolver, authz.KindMuscle, id)
	if err != nil {
		return nil, err
	}
	if out := authz.Decide(p, res, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}

	muscle := res.Resource.(*models.Muscle)
	if err := s.repos.Muscles(s.db).Delete(ctx, id); err != nil {
		return nil, err
	}
	return muscle, nil
}
